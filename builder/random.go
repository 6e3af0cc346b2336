package builder

import "fmt"

const (
	methodRandomSparse = "RandomSparse"
	methodRandomTree   = "RandomTree"

	minRandomNodes = 1
	probMin        = 0.0
	probMax        = 1.0
)

// RandomSparse samples an Erdős–Rényi graph: each pair i<j is trialled once,
// i then j ascending, and kept with probability p.
// The RNG may be omitted only for p ∈ {0, 1}.
func RandomSparse(n int, p float64) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minRandomNodes {
			return tooFew(methodRandomSparse, "n", n, minRandomNodes)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: %w", methodRandomSparse, ErrNeedRandSource)
		}
		ids, err := addVertices(f, cfg, methodRandomSparse, n)
		if err != nil {
			return err
		}

		var keep bool
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng == nil {
					keep = p == probMax
				} else {
					keep = cfg.rng.Float64() < p
				}
				if !keep {
					continue
				}
				if err = f.edge(methodRandomSparse, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// RandomTree builds a uniformly attached random tree: vertex i (i ≥ 1) links
// to a parent drawn from [0, i). The result is connected and acyclic.
func RandomTree(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minRandomNodes {
			return tooFew(methodRandomTree, "n", n, minRandomNodes)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", methodRandomTree, ErrNeedRandSource)
		}
		ids, err := addVertices(f, cfg, methodRandomTree, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = f.edge(methodRandomTree, ids[cfg.rng.Intn(i)], ids[i]); err != nil {
				return err
			}
		}
		return nil
	}
}
