package builder

import (
	"fmt"
	"strconv"
)

const (
	methodPath              = "Path"
	methodCycle             = "Cycle"
	methodStar              = "Star"
	methodWheel             = "Wheel"
	methodComplete          = "Complete"
	methodCompleteBipartite = "CompleteBipartite"
	methodGrid              = "Grid"

	minPathNodes     = 2
	minCycleNodes    = 3
	minStarNodes     = 2
	minWheelNodes    = 4
	minCompleteNodes = 1
	minPartitionSize = 1
	minGridDim       = 1
)

// addVertices registers cfg.idFn(0..n-1) in ascending order and returns the ids.
func addVertices(f *Fixture, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if _, err := f.vertex(method, ids[i]); err != nil {
			return nil, err
		}
	}
	return ids, nil
}

func tooFew(method, param string, got, min int) error {
	return fmt.Errorf("%s: %s=%d < min=%d: %w", method, param, got, min, ErrTooFewVertices)
}

// Path builds P_n: edges i–i+1 for i ascending (n ≥ 2).
func Path(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		ids, err := addVertices(f, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err = f.edge(methodPath, ids[i], ids[i+1]); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle builds C_n: edges i–(i+1)%n for i ascending (n ≥ 3).
func Cycle(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}
		ids, err := addVertices(f, cfg, methodCycle, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = f.edge(methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}
		return nil
	}
}

// Star builds a hub CenterVertexID with n-1 leaves (n ≥ 2).
// The hub is registered first, then the leaves in index order.
func Star(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}
		if _, err := f.vertex(methodStar, CenterVertexID); err != nil {
			return err
		}
		ids, err := addVertices(f, cfg, methodStar, n-1)
		if err != nil {
			return err
		}
		for _, id := range ids {
			if err = f.edge(methodStar, CenterVertexID, id); err != nil {
				return err
			}
		}
		return nil
	}
}

// Wheel builds W_n: a rim C_{n-1} plus spokes from CenterVertexID (n ≥ 4).
func Wheel(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, "n", n, minWheelNodes)
		}
		if err := Cycle(n-1)(f, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodWheel, err)
		}
		for i := 0; i < n-1; i++ {
			if err := f.edge(methodWheel, CenterVertexID, cfg.idFn(i)); err != nil {
				return err
			}
		}
		return nil
	}
}

// Complete builds K_n: every pair i<j, i then j ascending (n ≥ 1).
func Complete(n int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, "n", n, minCompleteNodes)
		}
		ids, err := addVertices(f, cfg, methodComplete, n)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err = f.edge(methodComplete, ids[i], ids[j]); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// CompleteBipartite builds K_{n1,n2} with values leftPrefix+i and
// rightPrefix+j (n1, n2 ≥ 1).
func CompleteBipartite(n1, n2 int) Constructor {
	return func(f *Fixture, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return fmt.Errorf("%s: n1=%d, n2=%d (each must be ≥ %d): %w",
				methodCompleteBipartite, n1, n2, minPartitionSize, ErrTooFewVertices)
		}
		left := make([]string, n1)
		right := make([]string, n2)
		for i := range left {
			left[i] = cfg.leftPrefix + strconv.Itoa(i)
			if _, err := f.vertex(methodCompleteBipartite, left[i]); err != nil {
				return err
			}
		}
		for j := range right {
			right[j] = cfg.rightPrefix + strconv.Itoa(j)
			if _, err := f.vertex(methodCompleteBipartite, right[j]); err != nil {
				return err
			}
		}
		for _, u := range left {
			for _, v := range right {
				if err := f.edge(methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// GridID formats a grid coordinate as "r,c".
func GridID(r, c int) string { return strconv.Itoa(r) + "," + strconv.Itoa(c) }

// Grid builds a rows×cols 4-neighbourhood grid with values "r,c" in row-major
// order. Each cell links right, then down.
func Grid(rows, cols int) Constructor {
	return func(f *Fixture, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if _, err := f.vertex(methodGrid, GridID(r, c)); err != nil {
					return err
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err := f.edge(methodGrid, GridID(r, c), GridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := f.edge(methodGrid, GridID(r, c), GridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
