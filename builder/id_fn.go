package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based index to a vertex value. It must be pure.
type IDFn func(idx int) string

// DefaultIDFn renders idx in decimal: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	mustIndex("DefaultIDFn", idx)
	return strconv.Itoa(idx)
}

// SymbolIDFn maps [0,25] to "A".."Z". Panics outside that range.
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// ExcelColumnIDFn renders spreadsheet column names: 0→"A", 25→"Z", 26→"AA".
func ExcelColumnIDFn(idx int) string {
	mustIndex("ExcelColumnIDFn", idx)
	var out []byte
	for i := idx; i >= 0; i = i/26 - 1 {
		out = append(out, byte('A'+i%26))
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}

	return string(out)
}

// SymbolNumberIDFn returns prefix followed by the decimal index: "v0", "v1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		mustIndex("SymbolNumberIDFn", idx)
		return prefix + strconv.Itoa(idx)
	}
}

// WithSymbolIDs selects SymbolIDFn.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs selects ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }

// WithSymbNumb selects SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption { return WithIDScheme(SymbolNumberIDFn(prefix)) }
