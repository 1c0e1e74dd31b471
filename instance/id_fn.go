package instance

import (
	"fmt"
	"strconv"
)

// IDFn generates a city label from its zero-based index. It must be pure:
// the same idx always yields the same label, and distinct indices yield
// distinct labels.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx, e.g. 0→"0", 42→"42".
// Complexity: O(d) where d is the digit count.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// TSPLIBIDFn returns 1-based decimal labels, matching NODE_COORD_SECTION
// numbering: 0→"1", 41→"42".
// Complexity: O(d).
func TSPLIBIDFn(idx int) string {
	return strconv.Itoa(idx + 1)
}

// PrefixIDFn returns prefix + decimal index, e.g. "c0", "c1", ...
// The returned function panics if idx < 0.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PrefixIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// ExcelColumnIDFn returns the Excel-style column name for idx,
// e.g. 0→"A", 25→"Z", 26→"AA".
// Complexity: O(log₂₆ idx). Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var (
		runes []rune
		i, j  int
	)
	for i = idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j = 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
