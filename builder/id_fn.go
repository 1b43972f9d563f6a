package builder

import (
	"fmt"
	"strconv"
)

// IDFn maps a zero-based vertex index to a vertex name. It must be pure:
// the same idx always yields the same name, distinct indexes yield distinct
// names, and names must not contain whitespace (the edge-list format splits
// on it).
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx: 0→"0", 42→"42".
// These are the names the exponent data set uses.
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixIDFn returns prefix + decimal index: "v0", "v1", ...
// Panics if prefix contains whitespace.
func PrefixIDFn(prefix string) IDFn {
	for _, r := range prefix {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			panic(fmt.Sprintf("PrefixIDFn: prefix %q contains whitespace", prefix))
		}
	}
	return func(idx int) string {
		return prefix + strconv.Itoa(idx)
	}
}

// ExcelColumnIDFn returns spreadsheet-style column names: 0→"A", 25→"Z",
// 26→"AA", 701→"ZZ". Panics if idx < 0.
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var buf [16]byte
	pos := len(buf)
	for i := idx; i >= 0; i = i/26 - 1 {
		pos--
		buf[pos] = byte('A' + i%26)
	}

	return string(buf[pos:])
}
