package library

import (
	"strconv"
	"unicode/utf16"
)

// HashID derives a stable id from a string, typically a file path.
// It is a 32-bit overflow-wrapping polynomial hash (base 31) over the
// UTF-16 code units of the input, stringified. Deterministic across
// runs; collision tolerance is best-effort only, which is acceptable
// for a personal library.
func HashID(s string) string {
	var h int32
	for _, u := range utf16.Encode([]rune(s)) {
		h = 31*h + int32(u)
	}
	return strconv.FormatInt(int64(h), 10)
}
