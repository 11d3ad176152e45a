package builder

import (
	"math/rand"
	"strconv"
)

// IDFn maps a zero-based vertex index to its ID.
type IDFn func(idx int) string

// DefaultIDFn yields decimal IDs "0", "1", ...
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// PrefixIDFn yields prefix followed by the one-based index, e.g. "P1", "P2".
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string { return prefix + strconv.Itoa(idx+1) }
}

// ExcelColumnIDFn yields "A".."Z", "AA", "AB", ...
func ExcelColumnIDFn(idx int) string {
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, rune('A'+(i%26)))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}

const (
	alphabet    = "abcdefghijklmnopqrstuvwxyz"
	randNameLen = 5
)

// randomName draws a lowercase name of randNameLen letters.
func randomName(r *rand.Rand) string {
	b := make([]byte, randNameLen)
	for i := range b {
		b[i] = alphabet[r.Intn(len(alphabet))]
	}

	return string(b)
}
