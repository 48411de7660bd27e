package strscreen

import "unicode/utf16"

const (
	fnvOffsetBasis uint32 = 2166136261
	fnvPrime       uint32 = 16777619
)

// Hash calculates the 32-bit FNV-1a hash of the UTF-16 code units of s.
// Characters outside the basic multilingual plane contribute both halves of their surrogate pair.
// Invalid UTF-8 sequences are hashed as U+FFFD.
func Hash(s string) uint32 {
	h := fnvOffsetBasis
	for _, r := range s {
		if r < 0x10000 {
			h = (h ^ uint32(r)) * fnvPrime
			continue
		}
		hi, lo := utf16.EncodeRune(r)
		h = (h ^ uint32(hi)) * fnvPrime
		h = (h ^ uint32(lo)) * fnvPrime
	}
	return h
}
