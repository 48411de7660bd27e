package strscreen

import (
	"io"
)

const (
	// DefaultKeyLen is the length of keys derived by Screen unless KeyLength is given.
	DefaultKeyLen = 16
)

// Key is the XOR key used to screen a single entry.
type Key []byte

var _ io.Reader = (*KeyStream)(nil)

// KeyStream is an infinite stream of non-zero key bytes produced by an xorshift generator.
// The generator state carries over between reads, so reading 4 bytes twice yields the same bytes as reading 8 bytes once.
type KeyStream struct {
	state uint32
}

// NewKeyStream seeds a KeyStream with the Hash of seed.
func NewKeyStream(seed string) *KeyStream {
	return &KeyStream{state: Hash(seed)}
}

func (s *KeyStream) next() byte {
	s.state ^= s.state << 13
	s.state ^= s.state >> 17
	s.state ^= s.state << 5
	b := byte(s.state)
	if b == 0 {
		// A zero key byte would leave its position unscreened.
		b = 1
	}
	return b
}

// Read fills out with key bytes. It never returns an error.
func (s *KeyStream) Read(out []byte) (int, error) {
	for i := range out {
		out[i] = s.next()
	}
	return len(out), nil
}

// DeriveKey deterministically derives a Key of the given length from seed.
// The same seed always produces the same Key, across runs and platforms.
// A length <= 0 returns an empty Key.
func DeriveKey(seed string, length int) Key {
	if length <= 0 {
		return Key{}
	}
	key := make(Key, length)
	_, _ = NewKeyStream(seed).Read(key)
	return key
}
