package strscreen

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveKey(t *testing.T) {
	key := DeriveKey("ApiKey", DefaultKeyLen)
	assert.Equal(t, Key{
		0x3c, 0xae, 0xeb, 0xbf, 0xe8, 0xfc, 0x42, 0x44,
		0x9d, 0x8f, 0x82, 0xdc, 0xd5, 0xe6, 0x40, 0xfe,
	}, key)
	assert.Equal(t, key, DeriveKey("ApiKey", DefaultKeyLen), "key derivation must be deterministic")
	assert.NotEqual(t, key, DeriveKey("apiKey", DefaultKeyLen))
}

func TestDeriveKey_ZeroSubstitution(t *testing.T) {
	// The raw xorshift output for this seed is 0x00 at index 14.
	key := DeriveKey("Key2", DefaultKeyLen)
	assert.Equal(t, byte(0x01), key[14])
}

func TestDeriveKey_NoZeroBytes(t *testing.T) {
	for i := 0; i < 500; i++ {
		key := DeriveKey(fmt.Sprintf("Key%d", i), 64)
		require.Len(t, key, 64)
		assert.NotContains(t, key, byte(0))
	}
}

func TestDeriveKey_Length(t *testing.T) {
	assert.Len(t, DeriveKey("a", 0), 0)
	assert.Len(t, DeriveKey("a", -1), 0)
	assert.Equal(t, Key{184, 158, 27, 245}, DeriveKey("a", 4))
	assert.Equal(t, DeriveKey("a", 4), DeriveKey("a", 16)[:4], "shorter keys are a prefix of longer keys")
}

func TestKeyStream_Read(t *testing.T) {
	var (
		stream = NewKeyStream("ApiKey")
		first  = make([]byte, 6)
		second = make([]byte, 10)
	)
	n, err := stream.Read(first)
	assert.NoError(t, err)
	assert.Equal(t, 6, n)
	n, err = stream.Read(second)
	assert.NoError(t, err)
	assert.Equal(t, 10, n)
	assert.Equal(t, DeriveKey("ApiKey", 16), Key(append(first, second...)))
}
