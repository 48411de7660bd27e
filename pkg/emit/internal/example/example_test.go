//go:generate strgen -E -p example TestStrings.txt
package example

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApiKey(t *testing.T) {
	val, err := ApiKey()
	assert.NoError(t, err)
	assert.Equal(t, "secret123", val)
}

func TestAccessors(t *testing.T) {
	tests := map[string]struct {
		accessor func() (string, error)
		expected string
	}{
		"A":        {A, "B=C"},
		"greeting": {Greeting, "héllo, 世界 🎉"},
		"Empty":    {Empty, ""},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			val, err := tc.accessor()
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, val)

			looked, err := LookupString(name)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, looked)
		})
	}

	_, err := LookupString("Missing")
	assert.Error(t, err)
}

func TestUnscreenString_Mismatched(t *testing.T) {
	_, err := unscreenString(
		[]byte{0x45, 0x99, 0xd2, 0x84, 0x9b, 0x9a, 0x27, 0x31, 0xf4},
		[]byte{0x5, 0x7e, 0xcd, 0xc7, 0xb2, 0xfd, 0xfd, 0x3f, 0x6a, 0x7a, 0x29, 0xc1, 0x95, 0xa3, 0x1, 0x48},
	)
	assert.ErrorIs(t, err, errMalformedScreenedString)
}
