package strscreen

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/saylorsolutions/strscreen/pkg/xor"
)

var (
	ErrMalformedText = errors.New("unscreened data is not valid UTF-8")
)

// DecodeBytes reverses Encode, returning the original bytes.
// No validation is done on the result, so a mismatched key will silently produce garbage.
func DecodeBytes(data []byte, key Key) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	if len(data) == 0 {
		return []byte{}, nil
	}
	r, err := xor.NewReader(bytes.NewReader(data), key)
	if err != nil {
		return nil, err
	}
	rotated := make([]byte, len(data))
	if _, err := io.ReadFull(r, rotated); err != nil {
		return nil, err
	}
	plain := unrotate(rotated)
	unmask(plain)
	return plain, nil
}

// Decode reverses Encode, returning the original string.
// If the unscreened bytes are not valid UTF-8, which is a strong sign that data and key were not produced together, then ErrMalformedText is returned.
func Decode(data []byte, key Key) (string, error) {
	plain, err := DecodeBytes(data, key)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(plain) {
		return "", fmt.Errorf("%w: invalid sequence at offset %d", ErrMalformedText, firstInvalid(plain))
	}
	return string(plain), nil
}

// MustDecode is like Decode, but panics if an error occurs.
func MustDecode(data []byte, key Key) string {
	s, err := Decode(data, key)
	if err != nil {
		panic(err)
	}
	return s
}

func firstInvalid(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}
