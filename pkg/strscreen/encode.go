package strscreen

import (
	"bytes"

	"github.com/saylorsolutions/strscreen/pkg/xor"
)

var (
	ErrEmptyKey = xor.ErrEmptyKey
)

// Encode screens the UTF-8 bytes of plaintext with key.
// The result always has the same length as plaintext, and the key is not included in it.
// An empty key returns ErrEmptyKey.
func Encode(plaintext string, key Key) ([]byte, error) {
	if len(key) == 0 {
		return nil, ErrEmptyKey
	}
	if len(plaintext) == 0 {
		return []byte{}, nil
	}
	data := []byte(plaintext)
	mask(data)
	var out bytes.Buffer
	out.Grow(len(data))
	w, err := xor.NewWriter(&out, key)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(rotate(data)); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// mask adds each byte's position to it, wrapping at 256.
func mask(data []byte) {
	for i := range data {
		data[i] += byte(i)
	}
}

func unmask(data []byte) {
	for i := range data {
		data[i] -= byte(i)
	}
}

// rotate moves each byte half the length of data to the right, wrapping around the end.
// data must not be empty.
func rotate(data []byte) []byte {
	var (
		n   = len(data)
		out = make([]byte, n)
	)
	for i, b := range data {
		out[(i+n/2)%n] = b
	}
	return out
}

// unrotate is the inverse of rotate.
func unrotate(data []byte) []byte {
	var (
		n   = len(data)
		out = make([]byte, n)
	)
	for i, b := range data {
		out[(i-n/2+n)%n] = b
	}
	return out
}
