package emit

import (
	"bytes"
	"crypto/subtle"
	"errors"
	"fmt"
	"io"

	bin "github.com/saylorsolutions/binmap"
	"golang.org/x/crypto/blake2b"

	"github.com/saylorsolutions/strscreen/pkg/strscreen"
)

const (
	resourceMagic   uint64 = 0x5354525343524e00 // "STRSCRN\x00"
	resourceVersion uint8  = 1
)

var (
	ErrInvalidHeader = errors.New("invalid screened resource")
	ErrChecksum      = errors.New("screened resource checksum mismatch")
)

type resourceHeader struct {
	magic   uint64
	version uint8
	count   uint64
}

func (h *resourceHeader) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&h.magic),
		bin.Byte(&h.version),
		bin.Int(&h.count),
	)
}

var _ Artifact = (*Resource)(nil)

// Resource is a binary file of screened entries, intended to be side-loaded or embedded with go:embed and read with LoadResource.
// The file ends with a BLAKE2b-256 digest of its contents to detect corruption or tampering.
//
// This is not a security boundary, since anyone can recompute the digest.
type Resource struct {
	entries []strscreen.Screened
}

func NewResource() *Resource {
	return new(Resource)
}

func (r *Resource) Emit(s strscreen.Screened) error {
	r.entries = append(r.entries, s)
	return nil
}

func (r *Resource) WriteTo(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	header := &resourceHeader{
		magic:   resourceMagic,
		version: resourceVersion,
		count:   uint64(len(r.entries)),
	}
	if err := header.mapper().Write(&buf, endian); err != nil {
		return 0, err
	}
	for _, s := range r.entries {
		if err := writeFrame(&buf, s); err != nil {
			return 0, err
		}
	}
	sum := blake2b.Sum256(buf.Bytes())
	buf.Write(sum[:])
	return buf.WriteTo(w)
}

// LoadResource reads a Resource written by Resource.WriteTo into a Table.
func LoadResource(r io.Reader) (*strscreen.Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(data) < blake2b.Size256 {
		return nil, fmt.Errorf("%w: too short", ErrInvalidHeader)
	}
	body, digest := data[:len(data)-blake2b.Size256], data[len(data)-blake2b.Size256:]
	sum := blake2b.Sum256(body)
	if subtle.ConstantTimeCompare(sum[:], digest) != 1 {
		return nil, ErrChecksum
	}

	src := bytes.NewReader(body)
	header := new(resourceHeader)
	if err := header.mapper().Read(src, endian); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}
	if header.magic != resourceMagic {
		return nil, fmt.Errorf("%w: unrecognized magic bytes", ErrInvalidHeader)
	}
	if header.version != resourceVersion {
		return nil, fmt.Errorf("%w: unsupported version %d", ErrInvalidHeader, header.version)
	}

	table := strscreen.NewTable()
	for i := uint64(0); i < header.count; i++ {
		s, err := readFrame(src, src.Len())
		if err != nil {
			return nil, err
		}
		if err := table.Emit(s); err != nil {
			return nil, err
		}
	}
	if src.Len() > 0 {
		return nil, fmt.Errorf("%w: %d unexpected trailing bytes", ErrInvalidHeader, src.Len())
	}
	return table, nil
}
