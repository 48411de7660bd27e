package emit

import (
	"encoding/binary"
	"fmt"
	"io"

	bin "github.com/saylorsolutions/binmap"

	"github.com/saylorsolutions/strscreen/pkg/strscreen"
)

var endian = binary.BigEndian

// frame is the length prefix written before each screened entry.
type frame struct {
	nameLen uint64
	keyLen  uint64
	dataLen uint64
}

func (f *frame) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&f.nameLen),
		bin.Int(&f.keyLen),
		bin.Int(&f.dataLen),
	)
}

func writeFrame(w io.Writer, s strscreen.Screened) error {
	f := &frame{
		nameLen: uint64(len(s.Name)),
		keyLen:  uint64(len(s.Key)),
		dataLen: uint64(len(s.Data)),
	}
	if err := f.mapper().Write(w, endian); err != nil {
		return err
	}
	for _, field := range [][]byte{[]byte(s.Name), s.Key, s.Data} {
		if _, err := w.Write(field); err != nil {
			return err
		}
	}
	return nil
}

// readFrame reads a single screened entry.
// remaining is the number of bytes left in the source, and is used to reject lengths that can't possibly be satisfied.
func readFrame(r io.Reader, remaining int) (strscreen.Screened, error) {
	f := new(frame)
	if err := f.mapper().Read(r, endian); err != nil {
		return strscreen.Screened{}, fmt.Errorf("%w: failed to read entry frame: %v", ErrInvalidHeader, err)
	}
	total := f.nameLen + f.keyLen + f.dataLen
	if f.nameLen > uint64(remaining) || f.keyLen > uint64(remaining) || f.dataLen > uint64(remaining) || total > uint64(remaining) {
		return strscreen.Screened{}, fmt.Errorf("%w: entry length %d exceeds remaining data", ErrInvalidHeader, total)
	}
	if f.nameLen == 0 || f.keyLen == 0 {
		return strscreen.Screened{}, fmt.Errorf("%w: entry is missing a name or key", ErrInvalidHeader)
	}
	buf := make([]byte, total)
	if _, err := io.ReadFull(r, buf); err != nil {
		return strscreen.Screened{}, fmt.Errorf("%w: truncated entry: %v", ErrInvalidHeader, err)
	}
	return strscreen.Screened{
		Name: string(buf[:f.nameLen]),
		Key:  strscreen.Key(buf[f.nameLen : f.nameLen+f.keyLen]),
		Data: buf[f.nameLen+f.keyLen:],
	}, nil
}
