package emit

import (
	"bytes"
	"io"

	atomicfile "github.com/natefinch/atomic"

	"github.com/saylorsolutions/strscreen/pkg/strscreen"
)

// Artifact is an Emitter that collects screened entries and writes them out as a single file.
type Artifact interface {
	strscreen.Emitter
	io.WriterTo
}

// Render writes the Artifact to memory and returns the result.
func Render(a Artifact) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := a.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Save renders the Artifact and atomically replaces the file at path with it.
// A failed render never leaves a partially written file behind.
func Save(path string, a Artifact) error {
	data, err := Render(a)
	if err != nil {
		return err
	}
	return atomicfile.WriteFile(path, bytes.NewReader(data))
}
