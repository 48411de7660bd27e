package defs

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/saylorsolutions/strscreen/pkg/strscreen"
)

// Parse reads definitions from r in the order they appear.
// Only I/O errors are returned; malformed lines are skipped.
func Parse(r io.Reader) ([]strscreen.Entry, error) {
	var (
		entries []strscreen.Entry
		scanner = bufio.NewScanner(r)
	)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		entry, ok := ParseLine(scanner.Text())
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return entries, nil
}

// ParseLine parses a single definition line.
// The returned bool is false if the line doesn't contain a definition.
func ParseLine(line string) (strscreen.Entry, bool) {
	line = strings.TrimSpace(line)
	if len(line) == 0 {
		return strscreen.Entry{}, false
	}
	name, value, found := strings.Cut(line, "=")
	if !found {
		return strscreen.Entry{}, false
	}
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return strscreen.Entry{}, false
	}
	return strscreen.Entry{
		Name:      name,
		Plaintext: strings.TrimSpace(value),
	}, true
}

// ParseFile reads definitions from the file at path.
func ParseFile(path string) ([]strscreen.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	entries, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read definitions from '%s': %w", path, err)
	}
	return entries, nil
}
