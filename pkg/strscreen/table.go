package strscreen

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
)

var (
	ErrNotFound = errors.New("no screened entry with that name")
)

var _ Emitter = (*Table)(nil)

// Table holds Screened entries by name, and decodes them on every lookup.
// Nothing is cached, so plain text only exists in memory for as long as the caller holds onto it.
type Table struct {
	mux     sync.RWMutex
	entries map[string]Screened
}

func NewTable() *Table {
	return &Table{
		entries: map[string]Screened{},
	}
}

// Emit adds a Screened entry to the Table, replacing any entry with the same name.
func (t *Table) Emit(s Screened) error {
	t.mux.Lock()
	defer t.mux.Unlock()
	t.entries[s.Name] = s
	return nil
}

// Get decodes and returns the plain text of the named entry.
func (t *Table) Get(name string) (string, error) {
	s, ok := t.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: '%s'", ErrNotFound, name)
	}
	return Decode(s.Data, s.Key)
}

// Lookup returns the named entry without decoding it.
func (t *Table) Lookup(name string) (Screened, bool) {
	t.mux.RLock()
	defer t.mux.RUnlock()
	s, ok := t.entries[name]
	return s, ok
}

// Names returns the names of all entries in sorted order.
func (t *Table) Names() []string {
	t.mux.RLock()
	defer t.mux.RUnlock()
	return slices.Sorted(maps.Keys(t.entries))
}

func (t *Table) Len() int {
	t.mux.RLock()
	defer t.mux.RUnlock()
	return len(t.entries)
}
