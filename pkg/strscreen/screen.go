package strscreen

//go:generate mockgen -source=screen.go -destination=mocks/mock_screen.go -package=mocks

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

var (
	ErrInvalidKeyLength = errors.New("key length must be at least 1")
)

// Entry is a named string that should be screened.
type Entry struct {
	Name      string
	Plaintext string
}

// Screened is the result of screening an Entry.
// Data and Key are both required to recover the original plain text with Decode.
type Screened struct {
	Name string
	Data []byte
	Key  Key
}

// Provider supplies the entries to be screened.
// Implementations are expected to only return entries with a non-empty Name.
type Provider interface {
	Entries() ([]Entry, error)
}

// Emitter receives screened entries, one at a time, in the order they were provided.
type Emitter interface {
	Emit(s Screened) error
}

// Entries is a Provider backed by a static slice.
type Entries []Entry

func (e Entries) Entries() ([]Entry, error) {
	return e, nil
}

// EmitterFunc adapts a function to the Emitter interface.
type EmitterFunc func(s Screened) error

func (f EmitterFunc) Emit(s Screened) error {
	return f(s)
}

type screenConfig struct {
	keyLen int
	log    zerolog.Logger
}

// ScreenOpt configures a call to Screen.
// If any ScreenOpt returns an error, then screening doesn't start and the error is returned.
type ScreenOpt = func(conf *screenConfig) error

// KeyLength sets the length of derived keys. The default is DefaultKeyLen.
func KeyLength(length int) ScreenOpt {
	return func(conf *screenConfig) error {
		if length < 1 {
			return fmt.Errorf("%w: %d", ErrInvalidKeyLength, length)
		}
		conf.keyLen = length
		return nil
	}
}

// WithLogger sets the logger used to report progress. Plain text is never logged.
func WithLogger(log zerolog.Logger) ScreenOpt {
	return func(conf *screenConfig) error {
		conf.log = log
		return nil
	}
}

// ScreenEntry derives a key from the entry name and uses it to encode the entry's plain text.
func ScreenEntry(entry Entry, keyLen int) (Screened, error) {
	if keyLen < 1 {
		return Screened{}, fmt.Errorf("%w: %d", ErrInvalidKeyLength, keyLen)
	}
	key := DeriveKey(entry.Name, keyLen)
	data, err := Encode(entry.Plaintext, key)
	if err != nil {
		return Screened{}, err
	}
	return Screened{
		Name: entry.Name,
		Data: data,
		Key:  key,
	}, nil
}

// Screen screens every entry from the Provider and passes the results to the Emitter.
// Entries are handled independently, with no deduplication of names or values.
// The first error from the Provider or Emitter stops the run.
func Screen(p Provider, e Emitter, opts ...ScreenOpt) error {
	conf := &screenConfig{
		keyLen: DefaultKeyLen,
		log:    zerolog.Nop(),
	}
	for _, opt := range opts {
		if err := opt(conf); err != nil {
			return err
		}
	}

	entries, err := p.Entries()
	if err != nil {
		return fmt.Errorf("failed to read entries: %w", err)
	}
	conf.log.Debug().Int("entries", len(entries)).Int("key_len", conf.keyLen).Msg("screening entries")

	for _, entry := range entries {
		screened, err := ScreenEntry(entry, conf.keyLen)
		if err != nil {
			return fmt.Errorf("failed to screen entry '%s': %w", entry.Name, err)
		}
		if err := e.Emit(screened); err != nil {
			return fmt.Errorf("failed to emit entry '%s': %w", entry.Name, err)
		}
		conf.log.Debug().Str("name", entry.Name).Int("len", len(screened.Data)).Msg("screened entry")
	}
	return nil
}
