package emit

import (
	"bytes"
	"fmt"

	bolt "go.etcd.io/bbolt"

	"github.com/saylorsolutions/strscreen/pkg/strscreen"
)

var (
	// ScreenedBucket holds one value per screened entry, keyed by name.
	ScreenedBucket = []byte("screened")
)

var _ strscreen.Emitter = (*Bolt)(nil)

// Bolt stores screened entries in a bbolt database, which can be shipped alongside a binary and read with LoadBolt.
type Bolt struct {
	db *bolt.DB
}

// OpenBolt opens or creates the database at path.
// Any entries from a previous run are removed, so the database only reflects what is emitted from now on.
func OpenBolt(path string) (*Bolt, error) {
	db, err := bolt.Open(path, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(ScreenedBucket) != nil {
			if err := tx.DeleteBucket(ScreenedBucket); err != nil {
				return err
			}
		}
		_, err := tx.CreateBucket(ScreenedBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create bucket %s: %w", ScreenedBucket, err)
	}
	return &Bolt{db: db}, nil
}

func (b *Bolt) Emit(s strscreen.Screened) error {
	var buf bytes.Buffer
	if err := writeFrame(&buf, s); err != nil {
		return err
	}
	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(ScreenedBucket).Put([]byte(s.Name), buf.Bytes())
	})
}

func (b *Bolt) Close() error {
	return b.db.Close()
}

// LoadBolt reads all entries from a database written by Bolt into a Table.
func LoadBolt(path string) (*strscreen.Table, error) {
	db, err := bolt.Open(path, 0400, &bolt.Options{ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		_ = db.Close()
	}()

	table := strscreen.NewTable()
	err = db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(ScreenedBucket)
		if bucket == nil {
			return fmt.Errorf("%w: bucket %s not found", ErrInvalidHeader, ScreenedBucket)
		}
		return bucket.ForEach(func(k, v []byte) error {
			// Frames are decoded into new slices, so nothing references bbolt memory after the transaction.
			s, err := readFrame(bytes.NewReader(v), len(v))
			if err != nil {
				return err
			}
			if s.Name != string(k) {
				return fmt.Errorf("%w: entry '%s' stored under '%s'", ErrInvalidHeader, s.Name, k)
			}
			return table.Emit(s)
		})
	})
	if err != nil {
		return nil, err
	}
	return table, nil
}
