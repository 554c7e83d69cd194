package teller

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Store persists the record collection. The contract is deliberately
// coarse: a full load, and a full overwrite on save. There are no partial
// writes.
type Store interface {
	LoadAll() ([]Account, error)
	SaveAll([]Account) error
}

// FileStore is the Store over a single tabular record file.
type FileStore struct {
	Path string
	// Strict rejects the whole file on the first corrupt field instead of
	// default-filling it.
	Strict bool
}

// NewFileStore creates a tolerant store over the given file path.
func NewFileStore(path string) *FileStore { return &FileStore{Path: path} }

// LoadAll reads the whole record collection. A missing file is not an
// error: it loads as an empty collection, so the first run of the tool
// starts from a blank book.
func (s *FileStore) LoadAll() ([]Account, error) {
	f, err := os.Open(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open record file %q: %w", s.Path, err)
	}
	defer f.Close()

	records, err := DecodeRecords(f, s.Strict)
	if err != nil {
		// Only field-level corruptions may be tolerated: they were
		// default-filled and the collection is usable. A file-level read
		// failure yields no collection at all, and returning an empty book
		// would let the next save destroy every record.
		if s.Strict || !recordCorruptOnly(err) {
			return nil, fmt.Errorf("could not decode record file %q: %w", s.Path, err)
		}
		log.Printf("warning, record file %q has corrupt fields: %v", s.Path, err)
	}
	return records, nil
}

// recordCorruptOnly reports whether err consists solely of *RecordCorrupt
// values, possibly joined.
func recordCorruptOnly(err error) bool {
	switch e := err.(type) {
	case *RecordCorrupt:
		return true
	case interface{ Unwrap() []error }:
		for _, sub := range e.Unwrap() {
			if !recordCorruptOnly(sub) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// SaveAll overwrites the record file with the whole collection.
func (s *FileStore) SaveAll(records []Account) error {
	if dir := filepath.Dir(s.Path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("could not create directory for record file %q: %w", s.Path, err)
		}
	}
	f, err := os.Create(s.Path)
	if err != nil {
		return fmt.Errorf("could not open record file %q for writing: %w", s.Path, err)
	}
	defer f.Close()

	if err := EncodeRecords(f, records); err != nil {
		return fmt.Errorf("could not encode record file %q: %w", s.Path, err)
	}
	return nil
}
