// Package store implements the species database: a key-addressed,
// write-once-overwrite store of compiled MessagePack records, one file
// per species at a path derived deterministically from the key.
//
// Every operation is a direct blocking file read or write plus an
// in-memory transform; the store holds no state beyond the filesystem.
// Loads and compiles for different keys may run concurrently. Compiles
// for the same key race with last-writer-wins semantics, and a reader
// overlapping a writer can observe a torn file; callers needing
// atomicity must serialize externally.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/GabrielleBarskyGiles/AtomDB/pkg/codec"
	"github.com/GabrielleBarskyGiles/AtomDB/pkg/species"
)

var (
	// ErrNotFound reports a load for a key with no compiled db file.
	ErrNotFound = errors.New("species record not found")
	// ErrUnknownDataset reports a compile for a dataset with no
	// registered generator. A generator that ran and failed reports its
	// own error instead, so the two cases stay distinguishable.
	ErrUnknownDataset = errors.New("no generator registered for dataset")
)

// Store reads and compiles species records under one root data directory.
type Store struct {
	datapath string
}

// New returns a store rooted at datapath.
func New(datapath string) *Store {
	return &Store{datapath: datapath}
}

// Datapath returns the root data directory.
func (s *Store) Datapath() string {
	return s.datapath
}

// Load reads and decodes the compiled record for a key.
func (s *Store) Load(k Key) (*species.Record, error) {
	path, err := RecordPath(s.datapath, k)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	return codec.Decode(data)
}

// Compile runs the dataset's registered generator for a key and writes
// the encoded record at its resolved path, overwriting any existing
// entry. The dataset's db/ and raw/ directories are created if absent.
// The db file is written only after the generator fully returns, so a
// failed compile leaves no partial entry; raw files the generator wrote
// are its own to clean up.
func (s *Store) Compile(k Key) error {
	dataset := strings.ToLower(k.Dataset)
	for _, sub := range []string{"db", "raw"} {
		if err := os.MkdirAll(filepath.Join(s.datapath, dataset, sub), 0o755); err != nil {
			return err
		}
	}

	gen, ok := lookupGenerator(k.Dataset)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownDataset, k.Dataset)
	}
	rec, err := gen.Run(k, s.datapath)
	if err != nil {
		return fmt.Errorf("dataset %q generator: %w", k.Dataset, err)
	}

	data, err := codec.Encode(rec)
	if err != nil {
		return err
	}
	path, err := RecordPath(s.datapath, k)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
