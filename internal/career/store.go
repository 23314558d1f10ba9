package career

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/albapepper/ballknowledge-data/internal/filecache"
)

// PartialPath is where an in-progress build checkpoints.
func PartialPath(out string) string { return out + ".partial" }

// LoadPool reads a pool file.
func LoadPool[B any](path string) ([]Entry[B], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pool %s: %w", path, err)
	}
	var entries []Entry[B]
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode pool %s: %w", path, err)
	}
	return entries, nil
}

// SavePool writes entries as compact JSON, creating parent directories.
func SavePool[B any](path string, entries []Entry[B]) error {
	if entries == nil {
		entries = []Entry[B]{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("encode pool: %w", err)
	}
	if err := filecache.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("write pool %s: %w", path, err)
	}
	return nil
}

// LoadPartial reads the checkpoint of out. A missing checkpoint is not an
// error and yields no entries.
func LoadPartial[B any](out string) ([]Entry[B], error) {
	entries, err := LoadPool[B](PartialPath(out))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return entries, err
}

// SavePartial checkpoints entries next to out.
func SavePartial[B any](out string, entries []Entry[B]) error {
	return SavePool(PartialPath(out), entries)
}

// RemovePartial deletes the checkpoint of out if present.
func RemovePartial(out string) error {
	if err := os.Remove(PartialPath(out)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove checkpoint: %w", err)
	}
	return nil
}

// FileSize returns the size of path in bytes, or 0.
func FileSize(path string) int64 {
	fi, err := os.Stat(path)
	if err != nil {
		return 0
	}
	return fi.Size()
}
