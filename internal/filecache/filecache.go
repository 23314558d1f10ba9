// Package filecache is the on-disk JSON cache behind the roster endpoints.
//
// Each key is one file, <dir>/<key>.json, holding the payload under a named
// field next to free-form metadata and a cached_at timestamp:
//
//	{"team":"LAL","season":"2023-24","cached_at":"...","players":[...]}
//
// Entries older than the store's expiry read as misses but are never
// deleted; the next successful fetch overwrites them. Write failures are
// logged and otherwise ignored, and a corrupt file reads as a miss.
package filecache

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const cachedAtField = "cached_at"

// Store is a directory of JSON cache entries with a fixed expiry.
type Store struct {
	dir    string
	expiry time.Duration
	now    func() time.Time
	logger *slog.Logger
}

// New creates a store rooted at dir. The directory is created on first write.
func New(dir string, expiry time.Duration, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, expiry: expiry, now: time.Now, logger: logger}
}

// WithClock returns a copy of the store that reads the time from now.
func (s *Store) WithClock(now func() time.Time) *Store {
	cp := *s
	cp.now = now
	return &cp
}

// Dir returns the store's root directory.
func (s *Store) Dir() string { return s.dir }

// Expiry returns the maximum age of a fresh entry.
func (s *Store) Expiry() time.Duration { return s.expiry }

// Path returns the file backing key.
func (s *Store) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Read decodes the field payload of key into out when the entry exists, is
// well formed, carries a non-empty payload, and is no older than the expiry.
func (s *Store) Read(key, field string, out any) (time.Time, bool) {
	doc, cachedAt, ok := s.load(key)
	if !ok {
		return time.Time{}, false
	}
	if s.now().Sub(cachedAt) > s.expiry {
		return time.Time{}, false
	}
	if !decodeField(doc, field, out) {
		return time.Time{}, false
	}
	return cachedAt, true
}

// ReadAny is Read without the expiry check.
func (s *Store) ReadAny(key, field string, out any) bool {
	doc, _, ok := s.load(key)
	if !ok {
		return false
	}
	return decodeField(doc, field, out)
}

// Write stores payload under field together with meta and the current time.
// Errors are logged, never returned: a failed write only costs a refetch.
func (s *Store) Write(key string, meta map[string]any, field string, payload any) {
	if err := s.write(key, meta, field, payload); err != nil {
		s.logger.Warn("Could not save cache", "key", key, "error", err)
	}
}

func (s *Store) write(key string, meta map[string]any, field string, payload any) error {
	doc := make(map[string]any, len(meta)+2)
	for k, v := range meta {
		doc[k] = v
	}
	doc[cachedAtField] = s.now().Format(time.RFC3339Nano)
	doc[field] = payload

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return WriteFileAtomic(s.Path(key), data)
}

func (s *Store) load(key string) (map[string]json.RawMessage, time.Time, bool) {
	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		return nil, time.Time{}, false
	}
	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Debug("Ignoring corrupt cache entry", "key", key, "error", err)
		return nil, time.Time{}, false
	}
	var stamp string
	if err := json.Unmarshal(doc[cachedAtField], &stamp); err != nil {
		return nil, time.Time{}, false
	}
	cachedAt, ok := parseStamp(stamp)
	if !ok {
		return nil, time.Time{}, false
	}
	return doc, cachedAt, true
}

func decodeField(doc map[string]json.RawMessage, field string, out any) bool {
	raw := bytes.TrimSpace(doc[field])
	switch string(raw) {
	case "", "null", "[]", "{}":
		return false
	}
	return json.Unmarshal(raw, out) == nil
}

// parseStamp accepts RFC 3339 timestamps and the zone-less ISO form older
// cache files were written with (interpreted as local time).
func parseStamp(s string) (time.Time, bool) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t, true
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05.999999999", s, time.Local); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// WriteFileAtomic writes data to path through a temp file in the same
// directory, creating parent directories as needed.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
