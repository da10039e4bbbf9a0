package host

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
)

// ColourStore supplies user-chosen sector colours keyed by sector id.
// A lookup miss means the transformer assigns a generated colour instead.
type ColourStore interface {
	Colour(sectorID string) (string, bool)
}

// MemoryStore is an in-memory colour store, mainly for hosts that manage
// their own persistence and for tests.
type MemoryStore map[string]string

// Colour returns the stored colour for a sector id.
func (m MemoryStore) Colour(sectorID string) (string, bool) {
	c, ok := m[sectorID]
	return c, ok
}

// Set stores a colour for a sector id.
func (m MemoryStore) Set(sectorID, colour string) {
	m[sectorID] = colour
}

// FileStore persists sector colours as a JSON object in a single file, so
// customizations survive across runs of a CLI host. Reads and writes are
// whole-file; the store is meant for the host's serialized update loop, not
// for concurrent writers.
type FileStore struct {
	path    string
	colours map[string]string
}

// OpenFileStore loads the colour file at path, creating an empty store if
// the file does not exist yet.
func OpenFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, colours: map[string]string{}}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(data, &s.colours); err != nil {
		// A corrupt colour file should not take the host down; start fresh.
		s.colours = map[string]string{}
	}
	return s, nil
}

// Colour returns the stored colour for a sector id.
func (s *FileStore) Colour(sectorID string) (string, bool) {
	c, ok := s.colours[sectorID]
	return c, ok
}

// Set stores a colour and writes the file.
func (s *FileStore) Set(sectorID, colour string) error {
	s.colours[sectorID] = colour
	return s.flush()
}

// Delete removes a stored colour and writes the file.
func (s *FileStore) Delete(sectorID string) error {
	delete(s.colours, sectorID)
	return s.flush()
}

// Clear removes all stored colours and writes the file.
func (s *FileStore) Clear() error {
	s.colours = map[string]string{}
	return s.flush()
}

// SectorIDs returns the ids with stored colours, sorted for stable output.
func (s *FileStore) SectorIDs() []string {
	ids := make([]string, 0, len(s.colours))
	for id := range s.colours {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func (s *FileStore) flush() error {
	data, err := json.MarshalIndent(s.colours, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}
