package storage

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/SanyamDa/DeadelinesBot/internal/models"
)

// SchemaVersion is bumped whenever the data file layout changes.
const SchemaVersion = 1

// Store maps each category to its deadlines in insertion order.
type Store map[models.Category][]models.Deadline

// document is the on-disk envelope around the category mapping.
type document struct {
	Version    int                                   `json:"version"`
	Categories map[models.Category][]models.Deadline `json:"categories"`
}

// Append returns a copy of s with d at the end of cat's sequence. The input
// store is never touched, so a failed save cannot leave a half-applied
// record behind.
func Append(s Store, cat models.Category, d models.Deadline) Store {
	next := make(Store, len(s)+1)
	for c, list := range s {
		next[c] = list
	}
	next[cat] = append(append([]models.Deadline(nil), s[cat]...), d)
	return next
}

// FileStore persists the category mapping in a single JSON file. All
// read-modify-write cycles run under one mutex so completions from
// different users cannot lose each other's records.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the persisted mapping. A missing, unreadable or corrupt data
// file yields an empty store; startup never fails on bad state.
func (f *FileStore) Load() Store {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.load()
}

// Save atomically replaces the persisted state with s.
func (f *FileStore) Save(s Store) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.save(s)
}

// Add appends d to cat and persists the result in one critical section.
func (f *FileStore) Add(cat models.Category, d models.Deadline) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.save(Append(f.load(), cat, d)); err != nil {
		return fmt.Errorf("save deadlines: %w", err)
	}
	return nil
}

func (f *FileStore) load() Store {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("deadlines file unreadable, starting empty: %v", err)
		}
		return Store{}
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err == nil && doc.Version == SchemaVersion && doc.Categories != nil {
		return keepKnown(doc.Categories)
	}

	// Files written before the version envelope are a bare
	// category -> records object.
	var flat map[models.Category][]models.Deadline
	if err := json.Unmarshal(data, &flat); err == nil && len(flat) > 0 {
		return keepKnown(flat)
	}

	log.Printf("deadlines file %s is corrupt, starting empty", f.path)
	return Store{}
}

func (f *FileStore) save(s Store) error {
	doc := document{Version: SchemaVersion, Categories: s}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	// Whole-file replace: write a sibling temp file, then rename over the
	// old one, so readers never observe a partial write.
	tmp, err := os.CreateTemp(dir, ".deadlines-*.json")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), f.path); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// keepKnown drops records filed under names outside the category set, so a
// hand-edited file cannot smuggle in an unqueryable bucket.
func keepKnown(raw map[models.Category][]models.Deadline) Store {
	s := Store{}
	for _, cat := range models.Categories {
		if list, ok := raw[cat]; ok {
			s[cat] = list
		}
	}
	for c := range raw {
		if _, err := models.ParseCategory(string(c)); err != nil {
			log.Printf("dropping %d record(s) under unknown category %q", len(raw[c]), c)
		}
	}
	return s
}
