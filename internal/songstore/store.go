package songstore

import (
	"errors"
	"sync"

	"github.com/ndmello/songsapi/models"
)

var (
	ErrIncompleteSong error = errors.New(`song requires title and artist`)
)

// Store holds the authoritative in-memory collection of songs for the
// process lifetime. Insertion order is preserved.
type Store struct {
	mu    *sync.RWMutex
	songs []models.Song
}

func New() *Store {
	return &Store{
		mu:    &sync.RWMutex{},
		songs: make([]models.Song, 0),
	}
}

// Create appends s to the collection and returns a snapshot of the
// updated collection.
func (st *Store) Create(s models.Song) ([]models.Song, error) {
	if s.Title == "" || s.Artist == "" {
		return nil, ErrIncompleteSong
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	st.songs = append(st.songs, s.Clone())
	return st.snapshot(), nil
}

// FindAll returns a snapshot of the collection in insertion order.
func (st *Store) FindAll() []models.Song {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.snapshot()
}

// snapshot copies the collection out so callers never hold a reference
// into store state. Callers must hold mu.
func (st *Store) snapshot() []models.Song {
	out := make([]models.Song, 0, len(st.songs))
	for _, s := range st.songs {
		out = append(out, s.Clone())
	}
	return out
}
