package dataset

import (
	"sync"

	"github.com/charmbracelet/log"

	"atlas/internal/domain"
)

// Store holds the full, unfiltered country dataset in fetch order.
// It is populated at most once per process; later loads are ignored.
type Store struct {
	mu  sync.RWMutex
	all []domain.Country
}

// NewStore creates an empty dataset store
func NewStore() *Store {
	return &Store{}
}

// Load replaces the dataset with the given records and marks the store
// ready. Returns false if the store already holds data; the new records
// are dropped in that case.
func (s *Store) Load(countries []domain.Country) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.all != nil {
		log.Warn("dataset already loaded, ignoring", "dropped", len(countries))
		return false
	}

	s.all = countries
	log.Info("dataset loaded", "countries", len(countries))
	return true
}

// Get returns the dataset in original fetch order. The returned slice is
// referentially stable between calls; callers must not mutate it.
func (s *Store) Get() []domain.Country {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.all
}

// Len returns the number of records in the dataset
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.all)
}

// Ready reports whether the dataset has been loaded
func (s *Store) Ready() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.all != nil
}
