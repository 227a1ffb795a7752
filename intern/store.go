package intern

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmgilman/go/errors"
)

// Store keeps exactly one Entry per distinct key for its whole lifetime.
//
// All methods are safe for concurrent use. Intern is serialized so that
// concurrent first lookups of the same key still yield a single entry.
type Store[K comparable] struct {
	id     string
	clock  func() time.Time
	logger *slog.Logger

	mu     sync.Mutex
	index  map[K]*Entry[K]
	rev    map[*Entry[K]]K
	hits   uint64
	misses uint64
}

// New creates an empty store.
func New[K comparable](opts ...Option) *Store[K] {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	id := uuid.NewString()
	return &Store[K]{
		id:     id,
		clock:  o.clock,
		logger: o.logger.With("store", id),
		index:  make(map[K]*Entry[K]),
		rev:    make(map[*Entry[K]]K),
	}
}

// ID returns the store's random identifier.
func (s *Store[K]) ID() string {
	return s.id
}

// Intern returns the entry for key, creating it on first use.
//
// Every call, hit or miss, stamps the entry with the current clock time.
// Repeated calls with equal keys return the identical *Entry.
func (s *Store[K]) Intern(key K) *Entry[K] {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.clock()
	if e, ok := s.index[key]; ok {
		s.hits++
		e.touch(now)
		return e
	}

	e := &Entry[K]{}
	e.touch(now)
	s.index[key] = e
	s.rev[e] = key
	s.misses++

	s.logger.Debug("entry created", "key", key, "entries", len(s.index))

	return e
}

// KeyOf returns the key e was interned under.
//
// Returns CodeNotFound if e is nil or was not created by this store.
func (s *Store[K]) KeyOf(e *Entry[K]) (K, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.keyOfLocked(e)
}

// KeysOf resolves a batch of entries to their keys, preserving order.
//
// Returns CodeNotFound for the first entry not owned by this store; the
// error context carries its index.
func (s *Store[K]) KeysOf(entries ...*Entry[K]) ([]K, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	keys := make([]K, 0, len(entries))
	for i, e := range entries {
		key, err := s.keyOfLocked(e)
		if err != nil {
			return nil, errors.WithContext(err, "index", i)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (s *Store[K]) keyOfLocked(e *Entry[K]) (K, error) {
	if key, ok := s.rev[e]; ok {
		return key, nil
	}

	s.logger.Debug("reverse lookup for foreign entry")

	var zero K
	err := errors.New(errors.CodeNotFound, "entry does not belong to this store")
	return zero, errors.WithContext(err, "store", s.id)
}

// Len returns the number of distinct keys interned.
func (s *Store[K]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.index)
}

// Stats returns a snapshot of hit and miss counters.
func (s *Store[K]) Stats() Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Stats{
		Hits:    s.hits,
		Misses:  s.misses,
		Entries: len(s.index),
	}
}
