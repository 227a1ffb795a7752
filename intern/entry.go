package intern

import (
	"sync/atomic"
	"time"
)

// Entry is the shared representative of one interned key.
//
// Entries are owned by the Store that created them. Callers hold shared
// references and must not assume anything about an Entry once its store
// is gone.
type Entry[K comparable] struct {
	lastAccess atomic.Int64 // unix nanoseconds
	accesses   atomic.Uint64
}

// LastAccess returns the time of the most recent Intern call that returned e.
func (e *Entry[K]) LastAccess() time.Time {
	return time.Unix(0, e.lastAccess.Load())
}

// Accesses returns how many Intern calls have returned e, including the one that created it.
func (e *Entry[K]) Accesses() uint64 {
	return e.accesses.Load()
}

// touch records an access at now.
func (e *Entry[K]) touch(now time.Time) {
	e.lastAccess.Store(now.UnixNano())
	e.accesses.Add(1)
}
