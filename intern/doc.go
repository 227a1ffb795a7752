// Package intern deduplicates equal keys to a single shared Entry.
//
// A Store is a flyweight cache: the first Intern call for a key allocates
// its Entry, every later call for an equal key returns that same pointer.
// Entries are never evicted; they live as long as the store.
//
//	store := intern.New[string]()
//	a := store.Intern("football")
//	b := store.Intern("football")
//	// a == b
//
// KeyOf maps an entry back to its key and fails with a CodeNotFound platform
// error for entries created by another store.
package intern
