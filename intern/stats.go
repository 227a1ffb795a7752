package intern

// Stats is a point-in-time snapshot of store activity.
type Stats struct {
	// Hits counts Intern calls that returned an existing entry.
	Hits uint64

	// Misses counts Intern calls that created a new entry.
	Misses uint64

	// Entries is the number of distinct keys held.
	Entries int
}

// HitRate returns Hits / (Hits + Misses), or 0 when nothing was interned.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}
	return float64(s.Hits) / float64(total)
}
