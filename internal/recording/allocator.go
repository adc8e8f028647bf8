package recording

import "github.com/mbraun/recyourself/internal/models"

// allocator hands out strictly increasing recording ids. The counter lives
// only in memory and is rederived from the persisted list at construction,
// so ids are never reused within a process lifetime even after deletions.
type allocator struct {
	next int
}

// newAllocator seeds the counter from the maximum existing id (0 if empty).
func newAllocator(recs []models.Recording) *allocator {
	max := 0
	for _, r := range recs {
		if r.ID > max {
			max = r.ID
		}
	}
	return &allocator{next: max + 1}
}

// peek returns the id the next allocate call will hand out, without
// advancing. Used to name the audio file before the create commits.
func (a *allocator) peek() int {
	return a.next
}

// allocate returns the current counter value and advances it.
func (a *allocator) allocate() int {
	id := a.next
	a.next++
	return id
}
