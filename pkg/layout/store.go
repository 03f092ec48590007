package layout

import "sync"

// Store holds the mutable field-position mapping for the current template
// session. A batch run never reads the live mapping; it takes a Snapshot
// so concurrent edits cannot corrupt an in-flight batch.
type Store struct {
	mu         sync.Mutex
	pageWidth  float64
	pageHeight float64
	positions  map[Field]Position
}

// NewStore creates a store seeded with the ratio-derived default layout
// for the given page geometry.
func NewStore(pageWidth, pageHeight float64) *Store {
	return &Store{
		pageWidth:  pageWidth,
		pageHeight: pageHeight,
		positions:  DefaultPositions(pageWidth, pageHeight),
	}
}

// Update overwrites the position of one field. The store performs no
// bounds validation; callers clamp where the position is produced.
// Fields outside the known set are ignored, keeping the mapping closed.
func (s *Store) Update(f Field, p Position) {
	if !Known(f) {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.positions[f] = p
}

// Snapshot returns an independent copy of the current mapping for a
// report-generation pass.
func (s *Store) Snapshot() map[Field]Position {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[Field]Position, len(s.positions))
	for f, p := range s.positions {
		out[f] = p
	}
	return out
}

// Reset discards all edits and re-derives the defaults for the current
// page geometry.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.positions = DefaultPositions(s.pageWidth, s.pageHeight)
}

// PageSize returns the page geometry the store was initialized with.
func (s *Store) PageSize() (w, h float64) {
	return s.pageWidth, s.pageHeight
}
