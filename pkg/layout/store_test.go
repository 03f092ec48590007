package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStoreSeedsDefaults(t *testing.T) {
	s := NewStore(564, 793)
	assert.Equal(t, DefaultPositions(564, 793), s.Snapshot())

	w, h := s.PageSize()
	assert.Equal(t, 564.0, w)
	assert.Equal(t, 793.0, h)
}

func TestUpdateOverwritesOneField(t *testing.T) {
	s := NewStore(564, 793)
	s.Update(FieldName, Position{10, 20})

	snap := s.Snapshot()
	assert.Equal(t, Position{10, 20}, snap[FieldName])
	assert.Equal(t, Position{230, 215}, snap[FieldAge])
}

func TestUpdateIgnoresUnknownField(t *testing.T) {
	s := NewStore(564, 793)
	s.Update(Field("bogus"), Position{1, 1})

	snap := s.Snapshot()
	assert.Len(t, snap, len(Fields))
	assert.NotContains(t, snap, Field("bogus"))
}

func TestSnapshotIsolation(t *testing.T) {
	s := NewStore(564, 793)
	snap := s.Snapshot()

	s.Update(FieldName, Position{1, 2})
	assert.Equal(t, Position{230, 185}, snap[FieldName], "snapshot must not see later edits")

	snap[FieldAge] = Position{9, 9}
	assert.Equal(t, Position{230, 215}, s.Snapshot()[FieldAge], "store must not see snapshot edits")
}

func TestResetDiscardsEdits(t *testing.T) {
	s := NewStore(564, 793)
	s.Update(FieldName, Position{1, 2})
	s.Reset()
	assert.Equal(t, DefaultPositions(564, 793), s.Snapshot())
}
