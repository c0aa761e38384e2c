package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSessionStats(t *testing.T) {
	s := NewSessionStats()
	s.RecordLoad()
	s.RecordInsert()
	s.RecordInsert()
	s.RecordDelete(2)
	s.RecordDelete(0)
	s.RecordSearch()
	s.RecordSearch()
	s.RecordMiss()
	s.RecordFailure()

	snap := s.Snapshot()
	assert.Equal(t, Snapshot{Loads: 1, Inserts: 2, Deletes: 2, Searches: 2, Misses: 2, Failures: 1}, snap)
	assert.InDelta(t, 0.5, snap.GetHitRatio(), 1e-9)
}

func TestHitRatioWithoutLookups(t *testing.T) {
	assert.Zero(t, NewSessionStats().Snapshot().GetHitRatio())
}
