package monitor

import (
	"sync/atomic"
)

// SessionStats counts catalog operations over one session.
type SessionStats struct {
	Loads    uint64
	Saves    uint64
	Inserts  uint64
	Deletes  uint64
	Searches uint64
	Misses   uint64
	Failures uint64
}

// Snapshot is a point-in-time copy of SessionStats.
type Snapshot struct {
	Loads, Saves, Inserts, Deletes, Searches, Misses, Failures uint64
}

func NewSessionStats() *SessionStats {
	return &SessionStats{}
}

func (s *SessionStats) RecordLoad()   { atomic.AddUint64(&s.Loads, 1) }
func (s *SessionStats) RecordSave()   { atomic.AddUint64(&s.Saves, 1) }
func (s *SessionStats) RecordInsert() { atomic.AddUint64(&s.Inserts, 1) }
func (s *SessionStats) RecordSearch() { atomic.AddUint64(&s.Searches, 1) }

// RecordDelete counts one delete command; removed == 0 counts as a miss.
func (s *SessionStats) RecordDelete(removed int) {
	atomic.AddUint64(&s.Deletes, 1)
	if removed == 0 {
		atomic.AddUint64(&s.Misses, 1)
	}
}

// RecordMiss counts a lookup that found nothing.
func (s *SessionStats) RecordMiss() { atomic.AddUint64(&s.Misses, 1) }

// RecordFailure counts a load or save that returned an error.
func (s *SessionStats) RecordFailure() { atomic.AddUint64(&s.Failures, 1) }

func (s *SessionStats) Snapshot() Snapshot {
	return Snapshot{
		Loads:    atomic.LoadUint64(&s.Loads),
		Saves:    atomic.LoadUint64(&s.Saves),
		Inserts:  atomic.LoadUint64(&s.Inserts),
		Deletes:  atomic.LoadUint64(&s.Deletes),
		Searches: atomic.LoadUint64(&s.Searches),
		Misses:   atomic.LoadUint64(&s.Misses),
		Failures: atomic.LoadUint64(&s.Failures),
	}
}

// GetHitRatio is the share of deletes and searches that matched something.
func (ss Snapshot) GetHitRatio() float64 {
	lookups := ss.Deletes + ss.Searches
	if lookups == 0 {
		return 0.0
	}
	return float64(lookups-ss.Misses) / float64(lookups)
}
