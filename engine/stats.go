package engine

import "github.com/kamstrup/intmap"

// Stats is a snapshot of per-game counters. It never influences scoring.
type Stats struct {
	Lines     int
	LastClear int
	Locks     int
	Spawned   [len(Kinds)]int
}

// Pieces returns the total number of pieces spawned this game.
func (s Stats) Pieces() int {
	total := 0
	for _, n := range s.Spawned {
		total += n
	}
	return total
}

type statsTracker struct {
	lines     int
	lastClear int
	locks     int
	spawns    *intmap.Map[Kind, int]
}

func newStatsTracker() statsTracker {
	return statsTracker{spawns: intmap.New[Kind, int](len(Kinds))}
}

func (s *statsTracker) recordSpawn(kind Kind) {
	n, _ := s.spawns.Get(kind)
	s.spawns.Put(kind, n+1)
}

func (s *statsTracker) recordLock(cleared int) {
	s.locks++
	s.lastClear = cleared
	s.lines += cleared
}

func (s *statsTracker) snapshot() Stats {
	stats := Stats{
		Lines:     s.lines,
		LastClear: s.lastClear,
		Locks:     s.locks,
	}
	for _, kind := range Kinds {
		stats.Spawned[kind], _ = s.spawns.Get(kind)
	}
	return stats
}

// LineScore returns the points awarded for clearing lines rows in one lock.
func LineScore(lines int) int {
	switch lines {
	case 1:
		return 100
	case 2:
		return 300
	case 3:
		return 500
	case 4:
		return 800
	default:
		return 0
	}
}
