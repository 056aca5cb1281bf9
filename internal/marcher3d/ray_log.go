package marcher3d

import (
	"sync"
)

type Category uint8

const (
	Hit       Category = iota // ray reached a surface
	Escaped                   // ray travelled past MaxDistance
	Exhausted                 // ray used all MaxSteps without converging
)

func (c Category) String() string {
	switch c {
	case Hit:
		return "hit"
	case Escaped:
		return "escaped"
	case Exhausted:
		return "exhausted"
	default:
		return "unknown"
	}
}

// MarchStats aggregates march outcomes, collected only when Debug is set.
type MarchStats struct {
	Count    int
	Steps    int
	Distance float64
}

type marchLog struct {
	mu    sync.Mutex
	stats map[Category]MarchStats
}

var marches = &marchLog{
	stats: make(map[Category]MarchStats),
}

func logMarch(category Category, steps int, distance Real) {
	marches.mu.Lock()
	defer marches.mu.Unlock()
	s := marches.stats[category]
	s.Count++
	s.Steps += steps
	s.Distance += float64(distance)
	marches.stats[category] = s
}

// MarchStatsSnapshot returns a copy of the collected statistics and resets them.
func MarchStatsSnapshot() map[Category]MarchStats {
	marches.mu.Lock()
	defer marches.mu.Unlock()
	out := make(map[Category]MarchStats, len(marches.stats))
	for k, v := range marches.stats {
		out[k] = v
	}
	marches.stats = make(map[Category]MarchStats)
	return out
}

func marchStats() {
	for k, v := range MarchStatsSnapshot() {
		avgSteps := 0.0
		if v.Count > 0 {
			avgSteps = float64(v.Steps) / float64(v.Count)
		}
		DebugLog("March %s: %d rays, avg steps %.2f, total distance %.3g", k, v.Count, avgSteps, v.Distance)
	}
}
