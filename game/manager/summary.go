package manager

import (
	"sort"
	"time"
)

// Summary aggregates the saved session history.
type Summary struct {
	GamesPlayed     int
	MaxScore        int
	AverageScore    float64
	MedianScore     float64
	AverageDuration time.Duration
	MaxDuration     time.Duration
	Causes          map[string]int // Sessions per end cause
}

// Summarize computes aggregate statistics over every recorded session
func (sm *StateManager) Summarize() Summary {
	return summarize(sm.scoreHistory)
}

func summarize(records []GameRecord) Summary {
	s := Summary{Causes: make(map[string]int)}
	if len(records) == 0 {
		return s
	}

	scores := make([]int, 0, len(records))
	var totalScore int
	var totalDuration time.Duration
	for _, rec := range records {
		scores = append(scores, rec.Score)
		totalScore += rec.Score
		if rec.Score > s.MaxScore {
			s.MaxScore = rec.Score
		}

		d := rec.Duration()
		totalDuration += d
		if d > s.MaxDuration {
			s.MaxDuration = d
		}
		s.Causes[rec.Cause]++
	}

	s.GamesPlayed = len(records)
	s.AverageScore = float64(totalScore) / float64(len(records))
	s.AverageDuration = totalDuration / time.Duration(len(records))

	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		s.MedianScore = float64(scores[mid-1]+scores[mid]) / 2
	} else {
		s.MedianScore = float64(scores[mid])
	}
	return s
}

// Duration is how long the session lasted. Records with missing or
// inverted timestamps count as zero.
func (r GameRecord) Duration() time.Duration {
	if r.StartTime.IsZero() || r.EndTime.Before(r.StartTime) {
		return 0
	}
	return r.EndTime.Sub(r.StartTime)
}
