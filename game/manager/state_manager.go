package manager

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

const StatsFile = "stats.json"

// GameRecord holds the outcome of a single play session.
type GameRecord struct {
	ID        string    `json:"id"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Score     int       `json:"score"`
	Eaten     int       `json:"eaten"`
	Level     int       `json:"level"`
	Cause     string    `json:"cause"`
}

type GameStats struct {
	HighScore    int          `json:"highScore"`
	ScoreHistory []GameRecord `json:"scoreHistory"`
}

// StateManager keeps the high score and session history on disk.
type StateManager struct {
	dataDir      string
	highScore    int
	scoreHistory []GameRecord
}

// NewStateManager loads previously saved stats from dataDir. A missing stats
// file starts empty.
func NewStateManager(dataDir string) (*StateManager, error) {
	sm := &StateManager{
		dataDir:      dataDir,
		scoreHistory: make([]GameRecord, 0),
	}
	if err := sm.LoadStats(); err != nil && !os.IsNotExist(errors.Cause(err)) {
		return sm, err
	}
	return sm, nil
}

func (sm *StateManager) path() string {
	return filepath.Join(sm.dataDir, StatsFile)
}

func (sm *StateManager) SaveStats() error {
	if err := os.MkdirAll(sm.dataDir, 0755); err != nil {
		return errors.Wrapf(err, "create data directory %s", sm.dataDir)
	}

	stats := GameStats{
		HighScore:    sm.highScore,
		ScoreHistory: sm.scoreHistory,
	}
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal stats")
	}

	if err := os.WriteFile(sm.path(), data, 0644); err != nil {
		return errors.Wrapf(err, "write %s", sm.path())
	}
	return nil
}

func (sm *StateManager) LoadStats() error {
	data, err := os.ReadFile(sm.path())
	if err != nil {
		return errors.Wrapf(err, "read %s", sm.path())
	}

	var stats GameStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return errors.Wrapf(err, "parse %s", sm.path())
	}

	sm.highScore = stats.HighScore
	sm.scoreHistory = stats.ScoreHistory
	if sm.scoreHistory == nil {
		sm.scoreHistory = make([]GameRecord, 0)
	}
	return nil
}

// Record appends a finished session, bumps the high score and saves.
func (sm *StateManager) Record(rec GameRecord) error {
	sm.scoreHistory = append(sm.scoreHistory, rec)
	if rec.Score > sm.highScore {
		sm.highScore = rec.Score
	}
	return sm.SaveStats()
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []GameRecord {
	return sm.scoreHistory
}
