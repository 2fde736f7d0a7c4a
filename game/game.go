package game

import (
	"fmt"
	"io"
	"log"
	"time"

	"gridsnake/game/manager"
	"gridsnake/game/types"

	"github.com/google/uuid"
)

// Options tune a session
type Options struct {
	Level         int
	Seed          uint64
	EatenPerLevel int
	MaxFood       int
	Log           io.Writer // nil discards session logs
}

// Result summarises a finished session.
type Result struct {
	ID        string
	Score     int
	Eaten     int
	Level     int
	Cause     string
	StartTime time.Time
	EndTime   time.Time
}

// Record converts r into its persisted form
func (r Result) Record() manager.GameRecord {
	return manager.GameRecord{
		ID:        r.ID,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		Score:     r.Score,
		Eaten:     r.Eaten,
		Level:     r.Level,
		Cause:     r.Cause,
	}
}

// Game is one play session: an Environment plus its level and score.
type Game struct {
	UUID        string
	Level       int
	StartTime   time.Time
	Environment *Environment
	Log         *log.Logger
}

func NewGame(renderer Renderer, input InputSource, clock Clock, opts Options) *Game {
	gameUUID := uuid.New().String()

	env := NewEnvironment(renderer, input, clock, opts.Seed)
	env.food.SetPacing(opts.EatenPerLevel, opts.MaxFood)

	out := opts.Log
	if out == nil {
		out = io.Discard
	}

	g := &Game{
		UUID:        gameUUID,
		Level:       env.food.Level(),
		StartTime:   time.Now(),
		Environment: env,
		Log: log.New(
			out,
			fmt.Sprintf("[game:%s] ", gameUUID[:8]),
			log.Ldate|log.Ltime|log.Lmsgprefix),
	}
	if opts.Level > 0 {
		g.SetLevel(opts.Level)
	}
	env.AddListener(g)
	return g
}

// SetLevel sets the starting difficulty of the session and speeds it up
func (g *Game) SetLevel(level int) {
	g.Level = level
	g.Environment.food.SetBaseLevel(level)
	g.Environment.FPS += 5
}

// Score is the level multiplied by the amount of food eaten
func (g *Game) Score() int {
	return g.Environment.food.Level() * g.Environment.food.Eaten()
}

// Run plays the session to its end
func (g *Game) Run() Result {
	g.Log.Printf("started at level %d", g.Level)
	g.Environment.Run()
	res := g.Result()
	g.Log.Printf("ended (%s) after %d frames: score %d, eaten %d, level %d",
		res.Cause, g.Environment.Frames, res.Score, res.Eaten, res.Level)
	return res
}

func (g *Game) Result() Result {
	return Result{
		ID:        g.UUID,
		Score:     g.Score(),
		Eaten:     g.Environment.food.Eaten(),
		Level:     g.Environment.food.Level(),
		Cause:     g.Environment.Cause.String(),
		StartTime: g.StartTime,
		EndTime:   time.Now(),
	}
}

func (g *Game) FoodEaten(at types.Point) {
	g.Log.Printf("ate food at (%d,%d), length %d, level %d",
		at.X, at.Y, g.Environment.snake.Len(), g.Environment.food.Level())
}

func (g *Game) Died(cause types.CollisionType) {
	g.Log.Printf("snake died: %s collision", cause)
}
