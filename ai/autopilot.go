package ai

import (
	"gridsnake/game"
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

// View is the read-only part of a session the autopilot looks at
type View interface {
	Running() bool
	Snake() *entity.Snake
	FoodList() []types.Point
	Field() types.Grid
}

// Autopilot steers the snake towards the nearest food while avoiding cells
// that would end the game on the next frame. The quit signal still comes
// from the wrapped input source.
type Autopilot struct {
	env      View
	fallback game.InputSource
}

func NewAutopilot(env View, fallback game.InputSource) *Autopilot {
	return &Autopilot{
		env:      env,
		fallback: fallback,
	}
}

// Attach points the autopilot at a new session
func (a *Autopilot) Attach(env View) {
	a.env = env
}

func (a *Autopilot) Poll() game.Input {
	var in game.Input
	if a.fallback != nil {
		in.Quit = a.fallback.Poll().Quit
	}
	if in.Quit || a.env == nil || !a.env.Running() {
		return in
	}

	heading := a.Choose()
	if heading != a.env.Snake().GetHead().Heading {
		in.Heading = heading
	}
	return in
}

// Choose picks the next heading. Among safe headings it takes the one that
// gets closest to food, keeping the current heading on ties. With no safe
// heading it keeps going straight.
func (a *Autopilot) Choose() types.Direction {
	head := a.env.Snake().GetHead()
	target, hasFood := a.nearestFood(head.Position)

	best := types.NONE
	bestDist := 0
	for _, d := range candidates(head.Heading) {
		next := head.Position.Add(d.Step())
		if !a.isSafe(next) {
			continue
		}
		dist := 0
		if hasFood {
			dist = manhattanDistance(types.Square(next).Center(), target)
		}
		if best == types.NONE || dist < bestDist {
			best = d
			bestDist = dist
		}
	}
	if best == types.NONE {
		return head.Heading
	}
	return best
}

// candidates lists the current heading first, then the two side turns.
// Reversing would run the head into its own neck.
func candidates(current types.Direction) []types.Direction {
	out := []types.Direction{current}
	for _, d := range types.Headings {
		if d != current && d != current.Opposite() {
			out = append(out, d)
		}
	}
	return out
}

// isSafe reports whether the head square at p stays on the visible field and
// clear of the body
func (a *Autopilot) isSafe(p types.Point) bool {
	if p.X < 0 || p.Y < 0 || p.X+types.CellSize > a.env.Field().Width || p.Y+types.CellSize > a.env.Field().Height {
		return false
	}
	square := types.Square(p)
	body := a.env.Snake().Body
	for _, seg := range body[1:] {
		if square.Contains(seg.Square().Center()) {
			return false
		}
	}
	return true
}

func (a *Autopilot) nearestFood(from types.Point) (types.Point, bool) {
	center := types.Square(from).Center()
	var best types.Point
	found := false
	bestDist := 0
	for _, food := range a.env.FoodList() {
		dist := manhattanDistance(center, food)
		if !found || dist < bestDist {
			best, bestDist, found = food, dist, true
		}
	}
	return best, found
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func manhattanDistance(p1, p2 types.Point) int {
	return abs(p2.X-p1.X) + abs(p2.Y-p1.Y)
}
