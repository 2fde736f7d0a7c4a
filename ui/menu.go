package ui

import (
	"gridsnake/game/types"
)

// MenuChoice is the player's answer on the end-of-game screen
type MenuChoice int

const (
	NoChoice MenuChoice = iota
	Restart
	Quit
)

func (c MenuChoice) String() string {
	switch c {
	case Restart:
		return "restart"
	case Quit:
		return "quit"
	default:
		return "none"
	}
}

const DeathMessage = "Sorry! You Died."

// Button regions on the end screen, in field units
var (
	RestartButton = types.Rect{X: 150, Y: 450, W: 100, H: 50}
	QuitButton    = types.Rect{X: 550, Y: 450, W: 100, H: 50}
)

// MenuChoiceAt hit-tests a point against the end screen buttons. Points on a
// button's border do not count.
func MenuChoiceAt(x, y int) MenuChoice {
	switch {
	case inside(RestartButton, x, y):
		return Restart
	case inside(QuitButton, x, y):
		return Quit
	default:
		return NoChoice
	}
}

func inside(r types.Rect, x, y int) bool {
	return r.X < x && x < r.X+r.W && r.Y < y && y < r.Y+r.H
}
