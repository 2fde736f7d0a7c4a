package manager

import (
	"gridsnake/game/types"
)

// Turn is a heading change anchored to a grid point.
type Turn struct {
	At      types.Point
	Heading types.Direction
}

// TurnManager relays heading changes down the snake body. A turn is recorded
// at the head's cell, every segment reaching that cell adopts it, and the tail
// retires it. Entries are kept in insertion order.
//
// Recording at a cell that already holds a pending turn overwrites its heading
// in place (last write wins) and keeps its original slot in the order.
type TurnManager struct {
	pending map[types.Point]types.Direction
	order   []types.Point
}

func NewTurnManager() *TurnManager {
	return &TurnManager{
		pending: make(map[types.Point]types.Direction),
		order:   make([]types.Point, 0),
	}
}

// Record anchors heading at p
func (tm *TurnManager) Record(p types.Point, heading types.Direction) {
	if _, exists := tm.pending[p]; !exists {
		tm.order = append(tm.order, p)
	}
	tm.pending[p] = heading
}

// Lookup returns the pending heading at p, if any
func (tm *TurnManager) Lookup(p types.Point) (types.Direction, bool) {
	heading, ok := tm.pending[p]
	return heading, ok
}

// Retire removes the turn at p once the tail has passed it
func (tm *TurnManager) Retire(p types.Point) {
	if _, exists := tm.pending[p]; !exists {
		return
	}
	delete(tm.pending, p)
	for i, q := range tm.order {
		if q == p {
			tm.order = append(tm.order[:i], tm.order[i+1:]...)
			break
		}
	}
}

func (tm *TurnManager) Len() int {
	return len(tm.order)
}

// Pending returns the outstanding turns, oldest first
func (tm *TurnManager) Pending() []Turn {
	turns := make([]Turn, 0, len(tm.order))
	for _, p := range tm.order {
		turns = append(turns, Turn{At: p, Heading: tm.pending[p]})
	}
	return turns
}
