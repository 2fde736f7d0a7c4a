package entity

import (
	"gridsnake/game/types"
)

// Segment is one fixed-size unit of the snake body.
type Segment struct {
	Position types.Point
	Heading  types.Direction

	// Cell the segment occupied before its most recent move and the
	// heading it left that cell with.
	lastFrom    types.Point
	lastHeading types.Direction
}

// NewSegment creates a segment at pos. Its last move is taken to be one cell
// straight behind it, so a clone of a segment that never moved lands behind it.
func NewSegment(pos types.Point, heading types.Direction) Segment {
	back := heading.Opposite().Step()
	return Segment{
		Position:    pos,
		Heading:     heading,
		lastFrom:    pos.Add(back),
		lastHeading: heading,
	}
}

// Move advances the segment one cell towards heading and adopts it.
// Bounds are not validated here.
func (s *Segment) Move(heading types.Direction) {
	s.lastFrom = s.Position
	s.lastHeading = heading
	s.Heading = heading
	s.Position = s.Position.Add(heading.Step())
}

// Square returns the area covered by the segment
func (s Segment) Square() types.Rect {
	return types.Square(s.Position)
}

type Snake struct {
	Body  []Segment
	Color types.Color
}

func NewSnake(startPos types.Point, heading types.Direction) *Snake {
	return &Snake{
		Body:  []Segment{NewSegment(startPos, heading)},
		Color: types.SnakeGreen,
	}
}

// AppendTailClone grows the body by one segment placed on the cell the tail
// just vacated, heading the way the tail left it.
func (s *Snake) AppendTailClone() {
	tail := s.Tail()
	s.Body = append(s.Body, Segment{
		Position:    tail.lastFrom,
		Heading:     tail.lastHeading,
		lastFrom:    tail.lastFrom.Add(tail.lastHeading.Opposite().Step()),
		lastHeading: tail.lastHeading,
	})
}

// PositionOf panics when index is out of range.
func (s *Snake) PositionOf(index int) types.Point {
	return s.Body[index].Position
}

func (s *Snake) Len() int {
	return len(s.Body)
}

func (s *Snake) GetHead() Segment {
	return s.Body[0]
}

func (s *Snake) Tail() Segment {
	return s.Body[len(s.Body)-1]
}

// Segments returns a copy of the body, head first
func (s *Snake) Segments() []Segment {
	body := make([]Segment, len(s.Body))
	copy(body, s.Body)
	return body
}

// Occupies reports whether any segment square contains p
func (s *Snake) Occupies(p types.Point) bool {
	for _, seg := range s.Body {
		if seg.Square().Contains(p) {
			return true
		}
	}
	return false
}
