package types

// Grid represents the play field dimensions in field units
type Grid struct {
	Width  int
	Height int
}

// Field constants
const (
	FieldWidth  = 800
	FieldHeight = 600
	CellSize    = 20 // Side of a snake segment and one movement step
	FoodRadius  = 10

	StartX = 200
	StartY = 200
)

// DefaultGrid is the fixed 800x600 play field
var DefaultGrid = Grid{Width: FieldWidth, Height: FieldHeight}

// Cells returns the number of cell columns and rows in the grid
func (g Grid) Cells() (int, int) {
	return g.Width / CellSize, g.Height / CellSize
}

type Point struct {
	X, Y int
}

// Add returns p translated by q
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H int
}

// Square returns the CellSize square whose top-left corner is p
func Square(p Point) Rect {
	return Rect{X: p.X, Y: p.Y, W: CellSize, H: CellSize}
}

// Contains reports whether q lies inside r. The right and bottom edges are
// exclusive.
func (r Rect) Contains(q Point) bool {
	return r.X <= q.X && q.X < r.X+r.W && r.Y <= q.Y && q.Y < r.Y+r.H
}

// Center returns the centre point of r
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

type Color struct {
	R, G, B uint8
}

var (
	Black      = Color{R: 0, G: 0, B: 0}
	White      = Color{R: 255, G: 255, B: 255}
	Red        = Color{R: 255, G: 0, B: 0}
	SnakeGreen = Color{R: 55, G: 255, B: 55}
)

// Direction represents a cardinal heading
type Direction int

const (
	NONE  Direction = iota // 0, no input this frame
	UP                     // 1
	RIGHT                  // 2
	DOWN                   // 3
	LEFT                   // 4
)

// ToPoint converts a Direction into a unit displacement vector
func (d Direction) ToPoint() Point {
	switch d {
	case UP:
		return Point{X: 0, Y: -1}
	case RIGHT:
		return Point{X: 1, Y: 0}
	case DOWN:
		return Point{X: 0, Y: 1}
	case LEFT:
		return Point{X: -1, Y: 0}
	default:
		return Point{X: 0, Y: 0}
	}
}

// Step returns the displacement of one cell in direction d
func (d Direction) Step() Point {
	v := d.ToPoint()
	return Point{X: v.X * CellSize, Y: v.Y * CellSize}
}

// Opposite returns the reverse heading
func (d Direction) Opposite() Direction {
	switch d {
	case UP:
		return DOWN
	case RIGHT:
		return LEFT
	case DOWN:
		return UP
	case LEFT:
		return RIGHT
	default:
		return d
	}
}

func (d Direction) String() string {
	switch d {
	case UP:
		return "up"
	case RIGHT:
		return "right"
	case DOWN:
		return "down"
	case LEFT:
		return "left"
	default:
		return "none"
	}
}

// Headings lists the four movable directions
var Headings = [4]Direction{UP, RIGHT, DOWN, LEFT}

// Status of a play session
type Status int

const (
	Running Status = iota
	Ended
)

func (s Status) String() string {
	if s == Ended {
		return "ended"
	}
	return "running"
}

// CollisionType records why a session ended
type CollisionType int

const (
	NoCollision CollisionType = iota
	WallCollision
	SelfCollision
	QuitSignal
)

func (c CollisionType) String() string {
	switch c {
	case WallCollision:
		return "wall"
	case SelfCollision:
		return "self"
	case QuitSignal:
		return "quit"
	default:
		return "none"
	}
}
