package entity

import (
	"testing"

	"gridsnake/game/types"
)

func TestSegmentMove(t *testing.T) {
	s := NewSegment(types.Point{X: 200, Y: 200}, types.RIGHT)

	for i := 0; i < 10; i++ {
		s.Move(s.Heading)
	}
	if s.Position != (types.Point{X: 400, Y: 200}) {
		t.Fatalf("Expected (400,200) after 10 steps, got %v", s.Position)
	}

	s.Move(types.UP)
	if s.Position != (types.Point{X: 400, Y: 180}) {
		t.Errorf("Expected (400,180) after turning up, got %v", s.Position)
	}
	if s.Heading != types.UP {
		t.Errorf("Expected heading up, got %v", s.Heading)
	}
}

func TestAppendTailCloneFreshSnake(t *testing.T) {
	snake := NewSnake(types.Point{X: 200, Y: 200}, types.RIGHT)
	snake.AppendTailClone()

	if snake.Len() != 2 {
		t.Fatalf("Expected length 2, got %d", snake.Len())
	}
	if got := snake.PositionOf(1); got != (types.Point{X: 180, Y: 200}) {
		t.Errorf("Expected clone one cell behind the head, got %v", got)
	}
	if snake.Tail().Heading != types.RIGHT {
		t.Errorf("Expected clone heading right, got %v", snake.Tail().Heading)
	}
}

func TestAppendTailCloneTakesVacatedCell(t *testing.T) {
	snake := NewSnake(types.Point{X: 200, Y: 200}, types.RIGHT)
	snake.Body[0].Move(types.RIGHT)
	snake.Body[0].Move(types.DOWN)

	snake.AppendTailClone()

	clone := snake.Tail()
	if clone.Position != (types.Point{X: 220, Y: 200}) {
		t.Errorf("Expected clone on vacated cell (220,200), got %v", clone.Position)
	}
	if clone.Heading != types.DOWN {
		t.Errorf("Expected clone to leave the cell the way the tail did, got %v", clone.Heading)
	}

	// The clone follows the tail into the cell it now occupies
	head := snake.Body[0].Position
	clone.Move(clone.Heading)
	if clone.Position != head {
		t.Errorf("Expected clone to step onto %v, got %v", head, clone.Position)
	}
}

func TestAppendTailCloneKeepsOrder(t *testing.T) {
	snake := NewSnake(types.Point{X: 200, Y: 200}, types.RIGHT)
	for i := 0; i < 4; i++ {
		snake.AppendTailClone()
	}

	if snake.Len() != 5 {
		t.Fatalf("Expected length 5, got %d", snake.Len())
	}
	for i := 0; i < snake.Len(); i++ {
		want := types.Point{X: 200 - i*types.CellSize, Y: 200}
		if got := snake.PositionOf(i); got != want {
			t.Errorf("Segment %d: expected %v, got %v", i, want, got)
		}
	}
}

func TestPositionOfOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Expected panic for out-of-range index")
		}
	}()
	snake := NewSnake(types.Point{X: 200, Y: 200}, types.RIGHT)
	snake.PositionOf(3)
}

func TestOccupies(t *testing.T) {
	snake := NewSnake(types.Point{X: 200, Y: 200}, types.RIGHT)

	tests := []struct {
		p    types.Point
		want bool
	}{
		{types.Point{X: 210, Y: 210}, true},
		{types.Point{X: 200, Y: 200}, true},
		{types.Point{X: 220, Y: 210}, false},
		{types.Point{X: 190, Y: 210}, false},
	}
	for _, tt := range tests {
		if got := snake.Occupies(tt.p); got != tt.want {
			t.Errorf("Occupies(%v) = %v, want %v", tt.p, got, tt.want)
		}
	}
}
