package ui

import (
	"testing"
	"time"

	"gridsnake/game"
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
)

func newSimTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	term, err := newTerminal(sim, 1)
	if err != nil {
		t.Fatalf("newTerminal: %v", err)
	}
	sim.SetSize(types.FieldWidth/unitsPerColumn, types.FieldHeight/unitsPerRow)
	t.Cleanup(term.Close)
	return term, sim
}

// pollUntil polls until the reader goroutine has delivered something
func pollUntil(t *testing.T, term *Terminal, done func(game.Input) bool) game.Input {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if in := term.Poll(); done(in) {
			return in
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("Timed out waiting for input")
	return game.Input{}
}

func cellAt(sim tcell.SimulationScreen, col, row int) tcell.SimCell {
	cells, width, _ := sim.GetContents()
	return cells[row*width+col]
}

func TestTerminalRendersSegmentsAndFood(t *testing.T) {
	term, sim := newSimTerminal(t)

	term.Clear(types.Black)
	term.FillRect(types.Square(types.Point{X: 200, Y: 200}), types.SnakeGreen)
	term.FillCircle(types.Point{X: 410, Y: 310}, types.FoodRadius, types.White)
	term.Present()

	for _, col := range []int{20, 21} {
		_, bg, _ := cellAt(sim, col, 10).Style.Decompose()
		if bg != toTcell(types.SnakeGreen) {
			t.Errorf("Column %d row 10: expected green background, got %v", col, bg)
		}
	}
	if _, bg, _ := cellAt(sim, 22, 10).Style.Decompose(); bg == toTcell(types.SnakeGreen) {
		t.Error("Segment bled into the next cell")
	}

	food := cellAt(sim, 41, 15)
	if len(food.Runes) == 0 || food.Runes[0] != '●' {
		t.Errorf("Expected food glyph at column 41 row 15, got %q", food.Runes)
	}
}

func TestTerminalPollArrows(t *testing.T) {
	term, sim := newSimTerminal(t)

	if in := term.Poll(); in.Heading != types.NONE || in.Quit {
		t.Fatalf("Expected no input, got %+v", in)
	}

	sim.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	in := pollUntil(t, term, func(in game.Input) bool { return in.Heading != types.NONE })
	if in.Heading != types.UP {
		t.Errorf("Expected up, got %v", in.Heading)
	}

	sim.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	pollUntil(t, term, func(in game.Input) bool { return in.Quit })
}

func TestTerminalEndScreenKeys(t *testing.T) {
	term, sim := newSimTerminal(t)

	sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	sim.InjectKey(tcell.KeyRune, 'r', tcell.ModNone)

	if got := term.EndScreen(game.Result{Score: 3, Level: 1}, 10); got != Restart {
		t.Errorf("Expected restart, got %v", got)
	}
}

func TestTerminalEndScreenClick(t *testing.T) {
	term, sim := newSimTerminal(t)

	col, row := cellOf(QuitButton.Center())
	sim.InjectMouse(col, row, tcell.Button1, tcell.ModNone)

	if got := term.EndScreen(game.Result{}, 0); got != Quit {
		t.Errorf("Expected quit, got %v", got)
	}
}

func TestCellMapping(t *testing.T) {
	tests := []struct {
		p        types.Point
		col, row int
	}{
		{types.Point{X: 0, Y: 0}, 0, 0},
		{types.Point{X: 19, Y: 19}, 1, 0},
		{types.Point{X: 200, Y: 200}, 20, 10},
		{types.Point{X: -10, Y: -20}, -1, -1},
	}
	for _, tt := range tests {
		col, row := cellOf(tt.p)
		if col != tt.col || row != tt.row {
			t.Errorf("cellOf(%v) = (%d,%d), want (%d,%d)", tt.p, col, row, tt.col, tt.row)
		}
	}

	if p := FieldPoint(20, 10); p != (types.Point{X: 205, Y: 210}) {
		t.Errorf("FieldPoint(20,10) = %v", p)
	}
}
