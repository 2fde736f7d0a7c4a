package ui

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/types"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// Terminal geometry: one field cell is two columns wide and one row high.
const (
	ColumnsPerCell = 2
	unitsPerColumn = types.CellSize / ColumnsPerCell
	unitsPerRow    = types.CellSize
	eventBacklog   = 64
)

// Terminal is a tcell frontend. A reader goroutine forwards screen events to
// a buffered channel which Poll drains without blocking.
type Terminal struct {
	*Ticker

	screen tcell.Screen
	events chan tcell.Event
	bg     tcell.Style
}

func NewTerminal(pace float64) (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "create terminal screen")
	}
	return newTerminal(screen, pace)
}

func newTerminal(screen tcell.Screen, pace float64) (*Terminal, error) {
	if err := screen.Init(); err != nil {
		return nil, errors.Wrap(err, "init terminal screen")
	}
	screen.EnableMouse()
	screen.HideCursor()

	t := &Terminal{
		Ticker: NewTicker(pace),
		screen: screen,
		events: make(chan tcell.Event, eventBacklog),
		bg:     tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite),
	}
	go t.readEvents()
	return t, nil
}

func (t *Terminal) readEvents() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			close(t.events)
			return
		}
		select {
		case t.events <- ev:
		default:
			// Backlog full, drop the event
		}
	}
}

// Close restores the terminal
func (t *Terminal) Close() {
	t.screen.Fini()
}

func toTcell(c types.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// cellOf maps a field point to its terminal column and row
func cellOf(p types.Point) (int, int) {
	return floorDiv(p.X, unitsPerColumn), floorDiv(p.Y, unitsPerRow)
}

// FieldPoint maps a terminal cell back to the field point at its centre
func FieldPoint(col, row int) types.Point {
	return types.Point{
		X: col*unitsPerColumn + unitsPerColumn/2,
		Y: row*unitsPerRow + unitsPerRow/2,
	}
}

func (t *Terminal) Clear(c types.Color) {
	t.bg = tcell.StyleDefault.Background(toTcell(c)).Foreground(tcell.ColorWhite)
	t.screen.Fill(' ', t.bg)
}

func (t *Terminal) FillRect(r types.Rect, c types.Color) {
	style := tcell.StyleDefault.Background(toTcell(c))
	c0, r0 := cellOf(types.Point{X: r.X, Y: r.Y})
	c1, r1 := cellOf(types.Point{X: r.X + r.W - 1, Y: r.Y + r.H - 1})
	for row := r0; row <= r1; row++ {
		for col := c0; col <= c1; col++ {
			t.screen.SetContent(col, row, ' ', nil, style)
		}
	}
}

// FillCircle marks the cell under the centre. The radius is ignored since
// a food circle fits inside one cell.
func (t *Terminal) FillCircle(center types.Point, radius int, c types.Color) {
	col, row := cellOf(center)
	t.screen.SetContent(col, row, '●', nil, t.bg.Foreground(toTcell(c)))
}

func (t *Terminal) Present() {
	t.screen.Show()
}

// Poll drains pending events. Terminals do not report held keys, so the last
// arrow key pressed since the previous frame is the heading.
func (t *Terminal) Poll() game.Input {
	var in game.Input
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				in.Quit = true
				return in
			}
			t.handle(ev, &in)
		default:
			return in
		}
	}
}

func (t *Terminal) handle(ev tcell.Event, in *game.Input) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyLeft:
			in.Heading = types.LEFT
		case tcell.KeyUp:
			in.Heading = types.UP
		case tcell.KeyDown:
			in.Heading = types.DOWN
		case tcell.KeyRight:
			in.Heading = types.RIGHT
		case tcell.KeyEscape, tcell.KeyCtrlC:
			in.Quit = true
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				in.Quit = true
			}
		}
	case *tcell.EventResize:
		t.screen.Sync()
	}
}

// EndScreen waits for r/q or a click on one of the buttons.
func (t *Terminal) EndScreen(res game.Result, highScore int) MenuChoice {
	t.drawEndScreen(res, highScore)

	for ev := range t.events {
		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch {
			case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
				return Quit
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'q':
				return Quit
			case ev.Key() == tcell.KeyRune && ev.Rune() == 'r':
				return Restart
			}
		case *tcell.EventMouse:
			if ev.Buttons()&tcell.Button1 == 0 {
				continue
			}
			p := FieldPoint(ev.Position())
			if choice := MenuChoiceAt(p.X, p.Y); choice != NoChoice {
				return choice
			}
		case *tcell.EventResize:
			t.screen.Sync()
			t.drawEndScreen(res, highScore)
		}
	}
	return Quit
}

func (t *Terminal) drawEndScreen(res game.Result, highScore int) {
	t.Clear(types.Black)
	red := t.bg.Foreground(tcell.ColorRed)

	_, row := cellOf(types.Point{Y: 300})
	t.centerText(row, DeathMessage, red)
	info := fmt.Sprintf("Score: %d   Level: %d   High score: %d", res.Score, res.Level, highScore)
	t.centerText(row+2, info, t.bg)
	t.centerText(row+4, "[r] restart   [q] quit", t.bg)

	t.drawButton(RestartButton, "Restart")
	t.drawButton(QuitButton, "Quit")
	t.screen.Show()
}

func (t *Terminal) drawButton(r types.Rect, label string) {
	t.FillRect(r, types.Red)
	c0, r0 := cellOf(types.Point{X: r.X, Y: r.Y})
	c1, r1 := cellOf(types.Point{X: r.X + r.W - 1, Y: r.Y + r.H - 1})
	style := tcell.StyleDefault.Background(toTcell(types.Red)).Foreground(tcell.ColorWhite)
	col := c0 + (c1-c0+1-len(label))/2
	t.text(col, (r0+r1)/2, label, style)
}

func (t *Terminal) centerText(row int, s string, style tcell.Style) {
	width := types.FieldWidth / unitsPerColumn
	t.text((width-len([]rune(s)))/2, row, s, style)
}

func (t *Terminal) text(col, row int, s string, style tcell.Style) {
	for i, r := range []rune(s) {
		t.screen.SetContent(col+i, row, r, nil, style)
	}
}
