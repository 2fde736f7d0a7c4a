package ui

import (
	"fmt"

	"gridsnake/game"
	"gridsnake/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	titleFontSize  = 60
	buttonFontSize = 25
	infoFontSize   = 20
)

// Window is a raylib frontend. It renders frames, reads the arrow keys and
// paces the loop through raylib's target FPS.
type Window struct {
	pace float64
	fps  int
}

// NewWindow opens a window the size of the play field. Call Close when done.
func NewWindow(title string, pace float64) *Window {
	if pace <= 0 {
		pace = 1
	}
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(types.FieldWidth, types.FieldHeight, title)
	rl.SetExitKey(0)
	return &Window{pace: pace}
}

func (w *Window) Close() {
	rl.CloseWindow()
}

func toRL(c types.Color) rl.Color {
	return rl.NewColor(c.R, c.G, c.B, 255)
}

func (w *Window) Clear(c types.Color) {
	rl.BeginDrawing()
	rl.ClearBackground(toRL(c))
}

func (w *Window) FillRect(r types.Rect, c types.Color) {
	rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), toRL(c))
}

func (w *Window) FillCircle(center types.Point, radius int, c types.Color) {
	rl.DrawCircle(int32(center.X), int32(center.Y), float32(radius), toRL(c))
}

// Present ends the frame. raylib waits here for the target frame time.
func (w *Window) Present() {
	rl.EndDrawing()
}

// Poll reads the held arrow keys. Left wins over up, up over down and down
// over right. Closing the window is the quit signal.
func (w *Window) Poll() game.Input {
	in := game.Input{Quit: rl.WindowShouldClose()}
	switch {
	case rl.IsKeyDown(rl.KeyLeft):
		in.Heading = types.LEFT
	case rl.IsKeyDown(rl.KeyUp):
		in.Heading = types.UP
	case rl.IsKeyDown(rl.KeyDown):
		in.Heading = types.DOWN
	case rl.IsKeyDown(rl.KeyRight):
		in.Heading = types.RIGHT
	}
	return in
}

// Tick updates raylib's target frame rate. The wait itself happens in Present.
func (w *Window) Tick(fps int) {
	if fps == w.fps {
		return
	}
	w.fps = fps
	target := int32(float64(fps) / w.pace)
	if target < 1 {
		target = 1
	}
	rl.SetTargetFPS(target)
}

// EndScreen shows the game over screen until a button is clicked or the
// window is closed.
func (w *Window) EndScreen(res game.Result, highScore int) MenuChoice {
	rl.SetWindowTitle("Sorry! You Lost.")
	rl.SetTargetFPS(30)
	w.fps = 0

	for {
		if rl.WindowShouldClose() {
			return Quit
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)

		textWidth := rl.MeasureText(DeathMessage, titleFontSize)
		rl.DrawText(DeathMessage, (types.FieldWidth-textWidth)/2, 300-titleFontSize/2, titleFontSize, rl.Red)

		info := fmt.Sprintf("Score: %d   Level: %d   High score: %d", res.Score, res.Level, highScore)
		infoWidth := rl.MeasureText(info, infoFontSize)
		rl.DrawText(info, (types.FieldWidth-infoWidth)/2, 380, infoFontSize, rl.White)

		drawButton(RestartButton, "Restart")
		drawButton(QuitButton, "Quit")
		rl.EndDrawing()

		if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
			pos := rl.GetMousePosition()
			if choice := MenuChoiceAt(int(pos.X), int(pos.Y)); choice != NoChoice {
				return choice
			}
		}
	}
}

func drawButton(r types.Rect, label string) {
	rl.DrawRectangle(int32(r.X), int32(r.Y), int32(r.W), int32(r.H), rl.Red)
	labelWidth := rl.MeasureText(label, buttonFontSize)
	rl.DrawText(label,
		int32(r.X)+(int32(r.W)-labelWidth)/2,
		int32(r.Y)+(int32(r.H)-buttonFontSize)/2,
		buttonFontSize, rl.White)
}
