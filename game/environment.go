package game

import (
	"gridsnake/game/entity"
	"gridsnake/game/manager"
	"gridsnake/game/types"
)

// Input is the state of the controls for one frame.
type Input struct {
	Heading types.Direction // NONE when no directional key is held
	Quit    bool
}

// InputSource is polled once per frame and must not block.
type InputSource interface {
	Poll() Input
}

// Renderer draws a frame. Clear starts it and Present shows it.
type Renderer interface {
	Clear(c types.Color)
	FillRect(r types.Rect, c types.Color)
	FillCircle(center types.Point, radius int, c types.Color)
	Present()
}

// Clock paces the frame loop.
type Clock interface {
	Tick(fps int)
}

// Listener is told about gameplay events as they happen.
type Listener interface {
	FoodEaten(at types.Point)
	Died(cause types.CollisionType)
}

// Environment owns the snake, food and pending turns of a single session
// and advances them one frame at a time.
type Environment struct {
	Grid   types.Grid
	Status types.Status
	Cause  types.CollisionType
	FPS    int
	Frames int

	snake        *entity.Snake
	food         *manager.FoodManager
	turns        *manager.TurnManager
	collisionMgr *manager.CollisionManager

	renderer  Renderer
	input     InputSource
	clock     Clock
	listeners []Listener
}

func NewEnvironment(renderer Renderer, input InputSource, clock Clock, seed uint64) *Environment {
	grid := types.DefaultGrid
	collisionMgr := manager.NewCollisionManager(grid)
	env := &Environment{
		Grid:         grid,
		Status:       types.Running,
		Cause:        types.NoCollision,
		FPS:          100,
		snake:        entity.NewSnake(types.Point{X: types.StartX, Y: types.StartY}, types.RIGHT),
		food:         manager.NewFoodManager(grid, collisionMgr, seed),
		turns:        manager.NewTurnManager(),
		collisionMgr: collisionMgr,
		renderer:     renderer,
		input:        input,
		clock:        clock,
	}
	env.food.Refill(env.snake)
	return env
}

func (e *Environment) AddListener(l Listener) {
	e.listeners = append(e.listeners, l)
}

func (e *Environment) Snake() *entity.Snake {
	return e.snake
}

func (e *Environment) Food() *manager.FoodManager {
	return e.food
}

// FoodList returns the active food points
func (e *Environment) FoodList() []types.Point {
	return e.food.GetFoodList()
}

func (e *Environment) Field() types.Grid {
	return e.Grid
}

func (e *Environment) Turns() *manager.TurnManager {
	return e.turns
}

// Running reports whether the session is still in play
func (e *Environment) Running() bool {
	return e.Status == types.Running
}

// Run drives the frame loop until the session ends
func (e *Environment) Run() {
	for e.Running() {
		e.Step(e.poll())
		e.Render()
		if e.clock != nil {
			e.clock.Tick(e.FPS)
		}
	}
}

func (e *Environment) poll() Input {
	if e.input == nil {
		return Input{}
	}
	return e.input.Poll()
}

// Step advances the session by one frame
func (e *Environment) Step(in Input) {
	if !e.Running() {
		return
	}
	e.Frames++

	if in.Quit {
		e.end(types.QuitSignal)
		return
	}

	e.food.SetLevel()
	e.FPS = e.food.Speed()

	if collision := e.collisionMgr.CheckCollision(e.snake); collision != types.NoCollision {
		e.end(collision)
		return
	}

	e.checkFood()
	e.updatePosition(in.Heading)
}

func (e *Environment) end(cause types.CollisionType) {
	e.Status = types.Ended
	e.Cause = cause
	for _, l := range e.listeners {
		l.Died(cause)
	}
}

// checkFood consumes at most one food item covered by the head square
func (e *Environment) checkFood() {
	foodList := e.food.GetFoodList()
	i := e.collisionMgr.CheckFoodCollisions(e.snake.GetHead().Position, foodList)
	if i < 0 {
		return
	}

	at := foodList[i]
	e.snake.AppendTailClone()
	e.food.GetEaten(i, e.snake)
	for _, l := range e.listeners {
		l.FoodEaten(at)
	}
}

// updatePosition anchors a new heading to the head's cell and moves every
// segment one cell. A segment standing on a pending turn takes it; the
// tail retires it.
func (e *Environment) updatePosition(heading types.Direction) {
	if heading != types.NONE {
		e.turns.Record(e.snake.GetHead().Position, heading)
	}

	last := len(e.snake.Body) - 1
	for i := range e.snake.Body {
		seg := &e.snake.Body[i]
		at := seg.Position
		if turn, ok := e.turns.Lookup(at); ok {
			seg.Move(turn)
			if i == last {
				e.turns.Retire(at)
			}
		} else {
			seg.Move(seg.Heading)
		}
	}
}

// Render draws food as circles and segments as squares on black
func (e *Environment) Render() {
	if e.renderer == nil {
		return
	}
	e.renderer.Clear(types.Black)
	for _, food := range e.food.GetFoodList() {
		e.renderer.FillCircle(food, types.FoodRadius, types.White)
	}
	for _, seg := range e.snake.Body {
		e.renderer.FillRect(seg.Square(), e.snake.Color)
	}
	e.renderer.Present()
}
