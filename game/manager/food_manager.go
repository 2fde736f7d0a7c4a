package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"

	"golang.org/x/exp/rand"
)

const (
	DefaultEatenPerLevel = 5 // Food eaten before the level goes up
	DefaultMaxFood       = 3 // Upper bound on simultaneously active food
	MaxSpawnTries        = 64
)

type FoodManager struct {
	grid          types.Grid
	foodList      []types.Point
	eaten         int
	level         int
	baseLevel     int
	eatenPerLevel int
	maxFood       int
	rng           *rand.Rand
	collisionMgr  *CollisionManager
}

func NewFoodManager(grid types.Grid, collisionMgr *CollisionManager, seed uint64) *FoodManager {
	return &FoodManager{
		grid:          grid,
		foodList:      make([]types.Point, 0),
		level:         1,
		baseLevel:     1,
		eatenPerLevel: DefaultEatenPerLevel,
		maxFood:       DefaultMaxFood,
		rng:           rand.New(rand.NewSource(seed)),
		collisionMgr:  collisionMgr,
	}
}

// SetPacing changes how fast the level rises and how much food may be out at
// once. Non-positive values keep the current setting.
func (fm *FoodManager) SetPacing(eatenPerLevel, maxFood int) {
	if eatenPerLevel > 0 {
		fm.eatenPerLevel = eatenPerLevel
	}
	if maxFood > 0 {
		fm.maxFood = maxFood
	}
}

// SetBaseLevel sets the starting difficulty
func (fm *FoodManager) SetBaseLevel(level int) {
	if level < 1 {
		level = 1
	}
	fm.baseLevel = level
	fm.SetLevel()
}

// SetLevel recomputes the level from the base level and food eaten so far
func (fm *FoodManager) SetLevel() {
	fm.level = fm.baseLevel + fm.eaten/fm.eatenPerLevel
}

// Speed is the target frame rate for the current level
func (fm *FoodManager) Speed() int {
	return fm.level*10 + 100
}

// Target is the number of food items kept on the field at this level
func (fm *FoodManager) Target() int {
	target := 1 + (fm.level-1)/2
	if target > fm.maxFood {
		return fm.maxFood
	}
	return target
}

// GenerateFood picks a random free cell centre. It returns false when no cell
// is free.
func (fm *FoodManager) GenerateFood(snake *entity.Snake) (types.Point, bool) {
	cols, rows := fm.grid.Cells()
	for i := 0; i < MaxSpawnTries; i++ {
		food := cellCenter(fm.rng.Intn(cols), fm.rng.Intn(rows))
		if fm.isFree(food, snake) {
			return food, true
		}
	}

	// Crowded field, pick among the remaining free cells
	free := make([]types.Point, 0)
	for cx := 0; cx < cols; cx++ {
		for cy := 0; cy < rows; cy++ {
			if food := cellCenter(cx, cy); fm.isFree(food, snake) {
				free = append(free, food)
			}
		}
	}
	if len(free) == 0 {
		return types.Point{}, false
	}
	return free[fm.rng.Intn(len(free))], true
}

func (fm *FoodManager) isFree(food types.Point, snake *entity.Snake) bool {
	if !fm.collisionMgr.ValidateSpawnPosition(food, snake) {
		return false
	}
	for _, f := range fm.foodList {
		if f == food {
			return false
		}
	}
	return true
}

// Refill tops the active food up to Target
func (fm *FoodManager) Refill(snake *entity.Snake) {
	for len(fm.foodList) < fm.Target() {
		food, ok := fm.GenerateFood(snake)
		if !ok {
			return
		}
		fm.foodList = append(fm.foodList, food)
	}
}

// GetEaten consumes the food at index and spawns replacements. It panics
// when index is out of range.
func (fm *FoodManager) GetEaten(index int, snake *entity.Snake) {
	fm.foodList = append(fm.foodList[:index], fm.foodList[index+1:]...)
	fm.eaten++
	fm.SetLevel()
	fm.Refill(snake)
}

func (fm *FoodManager) GetFoodList() []types.Point {
	return fm.foodList
}

func (fm *FoodManager) AddFood(food types.Point) {
	fm.foodList = append(fm.foodList, food)
}

func (fm *FoodManager) Eaten() int {
	return fm.eaten
}

func (fm *FoodManager) Level() int {
	return fm.level
}

func cellCenter(cx, cy int) types.Point {
	return types.Point{
		X: cx*types.CellSize + types.CellSize/2,
		Y: cy*types.CellSize + types.CellSize/2,
	}
}
