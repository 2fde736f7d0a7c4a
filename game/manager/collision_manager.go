package manager

import (
	"gridsnake/game/entity"
	"gridsnake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision runs the wall and self checks against the snake head
func (cm *CollisionManager) CheckCollision(snake *entity.Snake) types.CollisionType {
	if cm.IsWallCollision(snake.GetHead().Position) {
		return types.WallCollision
	}
	if cm.IsSelfCollision(snake) {
		return types.SelfCollision
	}
	return types.NoCollision
}

// IsWallCollision checks if a head position is off the field. The field
// edges themselves are still in play.
func (cm *CollisionManager) IsWallCollision(pos types.Point) bool {
	return pos.X > cm.grid.Width || pos.Y > cm.grid.Height || pos.X < 0 || pos.Y < 0
}

// IsSelfCollision checks whether the head square contains the centre of any
// other segment's square.
func (cm *CollisionManager) IsSelfCollision(snake *entity.Snake) bool {
	head := snake.GetHead().Square()
	for _, part := range snake.Body[1:] {
		if head.Contains(part.Square().Center()) {
			return true
		}
	}
	return false
}

// CheckFoodCollisions returns the index of the first food point covered by
// the head square, or -1.
func (cm *CollisionManager) CheckFoodCollisions(head types.Point, foodList []types.Point) int {
	square := types.Square(head)
	for i, food := range foodList {
		if square.Contains(food) {
			return i
		}
	}
	return -1
}

// ValidateSpawnPosition checks if a food point is on the field and clear of
// the snake
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	if pos.X < 0 || pos.X >= cm.grid.Width || pos.Y < 0 || pos.Y >= cm.grid.Height {
		return false
	}
	return snake == nil || !snake.Occupies(pos)
}
