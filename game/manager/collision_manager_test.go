package manager

import (
	"testing"

	"gridsnake/game/entity"
	"gridsnake/game/types"
)

func TestIsWallCollision(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid)

	tests := []struct {
		name string
		pos  types.Point
		want bool
	}{
		{"origin", types.Point{X: 0, Y: 0}, false},
		{"inside", types.Point{X: 400, Y: 300}, false},
		{"right edge", types.Point{X: 800, Y: 300}, false},
		{"bottom edge", types.Point{X: 400, Y: 600}, false},
		{"past right", types.Point{X: 810, Y: 200}, true},
		{"past bottom", types.Point{X: 400, Y: 620}, true},
		{"past left", types.Point{X: -20, Y: 200}, true},
		{"past top", types.Point{X: 200, Y: -1}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := cm.IsWallCollision(tt.pos); got != tt.want {
				t.Errorf("IsWallCollision(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestIsSelfCollision(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid)

	straight := &entity.Snake{Body: []entity.Segment{
		entity.NewSegment(types.Point{X: 240, Y: 200}, types.RIGHT),
		entity.NewSegment(types.Point{X: 220, Y: 200}, types.RIGHT),
		entity.NewSegment(types.Point{X: 200, Y: 200}, types.RIGHT),
	}}
	if cm.IsSelfCollision(straight) {
		t.Error("Adjacent segments must not count as a collision")
	}

	overlapping := &entity.Snake{Body: []entity.Segment{
		entity.NewSegment(types.Point{X: 200, Y: 200}, types.UP),
		entity.NewSegment(types.Point{X: 220, Y: 200}, types.LEFT),
		entity.NewSegment(types.Point{X: 195, Y: 195}, types.RIGHT),
	}}
	if !cm.IsSelfCollision(overlapping) {
		t.Error("Expected collision when the head square holds a segment centre")
	}
	if got := cm.CheckCollision(overlapping); got != types.SelfCollision {
		t.Errorf("Expected self collision, got %v", got)
	}

	// A centre exactly on the far edge is outside the head square
	edge := &entity.Snake{Body: []entity.Segment{
		entity.NewSegment(types.Point{X: 200, Y: 200}, types.RIGHT),
		entity.NewSegment(types.Point{X: 210, Y: 200}, types.RIGHT),
	}}
	if cm.IsSelfCollision(edge) {
		t.Error("Centre on the exclusive edge must not collide")
	}
}

func TestCheckCollisionPrefersWall(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid)
	snake := entity.NewSnake(types.Point{X: 810, Y: 200}, types.RIGHT)
	if got := cm.CheckCollision(snake); got != types.WallCollision {
		t.Errorf("Expected wall collision, got %v", got)
	}
}

func TestCheckFoodCollisions(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid)

	food := []types.Point{{X: 50, Y: 50}, {X: 220, Y: 200}}
	if got := cm.CheckFoodCollisions(types.Point{X: 210, Y: 195}, food); got != 1 {
		t.Errorf("Expected food 1 under the head, got %d", got)
	}
	if got := cm.CheckFoodCollisions(types.Point{X: 400, Y: 400}, food); got != -1 {
		t.Errorf("Expected no food under the head, got %d", got)
	}
}

func TestValidateSpawnPosition(t *testing.T) {
	cm := NewCollisionManager(types.DefaultGrid)
	snake := entity.NewSnake(types.Point{X: 200, Y: 200}, types.RIGHT)

	if cm.ValidateSpawnPosition(types.Point{X: 210, Y: 210}, snake) {
		t.Error("Food on the snake must be rejected")
	}
	if !cm.ValidateSpawnPosition(types.Point{X: 230, Y: 210}, snake) {
		t.Error("Free cell centre must be accepted")
	}
	if cm.ValidateSpawnPosition(types.Point{X: 810, Y: 210}, snake) {
		t.Error("Off-field food must be rejected")
	}
}
