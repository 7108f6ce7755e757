package systems

import (
	"testing"

	"github.com/gonewx/sprite-behaviors/pkg/components"
	"github.com/gonewx/sprite-behaviors/pkg/ecs"
	"github.com/gonewx/sprite-behaviors/pkg/tilemap"
)

// newBody 创建带物理组件的测试实体，默认不限制在世界内
func newBody(em *ecs.EntityManager, x, y, vx, vy, size float64) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{VX: vx, VY: vy})
	ecs.AddComponent(em, id, &components.CollisionComponent{Width: size, Height: size})
	ecs.AddComponent(em, id, &components.TileCollisionComponent{})
	ecs.AddComponent(em, id, &components.SpriteFlagsComponent{})
	return id
}

func mustParse(t *testing.T, lines ...string) *tilemap.TileMap {
	t.Helper()
	m, err := tilemap.Parse(lines, 16, '#')
	if err != nil {
		t.Fatalf("tilemap.Parse error: %v", err)
	}
	return m
}

func getPhysics(em *ecs.EntityManager, id ecs.EntityID) (*components.PositionComponent, *components.VelocityComponent, *components.TileCollisionComponent) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](em, id)
	vel, _ := ecs.GetComponent[*components.VelocityComponent](em, id)
	hit, _ := ecs.GetComponent[*components.TileCollisionComponent](em, id)
	return pos, vel, hit
}

func TestPhysicsIntegratesVelocity(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPhysicsSystem(em, nil, 320, 240, 32)
	id := newBody(em, 100, 100, 50, -20, 16)

	ps.Update(0.5)

	pos, vel, hit := getPhysics(em, id)
	if pos.X != 125 || pos.Y != 90 {
		t.Errorf("position = (%.1f, %.1f), want (125, 90)", pos.X, pos.Y)
	}
	if vel.VX != 50 || vel.VY != -20 {
		t.Errorf("velocity should be unchanged, got (%.1f, %.1f)", vel.VX, vel.VY)
	}
	if hit.Any() {
		t.Errorf("no tile map, no collision expected: %+v", hit)
	}
}

func TestPhysicsTileCollision(t *testing.T) {
	tiles := []string{
		"#####",
		"#...#",
		"#...#",
		"#####",
	}

	tests := []struct {
		name           string
		x, y, vx, vy   float64
		wantX, wantY   float64
		wantHit        components.TileCollisionComponent
		wantVX, wantVY float64
	}{
		{
			name: "right wall",
			x:    56, y: 24, vx: 100,
			wantX: 56, wantY: 24,
			wantHit: components.TileCollisionComponent{Right: true},
		},
		{
			name: "left wall",
			x:    24, y: 24, vx: -100,
			wantX: 24, wantY: 24,
			wantHit: components.TileCollisionComponent{Left: true},
		},
		{
			name: "floor",
			x:    40, y: 40, vy: 100,
			wantX: 40, wantY: 40,
			wantHit: components.TileCollisionComponent{Bottom: true},
		},
		{
			name: "ceiling",
			x:    40, y: 24, vy: -100,
			wantX: 40, wantY: 24,
			wantHit: components.TileCollisionComponent{Top: true},
		},
		{
			name: "corner keeps free axis",
			x:    56, y: 30, vx: 100, vy: 20,
			wantX: 56, wantY: 32,
			wantHit: components.TileCollisionComponent{Right: true},
			wantVY:  20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			ps := NewPhysicsSystem(em, mustParse(t, tiles...), 80, 64, 32)
			id := newBody(em, tt.x, tt.y, tt.vx, tt.vy, 16)

			ps.Update(0.1)

			pos, vel, hit := getPhysics(em, id)
			if pos.X != tt.wantX || pos.Y != tt.wantY {
				t.Errorf("position = (%.1f, %.1f), want (%.1f, %.1f)", pos.X, pos.Y, tt.wantX, tt.wantY)
			}
			if *hit != tt.wantHit {
				t.Errorf("hit = %+v, want %+v", *hit, tt.wantHit)
			}
			if vel.VX != tt.wantVX || vel.VY != tt.wantVY {
				t.Errorf("velocity = (%.1f, %.1f), want (%.1f, %.1f)", vel.VX, vel.VY, tt.wantVX, tt.wantVY)
			}
		})
	}
}

func TestPhysicsRestingOnFloorReportsBottomEveryFrame(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPhysicsSystem(em, mustParse(t, "....", "....", "####"), 64, 48, 32)
	id := newBody(em, 24, 24, 0, 0, 16)

	for frame := 0; frame < 3; frame++ {
		_, vel, _ := getPhysics(em, id)
		vel.VY += 10 // 行为引擎的重力步进

		ps.Update(1.0 / 60)

		pos, _, hit := getPhysics(em, id)
		if !hit.Bottom {
			t.Fatalf("frame %d: resting sprite should touch the floor", frame)
		}
		if pos.Y != 24 {
			t.Fatalf("frame %d: y = %.3f, want 24", frame, pos.Y)
		}
	}
}

func TestPhysicsDestroyOnWall(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPhysicsSystem(em, mustParse(t, "...#"), 64, 16, 32)
	bullet := newBody(em, 24, 8, 400, 0, 4)
	flags, _ := ecs.GetComponent[*components.SpriteFlagsComponent](em, bullet)
	flags.DestroyOnWall = true

	ps.Update(0.1)
	if !em.IsMarkedForDestroy(bullet) {
		t.Error("bullet hitting a wall should be destroyed")
	}
}

func TestPhysicsStayInScreen(t *testing.T) {
	em := ecs.NewEntityManager()
	ps := NewPhysicsSystem(em, nil, 100, 100, 32)
	id := newBody(em, 95, 5, 100, -100, 10)
	flags, _ := ecs.GetComponent[*components.SpriteFlagsComponent](em, id)
	flags.StayInScreen = true

	ps.Update(0.1)

	pos, vel, _ := getPhysics(em, id)
	if pos.X != 95 || pos.Y != 5 {
		t.Errorf("position = (%.1f, %.1f), want clamped (95, 5)", pos.X, pos.Y)
	}
	if vel.VX != 0 || vel.VY != 0 {
		t.Errorf("clamped axes should stop, velocity = (%.1f, %.1f)", vel.VX, vel.VY)
	}
	if em.IsMarkedForDestroy(id) {
		t.Error("clamped sprite should not be destroyed")
	}
}

func TestPhysicsCullsOutsideWorld(t *testing.T) {
	tests := []struct {
		name   string
		x, y   float64
		culled bool
	}{
		{name: "inside", x: 50, y: 50, culled: false},
		{name: "within margin", x: -20, y: 50, culled: false},
		{name: "beyond left margin", x: -50, y: 50, culled: true},
		{name: "beyond bottom margin", x: 50, y: 150, culled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			em := ecs.NewEntityManager()
			ps := NewPhysicsSystem(em, nil, 100, 100, 32)
			id := newBody(em, tt.x, tt.y, 0, 0, 10)

			ps.Update(0.1)
			if em.IsMarkedForDestroy(id) != tt.culled {
				t.Errorf("culled = %v, want %v", em.IsMarkedForDestroy(id), tt.culled)
			}
		})
	}
}
