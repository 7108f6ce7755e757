package systems

import (
	"testing"

	"github.com/gonewx/sprite-behaviors/pkg/components"
	"github.com/gonewx/sprite-behaviors/pkg/ecs"
	"github.com/gonewx/sprite-behaviors/pkg/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
)

func addRenderable(em *ecs.EntityManager, x, y float64, img *ebiten.Image) ecs.EntityID {
	id := em.CreateEntity()
	em.AddComponent(id, &components.PositionComponent{X: x, Y: y})
	em.AddComponent(id, &components.CollisionComponent{Width: 8, Height: 8})
	em.AddComponent(id, &components.SpriteComponent{Image: img, Color: colorGray})
	return id
}

func TestRenderSystemQuery(t *testing.T) {
	em := ecs.NewEntityManager()
	tiles, err := tilemap.Parse([]string{"####", "#..#", "####"}, 16, '#')
	if err != nil {
		t.Fatalf("Parse error: %v", err)
	}
	system := NewRenderSystem(em, tiles)

	addRenderable(em, 24, 24, ebiten.NewImage(4, 4))

	// 只有位置组件的实体不应被渲染
	bare := em.CreateEntity()
	em.AddComponent(bare, &components.PositionComponent{X: 10, Y: 10})

	screen := ebiten.NewImage(64, 48)
	system.Draw(screen, 0)

	if system.Drawn() != 1 {
		t.Errorf("Drawn() = %d, want 1", system.Drawn())
	}
}

func TestRenderSystemWithNilImage(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewRenderSystem(em, nil)

	// 没有图像时绘制纯色矩形，不应崩溃
	addRenderable(em, 20, 20, nil)

	screen := ebiten.NewImage(64, 48)
	system.Draw(screen, 0)

	if system.Drawn() != 1 {
		t.Errorf("Drawn() = %d, want 1", system.Drawn())
	}
}

func TestRenderSystemSkipsMarkedEntities(t *testing.T) {
	em := ecs.NewEntityManager()
	system := NewRenderSystem(em, nil)

	addRenderable(em, 10, 10, nil)
	doomed := addRenderable(em, 30, 10, nil)
	em.DestroyEntity(doomed)

	screen := ebiten.NewImage(64, 48)
	system.DrawSprites(screen, 0)

	if system.Drawn() != 1 {
		t.Errorf("Drawn() = %d, want 1 (marked entity skipped)", system.Drawn())
	}
}
