package systems

import (
	"image/color"

	"github.com/gonewx/sprite-behaviors/pkg/components"
	"github.com/gonewx/sprite-behaviors/pkg/ecs"
	"github.com/gonewx/sprite-behaviors/pkg/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 渲染颜色
var (
	BackgroundColor = color.RGBA{R: 24, G: 26, B: 38, A: 255}
	TileColor       = color.RGBA{R: 96, G: 84, B: 72, A: 255}
	TileEdgeColor   = color.RGBA{R: 136, G: 120, B: 100, A: 255}
)

// RenderSystem 绘制瓦片地图与精灵
//
// 精灵按实体 ID 升序绘制（后创建的子弹覆盖在发射者之上）。
// 有图像的精灵按碰撞盒尺寸缩放绘制，没有图像时用纯色矩形代替。
type RenderSystem struct {
	entityManager *ecs.EntityManager
	tiles         *tilemap.TileMap

	// drawn 最近一次 Draw 绘制的精灵数量
	drawn int
}

// NewRenderSystem 创建渲染系统
func NewRenderSystem(em *ecs.EntityManager, tiles *tilemap.TileMap) *RenderSystem {
	return &RenderSystem{
		entityManager: em,
		tiles:         tiles,
	}
}

// Draw 绘制整个世界
// 参数:
//   - screen: 绘制目标
//   - cameraX: 摄像机的世界坐标X位置（用于世界坐标到屏幕坐标的转换）
func (s *RenderSystem) Draw(screen *ebiten.Image, cameraX float64) {
	screen.Fill(BackgroundColor)
	s.DrawTiles(screen, cameraX)
	s.DrawSprites(screen, cameraX)
}

// DrawTiles 绘制实心瓦片
func (s *RenderSystem) DrawTiles(screen *ebiten.Image, cameraX float64) {
	if s.tiles == nil {
		return
	}

	for row := 0; row < s.tiles.Rows(); row++ {
		for col := 0; col < s.tiles.Columns(); col++ {
			if !s.tiles.IsObstacle(col, row) {
				continue
			}
			x, y, size := s.tiles.TileRect(col, row)
			sx := float32(x - cameraX)
			vector.DrawFilledRect(screen, sx, float32(y), float32(size), float32(size), TileEdgeColor, false)
			vector.DrawFilledRect(screen, sx+1, float32(y)+1, float32(size)-2, float32(size)-2, TileColor, false)
		}
	}
}

// DrawSprites 绘制所有拥有位置、碰撞盒和精灵组件的实体
func (s *RenderSystem) DrawSprites(screen *ebiten.Image, cameraX float64) {
	entities := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.CollisionComponent,
		*components.SpriteComponent,
	](s.entityManager)

	s.drawn = 0
	for _, id := range entities {
		if s.entityManager.IsMarkedForDestroy(id) {
			continue
		}
		s.drawEntity(screen, id, cameraX)
		s.drawn++
	}
}

// Drawn 返回最近一次绘制的精灵数量
func (s *RenderSystem) Drawn() int {
	return s.drawn
}

func (s *RenderSystem) drawEntity(screen *ebiten.Image, id ecs.EntityID, cameraX float64) {
	pos, _ := ecs.GetComponent[*components.PositionComponent](s.entityManager, id)
	col, _ := ecs.GetComponent[*components.CollisionComponent](s.entityManager, id)
	sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

	// 位置是中心点，绘制从左上角开始
	left := pos.X + col.OffsetX - col.Width/2 - cameraX
	top := pos.Y + col.OffsetY - col.Height/2

	if sprite.Image == nil {
		vector.DrawFilledRect(screen, float32(left), float32(top), float32(col.Width), float32(col.Height), sprite.Color, false)
		return
	}

	bounds := sprite.Image.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(col.Width/float64(bounds.Dx()), col.Height/float64(bounds.Dy()))
	op.GeoM.Translate(left, top)
	screen.DrawImage(sprite.Image, op)
}
