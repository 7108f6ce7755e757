package systems

import (
	"log"

	"github.com/gonewx/sprite-behaviors/pkg/components"
	"github.com/gonewx/sprite-behaviors/pkg/ecs"
	"github.com/gonewx/sprite-behaviors/pkg/tilemap"
)

// PhysicsLogFrameInterval 物理系统日志输出间隔（每N帧输出一次）
const PhysicsLogFrameInterval = 100

// PhysicsSystem 积分速度并解析实体与瓦片的碰撞
//
// 每帧先沿 X 轴移动并修正，再沿 Y 轴移动并修正；
// 被阻挡的方向写入 TileCollisionComponent，阻挡轴上的速度清零。
// 之后按 SpriteFlagsComponent 处理碰墙销毁、限制在世界内和离开世界删除。
type PhysicsSystem struct {
	em    *ecs.EntityManager
	tiles *tilemap.TileMap

	// 世界范围（像素）
	width  float64
	height float64

	// 实体离开世界超过此距离后删除
	cullMargin float64

	logFrameCounter int
}

// NewPhysicsSystem 创建物理系统
//
// 参数:
//   - em: 实体管理器
//   - tiles: 瓦片地图，为 nil 时不做瓦片碰撞
//   - width, height: 世界范围（像素）
//   - cullMargin: 离开世界后的删除距离（像素）
func NewPhysicsSystem(em *ecs.EntityManager, tiles *tilemap.TileMap, width, height, cullMargin float64) *PhysicsSystem {
	return &PhysicsSystem{
		em:         em,
		tiles:      tiles,
		width:      width,
		height:     height,
		cullMargin: cullMargin,
	}
}

// box 计算碰撞盒边界（中心对齐）
func box(pos *components.PositionComponent, col *components.CollisionComponent) (left, top, right, bottom float64) {
	cx := pos.X + col.OffsetX
	cy := pos.Y + col.OffsetY
	return cx - col.Width/2, cy - col.Height/2, cx + col.Width/2, cy + col.Height/2
}

// Update 更新所有可移动实体
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (ps *PhysicsSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.VelocityComponent,
		*components.CollisionComponent,
	](ps.em)

	ps.logFrameCounter++
	if ps.logFrameCounter%PhysicsLogFrameInterval == 1 && len(entities) > 0 {
		log.Printf("[PhysicsSystem] 更新 %d 个实体", len(entities))
	}

	for _, id := range entities {
		if ps.em.IsMarkedForDestroy(id) {
			continue
		}

		pos, _ := ecs.GetComponent[*components.PositionComponent](ps.em, id)
		vel, _ := ecs.GetComponent[*components.VelocityComponent](ps.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](ps.em, id)

		hit, ok := ecs.GetComponent[*components.TileCollisionComponent](ps.em, id)
		if !ok {
			hit = &components.TileCollisionComponent{}
		}
		hit.Reset()

		pos.X += vel.VX * deltaTime
		ps.resolveX(pos, vel, col, hit)

		pos.Y += vel.VY * deltaTime
		ps.resolveY(pos, vel, col, hit)

		flags, ok := ecs.GetComponent[*components.SpriteFlagsComponent](ps.em, id)
		if !ok {
			continue
		}

		if flags.DestroyOnWall && hit.Any() {
			ps.em.DestroyEntity(id)
			continue
		}

		if flags.StayInScreen {
			ps.clamp(pos, vel, col)
		} else if ps.outsideWorld(pos, col) {
			log.Printf("[PhysicsSystem] 实体 %d 离开世界 (%.1f, %.1f)，删除", id, pos.X, pos.Y)
			ps.em.DestroyEntity(id)
		}
	}
}

// resolveX 把沿 X 轴嵌入瓦片的实体推回瓦片边缘
func (ps *PhysicsSystem) resolveX(pos *components.PositionComponent, vel *components.VelocityComponent,
	col *components.CollisionComponent, hit *components.TileCollisionComponent) {
	if ps.tiles == nil || vel.VX == 0 {
		return
	}

	left, top, right, bottom := box(pos, col)
	found, minCol, maxCol, _, _ := ps.tiles.AnySolid(left, top, right, bottom)
	if !found {
		return
	}

	size := float64(ps.tiles.TileSize())
	if vel.VX > 0 {
		pos.X = float64(minCol)*size - col.Width/2 - col.OffsetX
		hit.Right = true
	} else {
		pos.X = float64(maxCol+1)*size + col.Width/2 - col.OffsetX
		hit.Left = true
	}
	vel.VX = 0
}

// resolveY 把沿 Y 轴嵌入瓦片的实体推回瓦片边缘
func (ps *PhysicsSystem) resolveY(pos *components.PositionComponent, vel *components.VelocityComponent,
	col *components.CollisionComponent, hit *components.TileCollisionComponent) {
	if ps.tiles == nil || vel.VY == 0 {
		return
	}

	left, top, right, bottom := box(pos, col)
	found, _, _, minRow, maxRow := ps.tiles.AnySolid(left, top, right, bottom)
	if !found {
		return
	}

	size := float64(ps.tiles.TileSize())
	if vel.VY > 0 {
		pos.Y = float64(minRow)*size - col.Height/2 - col.OffsetY
		hit.Bottom = true
	} else {
		pos.Y = float64(maxRow+1)*size + col.Height/2 - col.OffsetY
		hit.Top = true
	}
	vel.VY = 0
}

// clamp 把碰撞盒限制在世界范围内
func (ps *PhysicsSystem) clamp(pos *components.PositionComponent, vel *components.VelocityComponent, col *components.CollisionComponent) {
	left, top, right, bottom := box(pos, col)

	switch {
	case left < 0:
		pos.X -= left
		vel.VX = 0
	case right > ps.width:
		pos.X -= right - ps.width
		vel.VX = 0
	}

	switch {
	case top < 0:
		pos.Y -= top
		vel.VY = 0
	case bottom > ps.height:
		pos.Y -= bottom - ps.height
		vel.VY = 0
	}
}

// outsideWorld 碰撞盒是否完全离开世界（含删除距离）
func (ps *PhysicsSystem) outsideWorld(pos *components.PositionComponent, col *components.CollisionComponent) bool {
	left, top, right, bottom := box(pos, col)
	return right < -ps.cullMargin ||
		left > ps.width+ps.cullMargin ||
		bottom < -ps.cullMargin ||
		top > ps.height+ps.cullMargin
}
