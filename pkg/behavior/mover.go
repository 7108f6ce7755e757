package behavior

import (
	"math"

	"github.com/gonewx/sprite-behaviors/pkg/config"
)

// Mover 移动物理原语
//
// 持有精灵的速度上限（设置移动模式时确定），所有移动模式与跟随行为共享同一个 Mover。
// 这里的物理只是逐帧离散近似：重力按固定步长累加，碰撞由宿主的探测结果决定。
type Mover struct {
	sprite Sprite
	tiles  TileMap

	vxCeiling float64
	vyCeiling float64

	// 地面行走探测点偏移
	footX float64
	footY float64
}

// newMover 创建移动原语
func newMover(sprite Sprite, tiles TileMap, feet config.WalkFootConfig, ceiling config.PatternConfig) *Mover {
	m := &Mover{
		sprite: sprite,
		tiles:  tiles,
		footX:  feet.OffsetX,
		footY:  feet.OffsetY,
	}
	m.SetCeiling(ceiling.VX, ceiling.VY)
	return m
}

// SetCeiling 设置速度上限（取绝对值）
func (m *Mover) SetCeiling(vx, vy float64) {
	m.vxCeiling = math.Abs(vx)
	m.vyCeiling = math.Abs(vy)
}

// Ceiling 返回当前速度上限
func (m *Mover) Ceiling() (vx, vy float64) {
	return m.vxCeiling, m.vyCeiling
}

// MoveRight 以上限速度向右移动
func (m *Mover) MoveRight() {
	m.sprite.SetVX(m.vxCeiling)
}

// MoveLeft 以上限速度向左移动
func (m *Mover) MoveLeft() {
	m.sprite.SetVX(-m.vxCeiling)
}

// Fall 施加一步重力：vy = min(vy + step, vyCeiling)
func (m *Mover) Fall(step float64) {
	m.sprite.SetVY(math.Min(m.sprite.VY()+step, m.vyCeiling))
}

// JumpOnGround 着地时以上限速度向上弹起
//
// 返回:
//   - true: 本帧发生弹跳
func (m *Mover) JumpOnGround() bool {
	if m.sprite.IsHittingTile(CollisionBottom) {
		m.sprite.SetVY(-m.vyCeiling)
		return true
	}
	return false
}

// TurnOnWall 碰墙掉头
//
// 左右同时碰撞时左侧优先（向右移动）。
//
// 返回:
//   - true: 本帧发生掉头
func (m *Mover) TurnOnWall() bool {
	if m.sprite.IsHittingTile(CollisionLeft) {
		m.MoveRight()
		return true
	}
	if m.sprite.IsHittingTile(CollisionRight) {
		m.MoveLeft()
		return true
	}
	return false
}

// WalkOnFloor 沿地面行走并避开悬崖
//
// 在脚下左右两个探测点检查实心瓦片：
//   - 左侧悬空: 向右移动，返回 false
//   - 右侧悬空: 向左移动，返回 false
//   - 两侧都有支撑: 返回 true
func (m *Mover) WalkOnFloor() bool {
	if m.tiles == nil {
		return true
	}

	x, y := m.sprite.X(), m.sprite.Y()
	floorY := y + m.footY

	if !m.isSolidAt(x-m.footX, floorY) {
		m.MoveRight()
		return false
	}
	if !m.isSolidAt(x+m.footX, floorY) {
		m.MoveLeft()
		return false
	}
	return true
}

// MoveTo 水平朝目标移动
//
// x 坐标严格相等时视为已对齐，不做修正并返回 false。
func (m *Mover) MoveTo(target Sprite) bool {
	switch {
	case target.X() < m.sprite.X():
		m.MoveLeft()
		return true
	case m.sprite.X() < target.X():
		m.MoveRight()
		return true
	default:
		return false
	}
}

// isSolidAt 像素坐标所在的瓦片是否为实心
func (m *Mover) isSolidAt(px, py float64) bool {
	size := float64(m.tiles.TileSize())
	if size <= 0 {
		return false
	}
	col := int(math.Floor(px / size))
	row := int(math.Floor(py / size))
	return m.tiles.IsObstacle(col, row)
}
