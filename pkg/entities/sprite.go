package entities

import (
	"github.com/gonewx/sprite-behaviors/pkg/behavior"
	"github.com/gonewx/sprite-behaviors/pkg/components"
	"github.com/gonewx/sprite-behaviors/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
)

// Sprite 把 ECS 实体适配为行为引擎的 behavior.Sprite
//
// Sprite 只保存实体 ID，每次访问都从 EntityManager 读取组件；
// 实体缺少某个组件时读取返回零值，写入被忽略。
type Sprite struct {
	em *ecs.EntityManager
	id ecs.EntityID
}

// SpriteOf 包装已存在的实体
func SpriteOf(em *ecs.EntityManager, id ecs.EntityID) *Sprite {
	return &Sprite{em: em, id: id}
}

// EntityID 实体 ID
func (s *Sprite) EntityID() ecs.EntityID {
	return s.id
}

// ID 精灵身份，与实体 ID 一一对应
func (s *Sprite) ID() behavior.SpriteID {
	return behavior.SpriteID(s.id)
}

// Name 关卡中的精灵名称
func (s *Sprite) Name() string {
	if kind, ok := ecs.GetComponent[*components.KindComponent](s.em, s.id); ok {
		return kind.Name
	}
	return ""
}

// Kind 精灵种类
func (s *Sprite) Kind() behavior.SpriteKind {
	if kind, ok := ecs.GetComponent[*components.KindComponent](s.em, s.id); ok {
		return behavior.SpriteKind(kind.Kind)
	}
	return ""
}

// Image 当前绘制的图像
func (s *Sprite) Image() *ebiten.Image {
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, s.id); ok {
		return sprite.Image
	}
	return nil
}

// X 中心 X 坐标
func (s *Sprite) X() float64 {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, s.id); ok {
		return pos.X
	}
	return 0
}

// Y 中心 Y 坐标
func (s *Sprite) Y() float64 {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, s.id); ok {
		return pos.Y
	}
	return 0
}

// SetPosition 设置中心坐标
func (s *Sprite) SetPosition(x, y float64) {
	if pos, ok := ecs.GetComponent[*components.PositionComponent](s.em, s.id); ok {
		pos.X, pos.Y = x, y
	}
}

func (s *Sprite) VX() float64 {
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, s.id); ok {
		return vel.VX
	}
	return 0
}

func (s *Sprite) VY() float64 {
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, s.id); ok {
		return vel.VY
	}
	return 0
}

func (s *Sprite) SetVX(vx float64) {
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, s.id); ok {
		vel.VX = vx
	}
}

func (s *Sprite) SetVY(vy float64) {
	if vel, ok := ecs.GetComponent[*components.VelocityComponent](s.em, s.id); ok {
		vel.VY = vy
	}
}

// IsHittingTile 最近一次物理步进中是否在给定方向碰到实心瓦片
func (s *Sprite) IsHittingTile(direction behavior.CollisionDirection) bool {
	hit, ok := ecs.GetComponent[*components.TileCollisionComponent](s.em, s.id)
	if !ok {
		return false
	}
	switch direction {
	case behavior.CollisionLeft:
		return hit.Left
	case behavior.CollisionTop:
		return hit.Top
	case behavior.CollisionRight:
		return hit.Right
	case behavior.CollisionBottom:
		return hit.Bottom
	default:
		return false
	}
}

// SetFlag 设置物理开关
func (s *Sprite) SetFlag(flag behavior.SpriteFlag, on bool) {
	flags, ok := ecs.GetComponent[*components.SpriteFlagsComponent](s.em, s.id)
	if !ok {
		return
	}
	switch flag {
	case behavior.FlagStayInScreen:
		flags.StayInScreen = on
	case behavior.FlagDestroyOnWall:
		flags.DestroyOnWall = on
	}
}

// OnDestroyed 实体被 RemoveMarkedEntities 清理时调用 handler
// 实体已被清理时不注册并返回 false
func (s *Sprite) OnDestroyed(handler func()) bool {
	return s.em.OnEntityDestroyed(s.id, handler)
}

// Destroy 标记实体待删除
func (s *Sprite) Destroy() {
	s.em.DestroyEntity(s.id)
}

// Template 以当前精灵为原型生成模板
func (s *Sprite) Template() *Template {
	t := &Template{
		Name:  s.Name(),
		kind:  s.Kind(),
		Glyph: DefaultGlyph,
		image: s.Image(),
	}
	if col, ok := ecs.GetComponent[*components.CollisionComponent](s.em, s.id); ok {
		t.Width, t.Height = col.Width, col.Height
	}
	if sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.em, s.id); ok {
		t.Color = sprite.Color
		if sprite.Glyph != 0 {
			t.Glyph = sprite.Glyph
		}
	}
	return t
}
