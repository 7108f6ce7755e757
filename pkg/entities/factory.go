package entities

import (
	"log"

	"github.com/gonewx/sprite-behaviors/pkg/behavior"
	"github.com/gonewx/sprite-behaviors/pkg/components"
	"github.com/gonewx/sprite-behaviors/pkg/ecs"
)

// NewSprite 按模板在 (x, y) 创建精灵实体
//
// 实体拥有位置、速度、碰撞盒、瓦片碰撞标志、物理开关、种类和外观组件；
// 新精灵默认限制在世界范围内。
//
// 参数:
//   - em: 实体管理器
//   - tpl: 精灵模板
//   - name: 精灵名称（为空时使用模板名）
//   - x, y: 中心坐标
func NewSprite(em *ecs.EntityManager, tpl *Template, name string, x, y float64) *Sprite {
	if name == "" {
		name = tpl.Name
	}

	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.PositionComponent{X: x, Y: y})
	ecs.AddComponent(em, id, &components.VelocityComponent{})
	ecs.AddComponent(em, id, &components.CollisionComponent{
		Width:  tpl.Width,
		Height: tpl.Height,
	})
	ecs.AddComponent(em, id, &components.TileCollisionComponent{})
	ecs.AddComponent(em, id, &components.SpriteFlagsComponent{StayInScreen: true})
	ecs.AddComponent(em, id, &components.KindComponent{Name: name, Kind: string(tpl.Kind())})
	ecs.AddComponent(em, id, &components.SpriteComponent{
		Image: tpl.Image(),
		Glyph: tpl.Glyph,
		Color: tpl.Color,
	})

	return SpriteOf(em, id)
}

// Factory 实现 behavior.SpriteFactory
//
// 生成的精灵不限制在世界内，离开世界后被 PhysicsSystem 删除；
// Lifetime > 0 时另带生命周期组件，由 LifetimeSystem 超时清理。
type Factory struct {
	em *ecs.EntityManager

	// Lifetime 生成精灵的最大存活时间（秒），0 表示不限制
	Lifetime float64
}

// NewFactory 创建精灵工厂
func NewFactory(em *ecs.EntityManager, lifetime float64) *Factory {
	return &Factory{em: em, Lifetime: lifetime}
}

// Spawn 克隆模板生成新精灵
//
// 支持 *Template 与 *Sprite 两种模板；其它实现只复制种类和图像。
func (f *Factory) Spawn(template behavior.SpriteTemplate) behavior.Sprite {
	var tpl *Template
	switch t := template.(type) {
	case *Template:
		tpl = t
	case *Sprite:
		if !f.em.IsAlive(t.EntityID()) {
			log.Printf("[Factory] ⚠️ 模板精灵 %d 已不存在", t.ID())
			return nil
		}
		tpl = t.Template()
	case nil:
		return nil
	default:
		tpl = &Template{Name: string(t.Kind()), kind: t.Kind(), Glyph: DefaultGlyph, image: t.Image()}
		if img := t.Image(); img != nil {
			bounds := img.Bounds()
			tpl.Width, tpl.Height = float64(bounds.Dx()), float64(bounds.Dy())
		}
	}

	sprite := NewSprite(f.em, tpl, "", 0, 0)
	sprite.SetFlag(behavior.FlagStayInScreen, false)
	if f.Lifetime > 0 {
		ecs.AddComponent(f.em, sprite.EntityID(), &components.LifetimeComponent{MaxLifetime: f.Lifetime})
	}
	return sprite
}
