package game

import (
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/gonewx/sprite-behaviors/pkg/behavior"
	"github.com/gonewx/sprite-behaviors/pkg/components"
	"github.com/gonewx/sprite-behaviors/pkg/config"
	"github.com/gonewx/sprite-behaviors/pkg/ecs"
	"github.com/gonewx/sprite-behaviors/pkg/entities"
	"github.com/gonewx/sprite-behaviors/pkg/systems"
	"github.com/gonewx/sprite-behaviors/pkg/tilemap"
	"github.com/hajimehoshi/ebiten/v2"
)

// World 宿主世界：实体、瓦片地图、系统与行为注册表
//
// 每帧更新顺序：
//  1. 时钟前进
//  2. 帧调度器回调（行为注册表 UpdateAll，写入速度）
//  3. PhysicsSystem（积分位置，计算瓦片碰撞）
//  4. AnimationSystem
//  5. LifetimeSystem
//  6. 清理标记删除的实体（触发行为注册表的销毁回调）
type World struct {
	tunables *config.BehaviorConfig
	level    *config.LevelConfig

	em        *ecs.EntityManager
	tiles     *tilemap.TileMap
	clock     *GameClock
	scheduler *FrameScheduler
	registry  *behavior.Registry
	factory   *entities.Factory

	physics   *systems.PhysicsSystem
	animation *systems.AnimationSystem
	lifetime  *systems.LifetimeSystem

	sprites   map[string]*entities.Sprite
	templates map[string]*entities.Template

	frame int
}

// Drawable 一个待绘制的精灵
type Drawable struct {
	ID     ecs.EntityID
	Name   string
	Kind   string
	X, Y   float64 // 中心坐标
	Width  float64
	Height float64
	Image  *ebiten.Image
	Glyph  rune
	Color  color.RGBA
}

// NewWorld 创建空世界，需调用 LoadLevel 后才会更新
//
// 参数:
//   - tunables: 行为参数配置，为 nil 时使用默认配置
func NewWorld(tunables *config.BehaviorConfig) *World {
	if tunables == nil {
		tunables = config.DefaultBehaviorConfig()
	}
	return &World{tunables: tunables}
}

// LoadLevel 丢弃当前世界状态并加载关卡
//
// 先创建所有模板与精灵，再按配置挂载行为，因此 follow / attack 可以引用关卡中任意精灵。
func (w *World) LoadLevel(level *config.LevelConfig) error {
	tiles, err := tilemap.Parse(level.Tiles, level.TileSize, config.SolidTile)
	if err != nil {
		return fmt.Errorf("failed to load level '%s': %w", level.Name, err)
	}
	width, height := tiles.Bounds()

	em := ecs.NewEntityManager()
	clock := NewGameClock()
	scheduler := NewFrameScheduler()
	animation := systems.NewAnimationSystem(em)
	factory := entities.NewFactory(em, w.tunables.Attack.ProjectileLifetime)

	registry := behavior.NewRegistry(behavior.Env{
		Tiles:    tiles,
		Factory:  factory,
		Clock:    clock,
		Animator: animation,
	}, w.tunables)
	registry.Attach(scheduler)

	w.level = level
	w.em = em
	w.tiles = tiles
	w.clock = clock
	w.scheduler = scheduler
	w.registry = registry
	w.factory = factory
	w.physics = systems.NewPhysicsSystem(em, tiles, width, height, config.WorldCullMargin)
	w.animation = animation
	w.lifetime = systems.NewLifetimeSystem(em)
	w.sprites = make(map[string]*entities.Sprite, len(level.Sprites))
	w.templates = make(map[string]*entities.Template, len(level.Templates))
	w.frame = 0

	for _, cfg := range level.Templates {
		tpl, err := entities.TemplateFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("failed to load level '%s': %w", level.Name, err)
		}
		w.templates[cfg.Name] = tpl
	}

	for _, cfg := range level.Sprites {
		tpl, err := entities.TemplateFromConfig(cfg)
		if err != nil {
			return fmt.Errorf("failed to load level '%s': %w", level.Name, err)
		}
		sprite := entities.NewSprite(em, tpl, cfg.Name, cfg.X, cfg.Y)
		sprite.SetFlag(behavior.FlagStayInScreen, cfg.StayInScreen)
		w.sprites[cfg.Name] = sprite
	}

	for _, cfg := range level.Sprites {
		if err := w.configure(cfg); err != nil {
			return fmt.Errorf("failed to load level '%s': %w", level.Name, err)
		}
	}

	log.Printf("[World] 加载关卡 '%s': %dx%d 瓦片, %d 个精灵, %d 个行为",
		level.Name, tiles.Columns(), tiles.Rows(), len(w.sprites), registry.Len())
	return nil
}

// configure 按配置为精灵挂载行为
func (w *World) configure(cfg config.SpriteConfig) error {
	sprite := w.sprites[cfg.Name]

	if cfg.Pattern != "" {
		pattern, err := behavior.ParseMovePattern(cfg.Pattern)
		if err != nil {
			return fmt.Errorf("sprite '%s': %w", cfg.Name, err)
		}
		var opts []behavior.PatternOption
		if cfg.Ceiling != nil {
			opts = append(opts, behavior.WithCeiling(cfg.Ceiling.VX, cfg.Ceiling.VY))
		}
		if cfg.StayInScreen {
			opts = append(opts, behavior.WithStayInScreen())
		}
		if err := w.registry.SetPattern(sprite, pattern, opts...); err != nil {
			return fmt.Errorf("sprite '%s': %w", cfg.Name, err)
		}
	}

	if cfg.Follow != "" {
		if err := w.registry.SetFollower(sprite, w.sprites[cfg.Follow]); err != nil {
			return fmt.Errorf("sprite '%s': %w", cfg.Name, err)
		}
	}

	if anim := cfg.Animation; anim != nil {
		tpl := sprite.Template()
		left := entities.NewDirectionalClip(anim.Left, int(tpl.Width), int(tpl.Height), anim.Frames, tpl.Color, true)
		right := entities.NewDirectionalClip(anim.Right, int(tpl.Width), int(tpl.Height), anim.Frames, tpl.Color, false)
		interval := time.Duration(anim.IntervalMs * float64(time.Millisecond))
		if err := w.registry.SetAnimation(sprite, left, right, interval); err != nil {
			return fmt.Errorf("sprite '%s': %w", cfg.Name, err)
		}
	}

	if attack := cfg.Attack; attack != nil {
		if err := w.registry.SetAttacker(sprite, w.sprites[attack.Target], w.templates[attack.Bullet]); err != nil {
			return fmt.Errorf("sprite '%s': %w", cfg.Name, err)
		}
	}

	return nil
}

// Update 推进一帧
//
// 参数:
//   - deltaTime: 自上一帧以来经过的时间（秒）
func (w *World) Update(deltaTime float64) {
	if w.em == nil {
		return
	}

	w.clock.Advance(deltaTime)
	w.scheduler.Tick()
	w.physics.Update(deltaTime)
	w.animation.Update(deltaTime)
	w.lifetime.Update(deltaTime)
	w.em.RemoveMarkedEntities()
	w.frame++
}

// Loaded 是否已加载关卡
func (w *World) Loaded() bool {
	return w.em != nil
}

// Level 当前关卡配置
func (w *World) Level() *config.LevelConfig {
	return w.level
}

// Frame 关卡加载以来的帧数
func (w *World) Frame() int {
	return w.frame
}

// EntityManager 实体管理器
func (w *World) EntityManager() *ecs.EntityManager {
	return w.em
}

// TileMap 瓦片地图
func (w *World) TileMap() *tilemap.TileMap {
	return w.tiles
}

// Registry 行为注册表
func (w *World) Registry() *behavior.Registry {
	return w.registry
}

// Clock 游戏时钟
func (w *World) Clock() *GameClock {
	return w.clock
}

// Bounds 世界像素尺寸
func (w *World) Bounds() (width, height float64) {
	if w.tiles == nil {
		return 0, 0
	}
	return w.tiles.Bounds()
}

// Sprite 按名称查找关卡中的精灵；已销毁的精灵返回 false
func (w *World) Sprite(name string) (*entities.Sprite, bool) {
	sprite, ok := w.sprites[name]
	if !ok || !w.em.IsAlive(sprite.EntityID()) {
		return nil, false
	}
	return sprite, true
}

// Template 按名称查找模板
func (w *World) Template(name string) (*entities.Template, bool) {
	tpl, ok := w.templates[name]
	return tpl, ok
}

// CountKind 统计某个种类的存活精灵数量
func (w *World) CountKind(kind string) int {
	count := 0
	for _, id := range ecs.GetEntitiesWith1[*components.KindComponent](w.em) {
		if k, _ := ecs.GetComponent[*components.KindComponent](w.em, id); k.Kind == kind {
			count++
		}
	}
	return count
}

// Drawables 返回所有可见精灵，按实体 ID 升序
func (w *World) Drawables() []Drawable {
	if w.em == nil {
		return nil
	}

	ids := ecs.GetEntitiesWith3[
		*components.PositionComponent,
		*components.CollisionComponent,
		*components.SpriteComponent,
	](w.em)

	result := make([]Drawable, 0, len(ids))
	for _, id := range ids {
		pos, _ := ecs.GetComponent[*components.PositionComponent](w.em, id)
		col, _ := ecs.GetComponent[*components.CollisionComponent](w.em, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](w.em, id)

		d := Drawable{
			ID:     id,
			X:      pos.X + col.OffsetX,
			Y:      pos.Y + col.OffsetY,
			Width:  col.Width,
			Height: col.Height,
			Image:  sprite.Image,
			Glyph:  sprite.Glyph,
			Color:  sprite.Color,
		}
		if kind, ok := ecs.GetComponent[*components.KindComponent](w.em, id); ok {
			d.Name, d.Kind = kind.Name, kind.Kind
		}
		result = append(result, d)
	}
	return result
}
