// Package behavior 为单个精灵挂载可复用的逐帧行为
//
// 每个精灵最多绑定一个组合行为 SpriteBehavior，其中包含四个可选槽位：
// 移动模式、跟随、方向动画、远程攻击。Registry 负责按精灵身份查找/创建组合行为，
// 并在宿主每帧回调中按注册顺序依次更新。
//
// 精灵、瓦片地图、实体工厂、时钟、帧调度器和动画播放器都由宿主实现，
// 本包只依赖下面定义的接口。
package behavior

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Behavior 逐帧行为单元
//
// Update 返回 true 表示该行为本帧"继续/已施加控制"，
// 组合行为据此决定是否执行后续的跟随行为。
type Behavior interface {
	Update() bool
}

// SpriteID 精灵的稳定身份标识（宿主的实体ID）
type SpriteID uint64

// SpriteKind 精灵种类（如 "player", "enemy", "projectile"）
type SpriteKind string

// CollisionDirection 瓦片碰撞方向
type CollisionDirection int

const (
	CollisionLeft CollisionDirection = iota
	CollisionTop
	CollisionRight
	CollisionBottom
)

// String 返回碰撞方向名称
func (d CollisionDirection) String() string {
	switch d {
	case CollisionLeft:
		return "left"
	case CollisionTop:
		return "top"
	case CollisionRight:
		return "right"
	case CollisionBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// SpriteFlag 精灵标志位
type SpriteFlag int

const (
	// FlagStayInScreen 限制精灵不离开世界范围
	FlagStayInScreen SpriteFlag = iota
	// FlagDestroyOnWall 精灵碰到实心瓦片时销毁（子弹使用）
	FlagDestroyOnWall
)

// SpriteTemplate 可被克隆的精灵模板（只需图像与种类）
type SpriteTemplate interface {
	Kind() SpriteKind
	Image() *ebiten.Image
}

// Sprite 宿主拥有的精灵
//
// 坐标为精灵中心点的世界坐标，速度单位为像素/秒。
// 行为引擎从不销毁精灵，只通过 OnDestroyed 得知精灵被宿主销毁。
type Sprite interface {
	SpriteTemplate

	ID() SpriteID

	X() float64
	Y() float64
	SetPosition(x, y float64)

	VX() float64
	VY() float64
	SetVX(vx float64)
	SetVY(vy float64)

	// IsHittingTile 上一次物理步进中精灵是否在该方向与实心瓦片接触
	IsHittingTile(direction CollisionDirection) bool

	SetFlag(flag SpriteFlag, on bool)

	// OnDestroyed 注册销毁回调；回调可能在 Registry.UpdateAll 执行期间同步触发。
	// 精灵已被销毁时不注册并返回 false
	OnDestroyed(handler func()) bool
}

// TileMap 瓦片地图查询
type TileMap interface {
	// IsObstacle 指定格子是否为实心瓦片；越界格子由实现决定
	IsObstacle(col, row int) bool
	// TileSize 瓦片边长（像素）
	TileSize() int
}

// SpriteFactory 根据模板创建新精灵
type SpriteFactory interface {
	Spawn(template SpriteTemplate) Sprite
}

// Clock 单调时钟
type Clock interface {
	Now() time.Duration
}

// FrameScheduler 宿主的逐帧回调注册
type FrameScheduler interface {
	OnUpdate(handler func())
}

// AnimationClip 一组按顺序循环播放的动画帧
type AnimationClip struct {
	Name   string
	Frames []*ebiten.Image
}

// AnimationPlayer 在精灵上循环播放动画
type AnimationPlayer interface {
	PlayLoop(sprite Sprite, clip AnimationClip, interval time.Duration)
}

// Env 行为引擎依赖的宿主协作者
//
// 不需要某个协作者的行为可以留空；需要时配置调用返回 ErrMissingCollaborator。
type Env struct {
	Tiles    TileMap
	Factory  SpriteFactory
	Clock    Clock
	Animator AnimationPlayer
}
