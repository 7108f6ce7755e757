package behavior

import (
	"fmt"

	"github.com/gonewx/sprite-behaviors/pkg/config"
)

// MovePattern 移动模式
type MovePattern int

const (
	// Bounce 原地弹跳：只受重力，着地即弹起
	Bounce MovePattern = iota
	// TurnOnWall 受重力下落，水平移动碰墙掉头
	TurnOnWall
	// BounceAndTurnOnWall 弹跳 + 碰墙掉头
	BounceAndTurnOnWall
	// FlyAndTurnOnWall 不受重力的水平飞行，碰墙掉头
	FlyAndTurnOnWall
	// WalkOnFloor 沿地面行走，不走下悬崖
	WalkOnFloor
)

// patternStrategy 描述一种移动模式
//
// ceiling 根据给定速度计算该模式实际使用的速度上限；
// step 为每帧逻辑，返回值即 MoveBehavior.Update 的返回值。
type patternStrategy struct {
	name       string
	needsTiles bool
	ceiling    func(vx, vy float64) (float64, float64)
	step       func(m *Mover, gravity float64) bool
}

var patternStrategies = map[MovePattern]patternStrategy{
	Bounce: {
		name:    config.PatternBounce,
		ceiling: func(_, vy float64) (float64, float64) { return 0, vy },
		step: func(m *Mover, gravity float64) bool {
			m.Fall(gravity)
			return m.JumpOnGround()
		},
	},
	TurnOnWall: {
		name:    config.PatternTurnOnWall,
		ceiling: func(vx, vy float64) (float64, float64) { return vx, vy },
		step: func(m *Mover, gravity float64) bool {
			m.Fall(gravity)
			m.TurnOnWall()
			return true
		},
	},
	BounceAndTurnOnWall: {
		name:    config.PatternBounceAndTurnOnWall,
		ceiling: func(vx, vy float64) (float64, float64) { return vx, vy },
		step: func(m *Mover, gravity float64) bool {
			m.Fall(gravity)
			if m.JumpOnGround() {
				return true
			}
			return m.TurnOnWall()
		},
	},
	FlyAndTurnOnWall: {
		name:    config.PatternFlyAndTurnOnWall,
		ceiling: func(vx, _ float64) (float64, float64) { return vx, 0 },
		step: func(m *Mover, _ float64) bool {
			return m.TurnOnWall()
		},
	},
	WalkOnFloor: {
		name:       config.PatternWalkOnFloor,
		needsTiles: true,
		ceiling:    func(vx, vy float64) (float64, float64) { return vx, vy },
		step: func(m *Mover, gravity float64) bool {
			m.Fall(gravity)
			return m.WalkOnFloor()
		},
	},
}

// String 返回移动模式的配置名称
func (p MovePattern) String() string {
	if strategy, ok := patternStrategies[p]; ok {
		return strategy.name
	}
	return fmt.Sprintf("MovePattern(%d)", int(p))
}

// Valid 是否为已知的移动模式
func (p MovePattern) Valid() bool {
	_, ok := patternStrategies[p]
	return ok
}

// ParseMovePattern 根据配置名称解析移动模式
func ParseMovePattern(name string) (MovePattern, error) {
	for pattern, strategy := range patternStrategies {
		if strategy.name == name {
			return pattern, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownMovePattern, name)
}

// MoveBehavior 移动模式行为
type MoveBehavior struct {
	pattern MovePattern
	mover   *Mover
	gravity float64
	step    func(m *Mover, gravity float64) bool
}

// Update 执行一帧移动逻辑
func (b *MoveBehavior) Update() bool {
	return b.step(b.mover, b.gravity)
}

// Pattern 返回移动模式
func (b *MoveBehavior) Pattern() MovePattern {
	return b.pattern
}

// Gravity 返回每帧重力步长
func (b *MoveBehavior) Gravity() float64 {
	return b.gravity
}

// PatternOption 移动模式设置选项
type PatternOption func(*patternOptions)

type patternOptions struct {
	ceiling    *config.CeilingConfig
	gravity    *float64
	keepScreen bool
}

// WithCeiling 覆盖配置中的速度上限
func WithCeiling(vx, vy float64) PatternOption {
	return func(o *patternOptions) {
		o.ceiling = &config.CeilingConfig{VX: vx, VY: vy}
	}
}

// WithGravity 覆盖配置中的重力步长
func WithGravity(step float64) PatternOption {
	return func(o *patternOptions) {
		o.gravity = &step
	}
}

// WithStayInScreen 保留精灵的"限制在屏幕内"标志（默认设置移动模式时关闭）
func WithStayInScreen() PatternOption {
	return func(o *patternOptions) {
		o.keepScreen = true
	}
}

// newMoveBehavior 创建移动模式行为，并按模式重设 Mover 的速度上限
//
// 设置完成后精灵速度被置为 (+vxCeiling, +vyCeiling)：向右移动、向下下落。
func newMoveBehavior(m *Mover, pattern MovePattern, tunables config.PatternConfig, opts patternOptions) (*MoveBehavior, error) {
	strategy, ok := patternStrategies[pattern]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMovePattern, int(pattern))
	}
	if strategy.needsTiles && m.tiles == nil {
		return nil, fmt.Errorf("%w: pattern %s needs a tile map", ErrMissingCollaborator, strategy.name)
	}

	vx, vy := tunables.VX, tunables.VY
	if opts.ceiling != nil {
		vx, vy = opts.ceiling.VX, opts.ceiling.VY
	}
	gravity := tunables.Gravity
	if opts.gravity != nil {
		gravity = *opts.gravity
	}

	m.SetCeiling(strategy.ceiling(vx, vy))
	m.sprite.SetVX(m.vxCeiling)
	m.sprite.SetVY(m.vyCeiling)

	return &MoveBehavior{
		pattern: pattern,
		mover:   m,
		gravity: gravity,
		step:    strategy.step,
	}, nil
}
