package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// 移动模式名称（配置文件中的键）
const (
	PatternBounce              = "bounce"
	PatternTurnOnWall          = "turn_on_wall"
	PatternBounceAndTurnOnWall = "bounce_and_turn_on_wall"
	PatternFlyAndTurnOnWall    = "fly_and_turn_on_wall"
	PatternWalkOnFloor         = "walk_on_floor"
)

// KnownPatterns 所有合法的移动模式名称
var KnownPatterns = []string{
	PatternBounce,
	PatternTurnOnWall,
	PatternBounceAndTurnOnWall,
	PatternFlyAndTurnOnWall,
	PatternWalkOnFloor,
}

// BehaviorConfig 行为引擎参数配置
//
// 所有速度、重力、探测偏移和攻击参数均来自配置，逻辑代码中不写死数值。
// 速度单位：像素/秒；重力单位：每帧速度增量（像素/秒）。
//
// 配置文件位置: data/behavior.yaml
type BehaviorConfig struct {
	// Defaults 精灵首次创建行为时的默认速度上限（未设置移动模式时跟随行为使用）
	Defaults PatternConfig `yaml:"defaults"`

	// Patterns 各移动模式的速度上限与重力步长
	// key: 移动模式名称（如 "bounce", "walk_on_floor"）
	Patterns PatternConfigs `yaml:"patterns"`

	// Walk 地面行走探测配置
	Walk WalkFootConfig `yaml:"walk"`

	// Animation 方向动画配置
	Animation AnimationConfig `yaml:"animation"`

	// Attack 远程攻击配置
	Attack AttackConfig `yaml:"attack"`
}

// PatternConfig 单个移动模式的参数
type PatternConfig struct {
	// VX 水平速度上限
	VX float64 `yaml:"vx"`

	// VY 垂直速度上限（弹跳冲量）
	VY float64 `yaml:"vy"`

	// Gravity 每帧重力步长
	Gravity float64 `yaml:"gravity"`
}

// PatternConfigs 按移动模式名称索引的参数表
//
// 从 YAML 解析时逐个字段覆盖已有条目，未出现的字段保留原值。
type PatternConfigs map[string]PatternConfig

// UnmarshalYAML 将每个模式的 YAML 节点解码到已有条目之上
func (p *PatternConfigs) UnmarshalYAML(value *yaml.Node) error {
	var nodes map[string]yaml.Node
	if err := value.Decode(&nodes); err != nil {
		return err
	}

	if *p == nil {
		*p = make(PatternConfigs, len(nodes))
	}
	for name, node := range nodes {
		pattern := (*p)[name]
		if err := node.Decode(&pattern); err != nil {
			return fmt.Errorf("failed to parse pattern %s: %w", name, err)
		}
		(*p)[name] = pattern
	}
	return nil
}

// WalkFootConfig 地面行走探测点偏移
//
// 探测点位于 (x-OffsetX, y+OffsetY) 与 (x+OffsetX, y+OffsetY)
type WalkFootConfig struct {
	OffsetX float64 `yaml:"offsetX"`
	OffsetY float64 `yaml:"offsetY"`
}

// AnimationConfig 方向动画配置
type AnimationConfig struct {
	// MoveThreshold 位置变化阈值（像素），不超过此值视为未移动
	MoveThreshold float64 `yaml:"moveThreshold"`
}

// AttackConfig 远程攻击配置
type AttackConfig struct {
	// IntervalMs 开火间隔（毫秒）
	IntervalMs float64 `yaml:"intervalMs"`

	// Speed 子弹速度（L1 归一化后的速度）
	Speed float64 `yaml:"speed"`

	// DeadZone 目标距离小于此值（两个轴都满足）时不开火
	DeadZone float64 `yaml:"deadZone"`

	// ProjectileLifetime 子弹最大存活时间（秒），0 表示不限制
	ProjectileLifetime float64 `yaml:"projectileLifetime"`
}

// DefaultBehaviorConfig 返回内置默认配置
func DefaultBehaviorConfig() *BehaviorConfig {
	return &BehaviorConfig{
		Defaults: PatternConfig{VX: 50, VY: 200, Gravity: 8},
		Patterns: PatternConfigs{
			PatternBounce:              {VX: 0, VY: 120, Gravity: 8},
			PatternTurnOnWall:          {VX: 50, VY: 200, Gravity: 8},
			PatternBounceAndTurnOnWall: {VX: 50, VY: 200, Gravity: 8},
			PatternFlyAndTurnOnWall:    {VX: 50, VY: 0, Gravity: 0},
			PatternWalkOnFloor:         {VX: 50, VY: 200, Gravity: 10},
		},
		Walk:      WalkFootConfig{OffsetX: 8, OffsetY: 16},
		Animation: AnimationConfig{MoveThreshold: 2},
		Attack: AttackConfig{
			IntervalMs:         1000,
			Speed:              150,
			DeadZone:           5,
			ProjectileLifetime: 10,
		},
	}
}

// LoadBehaviorConfig 加载行为引擎配置
//
// 参数:
//   - path: 配置文件路径（如 "data/behavior.yaml"）
//
// 返回:
//   - *BehaviorConfig: 加载成功后的配置结构（未配置的字段使用默认值）
//   - error: 加载失败时返回错误
func LoadBehaviorConfig(path string) (*BehaviorConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read behavior config: %w", err)
	}
	return ParseBehaviorConfig(data)
}

// ParseBehaviorConfig 从 YAML 数据解析行为引擎配置
//
// 解析前先填充默认值，YAML 中出现的字段覆盖默认值。
func ParseBehaviorConfig(data []byte) (*BehaviorConfig, error) {
	config := DefaultBehaviorConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse behavior config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid behavior config: %w", err)
	}

	return config, nil
}

// Validate 验证配置有效性
//
// 检查：
//   - 移动模式名称必须合法
//   - 速度上限与重力不能为负
//   - 开火间隔与子弹速度必须为正
func (c *BehaviorConfig) Validate() error {
	if err := c.Defaults.validate("defaults"); err != nil {
		return err
	}

	for name, pattern := range c.Patterns {
		if !isKnownPattern(name) {
			return fmt.Errorf("unknown move pattern '%s'", name)
		}
		if err := pattern.validate(name); err != nil {
			return err
		}
	}

	if c.Walk.OffsetX < 0 || c.Walk.OffsetY < 0 {
		return fmt.Errorf("walk foot offsets should be >= 0, got (%.1f, %.1f)",
			c.Walk.OffsetX, c.Walk.OffsetY)
	}

	if c.Animation.MoveThreshold < 0 {
		return fmt.Errorf("animation moveThreshold should be >= 0, got %.1f", c.Animation.MoveThreshold)
	}

	if c.Attack.IntervalMs <= 0 {
		return fmt.Errorf("attack intervalMs should be > 0, got %.1f", c.Attack.IntervalMs)
	}
	if c.Attack.Speed <= 0 {
		return fmt.Errorf("attack speed should be > 0, got %.1f", c.Attack.Speed)
	}
	if c.Attack.DeadZone < 0 {
		return fmt.Errorf("attack deadZone should be >= 0, got %.1f", c.Attack.DeadZone)
	}
	if c.Attack.ProjectileLifetime < 0 {
		return fmt.Errorf("attack projectileLifetime should be >= 0, got %.1f", c.Attack.ProjectileLifetime)
	}

	return nil
}

func (p PatternConfig) validate(name string) error {
	if p.VX < 0 || p.VY < 0 {
		return fmt.Errorf("pattern '%s' ceilings should be >= 0, got (%.1f, %.1f)", name, p.VX, p.VY)
	}
	if p.Gravity < 0 {
		return fmt.Errorf("pattern '%s' gravity should be >= 0, got %.1f", name, p.Gravity)
	}
	return nil
}

// GetPattern 获取指定移动模式的参数
//
// 未配置的模式回退到 Defaults
func (c *BehaviorConfig) GetPattern(name string) PatternConfig {
	if pattern, ok := c.Patterns[name]; ok {
		return pattern
	}
	return c.Defaults
}

// FireInterval 返回开火间隔
func (c *BehaviorConfig) FireInterval() time.Duration {
	return time.Duration(c.Attack.IntervalMs * float64(time.Millisecond))
}

func isKnownPattern(name string) bool {
	for _, known := range KnownPatterns {
		if known == name {
			return true
		}
	}
	return false
}
