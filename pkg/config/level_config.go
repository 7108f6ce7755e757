package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// LevelConfig 关卡配置
//
// 关卡由一张瓦片地图和若干精灵摆放组成。每个精灵可以声明移动模式、
// 跟随目标、方向动画和远程攻击，World.LoadLevel 会据此调用行为注册表。
//
// 配置文件位置: data/levels/*.yaml
type LevelConfig struct {
	// Name 关卡名称
	Name string `yaml:"name"`

	// TileSize 瓦片边长（像素）
	TileSize int `yaml:"tileSize"`

	// Tiles 瓦片地图，每个字符串一行；'#' 为实心瓦片，其它字符为空
	Tiles []string `yaml:"tiles"`

	// Templates 子弹等精灵模板（不直接放入场景）
	Templates []SpriteConfig `yaml:"templates"`

	// Sprites 场景中的精灵
	Sprites []SpriteConfig `yaml:"sprites"`
}

// SpriteConfig 精灵摆放配置
type SpriteConfig struct {
	// Name 精灵名称，用于 follow / attack 引用
	Name string `yaml:"name"`

	// Kind 精灵种类（如 "player", "enemy", "projectile"）
	Kind string `yaml:"kind"`

	// X, Y 初始中心坐标（世界坐标，像素）
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`

	// Width, Height 碰撞盒尺寸（像素）
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Color 纯色占位图颜色（"#rrggbb"）
	Color string `yaml:"color"`

	// Glyph 终端前端显示的字符（可选）
	Glyph string `yaml:"glyph"`

	// StayInScreen 是否限制在世界范围内
	StayInScreen bool `yaml:"stayInScreen"`

	// Pattern 移动模式名称（可选）
	Pattern string `yaml:"pattern"`

	// Ceiling 覆盖移动模式的速度上限（可选）
	Ceiling *CeilingConfig `yaml:"ceiling"`

	// Follow 跟随目标精灵名称（可选）
	Follow string `yaml:"follow"`

	// Animation 方向动画（可选）
	Animation *SpriteAnimationConfig `yaml:"animation"`

	// Attack 远程攻击（可选）
	Attack *SpriteAttackConfig `yaml:"attack"`
}

// CeilingConfig 速度上限覆盖
type CeilingConfig struct {
	VX float64 `yaml:"vx"`
	VY float64 `yaml:"vy"`
}

// SpriteAnimationConfig 方向动画配置
type SpriteAnimationConfig struct {
	// Left, Right 左右方向的动画名称
	Left  string `yaml:"left"`
	Right string `yaml:"right"`

	// Frames 每个方向的帧数（纯色占位帧）
	Frames int `yaml:"frames"`

	// IntervalMs 帧间隔（毫秒）
	IntervalMs float64 `yaml:"intervalMs"`
}

// SpriteAttackConfig 远程攻击配置
type SpriteAttackConfig struct {
	// Target 攻击目标精灵名称
	Target string `yaml:"target"`

	// Bullet 子弹模板名称（引用 Templates）
	Bullet string `yaml:"bullet"`
}

// LoadLevelConfig 加载关卡配置
//
// 参数:
//   - path: 配置文件路径（如 "data/levels/demo.yaml"）
//
// 返回:
//   - *LevelConfig: 加载成功后的配置结构
//   - error: 加载失败时返回错误
func LoadLevelConfig(path string) (*LevelConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level config: %w", err)
	}
	return ParseLevelConfig(data)
}

// ParseLevelConfig 从 YAML 数据解析关卡配置
func ParseLevelConfig(data []byte) (*LevelConfig, error) {
	var config LevelConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse level config: %w", err)
	}

	if config.TileSize == 0 {
		config.TileSize = DefaultTileSize
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid level config: %w", err)
	}

	return &config, nil
}

// Validate 验证关卡配置
//
// 检查：
//   - 瓦片尺寸为正，地图非空且每行等宽
//   - 精灵名称唯一，尺寸为正
//   - follow / attack 引用的精灵与模板存在
//   - 移动模式名称合法
func (c *LevelConfig) Validate() error {
	if c.TileSize <= 0 {
		return fmt.Errorf("tileSize should be > 0, got %d", c.TileSize)
	}
	if len(c.Tiles) == 0 {
		return fmt.Errorf("level '%s' has no tiles", c.Name)
	}
	width := utf8.RuneCountInString(c.Tiles[0])
	for row, line := range c.Tiles {
		if n := utf8.RuneCountInString(line); n != width {
			return fmt.Errorf("tile row %d has width %d, expected %d", row, n, width)
		}
	}

	templates := make(map[string]bool, len(c.Templates))
	for _, tpl := range c.Templates {
		if tpl.Name == "" {
			return fmt.Errorf("template without name")
		}
		if templates[tpl.Name] {
			return fmt.Errorf("duplicate template '%s'", tpl.Name)
		}
		if err := tpl.validateSize(); err != nil {
			return err
		}
		templates[tpl.Name] = true
	}

	sprites := make(map[string]bool, len(c.Sprites))
	for _, sprite := range c.Sprites {
		if sprite.Name == "" {
			return fmt.Errorf("sprite without name")
		}
		if sprites[sprite.Name] {
			return fmt.Errorf("duplicate sprite '%s'", sprite.Name)
		}
		if err := sprite.validateSize(); err != nil {
			return err
		}
		sprites[sprite.Name] = true
	}

	for _, sprite := range c.Sprites {
		if sprite.Pattern != "" && !isKnownPattern(sprite.Pattern) {
			return fmt.Errorf("sprite '%s' has unknown pattern '%s'", sprite.Name, sprite.Pattern)
		}
		if sprite.Ceiling != nil && (sprite.Ceiling.VX < 0 || sprite.Ceiling.VY < 0) {
			return fmt.Errorf("sprite '%s' ceiling should be >= 0", sprite.Name)
		}
		if sprite.Follow != "" && !sprites[sprite.Follow] {
			return fmt.Errorf("sprite '%s' follows unknown sprite '%s'", sprite.Name, sprite.Follow)
		}
		if anim := sprite.Animation; anim != nil {
			if anim.IntervalMs <= 0 {
				return fmt.Errorf("sprite '%s' animation intervalMs should be > 0", sprite.Name)
			}
			if anim.Frames < 0 {
				return fmt.Errorf("sprite '%s' animation frames should be >= 0", sprite.Name)
			}
		}
		if attack := sprite.Attack; attack != nil {
			if !sprites[attack.Target] {
				return fmt.Errorf("sprite '%s' attacks unknown sprite '%s'", sprite.Name, attack.Target)
			}
			if !templates[attack.Bullet] {
				return fmt.Errorf("sprite '%s' uses unknown bullet template '%s'", sprite.Name, attack.Bullet)
			}
		}
	}

	return nil
}

func (s SpriteConfig) validateSize() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("sprite '%s' size should be > 0, got %.1fx%.1f", s.Name, s.Width, s.Height)
	}
	return nil
}

// Columns 返回地图列数
func (c *LevelConfig) Columns() int {
	if len(c.Tiles) == 0 {
		return 0
	}
	return utf8.RuneCountInString(c.Tiles[0])
}

// Rows 返回地图行数
func (c *LevelConfig) Rows() int {
	return len(c.Tiles)
}

// FindTemplate 按名称查找模板
func (c *LevelConfig) FindTemplate(name string) (SpriteConfig, bool) {
	for _, tpl := range c.Templates {
		if tpl.Name == name {
			return tpl, true
		}
	}
	return SpriteConfig{}, false
}
