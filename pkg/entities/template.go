package entities

import (
	"fmt"
	"image/color"

	"github.com/gonewx/sprite-behaviors/pkg/behavior"
	"github.com/gonewx/sprite-behaviors/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// DefaultGlyph 未配置字符时终端前端使用的字符
const DefaultGlyph = '@'

// Template 精灵模板
//
// 模板不属于任何实体，Factory.Spawn 按模板创建新的精灵（如攻击行为的子弹）。
// Template 实现 behavior.SpriteTemplate。
type Template struct {
	Name   string
	kind   behavior.SpriteKind
	Width  float64
	Height float64
	Color  color.RGBA
	Glyph  rune
	image  *ebiten.Image
}

// NewTemplate 创建模板并生成纯色占位图
func NewTemplate(name string, kind behavior.SpriteKind, width, height float64, clr color.RGBA, glyph rune) *Template {
	if glyph == 0 {
		glyph = DefaultGlyph
	}
	return &Template{
		Name:   name,
		kind:   kind,
		Width:  width,
		Height: height,
		Color:  clr,
		Glyph:  glyph,
		image:  NewSolidImage(int(width), int(height), clr),
	}
}

// TemplateFromConfig 根据关卡配置创建模板
//
// 返回:
//   - error: 颜色格式非法时返回错误
func TemplateFromConfig(cfg config.SpriteConfig) (*Template, error) {
	clr, err := ParseColor(cfg.Color)
	if err != nil {
		return nil, fmt.Errorf("sprite '%s': %w", cfg.Name, err)
	}

	var glyph rune
	for _, r := range cfg.Glyph {
		glyph = r
		break
	}

	return NewTemplate(cfg.Name, behavior.SpriteKind(cfg.Kind), cfg.Width, cfg.Height, clr, glyph), nil
}

// Kind 精灵种类
func (t *Template) Kind() behavior.SpriteKind {
	return t.kind
}

// Image 占位图
func (t *Template) Image() *ebiten.Image {
	return t.image
}

// ParseColor 解析 "#rrggbb" 颜色；空字符串返回白色
func ParseColor(hex string) (color.RGBA, error) {
	if hex == "" {
		return color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, nil
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
}
