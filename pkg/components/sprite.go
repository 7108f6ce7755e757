package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteComponent 存储实体的视觉表现
//
// Image 由 ebiten 前端绘制；Glyph 和 Color 供终端前端使用。
type SpriteComponent struct {
	Image *ebiten.Image
	Glyph rune
	Color color.RGBA
}
