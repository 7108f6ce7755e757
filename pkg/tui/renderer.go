// Package tui 在终端中绘制世界，每个瓦片占一个字符单元
package tui

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/sprite-behaviors/pkg/config"
	"github.com/gonewx/sprite-behaviors/pkg/game"
	"github.com/mattn/go-runewidth"
)

var (
	wallStyle   = tcell.StyleDefault.Foreground(tcell.ColorSaddleBrown).Background(tcell.ColorBlack)
	floorStyle  = tcell.StyleDefault.Foreground(tcell.ColorDarkSlateGray).Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorYellow)
)

// Renderer 把世界绘制到 tcell 屏幕
type Renderer struct {
	screen tcell.Screen
	world  *game.World

	// cellWidth 每个瓦片占用的列数，存在宽字符（如 emoji）时为 2
	cellWidth int
}

// NewRenderer 创建终端渲染器
func NewRenderer(screen tcell.Screen, world *game.World) *Renderer {
	r := &Renderer{screen: screen, world: world, cellWidth: 1}
	for _, d := range world.Drawables() {
		if w := runewidth.RuneWidth(d.Glyph); w > r.cellWidth {
			r.cellWidth = w
		}
	}
	return r
}

// CellWidth 每个瓦片占用的列数
func (r *Renderer) CellWidth() int {
	return r.cellWidth
}

// Draw 绘制地图、精灵和状态行，然后刷新屏幕
func (r *Renderer) Draw() {
	r.screen.Clear()

	tiles := r.world.TileMap()
	if tiles == nil {
		r.screen.Show()
		return
	}

	for row := 0; row < tiles.Rows(); row++ {
		for col := 0; col < tiles.Columns(); col++ {
			if tiles.IsObstacle(col, row) {
				r.putCell(col, row, config.SolidTile, wallStyle)
			} else {
				r.putCell(col, row, '.', floorStyle)
			}
		}
	}

	for _, d := range r.world.Drawables() {
		col, row := tiles.TileAt(d.X, d.Y)
		if !tiles.InBounds(col, row) {
			continue
		}
		r.putGlyph(col*r.cellWidth, row, d.Glyph, glyphStyle(d.Color))
	}

	status := fmt.Sprintf("%s  t=%.1fs  behaviors=%d  projectiles=%d  [q] quit",
		r.world.Level().Name, r.world.Clock().Now().Seconds(),
		r.world.Registry().Len(), r.world.CountKind(config.ProjectileKind))
	r.putText(0, tiles.Rows()+1, status, statusStyle)

	r.screen.Show()
}

// putCell 绘制一个瓦片单元（宽单元的其余列用空格填充）
func (r *Renderer) putCell(col, row int, ch rune, style tcell.Style) {
	x := col * r.cellWidth
	r.screen.SetContent(x, row, ch, nil, style)
	for i := 1; i < r.cellWidth; i++ {
		r.screen.SetContent(x+i, row, ' ', nil, style)
	}
}

// putGlyph 绘制单个字符，宽字符占两列
func (r *Renderer) putGlyph(x, y int, glyph rune, style tcell.Style) {
	r.screen.SetContent(x, y, glyph, nil, style)
	if runewidth.RuneWidth(glyph) < r.cellWidth {
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}

// putText 从 (x, y) 开始逐字写入，超出屏幕右边界时停止
func (r *Renderer) putText(x, y int, s string, style tcell.Style) {
	sw, _ := r.screen.Size()
	for _, ch := range s {
		if x >= sw {
			break
		}
		r.screen.SetContent(x, y, ch, nil, style)
		x += runewidth.RuneWidth(ch)
	}
}

func glyphStyle(c color.RGBA) tcell.Style {
	return tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))).
		Background(tcell.ColorBlack)
}
