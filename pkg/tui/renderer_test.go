package tui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/sprite-behaviors/pkg/config"
	"github.com/gonewx/sprite-behaviors/pkg/game"
)

const testLevelYAML = `
name: box
tileSize: 16
tiles:
  - "######"
  - "#....#"
  - "######"
sprites:
  - name: player
    kind: player
    x: 40
    y: 24
    width: 8
    height: 8
    glyph: "@"
`

func newSimScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	ss := tcell.NewSimulationScreen("UTF-8")
	if err := ss.Init(); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	ss.SetSize(40, 10)
	return ss
}

func newTestWorld(t *testing.T, yaml string) *game.World {
	t.Helper()
	level, err := config.ParseLevelConfig([]byte(yaml))
	if err != nil {
		t.Fatalf("ParseLevelConfig error: %v", err)
	}
	world := game.NewWorld(nil)
	if err := world.LoadLevel(level); err != nil {
		t.Fatalf("LoadLevel error: %v", err)
	}
	return world
}

func TestRendererDrawsTilesAndSprites(t *testing.T) {
	ss := newSimScreen(t)
	defer ss.Fini()
	world := newTestWorld(t, testLevelYAML)

	r := NewRenderer(ss, world)
	r.Draw()

	tests := []struct {
		name string
		x, y int
		want rune
	}{
		{name: "top-left wall", x: 0, y: 0, want: '#'},
		{name: "floor", x: 1, y: 1, want: '.'},
		{name: "player", x: 2, y: 1, want: '@'},
		{name: "bottom-right wall", x: 5, y: 2, want: '#'},
		{name: "status line", x: 0, y: 4, want: 'b'},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, _, _, _ := ss.GetContent(tt.x, tt.y)
			if got != tt.want {
				t.Errorf("cell (%d,%d) = %q, want %q", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestRendererWideGlyphs(t *testing.T) {
	ss := newSimScreen(t)
	defer ss.Fini()
	world := newTestWorld(t, `
name: wide
tileSize: 16
tiles:
  - "####"
  - "#..#"
  - "####"
sprites:
  - name: ghost
    kind: enemy
    x: 24
    y: 24
    width: 8
    height: 8
    glyph: "👻"
`)

	r := NewRenderer(ss, world)
	if r.CellWidth() != 2 {
		t.Fatalf("CellWidth() = %d, want 2", r.CellWidth())
	}
	r.Draw()

	// 第 3 列瓦片从第 6 个字符单元开始
	if got, _, _, _ := ss.GetContent(6, 0); got != '#' {
		t.Errorf("wall cell = %q, want '#'", got)
	}
	if got, _, _, _ := ss.GetContent(2, 1); got != '👻' {
		t.Errorf("ghost cell = %q, want ghost", got)
	}
}
