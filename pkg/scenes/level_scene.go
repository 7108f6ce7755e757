package scenes

import (
	"fmt"
	"image/color"
	"log"

	"github.com/gonewx/sprite-behaviors/pkg/config"
	"github.com/gonewx/sprite-behaviors/pkg/game"
	"github.com/gonewx/sprite-behaviors/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Scene is a type alias for game.Scene.
type Scene = game.Scene

// InputState 一帧的玩家输入
type InputState struct {
	// DX, DY 方向键输入，取值 -1/0/1
	DX, DY float64

	// TogglePause 本帧按下了暂停键
	TogglePause bool

	// Reload 本帧按下了重新加载键
	Reload bool
}

// InputReader 读取一帧的输入
type InputReader func() InputState

// KeyboardInput 从键盘读取输入：方向键移动，P 暂停，R 重新加载
func KeyboardInput() InputState {
	var in InputState
	if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.DX--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.DX++
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.DY--
	}
	if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.DY++
	}
	in.TogglePause = inpututil.IsKeyJustPressed(ebiten.KeyP)
	in.Reload = inpututil.IsKeyJustPressed(ebiten.KeyR)
	return in
}

var pausedOverlayColor = color.RGBA{A: 128}

// LevelScene 运行一个关卡的场景
//
// 玩家精灵（名为 "player"）由方向键直接设置速度，其它精灵由行为注册表驱动。
type LevelScene struct {
	world    *game.World
	renderer *systems.RenderSystem
	input    InputReader
	onReload func() error

	paused bool
}

// NewLevelScene 创建关卡场景
//
// 参数:
//   - world: 已加载关卡的世界
//   - onReload: 按下重新加载键时调用（通常是 SceneManager.Reload），可为 nil
func NewLevelScene(world *game.World, onReload func() error) *LevelScene {
	return &LevelScene{
		world:    world,
		renderer: systems.NewRenderSystem(world.EntityManager(), world.TileMap()),
		input:    KeyboardInput,
		onReload: onReload,
	}
}

// SetInput 替换输入来源
func (s *LevelScene) SetInput(input InputReader) {
	s.input = input
}

// World 场景中的世界
func (s *LevelScene) World() *game.World {
	return s.world
}

// Paused 是否暂停
func (s *LevelScene) Paused() bool {
	return s.paused
}

// Update 处理输入并推进世界
func (s *LevelScene) Update(deltaTime float64) {
	in := s.input()

	if in.Reload && s.onReload != nil {
		if err := s.onReload(); err != nil {
			log.Printf("[LevelScene] 重新加载失败: %v", err)
		}
		return
	}

	if in.TogglePause {
		s.paused = !s.paused
		log.Printf("[LevelScene] 暂停: %v", s.paused)
	}
	if s.paused {
		return
	}

	if player, ok := s.world.Sprite(config.PlayerSpriteName); ok {
		player.SetVX(in.DX * config.PlayerSpeed)
		player.SetVY(in.DY * config.PlayerSpeed)
	}

	s.world.Update(deltaTime)
}

// Draw 绘制世界与状态栏
func (s *LevelScene) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, 0)

	if s.paused {
		bounds := screen.Bounds()
		vector.DrawFilledRect(screen, 0, 0, float32(bounds.Dx()), float32(bounds.Dy()), pausedOverlayColor, false)
		ebitenutil.DebugPrintAt(screen, "PAUSED", bounds.Dx()/2-18, bounds.Dy()/2-8)
	}

	ebitenutil.DebugPrintAt(screen, s.statusText(), 4, 2)
}

func (s *LevelScene) statusText() string {
	name := ""
	if level := s.world.Level(); level != nil {
		name = level.Name
	}
	return fmt.Sprintf("%s  t=%.1fs  behaviors=%d  projectiles=%d",
		name, s.world.Clock().Now().Seconds(), s.world.Registry().Len(), s.world.CountKind(config.ProjectileKind))
}
