// Package app 提供演示程序的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来：加载行为配置与关卡，创建场景管理器，
// 并实现 ebiten.Game 接口。
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"

	"github.com/gonewx/sprite-behaviors/pkg/config"
	"github.com/gonewx/sprite-behaviors/pkg/embedded"
	"github.com/gonewx/sprite-behaviors/pkg/game"
	"github.com/gonewx/sprite-behaviors/pkg/scenes"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// Level 关卡文件路径，为空时使用 config.DefaultLevelPath
	Level string
	// BehaviorConfig 行为参数文件路径，为空时使用 config.DefaultBehaviorConfigPath
	BehaviorConfig string
}

// App 是演示程序的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	tunables                 *config.BehaviorConfig
	verbose                  bool
	screenWidth              int
	screenHeight             int
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	behaviorPath := cfg.BehaviorConfig
	if behaviorPath == "" {
		behaviorPath = config.DefaultBehaviorConfigPath
	}
	tunables, err := LoadBehaviorConfig(behaviorPath)
	if err != nil {
		return nil, err
	}
	log.Printf("[Config] 加载行为配置: %s", behaviorPath)

	a := &App{
		sceneManager: game.NewSceneManager(),
		tunables:     tunables,
		verbose:      cfg.Verbose,
	}
	a.sceneManager.SetSceneFactory(a.newLevelScene)

	levelPath := cfg.Level
	if levelPath == "" {
		levelPath = config.DefaultLevelPath
	}
	if err := a.sceneManager.LoadLevel(levelPath); err != nil {
		return nil, err
	}

	log.Printf("[App] Starting level: %s (%dx%d)", levelPath, a.screenWidth, a.screenHeight)
	return a, nil
}

// LoadBehaviorConfig 读取行为参数文件（磁盘优先，其次嵌入资源）
func LoadBehaviorConfig(path string) (*config.BehaviorConfig, error) {
	data, err := embedded.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load behavior config %s: %w", path, err)
	}
	return config.ParseBehaviorConfig(data)
}

// LoadLevelConfig 读取关卡文件（磁盘优先，其次嵌入资源）
func LoadLevelConfig(path string) (*config.LevelConfig, error) {
	data, err := embedded.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load level %s: %w", path, err)
	}
	return config.ParseLevelConfig(data)
}

// newLevelScene 场景工厂：加载关卡文件并创建关卡场景
func (a *App) newLevelScene(levelPath string) (game.Scene, error) {
	level, err := LoadLevelConfig(levelPath)
	if err != nil {
		return nil, err
	}

	world := game.NewWorld(a.tunables)
	if err := world.LoadLevel(level); err != nil {
		return nil, err
	}

	width, height := world.Bounds()
	a.screenWidth, a.screenHeight = int(width), int(height)
	return scenes.NewLevelScene(world, a.sceneManager.Reload), nil
}

// Update 更新游戏逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			w, h := a.WindowSize()
			ebiten.SetWindowSize(w, h)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", w, h)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
			log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
		} else {
			ebiten.SetFullscreen(true)
		}
	}

	deltaTime := 1.0 / float64(ebiten.TPS())
	a.sceneManager.Update(deltaTime)
	return nil
}

// Draw 绘制游戏画面
func (a *App) Draw(screen *ebiten.Image) {
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	// 像素风格画面使用最近邻滤波保持边缘清晰
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸，即当前关卡的世界像素尺寸
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.screenWidth, a.screenHeight
}

// WindowSize 返回建议的窗口尺寸
func (a *App) WindowSize() (int, int) {
	return a.screenWidth * config.WindowScale, a.screenHeight * config.WindowScale
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
