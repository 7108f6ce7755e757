package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gonewx/sprite-behaviors/pkg/app"
	"github.com/gonewx/sprite-behaviors/pkg/config"
	"github.com/gonewx/sprite-behaviors/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	verbose := flag.Bool("verbose", false, "启用详细日志输出")
	level := flag.String("level", config.DefaultLevelPath, "关卡文件路径")
	behaviorConfig := flag.String("config", config.DefaultBehaviorConfigPath, "行为参数文件路径")
	flag.Parse()

	// 初始化嵌入资源（磁盘上的同名文件优先）
	embedded.Init(dataFS)

	a, err := app.NewApp(app.Config{
		Verbose:        *verbose,
		Level:          *level,
		BehaviorConfig: *behaviorConfig,
	})
	if err != nil {
		// 非 verbose 模式下 log 输出已被关闭
		fmt.Fprintf(os.Stderr, "启动失败: %v\n", err)
		os.Exit(1)
	}

	width, height := a.WindowSize()
	ebiten.SetWindowSize(width, height)
	ebiten.SetWindowTitle("Sprite Behaviors")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(a); err != nil {
		log.Fatal(err)
	}
}
