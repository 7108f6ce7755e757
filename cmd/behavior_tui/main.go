// behavior_tui 在终端中运行关卡（不需要图形环境）
//
// 用法:
//
//	go run ./cmd/behavior_tui --level data/levels/demo.yaml
//
// 方向键移动玩家，p 暂停，q / Esc 退出。
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gonewx/sprite-behaviors/pkg/app"
	"github.com/gonewx/sprite-behaviors/pkg/config"
	"github.com/gonewx/sprite-behaviors/pkg/game"
	"github.com/gonewx/sprite-behaviors/pkg/tui"
)

const tickRate = 60

func main() {
	level := flag.String("level", config.DefaultLevelPath, "关卡文件路径")
	behaviorConfig := flag.String("config", config.DefaultBehaviorConfigPath, "行为参数文件路径")
	flag.Parse()

	// 终端被 tcell 接管，日志会破坏画面
	log.SetOutput(io.Discard)

	if err := run(*level, *behaviorConfig); err != nil {
		fmt.Fprintf(os.Stderr, "behavior_tui: %v\n", err)
		os.Exit(1)
	}
}

func run(levelPath, behaviorPath string) error {
	tunables, err := app.LoadBehaviorConfig(behaviorPath)
	if err != nil {
		return err
	}
	level, err := app.LoadLevelConfig(levelPath)
	if err != nil {
		return err
	}

	world := game.NewWorld(tunables)
	if err := world.LoadLevel(level); err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	renderer := tui.NewRenderer(screen, world)

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / tickRate)
	defer ticker.Stop()

	paused := false
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
					return nil
				}
				if ev.Rune() == 'p' {
					paused = !paused
				}
				steer(world, ev)
			}
		case <-ticker.C:
			if !paused {
				world.Update(1.0 / tickRate)
			}
			renderer.Draw()
		}
	}
}

// steer 终端没有按键抬起事件，每次按键让玩家朝该方向移动，反方向键停下
func steer(world *game.World, ev *tcell.EventKey) {
	player, ok := world.Sprite(config.PlayerSpriteName)
	if !ok {
		return
	}
	switch ev.Key() {
	case tcell.KeyLeft:
		player.SetVX(stepToward(player.VX(), -config.PlayerSpeed))
	case tcell.KeyRight:
		player.SetVX(stepToward(player.VX(), config.PlayerSpeed))
	case tcell.KeyUp:
		player.SetVY(stepToward(player.VY(), -config.PlayerSpeed))
	case tcell.KeyDown:
		player.SetVY(stepToward(player.VY(), config.PlayerSpeed))
	}
}

// stepToward 当前速度与目标反向时停下，否则取目标速度
func stepToward(current, target float64) float64 {
	if current*target < 0 {
		return 0
	}
	return target
}
