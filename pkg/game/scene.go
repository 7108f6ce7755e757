package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene 场景管理器驱动的一个画面（如一个已加载的关卡）
type Scene interface {
	// Update 推进场景，deltaTime 为自上一帧以来经过的秒数
	Update(deltaTime float64)

	// Draw 把场景绘制到 screen
	Draw(screen *ebiten.Image)
}
