package components

import "github.com/hajimehoshi/ebiten/v2"

// AnimationComponent 管理逐帧动画
// 行为引擎的方向动画通过 AnimationSystem.PlayLoop 替换当前片段
type AnimationComponent struct {
	ClipName     string          // 当前片段名称（如 "walk_left"）
	Frames       []*ebiten.Image // 片段的所有帧
	FrameSpeed   float64         // 每帧之间的延迟时间(秒)
	FrameCounter float64         // 当前帧计时器(秒)
	CurrentFrame int             // 当前显示的帧索引(0-based)
	IsLooping    bool            // 是否循环播放
	IsFinished   bool            // 是否已完成(仅对非循环动画有效)
}
