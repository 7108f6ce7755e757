package entities

import (
	"image/color"

	"github.com/gonewx/sprite-behaviors/pkg/behavior"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// 方向标记颜色
var markerColor = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xff}

// NewSolidImage 创建纯色占位图
func NewSolidImage(width, height int, clr color.Color) *ebiten.Image {
	img := ebiten.NewImage(max(width, 1), max(height, 1))
	img.Fill(clr)
	return img
}

// NewDirectionalClip 生成朝向动画片段
//
// 每帧为纯色底图加一个方向标记：facingLeft 时标记靠左，否则靠右；
// 标记的竖直位置随帧序号循环，形成简单的步行效果。
//
// 参数:
//   - name: 片段名称
//   - frames: 帧数，小于 1 时按 1 处理
func NewDirectionalClip(name string, width, height, frames int, clr color.Color, facingLeft bool) behavior.AnimationClip {
	frames = max(frames, 1)
	width = max(width, 1)
	height = max(height, 1)

	markerW := float32(max(width/4, 1))
	markerH := float32(max(height/4, 1))
	markerX := float32(width) - markerW
	if facingLeft {
		markerX = 0
	}

	clip := behavior.AnimationClip{Name: name, Frames: make([]*ebiten.Image, 0, frames)}
	for i := 0; i < frames; i++ {
		img := NewSolidImage(width, height, clr)
		step := (float32(height) - markerH) / float32(frames)
		vector.DrawFilledRect(img, markerX, float32(i)*step, markerW, markerH, markerColor, false)
		clip.Frames = append(clip.Frames, img)
	}
	return clip
}
