package behavior

import (
	"math"
	"time"
)

// directionUnknown 初始方向采样值，不等于 -1/0/1，保证第一次有效采样必然触发动画
const directionUnknown = 2

// AnimationBehavior 根据水平移动方向切换左右动画
//
// 只有位置变化超过阈值时才采样方向，避免亚像素抖动反复切换；
// 方向不变时不重复请求播放。
type AnimationBehavior struct {
	sprite   Sprite
	player   AnimationPlayer
	left     AnimationClip
	right    AnimationClip
	interval time.Duration

	threshold     float64
	lastX         float64
	lastY         float64
	lastDirection int
}

// newAnimationBehavior 创建方向动画行为，采样位置从精灵当前位置开始
func newAnimationBehavior(sprite Sprite, player AnimationPlayer, left, right AnimationClip, interval time.Duration, threshold float64) *AnimationBehavior {
	return &AnimationBehavior{
		sprite:        sprite,
		player:        player,
		left:          left,
		right:         right,
		interval:      interval,
		threshold:     threshold,
		lastX:         sprite.X(),
		lastY:         sprite.Y(),
		lastDirection: directionUnknown,
	}
}

// Update 采样位置与方向，方向变化时请求循环播放对应动画
//
// 返回:
//   - true: 本帧请求了新的动画
func (b *AnimationBehavior) Update() bool {
	x, y := b.sprite.X(), b.sprite.Y()
	moved := math.Abs(x-b.lastX) > b.threshold || math.Abs(y-b.lastY) > b.threshold
	if !moved {
		return false
	}
	b.lastX, b.lastY = x, y

	direction := sign(b.sprite.VX())
	if direction == b.lastDirection {
		return false
	}
	b.lastDirection = direction

	// 速度为 0 时使用向右的动画
	clip := b.right
	if direction < 0 {
		clip = b.left
	}
	b.player.PlayLoop(b.sprite, clip, b.interval)
	return true
}

// Direction 返回最近一次采样的方向（-1/0/1），尚未采样时返回 false
func (b *AnimationBehavior) Direction() (int, bool) {
	if b.lastDirection == directionUnknown {
		return 0, false
	}
	return b.lastDirection, true
}

func sign(v float64) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
