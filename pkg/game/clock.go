package game

import "time"

// GameClock 游戏时钟
//
// 时间只随 Advance 前进（每帧累加 deltaTime），暂停游戏时时钟也随之停止。
// GameClock 实现 behavior.Clock。
type GameClock struct {
	now time.Duration
}

// NewGameClock 创建从 0 开始的时钟
func NewGameClock() *GameClock {
	return &GameClock{}
}

// Now 返回游戏开始以来经过的时间
func (c *GameClock) Now() time.Duration {
	return c.now
}

// Advance 时钟前进 deltaTime 秒；负值被忽略
func (c *GameClock) Advance(deltaTime float64) {
	if deltaTime <= 0 {
		return
	}
	c.now += time.Duration(deltaTime * float64(time.Second))
}
