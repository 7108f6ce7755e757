package behavior

import (
	"log"
	"math"
	"time"

	"github.com/gonewx/sprite-behaviors/pkg/config"
)

// AttackBehavior 周期性向目标发射子弹
//
// 开火计时使用累加器：每次开火 lastFire 前进一个开火间隔，而不是重置为当前时间，
// 因此帧间隔抖动不会让长期开火频率漂移。若一次采样间隔远大于开火间隔，
// 之后的若干帧会连续开火补齐。目标被销毁后停止开火。
type AttackBehavior struct {
	attacker Sprite
	target   Sprite
	template SpriteTemplate
	factory  SpriteFactory
	clock    Clock

	interval time.Duration
	speed    float64
	deadZone float64

	lastFire time.Duration
	shots    int
}

// newAttackBehavior 创建攻击行为，累加器从当前时间开始
func newAttackBehavior(attacker, target Sprite, template SpriteTemplate, factory SpriteFactory, clock Clock, cfg *config.BehaviorConfig) *AttackBehavior {
	b := &AttackBehavior{
		attacker: attacker,
		template: template,
		factory:  factory,
		clock:    clock,
		interval: cfg.FireInterval(),
		speed:    cfg.Attack.Speed,
		deadZone: cfg.Attack.DeadZone,
		lastFire: clock.Now(),
	}
	if target.OnDestroyed(func() { b.target = nil }) {
		b.target = target
	}
	return b
}

// Update 检查开火计时器，攻击行为从不阻断组合行为
func (b *AttackBehavior) Update() bool {
	if b.target == nil {
		return true
	}
	elapsed := b.clock.Now() - b.lastFire
	if elapsed > b.interval {
		b.Fire()
		b.lastFire += b.interval
	}
	return true
}

// Fire 朝目标发射一颗子弹
//
// 速度按 L1 范数 (|dx|+|dy|) 归一化后乘以固定速度，斜向子弹比轴向子弹慢。
// 目标在两个轴上都处于死区内时不发射。
//
// 返回:
//   - true: 生成了子弹
func (b *AttackBehavior) Fire() bool {
	if b.target == nil {
		return false
	}
	dx := b.target.X() - b.attacker.X()
	dy := b.target.Y() - b.attacker.Y()
	if math.Abs(dx) < b.deadZone && math.Abs(dy) < b.deadZone {
		return false
	}

	norm := math.Abs(dx) + math.Abs(dy)
	if norm == 0 {
		return false
	}

	projectile := b.factory.Spawn(b.template)
	if projectile == nil {
		log.Printf("[AttackBehavior] ⚠️ 精灵 %d 子弹生成失败", b.attacker.ID())
		return false
	}
	projectile.SetFlag(FlagDestroyOnWall, true)
	projectile.SetPosition(b.attacker.X(), b.attacker.Y())
	projectile.SetVX(dx / norm * b.speed)
	projectile.SetVY(dy / norm * b.speed)

	b.shots++
	return true
}

// Shots 返回已发射的子弹数量
func (b *AttackBehavior) Shots() int {
	return b.shots
}

// Target 返回攻击目标
func (b *AttackBehavior) Target() Sprite {
	return b.target
}
