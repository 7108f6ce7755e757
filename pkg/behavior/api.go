package behavior

import (
	"fmt"
	"log"
	"time"
)

// SetPattern 为精灵设置（或替换）移动模式
//
// 移动模式决定速度上限：未指定 WithCeiling 时使用配置中该模式的参数。
// 设置后精灵速度被重置为上限速度，并关闭"限制在屏幕内"标志。
//
// 返回:
//   - ErrUnknownMovePattern: 未知的移动模式，不创建 Item、不挂载行为
//   - ErrMissingCollaborator: 模式需要瓦片地图而 Env.Tiles 为空
func (r *Registry) SetPattern(sprite Sprite, pattern MovePattern, opts ...PatternOption) error {
	if sprite == nil {
		return ErrNilSprite
	}
	if !pattern.Valid() {
		return fmt.Errorf("failed to set pattern: %w: %d", ErrUnknownMovePattern, int(pattern))
	}
	if patternStrategies[pattern].needsTiles && r.env.Tiles == nil {
		return fmt.Errorf("failed to set pattern %s: %w: tile map", pattern, ErrMissingCollaborator)
	}

	var options patternOptions
	for _, opt := range opts {
		opt(&options)
	}

	item := r.GetOrCreate(sprite)
	if item == nil {
		return fmt.Errorf("failed to set pattern: %w: %d", ErrSpriteDestroyed, sprite.ID())
	}
	move, err := newMoveBehavior(item.Behavior.mover, pattern, r.tunables.GetPattern(pattern.String()), options)
	if err != nil {
		return fmt.Errorf("failed to set pattern: %w", err)
	}
	item.Behavior.move = move

	if !options.keepScreen {
		sprite.SetFlag(FlagStayInScreen, false)
	}

	vx, vy := item.Behavior.mover.Ceiling()
	log.Printf("[Registry] 精灵 %d 设置移动模式 %s (上限: %.1f, %.1f, 重力: %.1f)",
		sprite.ID(), pattern, vx, vy, move.gravity)
	return nil
}

// SetFollower 让精灵水平跟随目标
//
// 跟随使用精灵当前的水平速度上限；只有移动模式本帧返回 true 时跟随才会执行。
func (r *Registry) SetFollower(sprite, target Sprite) error {
	if sprite == nil || target == nil {
		return ErrNilSprite
	}

	item := r.GetOrCreate(sprite)
	if item == nil {
		return fmt.Errorf("failed to set follower: %w: %d", ErrSpriteDestroyed, sprite.ID())
	}
	item.Behavior.follow = newFollowBehavior(item.Behavior.mover, target)

	log.Printf("[Registry] 精灵 %d 跟随精灵 %d", sprite.ID(), target.ID())
	return nil
}

// SetAnimation 为精灵设置左右方向动画
//
// 参数:
//   - left: 向左移动时循环播放的动画
//   - right: 向右移动（或静止）时循环播放的动画
//   - interval: 帧间隔
func (r *Registry) SetAnimation(sprite Sprite, left, right AnimationClip, interval time.Duration) error {
	if sprite == nil {
		return ErrNilSprite
	}
	if r.env.Animator == nil {
		return fmt.Errorf("failed to set animation: %w: animation player", ErrMissingCollaborator)
	}

	item := r.GetOrCreate(sprite)
	if item == nil {
		return fmt.Errorf("failed to set animation: %w: %d", ErrSpriteDestroyed, sprite.ID())
	}
	item.Behavior.animation = newAnimationBehavior(sprite, r.env.Animator, left, right, interval,
		r.tunables.Animation.MoveThreshold)

	log.Printf("[Registry] 精灵 %d 设置方向动画 (%s / %s, 间隔 %v)", sprite.ID(), left.Name, right.Name, interval)
	return nil
}

// SetAttacker 让精灵周期性向目标发射子弹
//
// 子弹由 bulletTemplate 克隆，碰墙销毁。
func (r *Registry) SetAttacker(sprite, target Sprite, bulletTemplate SpriteTemplate) error {
	if sprite == nil || target == nil || bulletTemplate == nil {
		return ErrNilSprite
	}
	if r.env.Factory == nil {
		return fmt.Errorf("failed to set attacker: %w: sprite factory", ErrMissingCollaborator)
	}
	if r.env.Clock == nil {
		return fmt.Errorf("failed to set attacker: %w: clock", ErrMissingCollaborator)
	}

	item := r.GetOrCreate(sprite)
	if item == nil {
		return fmt.Errorf("failed to set attacker: %w: %d", ErrSpriteDestroyed, sprite.ID())
	}
	item.Behavior.attack = newAttackBehavior(sprite, target, bulletTemplate, r.env.Factory, r.env.Clock, r.tunables)

	log.Printf("[Registry] 精灵 %d 攻击精灵 %d (间隔 %v)", sprite.ID(), target.ID(), r.tunables.FireInterval())
	return nil
}

// ClearBehavior 清空精灵的某个行为槽位；未配置的精灵为空操作
func (r *Registry) ClearBehavior(sprite Sprite, slot Slot) {
	item, ok := r.Lookup(sprite)
	if !ok {
		return
	}
	item.Behavior.Clear(slot)
}
