package behavior

// Slot 组合行为的槽位
type Slot int

const (
	SlotMove Slot = iota
	SlotFollow
	SlotAnimation
	SlotAttack
)

// String 返回槽位名称
func (s Slot) String() string {
	switch s {
	case SlotMove:
		return "move"
	case SlotFollow:
		return "follow"
	case SlotAnimation:
		return "animation"
	case SlotAttack:
		return "attack"
	default:
		return "unknown"
	}
}

// SpriteBehavior 单个精灵的组合行为
//
// 持有共享的 Mover（速度上限）以及四个可选槽位。槽位为 nil 表示未设置。
type SpriteBehavior struct {
	mover *Mover

	move      Behavior
	follow    Behavior
	animation Behavior
	attack    Behavior
}

// Update 按固定顺序执行各槽位
//
// 执行顺序：
//  1. 移动模式（存在时其返回值决定是否继续）
//  2. 跟随：仅当移动模式返回 true 时执行，避免两个水平控制互相抢夺
//  3. 动画：总是执行
//  4. 攻击：总是执行
//
// 返回移动/跟随链的结果。
func (b *SpriteBehavior) Update() bool {
	updated := true

	if b.move != nil {
		updated = b.move.Update()
	}

	if updated && b.follow != nil {
		updated = b.follow.Update()
	}

	if b.animation != nil {
		b.animation.Update()
	}

	if b.attack != nil {
		b.attack.Update()
	}

	return updated
}

// Mover 返回共享的移动原语
func (b *SpriteBehavior) Mover() *Mover {
	return b.mover
}

// Get 返回指定槽位的行为
func (b *SpriteBehavior) Get(slot Slot) (Behavior, bool) {
	var behavior Behavior
	switch slot {
	case SlotMove:
		behavior = b.move
	case SlotFollow:
		behavior = b.follow
	case SlotAnimation:
		behavior = b.animation
	case SlotAttack:
		behavior = b.attack
	}
	return behavior, behavior != nil
}

// Set 设置指定槽位的行为，传入 nil 等同于清空
func (b *SpriteBehavior) Set(slot Slot, behavior Behavior) {
	switch slot {
	case SlotMove:
		b.move = behavior
	case SlotFollow:
		b.follow = behavior
	case SlotAnimation:
		b.animation = behavior
	case SlotAttack:
		b.attack = behavior
	}
}

// Clear 清空指定槽位
func (b *SpriteBehavior) Clear(slot Slot) {
	b.Set(slot, nil)
}
