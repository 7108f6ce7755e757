package behavior

// FollowBehavior 水平追踪目标精灵
//
// 目标被销毁后行为失效，Update 恒返回 false。
type FollowBehavior struct {
	mover  *Mover
	target Sprite
}

// newFollowBehavior 创建跟随行为，并在目标销毁时解除引用
func newFollowBehavior(mover *Mover, target Sprite) *FollowBehavior {
	b := &FollowBehavior{mover: mover}
	if target.OnDestroyed(func() { b.target = nil }) {
		b.target = target
	}
	return b
}

// Update 朝目标修正水平速度
//
// 返回:
//   - true: 本帧施加了水平修正
//   - false: 已与目标对齐，或目标已销毁
func (b *FollowBehavior) Update() bool {
	if b.target == nil {
		return false
	}
	return b.mover.MoveTo(b.target)
}

// Target 返回跟随目标，目标已销毁时为 nil
func (b *FollowBehavior) Target() Sprite {
	return b.target
}
