package components

// LifetimeComponent 限制实体的存活时间
// 攻击行为生成的子弹带有此组件，超时后由 LifetimeSystem 删除
type LifetimeComponent struct {
	MaxLifetime     float64 // 最大存活时间(秒)
	CurrentLifetime float64 // 已存活时间(秒)
	IsExpired       bool
}
