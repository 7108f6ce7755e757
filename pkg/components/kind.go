package components

// KindComponent 精灵的名称与种类
type KindComponent struct {
	Name string // 关卡中的精灵名称，子弹等运行时生成的精灵为模板名
	Kind string // 种类，如 "player", "enemy", "projectile"
}
