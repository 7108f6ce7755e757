package components

// SpriteFlagsComponent 精灵的物理开关
type SpriteFlagsComponent struct {
	// StayInScreen 为 true 时 PhysicsSystem 把实体限制在世界范围内，
	// 为 false 时离开世界的实体会被删除
	StayInScreen bool

	// DestroyOnWall 为 true 时碰到任意实心瓦片即删除（子弹）
	DestroyOnWall bool
}
