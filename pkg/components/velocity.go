package components

// VelocityComponent 实体速度（像素/秒）
// 由行为引擎写入，PhysicsSystem 每帧积分到位置
type VelocityComponent struct {
	VX float64
	VY float64
}
