package components

// PositionComponent 实体在世界中的中心坐标（像素）
type PositionComponent struct {
	X float64
	Y float64
}
