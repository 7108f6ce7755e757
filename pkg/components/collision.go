package components

// CollisionComponent 定义实体与瓦片碰撞时使用的边界框
// 边界框中心为实体位置加偏移量
type CollisionComponent struct {
	Width   float64 // 碰撞盒宽度（像素）
	Height  float64 // 碰撞盒高度（像素）
	OffsetX float64 // 碰撞盒中心相对于实体位置的X偏移量（像素），正值向右偏移
	OffsetY float64 // 碰撞盒中心相对于实体位置的Y偏移量（像素），正值向下偏移
}

// TileCollisionComponent 记录最近一次物理步进中实体碰到实心瓦片的方向
// PhysicsSystem 每帧重算，行为引擎通过 Sprite.IsHittingTile 读取
type TileCollisionComponent struct {
	Left   bool
	Top    bool
	Right  bool
	Bottom bool
}

// Any 是否在任一方向碰到瓦片
func (c *TileCollisionComponent) Any() bool {
	return c.Left || c.Top || c.Right || c.Bottom
}

// Reset 清空所有碰撞标志
func (c *TileCollisionComponent) Reset() {
	*c = TileCollisionComponent{}
}
