package config

// 世界与瓦片相关常量
const (
	// DefaultTileSize 关卡未指定时的瓦片边长（像素）
	DefaultTileSize = 16

	// SolidTile 瓦片地图中表示实心瓦片的字符
	SolidTile = '#'

	// WorldCullMargin 实体离开世界边界超过此距离后被删除（像素）
	WorldCullMargin = 32.0
)

// 默认数据文件路径
const (
	DefaultBehaviorConfigPath = "data/behavior.yaml"
	DefaultLevelPath          = "data/levels/demo.yaml"
)

// 窗口与输入相关常量
const (
	// WindowScale 窗口相对于世界像素尺寸的缩放倍数
	WindowScale = 2

	// PlayerSpeed 方向键移动玩家精灵的速度（像素/秒）
	PlayerSpeed = 90.0

	// PlayerSpriteName 关卡中由键盘控制的精灵名称
	PlayerSpriteName = "player"

	// ProjectileKind 子弹模板的种类名称，状态栏按此统计子弹数量
	ProjectileKind = "projectile"
)
