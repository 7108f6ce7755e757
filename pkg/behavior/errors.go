package behavior

import "errors"

var (
	// ErrUnknownMovePattern 移动模式不在 MovePattern 枚举中
	ErrUnknownMovePattern = errors.New("unknown move pattern")

	// ErrNilSprite 精灵、目标或模板为 nil
	ErrNilSprite = errors.New("sprite cannot be nil")

	// ErrSpriteDestroyed 精灵已被宿主销毁，无法挂载行为
	ErrSpriteDestroyed = errors.New("sprite already destroyed")

	// ErrMissingCollaborator 行为需要的宿主协作者（瓦片地图、工厂、时钟、动画播放器）未提供
	ErrMissingCollaborator = errors.New("missing host collaborator")
)
