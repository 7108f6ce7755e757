package systems

import (
	"log"
	"time"

	"github.com/gonewx/sprite-behaviors/pkg/behavior"
	"github.com/gonewx/sprite-behaviors/pkg/components"
	"github.com/gonewx/sprite-behaviors/pkg/ecs"
)

// AnimationSystem 管理所有实体的帧动画
//
// AnimationSystem 同时实现 behavior.AnimationPlayer：
// 方向动画行为通过 PlayLoop 替换实体当前的动画片段。
type AnimationSystem struct {
	entityManager *ecs.EntityManager
}

// NewAnimationSystem 创建一个新的动画系统
func NewAnimationSystem(em *ecs.EntityManager) *AnimationSystem {
	return &AnimationSystem{
		entityManager: em,
	}
}

// PlayLoop 在精灵上从第 0 帧开始循环播放片段
func (s *AnimationSystem) PlayLoop(sprite behavior.Sprite, clip behavior.AnimationClip, interval time.Duration) {
	id := ecs.EntityID(sprite.ID())
	if !s.entityManager.IsAlive(id) {
		log.Printf("[AnimationSystem] ⚠️ 实体 %d 不存在，忽略动画 %s", id, clip.Name)
		return
	}

	ecs.AddComponent(s.entityManager, id, &components.AnimationComponent{
		ClipName:   clip.Name,
		Frames:     clip.Frames,
		FrameSpeed: interval.Seconds(),
		IsLooping:  true,
	})

	if spriteComp, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id); ok && len(clip.Frames) > 0 {
		spriteComp.Image = clip.Frames[0]
	}
}

// Update 更新所有动画实体的帧
func (s *AnimationSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith2[*components.AnimationComponent, *components.SpriteComponent](s.entityManager)

	for _, id := range entities {
		anim, _ := ecs.GetComponent[*components.AnimationComponent](s.entityManager, id)
		sprite, _ := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)

		// 非循环动画完成后停在最后一帧
		if anim.IsFinished || len(anim.Frames) == 0 {
			continue
		}

		anim.FrameCounter += deltaTime
		if anim.FrameCounter < anim.FrameSpeed {
			continue
		}

		anim.FrameCounter = 0
		anim.CurrentFrame++

		if anim.CurrentFrame >= len(anim.Frames) {
			if anim.IsLooping {
				anim.CurrentFrame = 0
			} else {
				anim.CurrentFrame = len(anim.Frames) - 1
				anim.IsFinished = true
				log.Printf("[AnimationSystem] 动画 %s 播放完成 (实体ID: %d)", anim.ClipName, id)
			}
		}

		sprite.Image = anim.Frames[anim.CurrentFrame]
	}
}
