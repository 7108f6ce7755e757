package systems

import (
	"log"

	"github.com/gonewx/sprite-behaviors/pkg/components"
	"github.com/gonewx/sprite-behaviors/pkg/ecs"
)

// LifetimeSystem 删除超过存活时间的实体（攻击行为生成的子弹）
type LifetimeSystem struct {
	entityManager *ecs.EntityManager
	expired       int
}

// NewLifetimeSystem 创建一个新的生命周期系统
func NewLifetimeSystem(em *ecs.EntityManager) *LifetimeSystem {
	return &LifetimeSystem{
		entityManager: em,
	}
}

// Update 累加存活时间，过期的实体标记删除
func (s *LifetimeSystem) Update(deltaTime float64) {
	entities := ecs.GetEntitiesWith1[*components.LifetimeComponent](s.entityManager)

	for _, id := range entities {
		lifetime, ok := ecs.GetComponent[*components.LifetimeComponent](s.entityManager, id)
		if !ok || lifetime.IsExpired {
			continue
		}

		lifetime.CurrentLifetime += deltaTime
		if lifetime.CurrentLifetime < lifetime.MaxLifetime {
			continue
		}

		lifetime.IsExpired = true
		s.expired++
		s.entityManager.DestroyEntity(id)
		log.Printf("[LifetimeSystem] 实体 %d 存活 %.1fs 后过期", id, lifetime.CurrentLifetime)
	}
}

// Expired 累计过期的实体数量
func (s *LifetimeSystem) Expired() int {
	return s.expired
}
