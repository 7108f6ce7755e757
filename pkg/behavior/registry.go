package behavior

import (
	"log"

	"github.com/gonewx/sprite-behaviors/pkg/config"
)

// LogOutputFrameInterval 日志输出间隔（每N帧输出一次）
const LogOutputFrameInterval = 100

// Item 精灵与其组合行为的绑定
type Item struct {
	Sprite   Sprite
	Behavior *SpriteBehavior

	removed bool
}

// Registry 精灵行为注册表
//
// 每个精灵身份最多对应一个 Item。Item 在首次配置时创建，
// 在精灵的销毁回调中移除；UpdateAll 按注册顺序更新所有 Item。
type Registry struct {
	env      Env
	tunables *config.BehaviorConfig

	items map[SpriteID]*Item
	order []*Item

	updating        bool
	logFrameCounter int
}

// NewRegistry 创建行为注册表
//
// 参数:
//   - env: 宿主协作者（可部分为空）
//   - tunables: 行为参数配置，为 nil 时使用默认配置
func NewRegistry(env Env, tunables *config.BehaviorConfig) *Registry {
	if tunables == nil {
		tunables = config.DefaultBehaviorConfig()
	}
	return &Registry{
		env:      env,
		tunables: tunables,
		items:    make(map[SpriteID]*Item),
	}
}

// Attach 将 UpdateAll 注册到宿主的逐帧回调
func (r *Registry) Attach(scheduler FrameScheduler) {
	scheduler.OnUpdate(r.UpdateAll)
}

// Tunables 返回行为参数配置
func (r *Registry) Tunables() *config.BehaviorConfig {
	return r.tunables
}

// GetOrCreate 查找精灵的 Item，不存在时创建
//
// 新建的 Item 会在精灵销毁时自动移除；对同一精灵重复调用返回同一个 Item。
// 精灵已被销毁时不创建 Item，返回 nil。
func (r *Registry) GetOrCreate(sprite Sprite) *Item {
	if item, ok := r.items[sprite.ID()]; ok {
		return item
	}

	id := sprite.ID()
	registered := sprite.OnDestroyed(func() {
		r.remove(id)
	})
	if !registered {
		log.Printf("[Registry] ⚠️ 精灵 %d 已销毁，拒绝注册行为", id)
		return nil
	}

	item := &Item{
		Sprite: sprite,
		Behavior: &SpriteBehavior{
			mover: newMover(sprite, r.env.Tiles, r.tunables.Walk, r.tunables.Defaults),
		},
	}

	r.items[id] = item
	r.order = append(r.order, item)
	log.Printf("[Registry] 注册精灵 %d (种类: %s)，当前 %d 个", id, sprite.Kind(), len(r.order))
	return item
}

// Lookup 查找精灵的 Item；未配置的精灵返回 false
func (r *Registry) Lookup(sprite Sprite) (*Item, bool) {
	if sprite == nil {
		return nil, false
	}
	item, ok := r.items[sprite.ID()]
	return item, ok
}

// Len 返回已注册精灵数量
func (r *Registry) Len() int {
	return len(r.order)
}

// Items 返回按注册顺序排列的 Item 副本
func (r *Registry) Items() []*Item {
	items := make([]*Item, len(r.order))
	copy(items, r.order)
	return items
}

// UpdateAll 按注册顺序更新所有组合行为
//
// 遍历开始前对 Item 列表做快照，更新过程中被销毁回调移除的 Item 会被跳过，
// 其余 Item 每帧恰好更新一次。
func (r *Registry) UpdateAll() {
	if r.updating {
		return
	}
	r.updating = true
	defer func() { r.updating = false }()

	snapshot := r.Items()

	if len(snapshot) > 0 {
		r.logFrameCounter++
		if r.logFrameCounter%LogOutputFrameInterval == 1 {
			log.Printf("[Registry] 更新 %d 个精灵行为", len(snapshot))
		}
	}

	for _, item := range snapshot {
		if item.removed {
			continue
		}
		item.Behavior.Update()
	}
}

// remove 移除精灵的 Item；未注册的精灵为空操作
func (r *Registry) remove(id SpriteID) {
	item, ok := r.items[id]
	if !ok {
		return
	}
	item.removed = true
	delete(r.items, id)

	for i, candidate := range r.order {
		if candidate == item {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	log.Printf("[Registry] 精灵 %d 已销毁，移除行为，剩余 %d 个", id, len(r.order))
}
