package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testPositionComponent struct {
	X, Y float64
}

type testVelocityComponent struct {
	VX, VY float64
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// 测试实体ID唯一性
	if id1 == id2 {
		t.Error("Entity IDs should be unique")
	}

	// 测试ID从1开始
	if id1 != 1 {
		t.Errorf("First entity ID should be 1, got %d", id1)
	}

	if id2 != 2 {
		t.Errorf("Second entity ID should be 2, got %d", id2)
	}
}

func TestAddAndGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 添加组件
	pos := &testPositionComponent{X: 100, Y: 200}
	em.AddComponent(id, pos)

	// 获取组件
	comp, found := em.GetComponent(id, reflect.TypeOf(&testPositionComponent{}))
	if !found {
		t.Error("Component should be found")
	}

	retrieved := comp.(*testPositionComponent)
	if retrieved.X != 100 || retrieved.Y != 200 {
		t.Errorf("Component data mismatch, expected (100, 200), got (%f, %f)", retrieved.X, retrieved.Y)
	}
}

func TestHasComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	// 未添加组件前应该返回false
	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Should not have component before adding")
	}

	// 添加组件
	em.AddComponent(id, &testPositionComponent{})

	// 添加后应该返回true
	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Should have component after adding")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	// 标记删除
	em.DestroyEntity(id)

	// 清理前实体仍存在
	if !em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Entity should still exist before cleanup")
	}

	// 清理后实体消失
	em.RemoveMarkedEntities()
	if em.HasComponent(id, reflect.TypeOf(&testPositionComponent{})) {
		t.Error("Entity should be removed after cleanup")
	}
}

func TestGetEntitiesWith(t *testing.T) {
	em := NewEntityManager()

	// 创建不同组件组合的实体
	id1 := em.CreateEntity()
	em.AddComponent(id1, &testPositionComponent{})
	em.AddComponent(id1, &testVelocityComponent{})

	id2 := em.CreateEntity()
	em.AddComponent(id2, &testPositionComponent{})

	id3 := em.CreateEntity()
	em.AddComponent(id3, &testVelocityComponent{})

	// 查询拥有 Position+Velocity 的实体
	entities := em.GetEntitiesWith(
		reflect.TypeOf(&testPositionComponent{}),
		reflect.TypeOf(&testVelocityComponent{}),
	)

	if len(entities) != 1 {
		t.Errorf("Expected 1 entity with both components, got %d", len(entities))
	}

	if len(entities) > 0 && entities[0] != id1 {
		t.Error("Query should return only id1")
	}

	// 查询只拥有 Position 的实体
	posEntities := em.GetEntitiesWith(reflect.TypeOf(&testPositionComponent{}))
	if len(posEntities) != 2 {
		t.Errorf("Expected 2 entities with Position component, got %d", len(posEntities))
	}
}

func TestDestroyEntityTwiceIsRecordedOnce(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	calls := 0
	em.OnEntityDestroyed(id, func() { calls++ })

	// 同一帧内重复标记
	em.DestroyEntity(id)
	em.DestroyEntity(id)
	em.RemoveMarkedEntities()

	if calls != 1 {
		t.Errorf("Destroy listener should run once, got %d", calls)
	}
	if em.IsAlive(id) {
		t.Error("Entity should not be alive after cleanup")
	}
}

func TestDestroyListenersRunInOrderAfterRemoval(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testPositionComponent{})

	var order []string
	em.OnEntityDestroyed(id, func() {
		// 监听器执行时实体已从存储中删除
		if em.IsAlive(id) {
			t.Error("Entity should already be removed when listener runs")
		}
		order = append(order, "first")
	})
	em.OnEntityDestroyed(id, func() { order = append(order, "second") })

	em.DestroyEntity(id)
	if !em.IsMarkedForDestroy(id) {
		t.Error("Entity should be marked for destroy")
	}
	em.RemoveMarkedEntities()

	if len(order) != 2 || order[0] != "first" || order[1] != "second" {
		t.Errorf("Unexpected listener order: %v", order)
	}
}

func TestDestroyListenerCanDestroyOtherEntities(t *testing.T) {
	em := NewEntityManager()
	parent := em.CreateEntity()
	child := em.CreateEntity()

	// 父实体销毁时连带销毁子实体
	em.OnEntityDestroyed(parent, func() { em.DestroyEntity(child) })

	em.DestroyEntity(parent)
	em.RemoveMarkedEntities()

	if em.IsAlive(parent) || em.IsAlive(child) {
		t.Error("Both entities should be removed in the same cleanup pass")
	}
}

func TestOnEntityDestroyedIgnoresUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	called := false
	if em.OnEntityDestroyed(EntityID(42), func() { called = true }) {
		t.Error("registering on an unknown entity should report false")
	}

	em.DestroyEntity(EntityID(42))
	em.RemoveMarkedEntities()

	if called {
		t.Error("Listener for unknown entity should never run")
	}
}

func TestGetEntitiesWithIsSorted(t *testing.T) {
	em := NewEntityManager()
	for i := 0; i < 50; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testPositionComponent{X: float64(i)})
	}

	ids := em.GetEntitiesWith(reflect.TypeOf(&testPositionComponent{}))
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Fatalf("Entity IDs should be ascending, got %v", ids)
		}
	}
}

func TestGenericAPI(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()

	AddComponent(em, id, &testPositionComponent{X: 3, Y: 4})
	AddComponent(em, id, &testVelocityComponent{VX: 1})

	pos, ok := GetComponent[*testPositionComponent](em, id)
	if !ok || pos.X != 3 || pos.Y != 4 {
		t.Errorf("GetComponent returned %+v, %v", pos, ok)
	}

	if !HasComponent[*testVelocityComponent](em, id) {
		t.Error("HasComponent should report velocity component")
	}

	if got := GetEntitiesWith2[*testPositionComponent, *testVelocityComponent](em); len(got) != 1 || got[0] != id {
		t.Errorf("GetEntitiesWith2 = %v, want [%d]", got, id)
	}

	RemoveComponent[*testVelocityComponent](em, id)
	if _, ok := GetComponent[*testVelocityComponent](em, id); ok {
		t.Error("Velocity component should be removed")
	}
	if got := GetEntitiesWith1[*testVelocityComponent](em); len(got) != 0 {
		t.Errorf("GetEntitiesWith1 = %v, want empty", got)
	}
}
