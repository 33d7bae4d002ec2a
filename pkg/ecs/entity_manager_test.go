package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testBody struct {
	X, Y float64
}

type testTag struct {
	Name string
}

func TestCreateEntityMonotonic(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	// ID从1开始,0保留为无效ID
	if id1 != 1 {
		t.Errorf("first id: got %d, want 1", id1)
	}
	if id2 != 2 {
		t.Errorf("second id: got %d, want 2", id2)
	}

	// 删除后ID不复用
	em.DestroyEntity(id2)
	em.RemoveMarkedEntities()
	if id3 := em.CreateEntity(); id3 != 3 {
		t.Errorf("id after destroy: got %d, want 3", id3)
	}
}

func TestGenericAddAndGet(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	AddComponent(em, id, &testBody{X: 100, Y: 200})

	body, ok := GetComponent[*testBody](em, id)
	if !ok {
		t.Fatal("component should be found")
	}
	if body.X != 100 || body.Y != 200 {
		t.Errorf("body: got (%v, %v), want (100, 200)", body.X, body.Y)
	}

	// 泛型与反射版本使用同一键
	if !em.HasComponent(id, reflect.TypeOf(&testBody{})) {
		t.Error("reflect lookup should see generic add")
	}

	if _, ok := GetComponent[*testTag](em, id); ok {
		t.Error("missing component should not be found")
	}

	RemoveComponent[*testBody](em, id)
	if HasComponent[*testBody](em, id) {
		t.Error("component should be removed")
	}
}

func TestDestroyIsDeferred(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testBody{})

	em.DestroyEntity(id)
	em.DestroyEntity(id)

	if !em.IsMarkedForDestroy(id) {
		t.Error("entity should be marked")
	}
	if !HasComponent[*testBody](em, id) {
		t.Error("entity should still exist before cleanup")
	}
	if em.Count() != 0 {
		t.Errorf("Count: got %d, want 0", em.Count())
	}

	em.RemoveMarkedEntities()
	if em.EntityExists(id) {
		t.Error("entity should be removed after cleanup")
	}
	if em.Count() != 0 {
		t.Errorf("Count after cleanup: got %d, want 0", em.Count())
	}
}

func TestDestroyUnknownEntity(t *testing.T) {
	em := NewEntityManager()
	em.CreateEntity()
	em.DestroyEntity(42)
	if em.Count() != 1 {
		t.Errorf("Count: got %d, want 1", em.Count())
	}
}

func TestGetEntitiesWithSorted(t *testing.T) {
	em := NewEntityManager()

	ids := make([]EntityID, 0)
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		AddComponent(em, id, &testBody{X: float64(i)})
		if i%2 == 0 {
			AddComponent(em, id, &testTag{Name: "even"})
		}
		ids = append(ids, id)
	}

	all := GetEntitiesWith1[*testBody](em)
	if len(all) != 20 {
		t.Fatalf("len: got %d, want 20", len(all))
	}
	for i := range all {
		if all[i] != ids[i] {
			t.Fatalf("order at %d: got %d, want %d", i, all[i], ids[i])
		}
	}

	even := GetEntitiesWith2[*testBody, *testTag](em)
	if len(even) != 10 {
		t.Fatalf("len even: got %d, want 10", len(even))
	}
	for i := 1; i < len(even); i++ {
		if even[i-1] >= even[i] {
			t.Errorf("query result not ascending: %v", even)
			break
		}
	}
}
