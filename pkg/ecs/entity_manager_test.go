package ecs

import (
	"reflect"
	"testing"
)

// 测试组件类型定义
type testBoundsComponent struct {
	X, Y, W, H float64
}

type testTextComponent struct {
	Text string
}

func TestCreateEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()

	if id1 != 1 || id2 != 2 {
		t.Errorf("IDs = (%d, %d), want (1, 2)", id1, id2)
	}
	if em.EntityCount() != 2 {
		t.Errorf("EntityCount() = %d, want 2", em.EntityCount())
	}
}

func TestGenericGetComponent(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testBoundsComponent{X: 10, W: 500, H: 30})

	bounds, ok := GetComponent[*testBoundsComponent](em, id)
	if !ok {
		t.Fatal("bounds component should be found")
	}
	if bounds.W != 500 || bounds.H != 30 {
		t.Errorf("bounds = %+v", bounds)
	}

	// 组件以指针保存，修改对后续查询可见
	bounds.W = 300
	again, _ := GetComponent[*testBoundsComponent](em, id)
	if again.W != 300 {
		t.Errorf("W = %v after mutation, want 300", again.W)
	}

	if _, ok := GetComponent[*testTextComponent](em, id); ok {
		t.Error("text component should not be found")
	}
	if _, ok := GetComponent[*testBoundsComponent](em, 99); ok {
		t.Error("unknown entity should not have components")
	}
	if !HasComponent[*testBoundsComponent](em, id) || HasComponent[*testTextComponent](em, id) {
		t.Error("HasComponent mismatch")
	}
}

func TestAddComponentReplaces(t *testing.T) {
	em := NewEntityManager()
	id := em.CreateEntity()
	em.AddComponent(id, &testTextComponent{Text: "0"})
	em.AddComponent(id, &testTextComponent{Text: "10"})

	text, _ := GetComponent[*testTextComponent](em, id)
	if text.Text != "10" {
		t.Errorf("Text = %q, want %q", text.Text, "10")
	}

	em.RemoveComponent(id, reflect.TypeOf(&testTextComponent{}))
	if HasComponent[*testTextComponent](em, id) {
		t.Error("component should be removed")
	}
}

func TestDestroyEntity(t *testing.T) {
	em := NewEntityManager()
	id1 := em.CreateEntity()
	id2 := em.CreateEntity()
	em.AddComponent(id1, &testBoundsComponent{})
	em.AddComponent(id2, &testBoundsComponent{})

	em.DestroyEntity(id1)

	// 清理前实体仍存在
	if !HasComponent[*testBoundsComponent](em, id1) {
		t.Error("entity should still exist before cleanup")
	}

	em.RemoveMarkedEntities()
	if HasComponent[*testBoundsComponent](em, id1) {
		t.Error("id1 should be removed")
	}
	if !HasComponent[*testBoundsComponent](em, id2) {
		t.Error("id2 should still exist")
	}
	if em.EntityCount() != 1 {
		t.Errorf("EntityCount() = %d, want 1", em.EntityCount())
	}
}

func TestGetEntitiesWith_Sorted(t *testing.T) {
	em := NewEntityManager()

	var withBoth []EntityID
	for i := 0; i < 20; i++ {
		id := em.CreateEntity()
		em.AddComponent(id, &testBoundsComponent{})
		if i%2 == 0 {
			em.AddComponent(id, &testTextComponent{})
			withBoth = append(withBoth, id)
		}
	}

	all := GetEntitiesWith1[*testBoundsComponent](em)
	if len(all) != 20 {
		t.Fatalf("len = %d, want 20", len(all))
	}
	for i := 1; i < len(all); i++ {
		if all[i-1] >= all[i] {
			t.Fatalf("entities not sorted: %v", all)
		}
	}

	both := GetEntitiesWith2[*testBoundsComponent, *testTextComponent](em)
	if len(both) != len(withBoth) {
		t.Fatalf("len = %d, want %d", len(both), len(withBoth))
	}
	for i := range both {
		if both[i] != withBoth[i] {
			t.Errorf("both[%d] = %d, want %d", i, both[i], withBoth[i])
		}
	}
}

// TestAddComponent_UnknownEntity 向不存在的实体添加组件被忽略
func TestAddComponent_UnknownEntity(t *testing.T) {
	em := NewEntityManager()
	em.AddComponent(42, &testTextComponent{Text: "x"})

	if HasComponent[*testTextComponent](em, 42) {
		t.Error("component added to unknown entity")
	}
	if em.EntityCount() != 0 {
		t.Errorf("EntityCount() = %d, want 0", em.EntityCount())
	}
}
