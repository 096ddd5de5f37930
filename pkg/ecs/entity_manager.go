// Package ecs 提供最小的实体-组件存储
// 演示程序中的每个控件（滑动条、标签）都是一个实体，各个系统按组件类型查询
package ecs

import (
	"reflect"
	"sort"
)

// EntityID 实体标识，0 表示"没有实体"（输入系统用它表示未捕获）
type EntityID uint64

// EntityManager 保存所有控件实体及其组件
//
// 每个实体的组件按具体类型索引，同一类型只保留一个；
// 组件一般以指针存放，系统拿到后可以直接修改。
type EntityManager struct {
	nextID     uint64
	components map[EntityID]map[reflect.Type]interface{}
	pending    []EntityID // 等待 RemoveMarkedEntities 删除
}

// NewEntityManager 创建空的实体管理器，第一个实体的 ID 为 1
func NewEntityManager() *EntityManager {
	return &EntityManager{
		nextID:     1,
		components: make(map[EntityID]map[reflect.Type]interface{}),
	}
}

// CreateEntity 分配新的实体 ID
func (em *EntityManager) CreateEntity() EntityID {
	id := EntityID(em.nextID)
	em.nextID++
	em.components[id] = make(map[reflect.Type]interface{})
	return id
}

// DestroyEntity 标记实体，帧末由 RemoveMarkedEntities 统一删除，
// 避免系统遍历实体时修改集合
func (em *EntityManager) DestroyEntity(id EntityID) {
	em.pending = append(em.pending, id)
}

// AddComponent 挂载组件，实体不存在时忽略
func (em *EntityManager) AddComponent(id EntityID, component interface{}) {
	comps, ok := em.components[id]
	if !ok {
		return
	}
	comps[reflect.TypeOf(component)] = component
}

// RemoveComponent 卸下指定类型的组件
func (em *EntityManager) RemoveComponent(id EntityID, componentType reflect.Type) {
	if comps, ok := em.components[id]; ok {
		delete(comps, componentType)
	}
}

// GetComponent 按类型取组件
func (em *EntityManager) GetComponent(id EntityID, componentType reflect.Type) (interface{}, bool) {
	comp, ok := em.components[id][componentType]
	return comp, ok
}

// HasComponent 实体是否挂载了该类型的组件
func (em *EntityManager) HasComponent(id EntityID, componentType reflect.Type) bool {
	_, ok := em.components[id][componentType]
	return ok
}

// RemoveMarkedEntities 删除 DestroyEntity 标记过的实体
func (em *EntityManager) RemoveMarkedEntities() {
	for _, id := range em.pending {
		delete(em.components, id)
	}
	em.pending = em.pending[:0]
}

// GetEntitiesWith 返回同时拥有全部给定组件类型的实体，按 ID 升序
// 滑动条按创建顺序绘制和命中测试
func (em *EntityManager) GetEntitiesWith(componentTypes ...reflect.Type) []EntityID {
	var result []EntityID
outer:
	for id, comps := range em.components {
		for _, ct := range componentTypes {
			if _, ok := comps[ct]; !ok {
				continue outer
			}
		}
		result = append(result, id)
	}

	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// EntityCount 返回当前实体数量（不含已删除的）
func (em *EntityManager) EntityCount() int {
	return len(em.components)
}

// typeOf 返回类型参数对应的 reflect.Type
func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// GetComponent 泛型版本的组件获取
//
// 用法：
//
//	slider, ok := ecs.GetComponent[*components.RangeSliderComponent](em, id)
func GetComponent[T any](em *EntityManager, id EntityID) (T, bool) {
	var zero T
	comp, found := em.GetComponent(id, typeOf[T]())
	if !found {
		return zero, false
	}
	typed, ok := comp.(T)
	return typed, ok
}

// HasComponent 泛型版本的组件检查
func HasComponent[T any](em *EntityManager, id EntityID) bool {
	return em.HasComponent(id, typeOf[T]())
}

// GetEntitiesWith1 查询拥有组件 T 的实体
func GetEntitiesWith1[T any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T]())
}

// GetEntitiesWith2 查询同时拥有组件 T1、T2 的实体
func GetEntitiesWith2[T1, T2 any](em *EntityManager) []EntityID {
	return em.GetEntitiesWith(typeOf[T1](), typeOf[T2]())
}

// AddComponent 泛型版本的组件添加
func AddComponent[T any](em *EntityManager, id EntityID, component T) {
	em.AddComponent(id, component)
}
