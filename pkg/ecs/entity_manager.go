// Package ecs 提供按句柄寻址的实体存储
//
// Store 在遍历过程中只标记待删除的实体，遍历结束后再统一清理，
// 保证同一帧内的删除不会导致漏处理或重复处理。
package ecs

// EntityID 是实体的唯一标识符
type EntityID uint64

// Store 管理同一类型的实体集合
// 遍历顺序与创建顺序一致
type Store[T any] struct {
	nextID uint64
	// 按创建顺序排列的实体ID
	ids []EntityID
	// 实体数据: EntityID -> T
	items map[EntityID]T
	// 待删除的实体ID集合（去重）
	entitiesToDestroy map[EntityID]struct{}
}

// NewStore 创建一个新的 Store 实例
func NewStore[T any]() *Store[T] {
	return &Store[T]{
		nextID:            1, // ID从1开始,0保留为无效ID
		ids:               make([]EntityID, 0),
		items:             make(map[EntityID]T),
		entitiesToDestroy: make(map[EntityID]struct{}),
	}
}

// Create 添加实体并返回唯一ID
func (s *Store[T]) Create(item T) EntityID {
	id := EntityID(s.nextID)
	s.nextID++
	s.ids = append(s.ids, id)
	s.items[id] = item
	return id
}

// Get 获取实体数据
// 已标记但尚未清理的实体仍然可以访问
func (s *Store[T]) Get(id EntityID) (T, bool) {
	item, ok := s.items[id]
	return item, ok
}

// DestroyEntity 标记实体待删除(不立即删除)
// 返回 false 表示实体不存在或已被标记，重复标记不会产生副作用
func (s *Store[T]) DestroyEntity(id EntityID) bool {
	if _, exists := s.items[id]; !exists {
		return false
	}
	if _, marked := s.entitiesToDestroy[id]; marked {
		return false
	}
	s.entitiesToDestroy[id] = struct{}{}
	return true
}

// IsMarked 检查实体是否已被标记删除
func (s *Store[T]) IsMarked(id EntityID) bool {
	_, marked := s.entitiesToDestroy[id]
	return marked
}

// Each 按创建顺序遍历所有实体（包括已标记但尚未清理的实体）
// 回调中创建的实体不会在本次遍历中被访问
func (s *Store[T]) Each(fn func(id EntityID, item T)) {
	for _, id := range s.ids {
		item, ok := s.items[id]
		if !ok {
			continue
		}
		fn(id, item)
	}
}

// RemoveMarkedEntities 清理所有标记删除的实体
// 返回本次清理的实体数量
func (s *Store[T]) RemoveMarkedEntities() int {
	if len(s.entitiesToDestroy) == 0 {
		return 0
	}

	removed := 0
	kept := s.ids[:0]
	for _, id := range s.ids {
		if _, marked := s.entitiesToDestroy[id]; marked {
			delete(s.items, id)
			removed++
			continue
		}
		kept = append(kept, id)
	}
	s.ids = kept
	clear(s.entitiesToDestroy)
	return removed
}

// Items 按创建顺序返回所有实体数据
func (s *Store[T]) Items() []T {
	result := make([]T, 0, len(s.ids))
	for _, id := range s.ids {
		result = append(result, s.items[id])
	}
	return result
}

// Len 返回实体数量（包括已标记但尚未清理的实体）
func (s *Store[T]) Len() int {
	return len(s.ids)
}

// Clear 立即删除所有实体
// ID 计数不会重置，旧句柄不会被复用
func (s *Store[T]) Clear() {
	s.ids = s.ids[:0]
	clear(s.items)
	clear(s.entitiesToDestroy)
}
