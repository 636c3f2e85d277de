// Package memdb 提供内存数据集合，替代真实数据库作为存储层
package memdb

import (
	"sync"
)

// Collection 按自增 uint64 主键存储记录，保留插入顺序
type Collection[T any] struct {
	mu     sync.RWMutex
	items  map[uint64]T
	order  []uint64
	nextID uint64
}

func NewCollection[T any]() *Collection[T] {
	return &Collection[T]{
		items:  make(map[uint64]T),
		nextID: 1,
	}
}

// Insert 分配下一个主键并存储 mk 构造的记录
func (c *Collection[T]) Insert(mk func(id uint64) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++

	v := mk(id)
	c.items[id] = v
	c.order = append(c.order, id)
	return v
}

func (c *Collection[T]) Get(id uint64) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	v, ok := c.items[id]
	return v, ok
}

// Replace 覆盖已存在的记录，id 未知时返回 false
func (c *Collection[T]) Replace(id uint64, v T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return false
	}
	c.items[id] = v
	return true
}

// Find 按插入顺序返回第一条满足条件的记录
func (c *Collection[T]) Find(pred func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.order {
		if v := c.items[id]; pred(v) {
			return v, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.items)
}

// Table 按任意可比较复合键存储记录
type Table[K comparable, V any] struct {
	mu    sync.RWMutex
	items map[K]V
}

func NewTable[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{items: make(map[K]V)}
}

func (t *Table[K, V]) Get(k K) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	v, ok := t.items[k]
	return v, ok
}

func (t *Table[K, V]) Put(k K, v V) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items[k] = v
}

func (t *Table[K, V]) Keys() []K {
	t.mu.RLock()
	defer t.mu.RUnlock()

	keys := make([]K, 0, len(t.items))
	for k := range t.items {
		keys = append(keys, k)
	}
	return keys
}

func (t *Table[K, V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.items)
}
