package ecs

import "iter"

// componentStorage is a type-erased column of one component type. Slots keep
// their index for the lifetime of the entity.
type componentStorage interface {
	Append(item any) int
	Delete(index int)
	Get(index int) any
	Iter() iter.Seq[int]
	Len() int
}

const blockSize = 64

// blockStorage keeps components in fixed-size blocks so pointers handed out by
// Get stay valid while the column grows.
type blockStorage[T any] struct {
	blocks []*[blockSize]T
	live   []*[blockSize]bool
	free   []int
	next   int
	count  int
}

func (s *blockStorage[T]) Append(item any) int {
	var value T
	switch v := item.(type) {
	case T:
		value = v
	case *T:
		value = *v
	default:
		panic("ecs: component of wrong type appended to storage")
	}

	var index int
	if n := len(s.free); n > 0 {
		index = s.free[n-1]
		s.free = s.free[:n-1]
	} else {
		index = s.next
		s.next++
		if index/blockSize >= len(s.blocks) {
			s.blocks = append(s.blocks, new([blockSize]T))
			s.live = append(s.live, new([blockSize]bool))
		}
	}

	s.blocks[index/blockSize][index%blockSize] = value
	s.live[index/blockSize][index%blockSize] = true
	s.count++
	return index
}

func (s *blockStorage[T]) has(index int) bool {
	return index >= 0 && index < s.next && s.live[index/blockSize][index%blockSize]
}

// Get returns a *T for a live slot, or nil.
func (s *blockStorage[T]) Get(index int) any {
	if !s.has(index) {
		return nil
	}
	return &s.blocks[index/blockSize][index%blockSize]
}

func (s *blockStorage[T]) Delete(index int) {
	if !s.has(index) {
		return
	}
	var zero T
	s.blocks[index/blockSize][index%blockSize] = zero
	s.live[index/blockSize][index%blockSize] = false
	s.free = append(s.free, index)
	s.count--
}

func (s *blockStorage[T]) Iter() iter.Seq[int] {
	return func(yield func(int) bool) {
		for i := range s.next {
			if s.live[i/blockSize][i%blockSize] && !yield(i) {
				return
			}
		}
	}
}

func (s *blockStorage[T]) Len() int {
	return s.count
}
