package ecs

import (
	"iter"
	"reflect"
	"unsafe"
)

// layout describes a query struct: one pointer field per component type.
// Embedded fields are required; named fields tagged `ecs:"optional"` may be
// nil.
type layout struct {
	types    []reflect.Type
	optional []bool
	offsets  []uintptr
}

func newLayout(structType reflect.Type) *layout {
	if structType.Kind() != reflect.Struct {
		panic("Query type parameter must be a struct")
	}

	l := &layout{}
	for i := range structType.NumField() {
		field := structType.Field(i)
		if field.Type.Kind() != reflect.Pointer {
			panic("Query struct fields must be pointer types")
		}

		optional := false
		if tag := field.Tag.Get("ecs"); tag != "" && !field.Anonymous {
			if tag != "optional" {
				panic("invalid ecs tag value: \"" + tag + "\" (only \"optional\" is supported)")
			}
			optional = true
		}

		l.types = append(l.types, field.Type.Elem())
		l.optional = append(l.optional, optional)
		l.offsets = append(l.offsets, field.Offset)
	}
	return l
}

func (l *layout) matches(a *Archetype) bool {
	for i, t := range l.types {
		if !l.optional[i] && !a.HasComponent(t) {
			return false
		}
	}
	return true
}

// fill points the fields of the struct at dst to the entity's components.
func (l *layout) fill(dst unsafe.Pointer, a *Archetype, index int) bool {
	for i, t := range l.types {
		field := (*unsafe.Pointer)(unsafe.Add(dst, l.offsets[i]))

		var comp any
		if column := a.column(t); column != -1 {
			comp = a.storages[column].Get(index)
		}
		if comp == nil {
			if !l.optional[i] {
				return false
			}
			*field = nil
			continue
		}
		*field = reflect.ValueOf(comp).UnsafePointer()
	}
	return true
}

// Query iterates the entities that carry a set of components. T is a struct
// of component pointers. Results are cached by Execute, which the Scheduler
// calls before the owning system runs.
type Query[T any] struct {
	storage        *Storage
	layout         *layout
	archetypes     []*Archetype
	archetypeCount int

	entities []EntityId
	items    []T
	ready    bool
}

func NewQuery[T any](storage *Storage) *Query[T] {
	q := &Query[T]{}
	q.Init(storage)
	return q
}

// Init binds the query to storage. The Scheduler calls it for every Query
// field of a registered system.
func (q *Query[T]) Init(storage *Storage) {
	q.storage = storage
	q.layout = newLayout(reflect.TypeFor[T]())
	q.archetypes = nil
	q.archetypeCount = -1
	q.ready = false
}

// Execute rebuilds the cached results from the current storage.
func (q *Query[T]) Execute() {
	if n := len(q.storage.ordered); n != q.archetypeCount {
		q.archetypes = q.archetypes[:0]
		for _, a := range q.storage.ordered {
			if q.layout.matches(a) {
				q.archetypes = append(q.archetypes, a)
			}
		}
		q.archetypeCount = n
	}

	q.entities = q.entities[:0]
	q.items = q.items[:0]

	var item T
	for _, a := range q.archetypes {
		for index := range a.storages[0].Iter() {
			if !q.layout.fill(unsafe.Pointer(&item), a, index) {
				continue
			}
			q.entities = append(q.entities, NewEntityId(a.id, uint32(index)))
			q.items = append(q.items, item)
		}
	}
	q.ready = true
}

// Iter yields entity IDs with their component pointers.
// Panics if Execute has never been called.
func (q *Query[T]) Iter() iter.Seq2[EntityId, T] {
	if !q.ready {
		panic("Query.Iter() called before Query.Execute()")
	}
	return func(yield func(EntityId, T) bool) {
		for i := range q.entities {
			if !yield(q.entities[i], q.items[i]) {
				return
			}
		}
	}
}

// Values yields component pointers only.
func (q *Query[T]) Values() iter.Seq[T] {
	if !q.ready {
		panic("Query.Values() called before Query.Execute()")
	}
	return func(yield func(T) bool) {
		for _, item := range q.items {
			if !yield(item) {
				return
			}
		}
	}
}

// First returns the first match, for queries expected to match one entity.
func (q *Query[T]) First() (EntityId, T, bool) {
	if !q.ready {
		panic("Query.First() called before Query.Execute()")
	}
	if len(q.items) == 0 {
		var zero T
		return 0, zero, false
	}
	return q.entities[0], q.items[0], true
}

func (q *Query[T]) Len() int {
	return len(q.items)
}
