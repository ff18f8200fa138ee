package ecs

import (
	"hash/fnv"
	"reflect"
	"sort"
	"unsafe"

	"github.com/kamstrup/intmap"
)

// Storage holds entities grouped by archetype, plus singleton components that
// belong to no entity.
type Storage struct {
	registry   *ComponentRegistry
	archetypes *intmap.Map[uint32, *Archetype]
	ordered    []*Archetype
	singletons map[reflect.Type]unsafe.Pointer
}

func NewStorage(registry *ComponentRegistry) *Storage {
	return &Storage{
		registry:   registry,
		archetypes: intmap.New[uint32, *Archetype](16),
		singletons: make(map[reflect.Type]unsafe.Pointer),
	}
}

func (s *Storage) Registry() *ComponentRegistry {
	return s.registry
}

// Spawn creates an entity with the given components. Components may be passed
// by value or by pointer; they are copied either way.
func (s *Storage) Spawn(components ...any) EntityId {
	if len(components) == 0 {
		panic("cannot spawn entity without components")
	}

	types := make([]reflect.Type, len(components))
	for i, comp := range components {
		types[i] = componentType(comp)
	}
	sort.Slice(types, func(i, j int) bool { return types[i].String() < types[j].String() })

	archetype := s.archetype(types)
	return NewEntityId(archetype.id, archetype.spawn(components))
}

func (s *Storage) archetype(types []reflect.Type) *Archetype {
	id := hashTypes(types)
	if archetype, ok := s.archetypes.Get(id); ok {
		return archetype
	}
	archetype := newArchetype(id, types, s.registry)
	s.archetypes.Put(id, archetype)
	s.ordered = append(s.ordered, archetype)
	return archetype
}

// Delete removes an entity. Unknown IDs are ignored.
func (s *Storage) Delete(id EntityId) {
	if archetype, ok := s.archetypes.Get(id.ArchetypeId()); ok {
		archetype.delete(id.Index())
	}
}

// GetComponent returns a pointer to the entity's component of type t, or nil.
func (s *Storage) GetComponent(id EntityId, t reflect.Type) any {
	archetype, ok := s.archetypes.Get(id.ArchetypeId())
	if !ok {
		return nil
	}
	return archetype.component(id.Index(), t)
}

// Archetypes returns every archetype in creation order.
func (s *Storage) Archetypes() []*Archetype {
	return s.ordered
}

// EntityCount returns the number of live entities.
func (s *Storage) EntityCount() int {
	n := 0
	for _, a := range s.ordered {
		n += a.Len()
	}
	return n
}

// AddSingleton stores value as the singleton of its type, overwriting an
// existing one in place so outstanding pointers stay valid.
func (s *Storage) AddSingleton(value any) {
	v := reflect.ValueOf(value)
	if v.Kind() == reflect.Pointer {
		v = v.Elem()
	}

	if ptr, ok := s.singletons[v.Type()]; ok {
		reflect.NewAt(v.Type(), ptr).Elem().Set(v)
		return
	}
	p := reflect.New(v.Type())
	p.Elem().Set(v)
	s.singletons[v.Type()] = p.UnsafePointer()
}

func (s *Storage) singleton(t reflect.Type) unsafe.Pointer {
	return s.singletons[t]
}

// ReadComponent returns the entity's T component, or nil if it has none.
func ReadComponent[T any](s *Storage, id EntityId) *T {
	comp := s.GetComponent(id, reflect.TypeFor[T]())
	if comp == nil {
		return nil
	}
	return comp.(*T)
}

func componentType(comp any) reflect.Type {
	t := reflect.TypeOf(comp)
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func:
		panic("components cannot be pointers, maps, channels, or functions")
	}
	return t
}

// hashTypes derives an archetype ID from name-sorted component types.
func hashTypes(types []reflect.Type) uint32 {
	h := fnv.New32a()
	for _, t := range types {
		h.Write([]byte(t.PkgPath()))
		h.Write([]byte{0})
		h.Write([]byte(t.String()))
		h.Write([]byte{0})
	}
	return h.Sum32()
}
