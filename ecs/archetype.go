package ecs

import (
	"iter"
	"reflect"
	"slices"
)

// Archetype stores every entity that has exactly one combination of component
// types, one column per type.
type Archetype struct {
	id       uint32
	types    []reflect.Type
	storages []componentStorage
}

func newArchetype(id uint32, types []reflect.Type, registry *ComponentRegistry) *Archetype {
	a := &Archetype{
		id:       id,
		types:    types,
		storages: make([]componentStorage, len(types)),
	}
	for idx, typ := range types {
		factory := registry.factory(typ)
		if factory == nil {
			panic("component type " + typ.String() + " not registered")
		}
		a.storages[idx] = factory()
	}
	return a
}

// spawn appends one component per column. Columns are only ever changed
// together, so they all hand out the same slot.
func (a *Archetype) spawn(components []any) uint32 {
	index := -1
	for _, comp := range components {
		column := a.column(componentType(comp))
		index = a.storages[column].Append(comp)
	}
	return uint32(index)
}

func (a *Archetype) column(t reflect.Type) int {
	return slices.Index(a.types, t)
}

func (a *Archetype) component(index uint32, t reflect.Type) any {
	column := a.column(t)
	if column == -1 {
		return nil
	}
	return a.storages[column].Get(int(index))
}

func (a *Archetype) delete(index uint32) {
	for _, s := range a.storages {
		s.Delete(int(index))
	}
}

func (a *Archetype) ID() uint32 {
	return a.id
}

// Types returns the component types in name order.
func (a *Archetype) Types() []reflect.Type {
	return a.types
}

func (a *Archetype) HasComponent(t reflect.Type) bool {
	return a.column(t) != -1
}

// Len returns the number of live entities.
func (a *Archetype) Len() int {
	return a.storages[0].Len()
}

// Iter yields the IDs of all live entities.
func (a *Archetype) Iter() iter.Seq[EntityId] {
	return func(yield func(EntityId) bool) {
		for index := range a.storages[0].Iter() {
			if !yield(NewEntityId(a.id, uint32(index))) {
				return
			}
		}
	}
}
