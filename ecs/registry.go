package ecs

import "reflect"

// ComponentRegistry knows how to build storage for each component type. Every
// type attached to an entity must be registered; singletons need not be.
type ComponentRegistry struct {
	factories map[reflect.Type]func() componentStorage
}

func NewComponentRegistry() *ComponentRegistry {
	return &ComponentRegistry{
		factories: make(map[reflect.Type]func() componentStorage),
	}
}

// RegisterComponent registers T with r. Registering twice is harmless.
func RegisterComponent[T any](r *ComponentRegistry) {
	r.factories[reflect.TypeFor[T]()] = func() componentStorage {
		return &blockStorage[T]{}
	}
}

func (r *ComponentRegistry) factory(t reflect.Type) func() componentStorage {
	return r.factories[t]
}
