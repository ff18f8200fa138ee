package ecs

import (
	"reflect"
	"unsafe"
)

// Singleton gives access to a component that belongs to no entity, such as
// global game state.
type Singleton[T any] struct {
	storage *Storage
	ptr     unsafe.Pointer
}

// NewSingleton returns an accessor for T in storage, creating the singleton
// from initializer (or the zero value) if it does not exist yet.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	if storage.singleton(reflect.TypeFor[T]()) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(&value)
	}

	s := &Singleton[T]{}
	s.Init(storage)
	return s
}

// Init binds the accessor to storage. The Scheduler calls it for every
// Singleton field of a registered system.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.ptr = storage.singleton(reflect.TypeFor[T]())
}

// Get returns the singleton, or nil if it was never added.
func (s *Singleton[T]) Get() *T {
	if s.ptr == nil && s.storage != nil {
		s.ptr = s.storage.singleton(reflect.TypeFor[T]())
	}
	return (*T)(s.ptr)
}

func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}
