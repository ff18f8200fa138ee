package ecs_test

import "github.com/plus3/blockfall/ecs"

type Position struct {
	X, Y int
}

type Velocity struct {
	DX, DY int
}

type Label string

type Counter struct {
	Value int
}

func newTestRegistry() *ecs.ComponentRegistry {
	registry := ecs.NewComponentRegistry()
	ecs.RegisterComponent[Position](registry)
	ecs.RegisterComponent[Velocity](registry)
	ecs.RegisterComponent[Label](registry)
	return registry
}
