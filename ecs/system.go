package ecs

// System is one step of the frame pipeline. Implementations are usually
// pointers to structs whose Query and Singleton fields are bound by
// Scheduler.Register; other fields persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}

// UpdateFrame is handed to every system during a single scheduler tick.
type UpdateFrame struct {
	Index    uint64
	Commands *Commands
	Storage  *Storage
}
