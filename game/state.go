package game

//go:generate go tool stringer -type=State -trimprefix=State
//go:generate go tool stringer -type=Command

// State is the phase of the game loop.
type State uint8

const (
	// StateFalling: the active piece moves under gravity and input.
	StateFalling State = iota
	// StateLocking: the piece can no longer move down and is being committed
	// to the board. A frame never ends in this state.
	StateLocking
	StatePaused
	// StateGameOver: a piece topped out or the spawn position was blocked.
	StateGameOver
)

// Command is a logical player input. Mapping raw keys to commands is the
// host's job.
type Command uint8

const (
	MoveLeft Command = iota
	MoveRight
	HardDrop
	Rotate
	Pause
)
