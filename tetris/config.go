package tetris

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) by Config.Validate.
var ErrInvalidConfig = errors.New("invalid config")

const (
	DefaultScreenSize  = 720
	DefaultBlockSize   = 30
	DefaultFPS         = 30
	DefaultDropDelay   = 90 // frames between gravity steps
	DefaultPreviewCols = 4

	// MaxFPS keeps the frame interval well above zero.
	MaxFPS = 1000
)

// Config holds the fixed dimensions and timing of a game. It is passed by value
// and never mutated after construction.
type Config struct {
	ScreenSize  int
	BlockSize   int
	Rows        int
	Cols        int
	PreviewCols int
	FPS         int
	DropDelay   int
}

// DefaultConfig returns the 720px / 30px layout running at 30 FPS.
func DefaultConfig() Config {
	return NewConfig(DefaultScreenSize, DefaultBlockSize)
}

// NewConfig derives the grid from a square screen side and a block size.
// The preview columns are carved out of the right edge of the window.
func NewConfig(screenSize, blockSize int) Config {
	cfg := Config{
		ScreenSize:  screenSize,
		BlockSize:   blockSize,
		PreviewCols: DefaultPreviewCols,
		FPS:         DefaultFPS,
		DropDelay:   DefaultDropDelay,
	}
	if blockSize > 0 {
		cells := screenSize / blockSize
		cfg.Rows = cells
		cfg.Cols = cells - cfg.PreviewCols
	}
	return cfg
}

// Validate reports the first inconsistency in the configuration.
func (c Config) Validate() error {
	switch {
	case c.BlockSize <= 0:
		return fmt.Errorf("%w: block size %d must be positive", ErrInvalidConfig, c.BlockSize)
	case c.ScreenSize <= 0:
		return fmt.Errorf("%w: screen size %d must be positive", ErrInvalidConfig, c.ScreenSize)
	case c.ScreenSize%c.BlockSize != 0:
		return fmt.Errorf("%w: screen size %d is not a multiple of block size %d", ErrInvalidConfig, c.ScreenSize, c.BlockSize)
	case c.Rows < 4:
		return fmt.Errorf("%w: need at least 4 rows, got %d", ErrInvalidConfig, c.Rows)
	case c.Cols < 4:
		return fmt.Errorf("%w: need at least 4 columns, got %d", ErrInvalidConfig, c.Cols)
	case c.PreviewCols < 0:
		return fmt.Errorf("%w: preview columns %d must not be negative", ErrInvalidConfig, c.PreviewCols)
	case (c.Cols+c.PreviewCols)*c.BlockSize > c.ScreenSize || c.Rows*c.BlockSize > c.ScreenSize:
		return fmt.Errorf("%w: %dx%d grid does not fit a %dpx window", ErrInvalidConfig, c.Cols+c.PreviewCols, c.Rows, c.ScreenSize)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d must be positive", ErrInvalidConfig, c.FPS)
	case c.FPS > MaxFPS:
		return fmt.Errorf("%w: fps %d exceeds %d", ErrInvalidConfig, c.FPS, MaxFPS)
	case c.DropDelay <= 0:
		return fmt.Errorf("%w: drop delay %d must be positive", ErrInvalidConfig, c.DropDelay)
	}
	return nil
}

// SpawnColumn is the board column a freshly spawned piece is centred on.
func (c Config) SpawnColumn() int {
	return c.Cols / 2
}
