package tetris_test

import (
	"testing"

	"github.com/plus3/blockfall/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := tetris.DefaultConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 720, cfg.ScreenSize)
	assert.Equal(t, 30, cfg.BlockSize)
	assert.Equal(t, 24, cfg.Rows)
	assert.Equal(t, 20, cfg.Cols)
	assert.Equal(t, 4, cfg.PreviewCols)
	assert.Equal(t, 30, cfg.FPS)
	assert.Equal(t, 90, cfg.DropDelay)
	assert.Equal(t, 10, cfg.SpawnColumn())
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*tetris.Config)
	}{
		{"zero block size", func(c *tetris.Config) { c.BlockSize = 0 }},
		{"negative screen", func(c *tetris.Config) { c.ScreenSize = -30 }},
		{"screen not a multiple of block", func(c *tetris.Config) { c.ScreenSize = 725 }},
		{"too few rows", func(c *tetris.Config) { c.Rows = 2 }},
		{"too few columns", func(c *tetris.Config) { c.Cols = 3 }},
		{"negative preview", func(c *tetris.Config) { c.PreviewCols = -1 }},
		{"grid wider than window", func(c *tetris.Config) { c.Cols = 22 }},
		{"zero fps", func(c *tetris.Config) { c.FPS = 0 }},
		{"fps beyond max", func(c *tetris.Config) { c.FPS = tetris.MaxFPS + 1 }},
		{"fps with zero frame interval", func(c *tetris.Config) { c.FPS = 2_000_000_000 }},
		{"zero drop delay", func(c *tetris.Config) { c.DropDelay = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := tetris.DefaultConfig()
			tt.modify(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tetris.ErrInvalidConfig)
		})
	}
}

func TestConfigValidateMaxFPS(t *testing.T) {
	cfg := tetris.DefaultConfig()
	cfg.FPS = tetris.MaxFPS
	assert.NoError(t, cfg.Validate())
}

func TestNewConfigZeroBlock(t *testing.T) {
	cfg := tetris.NewConfig(720, 0)
	assert.ErrorIs(t, cfg.Validate(), tetris.ErrInvalidConfig)
}
