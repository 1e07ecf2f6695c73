package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		w, h, m int
		wantErr error
	}{
		{"single cell without mines", 1, 1, 0, nil},
		{"easy preset", 8, 8, 10, nil},
		{"one safe cell left", 3, 3, 8, nil},
		{"zero width", 0, 5, 0, ErrInvalidDimensions},
		{"negative height", 5, -1, 0, ErrInvalidDimensions},
		{"negative mines", 5, 5, -1, ErrInvalidMineCount},
		{"mines fill board", 3, 3, 9, ErrInvalidMineCount},
		{"mines exceed board", 2, 2, 7, ErrInvalidMineCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(tt.w, tt.h, tt.m)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr))
			assert.Equal(t, tt.w, cfgErr.Width)
			assert.Equal(t, tt.h, cfgErr.Height)
			assert.Equal(t, tt.m, cfgErr.Mines)
		})
	}
}

func TestConfigError_Message(t *testing.T) {
	err := &ConfigError{Width: 2, Height: 3, Mines: 6, Err: ErrInvalidMineCount}
	assert.Equal(t, "board 2x3 with 6 mines: mine count must be non-negative and below the number of cells", err.Error())
}
