package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntToStringFixedWidth(t *testing.T) {
	tests := []struct {
		name     string
		num      int
		width    int
		expected string
	}{
		{"single digit with width 3", 5, 3, "  5"},
		{"two digits with width 3", 42, 3, " 42"},
		{"exact width", 123, 3, "123"},
		{"number exceeds width", 1234, 3, "1234"},
		{"zero", 0, 2, " 0"},
		{"zero width", 7, 0, "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IntToStringFixedWidth(tt.num, tt.width))
		})
	}
}
