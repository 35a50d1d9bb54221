package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsolutePosition(t *testing.T) {
	tests := []struct {
		name     string
		color    PlayerColor
		relative int
		want     int
	}{
		{"red entry", ColorRed, 0, 0},
		{"green entry", ColorGreen, 0, 13},
		{"yellow entry", ColorYellow, 0, 26},
		{"blue entry", ColorBlue, 0, 39},
		{"green wraps around", ColorGreen, 49, 10},
		{"blue wraps around", ColorBlue, 20, 7},
		{"red end of loop", ColorRed, 51, 51},
		{"home is off the loop", ColorRed, PositionHome, -1},
		{"home stretch is off the loop", ColorGreen, 52, -1},
		{"finished is off the loop", ColorYellow, PositionFinished, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AbsolutePosition(tt.color, tt.relative))
		})
	}
}

func TestIsSafeSquare(t *testing.T) {
	for _, relative := range []int{0, 8, 13, 21, 26, 34, 39, 47} {
		assert.True(t, IsSafeSquare(relative), "square %d should be safe", relative)
	}
	for _, relative := range []int{1, 7, 12, 22, 48, 51, PositionHome, 52, PositionFinished} {
		assert.False(t, IsSafeSquare(relative), "square %d should not be safe", relative)
	}
}
