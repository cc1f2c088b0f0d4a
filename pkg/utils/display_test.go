package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayWidth(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected int
	}{
		{"empty string", "", 0},
		{"ascii string", "East", 4},
		{"accented", "Göteborg", 8},
		{"cjk", "東京", 4},
		{"mixed", "Tag東", 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DisplayWidth(tt.input))
		})
	}
}

func TestToWidth(t *testing.T) {
	tests := []struct {
		name     string
		val      string
		width    int
		expected string
	}{
		{"zero width", "dim1", 0, "dim1"},
		{"negative width", "dim1", -1, "dim1"},
		{"exact width", "dim1", 4, "dim1"},
		{"longer than width", "Region", 4, "Region"},
		{"pads ascii", "ab", 4, "ab  "},
		{"pads wide", "東", 4, "東  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToWidth(tt.val, tt.width))
		})
	}
}

func TestMax(t *testing.T) {
	assert.Equal(t, 0, Max())
	assert.Equal(t, 7, Max(3, 7, 1))
	assert.Equal(t, -1, Max(-3, -1))
}
