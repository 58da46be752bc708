package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"", nil},
		{"   ", nil},
		{"go", []string{"go"}},
		{"go, tui ,cli", []string{"go", "tui", "cli"}},
		{",,go,,", []string{"go"}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseTags(tt.in))
		})
	}
}

func TestFormatTags(t *testing.T) {
	assert.Equal(t, "No tags", formatTags(nil))
	assert.Empty(t, formatTags([]string{}))
	assert.Equal(t, "a, b", formatTags([]string{"a", "b"}))
}

func TestFormatViews(t *testing.T) {
	assert.Equal(t, "0 views", formatViews(0))
	assert.Equal(t, "12345 views", formatViews(12345))
}

func TestClampLines(t *testing.T) {
	s := "0\n1\n2\n3\n4"

	assert.Equal(t, s, clampLines(s, 10, 0))
	assert.Equal(t, "0\n1", clampLines(s, 2, 0))
	assert.Equal(t, "2\n3", clampLines(s, 2, 3))
	assert.Equal(t, "3\n4", clampLines(s, 2, 99))
	assert.Empty(t, clampLines(s, 0, 0))
}
