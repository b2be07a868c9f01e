package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHumanizeBytes(t *testing.T) {
	tests := []struct {
		input    int64
		expected string
	}{
		{0, "0B"},
		{1023, "1023B"},
		{1024, "1.0KiB"},
		{1536, "1.5KiB"},
		{1024 * 1024 * 5 / 2, "2.5MiB"},
		{4 << 30, "4.0GiB"},
		{1 << 40, "1.0TiB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, HumanizeBytes(tt.input), "HumanizeBytes(%d)", tt.input)
	}
}
