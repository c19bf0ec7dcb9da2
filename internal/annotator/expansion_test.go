package annotator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContextWindow(t *testing.T) {
	long := strings.Repeat("a", 100) + " dirty " + strings.Repeat("b", 100)

	tests := []struct {
		name     string
		text     string
		offset   int
		length   int
		expected string
	}{
		{"whole text", "I feel dirty", 7, 5, "I feel dirty"},
		{"middle sentence", "Hello. I feel dirty! Bye.", 14, 5, "I feel dirty!"},
		{"newline boundary", "first line\nloop here\nlast", 11, 4, "loop here"},
		{"match at start", "dirty. clean", 0, 5, "dirty."},
		{"long sentence window", long, 101, 5, strings.Repeat("a", 59) + " dirty " + strings.Repeat("b", 59)},
		{"offset out of range", "short", 10, 1, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, contextWindow([]rune(tt.text), tt.offset, tt.length))
		})
	}
}

func TestIsSentenceEnd(t *testing.T) {
	for _, r := range []rune{'.', '!', '?', '\n'} {
		assert.True(t, isSentenceEnd(r))
	}
	assert.False(t, isSentenceEnd(','))
}
