package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseMode(t *testing.T) {
	tests := []struct {
		input    string
		expected Mode
	}{
		{"video", ModeVideo},
		{"text", ModeText},
		{"", ModeText},
		{"VIDEO", ModeText}, // case-sensitive, anything unknown falls back to text
		{"audio", ModeText},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ParseMode(tt.input))
		})
	}
}

func TestNormalizeInterests(t *testing.T) {
	set := NormalizeInterests([]string{" Go ", "GO", "chess", "", "  ", "Rust"})

	assert.Len(t, set, 3)
	for _, tag := range []string{"go", "chess", "rust"} {
		_, ok := set[tag]
		assert.True(t, ok, "missing tag %q", tag)
	}
}

func TestNormalizeInterestsEmpty(t *testing.T) {
	assert.Empty(t, NormalizeInterests(nil))
	assert.Empty(t, NormalizeInterests([]string{"", "   "}))
}

func TestHasCommonInterest(t *testing.T) {
	a := NormalizeInterests([]string{"go", "chess"})
	b := NormalizeInterests([]string{"chess", "hiking"})
	c := NormalizeInterests([]string{"rust"})

	assert.True(t, HasCommonInterest(a, b))
	assert.True(t, HasCommonInterest(b, a))
	assert.False(t, HasCommonInterest(a, c))
	assert.False(t, HasCommonInterest(a, nil))
	assert.False(t, HasCommonInterest(nil, nil))
}
