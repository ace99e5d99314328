package llm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoughEstimateTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected int
	}{
		{"", 1},
		{"Go", 1},
		{"Hey", 1},
		{"Hello GPT", 3},
		{"transformers for protein folding", 10},
		{"héllo", 1},
		{strings.Repeat("é", 9), 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, RoughEstimateTokens(tt.input))
		})
	}
}

func TestCheckTokenLimit(t *testing.T) {
	assert.NoError(t, CheckTokenLimit("short question", 100))
	assert.NoError(t, CheckTokenLimit(strings.Repeat("a", 3000), 0))

	err := CheckTokenLimit(strings.Repeat("a", 30), 5)
	assert.EqualError(t, err, "message is too long: estimated 10 tokens, limit is 5")
}
