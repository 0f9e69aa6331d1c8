package pipeline_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/notifykit/pkg/pipeline"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		transforms []func(string) string
		expected   string
	}{
		{
			name:       "no transforms returns input",
			input:      "hello",
			transforms: nil,
			expected:   "hello",
		},
		{
			name:  "single transform",
			input: "  hello  ",
			transforms: []func(string) string{
				strings.TrimSpace,
			},
			expected: "hello",
		},
		{
			name:  "transforms run left to right",
			input: "  Hello World  ",
			transforms: []func(string) string{
				strings.TrimSpace,
				strings.ToUpper,
				func(s string) string { return s + "!" },
			},
			expected: "HELLO WORLD!",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, pipeline.Apply(tt.input, tt.transforms...))
		})
	}
}

func TestCompose(t *testing.T) {
	shout := pipeline.Compose(
		strings.TrimSpace,
		strings.ToUpper,
	)

	assert.Equal(t, "HELLO", shout("  hello  "))
	assert.Equal(t, "SECOND CALL", shout("second call"))
}

func TestApplyNonString(t *testing.T) {
	double := func(n int) int { return n * 2 }
	inc := func(n int) int { return n + 1 }

	assert.Equal(t, 42, pipeline.Apply(20, inc, double))
}
