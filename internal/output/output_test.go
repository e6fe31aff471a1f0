package output_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/maxgio92/cyclemark/internal/output"
)

func TestProgressBar(t *testing.T) {
	tests := []struct {
		name    string
		percent int
		width   int
		filled  int
	}{
		{name: "empty", percent: 0, width: 10, filled: 0},
		{name: "half", percent: 50, width: 10, filled: 5},
		{name: "full", percent: 100, width: 10, filled: 10},
		{name: "clamped above", percent: 250, width: 10, filled: 10},
		{name: "clamped below", percent: -5, width: 10, filled: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := output.ProgressBar(tt.percent, tt.width)
			require.Equal(t, tt.filled, strings.Count(bar, "█"))
			require.Len(t, []rune(bar), tt.width)
		})
	}
}

func TestPrettyBenchStatus(t *testing.T) {
	status := output.PrettyBenchStatus(42.0, 128)
	require.Contains(t, status, "42.00%")
	require.Contains(t, status, "Rounds/s:   128")
}
