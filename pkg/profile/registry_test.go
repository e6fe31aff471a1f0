//go:build profiledebug && !profileoff

package profile_test

import (
	"bytes"
	"strings"
	"testing"

	log "github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/maxgio92/cyclemark/pkg/profile"
)

func TestBeginBlockPanicsOnOutOfRangeIndex(t *testing.T) {
	p := profile.New(profile.WithClock(newFakeClock()))

	require.PanicsWithValue(t, "profile: anchor index 0 out of range [1, 4096)", func() {
		p.BeginBlock("root", 0, 0)
	})
	require.PanicsWithValue(t, "profile: anchor index 4096 out of range [1, 4096)", func() {
		p.BeginBlock("overflow", profile.MaxAnchors, 0)
	})
}

func TestBeginBlockReportsIndexReuseOnce(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	clk := newFakeClock()
	p := profile.New(profile.WithClock(clk), profile.WithLogger(logger))

	p.Start()
	for i := 0; i < 2; i++ {
		block := p.BeginBlock("first", 1, 0)
		p.EndBlock(block)
	}
	// Same call site twice is legitimate.
	require.Empty(t, buf.String())

	// Two more call sites claiming the same index.
	block := p.BeginBlock("second", 1, 0)
	p.EndBlock(block)
	block = p.BeginBlock("third", 1, 0)
	p.EndBlock(block)
	p.Stop()

	out := buf.String()
	require.Contains(t, out, "anchor index reused across call sites")
	require.Equal(t, 1, strings.Count(out, "anchor index reused across call sites"))
}
