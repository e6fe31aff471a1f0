//go:build profiledebug

package profile

import (
	"fmt"
	"runtime"

	"github.com/maxgio92/cyclemark/internal/utils"
)

// registry remembers which call site first used each anchor index, so
// that accidental index sharing between call sites shows up instead of
// silently intermixing statistics.
type registry struct {
	sites    [MaxAnchors]uint64
	reported [MaxAnchors]bool
}

// checkBlock validates the anchor index and flags reuse of one index
// from distinct call sites, once per index. Compiled in only with the
// profiledebug tag.
func (p *Profiler) checkBlock(label string, index int) {
	if index <= rootAnchor || index >= MaxAnchors {
		panic(fmt.Sprintf("profile: anchor index %d out of range [1, %d)", index, MaxAnchors))
	}

	_, file, line, ok := runtime.Caller(2)
	if !ok {
		return
	}
	site := utils.Hash(fmt.Sprintf("%s:%d", file, line))

	switch p.registry.sites[index] {
	case 0:
		p.registry.sites[index] = site
	case site:
	default:
		if !p.registry.reported[index] {
			p.registry.reported[index] = true
			p.logger.Error().
				Str("label", label).
				Int("index", index).
				Str("call_site", fmt.Sprintf("%s:%d", file, line)).
				Msg("anchor index reused across call sites")
		}
	}
}
