package output

import (
	"context"
	"fmt"
	"time"
)

// StatusBar invokes printF at every refresh interval until the context is
// done, so callers can keep one terminal line updated while work runs.
func StatusBar(ctx context.Context, refreshRate time.Duration, printF func()) {
	ticker := time.NewTicker(refreshRate)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			printF()
		case <-ctx.Done():
			return
		}
	}
}

// PrettyBenchStatus renders the live progress of a bench run.
func PrettyBenchStatus(percent float64, roundsPerSec uint64) string {
	return fmt.Sprintf("\r%-60s %-20s",
		fmt.Sprintf("Rounds completed: [%s] %6.2f%%", ProgressBar(int(percent), 40), percent),
		fmt.Sprintf("Rounds/s: %5d", roundsPerSec),
	)
}
