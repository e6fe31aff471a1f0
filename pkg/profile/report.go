package profile

import (
	"fmt"
	"io"
)

const (
	megabyte = 1024.0 * 1024.0
	gigabyte = megabyte * 1024.0
)

// WriteReport writes the timing summary to w: one header line with the
// whole-run total, one line per populated anchor, and the share of the
// run the anchors account for. Percentages of an unfinished run, with no
// Stop call before it, come out as zero rather than a division error.
func (p *Profiler) WriteReport(w io.Writer) error {
	if err := p.writeTotal(w); err != nil {
		return err
	}

	var coverage float64
	for i := range p.anchors {
		anchor := &p.anchors[i]
		if anchor.Label == "" {
			continue
		}

		exclusive := percent(anchor.ElapsedExclusive, p.cpuElapsed)
		coverage += exclusive

		if err := p.writeAnchor(w, anchor, exclusive); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Coverage by anchors: %0.2f%%\n", coverage)

	return err
}

// PrintReport writes the report to the configured writer, logging a
// write failure instead of returning it.
func (p *Profiler) PrintReport() {
	if err := p.WriteReport(p.out); err != nil {
		p.logger.Err(err).Msg("failed to write profile report")
	}
}

func (p *Profiler) writeTotal(w io.Writer) error {
	if p.estFreq > 0 {
		ms := 1000 * float64(p.cpuElapsed) / float64(p.estFreq)
		_, err := fmt.Fprintf(w, "Total time: %0.4fms (CPU freq %d, %d cycles)\n", ms, p.estFreq, p.cpuElapsed)

		return err
	}

	_, err := fmt.Fprintf(w, "Total time: %d cycles\n", p.cpuElapsed)

	return err
}

// writeAnchor writes one anchor line. The w/children share appears only
// when inclusive and exclusive cycles differ, the throughput tail only
// when bytes were attributed to the anchor.
func (p *Profiler) writeAnchor(w io.Writer, anchor *Anchor, exclusive float64) error {
	if _, err := fmt.Fprintf(w, "  %s[%d]: %d (%0.2f%%", anchor.Label, anchor.HitCount, anchor.ElapsedExclusive, exclusive); err != nil {
		return err
	}

	if anchor.ElapsedInclusive != anchor.ElapsedExclusive {
		if _, err := fmt.Fprintf(w, ", %0.2f%% w/children", percent(anchor.ElapsedInclusive, p.cpuElapsed)); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprint(w, ")"); err != nil {
		return err
	}

	if anchor.ProcessedByteCount > 0 {
		seconds := float64(anchor.ElapsedInclusive) / float64(p.estFreq)
		gbPerSecond := float64(anchor.ProcessedByteCount) / gigabyte / seconds

		if _, err := fmt.Fprintf(w, "  %0.3fmb at %0.2fgb/s", float64(anchor.ProcessedByteCount)/megabyte, gbPerSecond); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(w)

	return err
}

func percent(part, total uint64) float64 {
	if total == 0 {
		return 0
	}

	return 100 * float64(part) / float64(total)
}
