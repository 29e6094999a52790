package weasel

import (
	"fmt"
	"io"
)

// Reporter receives the progress of a run. Reporting is a line-at-a-time
// side effect of the loop, not buffered: output already emitted stays put
// even if a later generation fails.
type Reporter interface {
	// Start is called once with the initial random candidate.
	Start(best Candidate)
	// Generation is called after each generation with the generation
	// number (starting at 0), the new current best, and the batch stats.
	Generation(gen int, best Candidate, stats BatchStats)
	// Complete is called once when the run converges. generations is the
	// number of generations evaluated.
	Complete(generations int, best Candidate)
}

// TextReporter emits the plain per-generation lines:
//
//	Start: pqeIJu
//	Gen 0: pqeIJu
//	Gen 1: peeIJu
//
// The last Gen line's string equals the target phrase.
type TextReporter struct {
	Out io.Writer
}

func (r *TextReporter) Start(best Candidate) {
	fmt.Fprintf(r.Out, "Start: %s\n", best.Text)
}

func (r *TextReporter) Generation(gen int, best Candidate, _ BatchStats) {
	fmt.Fprintf(r.Out, "Gen %d: %s\n", gen, best.Text)
}

func (r *TextReporter) Complete(int, Candidate) {}

// StatsReporter emits per-generation batch statistics, typically to stderr
// alongside a TextReporter on stdout.
type StatsReporter struct {
	Out io.Writer
}

func (r *StatsReporter) Start(best Candidate) {
	fmt.Fprintf(r.Out, "start   | score %d | %s\n", best.Score, best.Text)
}

func (r *StatsReporter) Generation(gen int, best Candidate, stats BatchStats) {
	fmt.Fprintf(r.Out, "gen %4d | best %d | batch mean %.2f stdev %.2f min %.0f max %.0f\n",
		gen, best.Score, stats.Mean, stats.Stdev, stats.Min, stats.Max)
}

func (r *StatsReporter) Complete(generations int, best Candidate) {
	fmt.Fprintf(r.Out, "converged after %d generations on %q\n", generations, best.Text)
}
