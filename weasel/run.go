package weasel

import (
	"math/rand"

	"github.com/sourcegraph/conc/pool"
)

// Run holds the state of one Weasel run: the current best candidate and the
// generation counter. A run moves through three states: initialized (best is
// the random starting candidate), evaluating (RunGeneration advances it one
// generation at a time), and converged (best equals the phrase; terminal).
type Run struct {
	Config *Config

	// Generation is the number of the next generation to evaluate,
	// starting at 0.
	Generation int
	// Best is the best candidate found so far. Its score never decreases
	// across generations: a generation only adopts a strictly better
	// mutation.
	Best Candidate
	// Converged reports whether Best.Text equals the phrase. Once true,
	// RunGeneration is a no-op.
	Converged bool

	charSet   CharSet
	rng       *rand.Rand
	reporters []Reporter
}

// NewRun validates the config and creates a run with a random initial
// candidate of the phrase's length. If the starting candidate happens to
// equal the phrase already, the run is converged from the outset.
func NewRun(config *Config) (*Run, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	seed := config.Runtime.Seed
	if seed == 0 {
		seed = rand.Int63()
	}
	rng := rand.New(rand.NewSource(seed))

	charSet := NewCharSet(config.Weasel.CharSet)
	phraseLen := len([]rune(config.Weasel.Phrase))

	text, err := RandomString(phraseLen, charSet, rng)
	if err != nil {
		return nil, err
	}
	best := NewCandidate(text, config.Weasel.Phrase)

	return &Run{
		Config:    config,
		Best:      best,
		Converged: best.Text == config.Weasel.Phrase,
		charSet:   charSet,
		rng:       rng,
	}, nil
}

// AddReporter attaches a reporter to the run. Reporters are notified in the
// order they were added.
func (r *Run) AddReporter(rep Reporter) {
	r.reporters = append(r.reporters, rep)
}

// Run drives the full loop: it announces the starting candidate, evaluates
// generations until the best candidate equals the phrase, then announces
// completion. There is no upper bound on the generation count; a char set
// that cannot express the phrase never converges.
func (r *Run) Run() error {
	for _, rep := range r.reporters {
		rep.Start(r.Best)
	}

	for !r.Converged {
		if _, err := r.RunGeneration(); err != nil {
			return err
		}
	}

	for _, rep := range r.reporters {
		rep.Complete(r.Generation, r.Best)
	}
	return nil
}

// RunGeneration evaluates one generation: it produces Iterations trial
// mutations of the current best, adopts the first trial whose score strictly
// exceeds the working best (equal scores never replace it), and reports the
// result. Returns whether the run has converged.
func (r *Run) RunGeneration() (bool, error) {
	if r.Converged {
		return true, nil
	}

	var (
		best  Candidate
		stats BatchStats
		err   error
	)
	if r.Config.Runtime.Workers > 1 {
		best, stats, err = r.evaluateBatchParallel()
	} else {
		best, stats, err = r.evaluateBatch()
	}
	if err != nil {
		return false, err
	}

	r.Best = best
	for _, rep := range r.reporters {
		rep.Generation(r.Generation, r.Best, stats)
	}
	r.Generation++

	if r.Best.Text == r.Config.Weasel.Phrase {
		r.Converged = true
	}
	return r.Converged, nil
}

// evaluateBatch runs the generation's trials serially.
func (r *Run) evaluateBatch() (Candidate, BatchStats, error) {
	base := r.Best.Text
	best := r.Best
	scores := make([]float64, 0, r.Config.Weasel.Iterations)

	for i := 0; i < r.Config.Weasel.Iterations; i++ {
		text, err := MutateString(r.Config.Weasel.MutationRate, base, r.charSet, r.rng)
		if err != nil {
			return Candidate{}, BatchStats{}, err
		}

		trial := NewCandidate(text, r.Config.Weasel.Phrase)
		scores = append(scores, float64(trial.Score))

		if trial.Score > best.Score {
			best = trial
		}
	}

	return best, newBatchStats(scores), nil
}

// evaluateBatchParallel fans the generation's trials out over a bounded
// goroutine pool. Each trial gets its own random source, seeded from the run
// source in trial order, and the reduction walks the results in trial order;
// under a fixed seed this produces the same winner as the serial path,
// including the first-discovered-best tie-break.
func (r *Run) evaluateBatchParallel() (Candidate, BatchStats, error) {
	iterations := r.Config.Weasel.Iterations
	base := r.Best.Text

	seeds := make([]int64, iterations)
	for i := range seeds {
		seeds[i] = r.rng.Int63()
	}

	trials := make([]Candidate, iterations)
	p := pool.New().WithErrors().WithMaxGoroutines(r.Config.Runtime.Workers)
	for i := 0; i < iterations; i++ {
		i := i
		p.Go(func() error {
			trialRng := rand.New(rand.NewSource(seeds[i]))
			text, err := MutateString(r.Config.Weasel.MutationRate, base, r.charSet, trialRng)
			if err != nil {
				return err
			}
			trials[i] = NewCandidate(text, r.Config.Weasel.Phrase)
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return Candidate{}, BatchStats{}, err
	}

	best := r.Best
	scores := make([]float64, iterations)
	for i, trial := range trials {
		scores[i] = float64(trial.Score)
		if trial.Score > best.Score {
			best = trial
		}
	}

	return best, newBatchStats(scores), nil
}
