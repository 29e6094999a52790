// Package weasel provides a Go implementation of the Weasel genetic algorithm.
//
// Weasel is the classic demonstration, due to Richard Dawkins, of how random
// variation combined with cumulative selection converges on a target far
// faster than blind random search. Starting from a random string, each
// generation produces a batch of per-character mutations of the current best
// candidate and keeps the highest-scoring one, where a candidate's score is
// the number of character positions it shares with the target phrase.
//
// Basic usage:
//
//	config := weasel.DefaultConfig()
//	config.Weasel.Phrase = "METHINKS IT IS LIKE A WEASEL"
//
//	run, err := weasel.NewRun(config)
//	if err != nil {
//		log.Fatalf("Error creating run: %v", err)
//	}
//	run.AddReporter(&weasel.TextReporter{Out: os.Stdout})
//
//	if err := run.Run(); err != nil {
//		log.Fatalf("Error running weasel: %v", err)
//	}
package weasel
