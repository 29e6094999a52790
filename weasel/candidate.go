package weasel

// Candidate is one full-length guess paired with its fitness score: the
// number of character positions it shares with the target phrase. Candidates
// are plain values; a better candidate replaces the old one wholesale.
type Candidate struct {
	Text  string
	Score int
}

// NewCandidate scores text against phrase and returns the resulting candidate.
func NewCandidate(text, phrase string) Candidate {
	return Candidate{
		Text:  text,
		Score: EqualChars(text, phrase),
	}
}
