package domain

// Mode is the quiz direction of a review session
type Mode int

const (
	// ModeNone means no review session has been started yet
	ModeNone Mode = iota
	// ModeEnToCn shows the word and expects its translation
	ModeEnToCn
	// ModeCnToEn shows the translation and expects the word
	ModeCnToEn
	// ModeSentence shows a generated example sentence with the word
	// wrapped in ** and expects its translation
	ModeSentence
)

// String returns a human-readable mode name
func (m Mode) String() string {
	switch m {
	case ModeEnToCn:
		return "word→translation"
	case ModeCnToEn:
		return "translation→word"
	case ModeSentence:
		return "sentence→translation"
	default:
		return "none"
	}
}

// Verdict is the grading outcome for a single answer
type Verdict struct {
	Position int
	Correct  bool
	Expected string
}

// ReviewResult aggregates per-item verdicts with a correct/total score
type ReviewResult struct {
	Verdicts []Verdict
	Correct  int
	Total    int
}

// AllCorrect reports whether every answer was graded correct
func (r ReviewResult) AllCorrect() bool {
	return r.Total > 0 && r.Correct == r.Total
}
