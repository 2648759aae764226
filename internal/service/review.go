package service

import (
	"fmt"
	"strings"
	"sync"

	"wordtrainer/internal/domain"

	"go.uber.org/zap"
)

var (
	// ErrNoSession is returned when verify is called with no prior review
	ErrNoSession = fmt.Errorf("no review in progress")
	// ErrInvalidMode is returned for an unrecognized quiz mode
	ErrInvalidMode = fmt.Errorf("invalid review mode")
	// ErrNoWords is returned when a review is begun with no words
	ErrNoWords = fmt.Errorf("no words to review")
)

// ErrAnswerCount is returned when the number of submitted answers does
// not match the number of prompted words
type ErrAnswerCount struct {
	Expected int
	Got      int
}

func (e ErrAnswerCount) Error() string {
	return fmt.Sprintf("expected %d answers, got %d", e.Expected, e.Got)
}

// Translator resolves a word to its translation
type Translator interface {
	Translation(word string) string
}

// SentenceGenerator produces an example sentence containing the word
// wrapped in **. Pluggable so an LLM-backed producer can replace it.
type SentenceGenerator func(word string) string

// DefaultSentence is the built-in sentence producer
func DefaultSentence(word string) string {
	return fmt.Sprintf("I enjoy eating **%s** when the weather is nice.", word)
}

// ReviewService is the review session state machine. It holds the last
// shown words and quiz mode; the next Verify grades against expected
// values re-derived from them. A new Begin overwrites any session in
// flight (last writer wins).
type ReviewService struct {
	translator Translator
	sentences  SentenceGenerator
	logger     *zap.Logger

	mu        sync.Mutex
	lastWords []string
	lastMode  domain.Mode
}

// NewReviewService creates a review service. A nil sentences generator
// falls back to DefaultSentence.
func NewReviewService(translator Translator, sentences SentenceGenerator, logger *zap.Logger) *ReviewService {
	if sentences == nil {
		sentences = DefaultSentence
	}
	return &ReviewService{
		translator: translator,
		sentences:  sentences,
		logger:     logger,
	}
}

// Begin starts a review session over words in the given mode and
// returns the numbered prompt lines. On invalid parameters the session
// state is left unchanged.
func (s *ReviewService) Begin(mode domain.Mode, words []string) ([]string, error) {
	switch mode {
	case domain.ModeEnToCn, domain.ModeCnToEn, domain.ModeSentence:
	default:
		return nil, ErrInvalidMode
	}
	if len(words) == 0 {
		return nil, ErrNoWords
	}

	prompts := make([]string, len(words))
	for i, w := range words {
		switch mode {
		case domain.ModeEnToCn:
			prompts[i] = fmt.Sprintf("%d. %s", i+1, w)
		case domain.ModeCnToEn:
			prompts[i] = fmt.Sprintf("%d. %s", i+1, s.translator.Translation(w))
		case domain.ModeSentence:
			prompts[i] = fmt.Sprintf("%d. %s", i+1, s.sentences(w))
		}
	}

	s.mu.Lock()
	s.lastWords = append([]string(nil), words...)
	s.lastMode = mode
	s.mu.Unlock()

	s.logger.Info("Review session started",
		zap.String("mode", mode.String()),
		zap.Int("words", len(words)),
	)

	return prompts, nil
}

// Verify grades answers against the pending session. Expected values
// are re-derived from the shown words and mode on every call, never
// cached, so a translation map swapped between Begin and Verify cannot
// grade against stale data. Answers are compared case-insensitively
// after trimming. Verify does not consume the session; re-grading the
// same session is idempotent.
func (s *ReviewService) Verify(answers []string) (*domain.ReviewResult, error) {
	s.mu.Lock()
	words := append([]string(nil), s.lastWords...)
	mode := s.lastMode
	s.mu.Unlock()

	if mode == domain.ModeNone || len(words) == 0 {
		return nil, ErrNoSession
	}

	expected := make([]string, len(words))
	for i, w := range words {
		switch mode {
		case domain.ModeCnToEn:
			expected[i] = w
		default:
			// EnToCn and sentence mode both expect the translation
			expected[i] = s.translator.Translation(w)
		}
	}

	if len(answers) != len(expected) {
		return nil, ErrAnswerCount{Expected: len(expected), Got: len(answers)}
	}

	result := &domain.ReviewResult{Total: len(expected)}
	for i, answer := range answers {
		correct := strings.EqualFold(strings.TrimSpace(answer), expected[i])
		if correct {
			result.Correct++
		}
		result.Verdicts = append(result.Verdicts, domain.Verdict{
			Position: i + 1,
			Correct:  correct,
			Expected: expected[i],
		})
	}

	s.logger.Info("Review verified",
		zap.Int("correct", result.Correct),
		zap.Int("total", result.Total),
	)

	return result, nil
}

// Pending reports whether a review session is awaiting answers, and
// how many answers it expects
func (s *ReviewService) Pending() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastMode == domain.ModeNone || len(s.lastWords) == 0 {
		return 0, false
	}
	return len(s.lastWords), true
}
