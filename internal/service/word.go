package service

import (
	"fmt"
	"sort"
	"sync"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/repository"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

var (
	// ErrInvalidCount is returned for selection requests below 1
	ErrInvalidCount = fmt.Errorf("count must be at least 1")
	// ErrEmptyDeck is returned when the active deck has no words
	ErrEmptyDeck = fmt.Errorf("active deck is empty")
)

// WordService owns the seen-word set and the dated word-group journal.
// All read-modify-write-save sequences run under one mutex so
// concurrent commands cannot lose updates, and every mutation is saved
// before the call returns.
type WordService struct {
	vocab     *VocabService
	stateRepo repository.StateRepository
	logger    *zap.Logger

	mu     sync.Mutex
	used   map[string]struct{}
	groups map[string][]string
}

// NewWordService creates a word service, loading the persisted
// seen-set and journal from the state repository
func NewWordService(vocab *VocabService, stateRepo repository.StateRepository, logger *zap.Logger) *WordService {
	record := stateRepo.Load()

	used := make(map[string]struct{}, len(record.UsedWords))
	for _, w := range record.UsedWords {
		used[w] = struct{}{}
	}

	groups := make(map[string][]string, len(record.WordGroups))
	for key, words := range record.WordGroups {
		groups[key] = append([]string(nil), words...)
	}

	logger.Info("Word state loaded",
		zap.Int("seen_words", len(used)),
		zap.Int("word_groups", len(groups)),
	)

	return &WordService{
		vocab:     vocab,
		stateRepo: stateRepo,
		logger:    logger,
		used:      used,
		groups:    groups,
	}
}

// SelectUnseen returns count distinct words not yet seen in the current
// exhaustion cycle, records them as seen and journals them under
// today's date. When fewer than count unseen words remain, the seen-set
// is cleared and a new cycle starts over the full deck.
func (s *WordService) SelectUnseen(count int) ([]string, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}

	deck := s.vocab.Words()
	if len(deck) == 0 {
		return nil, ErrEmptyDeck
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if count > len(deck) {
		s.logger.Warn("Selection count clamped to deck size",
			zap.Int("requested", count),
			zap.Int("deck_size", len(deck)),
		)
		count = len(deck)
	}

	available := make([]string, 0, len(deck))
	for _, w := range deck {
		if _, seen := s.used[w]; !seen {
			available = append(available, w)
		}
	}

	if len(available) < count {
		// Exhaustion: start a new cycle over the full deck. Words from
		// the previous batch may be offered again across this boundary.
		s.logger.Info("Unseen pool exhausted, starting new cycle",
			zap.Int("remaining", len(available)),
			zap.Int("requested", count),
		)
		s.used = make(map[string]struct{})
		available = deck
	}

	selected := lo.Samples(available, count)

	for _, w := range selected {
		s.used[w] = struct{}{}
	}
	s.mergeGroup(domain.TodayKey(), selected)
	s.persist()

	return selected, nil
}

// AppendGroup merges words into the journal entry for dateKey,
// skipping words already present and preserving prior order
func (s *WordService) AppendGroup(dateKey string, words []string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mergeGroup(dateKey, words)
	s.persist()
}

// mergeGroup performs the order-preserving, duplicate-skipping merge.
// Callers must hold s.mu.
func (s *WordService) mergeGroup(dateKey string, words []string) {
	existing := s.groups[dateKey]
	present := make(map[string]struct{}, len(existing))
	for _, w := range existing {
		present[w] = struct{}{}
	}

	for _, w := range words {
		if _, ok := present[w]; ok {
			continue
		}
		existing = append(existing, w)
		present[w] = struct{}{}
	}
	s.groups[dateKey] = existing
}

// Latest returns the word group under the most recent date key, or
// empty if the journal has no entries
func (s *WordService) Latest() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.groups) == 0 {
		return nil
	}

	keys := lo.Keys(s.groups)
	sort.Strings(keys)
	latest := keys[len(keys)-1]

	return append([]string(nil), s.groups[latest]...)
}

// Group returns the word group for an exact date key; empty when the
// key is absent, which is a normal outcome, not an error
func (s *WordService) Group(dateKey string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.groups[dateKey]...)
}

// RandomSeen returns up to n random words from the full seen history
func (s *WordService) RandomSeen(n int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := lo.Keys(s.used)
	if len(seen) <= n {
		sort.Strings(seen)
		return seen
	}
	return lo.Samples(seen, n)
}

// SeenCount returns the number of words seen in the current cycle
func (s *WordService) SeenCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.used)
}

// Clear empties the journal and the seen-set together
func (s *WordService) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.used = make(map[string]struct{})
	s.groups = make(map[string][]string)

	return s.persist()
}

// SwitchDeck activates the named deck and resets the seen-set, so the
// new deck does not inherit seen state from the old one
func (s *WordService) SwitchDeck(name string) error {
	if err := s.vocab.Switch(name); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.used = make(map[string]struct{})
	return s.persist()
}

// persist saves the current record. Save failures are logged but do
// not abort the triggering operation; the in-memory state stays valid.
// Callers must hold s.mu.
func (s *WordService) persist() error {
	record := domain.PersistedRecord{
		UsedWords:  lo.Keys(s.used),
		WordGroups: make(map[string][]string, len(s.groups)),
	}
	sort.Strings(record.UsedWords)
	for key, words := range s.groups {
		record.WordGroups[key] = append([]string(nil), words...)
	}

	if err := s.stateRepo.Save(record); err != nil {
		s.logger.Error("Failed to save word state", zap.Error(err))
		return err
	}
	return nil
}
