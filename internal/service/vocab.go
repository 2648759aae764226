package service

import (
	"fmt"
	"sync"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/repository"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// ErrUnknownDeck is returned when a deck switch names a source that
// does not exist.
var ErrUnknownDeck = fmt.Errorf("unknown deck")

// VocabService owns the active deck and its translation map. The deck
// is immutable between loads; Switch replaces it wholesale.
type VocabService struct {
	source repository.DeckSource
	logger *zap.Logger

	mu           sync.RWMutex
	deck         domain.Deck
	translations domain.TranslationMap
	fallback     bool
}

// NewVocabService creates a vocabulary service and activates the named
// deck. Loading never fails: a missing or malformed source activates
// the built-in fallback deck.
func NewVocabService(source repository.DeckSource, name string, logger *zap.Logger) *VocabService {
	s := &VocabService{
		source: source,
		logger: logger,
	}
	s.activate(name)
	return s
}

// activate loads and installs the named deck
func (s *VocabService) activate(name string) {
	result := s.source.Load(name)

	s.mu.Lock()
	s.deck = result.Deck
	s.translations = result.Translations
	s.fallback = result.Fallback
	s.mu.Unlock()

	s.logger.Info("Deck activated",
		zap.String("deck", result.Deck.Name),
		zap.Int("words", result.Deck.Size()),
		zap.Bool("fallback", result.Fallback),
	)
}

// Switch replaces the active deck with the named source. The name must
// be a listed source; the caller is responsible for resetting any
// seen-word state tied to the old deck.
func (s *VocabService) Switch(name string) error {
	names, err := s.source.List()
	if err != nil {
		return fmt.Errorf("failed to list deck sources: %w", err)
	}
	if !lo.Contains(names, name) {
		return fmt.Errorf("%w: %s", ErrUnknownDeck, name)
	}

	s.activate(name)
	return nil
}

// List enumerates available deck sources
func (s *VocabService) List() ([]string, error) {
	return s.source.List()
}

// Words returns a copy of the active deck's word list
func (s *VocabService) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	words := make([]string, len(s.deck.Words))
	copy(words, s.deck.Words)
	return words
}

// Size returns the active deck size
func (s *VocabService) Size() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deck.Size()
}

// ActiveDeck returns the active deck name
func (s *VocabService) ActiveDeck() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deck.Name
}

// Translation resolves a word against the active translation map
func (s *VocabService) Translation(word string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.translations.Lookup(word)
}
