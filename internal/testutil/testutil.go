package testutil

import (
	"wordtrainer/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestRecord creates a persisted record from seen words and groups
func NewTestRecord(used []string, groups map[string][]string) domain.PersistedRecord {
	record := domain.EmptyRecord()
	record.UsedWords = append(record.UsedWords, used...)
	for key, words := range groups {
		record.WordGroups[key] = append([]string(nil), words...)
	}
	return record
}

// NewTestDeckResult creates a loaded (non-fallback) deck result
func NewTestDeckResult(name string, words []string, translations map[string]string) domain.DeckResult {
	tm := domain.TranslationMap{}
	for w, t := range translations {
		tm[w] = t
	}
	return domain.DeckResult{
		Deck:         domain.Deck{Name: name, Words: words},
		Translations: tm,
	}
}
