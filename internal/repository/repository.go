package repository

import (
	"wordtrainer/internal/domain"
)

// StateRepository persists the seen-set and word-group journal
type StateRepository interface {
	// Load reads the durable record. Implementations return an empty
	// record (never an error the caller must handle) when the record
	// is missing or unreadable, so the system stays usable on first run.
	Load() domain.PersistedRecord
	// Save writes the full record durably. Called after every mutation,
	// before the triggering operation replies.
	Save(record domain.PersistedRecord) error
}

// DeckSource loads vocabulary decks
type DeckSource interface {
	// Load parses the named source into a deck and translation map.
	// A missing or malformed source yields the built-in fallback deck
	// (Fallback set on the result), never an error.
	Load(name string) domain.DeckResult
	// List enumerates loadable source names, sorted
	List() ([]string, error)
}
