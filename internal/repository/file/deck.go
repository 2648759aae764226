package file

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"wordtrainer/internal/domain"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// DeckLoader implements repository.DeckSource over a directory of
// JSON deck files. Two shapes are accepted:
//
//	[{"word": "apple", "translations": [{"translation": "苹果"}]}, ...]
//	{"deck-name": ["apple", "banana", ...], ...}
//
// The first translation of a record is taken as canonical. Anything
// else falls back to the built-in deck.
type DeckLoader struct {
	dir    string
	logger *zap.Logger
}

// NewDeckLoader creates a deck loader reading sources from dir
func NewDeckLoader(dir string, logger *zap.Logger) *DeckLoader {
	return &DeckLoader{dir: dir, logger: logger}
}

// deckEntry is a single record of the word+translations shape
type deckEntry struct {
	Word         string `json:"word"`
	Translations []struct {
		Translation string `json:"translation"`
	} `json:"translations"`
}

// Load parses the named source. Missing or malformed sources yield the
// built-in fallback deck; this is recoverable and logged, never fatal.
func (l *DeckLoader) Load(name string) domain.DeckResult {
	path := filepath.Join(l.dir, name+".json")

	data, err := os.ReadFile(path)
	if err != nil {
		l.logger.Warn("Failed to read deck source, using fallback deck",
			zap.String("deck", name),
			zap.Error(err),
		)
		return fallbackResult(name)
	}

	if result, ok := parseEntryList(name, data); ok {
		return result
	}
	if result, ok := parseDeckMap(name, data); ok {
		return result
	}

	l.logger.Warn("Deck source has unrecognized shape, using fallback deck",
		zap.String("deck", name),
		zap.String("path", path),
	)
	return fallbackResult(name)
}

// List enumerates available deck sources, sorted by name
func (l *DeckLoader) List() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".json"))
	}
	sort.Strings(names)
	return names, nil
}

// parseEntryList handles the word+translations shape
func parseEntryList(name string, data []byte) (domain.DeckResult, bool) {
	var entries []deckEntry
	if err := json.Unmarshal(data, &entries); err != nil || len(entries) == 0 {
		return domain.DeckResult{}, false
	}

	words := make([]string, 0, len(entries))
	translations := domain.TranslationMap{}
	for _, e := range entries {
		if e.Word == "" {
			return domain.DeckResult{}, false
		}
		words = append(words, e.Word)
		if len(e.Translations) > 0 {
			translations[e.Word] = e.Translations[0].Translation
		}
	}

	return domain.DeckResult{
		Deck:         domain.Deck{Name: name, Words: lo.Uniq(words)},
		Translations: translations,
	}, true
}

// parseDeckMap handles the deck-name→word-list shape. The list under
// the requested name wins; otherwise the first deck in sorted order is
// taken. No translations are supplied by this shape.
func parseDeckMap(name string, data []byte) (domain.DeckResult, bool) {
	var decks map[string][]string
	if err := json.Unmarshal(data, &decks); err != nil || len(decks) == 0 {
		return domain.DeckResult{}, false
	}

	words, ok := decks[name]
	if !ok {
		keys := lo.Keys(decks)
		sort.Strings(keys)
		words = decks[keys[0]]
	}
	if len(words) == 0 {
		return domain.DeckResult{}, false
	}

	return domain.DeckResult{
		Deck:         domain.Deck{Name: name, Words: lo.Uniq(words)},
		Translations: domain.TranslationMap{},
	}, true
}

// Built-in fallback deck, used when no source can be loaded
var fallbackWords = []string{
	"apple", "banana", "cherry", "date", "elderberry", "fig", "grape",
	"honeydew", "kiwi", "lemon", "mango", "nectarine", "orange", "papaya",
}

var fallbackTranslations = domain.TranslationMap{
	"apple": "苹果", "banana": "香蕉", "cherry": "樱桃", "date": "枣",
	"elderberry": "接骨木莓", "fig": "无花果", "grape": "葡萄",
	"honeydew": "哈密瓜", "kiwi": "猕猴桃", "lemon": "柠檬",
	"mango": "芒果", "nectarine": "油桃", "orange": "橙子", "papaya": "木瓜",
}

func fallbackResult(name string) domain.DeckResult {
	words := make([]string, len(fallbackWords))
	copy(words, fallbackWords)

	translations := domain.TranslationMap{}
	for w, t := range fallbackTranslations {
		translations[w] = t
	}

	return domain.DeckResult{
		Deck:         domain.Deck{Name: name, Words: words},
		Translations: translations,
		Fallback:     true,
	}
}
