package domain

// UnknownTranslation is the sentinel returned for words missing
// from the active translation map.
const UnknownTranslation = "未知"

// Deck is a named, ordered, de-duplicated list of vocabulary words
type Deck struct {
	Name  string
	Words []string
}

// Size returns the number of words in the deck
func (d Deck) Size() int {
	return len(d.Words)
}

// TranslationMap maps a word to its canonical translation.
// Partial: words absent from the map resolve to UnknownTranslation.
type TranslationMap map[string]string

// Lookup returns the translation for word, or UnknownTranslation
func (m TranslationMap) Lookup(word string) string {
	if t, ok := m[word]; ok && t != "" {
		return t
	}
	return UnknownTranslation
}

// DeckResult is the outcome of loading a deck source. Fallback is set
// when the source was missing or malformed and the built-in deck was
// substituted instead.
type DeckResult struct {
	Deck         Deck
	Translations TranslationMap
	Fallback     bool
}
