package domain

// PersistedRecord is the durable image of the seen-word set and the
// dated word groups. It is the only state that survives a restart.
type PersistedRecord struct {
	UsedWords  []string            `json:"usedWords"`
	WordGroups map[string][]string `json:"wordGroups"`
}

// EmptyRecord returns a record with no seen words and no groups
func EmptyRecord() PersistedRecord {
	return PersistedRecord{
		UsedWords:  []string{},
		WordGroups: map[string][]string{},
	}
}
