package service

import (
	"fmt"
	"testing"

	"wordtrainer/internal/domain"
	"wordtrainer/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testDeck(size int) []string {
	words := make([]string, size)
	for i := range words {
		words[i] = fmt.Sprintf("word%02d", i)
	}
	return words
}

func newTestWordService(deckWords []string, record domain.PersistedRecord) (*WordService, *testutil.MockStateRepository) {
	source := new(testutil.MockDeckSource)
	source.On("Load", "test").Return(testutil.NewTestDeckResult("test", deckWords, nil))

	stateRepo := new(testutil.MockStateRepository)
	stateRepo.On("Load").Return(record)
	stateRepo.On("Save", mock.Anything).Return(nil)

	vocab := NewVocabService(source, "test", testutil.NewTestLogger())
	return NewWordService(vocab, stateRepo, testutil.NewTestLogger()), stateRepo
}

func TestWordService_NoRepeatWithinCycle(t *testing.T) {
	svc, _ := newTestWordService(testDeck(10), domain.EmptyRecord())

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		words, err := svc.SelectUnseen(3)
		assert.NoError(t, err)
		assert.Len(t, words, 3)

		for _, w := range words {
			assert.False(t, seen[w], "word %s returned twice within one cycle", w)
			seen[w] = true
		}
	}
	assert.Len(t, seen, 9)
}

func TestWordService_ExhaustionReset(t *testing.T) {
	deck := testDeck(6)
	svc, _ := newTestWordService(deck, domain.EmptyRecord())

	for i := 0; i < 2; i++ {
		words, err := svc.SelectUnseen(6)
		assert.NoError(t, err)
		assert.ElementsMatch(t, deck, words, "call %d must cover the whole deck", i+1)
	}
}

func TestWordService_Clamping(t *testing.T) {
	svc, _ := newTestWordService(testDeck(6), domain.EmptyRecord())

	words, err := svc.SelectUnseen(20)
	assert.NoError(t, err)
	assert.Len(t, words, 6)
}

func TestWordService_InvalidCount(t *testing.T) {
	svc, stateRepo := newTestWordService(testDeck(6), domain.EmptyRecord())

	tests := []int{0, -1, -10}
	for _, count := range tests {
		words, err := svc.SelectUnseen(count)
		assert.ErrorIs(t, err, ErrInvalidCount)
		assert.Nil(t, words)
	}
	stateRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestWordService_EmptyDeck(t *testing.T) {
	svc, _ := newTestWordService(nil, domain.EmptyRecord())

	words, err := svc.SelectUnseen(5)
	assert.ErrorIs(t, err, ErrEmptyDeck)
	assert.Nil(t, words)
}

func TestWordService_SelectionPersistedBeforeReturn(t *testing.T) {
	svc, stateRepo := newTestWordService(testDeck(10), domain.EmptyRecord())

	words, err := svc.SelectUnseen(4)
	assert.NoError(t, err)
	assert.Len(t, words, 4)
	assert.Equal(t, 4, svc.SeenCount())
	stateRepo.AssertNumberOfCalls(t, "Save", 1)

	_, err = svc.SelectUnseen(4)
	assert.NoError(t, err)
	stateRepo.AssertNumberOfCalls(t, "Save", 2)
}

func TestWordService_SelectJournalsToday(t *testing.T) {
	svc, _ := newTestWordService(testDeck(10), domain.EmptyRecord())

	words, err := svc.SelectUnseen(3)
	assert.NoError(t, err)

	assert.ElementsMatch(t, words, svc.Latest())
	assert.ElementsMatch(t, words, svc.Group(domain.TodayKey()))
}

func TestWordService_JournalMergeIdempotent(t *testing.T) {
	svc, _ := newTestWordService(testDeck(10), domain.EmptyRecord())
	words := []string{"word01", "word03", "word05"}

	svc.AppendGroup("2026-08-26", words)
	svc.AppendGroup("2026-08-26", words)

	assert.Equal(t, words, svc.Group("2026-08-26"))
}

func TestWordService_JournalMergePreservesOrder(t *testing.T) {
	svc, _ := newTestWordService(testDeck(10), domain.EmptyRecord())

	svc.AppendGroup("2026-08-26", []string{"word01", "word02"})
	svc.AppendGroup("2026-08-26", []string{"word02", "word03", "word01", "word04"})

	assert.Equal(t,
		[]string{"word01", "word02", "word03", "word04"},
		svc.Group("2026-08-26"),
	)
}

func TestWordService_LatestAndGroup(t *testing.T) {
	record := testutil.NewTestRecord(nil, map[string][]string{
		"2025-12-31": {"word01"},
		"2026-01-02": {"word02", "word03"},
		"2026-01-01": {"word04"},
	})
	svc, _ := newTestWordService(testDeck(10), record)

	assert.Equal(t, []string{"word02", "word03"}, svc.Latest())
	assert.Equal(t, []string{"word04"}, svc.Group("2026-01-01"))
	assert.Empty(t, svc.Group("2026-05-05"))
}

func TestWordService_LatestEmptyJournal(t *testing.T) {
	svc, _ := newTestWordService(testDeck(10), domain.EmptyRecord())

	assert.Empty(t, svc.Latest())
}

func TestWordService_Clear(t *testing.T) {
	record := testutil.NewTestRecord(
		[]string{"word01", "word02"},
		map[string][]string{"2026-08-25": {"word01", "word02"}},
	)
	svc, stateRepo := newTestWordService(testDeck(10), record)

	err := svc.Clear()
	assert.NoError(t, err)

	assert.Equal(t, 0, svc.SeenCount())
	assert.Empty(t, svc.Latest())
	stateRepo.AssertNumberOfCalls(t, "Save", 1)
}

func TestWordService_RandomSeen(t *testing.T) {
	deck := testDeck(20)
	svc, _ := newTestWordService(deck, testutil.NewTestRecord(deck, nil))

	words := svc.RandomSeen(10)
	assert.Len(t, words, 10)

	distinct := map[string]bool{}
	for _, w := range words {
		assert.Contains(t, deck, w)
		assert.False(t, distinct[w], "word %s sampled twice", w)
		distinct[w] = true
	}
}

func TestWordService_RandomSeenFewerThanRequested(t *testing.T) {
	svc, _ := newTestWordService(testDeck(10), testutil.NewTestRecord([]string{"word01", "word02"}, nil))

	words := svc.RandomSeen(10)
	assert.ElementsMatch(t, []string{"word01", "word02"}, words)
}

func TestWordService_SwitchDeckResetsSeen(t *testing.T) {
	source := new(testutil.MockDeckSource)
	source.On("Load", "test").Return(testutil.NewTestDeckResult("test", testDeck(6), nil))
	source.On("Load", "other").Return(testutil.NewTestDeckResult("other", []string{"cat", "dog"}, nil))
	source.On("List").Return([]string{"other", "test"}, nil)

	stateRepo := new(testutil.MockStateRepository)
	stateRepo.On("Load").Return(testutil.NewTestRecord(testDeck(6), nil))
	stateRepo.On("Save", mock.Anything).Return(nil)

	vocab := NewVocabService(source, "test", testutil.NewTestLogger())
	svc := NewWordService(vocab, stateRepo, testutil.NewTestLogger())

	assert.Equal(t, 6, svc.SeenCount())

	err := svc.SwitchDeck("other")
	assert.NoError(t, err)
	assert.Equal(t, 0, svc.SeenCount())
	assert.Equal(t, "other", vocab.ActiveDeck())
	stateRepo.AssertNumberOfCalls(t, "Save", 1)
}

func TestWordService_SwitchDeckUnknownLeavesStateUnchanged(t *testing.T) {
	source := new(testutil.MockDeckSource)
	source.On("Load", "test").Return(testutil.NewTestDeckResult("test", testDeck(6), nil))
	source.On("List").Return([]string{"test"}, nil)

	stateRepo := new(testutil.MockStateRepository)
	stateRepo.On("Load").Return(testutil.NewTestRecord([]string{"word01"}, nil))

	vocab := NewVocabService(source, "test", testutil.NewTestLogger())
	svc := NewWordService(vocab, stateRepo, testutil.NewTestLogger())

	err := svc.SwitchDeck("nope")
	assert.ErrorIs(t, err, ErrUnknownDeck)
	assert.Equal(t, 1, svc.SeenCount())
	assert.Equal(t, "test", vocab.ActiveDeck())
	stateRepo.AssertNotCalled(t, "Save", mock.Anything)
}

func TestWordService_LoadsPersistedState(t *testing.T) {
	record := testutil.NewTestRecord(
		[]string{"word01", "word02", "word03"},
		map[string][]string{"2026-08-25": {"word01"}},
	)
	svc, _ := newTestWordService(testDeck(10), record)

	assert.Equal(t, 3, svc.SeenCount())
	assert.Equal(t, []string{"word01"}, svc.Group("2026-08-25"))
}
