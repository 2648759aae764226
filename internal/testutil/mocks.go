package testutil

import (
	"wordtrainer/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockStateRepository is a mock for repository.StateRepository
type MockStateRepository struct {
	mock.Mock
}

func (m *MockStateRepository) Load() domain.PersistedRecord {
	args := m.Called()
	return args.Get(0).(domain.PersistedRecord)
}

func (m *MockStateRepository) Save(record domain.PersistedRecord) error {
	args := m.Called(record)
	return args.Error(0)
}

// MockDeckSource is a mock for repository.DeckSource
type MockDeckSource struct {
	mock.Mock
}

func (m *MockDeckSource) Load(name string) domain.DeckResult {
	args := m.Called(name)
	return args.Get(0).(domain.DeckResult)
}

func (m *MockDeckSource) List() ([]string, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// MockTranslator is a mock for service.Translator
type MockTranslator struct {
	mock.Mock
}

func (m *MockTranslator) Translation(word string) string {
	args := m.Called(word)
	return args.String(0)
}
