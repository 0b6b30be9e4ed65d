package sessions

import (
	"github.com/DedS3t/disney-monopoly/app/models"
	"github.com/stretchr/testify/mock"
)

// --- SnapshotStore ---

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Save(s models.Snapshot) error {
	args := m.Called(s)
	return args.Error(0)
}

func (m *MockStore) Load(id string) (models.Snapshot, error) {
	args := m.Called(id)
	return args.Get(0).(models.Snapshot), args.Error(1)
}

func (m *MockStore) Delete(id string) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockStore) List() ([]string, error) {
	args := m.Called()
	return args.Get(0).([]string), args.Error(1)
}

// --- GameRepository ---

type MockGames struct {
	mock.Mock
}

func (m *MockGames) Create(g *models.Game) error {
	args := m.Called(g)
	return args.Error(0)
}

func (m *MockGames) MarkFinished(id, winner string, turns int) error {
	args := m.Called(id, winner, turns)
	return args.Error(0)
}

// --- Publisher ---

type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(gameID string, events []models.Event) {
	m.Called(gameID, events)
}

func (m *MockPublisher) GameOver(gameID string, winner models.Player) {
	m.Called(gameID, winner)
}
