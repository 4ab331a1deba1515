package round

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockRoundRepository struct {
	mock.Mock
}

func (m *MockRoundRepository) CreateRound(r *Round) error {
	args := m.Called(r)
	return args.Error(0)
}

func (m *MockRoundRepository) GetRound(id uuid.UUID) (*Round, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Round), args.Error(1)
}

func (m *MockRoundRepository) ListByUser(userID uuid.UUID) ([]Round, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Round), args.Error(1)
}

func (m *MockRoundRepository) ListByStatus(status Status) ([]Round, error) {
	args := m.Called(status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Round), args.Error(1)
}

func (m *MockRoundRepository) UpdateRound(r *Round) error {
	args := m.Called(r)
	return args.Error(0)
}

type MockStatsRecorder struct {
	mock.Mock
}

func (m *MockStatsRecorder) RecordRound(userID uuid.UUID, totalScore, birdies, eagles int) error {
	args := m.Called(userID, totalScore, birdies, eagles)
	return args.Error(0)
}

type MockLeaderboardUpdater struct {
	mock.Mock
}

func (m *MockLeaderboardUpdater) RecordScore(tournamentID, userID uuid.UUID, totalScore int, edit bool) error {
	args := m.Called(tournamentID, userID, totalScore, edit)
	return args.Error(0)
}
