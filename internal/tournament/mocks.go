package tournament

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockTournamentRepository struct {
	mock.Mock
}

func (m *MockTournamentRepository) CreateTournament(t *Tournament) error {
	args := m.Called(t)
	return args.Error(0)
}

func (m *MockTournamentRepository) GetTournament(id uuid.UUID) (*Tournament, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Tournament), args.Error(1)
}

func (m *MockTournamentRepository) ListTournaments() ([]Tournament, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Tournament), args.Error(1)
}

func (m *MockTournamentRepository) UpdateTournament(t *Tournament) error {
	args := m.Called(t)
	return args.Error(0)
}

func (m *MockTournamentRepository) AddParticipant(p *Participant) error {
	args := m.Called(p)
	return args.Error(0)
}

func (m *MockTournamentRepository) RemoveParticipant(tournamentID, userID uuid.UUID) error {
	args := m.Called(tournamentID, userID)
	return args.Error(0)
}

func (m *MockTournamentRepository) SaveLeaderboard(tournamentID uuid.UUID, entries []LeaderboardEntry) error {
	args := m.Called(tournamentID, entries)
	return args.Error(0)
}

func (m *MockTournamentRepository) DropStandings(tournamentID uuid.UUID) {
	m.Called(tournamentID)
}
