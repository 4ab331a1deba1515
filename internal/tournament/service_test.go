package tournament

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validRequest() *TournamentRequest {
	return &TournamentRequest{
		Name:            "Spring Open",
		CourseID:        uuid.New(),
		StartDate:       time.Now().Add(48 * time.Hour),
		EndDate:         time.Now().Add(72 * time.Hour),
		Format:          FormatStrokePlay,
		MaxParticipants: 16,
	}
}

func TestTournamentService_Create(t *testing.T) {
	mockRepo := &MockTournamentRepository{}
	service := NewTournamentService(mockRepo)

	mockRepo.On("CreateTournament", mock.AnythingOfType("*tournament.Tournament")).Return(nil)

	organizer := uuid.New()
	created, err := service.CreateTournament(organizer, validRequest())
	assert.NoError(t, err)
	assert.Equal(t, StatusUpcoming, created.Status)
	assert.Equal(t, organizer, created.OrganizerID)
	assert.Empty(t, created.Participants)
	assert.Empty(t, created.Leaderboard)
	mockRepo.AssertExpectations(t)
}

func TestTournamentService_Create_StartAfterEnd(t *testing.T) {
	mockRepo := &MockTournamentRepository{}
	service := NewTournamentService(mockRepo)

	req := validRequest()
	req.StartDate = req.EndDate.Add(time.Hour)

	_, err := service.CreateTournament(uuid.New(), req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "end date must be after start date")
	mockRepo.AssertNotCalled(t, "CreateTournament")
}

func TestTournamentService_Create_PastStart(t *testing.T) {
	mockRepo := &MockTournamentRepository{}
	service := NewTournamentService(mockRepo)

	req := validRequest()
	req.StartDate = time.Now().Add(-24 * time.Hour)

	_, err := service.CreateTournament(uuid.New(), req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "start date must be in the future")
	mockRepo.AssertNotCalled(t, "CreateTournament")
}

func TestTournamentService_Create_MissingFields(t *testing.T) {
	mockRepo := &MockTournamentRepository{}
	service := NewTournamentService(mockRepo)

	req := validRequest()
	req.Name = ""

	_, err := service.CreateTournament(uuid.New(), req)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "missing required tournament fields")
}

func TestTournamentService_Register(t *testing.T) {
	mockRepo := &MockTournamentRepository{}
	service := NewTournamentService(mockRepo)

	id := uuid.New()
	userID := uuid.New()
	mockRepo.On("GetTournament", id).Return(&Tournament{
		ID: id, Status: StatusUpcoming, MaxParticipants: 2,
	}, nil)
	mockRepo.On("AddParticipant", mock.AnythingOfType("*tournament.Participant")).Return(nil)

	err := service.Register(id, userID)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestTournamentService_Register_AlreadyRegistered(t *testing.T) {
	mockRepo := &MockTournamentRepository{}
	service := NewTournamentService(mockRepo)

	id := uuid.New()
	userID := uuid.New()
	mockRepo.On("GetTournament", id).Return(&Tournament{
		ID: id, Status: StatusUpcoming, MaxParticipants: 4,
		Participants: []Participant{{UserID: userID}},
	}, nil)

	err := service.Register(id, userID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	mockRepo.AssertNotCalled(t, "AddParticipant")
}

func TestTournamentService_Register_Full(t *testing.T) {
	mockRepo := &MockTournamentRepository{}
	service := NewTournamentService(mockRepo)

	id := uuid.New()
	mockRepo.On("GetTournament", id).Return(&Tournament{
		ID: id, Status: StatusUpcoming, MaxParticipants: 1,
		Participants: []Participant{{UserID: uuid.New()}},
	}, nil)

	err := service.Register(id, uuid.New())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "tournament is full")
	mockRepo.AssertNotCalled(t, "AddParticipant")
}

func TestTournamentService_Register_NotUpcoming(t *testing.T) {
	mockRepo := &MockTournamentRepository{}
	service := NewTournamentService(mockRepo)

	id := uuid.New()
	mockRepo.On("GetTournament", id).Return(&Tournament{
		ID: id, Status: StatusActive, MaxParticipants: 4,
	}, nil)

	err := service.Register(id, uuid.New())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "registration is closed")
}

func TestTournamentService_Unregister_Idempotent(t *testing.T) {
	mockRepo := &MockTournamentRepository{}
	service := NewTournamentService(mockRepo)

	id := uuid.New()
	userID := uuid.New()
	mockRepo.On("GetTournament", id).Return(&Tournament{ID: id}, nil)
	mockRepo.On("RemoveParticipant", id, userID).Return(nil)

	assert.NoError(t, service.Unregister(id, userID))
	assert.NoError(t, service.Unregister(id, userID))
	mockRepo.AssertNumberOfCalls(t, "RemoveParticipant", 2)
}

func recordAndCapture(t *testing.T, service *TournamentService, mockRepo *MockTournamentRepository,
	tournamentID, userID uuid.UUID, score int, edit bool) []LeaderboardEntry {
	t.Helper()
	var saved []LeaderboardEntry
	call := mockRepo.On("SaveLeaderboard", tournamentID, mock.Anything).
		Run(func(args mock.Arguments) {
			saved = args.Get(1).([]LeaderboardEntry)
		}).Return(nil).Once()
	defer call.Unset()

	err := service.RecordScore(tournamentID, userID, score, edit)
	assert.NoError(t, err)
	return saved
}

func TestTournamentService_RecordScore_BestOfFlow(t *testing.T) {
	mockRepo := &MockTournamentRepository{}
	service := NewTournamentService(mockRepo)

	id := uuid.New()
	userA := uuid.New()
	userB := uuid.New()
	board := []LeaderboardEntry{}

	// A submits 72 into an empty leaderboard.
	mockRepo.On("GetTournament", id).Return(&Tournament{ID: id, Leaderboard: board}, nil).Once()
	board = recordAndCapture(t, service, mockRepo, id, userA, 72, false)
	assert.Len(t, board, 1)
	assert.Equal(t, userA, board[0].UserID)
	assert.Equal(t, 72, board[0].TotalScore)

	// B submits 70 and takes the lead.
	mockRepo.On("GetTournament", id).Return(&Tournament{ID: id, Leaderboard: board}, nil).Once()
	board = recordAndCapture(t, service, mockRepo, id, userB, 70, false)
	assert.Len(t, board, 2)
	assert.Equal(t, userB, board[0].UserID)
	assert.Equal(t, userA, board[1].UserID)

	// A improves to 68; create mode keeps the better score.
	mockRepo.On("GetTournament", id).Return(&Tournament{ID: id, Leaderboard: board}, nil).Once()
	board = recordAndCapture(t, service, mockRepo, id, userA, 68, false)
	assert.Len(t, board, 2)
	assert.Equal(t, userA, board[0].UserID)
	assert.Equal(t, 68, board[0].TotalScore)
	assert.Equal(t, userB, board[1].UserID)

	// A submits a worse 80; create mode leaves the entry alone.
	mockRepo.On("GetTournament", id).Return(&Tournament{ID: id, Leaderboard: board}, nil).Once()
	board = recordAndCapture(t, service, mockRepo, id, userA, 80, false)
	assert.Equal(t, 68, board[0].TotalScore)

	// Positions track the sorted order.
	for i, e := range board {
		assert.Equal(t, i, e.Position)
	}
}

func TestTournamentService_RecordScore_EditOverwrites(t *testing.T) {
	mockRepo := &MockTournamentRepository{}
	service := NewTournamentService(mockRepo)

	id := uuid.New()
	userA := uuid.New()
	board := []LeaderboardEntry{{TournamentID: id, UserID: userA, TotalScore: 68}}

	mockRepo.On("GetTournament", id).Return(&Tournament{ID: id, Leaderboard: board}, nil).Once()
	saved := recordAndCapture(t, service, mockRepo, id, userA, 90, true)
	assert.Len(t, saved, 1)
	assert.Equal(t, 90, saved[0].TotalScore)
}

func TestTournamentService_RecordScore_UniquePerUser(t *testing.T) {
	mockRepo := &MockTournamentRepository{}
	service := NewTournamentService(mockRepo)

	id := uuid.New()
	userA := uuid.New()
	board := []LeaderboardEntry{{TournamentID: id, UserID: userA, TotalScore: 75}}

	mockRepo.On("GetTournament", id).Return(&Tournament{ID: id, Leaderboard: board}, nil).Once()
	saved := recordAndCapture(t, service, mockRepo, id, userA, 70, false)
	assert.Len(t, saved, 1)
}

func TestTournamentService_RecordScore_TournamentMissing(t *testing.T) {
	mockRepo := &MockTournamentRepository{}
	service := NewTournamentService(mockRepo)

	id := uuid.New()
	mockRepo.On("GetTournament", id).Return(nil, nil)

	err := service.RecordScore(id, uuid.New(), 72, false)
	assert.NoError(t, err)
	mockRepo.AssertNotCalled(t, "SaveLeaderboard")
}

func TestTournamentService_Close_DerivesWinners(t *testing.T) {
	mockRepo := &MockTournamentRepository{}
	service := NewTournamentService(mockRepo)

	id := uuid.New()
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()
	mockRepo.On("GetTournament", id).Return(&Tournament{
		ID: id, Status: StatusActive,
		Leaderboard: []LeaderboardEntry{
			{UserID: a, TotalScore: 68, Position: 0},
			{UserID: b, TotalScore: 70, Position: 1},
			{UserID: c, TotalScore: 75, Position: 2},
			{UserID: d, TotalScore: 80, Position: 3},
		},
	}, nil)
	mockRepo.On("UpdateTournament", mock.AnythingOfType("*tournament.Tournament")).Return(nil)
	mockRepo.On("DropStandings", id).Return()

	closed, winners, err := service.Close(id)
	assert.NoError(t, err)
	assert.Equal(t, StatusCompleted, closed.Status)
	assert.Equal(t, a, winners.First.UserID)
	assert.Equal(t, b, winners.Second.UserID)
	assert.Equal(t, c, winners.Third.UserID)
	mockRepo.AssertCalled(t, "DropStandings", id)
}

func TestTournamentService_Close_AlreadyCompleted(t *testing.T) {
	mockRepo := &MockTournamentRepository{}
	service := NewTournamentService(mockRepo)

	id := uuid.New()
	mockRepo.On("GetTournament", id).Return(&Tournament{ID: id, Status: StatusCompleted}, nil)

	_, _, err := service.Close(id)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already completed")
	mockRepo.AssertNotCalled(t, "UpdateTournament")
	mockRepo.AssertNotCalled(t, "DropStandings")
}

func TestTournamentService_Close_EmptyLeaderboard(t *testing.T) {
	mockRepo := &MockTournamentRepository{}
	service := NewTournamentService(mockRepo)

	id := uuid.New()
	mockRepo.On("GetTournament", id).Return(&Tournament{ID: id, Status: StatusUpcoming}, nil)
	mockRepo.On("UpdateTournament", mock.AnythingOfType("*tournament.Tournament")).Return(nil)
	mockRepo.On("DropStandings", id).Return()

	_, winners, err := service.Close(id)
	assert.NoError(t, err)
	assert.Nil(t, winners.First)
	assert.Nil(t, winners.Second)
	assert.Nil(t, winners.Third)
}
