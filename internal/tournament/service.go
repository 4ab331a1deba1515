package tournament

import (
	"log"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/golfpigeon/clubhouse/internal/apperrors"
)

// StandingsPublisher pushes a freshly sorted leaderboard to live subscribers.
type StandingsPublisher interface {
	PublishStandings(tournamentID string, entries []LeaderboardEntry)
}

type TournamentService struct {
	repo      TournamentRepository
	publisher StandingsPublisher
}

func NewTournamentService(repo TournamentRepository) *TournamentService {
	return &TournamentService{repo: repo}
}

func (s *TournamentService) SetPublisher(p StandingsPublisher) {
	s.publisher = p
}

func validateRequest(req *TournamentRequest) error {
	if req.Name == "" || req.CourseID == uuid.Nil || req.Format == "" ||
		req.MaxParticipants <= 0 || req.StartDate.IsZero() || req.EndDate.IsZero() {
		return apperrors.NewAppError(400, "missing required tournament fields", nil)
	}
	if !req.StartDate.Before(req.EndDate) {
		return apperrors.NewAppError(400, "end date must be after start date", nil)
	}
	return nil
}

func (s *TournamentService) CreateTournament(organizerID uuid.UUID, req *TournamentRequest) (*Tournament, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}
	if req.StartDate.Before(time.Now()) {
		return nil, apperrors.NewAppError(400, "start date must be in the future", nil)
	}

	t := &Tournament{
		Name:            req.Name,
		Description:     req.Description,
		CourseID:        req.CourseID,
		OrganizerID:     organizerID,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		Format:          req.Format,
		MaxParticipants: req.MaxParticipants,
		EntryFee:        req.EntryFee,
		PrizeFirst:      req.PrizeFirst,
		PrizeSecond:     req.PrizeSecond,
		PrizeThird:      req.PrizeThird,
		Status:          StatusUpcoming,
		Participants:    []Participant{},
		Leaderboard:     []LeaderboardEntry{},
	}
	if err := s.repo.CreateTournament(t); err != nil {
		return nil, apperrors.NewAppError(500, "error creating tournament", err)
	}
	return t, nil
}

func (s *TournamentService) UpdateTournament(id uuid.UUID, req *TournamentRequest) (*Tournament, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	t, err := s.GetTournament(id)
	if err != nil {
		return nil, err
	}

	t.Name = req.Name
	t.Description = req.Description
	t.CourseID = req.CourseID
	t.StartDate = req.StartDate
	t.EndDate = req.EndDate
	t.Format = req.Format
	t.MaxParticipants = req.MaxParticipants
	t.EntryFee = req.EntryFee
	t.PrizeFirst = req.PrizeFirst
	t.PrizeSecond = req.PrizeSecond
	t.PrizeThird = req.PrizeThird

	if err := s.repo.UpdateTournament(t); err != nil {
		return nil, apperrors.NewAppError(500, "error updating tournament", err)
	}
	return t, nil
}

func (s *TournamentService) GetTournament(id uuid.UUID) (*Tournament, error) {
	t, err := s.repo.GetTournament(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, apperrors.NewAppError(404, "tournament not found", nil)
	}
	return t, nil
}

func (s *TournamentService) ListTournaments() ([]Tournament, error) {
	return s.repo.ListTournaments()
}

// Register adds the user to an upcoming tournament with open capacity.
func (s *TournamentService) Register(tournamentID, userID uuid.UUID) error {
	t, err := s.GetTournament(tournamentID)
	if err != nil {
		return err
	}

	if t.Status != StatusUpcoming {
		return apperrors.NewAppError(409, "tournament registration is closed", nil)
	}
	for _, p := range t.Participants {
		if p.UserID == userID {
			return apperrors.NewAppError(409, "already registered for this tournament", nil)
		}
	}
	if len(t.Participants) >= t.MaxParticipants {
		return apperrors.NewAppError(409, "tournament is full", nil)
	}

	p := &Participant{
		TournamentID:     tournamentID,
		UserID:           userID,
		RegistrationDate: time.Now(),
		Paid:             false,
	}
	if err := s.repo.AddParticipant(p); err != nil {
		return apperrors.NewAppError(500, "error registering for tournament", err)
	}
	return nil
}

// Unregister is idempotent; removing a user who never registered is a no-op.
func (s *TournamentService) Unregister(tournamentID, userID uuid.UUID) error {
	if _, err := s.GetTournament(tournamentID); err != nil {
		return err
	}
	if err := s.repo.RemoveParticipant(tournamentID, userID); err != nil {
		return apperrors.NewAppError(500, "error unregistering from tournament", err)
	}
	return nil
}

// RecordScore feeds a round's total into the tournament leaderboard.
//
// On round creation (edit=false) an existing entry only improves: the new
// score replaces the stored one when strictly lower. On a round edit
// (edit=true) the new total overwrites the entry unconditionally. The
// leaderboard is then re-sorted ascending; ties keep insertion order.
//
// A missing tournament is a logged no-op so leaderboard maintenance never
// blocks round persistence.
func (s *TournamentService) RecordScore(tournamentID, userID uuid.UUID, totalScore int, edit bool) error {
	t, err := s.repo.GetTournament(tournamentID)
	if err != nil {
		return err
	}
	if t == nil {
		log.Printf("leaderboard update skipped, tournament %s not found", tournamentID)
		return nil
	}

	entries := t.Leaderboard
	found := false
	for i := range entries {
		if entries[i].UserID != userID {
			continue
		}
		found = true
		if edit || totalScore < entries[i].TotalScore {
			entries[i].TotalScore = totalScore
		}
		break
	}
	if !found {
		entries = append(entries, LeaderboardEntry{
			TournamentID: tournamentID,
			UserID:       userID,
			TotalScore:   totalScore,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].TotalScore < entries[j].TotalScore
	})
	for i := range entries {
		entries[i].Position = i
	}

	if err := s.repo.SaveLeaderboard(tournamentID, entries); err != nil {
		return err
	}

	if s.publisher != nil {
		s.publisher.PublishStandings(tournamentID.String(), entries)
	}
	return nil
}

// Close freezes the tournament and derives the podium from the leaderboard.
// Closing an already completed tournament fails.
func (s *TournamentService) Close(tournamentID uuid.UUID) (*Tournament, *Winners, error) {
	t, err := s.GetTournament(tournamentID)
	if err != nil {
		return nil, nil, err
	}
	if t.Status == StatusCompleted {
		return nil, nil, apperrors.NewAppError(409, "tournament is already completed", nil)
	}

	t.Status = StatusCompleted
	if err := s.repo.UpdateTournament(t); err != nil {
		return nil, nil, apperrors.NewAppError(500, "error closing tournament", err)
	}
	s.repo.DropStandings(tournamentID)

	winners := &Winners{}
	if len(t.Leaderboard) > 0 {
		winners.First = &t.Leaderboard[0]
	}
	if len(t.Leaderboard) > 1 {
		winners.Second = &t.Leaderboard[1]
	}
	if len(t.Leaderboard) > 2 {
		winners.Third = &t.Leaderboard[2]
	}
	return t, winners, nil
}
