package round

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/golfpigeon/clubhouse/internal/apperrors"
)

// StatsRecorder folds a recorded score into the owning player's stats.
type StatsRecorder interface {
	RecordRound(userID uuid.UUID, totalScore, birdies, eagles int) error
}

// LeaderboardUpdater feeds a tournament round's total into the standings.
// edit=true means an existing round was changed rather than a new one created.
type LeaderboardUpdater interface {
	RecordScore(tournamentID, userID uuid.UUID, totalScore int, edit bool) error
}

type RoundService struct {
	repo        RoundRepository
	stats       StatsRecorder
	leaderboard LeaderboardUpdater
}

func NewRoundService(repo RoundRepository, stats StatsRecorder, leaderboard LeaderboardUpdater) *RoundService {
	return &RoundService{repo: repo, stats: stats, leaderboard: leaderboard}
}

// attempt runs a decoupled side effect. Failures are logged, never surfaced:
// round persistence must not depend on stats or leaderboard writes.
func attempt(action string, fn func() error) {
	if err := fn(); err != nil {
		log.Printf("best-effort %s failed: %v", action, err)
	}
}

// buildScores derives strokesOverPar and the round totals from the submitted
// holes, so the stored totals always equal the hole sums.
func buildScores(inputs []HoleScoreInput) ([]HoleScore, int, int, error) {
	if len(inputs) == 0 {
		return nil, 0, 0, apperrors.NewAppError(400, "round must include at least one hole score", nil)
	}

	scores := make([]HoleScore, 0, len(inputs))
	totalScore, totalPar := 0, 0
	for _, in := range inputs {
		if in.Number < 1 {
			return nil, 0, 0, apperrors.NewAppError(400, "hole numbers must be positive", nil)
		}
		if in.Par < 3 || in.Par > 6 {
			return nil, 0, 0, apperrors.NewAppError(400, "par must be between 3 and 6", nil)
		}
		if in.Strokes < 1 {
			return nil, 0, 0, apperrors.NewAppError(400, "strokes must be at least 1", nil)
		}
		scores = append(scores, HoleScore{
			Number:         in.Number,
			Par:            in.Par,
			Strokes:        in.Strokes,
			StrokesOverPar: in.Strokes - in.Par,
			Putts:          in.Putts,
			Club:           in.Club,
		})
		totalScore += in.Strokes
		totalPar += in.Par
	}
	return scores, totalScore, totalPar, nil
}

func countBirdiesEagles(scores []HoleScore) (birdies, eagles int) {
	for _, s := range scores {
		switch {
		case s.StrokesOverPar == -1:
			birdies++
		case s.StrokesOverPar <= -2:
			eagles++
		}
	}
	return
}

// CreateRound persists a submitted round and then runs the stats and
// leaderboard updates as best-effort side effects.
func (s *RoundService) CreateRound(userID uuid.UUID, req *RoundRequest) (*Round, error) {
	if req.CourseID == uuid.Nil {
		return nil, apperrors.NewAppError(400, "courseId is required", nil)
	}

	scores, totalScore, totalPar, err := buildScores(req.Scores)
	if err != nil {
		return nil, err
	}

	date := req.Date
	if date.IsZero() {
		date = time.Now()
	}
	tee := req.Tee
	if tee == "" {
		tee = "white"
	}

	round := &Round{
		UserID:       userID,
		CourseID:     req.CourseID,
		TournamentID: req.TournamentID,
		Date:         date,
		Tee:          tee,
		Scores:       scores,
		TotalScore:   totalScore,
		TotalPar:     totalPar,
		Notes:        req.Notes,
		Status:       StatusSubmitted,
	}
	if err := s.repo.CreateRound(round); err != nil {
		return nil, apperrors.NewAppError(500, "error creating round", err)
	}

	birdies, eagles := countBirdiesEagles(scores)
	attempt("player stats update", func() error {
		return s.stats.RecordRound(userID, totalScore, birdies, eagles)
	})

	if round.TournamentID != nil {
		attempt("leaderboard update", func() error {
			return s.leaderboard.RecordScore(*round.TournamentID, userID, totalScore, false)
		})
	}

	return round, nil
}

func (s *RoundService) GetRound(actorID uuid.UUID, isAdmin bool, id uuid.UUID) (*Round, error) {
	round, err := s.repo.GetRound(id)
	if err != nil {
		return nil, err
	}
	if round == nil {
		return nil, apperrors.NewAppError(404, "round not found", nil)
	}
	if round.UserID != actorID && !isAdmin {
		return nil, apperrors.NewAppError(403, "access denied", nil)
	}
	return round, nil
}

// ListRounds returns the actor's own rounds; admins may instead filter every
// round by review status.
func (s *RoundService) ListRounds(actorID uuid.UUID, isAdmin bool, status Status) ([]Round, error) {
	if isAdmin && status != "" {
		return s.repo.ListByStatus(status)
	}
	return s.repo.ListByUser(actorID)
}

// UpdateRound applies an edit under the review rules: owners may edit
// submitted or rejected rounds (resetting review state), admins may edit
// anything without disturbing it.
func (s *RoundService) UpdateRound(actorID uuid.UUID, isAdmin bool, id uuid.UUID, update *RoundUpdate) (*Round, error) {
	round, err := s.repo.GetRound(id)
	if err != nil {
		return nil, err
	}
	if round == nil {
		return nil, apperrors.NewAppError(404, "round not found", nil)
	}
	if round.UserID != actorID && !isAdmin {
		return nil, apperrors.NewAppError(403, "access denied", nil)
	}
	if !isAdmin && round.Status == StatusConfirmed {
		return nil, apperrors.NewAppError(403, "cannot edit confirmed scores", nil)
	}

	if update.Date != nil {
		round.Date = *update.Date
	}
	if update.Tee != nil {
		round.Tee = *update.Tee
	}
	if update.Notes != nil {
		round.Notes = *update.Notes
	}
	if update.Scores != nil {
		scores, totalScore, totalPar, err := buildScores(*update.Scores)
		if err != nil {
			return nil, err
		}
		round.Scores = scores
		round.TotalScore = totalScore
		round.TotalPar = totalPar
	}

	if !isAdmin {
		round.Status = StatusSubmitted
		round.ConfirmedBy = nil
		round.ConfirmedAt = nil
	}

	if err := s.repo.UpdateRound(round); err != nil {
		return nil, apperrors.NewAppError(500, "error updating round", err)
	}

	if round.TournamentID != nil {
		attempt("leaderboard update", func() error {
			return s.leaderboard.RecordScore(*round.TournamentID, round.UserID, round.TotalScore, true)
		})
	}

	return round, nil
}

// Review confirms or rejects a submitted round. A confirmed round cannot be
// reviewed again.
func (s *RoundService) Review(adminID, id uuid.UUID, action string) (*Round, error) {
	if action != "confirm" && action != "reject" {
		return nil, apperrors.NewAppError(400, "invalid action, use confirm or reject", nil)
	}

	round, err := s.repo.GetRound(id)
	if err != nil {
		return nil, err
	}
	if round == nil {
		return nil, apperrors.NewAppError(404, "round not found", nil)
	}
	if round.Status == StatusConfirmed {
		return nil, apperrors.NewAppError(409, "round is already confirmed", nil)
	}

	if action == "confirm" {
		round.Status = StatusConfirmed
	} else {
		round.Status = StatusRejected
	}
	now := time.Now()
	round.ConfirmedBy = &adminID
	round.ConfirmedAt = &now

	if err := s.repo.UpdateRound(round); err != nil {
		return nil, apperrors.NewAppError(500, "error reviewing round", err)
	}
	return round, nil
}
