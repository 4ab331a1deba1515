package user

import (
	"errors"
	"math"
	"os"

	"github.com/google/uuid"
	"github.com/golfpigeon/clubhouse/internal/apperrors"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// IsAdmin applies the shared authorization predicate: the admin role, or the
// configured fallback admin account.
func IsAdmin(u *User) bool {
	if u == nil {
		return false
	}
	return u.Role == RoleAdmin || (u.Email != "" && u.Email == os.Getenv("ADMIN_EMAIL"))
}

func (s *UserService) Signup(req SignupRequest) (string, error) {
	if req.Email == "" || req.Name == "" || req.Password == "" {
		return "", apperrors.NewAppError(400, "email, name and password are required", nil)
	}

	created, err := s.repo.CreateUser(req.Email, req.Name, req.Password)
	if err != nil {
		return "", err
	}

	token, errJWT := GenerateJWT(created.ID)
	if errJWT != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return token, nil
}

func (s *UserService) Login(creds Credentials) (string, error) {
	retrieved, err := s.repo.ValidateUser(creds.Email, creds.Password)
	if err != nil {
		return "", errors.New("invalid credentials")
	}
	token, errJWT := GenerateJWT(retrieved.ID)
	if errJWT != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return token, nil
}

func (s *UserService) GetUser(id uuid.UUID) (*User, error) {
	u, err := s.repo.GetUser(id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperrors.NewAppError(404, "user not found", nil)
	}
	return u, nil
}

func (s *UserService) UpdateProfile(id uuid.UUID, update ProfileUpdate) (*User, error) {
	u, err := s.GetUser(id)
	if err != nil {
		return nil, err
	}

	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Handicap != nil {
		u.Handicap = *update.Handicap
	}
	if update.Units != nil {
		if *update.Units != "imperial" && *update.Units != "metric" {
			return nil, apperrors.NewAppError(400, "units must be imperial or metric", nil)
		}
		u.Units = *update.Units
	}

	if err := s.repo.UpdateUser(u); err != nil {
		return nil, apperrors.NewAppError(500, "error updating profile", err)
	}
	return u, nil
}

// RecordRound folds a newly recorded total score into the player's running
// stats. The average is recomputed incrementally from the previous rounded
// average, so it can drift from the true mean over time; that matches the
// stored historical values and must not be "fixed" to a stored-sum mean.
func (s *UserService) RecordRound(userID uuid.UUID, totalScore, birdies, eagles int) error {
	u, err := s.repo.GetUser(userID)
	if err != nil {
		return err
	}
	if u == nil {
		return apperrors.NewAppError(404, "user not found", nil)
	}

	oldCount := u.Stats.TotalRounds
	u.Stats.TotalRounds = oldCount + 1
	u.Stats.AverageScore = int(math.Round(
		(float64(u.Stats.AverageScore)*float64(oldCount) + float64(totalScore)) / float64(oldCount+1)))

	if u.Stats.BestRound == nil || totalScore < *u.Stats.BestRound {
		best := totalScore
		u.Stats.BestRound = &best
	}

	u.Stats.TotalBirdies += birdies
	u.Stats.TotalEagles += eagles

	if err := s.repo.UpdateUser(u); err != nil {
		return apperrors.NewAppError(500, "error updating user stats", err)
	}
	return nil
}

func (s *UserService) ListUsers() ([]User, error) {
	return s.repo.ListUsers()
}

// ChangeRole promotes or demotes the target user. Admins cannot demote
// themselves.
func (s *UserService) ChangeRole(adminID, targetID uuid.UUID, action string) (*User, error) {
	target, err := s.GetUser(targetID)
	if err != nil {
		return nil, err
	}

	switch action {
	case "promote":
		target.Role = RoleAdmin
	case "demote":
		if targetID == adminID {
			return nil, apperrors.NewAppError(409, "cannot demote yourself", nil)
		}
		target.Role = RoleUser
	default:
		return nil, apperrors.NewAppError(400, "invalid action, use promote or demote", nil)
	}

	if err := s.repo.UpdateUser(target); err != nil {
		return nil, apperrors.NewAppError(500, "error updating user role", err)
	}
	return target, nil
}

func (s *UserService) DeleteUser(adminID, targetID uuid.UUID) error {
	if targetID == adminID {
		return apperrors.NewAppError(409, "cannot delete yourself", nil)
	}

	target, err := s.GetUser(targetID)
	if err != nil {
		return err
	}

	if err := s.repo.DeleteUser(target.ID); err != nil {
		return apperrors.NewAppError(500, "error deleting user", err)
	}
	return nil
}
