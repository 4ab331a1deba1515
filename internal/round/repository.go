package round

import (
	"errors"

	"github.com/google/uuid"
	"github.com/golfpigeon/clubhouse/pkg/db"
	"gorm.io/gorm"
)

type RoundRepository interface {
	CreateRound(r *Round) error
	GetRound(id uuid.UUID) (*Round, error)
	ListByUser(userID uuid.UUID) ([]Round, error)
	ListByStatus(status Status) ([]Round, error)
	UpdateRound(r *Round) error
}

type GormRoundRepository struct{}

func NewGormRoundRepository() *GormRoundRepository {
	return &GormRoundRepository{}
}

func preloadScores(tx *gorm.DB) *gorm.DB {
	return tx.Order("number asc")
}

func (r *GormRoundRepository) CreateRound(round *Round) error {
	return db.DB.Create(round).Error
}

func (r *GormRoundRepository) GetRound(id uuid.UUID) (*Round, error) {
	var round Round
	result := db.DB.Preload("Scores", preloadScores).Where("id = ?", id).First(&round)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if result.Error != nil {
		return nil, result.Error
	}
	return &round, nil
}

func (r *GormRoundRepository) ListByUser(userID uuid.UUID) ([]Round, error) {
	var rounds []Round
	err := db.DB.Preload("Scores", preloadScores).
		Where("user_id = ?", userID).
		Order("date desc").Find(&rounds).Error
	if err != nil {
		return nil, err
	}
	return rounds, nil
}

func (r *GormRoundRepository) ListByStatus(status Status) ([]Round, error) {
	var rounds []Round
	err := db.DB.Preload("Scores", preloadScores).
		Where("status = ?", status).
		Order("date desc").Find(&rounds).Error
	if err != nil {
		return nil, err
	}
	return rounds, nil
}

// UpdateRound rewrites the round row and its hole scores in one transaction.
func (r *GormRoundRepository) UpdateRound(round *Round) error {
	return db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("round_id = ?", round.ID).Delete(&HoleScore{}).Error; err != nil {
			return err
		}
		for i := range round.Scores {
			round.Scores[i].ID = uuid.Nil
			round.Scores[i].RoundID = round.ID
		}
		return tx.Save(round).Error
	})
}
