package round

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusSubmitted Status = "submitted"
	StatusConfirmed Status = "confirmed"
	StatusRejected  Status = "rejected"
)

type HoleScore struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	RoundID        uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Number         int       `gorm:"not null" json:"number"`
	Par            int       `gorm:"not null" json:"par"`
	Strokes        int       `gorm:"not null" json:"strokes"`
	StrokesOverPar int       `gorm:"not null" json:"strokesOverPar"`
	Putts          *int      `json:"putts"`
	Club           string    `json:"club"`
}

func (h *HoleScore) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

type Round struct {
	ID           uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	UserID       uuid.UUID   `gorm:"type:uuid;not null;index" json:"userId"`
	CourseID     uuid.UUID   `gorm:"type:uuid;not null" json:"courseId"`
	TournamentID *uuid.UUID  `gorm:"type:uuid;index" json:"tournamentId"`
	Date         time.Time   `gorm:"not null" json:"date"`
	Tee          string      `gorm:"default:white" json:"tee"`
	Scores       []HoleScore `gorm:"foreignKey:RoundID;constraint:OnDelete:CASCADE" json:"scores"`
	TotalScore   int         `gorm:"not null" json:"totalScore"`
	TotalPar     int         `gorm:"not null" json:"totalPar"`
	Notes        string      `json:"notes"`
	Status       Status      `gorm:"not null;default:submitted" json:"status"`
	ConfirmedBy  *uuid.UUID  `gorm:"type:uuid" json:"confirmedBy"`
	ConfirmedAt  *time.Time  `json:"confirmedAt"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

func (r *Round) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

type HoleScoreInput struct {
	Number  int    `json:"number"`
	Par     int    `json:"par"`
	Strokes int    `json:"strokes"`
	Putts   *int   `json:"putts"`
	Club    string `json:"club"`
}

type RoundRequest struct {
	CourseID     uuid.UUID        `json:"courseId"`
	TournamentID *uuid.UUID       `json:"tournamentId"`
	Date         time.Time        `json:"date"`
	Tee          string           `json:"tee"`
	Scores       []HoleScoreInput `json:"scores"`
	Notes        string           `json:"notes"`
}

type RoundUpdate struct {
	Date   *time.Time        `json:"date"`
	Tee    *string           `json:"tee"`
	Scores *[]HoleScoreInput `json:"scores"`
	Notes  *string           `json:"notes"`
}

type ReviewRequest struct {
	Action string `json:"action"`
}
