package tournament

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

type Format string

const (
	FormatStrokePlay Format = "stroke-play"
	FormatMatchPlay  Format = "match-play"
	FormatScramble   Format = "scramble"
)

type Participant struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TournamentID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tournament_user" json:"-"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_tournament_user" json:"userId"`
	RegistrationDate time.Time `json:"registrationDate"`
	Paid             bool      `json:"paid"`
}

func (p *Participant) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// LeaderboardEntry is one user's aggregate standing in a tournament. Position
// preserves the maintained sort order, including insertion order on ties.
type LeaderboardEntry struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	TournamentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_leaderboard_user" json:"-"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_leaderboard_user" json:"userId"`
	TotalScore   int       `gorm:"not null" json:"totalScore"`
	Position     int       `gorm:"not null" json:"position"`
}

func (e *LeaderboardEntry) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}

type Tournament struct {
	ID              uuid.UUID          `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string             `gorm:"not null" json:"name"`
	Description     string             `json:"description"`
	CourseID        uuid.UUID          `gorm:"type:uuid;not null;index" json:"courseId"`
	OrganizerID     uuid.UUID          `gorm:"type:uuid;not null" json:"organizerId"`
	StartDate       time.Time          `gorm:"not null" json:"startDate"`
	EndDate         time.Time          `gorm:"not null" json:"endDate"`
	Format          Format             `gorm:"not null" json:"format"`
	MaxParticipants int                `gorm:"not null" json:"maxParticipants"`
	EntryFee        float64            `json:"entryFee"`
	PrizeFirst      string             `json:"prizeFirst"`
	PrizeSecond     string             `json:"prizeSecond"`
	PrizeThird      string             `json:"prizeThird"`
	Status          Status             `gorm:"not null;default:upcoming" json:"status"`
	Participants    []Participant      `gorm:"foreignKey:TournamentID;constraint:OnDelete:CASCADE" json:"participants"`
	Leaderboard     []LeaderboardEntry `gorm:"foreignKey:TournamentID;constraint:OnDelete:CASCADE" json:"leaderboard"`
	CreatedAt       time.Time          `json:"createdAt"`
	UpdatedAt       time.Time          `json:"updatedAt"`
}

func (t *Tournament) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

type TournamentRequest struct {
	Name            string    `json:"name"`
	Description     string    `json:"description"`
	CourseID        uuid.UUID `json:"courseId"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	Format          Format    `json:"format"`
	MaxParticipants int       `json:"maxParticipants"`
	EntryFee        float64   `json:"entryFee"`
	PrizeFirst      string    `json:"prizeFirst"`
	PrizeSecond     string    `json:"prizeSecond"`
	PrizeThird      string    `json:"prizeThird"`
}

// Winners is the read-only top-3 projection derived when a tournament closes.
type Winners struct {
	First  *LeaderboardEntry `json:"first"`
	Second *LeaderboardEntry `json:"second"`
	Third  *LeaderboardEntry `json:"third"`
}
