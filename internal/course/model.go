package course

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Hole struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	CourseID     uuid.UUID `gorm:"type:uuid;not null;index" json:"-"`
	Number       int       `gorm:"not null" json:"number"`
	Par          int       `gorm:"not null" json:"par"`
	HandicapRank int       `json:"handicap"`
	YardageBlack int       `json:"yardageBlack"`
	YardageBlue  int       `json:"yardageBlue"`
	YardageWhite int       `json:"yardageWhite"`
	YardageRed   int       `json:"yardageRed"`
}

func (h *Hole) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}

type Course struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Address   string    `json:"address"`
	City      string    `json:"city"`
	Country   string    `json:"country"`
	Holes     []Hole    `gorm:"foreignKey:CourseID;constraint:OnDelete:CASCADE" json:"holes"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type CourseRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
	Holes   []Hole `json:"holes"`
}
