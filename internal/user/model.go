package user

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type Stats struct {
	TotalRounds  int  `json:"totalRounds"`
	AverageScore int  `json:"averageScore"`
	BestRound    *int `json:"bestRound"`
	TotalBirdies int  `json:"totalBirdies"`
	TotalEagles  int  `json:"totalEagles"`
}

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Name      string    `gorm:"not null" json:"name"`
	Password  string    `json:"-"`
	Handicap  float64   `json:"handicap"`
	Units     string    `gorm:"default:imperial" json:"units"`
	Role      Role      `gorm:"not null;default:user" json:"role"`
	Stats     Stats     `gorm:"embedded;embeddedPrefix:stats_" json:"stats"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

type SignupRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ProfileUpdate struct {
	Name     *string  `json:"name"`
	Handicap *float64 `json:"handicap"`
	Units    *string  `json:"units"`
}
