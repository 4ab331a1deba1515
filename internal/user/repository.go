package user

import (
	"errors"

	"github.com/google/uuid"
	"github.com/golfpigeon/clubhouse/internal/apperrors"
	"github.com/golfpigeon/clubhouse/pkg/db"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserRepository interface {
	CreateUser(email, name, password string) (*User, error)
	ValidateUser(email, password string) (*User, error)
	GetUser(id uuid.UUID) (*User, error)
	ListUsers() ([]User, error)
	UpdateUser(u *User) error
	DeleteUser(id uuid.UUID) error
}

type GormUserRepository struct{}

func NewGormUserRepository() *GormUserRepository {
	return &GormUserRepository{}
}

func (r *GormUserRepository) CreateUser(email, name, password string) (*User, error) {
	var exists User
	result := db.DB.Where("email = ?", email).First(&exists)
	if result.Error == nil {
		return nil, apperrors.NewAppError(409, "user already exists", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return nil, err
	}
	newUser := User{
		Email:    email,
		Name:     name,
		Password: string(hashed),
		Role:     RoleUser,
		Units:    "imperial",
	}

	if err := db.DB.Create(&newUser).Error; err != nil {
		return nil, err
	}

	return &newUser, nil
}

func (r *GormUserRepository) ValidateUser(email, password string) (*User, error) {
	var u User
	if err := db.DB.Where("email = ?", email).First(&u).Error; err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, err
	}

	return &u, nil
}

func (r *GormUserRepository) GetUser(id uuid.UUID) (*User, error) {
	var u User
	result := db.DB.Where("id = ?", id).First(&u)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if result.Error != nil {
		return nil, result.Error
	}

	return &u, nil
}

func (r *GormUserRepository) ListUsers() ([]User, error) {
	var users []User
	if err := db.DB.Order("created_at asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *GormUserRepository) UpdateUser(u *User) error {
	return db.DB.Save(u).Error
}

func (r *GormUserRepository) DeleteUser(id uuid.UUID) error {
	return db.DB.Delete(&User{}, "id = ?", id).Error
}
