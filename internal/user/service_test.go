package user

import (
	"errors"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockGenerateJWT is a helper to override GenerateJWT in tests
var mockGenerateJWT func(id uuid.UUID) (string, error)

func TestMain(m *testing.M) {
	orig := GenerateJWT
	GenerateJWT = func(id uuid.UUID) (string, error) {
		if mockGenerateJWT != nil {
			return mockGenerateJWT(id)
		}
		return orig(id)
	}
	code := m.Run()
	GenerateJWT = orig
	os.Exit(code)
}

func TestUserService_Signup(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	created := &User{ID: uuid.New(), Email: "test@club.com", Name: "Test"}
	mockRepo.On("CreateUser", "test@club.com", "Test", "pass").Return(created, nil)
	mockGenerateJWT = func(id uuid.UUID) (string, error) { return "token123", nil }

	token, err := service.Signup(SignupRequest{Email: "test@club.com", Name: "Test", Password: "pass"})
	assert.NoError(t, err)
	assert.Equal(t, "token123", token)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Signup_MissingFields(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	_, err := service.Signup(SignupRequest{Email: "test@club.com"})
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "CreateUser")
}

func TestUserService_Login(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	u := &User{ID: uuid.New(), Email: "foo@club.com"}
	mockRepo.On("ValidateUser", "foo@club.com", "bar").Return(u, nil)
	mockGenerateJWT = func(id uuid.UUID) (string, error) { return "tok456", nil }

	token, err := service.Login(Credentials{Email: "foo@club.com", Password: "bar"})
	assert.NoError(t, err)
	assert.Equal(t, "tok456", token)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	mockRepo.On("ValidateUser", "foo@club.com", "wrong").Return(nil, errors.New("no"))

	_, err := service.Login(Credentials{Email: "foo@club.com", Password: "wrong"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid credentials")
}

func TestUserService_RecordRound_UpdatesStats(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	id := uuid.New()
	best := 88
	u := &User{ID: id, Stats: Stats{TotalRounds: 2, AverageScore: 90, BestRound: &best}}
	mockRepo.On("GetUser", id).Return(u, nil)
	mockRepo.On("UpdateUser", mock.AnythingOfType("*user.User")).Return(nil)

	err := service.RecordRound(id, 85, 1, 0)
	assert.NoError(t, err)
	assert.Equal(t, 3, u.Stats.TotalRounds)
	assert.Equal(t, 88, u.Stats.AverageScore) // round((90*2+85)/3)
	assert.Equal(t, 85, *u.Stats.BestRound)
	assert.Equal(t, 1, u.Stats.TotalBirdies)
	mockRepo.AssertExpectations(t)
}

func TestUserService_RecordRound_FirstRound(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	id := uuid.New()
	u := &User{ID: id}
	mockRepo.On("GetUser", id).Return(u, nil)
	mockRepo.On("UpdateUser", mock.AnythingOfType("*user.User")).Return(nil)

	err := service.RecordRound(id, 92, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, 1, u.Stats.TotalRounds)
	assert.Equal(t, 92, u.Stats.AverageScore)
	assert.Equal(t, 92, *u.Stats.BestRound)
}

func TestUserService_RecordRound_WorseScoreKeepsBest(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	id := uuid.New()
	best := 80
	u := &User{ID: id, Stats: Stats{TotalRounds: 1, AverageScore: 80, BestRound: &best}}
	mockRepo.On("GetUser", id).Return(u, nil)
	mockRepo.On("UpdateUser", mock.AnythingOfType("*user.User")).Return(nil)

	err := service.RecordRound(id, 95, 0, 0)
	assert.NoError(t, err)
	assert.Equal(t, 80, *u.Stats.BestRound)
	assert.Equal(t, 88, u.Stats.AverageScore) // round((80+95)/2)
}

func TestUserService_RecordRound_UserNotFound(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	id := uuid.New()
	mockRepo.On("GetUser", id).Return(nil, nil)

	err := service.RecordRound(id, 85, 0, 0)
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "UpdateUser")
}

func TestUserService_ChangeRole_Promote(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	adminID := uuid.New()
	targetID := uuid.New()
	target := &User{ID: targetID, Role: RoleUser}
	mockRepo.On("GetUser", targetID).Return(target, nil)
	mockRepo.On("UpdateUser", target).Return(nil)

	updated, err := service.ChangeRole(adminID, targetID, "promote")
	assert.NoError(t, err)
	assert.Equal(t, RoleAdmin, updated.Role)
}

func TestUserService_ChangeRole_DemoteSelf(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	adminID := uuid.New()
	target := &User{ID: adminID, Role: RoleAdmin}
	mockRepo.On("GetUser", adminID).Return(target, nil)

	_, err := service.ChangeRole(adminID, adminID, "demote")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot demote yourself")
	mockRepo.AssertNotCalled(t, "UpdateUser")
}

func TestUserService_DeleteUser_Self(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	adminID := uuid.New()
	err := service.DeleteUser(adminID, adminID)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "cannot delete yourself")
}

func TestIsAdmin(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@golfpigeon.com")

	assert.True(t, IsAdmin(&User{Role: RoleAdmin}))
	assert.True(t, IsAdmin(&User{Role: RoleUser, Email: "admin@golfpigeon.com"}))
	assert.False(t, IsAdmin(&User{Role: RoleUser, Email: "user@club.com"}))
	assert.False(t, IsAdmin(nil))
}
