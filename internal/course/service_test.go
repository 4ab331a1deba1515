package course

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func validLayout() []Hole {
	return []Hole{
		{Number: 1, Par: 4, HandicapRank: 5},
		{Number: 2, Par: 3, HandicapRank: 17},
		{Number: 3, Par: 5, HandicapRank: 1},
	}
}

func TestCourseService_CreateCourse(t *testing.T) {
	mockRepo := &MockCourseRepository{}
	service := NewCourseService(mockRepo)

	mockRepo.On("CreateCourse", mock.AnythingOfType("*course.Course")).Return(nil)

	c, err := service.CreateCourse(&CourseRequest{Name: "Pebble Creek", Holes: validLayout()})
	assert.NoError(t, err)
	assert.Equal(t, "Pebble Creek", c.Name)
	assert.Len(t, c.Holes, 3)
	mockRepo.AssertExpectations(t)
}

func TestCourseService_CreateCourse_MissingName(t *testing.T) {
	mockRepo := &MockCourseRepository{}
	service := NewCourseService(mockRepo)

	_, err := service.CreateCourse(&CourseRequest{Holes: validLayout()})
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "CreateCourse")
}

func TestCourseService_UpdateHoles_ChangesPar(t *testing.T) {
	mockRepo := &MockCourseRepository{}
	service := NewCourseService(mockRepo)

	id := uuid.New()
	holes := validLayout()
	holes[1].Par = 5
	existing := &Course{ID: id, Name: "Pebble Creek"}
	updated := &Course{ID: id, Name: "Pebble Creek", Holes: holes}
	mockRepo.On("GetCourse", id).Return(existing, nil)
	mockRepo.On("ReplaceHoles", id, holes).Return(updated, nil)

	result, err := service.UpdateHoles(id, holes)
	assert.NoError(t, err)
	assert.Equal(t, 5, result.Holes[1].Par)
	mockRepo.AssertExpectations(t)
}

func TestCourseService_UpdateHoles_ParOutOfRange(t *testing.T) {
	mockRepo := &MockCourseRepository{}
	service := NewCourseService(mockRepo)

	id := uuid.New()
	mockRepo.On("GetCourse", id).Return(&Course{ID: id}, nil)

	holes := validLayout()
	holes[0].Par = 7

	_, err := service.UpdateHoles(id, holes)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "par must be between 3 and 6")
	mockRepo.AssertNotCalled(t, "ReplaceHoles")
}

func TestCourseService_UpdateHoles_DuplicateNumber(t *testing.T) {
	mockRepo := &MockCourseRepository{}
	service := NewCourseService(mockRepo)

	id := uuid.New()
	mockRepo.On("GetCourse", id).Return(&Course{ID: id}, nil)

	holes := []Hole{{Number: 1, Par: 4}, {Number: 1, Par: 3}}

	_, err := service.UpdateHoles(id, holes)
	assert.Error(t, err)
	mockRepo.AssertNotCalled(t, "ReplaceHoles")
}

func TestCourseService_DeleteCourse_StillReferenced(t *testing.T) {
	mockRepo := &MockCourseRepository{}
	service := NewCourseService(mockRepo)

	id := uuid.New()
	mockRepo.On("GetCourse", id).Return(&Course{ID: id}, nil)
	mockRepo.On("CountTournamentsUsing", id).Return(int64(2), nil)

	err := service.DeleteCourse(id)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "used by 2 tournament(s)")
	mockRepo.AssertNotCalled(t, "DeleteCourse")
}

func TestCourseService_DeleteCourse_Success(t *testing.T) {
	mockRepo := &MockCourseRepository{}
	service := NewCourseService(mockRepo)

	id := uuid.New()
	mockRepo.On("GetCourse", id).Return(&Course{ID: id}, nil)
	mockRepo.On("CountTournamentsUsing", id).Return(int64(0), nil)
	mockRepo.On("DeleteCourse", id).Return(nil)

	err := service.DeleteCourse(id)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestCourseService_GetCourse_NotFound(t *testing.T) {
	mockRepo := &MockCourseRepository{}
	service := NewCourseService(mockRepo)

	id := uuid.New()
	mockRepo.On("GetCourse", id).Return(nil, nil)

	_, err := service.GetCourse(id)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "course not found")
}
