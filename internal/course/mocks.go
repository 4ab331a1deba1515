package course

import (
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockCourseRepository struct {
	mock.Mock
}

func (m *MockCourseRepository) CreateCourse(c *Course) error {
	args := m.Called(c)
	return args.Error(0)
}

func (m *MockCourseRepository) GetCourse(id uuid.UUID) (*Course, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Course), args.Error(1)
}

func (m *MockCourseRepository) ListCourses() ([]Course, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]Course), args.Error(1)
}

func (m *MockCourseRepository) ReplaceHoles(courseID uuid.UUID, holes []Hole) (*Course, error) {
	args := m.Called(courseID, holes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Course), args.Error(1)
}

func (m *MockCourseRepository) DeleteCourse(id uuid.UUID) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockCourseRepository) CountTournamentsUsing(courseID uuid.UUID) (int64, error) {
	args := m.Called(courseID)
	return args.Get(0).(int64), args.Error(1)
}
