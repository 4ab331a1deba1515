package course

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/golfpigeon/clubhouse/internal/apperrors"
)

type CourseService struct {
	repo CourseRepository
}

func NewCourseService(repo CourseRepository) *CourseService {
	return &CourseService{repo: repo}
}

func validateHoles(holes []Hole) error {
	if len(holes) == 0 {
		return apperrors.NewAppError(400, "course must have at least one hole", nil)
	}
	seen := make(map[int]bool, len(holes))
	for _, h := range holes {
		if h.Number < 1 {
			return apperrors.NewAppError(400, "hole numbers must be positive", nil)
		}
		if seen[h.Number] {
			return apperrors.NewAppError(400, fmt.Sprintf("duplicate hole number %d", h.Number), nil)
		}
		seen[h.Number] = true
		if h.Par < 3 || h.Par > 6 {
			return apperrors.NewAppError(400, "par must be between 3 and 6", nil)
		}
	}
	return nil
}

func (s *CourseService) CreateCourse(req *CourseRequest) (*Course, error) {
	if req.Name == "" {
		return nil, apperrors.NewAppError(400, "course name is required", nil)
	}
	if err := validateHoles(req.Holes); err != nil {
		return nil, err
	}

	c := &Course{
		Name:    req.Name,
		Address: req.Address,
		City:    req.City,
		Country: req.Country,
		Holes:   req.Holes,
	}
	if err := s.repo.CreateCourse(c); err != nil {
		return nil, apperrors.NewAppError(500, "error creating course", err)
	}
	return c, nil
}

func (s *CourseService) GetCourse(id uuid.UUID) (*Course, error) {
	c, err := s.repo.GetCourse(id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperrors.NewAppError(404, "course not found", nil)
	}
	return c, nil
}

func (s *CourseService) ListCourses() ([]Course, error) {
	return s.repo.ListCourses()
}

// UpdateHoles replaces a course's hole layout. Pars are validated before
// anything is persisted.
func (s *CourseService) UpdateHoles(id uuid.UUID, holes []Hole) (*Course, error) {
	if _, err := s.GetCourse(id); err != nil {
		return nil, err
	}
	if err := validateHoles(holes); err != nil {
		return nil, err
	}

	updated, err := s.repo.ReplaceHoles(id, holes)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error updating course holes", err)
	}
	return updated, nil
}

// DeleteCourse refuses to remove a course that is still referenced by any
// tournament.
func (s *CourseService) DeleteCourse(id uuid.UUID) error {
	if _, err := s.GetCourse(id); err != nil {
		return err
	}

	count, err := s.repo.CountTournamentsUsing(id)
	if err != nil {
		return apperrors.NewAppError(500, "error checking course references", err)
	}
	if count > 0 {
		return apperrors.NewAppError(409,
			fmt.Sprintf("cannot delete course, it is used by %d tournament(s)", count), nil)
	}

	if err := s.repo.DeleteCourse(id); err != nil {
		return apperrors.NewAppError(500, "error deleting course", err)
	}
	return nil
}
