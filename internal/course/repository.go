package course

import (
	"errors"

	"github.com/google/uuid"
	"github.com/golfpigeon/clubhouse/pkg/db"
	"gorm.io/gorm"
)

type CourseRepository interface {
	CreateCourse(c *Course) error
	GetCourse(id uuid.UUID) (*Course, error)
	ListCourses() ([]Course, error)
	ReplaceHoles(courseID uuid.UUID, holes []Hole) (*Course, error)
	DeleteCourse(id uuid.UUID) error
	CountTournamentsUsing(courseID uuid.UUID) (int64, error)
}

type GormCourseRepository struct{}

func NewGormCourseRepository() *GormCourseRepository {
	return &GormCourseRepository{}
}

func (r *GormCourseRepository) CreateCourse(c *Course) error {
	return db.DB.Create(c).Error
}

func (r *GormCourseRepository) GetCourse(id uuid.UUID) (*Course, error) {
	var c Course
	result := db.DB.Preload("Holes", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("number asc")
	}).Where("id = ?", id).First(&c)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	} else if result.Error != nil {
		return nil, result.Error
	}
	return &c, nil
}

func (r *GormCourseRepository) ListCourses() ([]Course, error) {
	var courses []Course
	if err := db.DB.Preload("Holes", func(tx *gorm.DB) *gorm.DB {
		return tx.Order("number asc")
	}).Order("name asc").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *GormCourseRepository) ReplaceHoles(courseID uuid.UUID, holes []Hole) (*Course, error) {
	err := db.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", courseID).Delete(&Hole{}).Error; err != nil {
			return err
		}
		for i := range holes {
			holes[i].ID = uuid.Nil
			holes[i].CourseID = courseID
		}
		return tx.Create(&holes).Error
	})
	if err != nil {
		return nil, err
	}
	return r.GetCourse(courseID)
}

func (r *GormCourseRepository) DeleteCourse(id uuid.UUID) error {
	return db.DB.Select("Holes").Delete(&Course{ID: id}).Error
}

// CountTournamentsUsing queries the tournaments table directly to keep the
// package dependency one-way.
func (r *GormCourseRepository) CountTournamentsUsing(courseID uuid.UUID) (int64, error) {
	var count int64
	err := db.DB.Table("tournaments").Where("course_id = ?", courseID).Count(&count).Error
	return count, err
}
