package repositories

import (
	"github.com/yigit/unidash/internal/app/models"
)

// CourseRepository handles course lookups
type CourseRepository struct {
	courses []*models.Course
}

// NewCourseRepository creates a new CourseRepository
func NewCourseRepository(ds *models.Dataset) *CourseRepository {
	return &CourseRepository{courses: ds.Courses}
}

// All returns every course in generation order.
func (r *CourseRepository) All() []*models.Course {
	return r.courses
}

// GetByID returns the course with the given id.
func (r *CourseRepository) GetByID(id string) (*models.Course, bool) {
	for _, c := range r.courses {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}
