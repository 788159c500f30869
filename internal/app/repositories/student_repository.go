package repositories

import (
	"github.com/yigit/unidash/internal/app/models"
)

// StudentRepository handles student lookups
type StudentRepository struct {
	students []*models.Student
}

// NewStudentRepository creates a new StudentRepository
func NewStudentRepository(ds *models.Dataset) *StudentRepository {
	return &StudentRepository{students: ds.Students}
}

// All returns every student in generation order.
func (r *StudentRepository) All() []*models.Student {
	return r.students
}

// GetByID returns the student with the given id.
func (r *StudentRepository) GetByID(id string) (*models.Student, bool) {
	for _, s := range r.students {
		if s.ID == id {
			return s, true
		}
	}
	return nil, false
}
