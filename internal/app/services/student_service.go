package services

import (
	"context"

	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/app/repositories"
	"github.com/yigit/unidash/internal/pkg/apperrors"
	"github.com/yigit/unidash/internal/pkg/helpers"
	"github.com/yigit/unidash/internal/pkg/latency"
)

// StudentService defines the interface for student-related operations
type StudentService interface {
	List(ctx context.Context, page, limit int) ([]*models.Student, models.Pagination, error)
	Get(ctx context.Context, id string) (*models.Student, error)
}

type studentServiceImpl struct {
	studentRepo *repositories.StudentRepository
	sim         *latency.Simulator
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo *repositories.StudentRepository, sim *latency.Simulator) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
		sim:         sim,
	}
}

// List returns one page of students
func (s *studentServiceImpl) List(ctx context.Context, page, limit int) ([]*models.Student, models.Pagination, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, models.Pagination{}, err
	}

	students, pagination := helpers.Paginate(s.studentRepo.All(), page, limit)
	return students, pagination, nil
}

// Get returns a student by id
func (s *studentServiceImpl) Get(ctx context.Context, id string) (*models.Student, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}

	student, found := s.studentRepo.GetByID(id)
	if !found {
		return nil, apperrors.ErrStudentNotFound
	}
	return student, nil
}
