package repositories

import (
	"github.com/yigit/unidash/internal/app/models"
)

// EnrollmentRepository handles enrollment lookups
type EnrollmentRepository struct {
	enrollments []*models.Enrollment
}

// NewEnrollmentRepository creates a new EnrollmentRepository
func NewEnrollmentRepository(ds *models.Dataset) *EnrollmentRepository {
	return &EnrollmentRepository{enrollments: ds.Enrollments}
}

// ByStudent returns the enrollments of studentID.
func (r *EnrollmentRepository) ByStudent(studentID string) []*models.Enrollment {
	return r.filter(func(e *models.Enrollment) bool { return e.StudentID == studentID })
}

// ByCourse returns the enrollments in courseID.
func (r *EnrollmentRepository) ByCourse(courseID string) []*models.Enrollment {
	return r.filter(func(e *models.Enrollment) bool { return e.CourseID == courseID })
}

// Count returns the number of generated enrollments.
func (r *EnrollmentRepository) Count() int {
	return len(r.enrollments)
}

func (r *EnrollmentRepository) filter(keep func(*models.Enrollment) bool) []*models.Enrollment {
	out := make([]*models.Enrollment, 0)
	for _, e := range r.enrollments {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
