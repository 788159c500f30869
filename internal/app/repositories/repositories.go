package repositories

import (
	"github.com/yigit/unidash/internal/app/models"
)

// Repositories expose read-only views over one generated Dataset. The dataset is
// never written after construction, so the repositories are safe for concurrent use
// without locking.
type Repositories struct {
	UserRepository         *UserRepository
	StudentRepository      *StudentRepository
	CourseRepository       *CourseRepository
	PaymentRepository      *PaymentRepository
	AnnouncementRepository *AnnouncementRepository
	EnrollmentRepository   *EnrollmentRepository
}

// NewRepositories initializes all repositories over ds
func NewRepositories(ds *models.Dataset) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(ds),
		StudentRepository:      NewStudentRepository(ds),
		CourseRepository:       NewCourseRepository(ds),
		PaymentRepository:      NewPaymentRepository(ds),
		AnnouncementRepository: NewAnnouncementRepository(ds),
		EnrollmentRepository:   NewEnrollmentRepository(ds),
	}
}
