package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/app/repositories"
	"github.com/yigit/unidash/internal/generator"
	"github.com/yigit/unidash/internal/pkg/apperrors"
	"github.com/yigit/unidash/internal/pkg/helpers"
	"github.com/yigit/unidash/internal/pkg/latency"
	"github.com/yigit/unidash/internal/pkg/websocket"
)

// CourseService defines the interface for course and enrollment operations
type CourseService interface {
	List(ctx context.Context, page, limit int) ([]*models.Course, models.Pagination, error)
	Get(ctx context.Context, id string) (*models.Course, error)
	Enroll(ctx context.Context, courseID, studentID string) (*models.Enrollment, error)
	Drop(ctx context.Context, courseID, studentID string) error
	StudentEnrollments(ctx context.Context, studentID string) ([]*models.Enrollment, error)
	CourseEnrollments(ctx context.Context, courseID string) ([]*models.Enrollment, error)
}

type courseServiceImpl struct {
	courseRepo     *repositories.CourseRepository
	studentRepo    *repositories.StudentRepository
	enrollmentRepo *repositories.EnrollmentRepository
	sim            *latency.Simulator
	notifier       Notifier
	enrollmentIDs  *sequence
	now            func() time.Time
	logger         zerolog.Logger
}

// NewCourseService creates a new course service instance
func NewCourseService(
	courseRepo *repositories.CourseRepository,
	studentRepo *repositories.StudentRepository,
	enrollmentRepo *repositories.EnrollmentRepository,
	sim *latency.Simulator,
	notifier Notifier,
	logger zerolog.Logger,
) CourseService {
	return &courseServiceImpl{
		courseRepo:     courseRepo,
		studentRepo:    studentRepo,
		enrollmentRepo: enrollmentRepo,
		sim:            sim,
		notifier:       notifier,
		enrollmentIDs:  newSequence("enrollment", enrollmentRepo.Count()),
		now:            time.Now,
		logger:         logger,
	}
}

// List returns one page of courses
func (s *courseServiceImpl) List(ctx context.Context, page, limit int) ([]*models.Course, models.Pagination, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, models.Pagination{}, err
	}

	courses, pagination := helpers.Paginate(s.courseRepo.All(), page, limit)
	return courses, pagination, nil
}

// Get returns a course by id
func (s *courseServiceImpl) Get(ctx context.Context, id string) (*models.Course, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}

	course, found := s.courseRepo.GetByID(id)
	if !found {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

// Enroll returns a new enrollment of the student in the course. The enrollment is
// not recorded and the course's enrolled count is left unchanged.
func (s *courseServiceImpl) Enroll(ctx context.Context, courseID, studentID string) (*models.Enrollment, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}

	course, courseFound := s.courseRepo.GetByID(courseID)
	_, studentFound := s.studentRepo.GetByID(studentID)
	if !courseFound || !studentFound {
		return nil, apperrors.ErrCourseOrStudentNotFound
	}

	if course.IsFull() {
		return nil, apperrors.ErrCourseFull
	}

	enrollment := &models.Enrollment{
		ID:         s.enrollmentIDs.Next(),
		StudentID:  studentID,
		CourseID:   courseID,
		Course:     generator.CopyCourse(course),
		Semester:   generator.CurrentSemester,
		Status:     models.EnrollmentEnrolled,
		EnrolledAt: s.now(),
	}

	s.logger.Info().
		Str("enrollmentID", enrollment.ID).
		Str("courseID", courseID).
		Str("studentID", studentID).
		Msg("Student enrolled in course")

	s.notifier.Notify(studentID, "Enrollment confirmed",
		fmt.Sprintf("You are enrolled in %s %s", course.Code, course.Name), websocket.TypeSuccess)

	return enrollment, nil
}

// Drop always succeeds and changes nothing
func (s *courseServiceImpl) Drop(ctx context.Context, courseID, studentID string) error {
	if err := s.sim.Wait(ctx); err != nil {
		return err
	}

	s.logger.Info().
		Str("courseID", courseID).
		Str("studentID", studentID).
		Msg("Student dropped course")

	s.notifier.Notify(studentID, "Course dropped",
		fmt.Sprintf("You have dropped %s", courseID), websocket.TypeInfo)

	return nil
}

// StudentEnrollments returns every enrollment of a student. Unknown students have none.
func (s *courseServiceImpl) StudentEnrollments(ctx context.Context, studentID string) ([]*models.Enrollment, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}
	return s.enrollmentRepo.ByStudent(studentID), nil
}

// CourseEnrollments returns every enrollment in a course
func (s *courseServiceImpl) CourseEnrollments(ctx context.Context, courseID string) ([]*models.Enrollment, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}
	return s.enrollmentRepo.ByCourse(courseID), nil
}
