package services

import (
	"fmt"
	"sync/atomic"

	"github.com/rs/zerolog"
	"github.com/yigit/unidash/internal/app/repositories"
	"github.com/yigit/unidash/internal/pkg/auth"
	"github.com/yigit/unidash/internal/pkg/latency"
)

// Services defined in this package:
// - AuthService: signs accounts in against the generated snapshot
// - StudentService: lists and looks up students
// - CourseService: courses, enrollments and the enroll/drop operations
// - AnnouncementService: lists announcements
// - PaymentService: payment initiation, status and financial statements
// - NavigationService: the sidebar menu for each role
//
// Every operation awaits the latency simulator before touching data, so a cancelled
// context aborts the call before it has any effect.

// Notifier delivers a notification to every live session of a user
type Notifier interface {
	Notify(userID, title, message, notificationType string)
}

// NoopNotifier discards notifications. It is used when live notifications are disabled.
type NoopNotifier struct{}

// Notify implements Notifier
func (NoopNotifier) Notify(string, string, string, string) {}

// Services groups every service built over one snapshot
type Services struct {
	AuthService         AuthService
	StudentService      StudentService
	CourseService       CourseService
	AnnouncementService AnnouncementService
	PaymentService      PaymentService
	NavigationService   NavigationService
}

// NewServices wires all services over repos. A nil notifier disables notifications.
func NewServices(
	repos *repositories.Repositories,
	jwtService *auth.JWTService,
	sim *latency.Simulator,
	notifier Notifier,
	logger zerolog.Logger,
) *Services {
	if notifier == nil {
		notifier = NoopNotifier{}
	}

	return &Services{
		AuthService:         NewAuthService(repos.UserRepository, jwtService, sim, logger),
		StudentService:      NewStudentService(repos.StudentRepository, sim),
		CourseService:       NewCourseService(repos.CourseRepository, repos.StudentRepository, repos.EnrollmentRepository, sim, notifier, logger),
		AnnouncementService: NewAnnouncementService(repos.AnnouncementRepository, sim),
		PaymentService:      NewPaymentService(repos.PaymentRepository, sim, notifier, logger),
		NavigationService:   NewNavigationService(sim),
	}
}

// sequence hands out ids for records fabricated at runtime. It starts after the
// last generated id of its kind so fabricated ids never collide with generated ones.
type sequence struct {
	kind string
	last atomic.Int64
}

func newSequence(kind string, generated int) *sequence {
	s := &sequence{kind: kind}
	s.last.Store(int64(generated))
	return s
}

// Next returns the next unused id, e.g. "enrollment-301"
func (s *sequence) Next() string {
	return fmt.Sprintf("%s-%d", s.kind, s.last.Add(1))
}
