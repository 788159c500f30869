package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/app/repositories"
	"github.com/yigit/unidash/internal/pkg/apperrors"
	"github.com/yigit/unidash/internal/pkg/auth"
	"github.com/yigit/unidash/internal/pkg/latency"
	"github.com/yigit/unidash/internal/testutil"
)

type sentNotification struct {
	UserID, Title, Type string
}

type recordingNotifier struct {
	mu   sync.Mutex
	sent []sentNotification
}

func (n *recordingNotifier) Notify(userID, title, _, notificationType string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.sent = append(n.sent, sentNotification{UserID: userID, Title: title, Type: notificationType})
}

type fixture struct {
	ds       *models.Dataset
	svc      *Services
	jwt      *auth.JWTService
	notifier *recordingNotifier
}

func newFixture(t *testing.T, delay time.Duration) *fixture {
	t.Helper()
	ds := testutil.Dataset()
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:   "test-secret",
		Expiration:  time.Hour,
		TokenIssuer: "unidash-test",
	})
	notifier := &recordingNotifier{}
	svc := NewServices(repositories.NewRepositories(ds), jwtService, latency.New(delay), notifier, zerolog.Nop())
	return &fixture{ds: ds, svc: svc, jwt: jwtService, notifier: notifier}
}

func TestLogin(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	t.Run("generated student with demo password", func(t *testing.T) {
		res, err := f.svc.AuthService.Login(ctx, "kwame.mensah@test.edu", testutil.Password)
		require.NoError(t, err)
		assert.Equal(t, "student-1", res.User.Base().ID)
		assert.IsType(t, &models.Student{}, res.User)

		claims, err := f.jwt.ValidateToken(res.Token)
		require.NoError(t, err)
		assert.Equal(t, "student-1", claims.UserID)
		assert.Equal(t, models.RoleStudent, claims.Role)
	})

	t.Run("staff accounts can sign in", func(t *testing.T) {
		res, err := f.svc.AuthService.Login(ctx, "yaw.osei@test.edu", testutil.Password)
		require.NoError(t, err)
		assert.Equal(t, models.RoleFinance, res.User.Base().Role)
	})

	tests := []struct {
		name, email, password string
	}{
		{"wrong password", "kwame.mensah@test.edu", "password124"},
		{"unknown email", "nobody@test.edu", testutil.Password},
		{"empty password", "kwame.mensah@test.edu", ""},
		{"email with surrounding spaces", " kwame.mensah@test.edu ", testutil.Password},
		{"email in different case", "Kwame.Mensah@test.edu", testutil.Password},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := f.svc.AuthService.Login(ctx, tt.email, tt.password)
			assert.Nil(t, res)
			require.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
			assert.Equal(t, "Invalid email or password", apperrors.Message(err))
		})
	}
}

func TestStudentService(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	page, pagination, err := f.svc.StudentService.List(ctx, 2, 10)
	require.NoError(t, err)
	require.Len(t, page, 10)
	assert.Equal(t, "student-11", page[0].ID)
	assert.Equal(t, models.Pagination{Page: 2, Limit: 10, Total: 28, TotalPages: 3}, pagination)

	again, _, err := f.svc.StudentService.List(ctx, 2, 10)
	require.NoError(t, err)
	assert.Equal(t, page, again)

	empty, pagination, err := f.svc.StudentService.List(ctx, 9, 10)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
	assert.Equal(t, 3, pagination.TotalPages)

	student, err := f.svc.StudentService.Get(ctx, "student-2")
	require.NoError(t, err)
	assert.Equal(t, "STD100002", student.StudentID)

	_, err = f.svc.StudentService.Get(ctx, "student-999")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, "Student not found", apperrors.Message(err))
}

func TestCourseService_Get(t *testing.T) {
	f := newFixture(t, 0)

	course, err := f.svc.CourseService.Get(context.Background(), "course-1")
	require.NoError(t, err)
	assert.Equal(t, "CS101", course.Code)

	_, err = f.svc.CourseService.Get(context.Background(), "course-404")
	assert.Equal(t, "Course not found", apperrors.Message(err))
}

func TestCourseService_Enroll(t *testing.T) {
	ctx := context.Background()

	t.Run("success fabricates an unrecorded enrollment", func(t *testing.T) {
		f := newFixture(t, 0)
		enrollment, err := f.svc.CourseService.Enroll(ctx, "course-1", "student-2")
		require.NoError(t, err)

		assert.Equal(t, "enrollment-4", enrollment.ID)
		assert.Equal(t, models.EnrollmentEnrolled, enrollment.Status)
		assert.Equal(t, "CS101", enrollment.Course.Code)
		assert.Equal(t, 40, f.ds.Courses[0].Enrolled)
		assert.Len(t, f.ds.Enrollments, 3)

		next, err := f.svc.CourseService.Enroll(ctx, "course-1", "student-2")
		require.NoError(t, err)
		assert.Equal(t, "enrollment-5", next.ID)

		require.Len(t, f.notifier.sent, 2)
		assert.Equal(t, sentNotification{UserID: "student-2", Title: "Enrollment confirmed", Type: "success"}, f.notifier.sent[0])
	})

	t.Run("full course", func(t *testing.T) {
		f := newFixture(t, 0)
		_, err := f.svc.CourseService.Enroll(ctx, "course-2", "student-2")
		require.ErrorIs(t, err, apperrors.ErrCourseFull)
		assert.Equal(t, "Course is full", apperrors.Message(err))
		assert.Equal(t, 30, f.ds.Courses[1].Enrolled)
		assert.Empty(t, f.notifier.sent)
	})

	for _, ids := range [][2]string{{"course-404", "student-1"}, {"course-1", "student-404"}} {
		t.Run("unknown "+ids[0]+" "+ids[1], func(t *testing.T) {
			f := newFixture(t, 0)
			_, err := f.svc.CourseService.Enroll(ctx, ids[0], ids[1])
			assert.Equal(t, "Course or student not found", apperrors.Message(err))
		})
	}
}

func TestCourseService_Drop(t *testing.T) {
	f := newFixture(t, 0)
	require.NoError(t, f.svc.CourseService.Drop(context.Background(), "course-999", "student-999"))
	assert.Len(t, f.ds.Enrollments, 3)
}

func TestCourseService_Enrollments(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	byStudent, err := f.svc.CourseService.StudentEnrollments(ctx, "student-1")
	require.NoError(t, err)
	assert.Len(t, byStudent, 2)

	byCourse, err := f.svc.CourseService.CourseEnrollments(ctx, "course-1")
	require.NoError(t, err)
	assert.Len(t, byCourse, 2)

	none, err := f.svc.CourseService.StudentEnrollments(ctx, "student-28")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAnnouncementService_DefaultPage(t *testing.T) {
	f := newFixture(t, 0)

	page, pagination, err := f.svc.AnnouncementService.List(context.Background(), 2, 10)
	require.NoError(t, err)
	assert.Len(t, page, 2)
	assert.Equal(t, 2, pagination.TotalPages)
}

func TestPaymentService_FinancialStatement(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	statement, err := f.svc.PaymentService.FinancialStatement(ctx, "student-1")
	require.NoError(t, err)

	assert.Equal(t, float64(20000), statement.TotalFees)
	assert.Equal(t, float64(13000), statement.TotalPaid)
	assert.Equal(t, float64(7000), statement.Balance)
	assert.Len(t, statement.Payments, 4)
	assert.Equal(t, []models.FeeItem{
		{Name: "Tuition", Amount: 12000, Status: models.FeePaid},
		{Name: "Accommodation", Amount: 5000, Status: models.FeePartial},
		{Name: "Library", Amount: 1000, Status: models.FeeUnpaid},
		{Name: "Registration", Amount: 2000, Status: models.FeeUnpaid},
	}, statement.Breakdown)

	paidUp, err := f.svc.PaymentService.FinancialStatement(ctx, "student-3")
	require.NoError(t, err)
	assert.Equal(t, float64(0), paidUp.Balance)
	for _, item := range paidUp.Breakdown {
		assert.Equal(t, models.FeePaid, item.Status, item.Name)
	}

	nothing, err := f.svc.PaymentService.FinancialStatement(ctx, "student-2")
	require.NoError(t, err)
	assert.Equal(t, float64(20000), nothing.Balance)
	assert.NotNil(t, nothing.Payments)
	for _, item := range nothing.Breakdown {
		assert.Equal(t, models.FeeUnpaid, item.Status, item.Name)
	}
}

func TestFeeBreakdownBoundaries(t *testing.T) {
	statuses := func(paid float64) []models.FeeStatus {
		var out []models.FeeStatus
		for _, item := range feeBreakdown(paid) {
			out = append(out, item.Status)
		}
		return out
	}

	P, H, U := models.FeePaid, models.FeePartial, models.FeeUnpaid
	assert.Equal(t, []models.FeeStatus{U, U, U, U}, statuses(0))
	assert.Equal(t, []models.FeeStatus{U, U, U, U}, statuses(5000))
	assert.Equal(t, []models.FeeStatus{U, U, U, U}, statuses(11999))
	assert.Equal(t, []models.FeeStatus{P, U, U, U}, statuses(12000))
	assert.Equal(t, []models.FeeStatus{P, P, U, U}, statuses(17000))
	assert.Equal(t, []models.FeeStatus{P, H, U, U}, statuses(12000.5))
	assert.Equal(t, []models.FeeStatus{P, H, U, U}, statuses(16999))
	assert.Equal(t, []models.FeeStatus{P, P, U, U}, statuses(17500))
	assert.Equal(t, []models.FeeStatus{P, P, P, U}, statuses(18000))
	assert.Equal(t, []models.FeeStatus{P, P, P, U}, statuses(19000))
	assert.Equal(t, []models.FeeStatus{P, P, P, U}, statuses(19999))
	assert.Equal(t, []models.FeeStatus{P, P, P, P}, statuses(20000))
	assert.Equal(t, []models.FeeStatus{P, P, P, P}, statuses(25000))
}

func TestPaymentService_InitiateAndStatus(t *testing.T) {
	f := newFixture(t, 0)
	ctx := context.Background()

	payment, err := f.svc.PaymentService.Initiate(ctx, InitiatePaymentInput{
		StudentID:    "student-2",
		Amount:       1500,
		Type:         models.PaymentLibrary,
		MobileNumber: "0541234567",
	})
	require.NoError(t, err)
	assert.Equal(t, "payment-6", payment.ID)
	assert.Equal(t, models.PaymentPending, payment.Status)
	assert.Equal(t, models.ProviderMTN, payment.Provider)
	assert.Empty(t, payment.TransactionRef)
	assert.Nil(t, payment.CompletedAt)

	// Initiated payments are never recorded
	_, err = f.svc.PaymentService.Status(ctx, payment.ID)
	assert.Equal(t, "Payment not found", apperrors.Message(err))

	existing, err := f.svc.PaymentService.Status(ctx, "payment-1")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCompleted, existing.Status)
}

func TestNavigationCoversEveryRole(t *testing.T) {
	f := newFixture(t, 0)

	for _, role := range models.Roles() {
		items, err := f.svc.NavigationService.Menu(context.Background(), role)
		require.NoError(t, err, role)
		assert.NotEmpty(t, items, role)
		assert.Equal(t, "Dashboard", items[0].Label, role)
	}

	_, err := f.svc.NavigationService.Menu(context.Background(), models.Role("janitor"))
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestNavigationMenuIsACopy(t *testing.T) {
	f := newFixture(t, 0)

	items, err := f.svc.NavigationService.Menu(context.Background(), models.RoleStudent)
	require.NoError(t, err)
	items[0].Label = "changed"

	again, err := f.svc.NavigationService.Menu(context.Background(), models.RoleStudent)
	require.NoError(t, err)
	assert.Equal(t, "Dashboard", again[0].Label)
}

func TestLatencyIsAwaitedAndCancellable(t *testing.T) {
	f := newFixture(t, 50*time.Millisecond)

	start := time.Now()
	_, err := f.svc.StudentService.Get(context.Background(), "student-1")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, time.Since(start), 50*time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = f.svc.CourseService.Enroll(ctx, "course-1", "student-1")
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, f.notifier.sent)
}
