package generator

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/pkg/auth"
)

var fixedNow = time.Date(2024, time.October, 1, 9, 0, 0, 0, time.UTC)

func newTestGenerator(t *testing.T, seed int64) *Generator {
	t.Helper()
	g, err := NewGenerator(Options{
		Seed:         seed,
		DemoPassword: "password123",
		BcryptCost:   bcrypt.MinCost,
		Now:          func() time.Time { return fixedNow },
	})
	require.NoError(t, err)
	return g
}

func TestGenerateStudents(t *testing.T) {
	g := newTestGenerator(t, 1)
	students := g.GenerateStudents(200)
	require.Len(t, students, 200)

	for i, s := range students {
		assert.Equal(t, fmt.Sprintf("student-%d", i+1), s.ID)
		assert.Equal(t, models.RoleStudent, s.Role)
		assert.NotEmpty(t, s.StudentID)

		assert.GreaterOrEqual(t, s.Year, 1)
		assert.LessOrEqual(t, s.Year, 4)
		assert.Contains(t, []int{1, 2}, s.Semester)

		k := s.CreditsEarned - s.Year*30
		assert.GreaterOrEqual(t, k, 0, "credits for %s", s.ID)
		assert.LessOrEqual(t, k, 30, "credits for %s", s.ID)
		assert.Equal(t, CreditsRequired, s.CreditsRequired)

		assert.GreaterOrEqual(t, s.GPA, 2.5)
		assert.LessOrEqual(t, s.GPA, 4.0)

		wantEmail := strings.ToLower(s.FirstName + "." + s.LastName + "@university.edu.gh")
		assert.Equal(t, wantEmail, s.Email)
		assert.Equal(t, s.FirstName+" "+s.LastName, s.Name)

		require.Len(t, s.Phone, 10)
		assert.Contains(t, phonePrefixes, s.Phone[:3])
	}
}

func TestGeneratedAccountsShareDemoPassword(t *testing.T) {
	g := newTestGenerator(t, 2)
	student := g.GenerateStudents(1)[0]
	lecturer := g.GenerateLecturers(1)[0]

	assert.True(t, auth.CheckPassword(student.PasswordHash, "password123"))
	assert.True(t, auth.CheckPassword(lecturer.PasswordHash, "password123"))
	assert.False(t, auth.CheckPassword(student.PasswordHash, "password124"))
}

func TestGenerateCourses(t *testing.T) {
	g := newTestGenerator(t, 3)
	lecturers := g.GenerateLecturers(5)
	courses := g.GenerateCourses(lecturers, 100)

	require.Len(t, courses, len(courseCatalog), "course count is capped to the catalog")

	lecturerByID := make(map[string]*models.Lecturer)
	for _, l := range lecturers {
		lecturerByID[l.ID] = l
	}

	codes := make(map[string]bool)
	for i, c := range courses {
		assert.Equal(t, fmt.Sprintf("course-%d", i+1), c.ID)
		assert.False(t, codes[c.Code], "duplicate code %s", c.Code)
		codes[c.Code] = true

		assert.GreaterOrEqual(t, c.Capacity, 30)
		assert.LessOrEqual(t, c.Capacity, 100)
		assert.Less(t, c.Enrolled, c.Capacity)
		assert.GreaterOrEqual(t, c.Enrolled, 15)
		assert.LessOrEqual(t, c.Enrolled, c.Capacity-5)
		if c.Waitlisted > 0 {
			assert.GreaterOrEqual(t, c.Enrolled, c.Capacity-5)
		}

		require.Len(t, c.Schedule, 2)
		assert.NotEqual(t, c.Schedule[0].Day, c.Schedule[1].Day)

		lecturer, ok := lecturerByID[c.LecturerID]
		require.True(t, ok, "course %s references unknown lecturer", c.ID)
		assert.Equal(t, lecturer.DisplayName(), c.LecturerName)
	}
}

func TestGenerateCoursesWithoutLecturers(t *testing.T) {
	g := newTestGenerator(t, 4)
	assert.Empty(t, g.GenerateCourses(nil, 5))
}

func TestGeneratePayments(t *testing.T) {
	g := newTestGenerator(t, 5)
	students := g.GenerateStudents(30)
	payments := g.GeneratePayments(students, 2000)
	require.Len(t, payments, 2000)

	studentIDs := make(map[string]bool)
	for _, s := range students {
		studentIDs[s.ID] = true
	}

	completed := 0
	for _, p := range payments {
		assert.True(t, studentIDs[p.StudentID])

		bounds := paymentAmounts[p.Type]
		assert.GreaterOrEqual(t, p.Amount, float64(bounds.Min))
		assert.LessOrEqual(t, p.Amount, float64(bounds.Max))
		assert.Contains(t, models.Providers, p.Provider)

		if p.Status == models.PaymentCompleted {
			completed++
			assert.NotEmpty(t, p.TransactionRef)
			require.NotNil(t, p.CompletedAt)
			assert.True(t, p.CompletedAt.After(p.CreatedAt))
		} else {
			assert.Empty(t, p.TransactionRef)
			assert.Nil(t, p.CompletedAt)
		}
	}

	ratio := float64(completed) / float64(len(payments))
	assert.InDelta(t, 0.8, ratio, 0.05)
}

func TestGenerateAnnouncementsClampedToCatalog(t *testing.T) {
	g := newTestGenerator(t, 6)
	assert.Len(t, g.GenerateAnnouncements(3), 3)

	all := g.GenerateAnnouncements(1000)
	require.Len(t, all, len(announcementCatalog))
	for _, a := range all {
		assert.Contains(t, announcementTypes, a.Type)
		assert.Contains(t, priorities, a.Priority)
	}
}

func TestGenerateEnrollments(t *testing.T) {
	g := newTestGenerator(t, 7)
	students := g.GenerateStudents(20)
	courses := g.GenerateCourses(g.GenerateLecturers(4), 10)
	enrollments := g.GenerateEnrollments(students, courses, 1000)
	require.Len(t, enrollments, 1000)

	enrolled, graded := 0, 0
	for _, e := range enrollments {
		assert.Equal(t, e.CourseID, e.Course.ID)
		assert.Contains(t, []models.EnrollmentStatus{models.EnrollmentEnrolled, models.EnrollmentWaitlisted}, e.Status)
		if e.Status == models.EnrollmentEnrolled {
			enrolled++
		}
		if e.Grade != "" {
			graded++
			want, ok := models.GradePoints(e.Grade)
			require.True(t, ok)
			require.NotNil(t, e.GradePoints)
			assert.Equal(t, want, *e.GradePoints)
		} else {
			assert.Nil(t, e.GradePoints)
		}
	}
	assert.InDelta(t, 0.75, float64(enrolled)/1000, 0.06)
	assert.InDelta(t, 0.7, float64(graded)/1000, 0.06)
}

func TestEnrollmentsEmbedCourseCopies(t *testing.T) {
	g := newTestGenerator(t, 8)
	students := g.GenerateStudents(1)
	courses := g.GenerateCourses(g.GenerateLecturers(1), 1)
	e := g.GenerateEnrollments(students, courses, 1)[0]

	courses[0].Enrolled = 0
	courses[0].Schedule[0].Room = "moved"

	assert.NotEqual(t, 0, e.Course.Enrolled)
	assert.NotEqual(t, "moved", e.Course.Schedule[0].Room)
}

func TestNegativeCountsGenerateNothing(t *testing.T) {
	g := newTestGenerator(t, 1)
	students := g.GenerateStudents(3)
	lecturers := g.GenerateLecturers(2)
	courses := g.GenerateCourses(lecturers, 2)

	tests := []struct {
		name     string
		generate func() int
	}{
		{"students", func() int { return len(g.GenerateStudents(-1)) }},
		{"lecturers", func() int { return len(g.GenerateLecturers(-5)) }},
		{"courses", func() int { return len(g.GenerateCourses(lecturers, -1)) }},
		{"payments", func() int { return len(g.GeneratePayments(students, -10)) }},
		{"announcements", func() int { return len(g.GenerateAnnouncements(-1)) }},
		{"enrollments", func() int { return len(g.GenerateEnrollments(students, courses, -3)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var n int
			require.NotPanics(t, func() { n = tt.generate() })
			assert.Zero(t, n)
		})
	}
}

func TestInitialize(t *testing.T) {
	g := newTestGenerator(t, 9)
	ds := g.Initialize(Counts{Students: 10, Lecturers: 3, Courses: 5, Payments: 20, Announcements: 4, Enrollments: 15})

	assert.Len(t, ds.Students, 10)
	assert.Len(t, ds.Lecturers, 3)
	assert.Len(t, ds.Courses, 5)
	assert.Len(t, ds.Payments, 20)
	assert.Len(t, ds.Announcements, 4)
	assert.Len(t, ds.Enrollments, 15)

	require.Len(t, ds.AllUsers, 13)
	for i, s := range ds.Students {
		assert.Same(t, s, ds.AllUsers[i])
	}
	for i, l := range ds.Lecturers {
		assert.Same(t, l, ds.AllUsers[10+i])
	}

	require.Len(t, ds.Staff, 2)
	assert.Equal(t, models.RoleAdmin, ds.Staff[0].Base().Role)
	assert.Equal(t, models.RoleFinance, ds.Staff[1].Base().Role)
	assert.Len(t, ds.Accounts(), 15)
}

func TestInitializeIsReproducibleForASeed(t *testing.T) {
	counts := Counts{Students: 5, Lecturers: 2, Courses: 4, Payments: 10, Announcements: 3, Enrollments: 8}
	a := newTestGenerator(t, 99).Initialize(counts)
	b := newTestGenerator(t, 99).Initialize(counts)

	assert.Equal(t, a.Courses, b.Courses)
	assert.Equal(t, a.Payments, b.Payments)
	assert.Equal(t, a.Enrollments, b.Enrollments)
	for i := range a.Students {
		assert.Equal(t, a.Students[i].Email, b.Students[i].Email)
		assert.Equal(t, a.Students[i].GPA, b.Students[i].GPA)
	}
}
