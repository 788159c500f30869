package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/testutil"
)

func TestUserRepositoryCoversStaff(t *testing.T) {
	repos := NewRepositories(testutil.Dataset())

	a, ok := repos.UserRepository.FindByEmail("kwame.mensah@test.edu")
	require.True(t, ok)
	assert.Equal(t, "student-1", a.Base().ID)
	_, isStudent := a.(*models.Student)
	assert.True(t, isStudent)

	a, ok = repos.UserRepository.FindByEmail("yaw.osei@test.edu")
	require.True(t, ok)
	assert.Equal(t, models.RoleFinance, a.Base().Role)

	_, ok = repos.UserRepository.FindByEmail("KWAME.MENSAH@test.edu")
	assert.False(t, ok, "email match is exact")

	_, ok = repos.UserRepository.GetByID("lecturer-1")
	assert.True(t, ok)
	assert.Equal(t, 31, repos.UserRepository.Count())
}

func TestStudentAndCourseLookups(t *testing.T) {
	repos := NewRepositories(testutil.Dataset())

	s, ok := repos.StudentRepository.GetByID("student-2")
	require.True(t, ok)
	assert.Equal(t, "STD100002", s.StudentID)
	_, ok = repos.StudentRepository.GetByID("student-999")
	assert.False(t, ok)
	assert.Len(t, repos.StudentRepository.All(), 28)

	c, ok := repos.CourseRepository.GetByID("course-2")
	require.True(t, ok)
	assert.True(t, c.IsFull())
	_, ok = repos.CourseRepository.GetByID("course-9")
	assert.False(t, ok)
}

func TestForeignKeyFilters(t *testing.T) {
	repos := NewRepositories(testutil.Dataset())

	assert.Len(t, repos.PaymentRepository.ByStudent("student-1"), 4)
	assert.Empty(t, repos.PaymentRepository.ByStudent("student-2"))
	assert.NotNil(t, repos.PaymentRepository.ByStudent("student-2"))

	assert.Len(t, repos.EnrollmentRepository.ByStudent("student-1"), 2)
	assert.Len(t, repos.EnrollmentRepository.ByCourse("course-1"), 2)
	assert.Empty(t, repos.EnrollmentRepository.ByCourse("course-9"))

	p, ok := repos.PaymentRepository.GetByID("payment-3")
	require.True(t, ok)
	assert.Equal(t, models.PaymentPending, p.Status)
}
