// Package testutil builds small, hand-written datasets for tests.
package testutil

import (
	"strconv"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/pkg/auth"
)

// Password is the password of every account in the fixture dataset.
const Password = "password123"

var (
	hashOnce sync.Once
	hash     string
)

func passwordHash() string {
	hashOnce.Do(func() {
		var err error
		hash, err = auth.HashPassword(Password, bcrypt.MinCost)
		if err != nil {
			panic(err)
		}
	})
	return hash
}

// Now is the reference time of the fixture dataset.
var Now = time.Date(2024, time.October, 1, 9, 0, 0, 0, time.UTC)

func user(id, first, last string, role models.Role) models.User {
	return models.User{
		ID:            id,
		Email:         first + "." + last + "@test.edu",
		FirstName:     first,
		LastName:      last,
		Name:          first + " " + last,
		Role:          role,
		Department:    "Computer Science",
		Phone:         "0241234567",
		EmailVerified: true,
		CreatedAt:     Now.AddDate(0, -6, 0),
		PasswordHash:  passwordHash(),
	}
}

func ptr[T any](v T) *T { return &v }

// Dataset returns a fresh fixture:
//   - student-1 has completed payments summing to 13000, one pending and one failed
//   - student-2 has no payments
//   - course-1 has free seats, course-2 is full
//   - 25 extra students (student-4..student-28) exist to exercise pagination
func Dataset() *models.Dataset {
	students := []*models.Student{
		{User: user("student-1", "kwame", "mensah", models.RoleStudent), StudentID: "STD100001", Program: "BSc Computer Science", Year: 2, Semester: 1, GPA: 3.4, CreditsEarned: 70, CreditsRequired: 120},
		{User: user("student-2", "ama", "owusu", models.RoleStudent), StudentID: "STD100002", Program: "BSc Mathematics", Year: 1, Semester: 2, GPA: 3.9, CreditsEarned: 45, CreditsRequired: 120},
		{User: user("student-3", "kofi", "boateng", models.RoleStudent), StudentID: "STD100003", Program: "BA Economics", Year: 4, Semester: 1, GPA: 2.8, CreditsEarned: 130, CreditsRequired: 120},
	}
	for i := 4; i <= 28; i++ {
		s := &models.Student{User: user("student-x", "extra", "student", models.RoleStudent), StudentID: "STD1000XX", Program: "BSc Physics", Year: 1, Semester: 1, GPA: 3.0, CreditsEarned: 30, CreditsRequired: 120}
		s.ID = "student-" + strconv.Itoa(i)
		s.Email = "extra" + strconv.Itoa(i) + "@test.edu"
		s.StudentID = "STD1000" + strconv.Itoa(i)
		students = append(students, s)
	}

	lecturer := &models.Lecturer{User: user("lecturer-1", "abena", "asante", models.RoleLecturer), StaffID: "LEC0001", Title: "Dr.", Specialization: "Distributed Systems"}

	schedule := []models.ScheduleSlot{
		{Day: "Monday", Time: "08:00 - 10:00", Room: "Room 101", Building: "Science Block"},
		{Day: "Wednesday", Time: "10:00 - 12:00", Room: "Room 101", Building: "Science Block"},
	}
	courses := []*models.Course{
		{ID: "course-1", Code: "CS101", Name: "Introduction to Programming", Department: "Computer Science", Credits: 3, Capacity: 60, Enrolled: 40, Schedule: schedule, LecturerID: lecturer.ID, LecturerName: lecturer.DisplayName()},
		{ID: "course-2", Code: "CS201", Name: "Data Structures and Algorithms", Department: "Computer Science", Credits: 4, Capacity: 30, Enrolled: 30, Waitlisted: 4, Schedule: schedule, LecturerID: lecturer.ID, LecturerName: lecturer.DisplayName()},
	}

	completedAt := Now.AddDate(0, -1, 0)
	payments := []*models.Payment{
		{ID: "payment-1", StudentID: "student-1", Amount: 12000, Type: models.PaymentTuition, Status: models.PaymentCompleted, Provider: models.ProviderMTN, MobileNumber: "0241234567", TransactionRef: "TXN0000000001", CreatedAt: completedAt, CompletedAt: ptr(completedAt)},
		{ID: "payment-2", StudentID: "student-1", Amount: 1000, Type: models.PaymentAccommodation, Status: models.PaymentCompleted, Provider: models.ProviderVodafone, MobileNumber: "0241234567", TransactionRef: "TXN0000000002", CreatedAt: completedAt, CompletedAt: ptr(completedAt)},
		{ID: "payment-3", StudentID: "student-1", Amount: 500, Type: models.PaymentLibrary, Status: models.PaymentPending, Provider: models.ProviderMTN, MobileNumber: "0241234567", CreatedAt: Now},
		{ID: "payment-4", StudentID: "student-1", Amount: 700, Type: models.PaymentRegistration, Status: models.PaymentFailed, Provider: models.ProviderAirtelTigo, MobileNumber: "0241234567", CreatedAt: Now},
		{ID: "payment-5", StudentID: "student-3", Amount: 20000, Type: models.PaymentTuition, Status: models.PaymentCompleted, Provider: models.ProviderMTN, MobileNumber: "0201234567", TransactionRef: "TXN0000000005", CreatedAt: completedAt, CompletedAt: ptr(completedAt)},
	}

	announcements := make([]*models.Announcement, 0, 12)
	for i := 1; i <= 12; i++ {
		announcements = append(announcements, &models.Announcement{
			ID:             "announcement-" + strconv.Itoa(i),
			Title:          "Announcement " + strconv.Itoa(i),
			Content:        "Content",
			Type:           models.AnnouncementGeneral,
			Priority:       models.PriorityMedium,
			TargetAudience: models.AudienceAll,
			Author:         "Registrar",
			CreatedAt:      Now,
		})
	}

	enrollments := []*models.Enrollment{
		{ID: "enrollment-1", StudentID: "student-1", CourseID: "course-1", Course: *courses[0], Semester: "2024/2025 Semester 1", Status: models.EnrollmentEnrolled, Grade: "B+", GradePoints: ptr(3.5), EnrolledAt: Now},
		{ID: "enrollment-2", StudentID: "student-1", CourseID: "course-2", Course: *courses[1], Semester: "2024/2025 Semester 1", Status: models.EnrollmentWaitlisted, EnrolledAt: Now},
		{ID: "enrollment-3", StudentID: "student-2", CourseID: "course-1", Course: *courses[0], Semester: "2024/2025 Semester 1", Status: models.EnrollmentEnrolled, EnrolledAt: Now},
	}

	allUsers := make([]models.Account, 0, len(students)+1)
	for _, s := range students {
		allUsers = append(allUsers, s)
	}
	allUsers = append(allUsers, lecturer)

	return &models.Dataset{
		Students:  students,
		Lecturers: []*models.Lecturer{lecturer},
		Staff: []models.Account{
			&models.Admin{User: user("admin-1", "esi", "darko", models.RoleAdmin), StaffID: "ADM0001"},
			&models.FinanceOfficer{User: user("finance-1", "yaw", "osei", models.RoleFinance), StaffID: "FIN0001"},
		},
		Courses:       courses,
		Payments:      payments,
		Announcements: announcements,
		Enrollments:   enrollments,
		AllUsers:      allUsers,
	}
}
