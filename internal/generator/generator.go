// Package generator builds the synthetic, cross-referenced university dataset the
// service runs on.
package generator

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/pkg/auth"
)

// Options configures a Generator.
type Options struct {
	// Seed makes generation reproducible. Zero seeds from the clock.
	Seed int64
	// DemoPassword is the password every generated account signs in with.
	DemoPassword string
	EmailDomain  string
	// BcryptCost for the shared password hash; zero uses the bcrypt default.
	BcryptCost int
	// Now anchors generated timestamps. Defaults to time.Now.
	Now func() time.Time
}

// Counts is the requested size of each collection.
type Counts struct {
	Students      int
	Lecturers     int
	Courses       int
	Payments      int
	Announcements int
	Enrollments   int
}

// Generator produces random but plausible records. It is not safe for concurrent use.
type Generator struct {
	randSource   *rand.Rand
	emailDomain  string
	passwordHash string
	now          time.Time
}

// NewGenerator hashes the demo password once and prepares the random source.
func NewGenerator(opts Options) (*Generator, error) {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if opts.EmailDomain == "" {
		opts.EmailDomain = "university.edu.gh"
	}
	now := time.Now
	if opts.Now != nil {
		now = opts.Now
	}

	hash, err := auth.HashPassword(opts.DemoPassword, opts.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash demo password: %w", err)
	}

	return &Generator{
		randSource:   rand.New(rand.NewSource(seed)),
		emailDomain:  opts.EmailDomain,
		passwordHash: hash,
		now:          now().UTC(),
	}, nil
}

func pick[T any](r *rand.Rand, items []T) T {
	return items[r.Intn(len(items))]
}

// intRange returns a uniform integer in [min, max].
func (g *Generator) intRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + g.randSource.Intn(max-min+1)
}

func (g *Generator) chance(p float64) bool {
	return g.randSource.Float64() < p
}

func (g *Generator) digits(n int) string {
	var b strings.Builder
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + g.randSource.Intn(10)))
	}
	return b.String()
}

func (g *Generator) phoneNumber() string {
	return pick(g.randSource, phonePrefixes) + g.digits(7)
}

// daysAgo returns a timestamp up to maxDays before the generation anchor.
func (g *Generator) daysAgo(maxDays int) time.Time {
	offset := time.Duration(g.intRange(0, maxDays))*24*time.Hour + time.Duration(g.intRange(0, 23))*time.Hour
	return g.now.Add(-offset)
}

func (g *Generator) newUser(id string, role models.Role, dept string) models.User {
	first := pick(g.randSource, firstNames)
	last := pick(g.randSource, lastNames)
	return models.User{
		ID:            id,
		Email:         strings.ToLower(first + "." + last + "@" + g.emailDomain),
		FirstName:     first,
		LastName:      last,
		Name:          first + " " + last,
		Role:          role,
		Department:    dept,
		Phone:         g.phoneNumber(),
		EmailVerified: true,
		PhoneVerified: g.chance(0.8),
		CreatedAt:     g.daysAgo(365),
		PasswordHash:  g.passwordHash,
	}
}

// GenerateStudents returns count students with ids student-1..student-count.
func (g *Generator) GenerateStudents(count int) []*models.Student {
	count = max(count, 0) // negative counts generate nothing
	students := make([]*models.Student, 0, count)
	for i := 1; i <= count; i++ {
		dept := pick(g.randSource, departments)
		year := g.intRange(1, 4)
		gpa := 2.5 + g.randSource.Float64()*1.5

		students = append(students, &models.Student{
			User:            g.newUser(fmt.Sprintf("student-%d", i), models.RoleStudent, dept.Name),
			StudentID:       fmt.Sprintf("STD%06d", 100000+i),
			Program:         dept.Program,
			Year:            year,
			Semester:        g.intRange(1, 2),
			GPA:             math.Round(gpa*100) / 100,
			CreditsEarned:   year*30 + g.intRange(0, 30),
			CreditsRequired: CreditsRequired,
		})
	}
	return students
}

// GenerateLecturers returns count lecturers with ids lecturer-1..lecturer-count.
func (g *Generator) GenerateLecturers(count int) []*models.Lecturer {
	count = max(count, 0)
	lecturers := make([]*models.Lecturer, 0, count)
	for i := 1; i <= count; i++ {
		dept := pick(g.randSource, departments)
		lecturers = append(lecturers, &models.Lecturer{
			User:           g.newUser(fmt.Sprintf("lecturer-%d", i), models.RoleLecturer, dept.Name),
			StaffID:        fmt.Sprintf("LEC%04d", i),
			Title:          pick(g.randSource, lecturerTitles),
			Specialization: pick(g.randSource, specializations),
		})
	}
	return lecturers
}

// GenerateStaff returns one admin and one finance officer.
func (g *Generator) GenerateStaff() []models.Account {
	return []models.Account{
		&models.Admin{
			User:    g.newUser("admin-1", models.RoleAdmin, "Administration"),
			StaffID: "ADM0001",
		},
		&models.FinanceOfficer{
			User:    g.newUser("finance-1", models.RoleFinance, "Finance Office"),
			StaffID: "FIN0001",
		},
	}
}

// GenerateCourses assigns a random lecturer to each of the first count catalog
// entries. Asking for more courses than the catalog holds yields the whole catalog.
func (g *Generator) GenerateCourses(lecturers []*models.Lecturer, count int) []*models.Course {
	count = max(count, 0)
	if len(lecturers) == 0 {
		return []*models.Course{}
	}
	if count > len(courseCatalog) {
		count = len(courseCatalog)
	}

	sequence := make(map[string]int)
	courses := make([]*models.Course, 0, count)
	for i := 0; i < count; i++ {
		tmpl := courseCatalog[i]
		dept := departmentByName(tmpl.Department)
		sequence[dept.Abbreviation]++
		lecturer := pick(g.randSource, lecturers)

		capacity := g.intRange(30, 100)
		enrolled := g.intRange(15, capacity-5)
		waitlisted := 0
		if enrolled >= capacity-5 {
			waitlisted = g.intRange(1, 10)
		}

		courses = append(courses, &models.Course{
			ID:           fmt.Sprintf("course-%d", i+1),
			Code:         fmt.Sprintf("%s%d0%d", dept.Abbreviation, tmpl.Level, sequence[dept.Abbreviation]),
			Name:         tmpl.Name,
			Department:   dept.Name,
			Credits:      pick(g.randSource, creditValues),
			Capacity:     capacity,
			Enrolled:     enrolled,
			Waitlisted:   waitlisted,
			Schedule:     g.schedule(),
			LecturerID:   lecturer.ID,
			LecturerName: lecturer.DisplayName(),
		})
	}
	return courses
}

// schedule returns two weekly slots on two distinct weekdays.
func (g *Generator) schedule() []models.ScheduleSlot {
	days := g.randSource.Perm(len(weekdays))[:2]
	sort.Ints(days)

	building := pick(g.randSource, buildings)
	slots := make([]models.ScheduleSlot, 0, len(days))
	for _, d := range days {
		slots = append(slots, models.ScheduleSlot{
			Day:      weekdays[d],
			Time:     pick(g.randSource, timeSlots),
			Room:     fmt.Sprintf("Room %d", g.intRange(100, 350)),
			Building: building,
		})
	}
	return slots
}

// GeneratePayments returns count payments made by random students. About 80% are
// completed; the rest split evenly between pending and failed.
func (g *Generator) GeneratePayments(students []*models.Student, count int) []*models.Payment {
	count = max(count, 0)
	if len(students) == 0 {
		return []*models.Payment{}
	}

	payments := make([]*models.Payment, 0, count)
	for i := 1; i <= count; i++ {
		student := pick(g.randSource, students)
		ptype := pick(g.randSource, models.PaymentTypes)
		bounds := paymentAmounts[ptype]

		status := models.PaymentCompleted
		if !g.chance(0.8) {
			if g.chance(0.5) {
				status = models.PaymentPending
			} else {
				status = models.PaymentFailed
			}
		}

		p := &models.Payment{
			ID:           fmt.Sprintf("payment-%d", i),
			StudentID:    student.ID,
			Amount:       float64(g.intRange(bounds.Min, bounds.Max)),
			Type:         ptype,
			Status:       status,
			Provider:     pick(g.randSource, models.Providers),
			MobileNumber: student.Phone,
			CreatedAt:    g.daysAgo(120),
		}
		if status == models.PaymentCompleted {
			completed := p.CreatedAt.Add(time.Duration(g.intRange(1, 30)) * time.Minute)
			p.CompletedAt = &completed
			p.TransactionRef = "TXN" + g.digits(10)
		}
		payments = append(payments, p)
	}
	return payments
}

// GenerateAnnouncements returns up to count announcements from the catalog, newest first.
func (g *Generator) GenerateAnnouncements(count int) []*models.Announcement {
	count = max(count, 0)
	if count > len(announcementCatalog) {
		count = len(announcementCatalog)
	}

	announcements := make([]*models.Announcement, 0, count)
	for i := 0; i < count; i++ {
		tmpl := announcementCatalog[i]
		announcements = append(announcements, &models.Announcement{
			ID:             fmt.Sprintf("announcement-%d", i+1),
			Title:          tmpl.Title,
			Content:        tmpl.Content,
			Type:           pick(g.randSource, announcementTypes),
			Priority:       pick(g.randSource, priorities),
			TargetAudience: tmpl.Audience,
			Author:         tmpl.Author,
			CreatedAt:      g.now.Add(-time.Duration(i*2) * 24 * time.Hour),
		})
	}
	return announcements
}

// GenerateEnrollments pairs random students with random courses. Pairs are not
// deduplicated. Three in four are enrolled, the rest waitlisted; 70% carry a grade.
func (g *Generator) GenerateEnrollments(students []*models.Student, courses []*models.Course, count int) []*models.Enrollment {
	count = max(count, 0)
	if len(students) == 0 || len(courses) == 0 {
		return []*models.Enrollment{}
	}

	enrollments := make([]*models.Enrollment, 0, count)
	for i := 1; i <= count; i++ {
		student := pick(g.randSource, students)
		course := pick(g.randSource, courses)

		status := models.EnrollmentWaitlisted
		if g.chance(0.75) {
			status = models.EnrollmentEnrolled
		}

		e := &models.Enrollment{
			ID:         fmt.Sprintf("enrollment-%d", i),
			StudentID:  student.ID,
			CourseID:   course.ID,
			Course:     CopyCourse(course),
			Semester:   CurrentSemester,
			Status:     status,
			EnrolledAt: g.daysAgo(90),
		}
		if g.chance(0.7) {
			grade := pick(g.randSource, models.Grades)
			points, _ := models.GradePoints(grade)
			e.Grade = grade
			e.GradePoints = &points
		}
		enrollments = append(enrollments, e)
	}
	return enrollments
}

// Initialize generates every collection in dependency order and returns the snapshot.
func (g *Generator) Initialize(counts Counts) *models.Dataset {
	students := g.GenerateStudents(counts.Students)
	lecturers := g.GenerateLecturers(counts.Lecturers)
	courses := g.GenerateCourses(lecturers, counts.Courses)
	payments := g.GeneratePayments(students, counts.Payments)
	announcements := g.GenerateAnnouncements(counts.Announcements)
	enrollments := g.GenerateEnrollments(students, courses, counts.Enrollments)

	allUsers := make([]models.Account, 0, len(students)+len(lecturers))
	for _, s := range students {
		allUsers = append(allUsers, s)
	}
	for _, l := range lecturers {
		allUsers = append(allUsers, l)
	}

	return &models.Dataset{
		Students:      students,
		Lecturers:     lecturers,
		Staff:         g.GenerateStaff(),
		Courses:       courses,
		Payments:      payments,
		Announcements: announcements,
		Enrollments:   enrollments,
		AllUsers:      allUsers,
	}
}

// CopyCourse returns a copy of c that shares no memory with it.
func CopyCourse(c *models.Course) models.Course {
	out := *c
	out.Schedule = append([]models.ScheduleSlot(nil), c.Schedule...)
	return out
}
