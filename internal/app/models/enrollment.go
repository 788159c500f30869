package models

import "time"

// EnrollmentStatus is the state of a student's registration in a course.
type EnrollmentStatus string

const (
	EnrollmentEnrolled   EnrollmentStatus = "enrolled"
	EnrollmentWaitlisted EnrollmentStatus = "waitlisted"
	EnrollmentDropped    EnrollmentStatus = "dropped"
)

// Enrollment links a student to a course for one semester. Course is a copy taken
// when the enrollment was created and is not refreshed afterwards.
type Enrollment struct {
	ID          string           `json:"id" example:"enrollment-12"`
	StudentID   string           `json:"studentId" example:"student-3"`
	CourseID    string           `json:"courseId" example:"course-4"`
	Course      Course           `json:"course"`
	Semester    string           `json:"semester" example:"2024/2025 Semester 1"`
	Status      EnrollmentStatus `json:"status" example:"enrolled"`
	Grade       string           `json:"grade,omitempty" example:"B+"`
	GradePoints *float64         `json:"gradePoints,omitempty" example:"3.5"`
	EnrolledAt  time.Time        `json:"enrolledAt"`
}

// Grades lists the letter grades from best to worst.
var Grades = []string{"A+", "A", "B+", "B", "C+", "C", "D", "F"}

var gradePoints = map[string]float64{
	"A+": 4.0,
	"A":  4.0,
	"B+": 3.5,
	"B":  3.0,
	"C+": 2.5,
	"C":  2.0,
	"D":  1.0,
	"F":  0,
}

// GradePoints maps a letter grade to its grade-point value.
func GradePoints(grade string) (float64, bool) {
	p, ok := gradePoints[grade]
	return p, ok
}
