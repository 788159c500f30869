package dto

// EnrollRequest names the student to enroll in or drop from a course. Students may
// omit it to act on themselves.
type EnrollRequest struct {
	StudentID string `json:"studentId" binding:"omitempty,entityid=student" example:"student-17"`
}
