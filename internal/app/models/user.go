package models

import "time"

// User holds the identity fields shared by every account variant.
type User struct {
	ID            string    `json:"id" example:"student-17"`
	Email         string    `json:"email" example:"kwame.mensah@university.edu.gh"`
	FirstName     string    `json:"firstName" example:"Kwame"`
	LastName      string    `json:"lastName" example:"Mensah"`
	Name          string    `json:"name" example:"Kwame Mensah"`
	Role          Role      `json:"role" example:"student"`
	Department    string    `json:"department,omitempty" example:"Computer Science"`
	Phone         string    `json:"phone,omitempty" example:"0241234567"`
	EmailVerified bool      `json:"emailVerified"`
	PhoneVerified bool      `json:"phoneVerified"`
	CreatedAt     time.Time `json:"createdAt"`
	PasswordHash  string    `json:"-"`
}

// Account is a user of one specific role. The set of implementations is closed:
// Student, Lecturer, Admin and FinanceOfficer.
type Account interface {
	Base() *User
	account()
}

// Student is a student account.
type Student struct {
	User
	StudentID       string  `json:"studentId" example:"STD100017"`
	Program         string  `json:"program" example:"BSc Computer Science"`
	Year            int     `json:"year" example:"2"`
	Semester        int     `json:"semester" example:"1"`
	GPA             float64 `json:"gpa" example:"3.42"`
	CreditsEarned   int     `json:"creditsEarned" example:"72"`
	CreditsRequired int     `json:"creditsRequired" example:"120"`
}

// Lecturer is a teaching staff account.
type Lecturer struct {
	User
	StaffID        string `json:"staffId" example:"LEC0003"`
	Title          string `json:"title" example:"Dr."`
	Specialization string `json:"specialization" example:"Distributed Systems"`
}

// Admin is an administrator account.
type Admin struct {
	User
	StaffID string `json:"staffId" example:"ADM0001"`
}

// FinanceOfficer is a finance office account.
type FinanceOfficer struct {
	User
	StaffID string `json:"staffId" example:"FIN0001"`
}

func (s *Student) Base() *User        { return &s.User }
func (l *Lecturer) Base() *User       { return &l.User }
func (a *Admin) Base() *User          { return &a.User }
func (f *FinanceOfficer) Base() *User { return &f.User }

func (*Student) account()        {}
func (*Lecturer) account()       {}
func (*Admin) account()          {}
func (*FinanceOfficer) account() {}

// DisplayName returns the lecturer's name prefixed with the academic title.
func (l *Lecturer) DisplayName() string {
	if l.Title == "" {
		return l.Name
	}
	return l.Title + " " + l.Name
}
