package models

// Dataset is the snapshot produced by one generation pass. It is treated as
// read-only once built.
type Dataset struct {
	Students      []*Student
	Lecturers     []*Lecturer
	Staff         []Account
	Courses       []*Course
	Payments      []*Payment
	Announcements []*Announcement
	Enrollments   []*Enrollment

	// AllUsers is Students followed by Lecturers.
	AllUsers []Account
}

// Accounts returns AllUsers followed by Staff: every account that can sign in.
func (d *Dataset) Accounts() []Account {
	out := make([]Account, 0, len(d.AllUsers)+len(d.Staff))
	out = append(out, d.AllUsers...)
	return append(out, d.Staff...)
}
