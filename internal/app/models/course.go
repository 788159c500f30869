package models

// ScheduleSlot is one weekly meeting of a course.
type ScheduleSlot struct {
	Day      string `json:"day" example:"Monday"`
	Time     string `json:"time" example:"08:00 - 10:00"`
	Room     string `json:"room" example:"Room 204"`
	Building string `json:"building" example:"Science Block"`
}

// Course is a course offered in the current semester.
type Course struct {
	ID           string         `json:"id" example:"course-4"`
	Code         string         `json:"code" example:"CS201"`
	Name         string         `json:"name" example:"Data Structures and Algorithms"`
	Department   string         `json:"department" example:"Computer Science"`
	Credits      int            `json:"credits" example:"3"`
	Capacity     int            `json:"capacity" example:"60"`
	Enrolled     int            `json:"enrolled" example:"42"`
	Waitlisted   int            `json:"waitlisted" example:"0"`
	Schedule     []ScheduleSlot `json:"schedule"`
	LecturerID   string         `json:"lecturerId" example:"lecturer-2"`
	LecturerName string         `json:"lecturerName" example:"Dr. Ama Owusu"`
}

// IsFull reports whether no seat is left.
func (c *Course) IsFull() bool {
	return c.Enrolled >= c.Capacity
}

// AvailableSeats returns the number of open seats, never negative.
func (c *Course) AvailableSeats() int {
	if c.IsFull() {
		return 0
	}
	return c.Capacity - c.Enrolled
}
