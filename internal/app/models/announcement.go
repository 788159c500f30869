package models

import "time"

// AnnouncementType categorizes an announcement.
type AnnouncementType string

const (
	AnnouncementGeneral   AnnouncementType = "general"
	AnnouncementAcademic  AnnouncementType = "academic"
	AnnouncementFinancial AnnouncementType = "financial"
	AnnouncementEvent     AnnouncementType = "event"
)

// Priority of an announcement.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Audience selects who an announcement is addressed to.
type Audience string

const (
	AudienceAll       Audience = "all"
	AudienceStudents  Audience = "students"
	AudienceLecturers Audience = "lecturers"
)

// Announcement is a broadcast message not tied to a specific user.
type Announcement struct {
	ID             string           `json:"id" example:"announcement-1"`
	Title          string           `json:"title" example:"Registration Deadline Extended"`
	Content        string           `json:"content"`
	Type           AnnouncementType `json:"type" example:"academic"`
	Priority       Priority         `json:"priority" example:"high"`
	TargetAudience Audience         `json:"targetAudience" example:"all"`
	Author         string           `json:"author" example:"Office of the Registrar"`
	CreatedAt      time.Time        `json:"createdAt"`
}
