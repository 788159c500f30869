package models

// MenuItem is one entry of the dashboard sidebar.
type MenuItem struct {
	Label string `json:"label" example:"Courses"`
	Path  string `json:"path" example:"/student/courses"`
	Icon  string `json:"icon" example:"book"`
}
