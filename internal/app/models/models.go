package models

// Role is the closed set of account roles.
type Role string

const (
	RoleStudent  Role = "student"
	RoleLecturer Role = "lecturer"
	RoleAdmin    Role = "admin"
	RoleFinance  Role = "finance"
)

// Roles returns every role in declaration order.
func Roles() []Role {
	return []Role{RoleStudent, RoleLecturer, RoleAdmin, RoleFinance}
}

// Valid reports whether r is one of the declared roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleLecturer, RoleAdmin, RoleFinance:
		return true
	}
	return false
}

// Pagination describes a 1-indexed page of a collection.
type Pagination struct {
	Page       int `json:"page" example:"1"`
	Limit      int `json:"limit" example:"20"`
	Total      int `json:"total" example:"100"`
	TotalPages int `json:"totalPages" example:"5"`
}
