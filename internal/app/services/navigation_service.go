package services

import (
	"context"
	"fmt"

	"github.com/yigit/unidash/internal/app/models"
	"github.com/yigit/unidash/internal/pkg/apperrors"
	"github.com/yigit/unidash/internal/pkg/latency"
)

// NavigationService returns the sidebar menu of each role
type NavigationService interface {
	Menu(ctx context.Context, role models.Role) ([]models.MenuItem, error)
}

type navigationServiceImpl struct {
	sim *latency.Simulator
}

// NewNavigationService creates a new navigation service instance
func NewNavigationService(sim *latency.Simulator) NavigationService {
	return &navigationServiceImpl{sim: sim}
}

func (s *navigationServiceImpl) Menu(ctx context.Context, role models.Role) ([]models.MenuItem, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return nil, err
	}

	items, err := MenuFor(role)
	if err != nil {
		return nil, err
	}
	return append([]models.MenuItem(nil), items...), nil
}

var (
	studentMenu = []models.MenuItem{
		{Label: "Dashboard", Path: "/student", Icon: "home"},
		{Label: "Courses", Path: "/student/courses", Icon: "book"},
		{Label: "Enrollments", Path: "/student/enrollments", Icon: "clipboard"},
		{Label: "Payments", Path: "/student/payments", Icon: "credit-card"},
		{Label: "Announcements", Path: "/student/announcements", Icon: "bell"},
		{Label: "Profile", Path: "/student/profile", Icon: "user"},
	}
	lecturerMenu = []models.MenuItem{
		{Label: "Dashboard", Path: "/lecturer", Icon: "home"},
		{Label: "My Courses", Path: "/lecturer/courses", Icon: "book"},
		{Label: "Students", Path: "/lecturer/students", Icon: "users"},
		{Label: "Announcements", Path: "/lecturer/announcements", Icon: "bell"},
		{Label: "Profile", Path: "/lecturer/profile", Icon: "user"},
	}
	adminMenu = []models.MenuItem{
		{Label: "Dashboard", Path: "/admin", Icon: "home"},
		{Label: "Students", Path: "/admin/students", Icon: "users"},
		{Label: "Courses", Path: "/admin/courses", Icon: "book"},
		{Label: "Announcements", Path: "/admin/announcements", Icon: "bell"},
		{Label: "Reports", Path: "/admin/reports", Icon: "bar-chart"},
		{Label: "Settings", Path: "/admin/settings", Icon: "settings"},
	}
	financeMenu = []models.MenuItem{
		{Label: "Dashboard", Path: "/finance", Icon: "home"},
		{Label: "Payments", Path: "/finance/payments", Icon: "credit-card"},
		{Label: "Statements", Path: "/finance/statements", Icon: "file-text"},
		{Label: "Reports", Path: "/finance/reports", Icon: "bar-chart"},
	}
)

// MenuFor maps a role to its menu. Every role in models.Roles has a case; adding a
// role without one makes the navigation tests fail.
func MenuFor(role models.Role) ([]models.MenuItem, error) {
	switch role {
	case models.RoleStudent:
		return studentMenu, nil
	case models.RoleLecturer:
		return lecturerMenu, nil
	case models.RoleAdmin:
		return adminMenu, nil
	case models.RoleFinance:
		return financeMenu, nil
	}
	return nil, apperrors.NewBadRequestError(fmt.Sprintf("Unknown role %q", role))
}
