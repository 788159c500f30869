package ui

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReduceSidebar(t *testing.T) {
	s := Reduce(State{}, ToggleSidebar{})
	assert.True(t, s.SidebarOpen)

	s = Reduce(s, ToggleSidebar{})
	assert.False(t, s.SidebarOpen)

	s = Reduce(s, SetSidebar{Open: true})
	assert.True(t, s.SidebarOpen)
}

func TestReduceToastsDoesNotShareBackingArray(t *testing.T) {
	before := Reduce(State{}, AddToast{Toast: Toast{ID: "a"}})
	after := Reduce(before, AddToast{Toast: Toast{ID: "b"}})
	after = Reduce(after, DismissToast{ID: "a"})

	require.Len(t, before.Toasts, 1)
	assert.Equal(t, "a", before.Toasts[0].ID)
	require.Len(t, after.Toasts, 1)
	assert.Equal(t, "b", after.Toasts[0].ID)

	unchanged := Reduce(after, DismissToast{ID: "missing"})
	assert.Equal(t, after.Toasts, unchanged.Toasts)
}

func TestReduceNotifications(t *testing.T) {
	now := time.Date(2024, time.October, 1, 9, 0, 0, 0, time.UTC)

	s := Reduce(State{}, AddNotification{Notification: Notification{ID: "1", CreatedAt: now}})
	s = Reduce(s, AddNotification{Notification: Notification{ID: "2", CreatedAt: now}})
	require.Len(t, s.Notifications, 2)
	assert.Equal(t, "2", s.Notifications[0].ID, "newest first")
	assert.Equal(t, 2, s.UnreadCount())

	read := Reduce(s, MarkNotificationRead{ID: "1"})
	assert.Equal(t, 1, read.UnreadCount())
	assert.Equal(t, 2, s.UnreadCount(), "previous state untouched")

	all := Reduce(read, MarkAllNotificationsRead{})
	assert.Zero(t, all.UnreadCount())

	cleared := Reduce(all, ClearNotifications{})
	assert.Empty(t, cleared.Notifications)
}
