// Package ui holds the client's session-local UI state: the sidebar, active
// toasts and the notification list.
package ui

import "time"

// MessageType classifies toasts and notifications
type MessageType string

const (
	TypeSuccess MessageType = "success"
	TypeError   MessageType = "error"
	TypeWarning MessageType = "warning"
	TypeInfo    MessageType = "info"
)

// Toast is a transient message. A zero Duration keeps it until dismissed.
type Toast struct {
	ID       string
	Title    string
	Message  string
	Type     MessageType
	Duration time.Duration
}

// Notification is an entry in the notification list
type Notification struct {
	ID        string
	Title     string
	Message   string
	Type      MessageType
	Read      bool
	CreatedAt time.Time
}

// State is a snapshot of the UI. Reduce never modifies a State in place.
type State struct {
	SidebarOpen   bool
	Toasts        []Toast
	Notifications []Notification
}

// UnreadCount returns the number of unread notifications
func (s State) UnreadCount() int {
	n := 0
	for _, item := range s.Notifications {
		if !item.Read {
			n++
		}
	}
	return n
}

// Action is a state transition understood by Reduce
type Action interface {
	isAction()
}

type (
	ToggleSidebar            struct{}
	SetSidebar               struct{ Open bool }
	AddToast                 struct{ Toast Toast }
	DismissToast             struct{ ID string }
	AddNotification          struct{ Notification Notification }
	MarkNotificationRead     struct{ ID string }
	MarkAllNotificationsRead struct{}
	ClearNotifications       struct{}
)

func (ToggleSidebar) isAction()            {}
func (SetSidebar) isAction()               {}
func (AddToast) isAction()                 {}
func (DismissToast) isAction()             {}
func (AddNotification) isAction()          {}
func (MarkNotificationRead) isAction()     {}
func (MarkAllNotificationsRead) isAction() {}
func (ClearNotifications) isAction()       {}

// Reduce returns the state that results from applying a to s. Unknown actions
// return s unchanged.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case ToggleSidebar:
		s.SidebarOpen = !s.SidebarOpen
	case SetSidebar:
		s.SidebarOpen = a.Open
	case AddToast:
		toasts := make([]Toast, 0, len(s.Toasts)+1)
		toasts = append(toasts, s.Toasts...)
		s.Toasts = append(toasts, a.Toast)
	case DismissToast:
		toasts := make([]Toast, 0, len(s.Toasts))
		for _, t := range s.Toasts {
			if t.ID != a.ID {
				toasts = append(toasts, t)
			}
		}
		s.Toasts = toasts
	case AddNotification:
		// newest first
		notifications := make([]Notification, 0, len(s.Notifications)+1)
		notifications = append(notifications, a.Notification)
		s.Notifications = append(notifications, s.Notifications...)
	case MarkNotificationRead:
		s.Notifications = markRead(s.Notifications, func(n Notification) bool { return n.ID == a.ID })
	case MarkAllNotificationsRead:
		s.Notifications = markRead(s.Notifications, func(Notification) bool { return true })
	case ClearNotifications:
		s.Notifications = nil
	}
	return s
}

func markRead(in []Notification, match func(Notification) bool) []Notification {
	out := make([]Notification, len(in))
	for i, n := range in {
		if match(n) {
			n.Read = true
		}
		out[i] = n
	}
	return out
}
