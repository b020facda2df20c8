package domain

import "time"

// DefaultNotificationTime is assigned to new users until they pick their own
const DefaultNotificationTime = "09:00"

// User represents a bot user
type User struct {
	ID                   int64
	TelegramID           int64
	FirstName            string
	LastName             string
	Username             string
	Language             string
	NotificationTime     string // HH:MM
	NotificationsEnabled bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// DisplayName returns the best available short name for greeting the user
func (u User) DisplayName() string {
	if u.FirstName != "" {
		return u.FirstName
	}
	if u.Username != "" {
		return u.Username
	}
	return "friend"
}
