package testutil

import (
	"time"

	"github.com/dmalofieiev/birthday-reminder-pro/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(id, telegramID int64, language string) *domain.User {
	return &domain.User{
		ID:                   id,
		TelegramID:           telegramID,
		FirstName:            "Test",
		Language:             language,
		NotificationTime:     domain.DefaultNotificationTime,
		NotificationsEnabled: true,
		CreatedAt:            time.Now(),
		UpdatedAt:            time.Now(),
	}
}

// NewTestBirthday creates a test birthday
func NewTestBirthday(id, userID int64, name string, birthDate time.Time) *domain.Birthday {
	return &domain.Birthday{
		ID:        id,
		UserID:    userID,
		Name:      name,
		BirthDate: birthDate,
		Category:  domain.CategoryFriends,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}
