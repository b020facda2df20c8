package repository

import (
	"time"

	"github.com/dmalofieiev/birthday-reminder-pro/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(user *domain.User) (*domain.User, error)
	GetByTelegramID(telegramID int64) (*domain.User, error)
	UpdateLanguage(telegramID int64, language string) error
	UpdateNotificationTime(telegramID int64, notificationTime string) error
	UpdateNotificationsEnabled(telegramID int64, enabled bool) error
	Delete(telegramID int64) error
	// GetNotifiable returns users with notifications enabled whose
	// notification time equals the given HH:MM value
	GetNotifiable(timeHHMM string) ([]domain.User, error)
}

// BirthdayRepository defines birthday data operations
type BirthdayRepository interface {
	Create(birthday *domain.Birthday) (*domain.Birthday, error)
	GetByID(id int64) (*domain.Birthday, error)
	GetByUserID(userID int64) ([]domain.Birthday, error)
	UpdateName(id int64, name string) error
	UpdateDate(id int64, birthDate time.Time) error
	UpdateCategory(id int64, category domain.Category) error
	UpdateNotes(id int64, notes string) error
	Delete(id int64) error
	// GetByMonthDay returns all birthdays falling on the given month and day
	GetByMonthDay(month, day int) ([]domain.Birthday, error)
}
