package service

import (
	"fmt"

	"github.com/dmalofieiev/birthday-reminder-pro/internal/domain"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/locales"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/repository"
)

// UserService handles user registration and settings
type UserService struct {
	userRepo repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// Profile describes the Telegram identity used to register a user on first
// contact
type Profile struct {
	TelegramID   int64
	FirstName    string
	LastName     string
	Username     string
	LanguageCode string
}

// EnsureUser returns the existing user or creates one, auto-detecting the
// language from the Telegram locale hint
func (s *UserService) EnsureUser(profile Profile) (*domain.User, error) {
	user, err := s.userRepo.GetByTelegramID(profile.TelegramID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	user, err = s.userRepo.Create(&domain.User{
		TelegramID: profile.TelegramID,
		FirstName:  profile.FirstName,
		LastName:   profile.LastName,
		Username:   profile.Username,
		Language:   locales.Detect(profile.LanguageCode),
	})
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// SetLanguage changes the user's language preference
func (s *UserService) SetLanguage(telegramID int64, language string) error {
	if !locales.IsSupported(language) {
		return fmt.Errorf("unsupported language %q", language)
	}
	return s.userRepo.UpdateLanguage(telegramID, language)
}

// SetNotificationTime changes the user's daily notification time (HH:MM)
func (s *UserService) SetNotificationTime(telegramID int64, timeHHMM string) error {
	return s.userRepo.UpdateNotificationTime(telegramID, timeHHMM)
}

// SetNotificationsEnabled toggles the user's notifications
func (s *UserService) SetNotificationsEnabled(telegramID int64, enabled bool) error {
	return s.userRepo.UpdateNotificationsEnabled(telegramID, enabled)
}

// DeleteProfile removes the user and, through the schema, all their birthdays
func (s *UserService) DeleteProfile(telegramID int64) error {
	return s.userRepo.Delete(telegramID)
}
