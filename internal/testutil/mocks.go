package testutil

import (
	"time"

	"github.com/dmalofieiev/birthday-reminder-pro/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(user *domain.User) (*domain.User, error) {
	args := m.Called(user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) GetByTelegramID(telegramID int64) (*domain.User, error) {
	args := m.Called(telegramID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateLanguage(telegramID int64, language string) error {
	args := m.Called(telegramID, language)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateNotificationTime(telegramID int64, notificationTime string) error {
	args := m.Called(telegramID, notificationTime)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateNotificationsEnabled(telegramID int64, enabled bool) error {
	args := m.Called(telegramID, enabled)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(telegramID int64) error {
	args := m.Called(telegramID)
	return args.Error(0)
}

func (m *MockUserRepository) GetNotifiable(timeHHMM string) ([]domain.User, error) {
	args := m.Called(timeHHMM)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

// MockBirthdayRepository is a mock for BirthdayRepository
type MockBirthdayRepository struct {
	mock.Mock
}

func (m *MockBirthdayRepository) Create(birthday *domain.Birthday) (*domain.Birthday, error) {
	args := m.Called(birthday)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Birthday), args.Error(1)
}

func (m *MockBirthdayRepository) GetByID(id int64) (*domain.Birthday, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Birthday), args.Error(1)
}

func (m *MockBirthdayRepository) GetByUserID(userID int64) ([]domain.Birthday, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Birthday), args.Error(1)
}

func (m *MockBirthdayRepository) UpdateName(id int64, name string) error {
	args := m.Called(id, name)
	return args.Error(0)
}

func (m *MockBirthdayRepository) UpdateDate(id int64, birthDate time.Time) error {
	args := m.Called(id, birthDate)
	return args.Error(0)
}

func (m *MockBirthdayRepository) UpdateCategory(id int64, category domain.Category) error {
	args := m.Called(id, category)
	return args.Error(0)
}

func (m *MockBirthdayRepository) UpdateNotes(id int64, notes string) error {
	args := m.Called(id, notes)
	return args.Error(0)
}

func (m *MockBirthdayRepository) Delete(id int64) error {
	args := m.Called(id)
	return args.Error(0)
}

func (m *MockBirthdayRepository) GetByMonthDay(month, day int) ([]domain.Birthday, error) {
	args := m.Called(month, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Birthday), args.Error(1)
}

// MockSender is a mock for the notifier's message sender
type MockSender struct {
	mock.Mock
}

func (m *MockSender) SendMessage(telegramID int64, text string) error {
	args := m.Called(telegramID, text)
	return args.Error(0)
}
