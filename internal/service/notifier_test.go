package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/dmalofieiev/birthday-reminder-pro/internal/domain"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestNotifierService_Run_SendsToMatchingUsers(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	user := *testutil.NewTestUser(1, 123, "en")
	birthday := *testutil.NewTestBirthday(10, 1, "Alice", time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC))

	mockUsers := new(testutil.MockUserRepository)
	mockBirthdays := new(testutil.MockBirthdayRepository)
	mockSender := new(testutil.MockSender)

	mockUsers.On("GetNotifiable", "09:00").Return([]domain.User{user}, nil)
	mockBirthdays.On("GetByMonthDay", 3, 15).Return([]domain.Birthday{birthday}, nil)
	mockSender.On("SendMessage", int64(123), mock.MatchedBy(func(text string) bool {
		return len(text) > 0
	})).Return(nil)

	svc := NewNotifierService(mockUsers, mockBirthdays, mockSender, testutil.NewTestLogger())

	assert.NoError(t, svc.Run(now))

	mockUsers.AssertExpectations(t)
	mockBirthdays.AssertExpectations(t)
	mockSender.AssertExpectations(t)

	sent := mockSender.Calls[0].Arguments.String(1)
	assert.Contains(t, sent, "Alice")
	assert.Contains(t, sent, "34") // age she turns today
}

func TestNotifierService_Run_NoUsersDue(t *testing.T) {
	now := time.Date(2024, 3, 15, 7, 30, 0, 0, time.UTC)

	mockUsers := new(testutil.MockUserRepository)
	mockBirthdays := new(testutil.MockBirthdayRepository)
	mockSender := new(testutil.MockSender)

	mockUsers.On("GetNotifiable", "07:30").Return([]domain.User{}, nil)

	svc := NewNotifierService(mockUsers, mockBirthdays, mockSender, testutil.NewTestLogger())

	assert.NoError(t, svc.Run(now))

	mockBirthdays.AssertNotCalled(t, "GetByMonthDay", mock.Anything, mock.Anything)
	mockSender.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
}

func TestNotifierService_Run_UserWithoutTodayBirthdaysSkipped(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	user := *testutil.NewTestUser(1, 123, "en")
	foreign := *testutil.NewTestBirthday(10, 99, "Alice", time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC))

	mockUsers := new(testutil.MockUserRepository)
	mockBirthdays := new(testutil.MockBirthdayRepository)
	mockSender := new(testutil.MockSender)

	mockUsers.On("GetNotifiable", "09:00").Return([]domain.User{user}, nil)
	mockBirthdays.On("GetByMonthDay", 3, 15).Return([]domain.Birthday{foreign}, nil)

	svc := NewNotifierService(mockUsers, mockBirthdays, mockSender, testutil.NewTestLogger())

	assert.NoError(t, svc.Run(now))

	mockSender.AssertNotCalled(t, "SendMessage", mock.Anything, mock.Anything)
}

func TestNotifierService_Run_SendFailureDoesNotStopOthers(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	first := *testutil.NewTestUser(1, 123, "en")
	second := *testutil.NewTestUser(2, 456, "ru")

	mockUsers := new(testutil.MockUserRepository)
	mockBirthdays := new(testutil.MockBirthdayRepository)
	mockSender := new(testutil.MockSender)

	mockUsers.On("GetNotifiable", "09:00").Return([]domain.User{first, second}, nil)
	mockBirthdays.On("GetByMonthDay", 3, 15).Return([]domain.Birthday{
		*testutil.NewTestBirthday(10, 1, "Alice", time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)),
		*testutil.NewTestBirthday(11, 2, "Bob", time.Date(1985, 3, 15, 0, 0, 0, 0, time.UTC)),
	}, nil)
	mockSender.On("SendMessage", int64(123), mock.Anything).Return(fmt.Errorf("blocked by user"))
	mockSender.On("SendMessage", int64(456), mock.Anything).Return(nil)

	svc := NewNotifierService(mockUsers, mockBirthdays, mockSender, testutil.NewTestLogger())

	assert.NoError(t, svc.Run(now))

	mockSender.AssertExpectations(t)
}

func TestNotifierService_Run_RepoErrors(t *testing.T) {
	now := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	t.Run("user lookup fails", func(t *testing.T) {
		mockUsers := new(testutil.MockUserRepository)
		mockBirthdays := new(testutil.MockBirthdayRepository)
		mockUsers.On("GetNotifiable", "09:00").Return(nil, fmt.Errorf("db error"))

		svc := NewNotifierService(mockUsers, mockBirthdays, new(testutil.MockSender), testutil.NewTestLogger())

		assert.Error(t, svc.Run(now))
	})

	t.Run("birthday lookup fails", func(t *testing.T) {
		mockUsers := new(testutil.MockUserRepository)
		mockBirthdays := new(testutil.MockBirthdayRepository)
		mockUsers.On("GetNotifiable", "09:00").Return([]domain.User{*testutil.NewTestUser(1, 123, "en")}, nil)
		mockBirthdays.On("GetByMonthDay", 3, 15).Return(nil, fmt.Errorf("db error"))

		svc := NewNotifierService(mockUsers, mockBirthdays, new(testutil.MockSender), testutil.NewTestLogger())

		assert.Error(t, svc.Run(now))
	})
}
