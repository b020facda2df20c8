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

func TestBirthdayService_Create(t *testing.T) {
	birthDate := time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		inputName     string
		birthDate     time.Time
		category      domain.Category
		expectedError bool
	}{
		{
			name:      "valid birthday",
			inputName: "Alice",
			birthDate: birthDate,
			category:  domain.CategoryFamily,
		},
		{
			name:          "missing name",
			inputName:     "",
			birthDate:     birthDate,
			category:      domain.CategoryFamily,
			expectedError: true,
		},
		{
			name:          "missing date",
			inputName:     "Alice",
			category:      domain.CategoryFamily,
			expectedError: true,
		},
		{
			name:          "invalid category",
			inputName:     "Alice",
			birthDate:     birthDate,
			category:      domain.Category("enemies"),
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockBirthdayRepository)
			if !tt.expectedError {
				mockRepo.On("Create", mock.MatchedBy(func(b *domain.Birthday) bool {
					return b.UserID == 7 && b.Name == tt.inputName && b.Category == tt.category
				})).Return(testutil.NewTestBirthday(1, 7, tt.inputName, tt.birthDate), nil)
			}

			svc := NewBirthdayService(mockRepo)

			birthday, err := svc.Create(7, tt.inputName, tt.birthDate, tt.category, "notes")

			if tt.expectedError {
				assert.Error(t, err)
				assert.Nil(t, birthday)
				mockRepo.AssertNotCalled(t, "Create", mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, birthday)
				mockRepo.AssertExpectations(t)
			}
		})
	}
}

func TestBirthdayService_Get_Ownership(t *testing.T) {
	birthDate := time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		userID        int64
		stored        *domain.Birthday
		repoError     error
		expectedError error
	}{
		{
			name:   "owned birthday",
			userID: 7,
			stored: testutil.NewTestBirthday(1, 7, "Alice", birthDate),
		},
		{
			name:          "missing birthday",
			userID:        7,
			stored:        nil,
			expectedError: ErrNotFound,
		},
		{
			name:          "foreign birthday is reported as not found",
			userID:        7,
			stored:        testutil.NewTestBirthday(1, 99, "Alice", birthDate),
			expectedError: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(testutil.MockBirthdayRepository)
			mockRepo.On("GetByID", int64(1)).Return(tt.stored, tt.repoError)

			svc := NewBirthdayService(mockRepo)

			birthday, err := svc.Get(tt.userID, 1)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, birthday)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.stored, birthday)
			}
			mockRepo.AssertExpectations(t)
		})
	}
}

func TestBirthdayService_List_SortedByProximity(t *testing.T) {
	now := time.Now()
	soon := now.AddDate(-30, 0, 3)   // 3 days from now
	sooner := now.AddDate(-25, 0, 1) // tomorrow
	later := now.AddDate(-40, 0, 10) // 10 days from now

	mockRepo := new(testutil.MockBirthdayRepository)
	mockRepo.On("GetByUserID", int64(7)).Return([]domain.Birthday{
		*testutil.NewTestBirthday(1, 7, "Soon", soon),
		*testutil.NewTestBirthday(2, 7, "Later", later),
		*testutil.NewTestBirthday(3, 7, "Sooner", sooner),
	}, nil)

	svc := NewBirthdayService(mockRepo)

	birthdays, err := svc.List(7)

	assert.NoError(t, err)
	assert.Len(t, birthdays, 3)
	assert.Equal(t, "Sooner", birthdays[0].Name)
	assert.Equal(t, "Soon", birthdays[1].Name)
	assert.Equal(t, "Later", birthdays[2].Name)
	mockRepo.AssertExpectations(t)
}

func TestBirthdayService_Upcoming_FiltersWindow(t *testing.T) {
	now := time.Now()
	inWindow := now.AddDate(-30, 0, 5)   // 5 days from now
	outOfWindow := now.AddDate(-30, 0, 40) // 40 days from now

	mockRepo := new(testutil.MockBirthdayRepository)
	mockRepo.On("GetByUserID", int64(7)).Return([]domain.Birthday{
		*testutil.NewTestBirthday(1, 7, "InWindow", inWindow),
		*testutil.NewTestBirthday(2, 7, "OutOfWindow", outOfWindow),
	}, nil)

	svc := NewBirthdayService(mockRepo)

	birthdays, err := svc.Upcoming(7, 30)

	assert.NoError(t, err)
	assert.Len(t, birthdays, 1)
	assert.Equal(t, "InWindow", birthdays[0].Name)
	mockRepo.AssertExpectations(t)
}

func TestBirthdayService_Update_OwnershipChecked(t *testing.T) {
	birthDate := time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)
	owned := testutil.NewTestBirthday(1, 7, "Alice", birthDate)
	newDate := time.Date(1991, 4, 16, 0, 0, 0, 0, time.UTC)

	t.Run("update name on owned record", func(t *testing.T) {
		mockRepo := new(testutil.MockBirthdayRepository)
		mockRepo.On("GetByID", int64(1)).Return(owned, nil)
		mockRepo.On("UpdateName", int64(1), "Bob").Return(nil)

		svc := NewBirthdayService(mockRepo)

		assert.NoError(t, svc.UpdateName(7, 1, "Bob"))
		mockRepo.AssertExpectations(t)
	})

	t.Run("update date on owned record", func(t *testing.T) {
		mockRepo := new(testutil.MockBirthdayRepository)
		mockRepo.On("GetByID", int64(1)).Return(owned, nil)
		mockRepo.On("UpdateDate", int64(1), newDate).Return(nil)

		svc := NewBirthdayService(mockRepo)

		assert.NoError(t, svc.UpdateDate(7, 1, newDate))
		mockRepo.AssertExpectations(t)
	})

	t.Run("update notes allows empty string", func(t *testing.T) {
		mockRepo := new(testutil.MockBirthdayRepository)
		mockRepo.On("GetByID", int64(1)).Return(owned, nil)
		mockRepo.On("UpdateNotes", int64(1), "").Return(nil)

		svc := NewBirthdayService(mockRepo)

		assert.NoError(t, svc.UpdateNotes(7, 1, ""))
		mockRepo.AssertExpectations(t)
	})

	t.Run("update on foreign record rejected", func(t *testing.T) {
		mockRepo := new(testutil.MockBirthdayRepository)
		mockRepo.On("GetByID", int64(1)).Return(owned, nil)

		svc := NewBirthdayService(mockRepo)

		err := svc.UpdateName(99, 1, "Bob")
		assert.ErrorIs(t, err, ErrNotFound)
		mockRepo.AssertNotCalled(t, "UpdateName", mock.Anything, mock.Anything)
	})

	t.Run("update category validates enumeration", func(t *testing.T) {
		mockRepo := new(testutil.MockBirthdayRepository)

		svc := NewBirthdayService(mockRepo)

		err := svc.UpdateCategory(7, 1, domain.Category("enemies"))
		assert.Error(t, err)
		mockRepo.AssertNotCalled(t, "GetByID", mock.Anything)
	})
}

func TestBirthdayService_Delete(t *testing.T) {
	birthDate := time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)

	t.Run("owned record deleted", func(t *testing.T) {
		mockRepo := new(testutil.MockBirthdayRepository)
		mockRepo.On("GetByID", int64(1)).Return(testutil.NewTestBirthday(1, 7, "Alice", birthDate), nil)
		mockRepo.On("Delete", int64(1)).Return(nil)

		svc := NewBirthdayService(mockRepo)

		assert.NoError(t, svc.Delete(7, 1))
		mockRepo.AssertExpectations(t)
	})

	t.Run("foreign record rejected as not found", func(t *testing.T) {
		mockRepo := new(testutil.MockBirthdayRepository)
		mockRepo.On("GetByID", int64(1)).Return(testutil.NewTestBirthday(1, 99, "Alice", birthDate), nil)

		svc := NewBirthdayService(mockRepo)

		err := svc.Delete(7, 1)
		assert.ErrorIs(t, err, ErrNotFound)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything)
	})

	t.Run("repo error propagates", func(t *testing.T) {
		mockRepo := new(testutil.MockBirthdayRepository)
		mockRepo.On("GetByID", int64(1)).Return(nil, fmt.Errorf("db error"))

		svc := NewBirthdayService(mockRepo)

		assert.Error(t, svc.Delete(7, 1))
	})
}
