package handler

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/dmalofieiev/birthday-reminder-pro/internal/domain"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestParseImportRow(t *testing.T) {
	tests := []struct {
		name             string
		record           []string
		expectedError    bool
		expectedName     string
		expectedDate     time.Time
		expectedCategory domain.Category
		expectedNotes    string
	}{
		{
			name:             "full row",
			record:           []string{"John Smith", "15.03.1990", "friends", "Best friend"},
			expectedName:     "John Smith",
			expectedDate:     time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC),
			expectedCategory: domain.CategoryFriends,
			expectedNotes:    "Best friend",
		},
		{
			name:             "name and date only defaults to other",
			record:           []string{"Jane", "01.12.1985"},
			expectedName:     "Jane",
			expectedDate:     time.Date(1985, 12, 1, 0, 0, 0, 0, time.UTC),
			expectedCategory: domain.CategoryOther,
		},
		{
			name:             "category normalized to lowercase",
			record:           []string{"Jane", "01.12.1985", "Family"},
			expectedName:     "Jane",
			expectedDate:     time.Date(1985, 12, 1, 0, 0, 0, 0, time.UTC),
			expectedCategory: domain.CategoryFamily,
		},
		{
			name:             "empty category column defaults to other",
			record:           []string{"Jane", "01.12.1985", "", "note"},
			expectedName:     "Jane",
			expectedDate:     time.Date(1985, 12, 1, 0, 0, 0, 0, time.UTC),
			expectedCategory: domain.CategoryOther,
			expectedNotes:    "note",
		},
		{name: "header row rejected on date", record: []string{"Name", "Date", "Category", "Notes"}, expectedError: true},
		{name: "too few columns", record: []string{"Jane"}, expectedError: true},
		{name: "empty name", record: []string{"  ", "01.12.1985"}, expectedError: true},
		{name: "bad date", record: []string{"Jane", "31.04.2020"}, expectedError: true},
		{name: "unknown category", record: []string{"Jane", "01.12.1985", "enemies"}, expectedError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			name, date, category, notes, err := parseImportRow(tt.record)

			if tt.expectedError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedName, name)
			assert.Equal(t, tt.expectedDate, date)
			assert.Equal(t, tt.expectedCategory, category)
			assert.Equal(t, tt.expectedNotes, notes)
		})
	}
}

func TestWriteExportCSV(t *testing.T) {
	birthdays := []domain.Birthday{
		*testutil.NewTestBirthday(1, 7, "Alice", time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)),
		*testutil.NewTestBirthday(2, 7, "Bob", time.Date(1985, 12, 1, 0, 0, 0, 0, time.UTC)),
	}
	birthdays[1].Notes = "brings cake"

	var buf bytes.Buffer
	require.NoError(t, writeExportCSV(&buf, birthdays))

	out := buf.String()
	assert.Contains(t, out, "Name,Date,Category,Notes")
	assert.Contains(t, out, "Alice,15.03.1990,friends,")
	assert.Contains(t, out, "Bob,01.12.1985,friends,brings cake")
}

func TestWriteExportJSON(t *testing.T) {
	birthdays := []domain.Birthday{
		*testutil.NewTestBirthday(1, 7, "Alice", time.Date(1990, 3, 15, 0, 0, 0, 0, time.UTC)),
	}

	var buf bytes.Buffer
	require.NoError(t, writeExportJSON(&buf, birthdays))

	var entries []exportEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "Alice", entries[0].Name)
	assert.Equal(t, "15.03.1990", entries[0].Date)
	assert.Equal(t, "friends", entries[0].Category)
}

func TestImportBirthdays_CountsAddedAndSkipped(t *testing.T) {
	mockRepo := new(testutil.MockBirthdayRepository)
	mockRepo.On("Create", mock.AnythingOfType("*domain.Birthday")).Return(
		testutil.NewTestBirthday(1, 7, "x", time.Now()), nil)

	h := newTestHandler(t, nil, mockRepo)
	user := testutil.NewTestUser(7, 123, "en")

	csv := "Name,Date,Category,Notes\n" +
		"John Smith,15.03.1990,friends,Best friend\n" +
		"Jane,01.12.1985\n" +
		"Broken,31.04.2020,family,nope\n"

	added, skipped := h.importBirthdays(user, bytes.NewBufferString(csv))

	assert.Equal(t, 2, added)
	assert.Equal(t, 2, skipped) // header plus the bad date
	mockRepo.AssertNumberOfCalls(t, "Create", 2)
}
