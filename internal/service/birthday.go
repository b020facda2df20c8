package service

import (
	"fmt"
	"sort"
	"time"

	"github.com/dmalofieiev/birthday-reminder-pro/internal/domain"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/repository"
)

// BirthdayService handles birthday CRUD with ownership checks
type BirthdayService struct {
	birthdayRepo repository.BirthdayRepository
}

// NewBirthdayService creates a new birthday service
func NewBirthdayService(birthdayRepo repository.BirthdayRepository) *BirthdayService {
	return &BirthdayService{birthdayRepo: birthdayRepo}
}

// Create stores a new birthday. Name, date and category are required; notes
// may be empty.
func (s *BirthdayService) Create(userID int64, name string, birthDate time.Time, category domain.Category, notes string) (*domain.Birthday, error) {
	if name == "" || birthDate.IsZero() || !category.IsValid() {
		return nil, fmt.Errorf("name, birth date and category are required")
	}

	return s.birthdayRepo.Create(&domain.Birthday{
		UserID:    userID,
		Name:      name,
		BirthDate: birthDate,
		Category:  category,
		Notes:     notes,
	})
}

// Get returns the birthday if it exists and belongs to the user, otherwise
// ErrNotFound
func (s *BirthdayService) Get(userID, id int64) (*domain.Birthday, error) {
	birthday, err := s.birthdayRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if birthday == nil || birthday.UserID != userID {
		return nil, ErrNotFound
	}
	return birthday, nil
}

// List returns the user's birthdays sorted by proximity to today
func (s *BirthdayService) List(userID int64) ([]domain.Birthday, error) {
	birthdays, err := s.birthdayRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	sortByProximity(birthdays, time.Now())
	return birthdays, nil
}

// Upcoming returns the user's birthdays falling within the next N days,
// sorted by proximity
func (s *BirthdayService) Upcoming(userID int64, days int) ([]domain.Birthday, error) {
	birthdays, err := s.birthdayRepo.GetByUserID(userID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	upcoming := birthdays[:0]
	for _, b := range birthdays {
		if b.DaysUntil(now) <= days {
			upcoming = append(upcoming, b)
		}
	}
	sortByProximity(upcoming, now)
	return upcoming, nil
}

// UpdateName changes the name after an ownership check
func (s *BirthdayService) UpdateName(userID, id int64, name string) error {
	if _, err := s.Get(userID, id); err != nil {
		return err
	}
	return s.birthdayRepo.UpdateName(id, name)
}

// UpdateDate changes the birth date after an ownership check
func (s *BirthdayService) UpdateDate(userID, id int64, birthDate time.Time) error {
	if _, err := s.Get(userID, id); err != nil {
		return err
	}
	return s.birthdayRepo.UpdateDate(id, birthDate)
}

// UpdateCategory changes the category after an ownership check
func (s *BirthdayService) UpdateCategory(userID, id int64, category domain.Category) error {
	if !category.IsValid() {
		return fmt.Errorf("invalid category %q", category)
	}
	if _, err := s.Get(userID, id); err != nil {
		return err
	}
	return s.birthdayRepo.UpdateCategory(id, category)
}

// UpdateNotes changes the notes after an ownership check; empty notes are
// allowed
func (s *BirthdayService) UpdateNotes(userID, id int64, notes string) error {
	if _, err := s.Get(userID, id); err != nil {
		return err
	}
	return s.birthdayRepo.UpdateNotes(id, notes)
}

// Delete removes the birthday after an ownership check
func (s *BirthdayService) Delete(userID, id int64) error {
	if _, err := s.Get(userID, id); err != nil {
		return err
	}
	return s.birthdayRepo.Delete(id)
}

func sortByProximity(birthdays []domain.Birthday, now time.Time) {
	sort.SliceStable(birthdays, func(i, j int) bool {
		return birthdays[i].DaysUntil(now) < birthdays[j].DaysUntil(now)
	})
}
