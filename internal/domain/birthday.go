package domain

import "time"

// Category classifies a birthday record
type Category string

const (
	CategoryFamily     Category = "family"
	CategoryFriends    Category = "friends"
	CategoryColleagues Category = "colleagues"
	CategoryOther      Category = "other"
)

// Categories lists all valid categories in display order
var Categories = []Category{
	CategoryFamily,
	CategoryFriends,
	CategoryColleagues,
	CategoryOther,
}

// IsValid reports whether the category is a member of the fixed enumeration
func (c Category) IsValid() bool {
	switch c {
	case CategoryFamily, CategoryFriends, CategoryColleagues, CategoryOther:
		return true
	}
	return false
}

// LocaleKey returns the dotted locale key for the category label
func (c Category) LocaleKey() string {
	return "birthday.categories." + string(c)
}

// Birthday represents a stored birthday record owned by a single user
type Birthday struct {
	ID        int64
	UserID    int64
	Name      string
	BirthDate time.Time
	Category  Category
	Notes     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Age returns the current age, counting a birthday as reached on the day
// itself
func (b Birthday) Age(now time.Time) int {
	age := now.Year() - b.BirthDate.Year()
	if now.Month() < b.BirthDate.Month() ||
		(now.Month() == b.BirthDate.Month() && now.Day() < b.BirthDate.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}

// NextOccurrence returns the next anniversary of the birth date, today counting
// as upcoming
func (b Birthday) NextOccurrence(now time.Time) time.Time {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	next := time.Date(now.Year(), b.BirthDate.Month(), b.BirthDate.Day(), 0, 0, 0, 0, now.Location())
	if next.Before(today) {
		next = time.Date(now.Year()+1, b.BirthDate.Month(), b.BirthDate.Day(), 0, 0, 0, 0, now.Location())
	}
	return next
}

// DaysUntil returns the number of whole days until the next occurrence.
// The difference is taken between UTC midnights so a DST transition
// (23- or 25-hour local day) cannot skew the count.
func (b Birthday) DaysUntil(now time.Time) int {
	next := b.NextOccurrence(now)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	nextDay := time.Date(next.Year(), next.Month(), next.Day(), 0, 0, 0, 0, time.UTC)
	return int(nextDay.Sub(today).Hours() / 24)
}

// IsToday reports whether the birthday falls on today's month and day
func (b Birthday) IsToday(now time.Time) bool {
	return b.BirthDate.Month() == now.Month() && b.BirthDate.Day() == now.Day()
}

// DisplayDate formats the birth date for user display (DD.MM.YYYY)
func (b Birthday) DisplayDate() string {
	return b.BirthDate.Format("02.01.2006")
}
