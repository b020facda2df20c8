package postgres

import (
	"database/sql"
	"time"

	"github.com/dmalofieiev/birthday-reminder-pro/internal/domain"
)

// BirthdayRepo implements repository.BirthdayRepository
type BirthdayRepo struct {
	db *sql.DB
}

// NewBirthdayRepo creates a new birthday repository
func NewBirthdayRepo(db *sql.DB) *BirthdayRepo {
	return &BirthdayRepo{db: db}
}

const birthdayColumns = `id, user_id, name, birth_date, category, notes, created_at, updated_at`

// Create inserts a new birthday and returns the stored record
func (r *BirthdayRepo) Create(birthday *domain.Birthday) (*domain.Birthday, error) {
	query := `
		INSERT INTO birthdays (user_id, name, birth_date, category, notes)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + birthdayColumns
	row := r.db.QueryRow(query,
		birthday.UserID, birthday.Name, birthday.BirthDate,
		string(birthday.Category), birthday.Notes,
	)
	return scanBirthday(row)
}

// GetByID returns the birthday with the given id, or nil
func (r *BirthdayRepo) GetByID(id int64) (*domain.Birthday, error) {
	query := `SELECT ` + birthdayColumns + ` FROM birthdays WHERE id = $1`
	birthday, err := scanBirthday(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return birthday, err
}

// GetByUserID returns all birthdays owned by the user
func (r *BirthdayRepo) GetByUserID(userID int64) ([]domain.Birthday, error) {
	query := `SELECT ` + birthdayColumns + ` FROM birthdays WHERE user_id = $1 ORDER BY name`
	return r.queryBirthdays(query, userID)
}

// UpdateName changes the name field
func (r *BirthdayRepo) UpdateName(id int64, name string) error {
	query := `UPDATE birthdays SET name = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(query, id, name)
	return err
}

// UpdateDate changes the birth date field
func (r *BirthdayRepo) UpdateDate(id int64, birthDate time.Time) error {
	query := `UPDATE birthdays SET birth_date = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(query, id, birthDate)
	return err
}

// UpdateCategory changes the category field
func (r *BirthdayRepo) UpdateCategory(id int64, category domain.Category) error {
	query := `UPDATE birthdays SET category = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(query, id, string(category))
	return err
}

// UpdateNotes changes the notes field
func (r *BirthdayRepo) UpdateNotes(id int64, notes string) error {
	query := `UPDATE birthdays SET notes = $2, updated_at = NOW() WHERE id = $1`
	_, err := r.db.Exec(query, id, notes)
	return err
}

// Delete removes the birthday record
func (r *BirthdayRepo) Delete(id int64) error {
	query := `DELETE FROM birthdays WHERE id = $1`
	_, err := r.db.Exec(query, id)
	return err
}

// GetByMonthDay returns all birthdays falling on the given calendar day,
// used by the daily notifier
func (r *BirthdayRepo) GetByMonthDay(month, day int) ([]domain.Birthday, error) {
	query := `
		SELECT ` + birthdayColumns + `
		FROM birthdays
		WHERE EXTRACT(MONTH FROM birth_date) = $1 AND EXTRACT(DAY FROM birth_date) = $2
	`
	return r.queryBirthdays(query, month, day)
}

func (r *BirthdayRepo) queryBirthdays(query string, args ...interface{}) ([]domain.Birthday, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var birthdays []domain.Birthday
	for rows.Next() {
		var b domain.Birthday
		var category string
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.Name, &b.BirthDate, &category, &b.Notes,
			&b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		b.Category = domain.Category(category)
		birthdays = append(birthdays, b)
	}

	return birthdays, rows.Err()
}

func scanBirthday(row rowScanner) (*domain.Birthday, error) {
	var b domain.Birthday
	var category string
	err := row.Scan(
		&b.ID, &b.UserID, &b.Name, &b.BirthDate, &category, &b.Notes,
		&b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.Category = domain.Category(category)
	return &b, nil
}
