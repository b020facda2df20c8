package postgres

import (
	"database/sql"

	"github.com/dmalofieiev/birthday-reminder-pro/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, telegram_id, first_name, last_name, username, language,
		notification_time, notifications_enabled, created_at, updated_at`

// Create inserts a new user and returns the stored record
func (r *UserRepo) Create(user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (telegram_id, first_name, last_name, username, language)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns
	row := r.db.QueryRow(query,
		user.TelegramID, user.FirstName, user.LastName, user.Username, user.Language,
	)
	return scanUser(row)
}

// GetByTelegramID returns the user with the given Telegram id, or nil
func (r *UserRepo) GetByTelegramID(telegramID int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE telegram_id = $1`
	user, err := scanUser(r.db.QueryRow(query, telegramID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return user, err
}

// UpdateLanguage changes the user's language preference
func (r *UserRepo) UpdateLanguage(telegramID int64, language string) error {
	query := `UPDATE users SET language = $2, updated_at = NOW() WHERE telegram_id = $1`
	_, err := r.db.Exec(query, telegramID, language)
	return err
}

// UpdateNotificationTime changes the user's daily notification time
func (r *UserRepo) UpdateNotificationTime(telegramID int64, notificationTime string) error {
	query := `UPDATE users SET notification_time = $2, updated_at = NOW() WHERE telegram_id = $1`
	_, err := r.db.Exec(query, telegramID, notificationTime)
	return err
}

// UpdateNotificationsEnabled toggles the user's notifications
func (r *UserRepo) UpdateNotificationsEnabled(telegramID int64, enabled bool) error {
	query := `UPDATE users SET notifications_enabled = $2, updated_at = NOW() WHERE telegram_id = $1`
	_, err := r.db.Exec(query, telegramID, enabled)
	return err
}

// Delete removes the user; birthdays cascade via the foreign key
func (r *UserRepo) Delete(telegramID int64) error {
	query := `DELETE FROM users WHERE telegram_id = $1`
	_, err := r.db.Exec(query, telegramID)
	return err
}

// GetNotifiable returns users due a notification at the given HH:MM
func (r *UserRepo) GetNotifiable(timeHHMM string) ([]domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users
		WHERE notifications_enabled = TRUE AND notification_time = $1
	`
	rows, err := r.db.Query(query, timeHHMM)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(
			&u.ID, &u.TelegramID, &u.FirstName, &u.LastName, &u.Username,
			&u.Language, &u.NotificationTime, &u.NotificationsEnabled,
			&u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*domain.User, error) {
	var u domain.User
	err := row.Scan(
		&u.ID, &u.TelegramID, &u.FirstName, &u.LastName, &u.Username,
		&u.Language, &u.NotificationTime, &u.NotificationsEnabled,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
