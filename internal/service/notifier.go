package service

import (
	"fmt"
	"time"

	"github.com/dmalofieiev/birthday-reminder-pro/internal/domain"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/locales"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/repository"

	"go.uber.org/zap"
)

// Sender delivers a text message to a Telegram chat
type Sender interface {
	SendMessage(telegramID int64, text string) error
}

// NotifierService sends the daily birthday reminders. Run is invoked once a
// minute; users whose notification time matches the current HH:MM and who
// have a birthday today get a message.
type NotifierService struct {
	userRepo     repository.UserRepository
	birthdayRepo repository.BirthdayRepository
	sender       Sender
	logger       *zap.Logger
}

// NewNotifierService creates a new notifier service
func NewNotifierService(
	userRepo repository.UserRepository,
	birthdayRepo repository.BirthdayRepository,
	sender Sender,
	logger *zap.Logger,
) *NotifierService {
	return &NotifierService{
		userRepo:     userRepo,
		birthdayRepo: birthdayRepo,
		sender:       sender,
		logger:       logger,
	}
}

// Run performs one notification tick for the given instant
func (s *NotifierService) Run(now time.Time) error {
	timeHHMM := now.Format("15:04")

	users, err := s.userRepo.GetNotifiable(timeHHMM)
	if err != nil {
		return fmt.Errorf("get notifiable users: %w", err)
	}
	if len(users) == 0 {
		return nil
	}

	birthdays, err := s.birthdayRepo.GetByMonthDay(int(now.Month()), now.Day())
	if err != nil {
		return fmt.Errorf("get today's birthdays: %w", err)
	}

	byOwner := make(map[int64][]domain.Birthday)
	for _, b := range birthdays {
		byOwner[b.UserID] = append(byOwner[b.UserID], b)
	}

	for _, user := range users {
		todays := byOwner[user.ID]
		if len(todays) == 0 {
			continue
		}

		text := locales.T(user.Language, "notifications.today") + "\n"
		for _, b := range todays {
			text += fmt.Sprintf("\n🎉 %s — %d", b.Name, b.Age(now))
		}

		if err := s.sender.SendMessage(user.TelegramID, text); err != nil {
			// One failed delivery must not block the rest
			s.logger.Error("Failed to send birthday notification",
				zap.Int64("telegram_id", user.TelegramID),
				zap.Error(err),
			)
			continue
		}

		s.logger.Info("Birthday notification sent",
			zap.Int64("telegram_id", user.TelegramID),
			zap.Int("birthdays", len(todays)),
		)
	}

	return nil
}
