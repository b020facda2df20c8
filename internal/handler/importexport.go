package handler

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dmalofieiev/birthday-reminder-pro/internal/domain"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/session"
	"github.com/dmalofieiev/birthday-reminder-pro/internal/validate"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

func (h *Handler) showExportMenu(c tele.Context, user *domain.User) error {
	return h.reply(c, user, h.t(user, "settings.chooseExport"), h.exportMarkup(user))
}

func (h *Handler) exportBirthdays(c tele.Context, user *domain.User, format string) error {
	birthdays, err := h.birthdays.List(user.ID)
	if err != nil {
		return h.fail(c, user, err, "Failed to export birthdays")
	}
	if len(birthdays) == 0 {
		return h.reply(c, user, h.t(user, "settings.exportEmpty"), h.backToSettingsMarkup(user))
	}

	var buf bytes.Buffer
	var filename, mime string
	switch format {
	case "json":
		if err := writeExportJSON(&buf, birthdays); err != nil {
			return h.fail(c, user, err, "Failed to encode export")
		}
		filename, mime = "birthdays.json", "application/json"
	default:
		if err := writeExportCSV(&buf, birthdays); err != nil {
			return h.fail(c, user, err, "Failed to encode export")
		}
		filename, mime = "birthdays.csv", "text/csv"
	}

	if err := c.Respond(); err != nil {
		h.logger.Warn("Failed to acknowledge callback", zap.Error(err))
	}
	doc := &tele.Document{
		File:     tele.FromReader(&buf),
		FileName: filename,
		MIME:     mime,
	}
	return c.Send(doc)
}

func writeExportCSV(w io.Writer, birthdays []domain.Birthday) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Name", "Date", "Category", "Notes"}); err != nil {
		return err
	}
	for _, b := range birthdays {
		if err := cw.Write([]string{b.Name, b.DisplayDate(), string(b.Category), b.Notes}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type exportEntry struct {
	Name     string `json:"name"`
	Date     string `json:"date"`
	Category string `json:"category"`
	Notes    string `json:"notes,omitempty"`
}

func writeExportJSON(w io.Writer, birthdays []domain.Birthday) error {
	entries := make([]exportEntry, 0, len(birthdays))
	for _, b := range birthdays {
		entries = append(entries, exportEntry{
			Name:     b.Name,
			Date:     b.DisplayDate(),
			Category: string(b.Category),
			Notes:    b.Notes,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

func (h *Handler) startImport(c tele.Context, user *domain.User) error {
	h.sessions.ClearState(user.TelegramID)
	h.sessions.SetState(user.TelegramID, session.StateImportingCSV, nil)
	return h.reply(c, user, h.t(user, "settings.importPrompt"), h.cancelMarkup(user))
}

// handleDocument accepts a CSV upload, but only while an import is pending
func (h *Handler) handleDocument(c tele.Context) error {
	user := ctxUser(c)
	if user == nil {
		return nil
	}
	if h.sessions.Get(user.TelegramID).State != session.StateImportingCSV {
		return nil
	}

	doc := c.Message().Document
	if doc == nil {
		return nil
	}

	rc, err := h.bot.File(&doc.File)
	if err != nil {
		return h.fail(c, user, err, "Failed to download import file")
	}
	defer rc.Close()

	added, skipped := h.importBirthdays(user, rc)

	h.sessions.ClearState(user.TelegramID)
	h.logger.Info("CSV import finished",
		zap.Int64("telegram_id", user.TelegramID),
		zap.Int("added", added),
		zap.Int("skipped", skipped),
	)
	return c.Send(fmt.Sprintf(h.t(user, "settings.importDone"), added, skipped), h.backToSettingsMarkup(user))
}

// importBirthdays reads CSV rows and saves the valid ones. A malformed row
// is counted as skipped, never aborts the rest of the file.
func (h *Handler) importBirthdays(user *domain.User, r io.Reader) (added, skipped int) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			skipped++
			continue
		}
		name, date, category, notes, err := parseImportRow(record)
		if err != nil {
			skipped++
			continue
		}
		if _, err := h.birthdays.Create(user.ID, name, date, category, notes); err != nil {
			h.logger.Warn("Failed to save imported birthday",
				zap.Error(err),
				zap.Int64("telegram_id", user.TelegramID),
			)
			skipped++
			continue
		}
		added++
	}
	return added, skipped
}

// parseImportRow validates a Name,Date[,Category[,Notes]] record.
// The category defaults to "other"; a header row fails date validation
// and is counted as skipped like any other bad row.
func parseImportRow(record []string) (name string, date time.Time, category domain.Category, notes string, err error) {
	if len(record) < 2 {
		err = fmt.Errorf("row needs at least a name and a date")
		return
	}
	name, err = validate.Name(record[0])
	if err != nil {
		return
	}
	date, err = validate.Date(strings.TrimSpace(record[1]))
	if err != nil {
		return
	}
	category = domain.CategoryOther
	if len(record) > 2 && strings.TrimSpace(record[2]) != "" {
		category, err = validate.Category(strings.ToLower(strings.TrimSpace(record[2])))
		if err != nil {
			return
		}
	}
	if len(record) > 3 {
		notes = strings.TrimSpace(record[3])
	}
	return
}
