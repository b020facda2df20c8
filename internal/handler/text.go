package handler

import (
	"strings"

	tele "gopkg.in/telebot.v3"
)

// handleText routes free text by the user's current conversation state.
// The state table is built once in NewHandler; a single lookup decides
// the step, so no handler needs to inspect the state itself.
func (h *Handler) handleText(c tele.Context) error {
	user := ctxUser(c)
	if user == nil {
		return nil
	}

	text := c.Text()
	if strings.HasPrefix(text, "/") {
		// Unknown commands fall through to OnText; never treat them as input
		return nil
	}

	step, ok := h.textHandlers[h.sessions.Get(user.TelegramID).State]
	if !ok {
		// Idle, or a state fed by buttons or documents: free text is ignored
		return nil
	}
	return step(c, user, text)
}
