// Package session tracks per-user conversation state for multi-step flows.
package session

// State identifies a step in a multi-step conversation
type State string

const (
	// StateIdle means no conversation is in progress; free text is ignored
	StateIdle State = ""

	StateAddingBirthdayName  State = "adding_birthday_name"
	StateAddingBirthdayDate  State = "adding_birthday_date"
	StateAddingBirthdayNotes State = "adding_birthday_notes"

	StateEditingName  State = "editing_name"
	StateEditingDate  State = "editing_date"
	StateEditingNotes State = "editing_notes"

	StateSettingCustomTime State = "setting_custom_time"
	StateImportingCSV      State = "importing_csv"
)

// Scratch data keys used by the conversation flows
const (
	KeyName       = "name"
	KeyBirthDate  = "birthDate"
	KeyCategory   = "category"
	KeyNotes      = "notes"
	KeyBirthdayID = "birthdayId"
)

// Session holds a user's current conversation state and scratch data
type Session struct {
	State State
	Data  map[string]interface{}
}

// Store keeps per-user sessions. Implementations must create an empty session
// lazily on first access and keep users isolated from each other.
type Store interface {
	// Get returns a snapshot of the user's session
	Get(userID int64) Session
	// SetState sets the conversation state, merging data into existing
	// scratch data rather than replacing it
	SetState(userID int64, state State, data map[string]interface{})
	// ClearState resets both state and scratch data
	ClearState(userID int64)
	// GetData returns the whole scratch data map
	GetData(userID int64) map[string]interface{}
	// GetValue returns a single scratch value by key
	GetValue(userID int64, key string) (interface{}, bool)
	// SetData stores a single scratch value
	SetData(userID int64, key string, value interface{})
}
