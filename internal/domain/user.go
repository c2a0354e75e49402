package domain

// Mode represents what the next free-text message of a user means
type Mode string

const (
	ModeIdle           Mode = "idle"
	ModeAwaitingAnswer Mode = "awaiting_answer"
	ModeAwaitingUpload Mode = "awaiting_upload"
)

// Stats holds store-wide totals for the periodic report
type Stats struct {
	Users           int `db:"users"`
	Words           int `db:"words"`
	ScheduleEntries int `db:"schedule_entries"`
}
