package models

// NoneDescription is rendered in place of a null gist description.
const NoneDescription = "None"

// GistRecord holds the projected fields of the newest gist at the moment a change fired.
type GistRecord struct {
	ID          string
	CreatedAt   string // already formatted as 02/Jan/2006 15:04:05
	Description string
	URL         string
}

// Alert is the notification handed to every enabled sink.
type Alert struct {
	Identity string
	Record   GistRecord
	Text     string
}
