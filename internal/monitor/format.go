package monitor

import (
	"fmt"
	"strings"
	"time"

	"github.com/aleister1102/gistwatch/internal/models"
)

// TimestampLayout renders gist creation times, e.g. 12/Sep/2019 22:42:02.
const TimestampLayout = "02/Jan/2006 15:04:05"

const alertFormat = `New GIST has been created by %s at %s, with description of "%s", accessed at %s`

// FormatTimestamp converts an API timestamp such as 2019-09-12T22:42:02Z to
// TimestampLayout. The offset of the input is kept; nothing is converted to local time.
func FormatTimestamp(createdAt string) (string, error) {
	value := strings.TrimSpace(createdAt)
	if strings.HasSuffix(value, "Z") {
		value = strings.TrimSuffix(value, "Z") + "+00:00"
	}

	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return "", fmt.Errorf("invalid created_at %q: %w", createdAt, err)
	}
	return t.Format(TimestampLayout), nil
}

// BuildRecord projects a gist into the fields carried by an alert.
// A null description becomes "None".
func BuildRecord(gist models.Gist) (models.GistRecord, error) {
	createdAt, err := FormatTimestamp(gist.CreatedAt)
	if err != nil {
		return models.GistRecord{}, err
	}

	description := models.NoneDescription
	if gist.Description != nil {
		description = *gist.Description
	}

	return models.GistRecord{
		ID:          gist.ID,
		CreatedAt:   createdAt,
		Description: description,
		URL:         gist.HTMLURL,
	}, nil
}

// FormatAlert renders the single alert line.
func FormatAlert(identity string, record models.GistRecord) models.Alert {
	return models.Alert{
		Identity: identity,
		Record:   record,
		Text:     fmt.Sprintf(alertFormat, identity, record.CreatedAt, record.Description, record.URL),
	}
}
