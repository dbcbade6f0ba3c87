package monitor

import (
	"testing"

	"github.com/aleister1102/gistwatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "2019-09-12T22:42:02Z", want: "12/Sep/2019 22:42:02"},
		{in: "2020-01-05T03:04:05Z", want: "05/Jan/2020 03:04:05"},
		{in: "2019-09-12T22:42:02+02:00", want: "12/Sep/2019 22:42:02"},
		{in: "2019-09-12T22:42:02.123Z", want: "12/Sep/2019 22:42:02"},
		{in: "yesterday", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := FormatTimestamp(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildRecord(t *testing.T) {
	desc := "my snippet"
	record, err := BuildRecord(models.Gist{
		ID:          "abc",
		CreatedAt:   "2019-09-12T22:42:02Z",
		Description: &desc,
		HTMLURL:     "https://gist.github.com/abc",
	})

	require.NoError(t, err)
	assert.Equal(t, models.GistRecord{
		ID:          "abc",
		CreatedAt:   "12/Sep/2019 22:42:02",
		Description: "my snippet",
		URL:         "https://gist.github.com/abc",
	}, record)
}

func TestBuildRecord_NullAndEmptyDescription(t *testing.T) {
	record, err := BuildRecord(models.Gist{CreatedAt: "2019-09-12T22:42:02Z"})
	require.NoError(t, err)
	assert.Equal(t, "None", record.Description)

	empty := ""
	record, err = BuildRecord(models.Gist{CreatedAt: "2019-09-12T22:42:02Z", Description: &empty})
	require.NoError(t, err)
	assert.Equal(t, "", record.Description)
}

func TestFormatAlert(t *testing.T) {
	alert := FormatAlert("octocat", models.GistRecord{
		CreatedAt:   "12/Sep/2019 22:42:02",
		Description: "None",
		URL:         "https://gist.github.com/abc",
	})

	assert.Equal(t, "octocat", alert.Identity)
	assert.Equal(t,
		`New GIST has been created by octocat at 12/Sep/2019 22:42:02, with description of "None", accessed at https://gist.github.com/abc`,
		alert.Text)
}
