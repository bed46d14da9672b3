package commands

import (
	"testing"

	"github.com/alan/pr-status/cmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRepositories(t *testing.T) {
	require.NoError(t, ValidateRepositories([]string{"acme/server"}))

	err := ValidateRepositories(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "repositories parameter is required")
	assert.Contains(t, err.Error(), "usage:")
}

func TestValidateLookbackDays(t *testing.T) {
	tests := []struct {
		days    int
		wantErr bool
	}{
		{days: 0},
		{days: 10},
		{days: 365},
		{days: -1, wantErr: true},
	}

	for _, tt := range tests {
		err := ValidateLookbackDays(tt.days)
		if tt.wantErr {
			assert.Error(t, err, "days=%d", tt.days)
		} else {
			assert.NoError(t, err, "days=%d", tt.days)
		}
	}
}

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		want    cmd.OutputFormat
		wantErr bool
	}{
		{name: "html", format: "html", want: cmd.FormatHTML},
		{name: "markdown", format: "markdown", want: cmd.FormatMarkdown},
		{name: "md alias", format: "md", want: cmd.FormatMarkdown},
		{name: "unknown", format: "pdf", wantErr: true},
		{name: "empty", format: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateFormat(tt.format)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "unknown format")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateBackend(t *testing.T) {
	assert.NoError(t, ValidateBackend(cmd.BackendGH))
	assert.NoError(t, ValidateBackend(cmd.BackendAPI))
	assert.Error(t, ValidateBackend(""))
	assert.Error(t, ValidateBackend("gitlab"))
}
