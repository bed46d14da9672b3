package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestUI(t *testing.T) (*UI, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	noColor := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = noColor })

	var out, errOut bytes.Buffer
	return NewUI(&out, &errOut), &out, &errOut
}

func TestUI_Streams(t *testing.T) {
	ui, out, errOut := newTestUI(t)

	ui.Info("🔍 Checking open PRs by %s (within %d days)...", "alice", 10)
	ui.Success("Found %d recent PRs", 2)
	ui.Detail("📂 Repositories: %s", "acme/server")
	ui.Blank()
	ui.Warning("No recent PRs found within %d days.", 3)
	ui.Error("something broke")

	assert.Equal(t, "🔍 Checking open PRs by alice (within 10 days)...\nFound 2 recent PRs\n📂 Repositories: acme/server\n\n", out.String())
	assert.Equal(t, "No recent PRs found within 3 days.\nsomething broke\n", errOut.String())
}

func TestUI_ReportError(t *testing.T) {
	ui, out, errOut := newTestUI(t)

	ui.ReportError(errors.New("repositories parameter is required"))

	assert.Empty(t, out.String())
	assert.Equal(t, "❌ Error: repositories parameter is required\n", errOut.String())
}

func TestUI_Progress(t *testing.T) {
	ui, out, _ := newTestUI(t)

	ui.Progress(0, 2, 42, "acme/server")
	ui.Progress(1, 2, 7, "acme/app")

	assert.Equal(t, "  Processing PR #42 in acme/server (1/2)\n  Processing PR #7 in acme/app (2/2)\n", out.String())
}

func TestUI_Table(t *testing.T) {
	ui, out, _ := newTestUI(t)

	table := ui.Table([]string{"Setting", "Value"})
	require.NoError(t, table.Append([]string{"Backend", "gh"}))
	require.NoError(t, table.Append([]string{"Lookback Days", "10"}))
	require.NoError(t, table.Render())

	result := out.String()
	assert.Contains(t, strings.ToUpper(result), "SETTING")
	assert.Contains(t, result, "Backend")
	assert.Contains(t, result, "Lookback Days")
	assert.NotContains(t, result, "|")
}
