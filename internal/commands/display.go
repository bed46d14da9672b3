package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

var (
	infoColor    = color.New(color.FgHiBlue)
	successColor = color.New(color.FgHiGreen)
	warningColor = color.New(color.FgHiYellow)
	errorColor   = color.New(color.FgHiRed)
	detailColor  = color.New(color.FgHiBlack)
)

// UI prints user-facing console messages
type UI struct {
	Out    io.Writer
	ErrOut io.Writer
}

// NewUI creates a UI writing to out and errOut
func NewUI(out, errOut io.Writer) *UI {
	return &UI{Out: out, ErrOut: errOut}
}

// DefaultUI writes to stdout and stderr
func DefaultUI() *UI {
	return NewUI(os.Stdout, os.Stderr)
}

// Info prints a status line to Out
func (u *UI) Info(format string, a ...any) {
	infoColor.Fprintln(u.Out, fmt.Sprintf(format, a...))
}

// Success prints a completion line to Out
func (u *UI) Success(format string, a ...any) {
	successColor.Fprintln(u.Out, fmt.Sprintf(format, a...))
}

// Detail prints a dimmed secondary line to Out
func (u *UI) Detail(format string, a ...any) {
	detailColor.Fprintln(u.Out, fmt.Sprintf(format, a...))
}

// Warning prints a warning to ErrOut
func (u *UI) Warning(format string, a ...any) {
	warningColor.Fprintln(u.ErrOut, fmt.Sprintf(format, a...))
}

// Error prints an error line to ErrOut
func (u *UI) Error(format string, a ...any) {
	errorColor.Fprintln(u.ErrOut, fmt.Sprintf(format, a...))
}

// Blank prints an empty line
func (u *UI) Blank() {
	fmt.Fprintln(u.Out)
}

// ReportError prints a top-level failure
func (u *UI) ReportError(err error) {
	u.Error("❌ Error: %v", err)
}

// Progress prints an enrichment progress line
func (u *UI) Progress(index, total, number int, repo string) {
	u.Detail("  Processing PR #%d in %s (%d/%d)", number, repo, index+1, total)
}

// Table creates a borderless, left-aligned table writing to Out
func (u *UI) Table(headers []string) *tablewriter.Table {
	table := tablewriter.NewTable(u.Out,
		tablewriter.WithHeaderAlignment(tw.AlignLeft),
		tablewriter.WithRowAlignment(tw.AlignLeft),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Lines:      tw.LinesNone,
				Separators: tw.SeparatorsNone,
			},
		}),
		tablewriter.WithPadding(tw.Padding{Left: "", Right: "  "}),
	)
	table.Header(headers)
	return table
}
