// Package render turns enriched PR records into an HTML dashboard or a markdown table.
package render

import (
	"time"

	"github.com/alan/pr-status/cmd"
)

// GeneratedLayout formats the report generation timestamp
const GeneratedLayout = "1/2/2006, 3:04:05 PM"

// SelfReviewedLabel is the label that gets a check-mark treatment
const SelfReviewedLabel = "Self Reviewed"

// Header carries the run parameters shown around the report body
type Header struct {
	Author       string
	LookbackDays int
	Repositories []string
	GeneratedAt  time.Time
}

// ReportSink receives a report incrementally: header once, one record per PR, footer once
type ReportSink interface {
	WriteHeader(h Header) error
	AppendRecord(r cmd.PullRequestRecord) error
	WriteFooter() error
}
