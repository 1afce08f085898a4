package calendar

import "time"

type Source string

const (
	// SourceLocal marks events materialized from job deadlines.
	SourceLocal Source = "big"
	// SourceGoogle marks events fetched from the external integration.
	SourceGoogle Source = "google"
)

type Event struct {
	ID     string    `json:"id"`
	Title  string    `json:"title"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	AllDay bool      `json:"allDay"`
	Source Source    `json:"source"`
	JobID  string    `json:"jobId,omitempty"`
}
