package job

import (
	"time"

	"github.com/google/uuid"
	util "github.com/pedrolmns/big-lambda/internal/utils"
)

// Job is a unit of billable work. JSON tags are camelCase because the persisted
// collection blobs keep the format written by earlier versions of the app.
type Job struct {
	ID                  string             `json:"id"`
	Name                string             `json:"name"`
	ClientID            string             `json:"clientId"`
	ServiceType         ServiceType        `json:"serviceType"`
	Value               float64            `json:"value"`
	Cost                *float64           `json:"cost,omitempty"`
	Deadline            util.LocalDateTime `json:"deadline"`
	Status              Status             `json:"status"`
	Notes               string             `json:"notes,omitempty"`
	CloudLinks          []string           `json:"cloudLinks"`
	CreatedAt           time.Time          `json:"createdAt"`
	IsDeleted           bool               `json:"isDeleted"`
	ObservationsLog     []Observation      `json:"observationsLog"`
	Payments            []Payment          `json:"payments"`
	IsRecurring         bool               `json:"isRecurring"`
	CreateCalendarEvent bool               `json:"createCalendarEvent"`
	CalendarEventID     string             `json:"calendarEventId,omitempty"`
}

// Payment records money received against its owning Job. Payments have no
// identity outside the Job and are created only through RegisterPayment.
type Payment struct {
	ID     string    `json:"id"`
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
	Method string    `json:"method,omitempty"`
	Notes  string    `json:"notes,omitempty"`
}

// Observation is one entry of a Job's append-only log.
type Observation struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

func NewObservation(text string) Observation {
	return Observation{
		ID:        uuid.NewString(),
		Text:      text,
		Timestamp: time.Now(),
	}
}
