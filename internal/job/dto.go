package job

import (
	"errors"
	"time"

	util "github.com/pedrolmns/big-lambda/internal/utils"
)

type CreateJobDTO struct {
	Name                string             `json:"name"`
	ClientID            string             `json:"clientId"`
	ServiceType         ServiceType        `json:"serviceType"`
	Value               float64            `json:"value"`
	Cost                *float64           `json:"cost"`
	Deadline            util.LocalDateTime `json:"deadline"`
	Status              Status             `json:"status"`
	Notes               string             `json:"notes"`
	CloudLinks          []string           `json:"cloudLinks"`
	IsRecurring         bool               `json:"isRecurring"`
	CreateCalendarEvent bool               `json:"createCalendarEvent"`
}

// Validate rejects bad input before it ever reaches the data store; no
// partial record is created.
func (d CreateJobDTO) Validate() error {
	if d.Name == "" {
		return errors.New("name is required")
	}
	if d.ClientID == "" {
		return errors.New("clientId is required")
	}
	if d.Value < 0 {
		return errors.New("value must not be negative")
	}
	if d.ServiceType != "" && !d.ServiceType.IsValid() {
		return errors.New("invalid service type")
	}
	if d.Status != "" && !d.Status.IsValid() {
		return errors.New("invalid status")
	}
	if d.Deadline.IsZero() {
		return errors.New("deadline is required")
	}
	return nil
}

func (d CreateJobDTO) ToJob() Job {
	serviceType := d.ServiceType
	if serviceType == "" {
		serviceType = ServiceOther
	}
	return Job{
		Name:                d.Name,
		ClientID:            d.ClientID,
		ServiceType:         serviceType,
		Value:               d.Value,
		Cost:                d.Cost,
		Deadline:            d.Deadline,
		Status:              d.Status,
		Notes:               d.Notes,
		CloudLinks:          d.CloudLinks,
		IsRecurring:         d.IsRecurring,
		CreateCalendarEvent: d.CreateCalendarEvent,
	}
}

type RegisterPaymentDTO struct {
	Amount float64   `json:"amount"`
	Date   time.Time `json:"date"`
	Method string    `json:"method"`
	Notes  string    `json:"notes"`
}

func (d RegisterPaymentDTO) Validate() error {
	if d.Amount <= 0 {
		return errors.New("amount must be positive")
	}
	return nil
}

type AddObservationDTO struct {
	Text string `json:"text"`
}

// FinancialRecord is the read-only projection served to the financial view.
type FinancialRecord struct {
	Job
	FinancialStatus FinancialStatus `json:"financialStatus"`
	ClientName      string          `json:"clientName"`
}
