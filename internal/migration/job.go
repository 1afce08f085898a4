package migration

// Package migration upgrades records written by older versions of the app to
// the current schema. Every stage is total: whatever vintage the raw record
// is, the output conforms to the current shape, and re-running the migration
// on an already-migrated record changes nothing.

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/pedrolmns/big-lambda/internal/job"
	util "github.com/pedrolmns/big-lambda/internal/utils"
)

// MigratedPaymentNote tags payments synthesized from legacy single-payment
// fields so they remain recognizable after the fields themselves are gone.
const MigratedPaymentNote = "Pagamento migrado de versão anterior"

// PrePaymentNote tags payments synthesized from the legacy pre-payment flag.
const PrePaymentNote = "Pré-pagamento migrado de versão anterior"

// rawJob accepts every field any released version ever wrote. The legacy
// fields have no counterpart on job.Job, so they are dropped on the next save
// instead of being round-tripped back into storage.
type rawJob struct {
	job.Job

	CloudLink *string `json:"cloudLink"`

	PaidAt         *string `json:"paidAt"`
	PaymentDate    *string `json:"paymentDate"`
	PaymentMethod  *string `json:"paymentMethod"`
	PaymentNotes   *string `json:"paymentNotes"`
	IsPrePaid      *bool   `json:"isPrePaid"`
	PrePaymentDate *string `json:"prePaymentDate"`
}

func parseLegacyDate(s string) time.Time {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", s, util.Location()); err == nil {
		return t
	}
	if t, err := time.ParseInLocation("2006-01-02", s, util.Location()); err == nil {
		return t
	}
	return time.Time{}
}

func migrateJob(raw rawJob) job.Job {
	j := raw.Job

	if j.ID == "" {
		j.ID = uuid.NewString()
	}
	// isDeleted, isRecurring and createCalendarEvent default to false by
	// virtue of Go's zero value; absent lists become empty, not nil.
	if j.ObservationsLog == nil {
		j.ObservationsLog = []job.Observation{}
	}
	if j.CloudLinks == nil {
		j.CloudLinks = []string{}
		if raw.CloudLink != nil && *raw.CloudLink != "" {
			j.CloudLinks = []string{*raw.CloudLink}
		}
	}
	if j.Payments == nil {
		j.Payments = foldLegacyPayments(raw)
	}
	return j
}

// foldLegacyPayments synthesizes up to two payments from the single-payment
// fields of older schema revisions: one for an advance payment, one for the
// final payment. The amount recorded is the job value, the only figure those
// revisions kept.
func foldLegacyPayments(raw rawJob) []job.Payment {
	payments := []job.Payment{}

	if raw.IsPrePaid != nil && *raw.IsPrePaid {
		p := job.Payment{
			ID:     uuid.NewString(),
			Amount: raw.Value,
			Notes:  PrePaymentNote,
		}
		if raw.PrePaymentDate != nil {
			p.Date = parseLegacyDate(*raw.PrePaymentDate)
		}
		payments = append(payments, p)
	}

	var paidDate *string
	switch {
	case raw.PaymentDate != nil && *raw.PaymentDate != "":
		paidDate = raw.PaymentDate
	case raw.PaidAt != nil && *raw.PaidAt != "":
		paidDate = raw.PaidAt
	}
	if paidDate != nil {
		p := job.Payment{
			ID:     uuid.NewString(),
			Amount: raw.Value,
			Date:   parseLegacyDate(*paidDate),
			Notes:  MigratedPaymentNote,
		}
		if raw.PaymentMethod != nil {
			p.Method = *raw.PaymentMethod
		}
		if raw.PaymentNotes != nil && *raw.PaymentNotes != "" {
			p.Notes = *raw.PaymentNotes + " — " + MigratedPaymentNote
		}
		payments = append(payments, p)
	}

	return payments
}

// Job migrates a single raw job record.
func Job(data json.RawMessage) (job.Job, error) {
	var raw rawJob
	if err := json.Unmarshal(data, &raw); err != nil {
		return job.Job{}, err
	}
	return migrateJob(raw), nil
}

// Jobs migrates a whole persisted jobs blob. A parse failure yields no partial
// result: the caller falls back to an empty collection and reports it.
func Jobs(data []byte) ([]job.Job, error) {
	var raws []rawJob
	if err := json.Unmarshal(data, &raws); err != nil {
		return nil, err
	}
	jobs := make([]job.Job, 0, len(raws))
	for _, raw := range raws {
		jobs = append(jobs, migrateJob(raw))
	}
	return jobs, nil
}
