package job

import (
	"time"

	util "github.com/pedrolmns/big-lambda/internal/utils"
)

type FinancialStatus string

const (
	FinancialPending FinancialStatus = "Aguardando Pagamento"
	FinancialPaid    FinancialStatus = "Pago"
	FinancialOverdue FinancialStatus = "Atrasado"
)

// ComputeFinancialStatus derives the financial standing of a job at a given
// moment. Any recorded payment (or status Pago) wins over deadline arithmetic;
// a finalized job whose deadline date already passed is overdue.
func ComputeFinancialStatus(j *Job, now time.Time) FinancialStatus {
	if j.Status == StatusPaid || len(j.Payments) > 0 {
		return FinancialPaid
	}
	if j.Status == StatusFinalized {
		deadline := util.StartOfDay(j.Deadline.Time)
		today := util.StartOfDay(now)
		if deadline.Before(today) {
			return FinancialOverdue
		}
	}
	return FinancialPending
}
