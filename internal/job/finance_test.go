package job_test

import (
	"testing"
	"time"

	"github.com/pedrolmns/big-lambda/internal/job"
	util "github.com/pedrolmns/big-lambda/internal/utils"
)

func TestComputeFinancialStatus(t *testing.T) {
	now := time.Date(2025, 6, 15, 14, 0, 0, 0, util.Location())

	deadline := func(daysFromNow int) util.LocalDateTime {
		return util.NewLocalDateTime(now.AddDate(0, 0, daysFromNow))
	}

	tests := []struct {
		name string
		job  job.Job
		want job.FinancialStatus
	}{
		{
			name: "StatusPagoVencePrazo",
			job:  job.Job{Status: job.StatusPaid, Deadline: deadline(-30)},
			want: job.FinancialPaid,
		},
		{
			name: "QualquerPagamentoRegistradoVale",
			job: job.Job{
				Status:   job.StatusProduction,
				Deadline: deadline(-10),
				Payments: []job.Payment{{Amount: 100}},
			},
			want: job.FinancialPaid,
		},
		{
			name: "FinalizadoComPrazoVencido",
			job:  job.Job{Status: job.StatusFinalized, Deadline: deadline(-1)},
			want: job.FinancialOverdue,
		},
		{
			name: "FinalizadoNoDiaDoPrazo",
			job:  job.Job{Status: job.StatusFinalized, Deadline: util.NewLocalDateTime(now.Add(-2 * time.Hour))},
			want: job.FinancialPending,
		},
		{
			name: "FinalizadoComPrazoFuturo",
			job:  job.Job{Status: job.StatusFinalized, Deadline: deadline(5)},
			want: job.FinancialPending,
		},
		{
			name: "EmProducaoComPrazoVencido",
			job:  job.Job{Status: job.StatusProduction, Deadline: deadline(-10)},
			want: job.FinancialPending,
		},
		{
			name: "BriefingSemPagamento",
			job:  job.Job{Status: job.StatusBriefing, Deadline: deadline(3)},
			want: job.FinancialPending,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := job.ComputeFinancialStatus(&tc.job, now); got != tc.want {
				t.Errorf("Esperado %q, recebido %q", tc.want, got)
			}
		})
	}
}
