package dashboard_test

import (
	"testing"
	"time"

	"github.com/pedrolmns/big-lambda/internal/dashboard"
	"github.com/pedrolmns/big-lambda/internal/job"
	util "github.com/pedrolmns/big-lambda/internal/utils"
)

func TestCompute(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, util.Location())
	day := func(d int) util.LocalDateTime {
		return util.NewLocalDateTime(now.AddDate(0, 0, d))
	}

	jobs := []job.Job{
		{ID: "1", Status: job.StatusBriefing, Deadline: day(5), CreatedAt: now.AddDate(0, 0, -1)},
		{ID: "2", Status: job.StatusProduction, Deadline: day(3), CreatedAt: now.AddDate(0, 0, -2)},
		{ID: "3", Status: job.StatusFinalized, Deadline: day(-2), CreatedAt: now.AddDate(0, 0, -3)},
		{ID: "4", Status: job.StatusFinalized, Deadline: day(1), CreatedAt: now.AddDate(0, 0, -4)},
		{
			ID: "5", Status: job.StatusPaid, Deadline: day(-10), CreatedAt: now.AddDate(0, 0, -5),
			Payments: []job.Payment{
				{Amount: 1000, Date: time.Date(2025, 5, 2, 0, 0, 0, 0, util.Location())},
				{Amount: 500, Date: time.Date(2025, 6, 1, 0, 0, 0, 0, util.Location())},
			},
		},
		{ID: "6", Status: job.StatusReview, Deadline: day(2), CreatedAt: now.AddDate(0, 0, -6), IsDeleted: true},
	}

	got := dashboard.Compute(jobs, now)

	if got.Stats.Total != 4 {
		t.Errorf("Total deveria contar só os jobs ativos não pagos (4), recebido %d", got.Stats.Total)
	}
	if got.Stats.Archived != 1 || got.Stats.Paid != 1 {
		t.Errorf("O job pago deveria contar como arquivado, recebido archived=%d paid=%d",
			got.Stats.Archived, got.Stats.Paid)
	}
	if got.Stats.Finalized != 2 || got.Stats.Overdue != 1 {
		t.Errorf("Esperados 2 finalizados e 1 atrasado, recebido finalized=%d overdue=%d",
			got.Stats.Finalized, got.Stats.Overdue)
	}
	if got.Stats.Review != 0 {
		t.Errorf("Jobs excluídos não entram nas contagens, recebido review=%d", got.Stats.Review)
	}

	if len(got.Revenue) != 2 {
		t.Fatalf("Esperados 2 meses de receita, recebidos %d", len(got.Revenue))
	}
	if got.Revenue[0].Month != "2025-05" || got.Revenue[0].Revenue != 1000 {
		t.Errorf("Receita de maio incorreta: %+v", got.Revenue[0])
	}
	if got.Revenue[1].Month != "2025-06" || got.Revenue[1].Revenue != 500 {
		t.Errorf("Receita de junho incorreta: %+v", got.Revenue[1])
	}

	if len(got.LastJobs) != 5 {
		t.Fatalf("Esperados 5 jobs recentes, recebidos %d", len(got.LastJobs))
	}
	if got.LastJobs[0].ID != "1" {
		t.Errorf("O job mais recente deveria vir primeiro, recebido %q", got.LastJobs[0].ID)
	}
	for _, j := range got.LastJobs {
		if j.IsDeleted {
			t.Error("Jobs excluídos não entram na lista de recentes")
		}
	}
}

func TestComputeEmptyBoard(t *testing.T) {
	got := dashboard.Compute(nil, time.Now())

	if got.Stats != (dashboard.JobStats{}) {
		t.Errorf("Um quadro vazio deveria zerar todas as contagens, recebido %+v", got.Stats)
	}
	if len(got.Revenue) != 0 || len(got.LastJobs) != 0 {
		t.Error("Um quadro vazio não deveria produzir receita nem jobs recentes")
	}
}
