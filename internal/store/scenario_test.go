package store_test

import (
	"testing"
	"time"

	"github.com/pedrolmns/big-lambda/internal/client"
	"github.com/pedrolmns/big-lambda/internal/job"
	util "github.com/pedrolmns/big-lambda/internal/utils"
)

// TestMonthlyRetainerLifecycle walks a retainer job through its whole cycle:
// client registered, job created, board advanced stage by stage, payment
// registered, and the next month's edition spawned when the job is paid.
func TestMonthlyRetainerLifecycle(t *testing.T) {
	s, _, _ := newTestSession(t)

	ana := s.AddClient(client.Client{Name: "Ana", Email: "ana@studio.com"})

	deadline := util.NewLocalDateTime(time.Now().AddDate(0, 0, 10))
	created := s.AddJob(job.Job{
		Name:        "Video X",
		ClientID:    ana.ID,
		ServiceType: job.ServiceVideo,
		Value:       2500,
		Deadline:    deadline,
		IsRecurring: true,
	})

	if got := job.ComputeFinancialStatus(&created, time.Now()); got != job.FinancialPending {
		t.Errorf("Um job recém-criado deveria aguardar pagamento, recebido %q", got)
	}

	current := created
	for _, status := range []job.Status{job.StatusProduction, job.StatusReview, job.StatusFinalized} {
		current.Status = status
		s.UpdateJob(current)
		if got := len(s.Jobs(false)); got != 1 {
			t.Fatalf("Avançar o quadro não gera novos jobs, recebidos %d em %q", got, status)
		}
	}

	if _, ok := s.RegisterPayment(created.ID, job.Payment{Amount: 2500, Method: "Pix"}); !ok {
		t.Fatal("RegisterPayment falhou")
	}

	paid, _ := s.GetJobByID(created.ID)
	if got := job.ComputeFinancialStatus(&paid, time.Now()); got != job.FinancialPaid {
		t.Errorf("Com o pagamento registrado o status financeiro deveria ser Pago, recebido %q", got)
	}

	paid.Status = job.StatusPaid
	s.UpdateJob(paid)
	s.Flush()

	jobs := s.Jobs(false)
	if len(jobs) != 2 {
		t.Fatalf("Concluir o ciclo deveria gerar a edição do mês seguinte, recebidos %d jobs", len(jobs))
	}

	var next job.Job
	for _, j := range jobs {
		if j.ID != created.ID {
			next = j
		}
	}
	if next.ClientID != ana.ID || next.Value != 2500 {
		t.Errorf("A próxima edição deveria manter cliente e valor, recebido %+v", next)
	}
	if !next.Deadline.Equal(deadline.AddMonth()) {
		t.Errorf("Prazo da próxima edição deveria avançar um mês, recebido %v", next.Deadline.Time)
	}
	if got := job.ComputeFinancialStatus(&next, time.Now()); got != job.FinancialPending {
		t.Errorf("A próxima edição nasce aguardando pagamento, recebido %q", got)
	}
}
