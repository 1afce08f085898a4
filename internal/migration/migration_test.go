package migration_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/pedrolmns/big-lambda/internal/migration"
)

func TestJobsDefaults(t *testing.T) {
	raw := []byte(`[{"name": "Video Institucional", "value": 1200}]`)

	jobs, err := migration.Jobs(raw)
	if err != nil {
		t.Fatalf("Jobs falhou: %v", err)
	}
	if len(jobs) != 1 {
		t.Fatalf("Esperado 1 job, recebido %d", len(jobs))
	}

	j := jobs[0]
	if j.ID == "" {
		t.Error("Um id deveria ter sido atribuído ao job sem id")
	}
	if j.IsDeleted {
		t.Error("isDeleted deveria ser false por padrão")
	}
	if j.ObservationsLog == nil || len(j.ObservationsLog) != 0 {
		t.Error("observationsLog deveria ser uma lista vazia")
	}
	if j.Payments == nil || len(j.Payments) != 0 {
		t.Error("payments deveria ser uma lista vazia")
	}
	if j.CloudLinks == nil || len(j.CloudLinks) != 0 {
		t.Error("cloudLinks deveria ser uma lista vazia")
	}
	if j.IsRecurring || j.CreateCalendarEvent {
		t.Error("isRecurring e createCalendarEvent deveriam ser false por padrão")
	}
}

func TestJobsLegacyCloudLink(t *testing.T) {
	raw := []byte(`[{"id": "j1", "name": "Fotos", "cloudLink": "https://drive.google.com/x"}]`)

	jobs, err := migration.Jobs(raw)
	if err != nil {
		t.Fatalf("Jobs falhou: %v", err)
	}
	if len(jobs[0].CloudLinks) != 1 || jobs[0].CloudLinks[0] != "https://drive.google.com/x" {
		t.Errorf("cloudLink legado deveria virar lista de um elemento, recebido %v", jobs[0].CloudLinks)
	}
}

func TestJobsLegacyPaymentFolding(t *testing.T) {
	t.Run("PrePayment", func(t *testing.T) {
		raw := []byte(`[{"id": "j1", "name": "Site", "value": 3000,
			"isPrePaid": true, "prePaymentDate": "2024-03-10T00:00:00.000Z"}]`)

		jobs, err := migration.Jobs(raw)
		if err != nil {
			t.Fatalf("Jobs falhou: %v", err)
		}
		payments := jobs[0].Payments
		if len(payments) != 1 {
			t.Fatalf("Esperado exatamente 1 pagamento sintetizado, recebido %d", len(payments))
		}
		if payments[0].Amount != 3000 {
			t.Errorf("Valor do pagamento deveria ser o valor do job (3000), recebido %v", payments[0].Amount)
		}
		if !strings.Contains(payments[0].Notes, "migrado") {
			t.Errorf("Nota do pagamento deveria estar marcada como migrada, recebido %q", payments[0].Notes)
		}
	})

	t.Run("PrePaidFlagWithoutDate", func(t *testing.T) {
		raw := []byte(`[{"id": "j5", "name": "Logo", "value": 1200, "isPrePaid": true}]`)

		jobs, err := migration.Jobs(raw)
		if err != nil {
			t.Fatalf("Jobs falhou: %v", err)
		}
		payments := jobs[0].Payments
		if len(payments) != 1 {
			t.Fatalf("A flag de pré-pagamento sozinha deveria sintetizar 1 pagamento, recebido %d", len(payments))
		}
		if !payments[0].Date.IsZero() {
			t.Errorf("Sem data legada a data deveria ficar zerada, recebido %v", payments[0].Date)
		}
		if payments[0].Amount != 1200 {
			t.Errorf("Valor do pagamento deveria ser o valor do job (1200), recebido %v", payments[0].Amount)
		}
		if payments[0].Notes != migration.PrePaymentNote {
			t.Errorf("Nota deveria ser a de pré-pagamento migrado, recebido %q", payments[0].Notes)
		}
	})

	t.Run("PaymentDateAndMethod", func(t *testing.T) {
		raw := []byte(`[{"id": "j2", "name": "Design", "value": 800,
			"paymentDate": "2024-05-02T12:00:00.000Z", "paymentMethod": "Pix", "paymentNotes": "sinal"}]`)

		jobs, err := migration.Jobs(raw)
		if err != nil {
			t.Fatalf("Jobs falhou: %v", err)
		}
		payments := jobs[0].Payments
		if len(payments) != 1 {
			t.Fatalf("Esperado 1 pagamento, recebido %d", len(payments))
		}
		if payments[0].Method != "Pix" {
			t.Errorf("Método deveria ser Pix, recebido %q", payments[0].Method)
		}
		if !strings.Contains(payments[0].Notes, "sinal") || !strings.Contains(payments[0].Notes, "migrado") {
			t.Errorf("Nota deveria preservar o texto legado e a marca de migração, recebido %q", payments[0].Notes)
		}
	})

	t.Run("BothLegacyForms", func(t *testing.T) {
		raw := []byte(`[{"id": "j3", "name": "Vídeo", "value": 2000,
			"isPrePaid": true, "prePaymentDate": "2024-01-05T00:00:00.000Z",
			"paidAt": "2024-02-01T00:00:00.000Z"}]`)

		jobs, err := migration.Jobs(raw)
		if err != nil {
			t.Fatalf("Jobs falhou: %v", err)
		}
		if len(jobs[0].Payments) != 2 {
			t.Fatalf("Esperados 2 pagamentos (pré + final), recebidos %d", len(jobs[0].Payments))
		}
	})

	t.Run("ExistingPaymentsWin", func(t *testing.T) {
		raw := []byte(`[{"id": "j4", "name": "Redação", "value": 500,
			"payments": [{"id": "p1", "amount": 250, "date": "2024-06-01T00:00:00Z"}],
			"paidAt": "2024-02-01T00:00:00.000Z"}]`)

		jobs, err := migration.Jobs(raw)
		if err != nil {
			t.Fatalf("Jobs falhou: %v", err)
		}
		if len(jobs[0].Payments) != 1 || jobs[0].Payments[0].ID != "p1" {
			t.Errorf("Uma lista de payments existente não deveria ser alterada, recebido %v", jobs[0].Payments)
		}
	})
}

func TestJobsLegacyFieldsNotRoundTripped(t *testing.T) {
	raw := []byte(`[{"id": "j1", "name": "Site", "value": 100,
		"cloudLink": "https://x", "paidAt": "2024-02-01T00:00:00.000Z"}]`)

	jobs, err := migration.Jobs(raw)
	if err != nil {
		t.Fatalf("Jobs falhou: %v", err)
	}

	out, err := json.Marshal(jobs)
	if err != nil {
		t.Fatalf("Marshal falhou: %v", err)
	}
	for _, field := range []string{"cloudLink\"", "paidAt", "paymentDate", "isPrePaid", "prePaymentDate"} {
		if strings.Contains(string(out), field) {
			t.Errorf("Campo legado %q não deveria voltar para o armazenamento", field)
		}
	}
}

func TestJobsIdempotence(t *testing.T) {
	raw := []byte(`[{"name": "Ensaios", "value": 900, "cloudLink": "https://y",
		"isPrePaid": true, "prePaymentDate": "2024-04-01T00:00:00.000Z"}]`)

	first, err := migration.Jobs(raw)
	if err != nil {
		t.Fatalf("Primeira migração falhou: %v", err)
	}

	encoded, err := json.Marshal(first)
	if err != nil {
		t.Fatalf("Marshal falhou: %v", err)
	}
	second, err := migration.Jobs(encoded)
	if err != nil {
		t.Fatalf("Segunda migração falhou: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Migrar um registro já migrado deveria ser no-op.\nPrimeira: %+v\nSegunda: %+v", first, second)
	}
}

func TestJobsCorruptBlob(t *testing.T) {
	if _, err := migration.Jobs([]byte(`{definitivamente não é json`)); err == nil {
		t.Fatal("Um blob corrompido deveria retornar erro, não um resultado parcial")
	}
}

func TestDraftsMigration(t *testing.T) {
	t.Run("LegacyContentBecomesScriptLine", func(t *testing.T) {
		raw := []byte(`[{"id": "d1", "title": "Roteiro antigo", "content": "CENA 1: abertura"}]`)

		drafts, err := migration.Drafts(raw)
		if err != nil {
			t.Fatalf("Drafts falhou: %v", err)
		}
		d := drafts[0]
		if d.Type != "SCRIPT" {
			t.Errorf("Tipo deveria virar SCRIPT por padrão, recebido %q", d.Type)
		}
		if len(d.ScriptLines) != 1 || d.ScriptLines[0].Description != "CENA 1: abertura" {
			t.Errorf("O conteúdo plano deveria virar uma linha de roteiro, recebido %v", d.ScriptLines)
		}
		if d.Attachments == nil {
			t.Error("attachments deveria ser uma lista vazia")
		}
	})

	t.Run("Idempotence", func(t *testing.T) {
		raw := []byte(`[{"title": "Texto", "type": "TEXT", "content": "rascunho"}]`)

		first, err := migration.Drafts(raw)
		if err != nil {
			t.Fatalf("Primeira migração falhou: %v", err)
		}
		encoded, _ := json.Marshal(first)
		second, err := migration.Drafts(encoded)
		if err != nil {
			t.Fatalf("Segunda migração falhou: %v", err)
		}
		if !reflect.DeepEqual(first, second) {
			t.Errorf("Migração de rascunhos não é idempotente.\nPrimeira: %+v\nSegunda: %+v", first, second)
		}
	})
}

func TestSettingsDefaults(t *testing.T) {
	s, err := migration.Settings([]byte(`{"userName": "Pedro"}`))
	if err != nil {
		t.Fatalf("Settings falhou: %v", err)
	}
	if s.UserName != "Pedro" {
		t.Errorf("userName deveria ser preservado, recebido %q", s.UserName)
	}
	if s.PrimaryColor == "" || s.AccentColor == "" || s.AsaasURL == "" {
		t.Errorf("Campos vazios deveriam receber os padrões, recebido %+v", s)
	}
}
