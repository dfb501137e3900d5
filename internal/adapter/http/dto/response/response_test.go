package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"apolices_xpto/internal/domain/entities"
)

func date(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

func TestFromPolicy(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Policy{
		ID:                  "pol-1",
		Numero:              "01681760574732",
		Status:              entities.PolicyStatusBaixada,
		DataEmissao:         date("2024-10-15"),
		InicioVigencia:      date("2024-10-25"),
		FimVigencia:         date("2025-10-25"),
		ImportanciaSegurada: 75_000_000,
		LMG:                 75_000_000,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	res := FromPolicy(p)
	if res.Numero != "01681760574732" || res.Status != "baixada" {
		t.Fatalf("unexpected identity: %+v", res)
	}
	if res.DataEmissao != "2024-10-15" || res.InicioVigencia != "2024-10-25" || res.FimVigencia != "2025-10-25" {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.ImportanciaSegurada != 75_000_000 || res.LMG != 75_000_000 || !res.CreatedAt.Equal(now) {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if got := FromPolicies([]entities.Policy{p, p}); len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	if got := FromPolicies(nil); got == nil {
		t.Fatalf("empty list must serialize as []")
	}
}

func TestFromEndorsement(t *testing.T) {
	is := int64(75_000_000)
	inicio, fim := date("2024-10-25"), date("2025-10-25")

	regular := FromEndorsement("01681760574732", entities.Endorsement{
		ID:                       "e1",
		Sequencia:                1,
		DataEmissao:              date("2024-11-01"),
		Tipo:                     entities.EndorsementTipoAumentoIS,
		ImportanciaSegurada:      &is,
		InicioVigencia:           &inicio,
		FimVigencia:              &fim,
		CancelledByEndorsementID: "e2",
	})
	if regular.PolicyNumero != "01681760574732" || regular.Tipo != "aumento_is" || *regular.FimVigencia != "2025-10-25" {
		t.Fatalf("unexpected regular: %+v", regular)
	}
	if regular.CancelledEndorsementID != nil || *regular.CancelledByEndorsementID != "e2" {
		t.Fatalf("unexpected cancellation links: %+v", regular)
	}

	cancel := FromEndorsement("01681760574732", entities.Endorsement{
		ID:                     "e2",
		Sequencia:              2,
		Tipo:                   entities.EndorsementTipoCancelamento,
		CancelledEndorsementID: "e1",
	})
	body, err := json.Marshal(cancel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{`"importancia_segurada":null`, `"cancelled_endorsement_id":"e1"`, `"cancelled_by_endorsement_id":null`} {
		if !strings.Contains(string(body), want) {
			t.Fatalf("expected %s in %s", want, body)
		}
	}
}
