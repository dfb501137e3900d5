package response

import (
	"time"

	"apolices_xpto/internal/domain/entities"
)

type EndorsementResponse struct {
	ID                       string    `json:"id"`
	PolicyNumero             string    `json:"policy_numero"`
	Sequencia                int       `json:"sequencia"`
	DataEmissao              string    `json:"data_emissao"`
	Tipo                     string    `json:"tipo"`
	ImportanciaSegurada      *int64    `json:"importancia_segurada"`
	InicioVigencia           *string   `json:"inicio_vigencia"`
	FimVigencia              *string   `json:"fim_vigencia"`
	CancelledEndorsementID   *string   `json:"cancelled_endorsement_id"`
	CancelledByEndorsementID *string   `json:"cancelled_by_endorsement_id"`
	CreatedAt                time.Time `json:"created_at"`
	UpdatedAt                time.Time `json:"updated_at"`
}

// CreateEndorsementResponse mirrors the X-Inserted-Id header.
type CreateEndorsementResponse struct {
	ID string `json:"id"`
}

func FromEndorsement(numero string, e entities.Endorsement) EndorsementResponse {
	return EndorsementResponse{
		ID:                       e.ID,
		PolicyNumero:             numero,
		Sequencia:                e.Sequencia,
		DataEmissao:              e.DataEmissao.Format(dateLayout),
		Tipo:                     string(e.Tipo),
		ImportanciaSegurada:      e.ImportanciaSegurada,
		InicioVigencia:           formatOptionalDate(e.InicioVigencia),
		FimVigencia:              formatOptionalDate(e.FimVigencia),
		CancelledEndorsementID:   optionalString(e.CancelledEndorsementID),
		CancelledByEndorsementID: optionalString(e.CancelledByEndorsementID),
		CreatedAt:                e.CreatedAt,
		UpdatedAt:                e.UpdatedAt,
	}
}

func FromEndorsements(numero string, es []entities.Endorsement) []EndorsementResponse {
	out := make([]EndorsementResponse, 0, len(es))
	for _, e := range es {
		out = append(out, FromEndorsement(numero, e))
	}
	return out
}

func formatOptionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
