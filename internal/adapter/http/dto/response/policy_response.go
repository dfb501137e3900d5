package response

import (
	"time"

	"apolices_xpto/internal/domain/entities"
)

const dateLayout = "2006-01-02"

type PolicyResponse struct {
	ID                  string    `json:"id"`
	Numero              string    `json:"numero"`
	Status              string    `json:"status"`
	DataEmissao         string    `json:"data_emissao"`
	InicioVigencia      string    `json:"inicio_vigencia"`
	FimVigencia         string    `json:"fim_vigencia"`
	ImportanciaSegurada int64     `json:"importancia_segurada"`
	LMG                 int64     `json:"lmg"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// CreatePolicyResponse mirrors the X-Inserted-Number header.
type CreatePolicyResponse struct {
	Numero string `json:"numero"`
}

func FromPolicy(p entities.Policy) PolicyResponse {
	return PolicyResponse{
		ID:                  p.ID,
		Numero:              p.Numero,
		Status:              string(p.Status),
		DataEmissao:         p.DataEmissao.Format(dateLayout),
		InicioVigencia:      p.InicioVigencia.Format(dateLayout),
		FimVigencia:         p.FimVigencia.Format(dateLayout),
		ImportanciaSegurada: p.ImportanciaSegurada,
		LMG:                 p.LMG,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func FromPolicies(ps []entities.Policy) []PolicyResponse {
	out := make([]PolicyResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPolicy(p))
	}
	return out
}
