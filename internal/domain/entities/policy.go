package entities

import "time"

// PolicyStatus represents the lifecycle of a policy (apólice).
//
// Domain notes:
//   - ativa: the policy is in force and accepts endorsements.
//   - baixada: every endorsement was cancelled; the policy is terminated.
type PolicyStatus string

const (
	PolicyStatusAtiva   PolicyStatus = "ativa"
	PolicyStatusBaixada PolicyStatus = "baixada"
)

func (s PolicyStatus) Valid() bool {
	switch s {
	case PolicyStatusAtiva, PolicyStatusBaixada:
		return true
	}
	return false
}

// NumeroMaxLength is the storage limit of the public policy number.
const NumeroMaxLength = 14

// Policy is the insured contract.
//
// Invariants:
//   - LMG always mirrors ImportanciaSegurada.
//   - FimVigencia is never before InicioVigencia.
//   - ImportanciaSegurada > 0 while the policy is ativa.
//
// The policy is mutated only through endorsements and is never deleted.
type Policy struct {
	ID                  string       `json:"id"`
	Numero              string       `json:"numero"`
	Status              PolicyStatus `json:"status"`
	DataEmissao         time.Time    `json:"data_emissao"`
	InicioVigencia      time.Time    `json:"inicio_vigencia"`
	FimVigencia         time.Time    `json:"fim_vigencia"`
	ImportanciaSegurada int64        `json:"importancia_segurada"`
	LMG                 int64        `json:"lmg"`
	EndorsementsCount   int          `json:"endorsements_count"`
	CreatedAt           time.Time    `json:"created_at"`
	UpdatedAt           time.Time    `json:"updated_at"`
}

// NewPolicyInput carries the already validated initial terms of a policy.
type NewPolicyInput struct {
	DataEmissao         time.Time
	InicioVigencia      time.Time
	FimVigencia         time.Time
	ImportanciaSegurada int64
}
