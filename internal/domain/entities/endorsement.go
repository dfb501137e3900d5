package entities

import "time"

// EndorsementTipo is the closed set of endorsement kinds.
//
// New kinds must be added here and to every switch over EndorsementTipo.
type EndorsementTipo string

const (
	EndorsementTipoAumentoIS                  EndorsementTipo = "aumento_is"
	EndorsementTipoReducaoIS                  EndorsementTipo = "reducao_is"
	EndorsementTipoAlteracaoVigencia          EndorsementTipo = "alteracao_vigencia"
	EndorsementTipoAumentoISAlteracaoVigencia EndorsementTipo = "aumento_is_alteracao_vigencia"
	EndorsementTipoReducaoISAlteracaoVigencia EndorsementTipo = "reducao_is_alteracao_vigencia"
	EndorsementTipoCancelamento               EndorsementTipo = "cancelamento"
)

func (t EndorsementTipo) Valid() bool {
	switch t {
	case EndorsementTipoAumentoIS,
		EndorsementTipoReducaoIS,
		EndorsementTipoAlteracaoVigencia,
		EndorsementTipoAumentoISAlteracaoVigencia,
		EndorsementTipoReducaoISAlteracaoVigencia,
		EndorsementTipoCancelamento:
		return true
	}
	return false
}

func (t EndorsementTipo) IsCancelamento() bool {
	return t == EndorsementTipoCancelamento
}

// Endorsement (endosso) is an append-only amendment or cancellation of a policy.
//
// Storage model:
//   - Sequencia is the 1-based insertion order inside the policy and the source of
//     truth for "most recent".
//   - Regular endorsements store the effective terms after the amendment.
//   - Cancellations store no terms, only CancelledEndorsementID.
//   - CancelledByEndorsementID is derived from the cancellations lookup and is
//     filled on read paths only.
type Endorsement struct {
	ID                       string          `json:"id"`
	PolicyID                 string          `json:"policy_id"`
	Sequencia                int             `json:"sequencia"`
	DataEmissao              time.Time       `json:"data_emissao"`
	Tipo                     EndorsementTipo `json:"tipo"`
	ImportanciaSegurada      *int64          `json:"importancia_segurada,omitempty"`
	InicioVigencia           *time.Time      `json:"inicio_vigencia,omitempty"`
	FimVigencia              *time.Time      `json:"fim_vigencia,omitempty"`
	CancelledEndorsementID   string          `json:"cancelled_endorsement_id,omitempty"`
	CancelledByEndorsementID string          `json:"cancelled_by_endorsement_id,omitempty"`
	CreatedAt                time.Time       `json:"created_at"`
	UpdatedAt                time.Time       `json:"updated_at"`
}

// EndorsementCancellation is a row of the cancellation lookup
// (cancelled endorsement -> cancelling endorsement). A target appears at most once.
type EndorsementCancellation struct {
	CancelledEndorsementID string    `json:"cancelled_endorsement_id"`
	CancellerEndorsementID string    `json:"canceller_endorsement_id"`
	PolicyID               string    `json:"policy_id"`
	CreatedAt              time.Time `json:"created_at"`
}

// EndorsementDelta is the validated change requested for a policy.
// A nil field means "not present in the request".
type EndorsementDelta struct {
	DataEmissao         time.Time
	ImportanciaSegurada *int64
	InicioVigencia      *time.Time
	FimVigencia         *time.Time
}

// HasAmendableFields reports whether any of IS, inicio or fim is present.
func (d EndorsementDelta) HasAmendableFields() bool {
	return d.ImportanciaSegurada != nil || d.InicioVigencia != nil || d.FimVigencia != nil
}

// PolicySnapshot is a consistent read of a policy and its full endorsement history,
// taken inside the storage transaction that will persist the resulting Amendment.
// A zero Policy.ID means the policy does not exist.
type PolicySnapshot struct {
	Policy        Policy
	Endorsements  []Endorsement
	Cancellations []EndorsementCancellation
}

// Amendment is everything one endorsement creation writes atomically.
type Amendment struct {
	Endorsement  Endorsement
	Cancellation *EndorsementCancellation
	Policy       Policy
	// ExpectedEndorsementsCount is the count read in the snapshot; the policy write
	// must fail when storage no longer holds this value.
	ExpectedEndorsementsCount int
}
