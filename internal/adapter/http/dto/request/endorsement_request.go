package request

import (
	"apolices_xpto/internal/domain/entities"
)

// CreateEndorsementRequest is the body of POST /v1/policies/{numero}/endorsements.
// Absent term fields are left unchanged; a body with none of them asks for a
// cancellation of the latest valid endorsement.
type CreateEndorsementRequest struct {
	DataEmissao         string  `json:"data_emissao" binding:"required" example:"2024-11-01"`
	ImportanciaSegurada *int64  `json:"importancia_segurada,omitempty" example:"75000000"`
	InicioVigencia      *string `json:"inicio_vigencia,omitempty" example:"2024-10-25"`
	FimVigencia         *string `json:"fim_vigencia,omitempty" example:"2025-10-25"`
}

func (r CreateEndorsementRequest) ToDelta() (entities.EndorsementDelta, error) {
	emissao, err := parseDate(r.DataEmissao)
	if err != nil {
		return entities.EndorsementDelta{}, err
	}
	delta := entities.EndorsementDelta{DataEmissao: emissao, ImportanciaSegurada: r.ImportanciaSegurada}

	if r.InicioVigencia != nil {
		t, err := parseDate(*r.InicioVigencia)
		if err != nil {
			return entities.EndorsementDelta{}, err
		}
		delta.InicioVigencia = &t
	}
	if r.FimVigencia != nil {
		t, err := parseDate(*r.FimVigencia)
		if err != nil {
			return entities.EndorsementDelta{}, err
		}
		delta.FimVigencia = &t
	}

	if delta.ImportanciaSegurada != nil && *delta.ImportanciaSegurada <= 0 {
		return entities.EndorsementDelta{}, ErrNonPositiveInsuredValue
	}
	if delta.InicioVigencia != nil && delta.FimVigencia != nil && delta.FimVigencia.Before(*delta.InicioVigencia) {
		return entities.EndorsementDelta{}, ErrFimBeforeInicio
	}
	return delta, nil
}

// ListEndorsementsQuery is the query string of GET /v1/policies/{numero}/endorsements.
type ListEndorsementsQuery struct {
	PaginationQuery
	Tipo           string `form:"tipo"`
	DataEmissaoGTE string `form:"data_emissao_gte"`
	DataEmissaoLTE string `form:"data_emissao_lte"`
}

func (q ListEndorsementsQuery) ToFilter() (entities.EndorsementFilter, error) {
	p, err := q.toPagination(entities.EndorsementSortFields)
	if err != nil {
		return entities.EndorsementFilter{}, err
	}
	tipo := entities.EndorsementTipo(q.Tipo)
	if tipo != "" && !tipo.Valid() {
		return entities.EndorsementFilter{}, ErrInvalidTipo
	}

	f := entities.EndorsementFilter{Pagination: p, Tipo: tipo}
	if f.DataEmissaoGTE, err = parseOptionalDate(q.DataEmissaoGTE); err != nil {
		return entities.EndorsementFilter{}, err
	}
	if f.DataEmissaoLTE, err = parseOptionalDate(q.DataEmissaoLTE); err != nil {
		return entities.EndorsementFilter{}, err
	}
	return f, nil
}
