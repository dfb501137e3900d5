package request

import (
	"errors"
	"time"

	"apolices_xpto/internal/domain/entities"
)

// DateLayout is the wire format of every date field.
const DateLayout = "2006-01-02"

// MaxEmissaoDistanceDays bounds how far inicio_vigencia may be from data_emissao.
const MaxEmissaoDistanceDays = 30

var (
	ErrInvalidDate             = errors.New("dates must use the YYYY-MM-DD format")
	ErrFimBeforeInicio         = errors.New("fim_vigencia must not be before inicio_vigencia")
	ErrInicioFarFromEmissao    = errors.New("inicio_vigencia must be at most 30 days from data_emissao")
	ErrNonPositiveInsuredValue = errors.New("importancia_segurada must be greater than zero")
)

// CreatePolicyRequest is the body of POST /v1/policies.
type CreatePolicyRequest struct {
	DataEmissao         string `json:"data_emissao" binding:"required" example:"2024-10-15"`
	InicioVigencia      string `json:"inicio_vigencia" binding:"required" example:"2024-10-25"`
	FimVigencia         string `json:"fim_vigencia" binding:"required" example:"2025-10-25"`
	ImportanciaSegurada int64  `json:"importancia_segurada" binding:"required" example:"50000000"`
}

// ToInput parses the dates and applies the cross-field rules.
func (r CreatePolicyRequest) ToInput() (entities.NewPolicyInput, error) {
	emissao, err := parseDate(r.DataEmissao)
	if err != nil {
		return entities.NewPolicyInput{}, err
	}
	inicio, err := parseDate(r.InicioVigencia)
	if err != nil {
		return entities.NewPolicyInput{}, err
	}
	fim, err := parseDate(r.FimVigencia)
	if err != nil {
		return entities.NewPolicyInput{}, err
	}

	if r.ImportanciaSegurada <= 0 {
		return entities.NewPolicyInput{}, ErrNonPositiveInsuredValue
	}
	if fim.Before(inicio) {
		return entities.NewPolicyInput{}, ErrFimBeforeInicio
	}
	if days := inicio.Sub(emissao).Hours() / 24; days > MaxEmissaoDistanceDays || days < -MaxEmissaoDistanceDays {
		return entities.NewPolicyInput{}, ErrInicioFarFromEmissao
	}

	return entities.NewPolicyInput{
		DataEmissao:         emissao,
		InicioVigencia:      inicio,
		FimVigencia:         fim,
		ImportanciaSegurada: r.ImportanciaSegurada,
	}, nil
}

// ListPoliciesQuery is the query string of GET /v1/policies.
type ListPoliciesQuery struct {
	PaginationQuery
	Status            string `form:"status"`
	InicioVigenciaGTE string `form:"inicio_vigencia_gte"`
	InicioVigenciaLTE string `form:"inicio_vigencia_lte"`
	FimVigenciaGTE    string `form:"fim_vigencia_gte"`
	FimVigenciaLTE    string `form:"fim_vigencia_lte"`
}

func (q ListPoliciesQuery) ToFilter() (entities.PolicyFilter, error) {
	p, err := q.toPagination(entities.PolicySortFields)
	if err != nil {
		return entities.PolicyFilter{}, err
	}
	status := entities.PolicyStatus(q.Status)
	if status != "" && !status.Valid() {
		return entities.PolicyFilter{}, ErrInvalidStatus
	}
	f := entities.PolicyFilter{Pagination: p, Status: status}

	for _, b := range []struct {
		raw string
		dst **time.Time
	}{
		{q.InicioVigenciaGTE, &f.InicioVigenciaGTE},
		{q.InicioVigenciaLTE, &f.InicioVigenciaLTE},
		{q.FimVigenciaGTE, &f.FimVigenciaGTE},
		{q.FimVigenciaLTE, &f.FimVigenciaLTE},
	} {
		if *b.dst, err = parseOptionalDate(b.raw); err != nil {
			return entities.PolicyFilter{}, err
		}
	}
	return f, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
