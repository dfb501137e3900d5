package entities

import "time"

type SortOrder string

const (
	SortOrderAsc  SortOrder = "asc"
	SortOrderDesc SortOrder = "desc"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultSortBy   = "created_at"
)

// Pagination is shared by every list query.
type Pagination struct {
	Page      int
	Size      int
	SortBy    string
	SortOrder SortOrder
}

func (p Pagination) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.Size
}

// PolicyFilter narrows GET /policies. Zero values mean "no filter".
type PolicyFilter struct {
	Pagination
	Status            PolicyStatus
	InicioVigenciaGTE *time.Time
	InicioVigenciaLTE *time.Time
	FimVigenciaGTE    *time.Time
	FimVigenciaLTE    *time.Time
}

// EndorsementFilter narrows GET /policies/{numero}/endorsements.
type EndorsementFilter struct {
	Pagination
	Tipo           EndorsementTipo
	DataEmissaoGTE *time.Time
	DataEmissaoLTE *time.Time
}

var PolicySortFields = []string{"created_at", "data_emissao", "inicio_vigencia", "fim_vigencia", "importancia_segurada", "numero"}

var EndorsementSortFields = []string{"created_at", "data_emissao", "tipo", "importancia_segurada"}
