package request

import (
	"errors"
	"slices"

	"apolices_xpto/internal/domain/entities"
)

var (
	ErrInvalidSortField = errors.New("unsupported sort_by field")
	ErrInvalidTipo      = errors.New("unsupported endorsement tipo")
	ErrInvalidStatus    = errors.New("unsupported policy status")
)

// PaginationQuery is embedded by every list query. Zero values take the
// defaults applied by the use case.
type PaginationQuery struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	Size      int    `form:"size" binding:"omitempty,min=1,max=100"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

func (q PaginationQuery) toPagination(sortFields []string) (entities.Pagination, error) {
	if q.SortBy != "" && !slices.Contains(sortFields, q.SortBy) {
		return entities.Pagination{}, ErrInvalidSortField
	}
	return entities.Pagination{
		Page:      q.Page,
		Size:      q.Size,
		SortBy:    q.SortBy,
		SortOrder: entities.SortOrder(q.SortOrder),
	}, nil
}
