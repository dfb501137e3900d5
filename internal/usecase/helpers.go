package usecase

import (
	"apolices_xpto/internal/domain/entities"

	"github.com/google/uuid"
)

// newID returns a time-ordered (v7) uuid.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func withPaginationDefaults(p entities.Pagination) entities.Pagination {
	if p.Page < 1 {
		p.Page = entities.DefaultPage
	}
	if p.Size < 1 {
		p.Size = entities.DefaultPageSize
	}
	if p.Size > entities.MaxPageSize {
		p.Size = entities.MaxPageSize
	}
	if p.SortBy == "" {
		p.SortBy = entities.DefaultSortBy
	}
	if p.SortOrder != entities.SortOrderAsc {
		p.SortOrder = entities.SortOrderDesc
	}
	return p
}
