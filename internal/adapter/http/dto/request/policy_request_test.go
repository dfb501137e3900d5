package request

import (
	"errors"
	"testing"

	"apolices_xpto/internal/domain/entities"
)

func TestCreatePolicyRequest_ToInput(t *testing.T) {
	valid := CreatePolicyRequest{
		DataEmissao:         "2024-10-15",
		InicioVigencia:      "2024-10-25",
		FimVigencia:         "2025-10-25",
		ImportanciaSegurada: 50_000_000,
	}

	in, err := valid.ToInput()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.ImportanciaSegurada != 50_000_000 || in.FimVigencia.Format(DateLayout) != "2025-10-25" {
		t.Fatalf("unexpected input: %+v", in)
	}

	cases := []struct {
		name   string
		mutate func(*CreatePolicyRequest)
		want   error
	}{
		{"bad date", func(r *CreatePolicyRequest) { r.DataEmissao = "15/10/2024" }, ErrInvalidDate},
		{"non positive IS", func(r *CreatePolicyRequest) { r.ImportanciaSegurada = -1 }, ErrNonPositiveInsuredValue},
		{"fim before inicio", func(r *CreatePolicyRequest) { r.FimVigencia = "2024-10-24" }, ErrFimBeforeInicio},
		{"inicio 31 days after emissao", func(r *CreatePolicyRequest) { r.InicioVigencia = "2024-11-15" }, ErrInicioFarFromEmissao},
		{"inicio 31 days before emissao", func(r *CreatePolicyRequest) { r.InicioVigencia = "2024-09-14" }, ErrInicioFarFromEmissao},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := valid
			tc.mutate(&r)
			if _, err := r.ToInput(); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("inicio exactly 30 days away", func(t *testing.T) {
		r := valid
		r.InicioVigencia = "2024-11-14"
		r.FimVigencia = "2025-11-14"
		if _, err := r.ToInput(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestListPoliciesQuery_ToFilter(t *testing.T) {
	q := ListPoliciesQuery{
		PaginationQuery:   PaginationQuery{Page: 2, Size: 5, SortBy: "numero", SortOrder: "asc"},
		Status:            "ativa",
		InicioVigenciaGTE: "2024-01-01",
	}
	f, err := q.ToFilter()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Page != 2 || f.Size != 5 || f.SortBy != "numero" || f.SortOrder != entities.SortOrderAsc {
		t.Fatalf("unexpected pagination: %+v", f.Pagination)
	}
	if f.Status != entities.PolicyStatusAtiva || f.InicioVigenciaGTE == nil || f.InicioVigenciaLTE != nil {
		t.Fatalf("unexpected filter: %+v", f)
	}

	if _, err := (ListPoliciesQuery{PaginationQuery: PaginationQuery{SortBy: "lmg"}}).ToFilter(); !errors.Is(err, ErrInvalidSortField) {
		t.Fatalf("expected ErrInvalidSortField, got %v", err)
	}
	if _, err := (ListPoliciesQuery{Status: "ATIVA"}).ToFilter(); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("expected ErrInvalidStatus, got %v", err)
	}
	if _, err := (ListPoliciesQuery{FimVigenciaLTE: "2024-13-01"}).ToFilter(); !errors.Is(err, ErrInvalidDate) {
		t.Fatalf("expected ErrInvalidDate, got %v", err)
	}
}
