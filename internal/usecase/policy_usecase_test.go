package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"apolices_xpto/internal/domain/entities"
	"apolices_xpto/internal/domain/policynumber"
	"apolices_xpto/internal/usecase/interfaces"
	mock_interfaces "apolices_xpto/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type stubRandom struct{ draw int }

func (s stubRandom) Intn(int) int { return s.draw }

var fixedClock = policynumber.ClockFunc(func() time.Time { return time.Unix(1760574732, 0) })

func validPolicyInput() entities.NewPolicyInput {
	return entities.NewPolicyInput{
		DataEmissao:         day("2024-10-15"),
		InicioVigencia:      day("2024-10-25"),
		FimVigencia:         day("2025-10-25"),
		ImportanciaSegurada: 50_000_000,
	}
}

func newTestPolicyUseCase(repo *mock_interfaces.MockIPolicyRepository) *PolicyUseCase {
	return NewPolicyUseCase(repo, policynumber.NewGenerator(stubRandom{draw: 167}, fixedClock, repo))
}

func TestPolicyUseCase_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := newTestPolicyUseCase(repo)

		repo.EXPECT().ExistsByNumero(gomock.Any(), "01681760574732").Return(false, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.Policy) (entities.Policy, error) {
			if p.Numero != "01681760574732" || p.Status != entities.PolicyStatusAtiva {
				t.Fatalf("unexpected policy: %+v", p)
			}
			if p.ImportanciaSegurada != 50_000_000 || p.LMG != 50_000_000 {
				t.Fatalf("lmg must start equal to IS: %+v", p)
			}
			if p.ID == "" || p.EndorsementsCount != 0 {
				t.Fatalf("unexpected identity: %+v", p)
			}
			return p, nil
		})

		numero, err := uc.Create(context.Background(), validPolicyInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if numero != "01681760574732" {
			t.Fatalf("expected 01681760574732, got %s", numero)
		}
	})

	t.Run("invalid terms", func(t *testing.T) {
		uc := NewPolicyUseCase(nil, nil)

		in := validPolicyInput()
		in.ImportanciaSegurada = 0
		if _, err := uc.Create(context.Background(), in); !errors.Is(err, ErrInvalidPolicyTerms) {
			t.Fatalf("expected ErrInvalidPolicyTerms, got %v", err)
		}

		in = validPolicyInput()
		in.FimVigencia = day("2024-10-24")
		if _, err := uc.Create(context.Background(), in); !errors.Is(err, ErrInvalidPolicyTerms) {
			t.Fatalf("expected ErrInvalidPolicyTerms, got %v", err)
		}
	})

	t.Run("numero generation exhausted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := newTestPolicyUseCase(repo)

		repo.EXPECT().ExistsByNumero(gomock.Any(), "01681760574732").Return(true, nil).Times(policynumber.MaxAttempts)

		_, err := uc.Create(context.Background(), validPolicyInput())
		if !errors.Is(err, ErrPolicyNumeroExhausted) {
			t.Fatalf("expected ErrPolicyNumeroExhausted, got %v", err)
		}
	})

	t.Run("existence check error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := newTestPolicyUseCase(repo)

		repo.EXPECT().ExistsByNumero(gomock.Any(), gomock.Any()).Return(false, errors.New("db"))

		_, err := uc.Create(context.Background(), validPolicyInput())
		if err == nil || errors.Is(err, ErrPolicyNumeroExhausted) {
			t.Fatalf("expected wrapped db error, got %v", err)
		}
	})

	t.Run("numero taken at insert", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := newTestPolicyUseCase(repo)

		repo.EXPECT().ExistsByNumero(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Policy{}, interfaces.ErrNumeroAlreadyExists)

		_, err := uc.Create(context.Background(), validPolicyInput())
		if !errors.Is(err, ErrPolicyNumeroConflict) {
			t.Fatalf("expected ErrPolicyNumeroConflict, got %v", err)
		}
	})
}

func TestPolicyUseCase_GetByNumero(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := newTestPolicyUseCase(repo)

		repo.EXPECT().GetByNumero(gomock.Any(), "01681760574732").Return(activePolicy(), nil)

		p, err := uc.GetByNumero(context.Background(), " 01681760574732")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if p.ID != "pol-1" {
			t.Fatalf("unexpected policy: %+v", p)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
		uc := newTestPolicyUseCase(repo)

		repo.EXPECT().GetByNumero(gomock.Any(), "nonexistent").Return(entities.Policy{}, nil)

		if _, err := uc.GetByNumero(context.Background(), "nonexistent"); !errors.Is(err, ErrPolicyNotFound) {
			t.Fatalf("expected ErrPolicyNotFound, got %v", err)
		}
	})

	t.Run("invalid numero", func(t *testing.T) {
		uc := NewPolicyUseCase(nil, nil)
		if _, err := uc.GetByNumero(context.Background(), "123456789012345"); !errors.Is(err, ErrInvalidPolicyNumero) {
			t.Fatalf("expected ErrInvalidPolicyNumero, got %v", err)
		}
	})
}

func TestPolicyUseCase_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIPolicyRepository(ctrl)
	uc := newTestPolicyUseCase(repo)

	repo.EXPECT().List(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, f entities.PolicyFilter) ([]entities.Policy, int, error) {
		if f.Page != 2 || f.Size != entities.MaxPageSize || f.SortBy != "numero" || f.SortOrder != entities.SortOrderAsc {
			t.Fatalf("unexpected pagination: %+v", f.Pagination)
		}
		if f.Status != entities.PolicyStatusBaixada {
			t.Fatalf("status filter must be forwarded: %+v", f)
		}
		return []entities.Policy{activePolicy()}, 21, nil
	})

	items, total, err := uc.List(context.Background(), entities.PolicyFilter{
		Pagination: entities.Pagination{Page: 2, Size: 500, SortBy: "numero", SortOrder: entities.SortOrderAsc},
		Status:     entities.PolicyStatusBaixada,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 21 || len(items) != 1 {
		t.Fatalf("unexpected result: %d %d", total, len(items))
	}
}
