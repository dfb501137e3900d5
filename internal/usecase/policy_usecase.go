package usecase

import (
	"apolices_xpto/internal/domain/entities"
	"apolices_xpto/internal/domain/policynumber"
	"apolices_xpto/internal/usecase/interfaces"
	"context"
	"errors"
	"log"
	"strings"
	"time"
)

var (
	ErrPolicyNotFound        = errors.New("policy not found")
	ErrInvalidPolicyNumero   = errors.New("invalid policy numero")
	ErrInvalidPolicyTerms    = errors.New("invalid policy terms")
	ErrPolicyNumeroExhausted = errors.New("could not generate a unique policy numero")
	ErrPolicyNumeroConflict  = errors.New("policy numero already taken")
)

// IPolicyUseCase exposes policy (apólice) operations.
//
//   - POST /policies => Create()
//   - GET /policies/{numero} => GetByNumero()
//   - GET /policies => List()
//
// Policies are only mutated through endorsements, see IEndorsementUseCase.

type IPolicyUseCase interface {
	Create(ctx context.Context, input entities.NewPolicyInput) (string, error)
	GetByNumero(ctx context.Context, numero string) (entities.Policy, error)
	List(ctx context.Context, filter entities.PolicyFilter) ([]entities.Policy, int, error)
}

type PolicyUseCase struct {
	repo    interfaces.IPolicyRepository
	numbers *policynumber.Generator
	now     func() time.Time
}

var _ IPolicyUseCase = (*PolicyUseCase)(nil)

func NewPolicyUseCase(repo interfaces.IPolicyRepository, numbers *policynumber.Generator) *PolicyUseCase {
	return &PolicyUseCase{repo: repo, numbers: numbers, now: time.Now}
}

// Create issues a new ativa policy and returns its numero.
//
// The generator's collision check is advisory. When the insert itself hits the
// unique constraint on numero the request fails with ErrPolicyNumeroConflict and
// the caller may retry.
func (u *PolicyUseCase) Create(ctx context.Context, input entities.NewPolicyInput) (string, error) {
	if input.ImportanciaSegurada <= 0 || input.FimVigencia.Before(input.InicioVigencia) {
		return "", ErrInvalidPolicyTerms
	}

	numero, err := u.numbers.Generate(ctx)
	if err != nil {
		if errors.Is(err, policynumber.ErrExhaustedAttempts) {
			log.Printf("[policy][usecase] numero generation exhausted attempts=%d", policynumber.MaxAttempts)
			return "", ErrPolicyNumeroExhausted
		}
		log.Printf("[policy][usecase] numero generation failed err=%v", err)
		return "", err
	}

	id, err := newID()
	if err != nil {
		return "", err
	}

	now := u.now().UTC()
	p := entities.Policy{
		ID:                  id,
		Numero:              numero,
		Status:              entities.PolicyStatusAtiva,
		DataEmissao:         input.DataEmissao,
		InicioVigencia:      input.InicioVigencia,
		FimVigencia:         input.FimVigencia,
		ImportanciaSegurada: input.ImportanciaSegurada,
		LMG:                 input.ImportanciaSegurada,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if _, err := u.repo.Create(ctx, p); err != nil {
		if errors.Is(err, interfaces.ErrNumeroAlreadyExists) {
			log.Printf("[policy][usecase] numero taken at insert numero=%s", numero)
			return "", ErrPolicyNumeroConflict
		}
		log.Printf("[policy][usecase] repository create failed numero=%s err=%v", numero, err)
		return "", err
	}
	log.Printf("[policy][usecase] create success numero=%s id=%s", numero, id)
	return numero, nil
}

func (u *PolicyUseCase) GetByNumero(ctx context.Context, numero string) (entities.Policy, error) {
	numero, err := normalizeNumero(numero)
	if err != nil {
		return entities.Policy{}, err
	}

	p, err := u.repo.GetByNumero(ctx, numero)
	if err != nil {
		return entities.Policy{}, err
	}
	if p.ID == "" {
		return entities.Policy{}, ErrPolicyNotFound
	}
	return p, nil
}

func (u *PolicyUseCase) List(ctx context.Context, filter entities.PolicyFilter) ([]entities.Policy, int, error) {
	filter.Pagination = withPaginationDefaults(filter.Pagination)
	return u.repo.List(ctx, filter)
}

func normalizeNumero(numero string) (string, error) {
	numero = strings.TrimSpace(numero)
	if numero == "" || len(numero) > entities.NumeroMaxLength {
		return "", ErrInvalidPolicyNumero
	}
	return numero, nil
}
