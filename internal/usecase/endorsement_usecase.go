package usecase

import (
	"apolices_xpto/internal/domain/endorsement"
	"apolices_xpto/internal/domain/entities"
	"apolices_xpto/internal/usecase/interfaces"
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
)

const endorsementIDMaxLength = 36

var (
	ErrEndorsementNotFound        = errors.New("endorsement not found")
	ErrInvalidEndorsementID       = errors.New("invalid endorsement id")
	ErrNoValidEndorsementToCancel = endorsement.ErrNoValidEndorsementToCancel
	ErrNegativeInsuredAmount      = errors.New("resulting insured amount must be positive")
	ErrInvalidVigencia            = errors.New("resulting fim_vigencia is before inicio_vigencia")
	ErrConcurrentModification     = errors.New("policy changed while the endorsement was being created")
)

// IEndorsementUseCase exposes endorsement (endosso) operations.
//
//   - POST /policies/{numero}/endorsements => Create()
//   - GET /policies/{numero}/endorsements/{id} => GetByID()
//   - GET /policies/{numero}/endorsements => List()

type IEndorsementUseCase interface {
	Create(ctx context.Context, numero string, delta entities.EndorsementDelta) (string, error)
	GetByID(ctx context.Context, numero, id string) (entities.Endorsement, error)
	List(ctx context.Context, numero string, filter entities.EndorsementFilter) ([]entities.Endorsement, int, error)
}

// EndorsementUseCase is the endorsement lifecycle engine. Create resolves the
// kind of change, runs either the regular projection or the cancellation path
// and hands the result to the repository, which persists it atomically.
type EndorsementUseCase struct {
	repo       interfaces.IEndorsementRepository
	policyRepo interfaces.IPolicyRepository
	now        func() time.Time
	newID      func() (string, error)
}

var _ IEndorsementUseCase = (*EndorsementUseCase)(nil)

func NewEndorsementUseCase(repo interfaces.IEndorsementRepository, policyRepo interfaces.IPolicyRepository) *EndorsementUseCase {
	return &EndorsementUseCase{repo: repo, policyRepo: policyRepo, now: time.Now, newID: newID}
}

// Create appends one endorsement to the policy identified by numero and
// returns the new endorsement id.
//
// Storage races (the policy moved on after the snapshot, or the cancellation
// target was taken) surface as ErrConcurrentModification and are not retried.
func (u *EndorsementUseCase) Create(ctx context.Context, numero string, delta entities.EndorsementDelta) (string, error) {
	log.Printf("[endorsement][usecase] create start raw_numero=%q has_fields=%t", numero, delta.HasAmendableFields())
	numero, err := normalizeNumero(numero)
	if err != nil {
		return "", err
	}

	created, err := u.repo.Amend(ctx, numero, func(s entities.PolicySnapshot) (entities.Amendment, error) {
		if s.Policy.ID == "" {
			return entities.Amendment{}, ErrPolicyNotFound
		}

		tipo := endorsement.ResolveTipo(s.Policy, delta)
		log.Printf("[endorsement][usecase] resolved tipo numero=%s tipo=%s endorsements=%d", numero, tipo, len(s.Endorsements))
		if tipo.IsCancelamento() {
			return u.planCancellation(s, delta)
		}
		return u.planRegular(s, delta, tipo)
	})
	if err != nil {
		if errors.Is(err, interfaces.ErrConcurrentModification) || errors.Is(err, interfaces.ErrEndorsementAlreadyCancelled) {
			log.Printf("[endorsement][usecase] concurrent modification numero=%s err=%v", numero, err)
			return "", fmt.Errorf("%w: %v", ErrConcurrentModification, err)
		}
		log.Printf("[endorsement][usecase] create failed numero=%s err=%v", numero, err)
		return "", err
	}

	if created.Tipo.IsCancelamento() {
		log.Printf("[endorsement][usecase] cancellation endorsement %s created for policy %s cancelled=%s", created.ID, numero, created.CancelledEndorsementID)
	} else {
		log.Printf("[endorsement][usecase] endorsement %s created for policy %s tipo=%s", created.ID, numero, created.Tipo)
	}
	return created.ID, nil
}

func (u *EndorsementUseCase) planRegular(s entities.PolicySnapshot, delta entities.EndorsementDelta, tipo entities.EndorsementTipo) (entities.Amendment, error) {
	// Effective terms may combine a partial delta with stored values, so the
	// policy invariants are re-checked here even though requests are validated upstream.
	terms := endorsement.EffectiveTerms(s.Policy, delta)
	if terms.ImportanciaSegurada <= 0 {
		return entities.Amendment{}, ErrNegativeInsuredAmount
	}
	if terms.FimVigencia.Before(terms.InicioVigencia) {
		return entities.Amendment{}, ErrInvalidVigencia
	}

	e, err := u.newEndorsement(s.Policy, delta, tipo)
	if err != nil {
		return entities.Amendment{}, err
	}
	e.ImportanciaSegurada = &terms.ImportanciaSegurada
	e.InicioVigencia = &terms.InicioVigencia
	e.FimVigencia = &terms.FimVigencia

	return u.amendment(s.Policy, e, nil, endorsement.ApplyRegular(s.Policy, e)), nil
}

func (u *EndorsementUseCase) planCancellation(s entities.PolicySnapshot, delta entities.EndorsementDelta) (entities.Amendment, error) {
	plan, err := endorsement.ResolveCancellation(endorsement.HistoryFromSnapshot(s))
	if err != nil {
		return entities.Amendment{}, err
	}

	e, err := u.newEndorsement(s.Policy, delta, entities.EndorsementTipoCancelamento)
	if err != nil {
		return entities.Amendment{}, err
	}
	e.CancelledEndorsementID = plan.Target.ID

	c := &entities.EndorsementCancellation{
		CancelledEndorsementID: plan.Target.ID,
		CancellerEndorsementID: e.ID,
		PolicyID:               s.Policy.ID,
		CreatedAt:              e.CreatedAt,
	}
	return u.amendment(s.Policy, e, c, endorsement.ApplyCancellation(s.Policy, plan)), nil
}

func (u *EndorsementUseCase) newEndorsement(p entities.Policy, delta entities.EndorsementDelta, tipo entities.EndorsementTipo) (entities.Endorsement, error) {
	id, err := u.newID()
	if err != nil {
		return entities.Endorsement{}, err
	}
	now := u.now().UTC()
	return entities.Endorsement{
		ID:          id,
		PolicyID:    p.ID,
		Sequencia:   p.EndorsementsCount + 1,
		DataEmissao: delta.DataEmissao,
		Tipo:        tipo,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func (u *EndorsementUseCase) amendment(before entities.Policy, e entities.Endorsement, c *entities.EndorsementCancellation, after entities.Policy) entities.Amendment {
	after.EndorsementsCount = before.EndorsementsCount + 1
	after.UpdatedAt = e.CreatedAt
	return entities.Amendment{
		Endorsement:               e,
		Cancellation:              c,
		Policy:                    after,
		ExpectedEndorsementsCount: before.EndorsementsCount,
	}
}

func (u *EndorsementUseCase) GetByID(ctx context.Context, numero, id string) (entities.Endorsement, error) {
	id = strings.TrimSpace(id)
	if id == "" || len(id) > endorsementIDMaxLength {
		return entities.Endorsement{}, ErrInvalidEndorsementID
	}

	p, err := u.loadPolicy(ctx, numero)
	if err != nil {
		return entities.Endorsement{}, err
	}

	e, err := u.repo.GetByID(ctx, p.ID, id)
	if err != nil {
		return entities.Endorsement{}, err
	}
	if e.ID == "" {
		return entities.Endorsement{}, ErrEndorsementNotFound
	}
	return e, nil
}

func (u *EndorsementUseCase) List(ctx context.Context, numero string, filter entities.EndorsementFilter) ([]entities.Endorsement, int, error) {
	p, err := u.loadPolicy(ctx, numero)
	if err != nil {
		return nil, 0, err
	}
	filter.Pagination = withPaginationDefaults(filter.Pagination)
	return u.repo.List(ctx, p.ID, filter)
}

func (u *EndorsementUseCase) loadPolicy(ctx context.Context, numero string) (entities.Policy, error) {
	numero, err := normalizeNumero(numero)
	if err != nil {
		return entities.Policy{}, err
	}
	p, err := u.policyRepo.GetByNumero(ctx, numero)
	if err != nil {
		return entities.Policy{}, err
	}
	if p.ID == "" {
		return entities.Policy{}, ErrPolicyNotFound
	}
	return p, nil
}
