package interfaces

import (
	"apolices_xpto/internal/domain/entities"
	"context"
)

// IPolicyRepository abstracts persistence for Policy.
//
// The policy service must be able to:
//   - create a policy guarded by a unique constraint on numero
//   - resolve a policy by its public numero
//   - check whether a numero is taken (advisory, used by the number generator)
//   - list policies with filters and pagination

type IPolicyRepository interface {
	Create(ctx context.Context, p entities.Policy) (entities.Policy, error)
	GetByNumero(ctx context.Context, numero string) (entities.Policy, error)
	ExistsByNumero(ctx context.Context, numero string) (bool, error)
	List(ctx context.Context, filter entities.PolicyFilter) ([]entities.Policy, int, error)
}
