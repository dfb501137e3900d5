package interfaces

import (
	"apolices_xpto/internal/domain/entities"
	"context"
)

// AmendFunc turns a consistent snapshot of a policy and its history into the
// writes of one endorsement creation. Returning an error aborts the transaction.
type AmendFunc func(snapshot entities.PolicySnapshot) (entities.Amendment, error)

// IEndorsementRepository abstracts persistence for Endorsement.
//
// Amend is the only write path. Implementations must:
//   - read the policy by numero and its full endorsement/cancellation history
//   - call amend exactly once with that snapshot (zero Policy when the numero is unknown)
//   - persist the endorsement, the optional cancellation row and the policy update
//     as one atomic unit, or nothing at all
//   - fail with ErrConcurrentModification when the policy changed after the read
//   - fail with ErrEndorsementAlreadyCancelled when the cancellation target is taken
//
// Read paths fill CancelledByEndorsementID from the cancellation lookup.

type IEndorsementRepository interface {
	Amend(ctx context.Context, numero string, amend AmendFunc) (entities.Endorsement, error)
	GetByID(ctx context.Context, policyID, id string) (entities.Endorsement, error)
	List(ctx context.Context, policyID string, filter entities.EndorsementFilter) ([]entities.Endorsement, int, error)
}
