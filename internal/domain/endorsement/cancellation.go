package endorsement

import (
	"errors"
	"sort"

	"apolices_xpto/internal/domain/entities"
)

var ErrNoValidEndorsementToCancel = errors.New("no valid endorsement to cancel")

// History is the ordered endorsement log of one policy plus the cancellation
// lookup (cancelled id -> canceller id).
type History struct {
	endorsements []entities.Endorsement
	cancelledBy  map[string]string
}

// NewHistory orders endorsements by Sequencia (CreatedAt breaks ties for rows
// written before sequencia existed) and indexes the cancellations by target.
func NewHistory(endorsements []entities.Endorsement, cancellations []entities.EndorsementCancellation) History {
	ordered := make([]entities.Endorsement, len(endorsements))
	copy(ordered, endorsements)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Sequencia != ordered[j].Sequencia {
			return ordered[i].Sequencia < ordered[j].Sequencia
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})

	cancelledBy := make(map[string]string, len(cancellations))
	for _, c := range cancellations {
		cancelledBy[c.CancelledEndorsementID] = c.CancellerEndorsementID
	}
	return History{endorsements: ordered, cancelledBy: cancelledBy}
}

// HistoryFromSnapshot is NewHistory over a repository snapshot.
func HistoryFromSnapshot(s entities.PolicySnapshot) History {
	return NewHistory(s.Endorsements, s.Cancellations)
}

func (h History) Endorsements() []entities.Endorsement {
	return h.endorsements
}

// CancelledBy returns the id of the endorsement that cancelled id, if any.
func (h History) CancelledBy(id string) (string, bool) {
	canceller, ok := h.cancelledBy[id]
	return canceller, ok
}

// IsValid reports whether e is a non-cancellation endorsement that no
// cancellation references yet.
func (h History) IsValid(e entities.Endorsement) bool {
	if e.Tipo.IsCancelamento() {
		return false
	}
	_, cancelled := h.cancelledBy[e.ID]
	return !cancelled
}

// Valid returns the valid endorsements in creation order.
func (h History) Valid() []entities.Endorsement {
	out := make([]entities.Endorsement, 0, len(h.endorsements))
	for _, e := range h.endorsements {
		if h.IsValid(e) {
			out = append(out, e)
		}
	}
	return out
}

// CancellationPlan is the outcome of resolving a cancellation request.
// RevertTo is nil when Target was the last valid endorsement and the policy
// must be terminated.
type CancellationPlan struct {
	Target   entities.Endorsement
	RevertTo *entities.Endorsement
}

func (p CancellationPlan) Terminal() bool {
	return p.RevertTo == nil
}

// ResolveCancellation picks the most recent valid endorsement as the target
// and the one before it (if any) as the state to revert to.
func ResolveCancellation(h History) (CancellationPlan, error) {
	valid := h.Valid()
	if len(valid) == 0 {
		return CancellationPlan{}, ErrNoValidEndorsementToCancel
	}

	plan := CancellationPlan{Target: valid[len(valid)-1]}
	remaining := valid[:len(valid)-1]
	if len(remaining) > 0 {
		revertTo := remaining[len(remaining)-1]
		plan.RevertTo = &revertTo
	}
	return plan, nil
}
