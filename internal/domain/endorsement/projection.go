package endorsement

import (
	"time"

	"apolices_xpto/internal/domain/entities"
)

// Terms are the mutable financial and coverage fields of a policy.
type Terms struct {
	ImportanciaSegurada int64
	InicioVigencia      time.Time
	FimVigencia         time.Time
}

// EffectiveTerms takes each delta field over the current policy field,
// independently.
func EffectiveTerms(current entities.Policy, delta entities.EndorsementDelta) Terms {
	t := Terms{
		ImportanciaSegurada: current.ImportanciaSegurada,
		InicioVigencia:      current.InicioVigencia,
		FimVigencia:         current.FimVigencia,
	}
	if delta.ImportanciaSegurada != nil {
		t.ImportanciaSegurada = *delta.ImportanciaSegurada
	}
	if delta.InicioVigencia != nil {
		t.InicioVigencia = *delta.InicioVigencia
	}
	if delta.FimVigencia != nil {
		t.FimVigencia = *delta.FimVigencia
	}
	return t
}

// ApplyRegular adopts every non-nil term carried by e and keeps the rest.
// LMG mirrors the resulting IS.
func ApplyRegular(p entities.Policy, e entities.Endorsement) entities.Policy {
	if e.ImportanciaSegurada != nil {
		p.ImportanciaSegurada = *e.ImportanciaSegurada
	}
	if e.InicioVigencia != nil {
		p.InicioVigencia = *e.InicioVigencia
	}
	if e.FimVigencia != nil {
		p.FimVigencia = *e.FimVigencia
	}
	p.LMG = p.ImportanciaSegurada
	return p
}

// ApplyCancellationRevert restores the terms stored on revertTo. The policy
// stays ativa.
func ApplyCancellationRevert(p entities.Policy, revertTo entities.Endorsement) entities.Policy {
	p = ApplyRegular(p, revertTo)
	p.Status = entities.PolicyStatusAtiva
	return p
}

// ApplyCancellationTerminal terminates the policy. IS, LMG and vigencia keep
// their last projected values.
func ApplyCancellationTerminal(p entities.Policy) entities.Policy {
	p.Status = entities.PolicyStatusBaixada
	return p
}

// ApplyCancellation dispatches on the plan.
func ApplyCancellation(p entities.Policy, plan CancellationPlan) entities.Policy {
	if plan.Terminal() {
		return ApplyCancellationTerminal(p)
	}
	return ApplyCancellationRevert(p, *plan.RevertTo)
}
