// Package endorsement holds the pure rules of the endorsement lifecycle:
// which kind of change a delta represents, which endorsement a cancellation
// targets and how the policy terms are projected from the history.
//
// Nothing here touches storage; the use case composes these functions inside
// the repository transaction.
package endorsement

import (
	"time"

	"apolices_xpto/internal/domain/entities"
)

// ResolveTipo infers the endorsement kind from the current policy and the
// requested delta.
//
// A delta with none of IS, inicio or fim present is a cancellation. A delta
// whose present fields all equal the current terms is a cancellation too:
// there is no "re-affirm terms" endorsement.
func ResolveTipo(current entities.Policy, delta entities.EndorsementDelta) entities.EndorsementTipo {
	if !delta.HasAmendableFields() {
		return entities.EndorsementTipoCancelamento
	}

	hasIS := delta.ImportanciaSegurada != nil && *delta.ImportanciaSegurada != current.ImportanciaSegurada
	hasVig := changesDate(delta.InicioVigencia, current.InicioVigencia) ||
		changesDate(delta.FimVigencia, current.FimVigencia)

	switch {
	case hasIS && hasVig:
		if *delta.ImportanciaSegurada > current.ImportanciaSegurada {
			return entities.EndorsementTipoAumentoISAlteracaoVigencia
		}
		return entities.EndorsementTipoReducaoISAlteracaoVigencia
	case hasIS:
		if *delta.ImportanciaSegurada > current.ImportanciaSegurada {
			return entities.EndorsementTipoAumentoIS
		}
		return entities.EndorsementTipoReducaoIS
	case hasVig:
		return entities.EndorsementTipoAlteracaoVigencia
	default:
		return entities.EndorsementTipoCancelamento
	}
}

func changesDate(proposed *time.Time, current time.Time) bool {
	return proposed != nil && !proposed.Equal(current)
}
