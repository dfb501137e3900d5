package repository

import (
	"cmp"
	"os"
	"slices"
	"strconv"
	"time"

	"apolices_xpto/internal/domain/entities"
)

const dateLayout = "2006-01-02"

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func itoa(v int) string {
	return strconv.Itoa(v)
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(dateLayout)
}

func parseDate(s string) time.Time {
	t, _ := time.Parse(dateLayout, s)
	return t
}

func formatDatePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := formatDate(*t)
	return &s
}

func parseDatePtr(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	t := parseDate(*s)
	return &t
}

// withCancelledBy fills CancelledByEndorsementID from the cancellation lookup.
func withCancelledBy(endorsements []entities.Endorsement, cancellations []entities.EndorsementCancellation) []entities.Endorsement {
	cancelledBy := make(map[string]string, len(cancellations))
	for _, c := range cancellations {
		cancelledBy[c.CancelledEndorsementID] = c.CancellerEndorsementID
	}
	for i := range endorsements {
		endorsements[i].CancelledByEndorsementID = cancelledBy[endorsements[i].ID]
	}
	return endorsements
}

func inRange(t time.Time, gte, lte *time.Time) bool {
	if gte != nil && t.Before(*gte) {
		return false
	}
	if lte != nil && t.After(*lte) {
		return false
	}
	return true
}

func filterPolicies(policies []entities.Policy, f entities.PolicyFilter) []entities.Policy {
	out := make([]entities.Policy, 0, len(policies))
	for _, p := range policies {
		if f.Status != "" && p.Status != f.Status {
			continue
		}
		if !inRange(p.InicioVigencia, f.InicioVigenciaGTE, f.InicioVigenciaLTE) {
			continue
		}
		if !inRange(p.FimVigencia, f.FimVigenciaGTE, f.FimVigenciaLTE) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func filterEndorsements(endorsements []entities.Endorsement, f entities.EndorsementFilter) []entities.Endorsement {
	out := make([]entities.Endorsement, 0, len(endorsements))
	for _, e := range endorsements {
		if f.Tipo != "" && e.Tipo != f.Tipo {
			continue
		}
		if !inRange(e.DataEmissao, f.DataEmissaoGTE, f.DataEmissaoLTE) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// sortPolicies orders by sortBy with numero as tie-breaker. Unknown fields
// fall back to created_at.
func sortPolicies(policies []entities.Policy, sortBy string, order entities.SortOrder) {
	by := func(a, b entities.Policy) int {
		switch sortBy {
		case "data_emissao":
			return a.DataEmissao.Compare(b.DataEmissao)
		case "inicio_vigencia":
			return a.InicioVigencia.Compare(b.InicioVigencia)
		case "fim_vigencia":
			return a.FimVigencia.Compare(b.FimVigencia)
		case "importancia_segurada":
			return cmp.Compare(a.ImportanciaSegurada, b.ImportanciaSegurada)
		case "numero":
			return 0
		default:
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	}
	slices.SortStableFunc(policies, func(a, b entities.Policy) int {
		c := cmp.Or(by(a, b), cmp.Compare(a.Numero, b.Numero))
		if order == entities.SortOrderDesc {
			return -c
		}
		return c
	})
}

// sortEndorsements orders by sortBy with sequencia as tie-breaker. Cancellations
// carry no IS and sort below every regular endorsement on importancia_segurada.
func sortEndorsements(endorsements []entities.Endorsement, sortBy string, order entities.SortOrder) {
	by := func(a, b entities.Endorsement) int {
		switch sortBy {
		case "data_emissao":
			return a.DataEmissao.Compare(b.DataEmissao)
		case "tipo":
			return cmp.Compare(a.Tipo, b.Tipo)
		case "importancia_segurada":
			return cmp.Compare(isOrZero(a.ImportanciaSegurada), isOrZero(b.ImportanciaSegurada))
		default:
			return a.CreatedAt.Compare(b.CreatedAt)
		}
	}
	slices.SortStableFunc(endorsements, func(a, b entities.Endorsement) int {
		c := cmp.Or(by(a, b), cmp.Compare(a.Sequencia, b.Sequencia))
		if order == entities.SortOrderDesc {
			return -c
		}
		return c
	})
}

func isOrZero(v *int64) int64 {
	if v == nil {
		return 0
	}
	return *v
}

// paginate returns the page described by p. Out of range pages are empty.
func paginate[T any](items []T, p entities.Pagination) []T {
	if p.Size < 1 {
		return items
	}
	start := p.Offset()
	if start >= len(items) {
		return []T{}
	}
	end := min(start+p.Size, len(items))
	return items[start:end]
}
