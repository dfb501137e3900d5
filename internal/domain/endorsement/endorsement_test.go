package endorsement

import (
	"testing"
	"time"

	"apolices_xpto/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func ptrDate(s string) *time.Time {
	d := date(s)
	return &d
}

func ptrInt(v int64) *int64 { return &v }

func basePolicy() entities.Policy {
	return entities.Policy{
		ID:                  "pol-1",
		Numero:              "01681760574732",
		Status:              entities.PolicyStatusAtiva,
		DataEmissao:         date("2024-10-15"),
		InicioVigencia:      date("2024-10-25"),
		FimVigencia:         date("2025-10-25"),
		ImportanciaSegurada: 50_000_000,
		LMG:                 50_000_000,
	}
}

func regular(id string, seq int, is int64, inicio, fim string) entities.Endorsement {
	return entities.Endorsement{
		ID:                  id,
		PolicyID:            "pol-1",
		Sequencia:           seq,
		Tipo:                entities.EndorsementTipoAumentoIS,
		ImportanciaSegurada: ptrInt(is),
		InicioVigencia:      ptrDate(inicio),
		FimVigencia:         ptrDate(fim),
	}
}

func TestResolveTipo(t *testing.T) {
	p := basePolicy()

	cases := []struct {
		name  string
		delta entities.EndorsementDelta
		want  entities.EndorsementTipo
	}{
		{
			name:  "empty delta is a cancellation",
			delta: entities.EndorsementDelta{},
			want:  entities.EndorsementTipoCancelamento,
		},
		{
			name:  "only IS increased",
			delta: entities.EndorsementDelta{ImportanciaSegurada: ptrInt(75_000_000)},
			want:  entities.EndorsementTipoAumentoIS,
		},
		{
			name:  "only IS reduced",
			delta: entities.EndorsementDelta{ImportanciaSegurada: ptrInt(10_000_000)},
			want:  entities.EndorsementTipoReducaoIS,
		},
		{
			name:  "only inicio changed",
			delta: entities.EndorsementDelta{InicioVigencia: ptrDate("2024-11-01")},
			want:  entities.EndorsementTipoAlteracaoVigencia,
		},
		{
			name:  "only fim changed",
			delta: entities.EndorsementDelta{FimVigencia: ptrDate("2026-10-25")},
			want:  entities.EndorsementTipoAlteracaoVigencia,
		},
		{
			name: "IS increased and vigencia changed",
			delta: entities.EndorsementDelta{
				ImportanciaSegurada: ptrInt(60_000_000),
				FimVigencia:         ptrDate("2026-10-25"),
			},
			want: entities.EndorsementTipoAumentoISAlteracaoVigencia,
		},
		{
			name: "IS reduced and vigencia changed",
			delta: entities.EndorsementDelta{
				ImportanciaSegurada: ptrInt(40_000_000),
				InicioVigencia:      ptrDate("2024-11-01"),
			},
			want: entities.EndorsementTipoReducaoISAlteracaoVigencia,
		},
		{
			name: "IS unchanged with vigencia changed is only a vigencia change",
			delta: entities.EndorsementDelta{
				ImportanciaSegurada: ptrInt(50_000_000),
				FimVigencia:         ptrDate("2026-10-25"),
			},
			want: entities.EndorsementTipoAlteracaoVigencia,
		},
		{
			name: "present fields equal to current terms fall through to cancellation",
			delta: entities.EndorsementDelta{
				ImportanciaSegurada: ptrInt(50_000_000),
				InicioVigencia:      ptrDate("2024-10-25"),
				FimVigencia:         ptrDate("2025-10-25"),
			},
			want: entities.EndorsementTipoCancelamento,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveTipo(p, tc.delta))
		})
	}
}

func TestResolveTipo_IsPure(t *testing.T) {
	p := basePolicy()
	delta := entities.EndorsementDelta{ImportanciaSegurada: ptrInt(75_000_000)}

	_ = ResolveTipo(p, delta)

	assert.Equal(t, basePolicy(), p)
	assert.Equal(t, int64(75_000_000), *delta.ImportanciaSegurada)
}

func TestHistory_Valid(t *testing.T) {
	e1 := regular("e1", 1, 60, "2024-10-25", "2025-10-25")
	e2 := regular("e2", 2, 70, "2024-10-25", "2025-10-25")
	c3 := entities.Endorsement{ID: "c3", Sequencia: 3, Tipo: entities.EndorsementTipoCancelamento, CancelledEndorsementID: "e2"}

	// out of order on purpose: sequencia decides
	h := NewHistory(
		[]entities.Endorsement{c3, e2, e1},
		[]entities.EndorsementCancellation{{CancelledEndorsementID: "e2", CancellerEndorsementID: "c3"}},
	)

	valid := h.Valid()
	require.Len(t, valid, 1)
	assert.Equal(t, "e1", valid[0].ID)
	assert.Equal(t, []string{"e1", "e2", "c3"}, ids(h.Endorsements()))

	canceller, ok := h.CancelledBy("e2")
	assert.True(t, ok)
	assert.Equal(t, "c3", canceller)
	assert.False(t, h.IsValid(c3))
}

func TestResolveCancellation(t *testing.T) {
	t.Run("no endorsements", func(t *testing.T) {
		_, err := ResolveCancellation(NewHistory(nil, nil))
		assert.ErrorIs(t, err, ErrNoValidEndorsementToCancel)
	})

	t.Run("only cancelled endorsements left", func(t *testing.T) {
		e1 := regular("e1", 1, 60, "2024-10-25", "2025-10-25")
		c2 := entities.Endorsement{ID: "c2", Sequencia: 2, Tipo: entities.EndorsementTipoCancelamento, CancelledEndorsementID: "e1"}
		h := NewHistory(
			[]entities.Endorsement{e1, c2},
			[]entities.EndorsementCancellation{{CancelledEndorsementID: "e1", CancellerEndorsementID: "c2"}},
		)

		_, err := ResolveCancellation(h)
		assert.ErrorIs(t, err, ErrNoValidEndorsementToCancel)
	})

	t.Run("sole valid endorsement is terminal", func(t *testing.T) {
		e1 := regular("e1", 1, 60, "2024-10-25", "2025-10-25")

		plan, err := ResolveCancellation(NewHistory([]entities.Endorsement{e1}, nil))
		require.NoError(t, err)
		assert.Equal(t, "e1", plan.Target.ID)
		assert.True(t, plan.Terminal())
	})

	t.Run("two valid endorsements revert to the older one", func(t *testing.T) {
		e1 := regular("e1", 1, 60, "2024-10-25", "2025-10-25")
		e2 := regular("e2", 2, 70, "2024-11-01", "2025-11-01")

		plan, err := ResolveCancellation(NewHistory([]entities.Endorsement{e1, e2}, nil))
		require.NoError(t, err)
		assert.Equal(t, "e2", plan.Target.ID)
		require.NotNil(t, plan.RevertTo)
		assert.Equal(t, "e1", plan.RevertTo.ID)
	})

	t.Run("skips cancelled endorsements when picking revert state", func(t *testing.T) {
		e1 := regular("e1", 1, 60, "2024-10-25", "2025-10-25")
		e2 := regular("e2", 2, 70, "2024-10-25", "2025-10-25")
		c3 := entities.Endorsement{ID: "c3", Sequencia: 3, Tipo: entities.EndorsementTipoCancelamento, CancelledEndorsementID: "e2"}
		e4 := regular("e4", 4, 80, "2024-10-25", "2025-10-25")
		h := NewHistory(
			[]entities.Endorsement{e1, e2, c3, e4},
			[]entities.EndorsementCancellation{{CancelledEndorsementID: "e2", CancellerEndorsementID: "c3"}},
		)

		plan, err := ResolveCancellation(h)
		require.NoError(t, err)
		assert.Equal(t, "e4", plan.Target.ID)
		require.NotNil(t, plan.RevertTo)
		assert.Equal(t, "e1", plan.RevertTo.ID)
	})
}

func TestEffectiveTerms(t *testing.T) {
	p := basePolicy()

	t.Run("IS only keeps vigencia", func(t *testing.T) {
		got := EffectiveTerms(p, entities.EndorsementDelta{ImportanciaSegurada: ptrInt(75_000_000)})
		assert.Equal(t, int64(75_000_000), got.ImportanciaSegurada)
		assert.True(t, got.InicioVigencia.Equal(p.InicioVigencia))
		assert.True(t, got.FimVigencia.Equal(p.FimVigencia))
	})

	t.Run("fim only keeps IS and inicio", func(t *testing.T) {
		got := EffectiveTerms(p, entities.EndorsementDelta{FimVigencia: ptrDate("2026-01-01")})
		assert.Equal(t, p.ImportanciaSegurada, got.ImportanciaSegurada)
		assert.True(t, got.InicioVigencia.Equal(p.InicioVigencia))
		assert.True(t, got.FimVigencia.Equal(date("2026-01-01")))
	})
}

func TestApplyRegular(t *testing.T) {
	p := basePolicy()

	t.Run("IS only", func(t *testing.T) {
		got := ApplyRegular(p, entities.Endorsement{ImportanciaSegurada: ptrInt(75_000_000)})
		assert.Equal(t, int64(75_000_000), got.ImportanciaSegurada)
		assert.Equal(t, got.ImportanciaSegurada, got.LMG)
		assert.True(t, got.InicioVigencia.Equal(p.InicioVigencia))
		assert.True(t, got.FimVigencia.Equal(p.FimVigencia))
	})

	t.Run("vigencia only", func(t *testing.T) {
		got := ApplyRegular(p, entities.Endorsement{InicioVigencia: ptrDate("2024-11-01"), FimVigencia: ptrDate("2025-11-01")})
		assert.Equal(t, p.ImportanciaSegurada, got.ImportanciaSegurada)
		assert.Equal(t, p.ImportanciaSegurada, got.LMG)
		assert.True(t, got.InicioVigencia.Equal(date("2024-11-01")))
		assert.True(t, got.FimVigencia.Equal(date("2025-11-01")))
	})

	t.Run("reduction with vigencia updates both groups independently", func(t *testing.T) {
		got := ApplyRegular(p, entities.Endorsement{ImportanciaSegurada: ptrInt(40_000_000), FimVigencia: ptrDate("2026-10-25")})
		assert.Equal(t, int64(40_000_000), got.ImportanciaSegurada)
		assert.Equal(t, int64(40_000_000), got.LMG)
		assert.True(t, got.InicioVigencia.Equal(p.InicioVigencia))
		assert.True(t, got.FimVigencia.Equal(date("2026-10-25")))
	})
}

func TestApplyCancellation(t *testing.T) {
	p := basePolicy()
	p.ImportanciaSegurada, p.LMG = 70, 70

	t.Run("revert", func(t *testing.T) {
		revertTo := regular("e1", 1, 60, "2024-11-01", "2025-11-01")
		got := ApplyCancellation(p, CancellationPlan{Target: regular("e2", 2, 70, "2024-10-25", "2025-10-25"), RevertTo: &revertTo})

		assert.Equal(t, entities.PolicyStatusAtiva, got.Status)
		assert.Equal(t, int64(60), got.ImportanciaSegurada)
		assert.Equal(t, int64(60), got.LMG)
		assert.True(t, got.InicioVigencia.Equal(date("2024-11-01")))
		assert.True(t, got.FimVigencia.Equal(date("2025-11-01")))
	})

	t.Run("terminal keeps last terms", func(t *testing.T) {
		got := ApplyCancellation(p, CancellationPlan{Target: regular("e1", 1, 70, "2024-10-25", "2025-10-25")})

		assert.Equal(t, entities.PolicyStatusBaixada, got.Status)
		assert.Equal(t, int64(70), got.ImportanciaSegurada)
		assert.Equal(t, int64(70), got.LMG)
		assert.True(t, got.InicioVigencia.Equal(p.InicioVigencia))
	})
}

func ids(es []entities.Endorsement) []string {
	out := make([]string, 0, len(es))
	for _, e := range es {
		out = append(out, e.ID)
	}
	return out
}
