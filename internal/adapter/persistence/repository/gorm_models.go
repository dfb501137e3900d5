package repository

import (
	"time"

	"apolices_xpto/internal/domain/entities"
)

// policyRecord is the relational row of a policy.
type policyRecord struct {
	ID                  string    `gorm:"primaryKey;size:36"`
	Numero              string    `gorm:"size:14;not null;uniqueIndex"`
	Status              string    `gorm:"size:16;not null;index"`
	DataEmissao         time.Time `gorm:"type:date;not null"`
	InicioVigencia      time.Time `gorm:"type:date;not null"`
	FimVigencia         time.Time `gorm:"type:date;not null"`
	ImportanciaSegurada int64     `gorm:"not null"`
	LMG                 int64     `gorm:"column:lmg;not null"`
	EndorsementsCount   int       `gorm:"not null;default:0"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (policyRecord) TableName() string {
	return getenvDefault("POLICIES_TABLE", defaultPoliciesTableName)
}

type endorsementRecord struct {
	ID                     string    `gorm:"primaryKey;size:36"`
	PolicyID               string    `gorm:"size:36;not null;uniqueIndex:idx_endorsements_policy_sequencia,priority:1"`
	Sequencia              int       `gorm:"not null;uniqueIndex:idx_endorsements_policy_sequencia,priority:2"`
	DataEmissao            time.Time `gorm:"type:date;not null"`
	Tipo                   string    `gorm:"size:32;not null;index"`
	ImportanciaSegurada    *int64
	InicioVigencia         *time.Time `gorm:"type:date"`
	FimVigencia            *time.Time `gorm:"type:date"`
	CancelledEndorsementID *string    `gorm:"size:36"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (endorsementRecord) TableName() string {
	return getenvDefault("ENDORSEMENTS_TABLE", defaultEndorsementsTableName)
}

// cancellationRecord keys on the cancelled endorsement, so a target is
// cancelled at most once.
type cancellationRecord struct {
	CancelledEndorsementID string `gorm:"primaryKey;size:36"`
	CancellerEndorsementID string `gorm:"size:36;not null;uniqueIndex"`
	PolicyID               string `gorm:"size:36;not null;index"`
	CreatedAt              time.Time
}

func (cancellationRecord) TableName() string {
	return getenvDefault("ENDORSEMENT_CANCELLATIONS_TABLE", defaultCancellationsTableName)
}

// GormModels lists the models for AutoMigrate.
func GormModels() []any {
	return []any{&policyRecord{}, &endorsementRecord{}, &cancellationRecord{}}
}

func toPolicyRecord(p entities.Policy) policyRecord {
	return policyRecord{
		ID:                  p.ID,
		Numero:              p.Numero,
		Status:              string(p.Status),
		DataEmissao:         p.DataEmissao,
		InicioVigencia:      p.InicioVigencia,
		FimVigencia:         p.FimVigencia,
		ImportanciaSegurada: p.ImportanciaSegurada,
		LMG:                 p.LMG,
		EndorsementsCount:   p.EndorsementsCount,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func fromPolicyRecord(r policyRecord) entities.Policy {
	return entities.Policy{
		ID:                  r.ID,
		Numero:              r.Numero,
		Status:              entities.PolicyStatus(r.Status),
		DataEmissao:         utcDate(r.DataEmissao),
		InicioVigencia:      utcDate(r.InicioVigencia),
		FimVigencia:         utcDate(r.FimVigencia),
		ImportanciaSegurada: r.ImportanciaSegurada,
		LMG:                 r.LMG,
		EndorsementsCount:   r.EndorsementsCount,
		CreatedAt:           r.CreatedAt.UTC(),
		UpdatedAt:           r.UpdatedAt.UTC(),
	}
}

func toEndorsementRecord(e entities.Endorsement) endorsementRecord {
	r := endorsementRecord{
		ID:                  e.ID,
		PolicyID:            e.PolicyID,
		Sequencia:           e.Sequencia,
		DataEmissao:         e.DataEmissao,
		Tipo:                string(e.Tipo),
		ImportanciaSegurada: e.ImportanciaSegurada,
		InicioVigencia:      e.InicioVigencia,
		FimVigencia:         e.FimVigencia,
		CreatedAt:           e.CreatedAt,
		UpdatedAt:           e.UpdatedAt,
	}
	if e.CancelledEndorsementID != "" {
		id := e.CancelledEndorsementID
		r.CancelledEndorsementID = &id
	}
	return r
}

func fromEndorsementRecord(r endorsementRecord) entities.Endorsement {
	e := entities.Endorsement{
		ID:                  r.ID,
		PolicyID:            r.PolicyID,
		Sequencia:           r.Sequencia,
		DataEmissao:         utcDate(r.DataEmissao),
		Tipo:                entities.EndorsementTipo(r.Tipo),
		ImportanciaSegurada: r.ImportanciaSegurada,
		CreatedAt:           r.CreatedAt.UTC(),
		UpdatedAt:           r.UpdatedAt.UTC(),
	}
	if r.InicioVigencia != nil {
		d := utcDate(*r.InicioVigencia)
		e.InicioVigencia = &d
	}
	if r.FimVigencia != nil {
		d := utcDate(*r.FimVigencia)
		e.FimVigencia = &d
	}
	if r.CancelledEndorsementID != nil {
		e.CancelledEndorsementID = *r.CancelledEndorsementID
	}
	return e
}

func fromCancellationRecord(r cancellationRecord) entities.EndorsementCancellation {
	return entities.EndorsementCancellation{
		CancelledEndorsementID: r.CancelledEndorsementID,
		CancellerEndorsementID: r.CancellerEndorsementID,
		PolicyID:               r.PolicyID,
		CreatedAt:              r.CreatedAt.UTC(),
	}
}

// utcDate drops the driver's location so dates compare equal to parsed ones.
func utcDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
