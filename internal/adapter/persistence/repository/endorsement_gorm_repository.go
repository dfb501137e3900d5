package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"apolices_xpto/internal/domain/entities"
	"apolices_xpto/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var endorsementSortColumns = map[string]string{
	"created_at":           "created_at",
	"data_emissao":         "data_emissao",
	"tipo":                 "tipo",
	"importancia_segurada": "COALESCE(importancia_segurada, 0)",
}

// EndorsementGormRepository persists endorsements and the cancellation lookup
// in PostgreSQL. Amend holds a row lock on the policy for the whole transaction.
type EndorsementGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IEndorsementRepository = (*EndorsementGormRepository)(nil)

func NewEndorsementGormRepository(db *gorm.DB) *EndorsementGormRepository {
	return &EndorsementGormRepository{db: db}
}

func (r *EndorsementGormRepository) Amend(ctx context.Context, numero string, amend interfaces.AmendFunc) (entities.Endorsement, error) {
	var created entities.Endorsement
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var pol policyRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Where("numero = ?", numero).First(&pol).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if _, err := amend(entities.PolicySnapshot{}); err != nil {
				return err
			}
			return fmt.Errorf("policy %s does not exist", numero)
		}
		if err != nil {
			return err
		}

		snapshot, err := loadSnapshot(tx, fromPolicyRecord(pol))
		if err != nil {
			return err
		}
		a, err := amend(snapshot)
		if err != nil {
			return err
		}

		rec := toEndorsementRecord(a.Endorsement)
		if err := tx.Create(&rec).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return interfaces.ErrConcurrentModification
			}
			return err
		}

		if c := a.Cancellation; c != nil {
			crec := cancellationRecord{
				CancelledEndorsementID: c.CancelledEndorsementID,
				CancellerEndorsementID: c.CancellerEndorsementID,
				PolicyID:               c.PolicyID,
				CreatedAt:              c.CreatedAt,
			}
			if err := tx.Create(&crec).Error; err != nil {
				if errors.Is(err, gorm.ErrDuplicatedKey) {
					return interfaces.ErrEndorsementAlreadyCancelled
				}
				return err
			}
		}

		res := tx.Model(&policyRecord{}).
			Where("id = ? AND endorsements_count = ?", a.Policy.ID, a.ExpectedEndorsementsCount).
			Updates(map[string]any{
				"status":               string(a.Policy.Status),
				"inicio_vigencia":      a.Policy.InicioVigencia,
				"fim_vigencia":         a.Policy.FimVigencia,
				"importancia_segurada": a.Policy.ImportanciaSegurada,
				"lmg":                  a.Policy.LMG,
				"endorsements_count":   a.Policy.EndorsementsCount,
				"updated_at":           a.Policy.UpdatedAt,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return interfaces.ErrConcurrentModification
		}

		created = a.Endorsement
		return nil
	})
	if err != nil {
		return entities.Endorsement{}, err
	}
	return created, nil
}

func loadSnapshot(tx *gorm.DB, p entities.Policy) (entities.PolicySnapshot, error) {
	var recs []endorsementRecord
	if err := tx.Where("policy_id = ?", p.ID).Order("sequencia").Find(&recs).Error; err != nil {
		return entities.PolicySnapshot{}, err
	}
	cancellations, err := loadCancellations(tx, p.ID)
	if err != nil {
		return entities.PolicySnapshot{}, err
	}

	s := entities.PolicySnapshot{Policy: p, Cancellations: cancellations}
	for _, rec := range recs {
		s.Endorsements = append(s.Endorsements, fromEndorsementRecord(rec))
	}
	return s, nil
}

func loadCancellations(tx *gorm.DB, policyID string) ([]entities.EndorsementCancellation, error) {
	var recs []cancellationRecord
	if err := tx.Where("policy_id = ?", policyID).Find(&recs).Error; err != nil {
		return nil, err
	}
	out := make([]entities.EndorsementCancellation, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromCancellationRecord(rec))
	}
	return out, nil
}

func (r *EndorsementGormRepository) GetByID(ctx context.Context, policyID, id string) (entities.Endorsement, error) {
	db := r.db.WithContext(ctx)
	var rec endorsementRecord
	err := db.Where("policy_id = ? AND id = ?", policyID, id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Endorsement{}, nil
	}
	if err != nil {
		return entities.Endorsement{}, err
	}

	e := fromEndorsementRecord(rec)
	var c cancellationRecord
	err = db.Where("cancelled_endorsement_id = ?", id).First(&c).Error
	switch {
	case err == nil:
		e.CancelledByEndorsementID = c.CancellerEndorsementID
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return entities.Endorsement{}, err
	}
	return e, nil
}

func (r *EndorsementGormRepository) List(ctx context.Context, policyID string, filter entities.EndorsementFilter) ([]entities.Endorsement, int, error) {
	db := r.db.WithContext(ctx)
	q := db.Model(&endorsementRecord{}).Where("policy_id = ?", policyID)
	if filter.Tipo != "" {
		q = q.Where("tipo = ?", string(filter.Tipo))
	}
	q = whereRange(q, "data_emissao", filter.DataEmissaoGTE, filter.DataEmissaoLTE)

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recs []endorsementRecord
	err := q.Order(orderBy(endorsementSortColumns, filter.SortBy, filter.SortOrder)).
		Order("sequencia").
		Offset(filter.Offset()).
		Limit(filter.Size).
		Find(&recs).Error
	if err != nil {
		return nil, 0, err
	}
	cancellations, err := loadCancellations(db, policyID)
	if err != nil {
		return nil, 0, err
	}

	out := make([]entities.Endorsement, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromEndorsementRecord(rec))
	}
	return withCancelledBy(out, cancellations), int(total), nil
}

func whereRange(q *gorm.DB, column string, gte, lte *time.Time) *gorm.DB {
	if gte != nil {
		q = q.Where(column+" >= ?", *gte)
	}
	if lte != nil {
		q = q.Where(column+" <= ?", *lte)
	}
	return q
}

// orderBy resolves a whitelisted sort field. Unknown fields fall back to created_at.
func orderBy(columns map[string]string, sortBy string, order entities.SortOrder) string {
	col, ok := columns[sortBy]
	if !ok {
		col = "created_at"
	}
	if order == entities.SortOrderAsc {
		return col + " ASC"
	}
	return col + " DESC"
}
