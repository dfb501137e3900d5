package repository

import (
	"context"
	"errors"

	"apolices_xpto/internal/domain/entities"
	"apolices_xpto/internal/usecase/interfaces"

	"gorm.io/gorm"
)

var policySortColumns = map[string]string{
	"created_at":           "created_at",
	"data_emissao":         "data_emissao",
	"inicio_vigencia":      "inicio_vigencia",
	"fim_vigencia":         "fim_vigencia",
	"importancia_segurada": "importancia_segurada",
	"numero":               "numero",
}

// PolicyGormRepository persists Policy entities in PostgreSQL through gorm.
//
// The gorm.DB must be opened with TranslateError so unique violations surface
// as gorm.ErrDuplicatedKey.
type PolicyGormRepository struct {
	db *gorm.DB
}

var _ interfaces.IPolicyRepository = (*PolicyGormRepository)(nil)

func NewPolicyGormRepository(db *gorm.DB) *PolicyGormRepository {
	return &PolicyGormRepository{db: db}
}

func (r *PolicyGormRepository) Create(ctx context.Context, p entities.Policy) (entities.Policy, error) {
	rec := toPolicyRecord(p)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return entities.Policy{}, interfaces.ErrNumeroAlreadyExists
		}
		return entities.Policy{}, err
	}
	return p, nil
}

func (r *PolicyGormRepository) GetByNumero(ctx context.Context, numero string) (entities.Policy, error) {
	var rec policyRecord
	err := r.db.WithContext(ctx).Where("numero = ?", numero).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Policy{}, nil
	}
	if err != nil {
		return entities.Policy{}, err
	}
	return fromPolicyRecord(rec), nil
}

func (r *PolicyGormRepository) ExistsByNumero(ctx context.Context, numero string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&policyRecord{}).Where("numero = ?", numero).Count(&count).Error
	return count > 0, err
}

func (r *PolicyGormRepository) List(ctx context.Context, filter entities.PolicyFilter) ([]entities.Policy, int, error) {
	q := r.db.WithContext(ctx).Model(&policyRecord{})
	if filter.Status != "" {
		q = q.Where("status = ?", string(filter.Status))
	}
	q = whereRange(q, "inicio_vigencia", filter.InicioVigenciaGTE, filter.InicioVigenciaLTE)
	q = whereRange(q, "fim_vigencia", filter.FimVigenciaGTE, filter.FimVigenciaLTE)

	q = q.Session(&gorm.Session{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var recs []policyRecord
	err := q.Order(orderBy(policySortColumns, filter.SortBy, filter.SortOrder)).
		Order("numero").
		Offset(filter.Offset()).
		Limit(filter.Size).
		Find(&recs).Error
	if err != nil {
		return nil, 0, err
	}

	out := make([]entities.Policy, 0, len(recs))
	for _, rec := range recs {
		out = append(out, fromPolicyRecord(rec))
	}
	return out, int(total), nil
}
