// Package adapters provides the repository implementation for the
// symbollist feature.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"

	"chart_backend/internal/feature/symbollist/domain/entity"
	"chart_backend/internal/feature/symbollist/usecase"
)

type symbolGorm struct {
	db *gorm.DB
}

var _ usecase.SymbolRepository = (*symbolGorm)(nil)

func NewSymbolRepository(db *gorm.DB) *symbolGorm {
	return &symbolGorm{db: db}
}

type SymbolModel struct {
	ID        uint      `gorm:"primaryKey"`
	Code      string    `gorm:"size:20;not null;uniqueIndex"`
	Name      string    `gorm:"size:255;not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	SortKey   int       `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (SymbolModel) TableName() string {
	return "symbols"
}

// ListActive returns all active symbols in sort_key order.
func (r *symbolGorm) ListActive(ctx context.Context) ([]entity.Symbol, error) {
	var rows []SymbolModel
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]entity.Symbol, 0, len(rows))
	for _, m := range rows {
		out = append(out, entity.Symbol{
			Code:      m.Code,
			Name:      m.Name,
			IsActive:  m.IsActive,
			SortKey:   m.SortKey,
			UpdatedAt: m.UpdatedAt,
		})
	}
	return out, nil
}

// ListActiveCodes returns only the codes of active symbols in sort_key
// order, for callers that just need the ticker set.
func (r *symbolGorm) ListActiveCodes(ctx context.Context) ([]string, error) {
	var codes []string
	if err := r.db.WithContext(ctx).
		Model(&SymbolModel{}).
		Where("is_active = ?", true).
		Order("sort_key ASC").
		Pluck("code", &codes).Error; err != nil {
		return nil, err
	}
	return codes, nil
}
