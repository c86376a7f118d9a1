// Package adapters wires the chart feature to its storage and market data
// backends.
package adapters

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"chart_backend/internal/feature/chart/domain/entity"
	"chart_backend/internal/feature/chart/usecase"
)

type minuteBarGorm struct {
	db *gorm.DB
}

var _ usecase.MinuteBarRepository = (*minuteBarGorm)(nil)
var _ usecase.MinuteBarWriter = (*minuteBarGorm)(nil)

func NewMinuteBarRepository(db *gorm.DB) *minuteBarGorm {
	return &minuteBarGorm{db: db}
}

type MinuteBarModel struct {
	ID     uint      `gorm:"primaryKey"`
	Symbol string    `gorm:"size:32;not null;uniqueIndex:minutebar_sym_time,priority:1"`
	Time   time.Time `gorm:"not null;uniqueIndex:minutebar_sym_time,priority:2"`

	Open   float64 `gorm:"not null"`
	High   float64 `gorm:"not null"`
	Low    float64 `gorm:"not null"`
	Close  float64 `gorm:"not null"`
	Volume int64   `gorm:"not null;default:0"`
}

func (MinuteBarModel) TableName() string {
	return "minute_bars"
}

func toModel(e entity.MinuteBar) MinuteBarModel {
	return MinuteBarModel{
		Symbol: e.Symbol,
		Time:   e.Time,
		Open:   e.Open,
		High:   e.High,
		Low:    e.Low,
		Close:  e.Close,
		Volume: e.Volume,
	}
}

func toEntity(m MinuteBarModel) entity.MinuteBar {
	return entity.MinuteBar{
		Symbol: m.Symbol,
		Time:   m.Time,
		Open:   m.Open,
		High:   m.High,
		Low:    m.Low,
		Close:  m.Close,
		Volume: m.Volume,
	}
}

func (r *minuteBarGorm) UpsertBatch(ctx context.Context, bars []entity.MinuteBar) error {
	if len(bars) == 0 {
		return nil
	}
	ms := make([]MinuteBarModel, 0, len(bars))
	for _, e := range bars {
		ms = append(ms, toModel(e))
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "symbol"}, {Name: "time"}},
		DoUpdates: clause.AssignmentColumns([]string{"open", "high", "low", "close", "volume"}),
	}).Create(&ms).Error
}

// Find returns the symbol's minute bars in ascending timestamp order. A
// positive limit keeps only the most recent rows; the result stays
// ascending either way.
func (r *minuteBarGorm) Find(ctx context.Context, symbol string, limit int) ([]entity.MinuteBar, error) {
	var rows []MinuteBarModel
	q := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Order("time DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]entity.MinuteBar, len(rows))
	for i, m := range rows {
		out[len(rows)-1-i] = toEntity(m)
	}
	return out, nil
}
