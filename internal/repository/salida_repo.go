package repository

import (
	"context"

	"github.com/Cdo9608/sistema-consumibles/internal/model"

	"gorm.io/gorm"
)

// SalidaRepository is the data access contract for the salidas ledger.
// Same shape as EntradaRepository — the two ledgers are independent and no
// row in one references a row in the other.
type SalidaRepository interface {
	Create(ctx context.Context, s *model.Salida) error
	DeleteByID(ctx context.Context, id uint) error
	ListDesc(ctx context.Context) ([]model.Salida, error)
	ListAsc(ctx context.Context) ([]model.Salida, error)
	Count(ctx context.Context) (int64, error)
	BulkInsert(ctx context.Context, rows []model.Salida) error
}

type salidaRepo struct{ db *gorm.DB }

func NewSalidaRepository(db *gorm.DB) SalidaRepository { return &salidaRepo{db: db} }

func (r *salidaRepo) Create(ctx context.Context, s *model.Salida) error {
	return r.db.WithContext(ctx).Create(s).Error
}

func (r *salidaRepo) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Salida{}, id).Error
}

func (r *salidaRepo) ListDesc(ctx context.Context) ([]model.Salida, error) {
	var rows []model.Salida
	err := r.db.WithContext(ctx).Order("id DESC").Find(&rows).Error
	return rows, err
}

func (r *salidaRepo) ListAsc(ctx context.Context) ([]model.Salida, error) {
	var rows []model.Salida
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *salidaRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Salida{}).Count(&n).Error
	return n, err
}

func (r *salidaRepo) BulkInsert(ctx context.Context, rows []model.Salida) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}
