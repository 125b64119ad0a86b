package repository

import (
	"context"

	"github.com/Cdo9608/sistema-consumibles/internal/model"

	"gorm.io/gorm"
)

// EntradaRepository defines the data access contract for the entradas ledger.
// Services depend on this interface, not on the concrete GORM implementation,
// enabling clean unit testing via stubs.
type EntradaRepository interface {
	Create(ctx context.Context, e *model.Entrada) error
	// DeleteByID removes the row with that id; deleting an absent id is a no-op.
	DeleteByID(ctx context.Context, id uint) error
	// ListDesc returns all rows newest-first (ledger listings).
	ListDesc(ctx context.Context) ([]model.Entrada, error)
	// ListAsc returns all rows oldest-first (time-series / snapshot order).
	ListAsc(ctx context.Context) ([]model.Entrada, error)
	Count(ctx context.Context) (int64, error)
	// BulkInsert appends rows preserving their ids — used only by the
	// snapshot restore path on an empty table.
	BulkInsert(ctx context.Context, rows []model.Entrada) error
}

type entradaRepo struct{ db *gorm.DB }

func NewEntradaRepository(db *gorm.DB) EntradaRepository { return &entradaRepo{db: db} }

func (r *entradaRepo) Create(ctx context.Context, e *model.Entrada) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *entradaRepo) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Entrada{}, id).Error
}

func (r *entradaRepo) ListDesc(ctx context.Context) ([]model.Entrada, error) {
	var rows []model.Entrada
	err := r.db.WithContext(ctx).Order("id DESC").Find(&rows).Error
	return rows, err
}

func (r *entradaRepo) ListAsc(ctx context.Context) ([]model.Entrada, error) {
	var rows []model.Entrada
	err := r.db.WithContext(ctx).Order("id ASC").Find(&rows).Error
	return rows, err
}

func (r *entradaRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.Entrada{}).Count(&n).Error
	return n, err
}

func (r *entradaRepo) BulkInsert(ctx context.Context, rows []model.Entrada) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}
