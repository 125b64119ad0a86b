package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/Cdo9608/sistema-consumibles/internal/infra"
	"github.com/Cdo9608/sistema-consumibles/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func abrirDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := infra.NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return db
}

func TestEntradaRepo_CRUD(t *testing.T) {
	repo := NewEntradaRepository(abrirDB(t))
	ctx := context.Background()

	e := &model.Entrada{
		OrdenCompra: "OC-1",
		Fecha:       "10/01/2026",
		Codigo:      "CON-001",
		Producto:    "Cable UTP Cat6",
		Cantidad:    decimal.RequireFromString("12.5"),
	}
	require.NoError(t, repo.Create(ctx, e))
	assert.NotZero(t, e.ID)

	require.NoError(t, repo.Create(ctx, &model.Entrada{
		OrdenCompra: "OC-2", Codigo: "CON-002", Cantidad: decimal.NewFromInt(3),
	}))

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	desc, err := repo.ListDesc(ctx)
	require.NoError(t, err)
	assert.Equal(t, "OC-2", desc[0].OrdenCompra)

	asc, err := repo.ListAsc(ctx)
	require.NoError(t, err)
	assert.Equal(t, "OC-1", asc[0].OrdenCompra)
	assert.Equal(t, "12.5", asc[0].Cantidad.String())

	require.NoError(t, repo.DeleteByID(ctx, e.ID))
	n, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestEntradaRepo_DeleteInexistenteEsNoOp(t *testing.T) {
	repo := NewEntradaRepository(abrirDB(t))
	assert.NoError(t, repo.DeleteByID(context.Background(), 9999))
}

func TestEntradaRepo_BulkInsertPreservaIDs(t *testing.T) {
	repo := NewEntradaRepository(abrirDB(t))
	ctx := context.Background()

	require.NoError(t, repo.BulkInsert(ctx, []model.Entrada{
		{ID: 5, OrdenCompra: "OC-5", Codigo: "CON-001", Cantidad: decimal.NewFromInt(1)},
		{ID: 9, OrdenCompra: "OC-9", Codigo: "CON-001", Cantidad: decimal.NewFromInt(2)},
	}))

	rows, err := repo.ListAsc(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, uint(5), rows[0].ID)
	assert.Equal(t, uint(9), rows[1].ID)
}

func TestSalidaRepo_CRUD(t *testing.T) {
	repo := NewSalidaRepository(abrirDB(t))
	ctx := context.Background()

	s := &model.Salida{
		NroGuia:  "G-1",
		CodSitio: "POP-01",
		Sitio:    "Site Lima Norte",
		Codigo:   "CON-001",
		Cantidad: decimal.NewFromInt(4),
	}
	require.NoError(t, repo.Create(ctx, s))
	assert.NotZero(t, s.ID)

	rows, err := repo.ListDesc(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "POP-01", rows[0].CodSitio)

	require.NoError(t, repo.DeleteByID(ctx, s.ID))
	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}
