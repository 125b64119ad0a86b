package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Cdo9608/sistema-consumibles/internal/dto"
	"github.com/Cdo9608/sistema-consumibles/internal/model"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGenerar_TresHojas(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(dir)

	path, err := e.Generar(
		[]model.Entrada{{OrdenCompra: "OC-1", Codigo: "CON-001", Producto: "Cable", Cantidad: decimal.NewFromInt(10)}},
		[]model.Salida{{NroGuia: "G-1", Codigo: "CON-001", Cantidad: decimal.RequireFromString("2.5")}},
		[]dto.StockRow{{Codigo: "CON-001", Producto: "Cable", StockActual: decimal.NewFromInt(7)}},
		"20260115_093000",
	)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "consumibles_stock_20260115_093000.xlsx"), path)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.ElementsMatch(t, []string{"Entradas", "Salidas", "Stock"}, f.GetSheetList())

	rows, err := f.GetRows("Entradas")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "orden_compra", rows[0][0])
	assert.Equal(t, "OC-1", rows[1][0])
	assert.Equal(t, "10", rows[1][4])

	rows, err = f.GetRows("Salidas")
	require.NoError(t, err)
	assert.Equal(t, "2.5", rows[1][10])

	rows, err = f.GetRows("Stock")
	require.NoError(t, err)
	assert.Equal(t, "CON-001", rows[1][0])
}

func TestGenerar_SinFilas(t *testing.T) {
	e := NewExporter(t.TempDir())

	path, err := e.Generar(nil, nil, nil, "20260101_000000")
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Entradas")
	require.NoError(t, err)
	assert.Len(t, rows, 1, "solo la fila de encabezados")
}

func TestPrune_ConservaLosMasRecientes(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(dir)

	nombres := []string{
		"consumibles_stock_20260101_000000.xlsx",
		"consumibles_stock_20260102_000000.xlsx",
		"consumibles_stock_20260103_000000.xlsx",
		"consumibles_stock_20260104_000000.xlsx",
	}
	for _, n := range nombres {
		require.NoError(t, os.WriteFile(filepath.Join(dir, n), []byte("x"), 0o644))
	}

	removed, err := e.Prune(2)
	require.NoError(t, err)
	assert.Equal(t, 2, removed)

	restantes, err := filepath.Glob(filepath.Join(dir, "*.xlsx"))
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join(dir, nombres[2]),
		filepath.Join(dir, nombres[3]),
	}, restantes)
}

func TestPrune_MenosQueElLimite(t *testing.T) {
	dir := t.TempDir()
	e := NewExporter(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "consumibles_stock_20260101_000000.xlsx"), []byte("x"), 0o644))

	removed, err := e.Prune(5)
	require.NoError(t, err)
	assert.Zero(t, removed)
}
