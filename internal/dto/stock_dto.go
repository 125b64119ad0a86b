package dto

import "github.com/shopspring/decimal"

// StockRow is one catalog-driven reconciliation row: every product of the
// catalog appears exactly once, with zero sums when it has no movements.
type StockRow struct {
	Codigo        string          `json:"codigo"`
	Producto      string          `json:"producto"`
	UM            string          `json:"um"`
	Sistema       string          `json:"sistema"`
	StockInicial  decimal.Decimal `json:"stock_inicial"`
	TotalEntradas decimal.Decimal `json:"total_entradas"`
	TotalSalidas  decimal.Decimal `json:"total_salidas"`
	StockActual   decimal.Decimal `json:"stock_actual"`
	Variacion     decimal.Decimal `json:"variacion_stock"`
	VariacionPct  decimal.Decimal `json:"variacion_porcentaje"`
	StockPromedio decimal.Decimal `json:"stock_promedio"`
	Rotacion      decimal.Decimal `json:"rotacion_inventario"`
}

// Estado labels for the ledger-driven summary.
const (
	EstadoAgotado = "agotado"
	EstadoBajo    = "bajo"
	EstadoNormal  = "normal"
)

// ResumenLedgerRow is one ledger-driven reconciliation row, keyed by the union
// of product codes observed across both ledgers regardless of the catalog.
type ResumenLedgerRow struct {
	Codigo        string          `json:"codigo"`
	Producto      string          `json:"producto"`
	TotalEntradas decimal.Decimal `json:"total_entradas"`
	TotalSalidas  decimal.Decimal `json:"total_salidas"`
	StockActual   decimal.Decimal `json:"stock_actual"`
	Estado        string          `json:"estado"`
}

// ResumenGeneral are the dashboard grand totals.
type ResumenGeneral struct {
	StockInicialTotal decimal.Decimal `json:"stock_inicial_total"`
	TotalEntradas     decimal.Decimal `json:"total_entradas"`
	TotalSalidas      decimal.Decimal `json:"total_salidas"`
	StockActualTotal  decimal.Decimal `json:"stock_actual_total"`
	Variacion         decimal.Decimal `json:"variacion"`
	Productos         int             `json:"productos"`
}

// DistribucionSistema aggregates current stock per sistema tag (pie chart data).
type DistribucionSistema struct {
	Sistema     string          `json:"sistema"`
	StockActual decimal.Decimal `json:"stock_actual"`
}
