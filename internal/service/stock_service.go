package service

import (
	"context"
	"sort"

	"github.com/Cdo9608/sistema-consumibles/internal/catalog"
	"github.com/Cdo9608/sistema-consumibles/internal/dto"
	"github.com/Cdo9608/sistema-consumibles/internal/repository"

	"github.com/shopspring/decimal"
)

// StockService is the reconciliation engine: it derives current stock from
// the two append-only ledgers. Both variants read the ledgers fresh from the
// store on every call — there is no caching layer to go stale.
type StockService interface {
	// CalcularStock keys strictly by the product catalog, left-joining ledger
	// sums onto it: products with no movements still appear with zero sums.
	// An unavailable/empty catalog yields an empty result, not an error.
	CalcularStock(ctx context.Context) ([]dto.StockRow, error)
	// ResumenLedger keys by the union of product codes observed across both
	// ledgers, independent of the catalog, and labels each row agotado/bajo/
	// normal instead of computing catalog-relative variance.
	ResumenLedger(ctx context.Context) ([]dto.ResumenLedgerRow, error)
}

type stockService struct {
	cat      *catalog.Catalogo
	entradas repository.EntradaRepository
	salidas  repository.SalidaRepository
}

func NewStockService(cat *catalog.Catalogo, entradas repository.EntradaRepository, salidas repository.SalidaRepository) StockService {
	return &stockService{cat: cat, entradas: entradas, salidas: salidas}
}

var (
	cien       = decimal.NewFromInt(100)
	dos        = decimal.NewFromInt(2)
	umbralBajo = decimal.NewFromInt(10)
)

func (s *stockService) CalcularStock(ctx context.Context) ([]dto.StockRow, error) {
	if len(s.cat.Productos) == 0 {
		return []dto.StockRow{}, nil
	}

	sumEntradas, _, err := s.sumarEntradas(ctx)
	if err != nil {
		return nil, err
	}
	sumSalidas, _, err := s.sumarSalidas(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.StockRow, 0, len(s.cat.Productos))
	for _, p := range s.cat.Productos {
		entradas := sumEntradas[p.Codigo]
		salidas := sumSalidas[p.Codigo]
		actual := p.StockInicial.Add(entradas).Sub(salidas)
		variacion := actual.Sub(p.StockInicial)

		// Zero denominators normalize to 0 — never NaN/∞ in the output.
		variacionPct := decimal.Zero
		if !p.StockInicial.IsZero() {
			variacionPct = variacion.Div(p.StockInicial).Mul(cien).Round(2)
		}
		promedio := p.StockInicial.Add(actual).Div(dos)
		rotacion := decimal.Zero
		if !promedio.IsZero() {
			rotacion = salidas.Div(promedio).Round(2)
		}

		rows = append(rows, dto.StockRow{
			Codigo:        p.Codigo,
			Producto:      p.Nombre,
			UM:            p.UM,
			Sistema:       p.Sistema,
			StockInicial:  p.StockInicial,
			TotalEntradas: entradas,
			TotalSalidas:  salidas,
			StockActual:   actual,
			Variacion:     variacion,
			VariacionPct:  variacionPct,
			StockPromedio: promedio,
			Rotacion:      rotacion,
		})
	}
	return rows, nil
}

func (s *stockService) ResumenLedger(ctx context.Context) ([]dto.ResumenLedgerRow, error) {
	sumEntradas, nombres, err := s.sumarEntradas(ctx)
	if err != nil {
		return nil, err
	}
	sumSalidas, nombresSalidas, err := s.sumarSalidas(ctx)
	if err != nil {
		return nil, err
	}
	for codigo, nombre := range nombresSalidas {
		if _, ok := nombres[codigo]; !ok {
			nombres[codigo] = nombre
		}
	}

	codigos := make([]string, 0, len(sumEntradas)+len(sumSalidas))
	visto := make(map[string]bool, len(sumEntradas)+len(sumSalidas))
	for codigo := range sumEntradas {
		if !visto[codigo] {
			visto[codigo] = true
			codigos = append(codigos, codigo)
		}
	}
	for codigo := range sumSalidas {
		if !visto[codigo] {
			visto[codigo] = true
			codigos = append(codigos, codigo)
		}
	}
	sort.Strings(codigos)

	rows := make([]dto.ResumenLedgerRow, 0, len(codigos))
	for _, codigo := range codigos {
		entradas := sumEntradas[codigo]
		salidas := sumSalidas[codigo]
		actual := entradas.Sub(salidas)
		rows = append(rows, dto.ResumenLedgerRow{
			Codigo:        codigo,
			Producto:      nombres[codigo],
			TotalEntradas: entradas,
			TotalSalidas:  salidas,
			StockActual:   actual,
			Estado:        clasificarStock(actual),
		})
	}
	return rows, nil
}

// clasificarStock returns the three-tier status label for a stock level.
func clasificarStock(actual decimal.Decimal) string {
	switch {
	case actual.LessThanOrEqual(decimal.Zero):
		return dto.EstadoAgotado
	case actual.LessThanOrEqual(umbralBajo):
		return dto.EstadoBajo
	default:
		return dto.EstadoNormal
	}
}

// sumarEntradas aggregates entrada quantities per product code, also
// collecting the last product name seen per code for ledger-driven output.
func (s *stockService) sumarEntradas(ctx context.Context) (map[string]decimal.Decimal, map[string]string, error) {
	rows, err := s.entradas.ListAsc(ctx)
	if err != nil {
		return nil, nil, err
	}
	sums := make(map[string]decimal.Decimal, len(rows))
	nombres := make(map[string]string, len(rows))
	for _, r := range rows {
		sums[r.Codigo] = sums[r.Codigo].Add(r.Cantidad)
		if r.Producto != "" {
			nombres[r.Codigo] = r.Producto
		}
	}
	return sums, nombres, nil
}

func (s *stockService) sumarSalidas(ctx context.Context) (map[string]decimal.Decimal, map[string]string, error) {
	rows, err := s.salidas.ListAsc(ctx)
	if err != nil {
		return nil, nil, err
	}
	sums := make(map[string]decimal.Decimal, len(rows))
	nombres := make(map[string]string, len(rows))
	for _, r := range rows {
		sums[r.Codigo] = sums[r.Codigo].Add(r.Cantidad)
		if r.Producto != "" {
			nombres[r.Codigo] = r.Producto
		}
	}
	return sums, nombres, nil
}
