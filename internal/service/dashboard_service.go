package service

import (
	"context"
	"sort"

	"github.com/Cdo9608/sistema-consumibles/internal/dto"

	"github.com/shopspring/decimal"
)

// umbralCritico is the stock level under which a product shows up in the
// critical-stock panel.
var umbralCritico = decimal.NewFromInt(100)

// DashboardService serves the aggregated views the dashboard charts are built
// from. Every method recomputes from the catalog-driven reconciliation, so the
// numbers always agree with /v1/stock.
type DashboardService interface {
	Resumen(ctx context.Context) (dto.ResumenGeneral, error)
	TopStock(ctx context.Context, n int) ([]dto.StockRow, error)
	TopSalidas(ctx context.Context, n int) ([]dto.StockRow, error)
	TopRotacion(ctx context.Context, n int) ([]dto.StockRow, error)
	StockCritico(ctx context.Context) ([]dto.StockRow, error)
	PorSistema(ctx context.Context) ([]dto.DistribucionSistema, error)
}

type dashboardService struct {
	stock StockService
}

func NewDashboardService(stock StockService) DashboardService {
	return &dashboardService{stock: stock}
}

func (s *dashboardService) Resumen(ctx context.Context) (dto.ResumenGeneral, error) {
	rows, err := s.stock.CalcularStock(ctx)
	if err != nil {
		return dto.ResumenGeneral{}, err
	}
	out := dto.ResumenGeneral{Productos: len(rows)}
	for _, r := range rows {
		out.StockInicialTotal = out.StockInicialTotal.Add(r.StockInicial)
		out.TotalEntradas = out.TotalEntradas.Add(r.TotalEntradas)
		out.TotalSalidas = out.TotalSalidas.Add(r.TotalSalidas)
		out.StockActualTotal = out.StockActualTotal.Add(r.StockActual)
	}
	out.Variacion = out.StockActualTotal.Sub(out.StockInicialTotal)
	return out, nil
}

func (s *dashboardService) TopStock(ctx context.Context, n int) ([]dto.StockRow, error) {
	return s.top(ctx, n, func(a, b dto.StockRow) bool {
		return a.StockActual.GreaterThan(b.StockActual)
	})
}

func (s *dashboardService) TopSalidas(ctx context.Context, n int) ([]dto.StockRow, error) {
	return s.top(ctx, n, func(a, b dto.StockRow) bool {
		return a.TotalSalidas.GreaterThan(b.TotalSalidas)
	})
}

func (s *dashboardService) TopRotacion(ctx context.Context, n int) ([]dto.StockRow, error) {
	return s.top(ctx, n, func(a, b dto.StockRow) bool {
		return a.Rotacion.GreaterThan(b.Rotacion)
	})
}

func (s *dashboardService) StockCritico(ctx context.Context) ([]dto.StockRow, error) {
	rows, err := s.stock.CalcularStock(ctx)
	if err != nil {
		return nil, err
	}
	criticos := make([]dto.StockRow, 0)
	for _, r := range rows {
		if r.StockActual.LessThan(umbralCritico) {
			criticos = append(criticos, r)
		}
	}
	sort.SliceStable(criticos, func(i, j int) bool {
		return criticos[i].StockActual.LessThan(criticos[j].StockActual)
	})
	return criticos, nil
}

func (s *dashboardService) PorSistema(ctx context.Context) ([]dto.DistribucionSistema, error) {
	rows, err := s.stock.CalcularStock(ctx)
	if err != nil {
		return nil, err
	}
	sums := make(map[string]decimal.Decimal)
	for _, r := range rows {
		sistema := r.Sistema
		if sistema == "" {
			sistema = "SIN SISTEMA"
		}
		sums[sistema] = sums[sistema].Add(r.StockActual)
	}
	out := make([]dto.DistribucionSistema, 0, len(sums))
	for sistema, total := range sums {
		out = append(out, dto.DistribucionSistema{Sistema: sistema, StockActual: total})
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].StockActual.GreaterThan(out[j].StockActual)
	})
	return out, nil
}

func (s *dashboardService) top(ctx context.Context, n int, less func(a, b dto.StockRow) bool) ([]dto.StockRow, error) {
	rows, err := s.stock.CalcularStock(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(rows, func(i, j int) bool { return less(rows[i], rows[j]) })
	if n > 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows, nil
}
