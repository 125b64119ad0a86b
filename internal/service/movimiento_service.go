package service

import (
	"context"

	"github.com/Cdo9608/sistema-consumibles/internal/catalog"
	"github.com/Cdo9608/sistema-consumibles/internal/dto"
	"github.com/Cdo9608/sistema-consumibles/internal/model"
	"github.com/Cdo9608/sistema-consumibles/internal/repository"
	"github.com/Cdo9608/sistema-consumibles/internal/timeutil"
)

// Sincronizador propagates a committed mutation to the secondary persistence
// layers. Implemented by persist.Sincronizador.
type Sincronizador interface {
	Sincronizar(ctx context.Context) []dto.PasoSync
}

// MovimientoService owns the two append-only ledgers. Rows are only ever
// inserted or deleted, never updated; every committed mutation triggers the
// persistence synchronization pipeline.
type MovimientoService interface {
	CrearEntrada(ctx context.Context, req dto.CrearEntradaRequest, usuario string) (*dto.MovimientoResponse, error)
	CrearSalida(ctx context.Context, req dto.CrearSalidaRequest, usuario string) (*dto.MovimientoResponse, error)
	EliminarEntrada(ctx context.Context, id uint) (*dto.MovimientoResponse, error)
	EliminarSalida(ctx context.Context, id uint) (*dto.MovimientoResponse, error)
	ListarEntradas(ctx context.Context) ([]model.Entrada, error)
	ListarSalidas(ctx context.Context) ([]model.Salida, error)
}

type movimientoService struct {
	cat      *catalog.Catalogo
	entradas repository.EntradaRepository
	salidas  repository.SalidaRepository
	sync     Sincronizador
}

func NewMovimientoService(cat *catalog.Catalogo, entradas repository.EntradaRepository, salidas repository.SalidaRepository, sync Sincronizador) MovimientoService {
	return &movimientoService{cat: cat, entradas: entradas, salidas: salidas, sync: sync}
}

func (s *movimientoService) CrearEntrada(ctx context.Context, req dto.CrearEntradaRequest, usuario string) (*dto.MovimientoResponse, error) {
	row := model.Entrada{
		OrdenCompra:          req.OrdenCompra,
		Fecha:                req.Fecha,
		Codigo:               req.Codigo,
		Producto:             req.Producto,
		Cantidad:             req.Cantidad,
		UM:                   req.UM,
		Sistema:              req.Sistema,
		AlmacenSalida:        req.AlmacenSalida,
		FechaEnvio:           req.FechaEnvio,
		ResponsableEnvio:     req.ResponsableEnvio,
		AlmacenRecepcion:     req.AlmacenRecepcion,
		FechaRecepcion:       req.FechaRecepcion,
		ResponsableRecepcion: req.ResponsableRecepcion,
		CreadoPor:            usuario,
		FechaCreacion:        timeutil.SelloLegible(timeutil.AhoraPeru()),
	}
	// Catalog values win over whatever the client typed when the code matches.
	if p, ok := s.cat.BuscarProducto(req.Codigo); ok {
		row.Codigo = p.Codigo
		row.Producto = p.Nombre
		row.UM = p.UM
		row.Sistema = p.Sistema
	}

	if err := s.entradas.Create(ctx, &row); err != nil {
		return nil, err
	}
	return s.respuesta(ctx, row.ID), nil
}

func (s *movimientoService) CrearSalida(ctx context.Context, req dto.CrearSalidaRequest, usuario string) (*dto.MovimientoResponse, error) {
	row := model.Salida{
		NroGuia:       req.NroGuia,
		NroTarea:      req.NroTarea,
		Fecha:         req.Fecha,
		Sitio:         req.Sitio,
		Codigo:        req.Codigo,
		Producto:      req.Producto,
		CodeIndra:     req.CodeIndra,
		Descripcion:   req.Descripcion,
		Cantidad:      req.Cantidad,
		UM:            req.UM,
		Sistema:       req.Sistema,
		CreadoPor:     usuario,
		FechaCreacion: timeutil.SelloLegible(timeutil.AhoraPeru()),
	}
	if sitio, ok := s.cat.BuscarSitio(req.Sitio); ok {
		row.CodSitio = sitio.Codigo
		row.Sitio = sitio.Nombre
		row.Departamento = sitio.Departamento
	}
	if p, ok := s.cat.BuscarProducto(req.Codigo); ok {
		row.Codigo = p.Codigo
		row.Producto = p.Nombre
		row.UM = p.UM
		row.Sistema = p.Sistema
	}

	if err := s.salidas.Create(ctx, &row); err != nil {
		return nil, err
	}
	return s.respuesta(ctx, row.ID), nil
}

func (s *movimientoService) EliminarEntrada(ctx context.Context, id uint) (*dto.MovimientoResponse, error) {
	if err := s.entradas.DeleteByID(ctx, id); err != nil {
		return nil, err
	}
	return s.respuesta(ctx, id), nil
}

func (s *movimientoService) EliminarSalida(ctx context.Context, id uint) (*dto.MovimientoResponse, error) {
	if err := s.salidas.DeleteByID(ctx, id); err != nil {
		return nil, err
	}
	return s.respuesta(ctx, id), nil
}

func (s *movimientoService) ListarEntradas(ctx context.Context) ([]model.Entrada, error) {
	return s.entradas.ListDesc(ctx)
}

func (s *movimientoService) ListarSalidas(ctx context.Context) ([]model.Salida, error) {
	return s.salidas.ListDesc(ctx)
}

// respuesta runs the sync pipeline for a committed mutation and folds the
// per-step outcomes into the response.
func (s *movimientoService) respuesta(ctx context.Context, id uint) *dto.MovimientoResponse {
	pasos := s.sync.Sincronizar(ctx)
	ok := true
	for _, p := range pasos {
		if !p.OK {
			ok = false
			break
		}
	}
	return &dto.MovimientoResponse{ID: id, Sincronizado: ok, Sincronizacion: pasos}
}
