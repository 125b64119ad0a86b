package service

import (
	"context"
	"io"
	"strings"

	"github.com/Cdo9608/sistema-consumibles/internal/dto"
	"github.com/Cdo9608/sistema-consumibles/internal/model"
	"github.com/Cdo9608/sistema-consumibles/internal/repository"
	"github.com/Cdo9608/sistema-consumibles/internal/timeutil"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"
)

// importUsuario marks rows appended through bulk import rather than capture.
const importUsuario = "Importado"

// ImportService bulk-appends ledger rows from a workbook with Entradas and
// Salidas sheets, the same layout the exporter writes. Either sheet may be
// absent. Rows without a product code or with a non-positive quantity are
// skipped, and one synchronization run follows the whole batch.
type ImportService interface {
	ImportarExcel(ctx context.Context, r io.Reader) (*dto.ImportResult, error)
}

type importService struct {
	entradas repository.EntradaRepository
	salidas  repository.SalidaRepository
	sync     Sincronizador
}

func NewImportService(entradas repository.EntradaRepository, salidas repository.SalidaRepository, sync Sincronizador) ImportService {
	return &importService{entradas: entradas, salidas: salidas, sync: sync}
}

func (s *importService) ImportarExcel(ctx context.Context, r io.Reader) (*dto.ImportResult, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res := &dto.ImportResult{}
	creacion := timeutil.SelloLegible(timeutil.AhoraPeru())

	if rows, err := hojaComoMapa(f, "Entradas"); err == nil {
		for _, row := range rows {
			cantidad, ok := cantidadValida(row["cantidad"])
			if !ok || row["codigo"] == "" {
				continue
			}
			e := model.Entrada{
				OrdenCompra:          row["orden_compra"],
				Fecha:                row["fecha"],
				Codigo:               row["codigo"],
				Producto:             row["producto"],
				Cantidad:             cantidad,
				UM:                   row["um"],
				Sistema:              row["sistema"],
				AlmacenSalida:        row["almacen_salida"],
				FechaEnvio:           row["fecha_envio"],
				ResponsableEnvio:     row["responsable_envio"],
				AlmacenRecepcion:     row["almacen_recepcion"],
				FechaRecepcion:       row["fecha_recepcion"],
				ResponsableRecepcion: row["responsable_recepcion"],
				CreadoPor:            importUsuario,
				FechaCreacion:        creacion,
			}
			if err := s.entradas.Create(ctx, &e); err != nil {
				return nil, err
			}
			res.EntradasImportadas++
		}
	}

	if rows, err := hojaComoMapa(f, "Salidas"); err == nil {
		for _, row := range rows {
			cantidad, ok := cantidadValida(row["cantidad"])
			if !ok || row["codigo"] == "" {
				continue
			}
			sal := model.Salida{
				NroGuia:       row["nro_guia"],
				NroTarea:      row["nro_tarea"],
				Fecha:         row["fecha"],
				CodSitio:      row["cod_sitio"],
				Sitio:         row["sitio"],
				Departamento:  row["departamento"],
				Codigo:        row["codigo"],
				Producto:      row["producto"],
				CodeIndra:     row["code_indra"],
				Descripcion:   row["descripcion"],
				Cantidad:      cantidad,
				UM:            row["um"],
				Sistema:       row["sistema"],
				CreadoPor:     importUsuario,
				FechaCreacion: creacion,
			}
			if err := s.salidas.Create(ctx, &sal); err != nil {
				return nil, err
			}
			res.SalidasImportadas++
		}
	}

	pasos := s.sync.Sincronizar(ctx)
	res.Sincronizacion = pasos
	res.Sincronizado = true
	for _, p := range pasos {
		if !p.OK {
			res.Sincronizado = false
			break
		}
	}
	return res, nil
}

// hojaComoMapa reads a sheet into one map per data row, keyed by the
// lower-cased header names of its first row.
func hojaComoMapa(f *excelize.File, sheet string) ([]map[string]string, error) {
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}
	header := rows[0]
	out := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		m := make(map[string]string, len(header))
		for i, h := range header {
			clave := strings.ToLower(strings.TrimSpace(h))
			if i < len(row) {
				m[clave] = strings.TrimSpace(row[i])
			} else {
				m[clave] = ""
			}
		}
		out = append(out, m)
	}
	return out, nil
}

func cantidadValida(s string) (decimal.Decimal, bool) {
	d, err := decimal.NewFromString(s)
	if err != nil || !d.GreaterThan(decimal.Zero) {
		return decimal.Zero, false
	}
	return d, true
}
