// Package export writes the periodic full tabular export: one xlsx workbook
// with an Entradas sheet, a Salidas sheet and a computed Stock sheet, named
// with a generation timestamp. Only the newest N exports are kept locally.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/Cdo9608/sistema-consumibles/internal/dto"
	"github.com/Cdo9608/sistema-consumibles/internal/model"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
)

const filePrefix = "consumibles_stock_"

var headerEntradas = []interface{}{
	"orden_compra", "fecha", "codigo", "producto", "cantidad", "um", "sistema",
	"almacen_salida", "fecha_envio", "responsable_envio",
	"almacen_recepcion", "fecha_recepcion", "responsable_recepcion",
}

var headerSalidas = []interface{}{
	"nro_guia", "nro_tarea", "fecha", "cod_sitio", "sitio", "departamento",
	"codigo", "producto", "code_indra", "descripcion", "cantidad", "um", "sistema",
}

var headerStock = []interface{}{
	"codigo", "producto", "um", "sistema", "stock_inicial", "total_entradas",
	"total_salidas", "stock_actual", "variacion_stock", "variacion_porcentaje",
	"stock_promedio", "rotacion_inventario",
}

// Exporter writes workbooks under a directory.
type Exporter struct {
	dir string
}

func NewExporter(dir string) *Exporter { return &Exporter{dir: dir} }

// Filename builds the export name for a timestamp string (YYYYMMDD_HHMMSS).
func Filename(timestamp string) string {
	return filePrefix + timestamp + ".xlsx"
}

// Generar writes the full export and returns its path. Internal columns
// (id, creado_por, fecha_creacion) are deliberately omitted — the export is
// the user-facing handoff format, not a store dump.
func (e *Exporter) Generar(entradas []model.Entrada, salidas []model.Salida, stock []dto.StockRow, timestamp string) (string, error) {
	if err := os.MkdirAll(e.dir, 0o755); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	f.SetSheetName("Sheet1", "Entradas")
	if _, err := f.NewSheet("Salidas"); err != nil {
		return "", err
	}
	if _, err := f.NewSheet("Stock"); err != nil {
		return "", err
	}

	if err := f.SetSheetRow("Entradas", "A1", &headerEntradas); err != nil {
		return "", err
	}
	for i, r := range entradas {
		row := []interface{}{
			r.OrdenCompra, r.Fecha, r.Codigo, r.Producto, r.Cantidad.InexactFloat64(),
			r.UM, r.Sistema, r.AlmacenSalida, r.FechaEnvio, r.ResponsableEnvio,
			r.AlmacenRecepcion, r.FechaRecepcion, r.ResponsableRecepcion,
		}
		if err := f.SetSheetRow("Entradas", fmt.Sprintf("A%d", i+2), &row); err != nil {
			return "", err
		}
	}

	if err := f.SetSheetRow("Salidas", "A1", &headerSalidas); err != nil {
		return "", err
	}
	for i, r := range salidas {
		row := []interface{}{
			r.NroGuia, r.NroTarea, r.Fecha, r.CodSitio, r.Sitio, r.Departamento,
			r.Codigo, r.Producto, r.CodeIndra, r.Descripcion,
			r.Cantidad.InexactFloat64(), r.UM, r.Sistema,
		}
		if err := f.SetSheetRow("Salidas", fmt.Sprintf("A%d", i+2), &row); err != nil {
			return "", err
		}
	}

	if err := f.SetSheetRow("Stock", "A1", &headerStock); err != nil {
		return "", err
	}
	for i, r := range stock {
		row := []interface{}{
			r.Codigo, r.Producto, r.UM, r.Sistema,
			r.StockInicial.InexactFloat64(), r.TotalEntradas.InexactFloat64(),
			r.TotalSalidas.InexactFloat64(), r.StockActual.InexactFloat64(),
			r.Variacion.InexactFloat64(), r.VariacionPct.InexactFloat64(),
			r.StockPromedio.InexactFloat64(), r.Rotacion.InexactFloat64(),
		}
		if err := f.SetSheetRow("Stock", fmt.Sprintf("A%d", i+2), &row); err != nil {
			return "", err
		}
	}

	path := filepath.Join(e.dir, Filename(timestamp))
	if err := f.SaveAs(path); err != nil {
		return "", err
	}
	return path, nil
}

// Prune deletes all but the newest keep exports. The generation timestamp is
// embedded in the filename, so lexicographic order is chronological order.
func (e *Exporter) Prune(keep int) (int, error) {
	matches, err := filepath.Glob(filepath.Join(e.dir, filePrefix+"*.xlsx"))
	if err != nil {
		return 0, err
	}
	if len(matches) <= keep {
		return 0, nil
	}

	sort.Sort(sort.Reverse(sort.StringSlice(matches)))
	removed := 0
	for _, path := range matches[keep:] {
		if err := os.Remove(path); err != nil {
			log.Warn().Err(err).Str("archivo", path).Msg("no se pudo eliminar export antiguo")
			continue
		}
		removed++
	}
	return removed, nil
}
