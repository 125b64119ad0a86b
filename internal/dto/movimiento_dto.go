package dto

import "github.com/shopspring/decimal"

// CrearEntradaRequest carries a new inbound movement. Producto/UM/Sistema are
// optional: when Codigo resolves against the catalog the catalog values win,
// mirroring the auto-filled form fields of the original capture flow.
type CrearEntradaRequest struct {
	OrdenCompra string          `json:"orden_compra" validate:"required"`
	Fecha       string          `json:"fecha" validate:"required"`
	Codigo      string          `json:"codigo" validate:"required"`
	Producto    string          `json:"producto"`
	Cantidad    decimal.Decimal `json:"cantidad" validate:"required,gt=0"`
	UM          string          `json:"um"`
	Sistema     string          `json:"sistema"`

	// Provenance
	AlmacenSalida        string `json:"almacen_salida"`
	FechaEnvio           string `json:"fecha_envio"`
	ResponsableEnvio     string `json:"responsable_envio"`
	AlmacenRecepcion     string `json:"almacen_recepcion"`
	FechaRecepcion       string `json:"fecha_recepcion"`
	ResponsableRecepcion string `json:"responsable_recepcion"`
}

// CrearSalidaRequest carries a new outbound movement tied to a destination
// site. Sitio accepts either the site code or its name.
type CrearSalidaRequest struct {
	NroGuia     string          `json:"nro_guia" validate:"required"`
	NroTarea    string          `json:"nro_tarea"`
	Fecha       string          `json:"fecha" validate:"required"`
	Sitio       string          `json:"sitio" validate:"required"`
	Codigo      string          `json:"codigo" validate:"required"`
	Producto    string          `json:"producto"`
	CodeIndra   string          `json:"code_indra"`
	Descripcion string          `json:"descripcion"`
	Cantidad    decimal.Decimal `json:"cantidad" validate:"required,gt=0"`
	UM          string          `json:"um"`
	Sistema     string          `json:"sistema"`
}

// MovimientoResponse reports the outcome of an insert or delete together with
// the persistence-synchronization result for that mutation.
type MovimientoResponse struct {
	ID             uint       `json:"id,omitempty"`
	Sincronizado   bool       `json:"sincronizado"`
	Sincronizacion []PasoSync `json:"sincronizacion,omitempty"`
}

// PasoSync is one step of the synchronization pipeline (snapshot write,
// remote push, export) with its individual outcome.
type PasoSync struct {
	Paso  string `json:"paso"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// ImportResult reports a bulk xlsx import: rows appended per ledger and the
// single synchronization run that followed.
type ImportResult struct {
	EntradasImportadas int        `json:"entradas_importadas"`
	SalidasImportadas  int        `json:"salidas_importadas"`
	Sincronizado       bool       `json:"sincronizado"`
	Sincronizacion     []PasoSync `json:"sincronizacion,omitempty"`
}
