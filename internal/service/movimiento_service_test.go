package service

import (
	"context"
	"testing"

	"github.com/Cdo9608/sistema-consumibles/internal/dto"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrearEntrada_ResuelveCatalogo(t *testing.T) {
	entradas := &stubEntradaRepo{}
	sync := &stubSync{pasos: []dto.PasoSync{{Paso: "snapshot_entradas", OK: true}}}
	svc := NewMovimientoService(catalogoDePrueba(), entradas, &stubSalidaRepo{}, sync)

	resp, err := svc.CrearEntrada(context.Background(), dto.CrearEntradaRequest{
		OrdenCompra: "OC-100",
		Fecha:       "15/01/2026",
		Codigo:      "con-001", // case-insensitive lookup
		Producto:    "nombre tipeado a mano",
		Cantidad:    decimal.NewFromInt(25),
	}, "Usuario")

	require.NoError(t, err)
	assert.Equal(t, uint(1), resp.ID)
	assert.True(t, resp.Sincronizado)
	assert.Equal(t, 1, sync.llamadas)

	row := entradas.rows[0]
	// Catalog values win over the typed ones.
	assert.Equal(t, "CON-001", row.Codigo)
	assert.Equal(t, "Cable UTP Cat6", row.Producto)
	assert.Equal(t, "MTS", row.UM)
	assert.Equal(t, "CCTV", row.Sistema)
	assert.Equal(t, "Usuario", row.CreadoPor)
	assert.NotEmpty(t, row.FechaCreacion)
}

func TestCrearEntrada_CodigoFueraDeCatalogo(t *testing.T) {
	entradas := &stubEntradaRepo{}
	svc := NewMovimientoService(catalogoDePrueba(), entradas, &stubSalidaRepo{}, &stubSync{})

	_, err := svc.CrearEntrada(context.Background(), dto.CrearEntradaRequest{
		OrdenCompra: "OC-101",
		Fecha:       "16/01/2026",
		Codigo:      "NUEVO-999",
		Producto:    "Producto nuevo",
		Cantidad:    decimal.NewFromInt(5),
		UM:          "UND",
	}, "Usuario")

	require.NoError(t, err)
	// The row keeps exactly what the client sent.
	assert.Equal(t, "NUEVO-999", entradas.rows[0].Codigo)
	assert.Equal(t, "Producto nuevo", entradas.rows[0].Producto)
	assert.Equal(t, "UND", entradas.rows[0].UM)
}

func TestCrearSalida_ResuelveSitioPorNombre(t *testing.T) {
	salidas := &stubSalidaRepo{}
	svc := NewMovimientoService(catalogoDePrueba(), &stubEntradaRepo{}, salidas, &stubSync{})

	_, err := svc.CrearSalida(context.Background(), dto.CrearSalidaRequest{
		NroGuia:  "G-001",
		Fecha:    "17/01/2026",
		Sitio:    "site lima norte",
		Codigo:   "CON-002",
		Cantidad: decimal.NewFromInt(4),
	}, "Usuario")

	require.NoError(t, err)
	row := salidas.rows[0]
	assert.Equal(t, "POP-01", row.CodSitio)
	assert.Equal(t, "Site Lima Norte", row.Sitio)
	assert.Equal(t, "Lima", row.Departamento)
	assert.Equal(t, "Conector RJ45", row.Producto)
}

func TestEliminarEntrada_Existente(t *testing.T) {
	entradas := &stubEntradaRepo{}
	sync := &stubSync{}
	svc := NewMovimientoService(catalogoDePrueba(), entradas, &stubSalidaRepo{}, sync)

	_, err := svc.CrearEntrada(context.Background(), dto.CrearEntradaRequest{
		OrdenCompra: "OC-1", Fecha: "01/01/2026", Codigo: "CON-001",
		Cantidad: decimal.NewFromInt(1),
	}, "Usuario")
	require.NoError(t, err)

	_, err = svc.EliminarEntrada(context.Background(), 1)
	require.NoError(t, err)
	assert.Empty(t, entradas.rows)
	assert.Equal(t, 2, sync.llamadas, "creacion y borrado sincronizan por separado")
}

func TestEliminarSalida_IDInexistenteEsNoOp(t *testing.T) {
	svc := NewMovimientoService(catalogoDePrueba(), &stubEntradaRepo{}, &stubSalidaRepo{}, &stubSync{})

	resp, err := svc.EliminarSalida(context.Background(), 999)
	require.NoError(t, err)
	assert.True(t, resp.Sincronizado)
}

func TestMovimiento_ReportaPasosFallidos(t *testing.T) {
	sync := &stubSync{pasos: []dto.PasoSync{
		{Paso: "snapshot_entradas", OK: true},
		{Paso: "github_entradas", OK: false, Error: "401 Unauthorized"},
	}}
	svc := NewMovimientoService(catalogoDePrueba(), &stubEntradaRepo{}, &stubSalidaRepo{}, sync)

	resp, err := svc.CrearEntrada(context.Background(), dto.CrearEntradaRequest{
		OrdenCompra: "OC-1", Fecha: "01/01/2026", Codigo: "CON-001",
		Cantidad: decimal.NewFromInt(1),
	}, "Usuario")

	require.NoError(t, err, "el fallo remoto no revierte la escritura")
	assert.False(t, resp.Sincronizado)
	require.Len(t, resp.Sincronizacion, 2)
	assert.Equal(t, "401 Unauthorized", resp.Sincronizacion[1].Error)
}

func TestListarEntradas_OrdenDescendente(t *testing.T) {
	entradas := &stubEntradaRepo{}
	svc := NewMovimientoService(catalogoDePrueba(), entradas, &stubSalidaRepo{}, &stubSync{})

	for _, oc := range []string{"OC-1", "OC-2", "OC-3"} {
		_, err := svc.CrearEntrada(context.Background(), dto.CrearEntradaRequest{
			OrdenCompra: oc, Fecha: "01/01/2026", Codigo: "CON-001",
			Cantidad: decimal.NewFromInt(1),
		}, "Usuario")
		require.NoError(t, err)
	}

	rows, err := svc.ListarEntradas(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "OC-3", rows[0].OrdenCompra)
	assert.Equal(t, "OC-1", rows[2].OrdenCompra)
}
