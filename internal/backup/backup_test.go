package backup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func escenario(t *testing.T) (*Manager, string, string) {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "inventario.db")
	backupDir := filepath.Join(dir, "backups")
	require.NoError(t, os.WriteFile(dbPath, []byte("contenido-actual"), 0o644))
	return NewManager(dbPath, backupDir), dbPath, backupDir
}

func crearBackupFicticio(t *testing.T, dir, nombre, contenido string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, nombre), []byte(contenido), 0o644))
}

func TestCrear(t *testing.T) {
	mgr, _, backupDir := escenario(t)

	ruta, err := mgr.Crear(TipoManual)
	require.NoError(t, err)

	base := filepath.Base(ruta)
	assert.Regexp(t, `^inventario_manual_\d{8}_\d{6}\.db$`, base)

	contenido, err := os.ReadFile(filepath.Join(backupDir, base))
	require.NoError(t, err)
	assert.Equal(t, "contenido-actual", string(contenido))
}

func TestCrear_SinBaseDeDatos(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "no-existe.db"), t.TempDir())

	_, err := mgr.Crear(TipoManual)
	assert.Error(t, err)
}

func TestListar_OrdenYTipos(t *testing.T) {
	mgr, _, backupDir := escenario(t)
	crearBackupFicticio(t, backupDir, "inventario_manual_20260110_120000.db", "a")
	crearBackupFicticio(t, backupDir, "inventario_auto_20260112_080000.db", "bb")
	crearBackupFicticio(t, backupDir, "inventario_pre_restauracion_20260111_090000.db", "c")

	infos, err := mgr.Listar(false)
	require.NoError(t, err)
	require.Len(t, infos, 3)

	// Newest first, by the timestamp embedded in the name.
	assert.Equal(t, "inventario_auto_20260112_080000.db", infos[0].Nombre)
	assert.Equal(t, "auto", infos[0].Tipo)
	assert.Equal(t, "pre_restauracion", infos[1].Tipo)
	assert.Equal(t, "manual", infos[2].Tipo)
	assert.Equal(t, int64(2), infos[0].Tamano)
	// Not inspected — row counts unknown.
	assert.Equal(t, int64(-1), infos[0].Entradas)
}

func TestRestaurar_ConCopiaDeSeguridadPrevia(t *testing.T) {
	mgr, dbPath, backupDir := escenario(t)
	crearBackupFicticio(t, backupDir, "inventario_manual_20260110_120000.db", "contenido-backup")

	info, err := mgr.Restaurar(1)
	require.NoError(t, err)
	assert.Equal(t, "inventario_manual_20260110_120000.db", info.Nombre)

	contenido, err := os.ReadFile(dbPath)
	require.NoError(t, err)
	assert.Equal(t, "contenido-backup", string(contenido))

	// The previous live database survives as a pre_restauracion backup.
	previas, err := filepath.Glob(filepath.Join(backupDir, "inventario_pre_restauracion_*.db"))
	require.NoError(t, err)
	require.Len(t, previas, 1)
	salvado, err := os.ReadFile(previas[0])
	require.NoError(t, err)
	assert.Equal(t, "contenido-actual", string(salvado))
}

func TestRestaurar_NumeroInvalido(t *testing.T) {
	mgr, _, backupDir := escenario(t)
	crearBackupFicticio(t, backupDir, "inventario_manual_20260110_120000.db", "x")

	_, err := mgr.Restaurar(2)
	assert.Error(t, err)
	_, err = mgr.Restaurar(0)
	assert.Error(t, err)
}

func TestLimpiar_RespetaMinimo(t *testing.T) {
	mgr, _, backupDir := escenario(t)
	// All three are years old; the newest two must survive anyway.
	crearBackupFicticio(t, backupDir, "inventario_auto_20200101_000000.db", "1")
	crearBackupFicticio(t, backupDir, "inventario_auto_20200102_000000.db", "2")
	crearBackupFicticio(t, backupDir, "inventario_auto_20200103_000000.db", "3")

	removidos, err := mgr.Limpiar(30, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, removidos)

	infos, err := mgr.Listar(false)
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "inventario_auto_20200103_000000.db", infos[0].Nombre)
	assert.Equal(t, "inventario_auto_20200102_000000.db", infos[1].Nombre)
}

func TestLimpiar_NoBorraRecientes(t *testing.T) {
	mgr, _, _ := escenario(t)
	reciente, err := mgr.Crear(TipoAuto)
	require.NoError(t, err)

	removidos, err := mgr.Limpiar(30, 0)
	require.NoError(t, err)
	assert.Zero(t, removidos)
	_, err = os.Stat(reciente)
	assert.NoError(t, err)
}

func TestEstadisticas(t *testing.T) {
	mgr, _, backupDir := escenario(t)
	crearBackupFicticio(t, backupDir, "inventario_manual_20260110_120000.db", "aa")
	crearBackupFicticio(t, backupDir, "inventario_auto_20260112_080000.db", "bbb")

	stats, err := mgr.Estadisticas()
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, int64(5), stats.EspacioTotal)
	assert.Equal(t, 1, stats.PorTipo["manual"])
	assert.Equal(t, 1, stats.PorTipo["auto"])
	assert.Equal(t, "inventario_auto_20260112_080000.db", stats.MasReciente)
	assert.Equal(t, "inventario_manual_20260110_120000.db", stats.MasAntiguo)
}

func TestEstadisticas_DirectorioVacio(t *testing.T) {
	mgr := NewManager(filepath.Join(t.TempDir(), "db"), filepath.Join(t.TempDir(), "backups"))

	stats, err := mgr.Estadisticas()
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Empty(t, stats.MasReciente)
}
