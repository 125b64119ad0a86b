// Package backup manages timestamped copies of the SQLite database file:
// creation, listing, restoration with a pre-restore safety copy, and age-based
// pruning with a minimum-retention floor.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/Cdo9608/sistema-consumibles/internal/timeutil"

	"github.com/glebarez/sqlite"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Backup kinds embedded in the file name.
const (
	TipoManual          = "manual"
	TipoAuto            = "auto"
	TipoPreRestauracion = "pre_restauracion"
)

const (
	filePrefix = "inventario_"
	fileSuffix = ".db"
)

// Info describes one backup on disk, newest first in listings.
type Info struct {
	Nombre     string    `json:"nombre"`
	Ruta       string    `json:"ruta"`
	Tipo       string    `json:"tipo"`
	Tamano     int64     `json:"tamano_bytes"`
	Creado     time.Time `json:"creado"`
	Antiguedad int       `json:"antiguedad_dias"`
	// Row counts are filled only when the listing is asked to inspect each
	// file; -1 means not inspected or unreadable.
	Entradas int64 `json:"entradas"`
	Salidas  int64 `json:"salidas"`
}

// Estadisticas summarizes the backup directory.
type Estadisticas struct {
	Total        int            `json:"total"`
	EspacioTotal int64          `json:"espacio_total_bytes"`
	MasAntiguo   string         `json:"mas_antiguo,omitempty"`
	MasReciente  string         `json:"mas_reciente,omitempty"`
	PorTipo      map[string]int `json:"por_tipo"`
}

// Manager operates on the live database file and a backup directory.
type Manager struct {
	dbPath string
	dir    string
}

func NewManager(dbPath, dir string) *Manager {
	return &Manager{dbPath: dbPath, dir: dir}
}

// Crear copies the live database into the backup directory. The file name
// carries the kind and a Peru-time stamp: inventario_<tipo>_<ts>.db.
func (m *Manager) Crear(tipo string) (string, error) {
	if _, err := os.Stat(m.dbPath); err != nil {
		return "", fmt.Errorf("base de datos no encontrada: %w", err)
	}
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return "", err
	}
	nombre := filePrefix + tipo + "_" + timeutil.SelloArchivo(timeutil.AhoraPeru()) + fileSuffix
	destino := filepath.Join(m.dir, nombre)
	if err := copiarArchivo(m.dbPath, destino); err != nil {
		return "", err
	}
	log.Info().Str("backup", nombre).Msg("backup created")
	return destino, nil
}

// Listar returns all backups newest-first. With inspeccionar, each file is
// opened read-only to count ledger rows.
func (m *Manager) Listar(inspeccionar bool) ([]Info, error) {
	paths, err := filepath.Glob(filepath.Join(m.dir, filePrefix+"*"+fileSuffix))
	if err != nil {
		return nil, err
	}
	ahora := timeutil.AhoraPeru()
	infos := make([]Info, 0, len(paths))
	for _, p := range paths {
		st, err := os.Stat(p)
		if err != nil {
			continue
		}
		info := Info{
			Nombre:   filepath.Base(p),
			Ruta:     p,
			Tipo:     tipoDeNombre(filepath.Base(p)),
			Tamano:   st.Size(),
			Creado:   st.ModTime(),
			Entradas: -1,
			Salidas:  -1,
		}
		if ts, ok := fechaDeNombre(info.Nombre); ok {
			info.Creado = ts
		}
		info.Antiguedad = int(ahora.Sub(info.Creado).Hours() / 24)
		if inspeccionar {
			info.Entradas, info.Salidas = contarFilas(p)
		}
		infos = append(infos, info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Creado.After(infos[j].Creado) })
	return infos, nil
}

// Restaurar replaces the live database with backup number n on the
// newest-first listing (1-based). A safety copy of the current database is
// taken first; if that copy fails the restore is aborted.
func (m *Manager) Restaurar(n int) (Info, error) {
	infos, err := m.Listar(false)
	if err != nil {
		return Info{}, err
	}
	if n < 1 || n > len(infos) {
		return Info{}, fmt.Errorf("backup %d no existe: hay %d disponibles", n, len(infos))
	}
	elegido := infos[n-1]

	if _, err := os.Stat(m.dbPath); err == nil {
		if _, err := m.Crear(TipoPreRestauracion); err != nil {
			return Info{}, fmt.Errorf("copia de seguridad previa fallo, restauracion abortada: %w", err)
		}
	}

	if err := copiarArchivo(elegido.Ruta, m.dbPath); err != nil {
		return Info{}, err
	}
	log.Info().Str("backup", elegido.Nombre).Msg("database restored")
	return elegido, nil
}

// Limpiar deletes backups older than dias days but always keeps the newest
// mantenerMinimo regardless of age. Returns the number removed.
func (m *Manager) Limpiar(dias, mantenerMinimo int) (int, error) {
	infos, err := m.Listar(false)
	if err != nil {
		return 0, err
	}
	removidos := 0
	for i, info := range infos {
		if i < mantenerMinimo {
			continue
		}
		if info.Antiguedad <= dias {
			continue
		}
		if err := os.Remove(info.Ruta); err != nil {
			log.Warn().Err(err).Str("backup", info.Nombre).Msg("could not remove backup")
			continue
		}
		removidos++
	}
	if removidos > 0 {
		log.Info().Int("removed", removidos).Msg("old backups pruned")
	}
	return removidos, nil
}

// Estadisticas aggregates counts, total size, and oldest/newest names.
func (m *Manager) Estadisticas() (Estadisticas, error) {
	infos, err := m.Listar(false)
	if err != nil {
		return Estadisticas{}, err
	}
	stats := Estadisticas{Total: len(infos), PorTipo: map[string]int{}}
	for _, info := range infos {
		stats.EspacioTotal += info.Tamano
		stats.PorTipo[info.Tipo]++
	}
	if len(infos) > 0 {
		stats.MasReciente = infos[0].Nombre
		stats.MasAntiguo = infos[len(infos)-1].Nombre
	}
	return stats, nil
}

func copiarArchivo(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// tipoDeNombre extracts the kind from inventario_<tipo>_<YYYYMMDD_HHMMSS>.db.
func tipoDeNombre(nombre string) string {
	cuerpo := strings.TrimSuffix(strings.TrimPrefix(nombre, filePrefix), fileSuffix)
	partes := strings.Split(cuerpo, "_")
	if len(partes) < 3 {
		return "desconocido"
	}
	// The last two parts are the date and time stamp.
	return strings.Join(partes[:len(partes)-2], "_")
}

func fechaDeNombre(nombre string) (time.Time, bool) {
	cuerpo := strings.TrimSuffix(strings.TrimPrefix(nombre, filePrefix), fileSuffix)
	partes := strings.Split(cuerpo, "_")
	if len(partes) < 3 {
		return time.Time{}, false
	}
	sello := partes[len(partes)-2] + "_" + partes[len(partes)-1]
	ts, err := time.ParseInLocation("20060102_150405", sello, time.FixedZone("America/Lima", -5*60*60))
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// contarFilas opens a backup file read-only and counts the ledger rows.
// Unreadable files or missing tables report -1.
func contarFilas(path string) (entradas, salidas int64) {
	entradas, salidas = -1, -1
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		return
	}
	defer sqlDB.Close()

	var n int64
	if err := db.Raw("SELECT COUNT(*) FROM entradas").Scan(&n).Error; err == nil {
		entradas = n
	}
	if err := db.Raw("SELECT COUNT(*) FROM salidas").Scan(&n).Error; err == nil {
		salidas = n
	}
	return
}
