// Package snapshot maintains the secondary, human-readable copy of each
// ledger: one pretty-printed JSON file per ledger, fully rewritten on every
// synchronization. The snapshot is the disaster-recovery source when the
// relational store comes up empty (ephemeral filesystem reset).
package snapshot

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Cdo9608/sistema-consumibles/internal/model"
)

const (
	EntradasFile = "entradas.json"
	SalidasFile  = "salidas.json"
)

// Store reads and writes the snapshot files under a data directory.
type Store struct {
	dataDir string
}

func NewStore(dataDir string) *Store { return &Store{dataDir: dataDir} }

func (s *Store) EntradasPath() string { return filepath.Join(s.dataDir, EntradasFile) }
func (s *Store) SalidasPath() string  { return filepath.Join(s.dataDir, SalidasFile) }

// GuardarEntradas rewrites the entradas snapshot with the full ledger content.
func (s *Store) GuardarEntradas(rows []model.Entrada) error {
	return s.escribir(s.EntradasPath(), rows)
}

// GuardarSalidas rewrites the salidas snapshot with the full ledger content.
func (s *Store) GuardarSalidas(rows []model.Salida) error {
	return s.escribir(s.SalidasPath(), rows)
}

func (s *Store) escribir(path string, rows any) error {
	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// CargarEntradas reads the entradas snapshot. The second return value reports
// whether a snapshot file exists at all.
func (s *Store) CargarEntradas() ([]model.Entrada, bool, error) {
	var rows []model.Entrada
	ok, err := s.leer(s.EntradasPath(), &rows)
	return rows, ok, err
}

// CargarSalidas reads the salidas snapshot.
func (s *Store) CargarSalidas() ([]model.Salida, bool, error) {
	var rows []model.Salida
	ok, err := s.leer(s.SalidasPath(), &rows)
	return rows, ok, err
}

func (s *Store) leer(path string, dst any) (bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return true, err
	}
	if len(data) == 0 {
		return true, nil
	}
	return true, json.Unmarshal(data, dst)
}
