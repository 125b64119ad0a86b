// Package persist implements the persistence synchronization pipeline that
// runs after every ledger mutation: JSON snapshots to disk, archival pushes to
// the remote repository, and a periodic xlsx export with retention.
package persist

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/Cdo9608/sistema-consumibles/internal/dto"
	"github.com/Cdo9608/sistema-consumibles/internal/export"
	"github.com/Cdo9608/sistema-consumibles/internal/infra"
	"github.com/Cdo9608/sistema-consumibles/internal/repository"
	"github.com/Cdo9608/sistema-consumibles/internal/snapshot"
	"github.com/Cdo9608/sistema-consumibles/internal/timeutil"

	"github.com/rs/zerolog/log"
)

// Step names reported in sync results.
const (
	PasoSnapshotEntradas = "snapshot_entradas"
	PasoSnapshotSalidas  = "snapshot_salidas"
	PasoRemotoEntradas   = "github_entradas"
	PasoRemotoSalidas    = "github_salidas"
	PasoExportExcel      = "export_excel"
	PasoRemotoExcel      = "github_excel"
	PasoLimpiezaExports  = "limpieza_exports"
)

// CalculadoraStock supplies the reconciled stock sheet for exports.
type CalculadoraStock interface {
	CalcularStock(ctx context.Context) ([]dto.StockRow, error)
}

// Sincronizador fans each mutation out to every persistence layer. Steps are
// best-effort and independent: a failed remote push never rolls back the
// database write, it only shows up as a failed step in the result.
type Sincronizador struct {
	store    *snapshot.Store
	entradas repository.EntradaRepository
	salidas  repository.SalidaRepository
	exporter *export.Exporter
	remoto   infra.ArchivoRemoto // nil disables remote pushes
	stock    CalculadoraStock

	exportEvery int
	exportKeep  int

	mu         sync.Mutex
	mutaciones int
}

func NewSincronizador(store *snapshot.Store, entradas repository.EntradaRepository, salidas repository.SalidaRepository,
	exporter *export.Exporter, remoto infra.ArchivoRemoto, stock CalculadoraStock, exportEvery, exportKeep int) *Sincronizador {
	return &Sincronizador{
		store:       store,
		entradas:    entradas,
		salidas:     salidas,
		exporter:    exporter,
		remoto:      remoto,
		stock:       stock,
		exportEvery: exportEvery,
		exportKeep:  exportKeep,
	}
}

// Sincronizar persists the current ledger state across every layer and
// reports the per-step outcome. Mutations are counted here; every exportEvery
// calls an xlsx export is generated and archived on top of the snapshots.
func (s *Sincronizador) Sincronizar(ctx context.Context) []dto.PasoSync {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.mutaciones++
	pasos := s.sincronizarSnapshots(ctx)

	if s.exportEvery > 0 && s.mutaciones%s.exportEvery == 0 {
		pasos = append(pasos, s.exportar(ctx)...)
	}

	for _, p := range pasos {
		if !p.OK {
			log.Warn().Str("paso", p.Paso).Str("error", p.Error).Msg("synchronization step failed")
		}
	}
	return pasos
}

// Exportar generates an xlsx export immediately, outside the mutation cadence
// (on-demand endpoint and CLI).
func (s *Sincronizador) Exportar(ctx context.Context) []dto.PasoSync {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.exportar(ctx)
}

func (s *Sincronizador) sincronizarSnapshots(ctx context.Context) []dto.PasoSync {
	pasos := make([]dto.PasoSync, 0, 4)

	entradas, err := s.entradas.ListAsc(ctx)
	if err == nil {
		err = s.store.GuardarEntradas(entradas)
	}
	pasos = append(pasos, paso(PasoSnapshotEntradas, err))
	snapEntradasOK := err == nil

	salidas, err := s.salidas.ListAsc(ctx)
	if err == nil {
		err = s.store.GuardarSalidas(salidas)
	}
	pasos = append(pasos, paso(PasoSnapshotSalidas, err))
	snapSalidasOK := err == nil

	if s.remoto == nil {
		return pasos
	}
	if snapEntradasOK {
		pasos = append(pasos, paso(PasoRemotoEntradas, s.publicarArchivo(ctx, s.store.EntradasPath(), snapshot.EntradasFile)))
	}
	if snapSalidasOK {
		pasos = append(pasos, paso(PasoRemotoSalidas, s.publicarArchivo(ctx, s.store.SalidasPath(), snapshot.SalidasFile)))
	}
	return pasos
}

func (s *Sincronizador) exportar(ctx context.Context) []dto.PasoSync {
	pasos := make([]dto.PasoSync, 0, 3)

	path, err := s.generarExcel(ctx)
	pasos = append(pasos, paso(PasoExportExcel, err))
	if err != nil {
		return pasos
	}
	log.Info().Str("file", path).Msg("excel export generated")

	if s.remoto != nil {
		pasos = append(pasos, paso(PasoRemotoExcel, s.publicarArchivo(ctx, path, "exports/"+filepath.Base(path))))
	}

	removed, err := s.exporter.Prune(s.exportKeep)
	if err == nil && removed > 0 {
		log.Info().Int("removed", removed).Msg("old exports pruned")
	}
	pasos = append(pasos, paso(PasoLimpiezaExports, err))
	return pasos
}

func (s *Sincronizador) generarExcel(ctx context.Context) (string, error) {
	entradas, err := s.entradas.ListAsc(ctx)
	if err != nil {
		return "", err
	}
	salidas, err := s.salidas.ListAsc(ctx)
	if err != nil {
		return "", err
	}
	stock, err := s.stock.CalcularStock(ctx)
	if err != nil {
		return "", err
	}
	return s.exporter.Generar(entradas, salidas, stock, timeutil.SelloArchivo(timeutil.AhoraPeru()))
}

func (s *Sincronizador) publicarArchivo(ctx context.Context, localPath, remotePath string) error {
	content, err := os.ReadFile(localPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", localPath, err)
	}
	return s.remoto.Publicar(ctx, remotePath, content, "Actualización automática de inventario")
}

func paso(nombre string, err error) dto.PasoSync {
	p := dto.PasoSync{Paso: nombre, OK: err == nil}
	if err != nil {
		p.Error = err.Error()
	}
	return p
}
