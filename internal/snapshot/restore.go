package snapshot

import (
	"context"

	"github.com/Cdo9608/sistema-consumibles/internal/repository"

	"github.com/rs/zerolog/log"
)

// RestaurarSiVacio bulk-loads each ledger from its snapshot when the
// relational store has zero rows for it at process start. A ledger that
// already has rows is left untouched: the store is authoritative and the
// snapshot may be stale. This runs before any request is served.
func RestaurarSiVacio(ctx context.Context, s *Store, entradas repository.EntradaRepository, salidas repository.SalidaRepository) error {
	n, err := entradas.Count(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		rows, ok, err := s.CargarEntradas()
		if err != nil {
			return err
		}
		if ok && len(rows) > 0 {
			if err := entradas.BulkInsert(ctx, rows); err != nil {
				return err
			}
			log.Info().Int("registros", len(rows)).Msg("entradas restauradas desde snapshot")
		}
	}

	n, err = salidas.Count(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		rows, ok, err := s.CargarSalidas()
		if err != nil {
			return err
		}
		if ok && len(rows) > 0 {
			if err := salidas.BulkInsert(ctx, rows); err != nil {
				return err
			}
			log.Info().Int("registros", len(rows)).Msg("salidas restauradas desde snapshot")
		}
	}

	return nil
}
