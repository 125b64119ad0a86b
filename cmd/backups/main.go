// backups manages timestamped copies of the SQLite database outside the
// running server.
//
//	backups crear [-tipo manual]
//	backups listar [-detalle]
//	backups restaurar -n 1
//	backups limpiar [-dias 30] [-minimo 10]
//	backups estadisticas
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/Cdo9608/sistema-consumibles/internal/backup"
	"github.com/Cdo9608/sistema-consumibles/internal/config"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	mgr := backup.NewManager(cfg.DBPath, cfg.BackupDir)

	if len(os.Args) < 2 {
		uso()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "crear":
		fs := flag.NewFlagSet("crear", flag.ExitOnError)
		tipo := fs.String("tipo", backup.TipoManual, "tipo de backup (manual|auto)")
		_ = fs.Parse(os.Args[2:])
		ruta, err := mgr.Crear(*tipo)
		if err != nil {
			log.Fatal().Err(err).Msg("no se pudo crear el backup")
		}
		fmt.Println(ruta)

	case "listar":
		fs := flag.NewFlagSet("listar", flag.ExitOnError)
		detalle := fs.Bool("detalle", false, "abrir cada backup y contar filas")
		_ = fs.Parse(os.Args[2:])
		infos, err := mgr.Listar(*detalle)
		if err != nil {
			log.Fatal().Err(err).Msg("no se pudo listar los backups")
		}
		if len(infos) == 0 {
			fmt.Println("no hay backups disponibles")
			return
		}
		for i, info := range infos {
			linea := fmt.Sprintf("%2d. %s  %s  %.1f KB  hace %d dias",
				i+1, info.Nombre, info.Tipo, float64(info.Tamano)/1024, info.Antiguedad)
			if *detalle && info.Entradas >= 0 {
				linea += fmt.Sprintf("  (%d entradas, %d salidas)", info.Entradas, info.Salidas)
			}
			fmt.Println(linea)
		}

	case "restaurar":
		fs := flag.NewFlagSet("restaurar", flag.ExitOnError)
		n := fs.Int("n", 0, "numero de backup segun 'listar' (1 = mas reciente)")
		_ = fs.Parse(os.Args[2:])
		if *n < 1 {
			log.Fatal().Msg("indique -n: numero de backup segun 'listar'")
		}
		info, err := mgr.Restaurar(*n)
		if err != nil {
			log.Fatal().Err(err).Msg("restauracion fallida")
		}
		fmt.Printf("restaurado %s sobre %s\n", info.Nombre, cfg.DBPath)

	case "limpiar":
		fs := flag.NewFlagSet("limpiar", flag.ExitOnError)
		dias := fs.Int("dias", 30, "eliminar backups con mas de N dias")
		minimo := fs.Int("minimo", 10, "conservar siempre los N mas recientes")
		_ = fs.Parse(os.Args[2:])
		removidos, err := mgr.Limpiar(*dias, *minimo)
		if err != nil {
			log.Fatal().Err(err).Msg("limpieza fallida")
		}
		fmt.Printf("%d backups eliminados\n", removidos)

	case "estadisticas":
		stats, err := mgr.Estadisticas()
		if err != nil {
			log.Fatal().Err(err).Msg("no se pudo calcular estadisticas")
		}
		fmt.Printf("total: %d backups, %.1f KB\n", stats.Total, float64(stats.EspacioTotal)/1024)
		for tipo, n := range stats.PorTipo {
			fmt.Printf("  %s: %d\n", tipo, n)
		}
		if stats.Total > 0 {
			fmt.Printf("mas reciente: %s\nmas antiguo:  %s\n", stats.MasReciente, stats.MasAntiguo)
		}

	default:
		uso()
		os.Exit(1)
	}
}

func uso() {
	fmt.Fprintln(os.Stderr, "uso: backups <crear|listar|restaurar|limpiar|estadisticas> [opciones]")
}
