package main

import (
	"context"
	"os"

	"github.com/google/uuid"
	"github.com/jhoicas/catalog-demo/internal/application/catalog"
	"github.com/jhoicas/catalog-demo/internal/infrastructure/memory"
	"github.com/jhoicas/catalog-demo/internal/interfaces/console"
	"github.com/jhoicas/catalog-demo/pkg/config"
	"github.com/jhoicas/catalog-demo/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	}).WithStr("run_id", uuid.New().String())
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("format", cfg.Report.Format).
		Msg("iniciando demostración")

	// Catálogo fijo: se construye una vez y no se modifica durante la ejecución.
	cat := memory.NewDefaultCatalog()
	productRepo := memory.NewProductRepository(cat)
	categoryRepo := memory.NewCategoryRepository(cat)
	queryUC := catalog.NewQueryUseCase(productRepo, categoryRepo)

	printer, err := console.NewPrinter(os.Stdout, cfg.Report.Format, cfg.Report.Locale)
	if err != nil {
		log.Fatal().Err(err).Msg("configurar salida del reporte")
	}

	if err := console.NewReport(queryUC, printer, log).Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("reporte abortado")
	}

	log.Info().Msg("demostración finalizada")
}
