// Package console expone las consultas del catálogo como un reporte escrito en un flujo de texto.
package console

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/catalog-demo/internal/application/catalog"
	"github.com/jhoicas/catalog-demo/internal/application/dto"
	"github.com/jhoicas/catalog-demo/pkg/logger"
)

// Parámetros fijos de la demostración.
const (
	demoTier            = 1
	demoCategoryName    = "Tools"
	demoNamePrefix      = "C"
	demoSingleID        = 3
	demoCategoryID      = 1
	demoMissingCategory = 5
)

var (
	demoPriceLimit = decimal.NewFromInt(900)
	demoPriceAbove = decimal.NewFromInt(3000)
	demoPage       = dto.PageRequest{Offset: 2, Limit: 4}
)

// step una consulta del reporte: imprime su bloque y devuelve cuántos elementos produjo.
type step struct {
	title string
	run   func(ctx context.Context) (int, error)
}

// Report ejecuta la secuencia fija de consultas y escribe cada resultado con el Printer.
type Report struct {
	uc  *catalog.QueryUseCase
	out *Printer
	log *logger.Logger
}

// NewReport construye el reporte.
func NewReport(uc *catalog.QueryUseCase, out *Printer, log *logger.Logger) *Report {
	return &Report{uc: uc, out: out, log: log}
}

// Run evalúa las consultas en orden. Ante el primer error se detiene y lo devuelve;
// los bloques ya escritos permanecen en la salida.
func (r *Report) Run(ctx context.Context) error {
	ds, err := r.uc.Dataset(ctx)
	if err != nil {
		return fmt.Errorf("cargar catálogo: %w", err)
	}
	r.log.Info().
		Int("categories", ds.Categories).
		Int("products", ds.Products).
		Msg("catálogo cargado")

	steps := r.steps()
	for _, s := range steps {
		n, err := s.run(ctx)
		if err != nil {
			if perr := r.out.Error(s.title, err); perr != nil {
				r.log.Error().Err(perr).Msg("no se pudo escribir el bloque de error")
			}
			return fmt.Errorf("consulta %q: %w", s.title, err)
		}
		r.log.Debug().Str("query", s.title).Int("items", n).Msg("bloque impreso")
	}

	r.log.Info().Int("queries", len(steps)).Msg("reporte completado")
	return nil
}

func (r *Report) steps() []step {
	return []step{
		{"TIER 1 AND PRICE < 900", func(ctx context.Context) (int, error) {
			items, err := r.uc.TierUnderPrice(ctx, demoTier, demoPriceLimit)
			if err != nil {
				return 0, err
			}
			return len(items), r.out.Products("TIER 1 AND PRICE < 900", items)
		}},
		{"NAMES OF PRODUCTS FROM TOOLS", func(ctx context.Context) (int, error) {
			names, err := r.uc.ProductNamesByCategory(ctx, demoCategoryName)
			if err != nil {
				return 0, err
			}
			return len(names), r.out.Strings("NAMES OF PRODUCTS FROM TOOLS", names)
		}},
		{"PRODUCTS STARTING WITH 'C' (NAME, PRICE, CATEGORY NAME)", func(ctx context.Context) (int, error) {
			items, err := r.uc.SummariesStartingWith(ctx, demoNamePrefix)
			if err != nil {
				return 0, err
			}
			return len(items), r.out.Summaries("PRODUCTS STARTING WITH 'C' (NAME, PRICE, CATEGORY NAME)", items)
		}},
		{"TIER 1 ORDER BY PRICE THEN BY NAME", func(ctx context.Context) (int, error) {
			items, err := r.uc.TierOrderedByPriceThenName(ctx, demoTier)
			if err != nil {
				return 0, err
			}
			return len(items), r.out.Products("TIER 1 ORDER BY PRICE THEN BY NAME", items)
		}},
		{"TIER 1 ORDER BY PRICE THEN BY NAME, SKIP 2 AND TAKE 4", func(ctx context.Context) (int, error) {
			items, err := r.uc.TierPage(ctx, demoTier, demoPage)
			if err != nil {
				return 0, err
			}
			return len(items), r.out.Page("TIER 1 ORDER BY PRICE THEN BY NAME, SKIP 2 AND TAKE 4", demoPage, items)
		}},
		{"First product", func(ctx context.Context) (int, error) {
			opt, err := r.uc.FirstProduct(ctx)
			if err != nil {
				return 0, err
			}
			return count(opt.IsPresent()), r.out.Product("First product", opt)
		}},
		{"First or default product priced above 3000", func(ctx context.Context) (int, error) {
			opt, err := r.uc.FirstPricedAbove(ctx, demoPriceAbove)
			if err != nil {
				return 0, err
			}
			return count(opt.IsPresent()), r.out.Product("First or default product priced above 3000", opt)
		}},
		{"Single or default with Id 3", func(ctx context.Context) (int, error) {
			opt, err := r.uc.SingleByID(ctx, demoSingleID)
			if err != nil {
				return 0, err
			}
			return count(opt.IsPresent()), r.out.Product("Single or default with Id 3", opt)
		}},
		r.amount("Max price", r.uc.MaxPrice),
		r.amount("Min price", r.uc.MinPrice),
		r.amount("Category 1 sum of prices", func(ctx context.Context) (decimal.Decimal, error) {
			return r.uc.SumPriceByCategory(ctx, demoCategoryID)
		}),
		r.amount("Category 1 average price", func(ctx context.Context) (decimal.Decimal, error) {
			return r.uc.AveragePriceByCategory(ctx, demoCategoryID)
		}),
		r.amount("Category 5 average price (default if empty)", func(ctx context.Context) (decimal.Decimal, error) {
			return r.uc.AveragePriceOrDefault(ctx, demoMissingCategory, decimal.Zero)
		}),
		r.amount("Category 1 aggregate sum", func(ctx context.Context) (decimal.Decimal, error) {
			return r.uc.FoldPriceByCategory(ctx, demoCategoryID)
		}),
		{"PRODUCTS GROUPED BY CATEGORY", func(ctx context.Context) (int, error) {
			groups, err := r.uc.GroupByCategory(ctx)
			if err != nil {
				return 0, err
			}
			return len(groups), r.out.Groups("PRODUCTS GROUPED BY CATEGORY", groups)
		}},
	}
}

func (r *Report) amount(title string, fn func(ctx context.Context) (decimal.Decimal, error)) step {
	return step{title, func(ctx context.Context) (int, error) {
		d, err := fn(ctx)
		if err != nil {
			return 0, err
		}
		return 1, r.out.Amount(title, d)
	}}
}

func count(present bool) int {
	if present {
		return 1
	}
	return 0
}
