package console

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/jhoicas/catalog-demo/internal/application/catalog"
	"github.com/jhoicas/catalog-demo/internal/application/dto"
	"github.com/jhoicas/catalog-demo/internal/domain"
	"github.com/jhoicas/catalog-demo/internal/domain/entity"
	"github.com/jhoicas/catalog-demo/internal/domain/query"
	"github.com/jhoicas/catalog-demo/pkg/config"
)

// Printer escribe un bloque por consulta: en texto (título, una línea por elemento, línea en blanco)
// o en JSON delimitado por líneas.
type Printer struct {
	w      io.Writer
	format string
	msg    *message.Printer // nil: montos con 2 decimales sin separador de miles
	sep    string           // separador decimal del locale
}

var (
	maxWhole = decimal.NewFromInt(math.MaxInt64)
	minWhole = decimal.NewFromInt(math.MinInt64)
)

// block representación JSON de un bloque del reporte.
type block struct {
	Query  string                      `json:"query"`
	Items  any                         `json:"items,omitempty"`
	Value  any                         `json:"value,omitempty"`
	Empty  bool                        `json:"empty,omitempty"`
	Page   *dto.PageResponse           `json:"page,omitempty"`
	Groups []dto.CategoryGroupResponse `json:"groups,omitempty"`
	Error  *dto.ErrorResponse          `json:"error,omitempty"`
}

// NewPrinter construye el printer. locale vacío desactiva el formateo regional de montos.
func NewPrinter(w io.Writer, format, locale string) (*Printer, error) {
	switch format {
	case config.FormatText, config.FormatJSON:
	default:
		return nil, fmt.Errorf("formato %q: %w", format, domain.ErrInvalidInput)
	}
	p := &Printer{w: w, format: format}
	if locale != "" {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("locale %q: %w", locale, domain.ErrInvalidInput)
		}
		p.msg = message.NewPrinter(tag)
		p.sep = strings.TrimSuffix(strings.TrimPrefix(p.msg.Sprintf("%.1f", 0.5), "0"), "5")
	}
	return p, nil
}

// money formatea con 2 decimales sin pasar por float64: la parte entera se agrupa
// según el locale y la fracción sale de StringFixed. Si la parte entera no cabe en
// int64 se devuelve el monto sin agrupar.
func (p *Printer) money(d decimal.Decimal) string {
	plain := d.StringFixed(2)
	if p.msg == nil {
		return plain
	}
	rounded := d.Round(2)
	whole := rounded.Truncate(0)
	if whole.GreaterThan(maxWhole) || whole.LessThan(minWhole) {
		return plain
	}
	_, frac, _ := strings.Cut(plain, ".")
	sign := ""
	if whole.IsZero() && rounded.IsNegative() {
		sign = "-"
	}
	return sign + p.msg.Sprintf("%d", whole.IntPart()) + p.sep + frac
}

func (p *Printer) productLine(pr *entity.Product) string {
	return pr.FormatWithPrice(p.money(pr.Price))
}

func (p *Printer) summaryLine(s dto.ProductSummary) string {
	return s.FormatWithPrice(p.money(s.Price))
}

func toProductResponse(pr *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:           pr.ID,
		Name:         pr.Name,
		Price:        pr.Price,
		CategoryName: pr.CategoryName(),
		CategoryTier: pr.CategoryTier(),
	}
}

func (p *Printer) writeText(title string, lines []string) error {
	var sb strings.Builder
	sb.WriteString(title)
	sb.WriteByte('\n')
	for _, l := range lines {
		sb.WriteString(l)
		sb.WriteByte('\n')
	}
	sb.WriteByte('\n')
	_, err := io.WriteString(p.w, sb.String())
	return err
}

func (p *Printer) writeJSON(b block) error {
	enc := json.NewEncoder(p.w)
	enc.SetEscapeHTML(false)
	return enc.Encode(b)
}

// Products imprime una lista de productos.
func (p *Printer) Products(title string, items []*entity.Product) error {
	if p.format == config.FormatJSON {
		return p.writeJSON(block{Query: title, Items: query.Select(items, toProductResponse)})
	}
	return p.writeText(title, query.Select(items, p.productLine))
}

// Page imprime una página de productos junto con sus metadatos (Offset/Limit).
func (p *Printer) Page(title string, page dto.PageRequest, items []*entity.Product) error {
	if p.format == config.FormatJSON {
		return p.writeJSON(block{
			Query: title,
			Items: query.Select(items, toProductResponse),
			Page:  &dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: len(items)},
		})
	}
	return p.writeText(title, query.Select(items, p.productLine))
}

// Strings imprime una lista de valores escalares.
func (p *Printer) Strings(title string, items []string) error {
	if p.format == config.FormatJSON {
		return p.writeJSON(block{Query: title, Items: items})
	}
	return p.writeText(title, items)
}

// Summaries imprime proyecciones {Name, Price, CategoryName}.
func (p *Printer) Summaries(title string, items []dto.ProductSummary) error {
	if p.format == config.FormatJSON {
		return p.writeJSON(block{Query: title, Items: items})
	}
	return p.writeText(title, query.Select(items, p.summaryLine))
}

// Product imprime un resultado opcional: "label : producto" o el marcador de vacío.
func (p *Printer) Product(label string, opt query.Optional[*entity.Product]) error {
	pr, ok := opt.Get()
	if p.format == config.FormatJSON {
		b := block{Query: label, Empty: !ok}
		if ok {
			b.Value = toProductResponse(pr)
		}
		return p.writeJSON(b)
	}
	value := query.EmptyMarker
	if ok {
		value = p.productLine(pr)
	}
	return p.writeText(label+" : "+value, nil)
}

// Amount imprime un monto escalar.
func (p *Printer) Amount(label string, d decimal.Decimal) error {
	if p.format == config.FormatJSON {
		return p.writeJSON(block{Query: label, Value: d})
	}
	return p.writeText(label+" : "+p.money(d), nil)
}

// Groups imprime un bloque por categoría con sus productos.
func (p *Printer) Groups(title string, groups []catalog.CategoryGroup) error {
	if p.format == config.FormatJSON {
		out := make([]dto.CategoryGroupResponse, 0, len(groups))
		for _, g := range groups {
			resp := dto.CategoryGroupResponse{
				CategoryName: g.Key.String(),
				Items:        query.Select(g.Items, toProductResponse),
			}
			if g.Key != nil {
				resp.CategoryID = g.Key.ID
			}
			out = append(out, resp)
		}
		return p.writeJSON(block{Query: title, Groups: out})
	}
	for _, g := range groups {
		if err := p.writeText("Category : "+g.Key.String(), query.Select(g.Items, p.productLine)); err != nil {
			return err
		}
	}
	return nil
}

// Error imprime el fallo que abortó el reporte. En texto no escribe nada: el error va al log.
func (p *Printer) Error(title string, err error) error {
	if p.format != config.FormatJSON {
		return nil
	}
	return p.writeJSON(block{Query: title, Error: &dto.ErrorResponse{Code: errorCode(err), Message: err.Error()}})
}

func errorCode(err error) string {
	switch {
	case errors.Is(err, domain.ErrMultipleMatches):
		return "MULTIPLE_MATCHES"
	case errors.Is(err, domain.ErrEmptySequence):
		return "EMPTY_SEQUENCE"
	default:
		return "INTERNAL"
	}
}
