package query_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/catalog-demo/internal/domain"
	"github.com/jhoicas/catalog-demo/internal/domain/entity"
	"github.com/jhoicas/catalog-demo/internal/domain/query"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	tools, computers, electronics *entity.Category
	products                      []*entity.Product
}

func newFixture() fixture {
	tools := entity.NewCategory(1, "Tools", 2)
	computers := entity.NewCategory(2, "Computers", 1)
	electronics := entity.NewCategory(3, "Eletronics", 1)
	return fixture{
		tools:       tools,
		computers:   computers,
		electronics: electronics,
		products: []*entity.Product{
			entity.NewProduct(1, "Computer", decimal.NewFromInt(1110), computers),
			entity.NewProduct(2, "Hammer", decimal.NewFromInt(90), tools),
			entity.NewProduct(3, "TV", decimal.NewFromInt(1700), electronics),
			entity.NewProduct(4, "Notebook", decimal.NewFromInt(1300), computers),
			entity.NewProduct(5, "Saw", decimal.NewFromInt(80), tools),
		},
	}
}

func price(p *entity.Product) decimal.Decimal { return p.Price }
func name(p *entity.Product) string           { return p.Name }

func tierIs(tier int) func(*entity.Product) bool {
	return func(p *entity.Product) bool { return p.Category.Tier == tier }
}

// ── Filtro y proyección ───────────────────────────────────────────────────────

func TestWhere_SubconjuntoQueCumplePredicado(t *testing.T) {
	f := newFixture()
	limit := decimal.NewFromInt(1200)
	pred := func(p *entity.Product) bool { return p.Price.LessThan(limit) }

	got := query.Where(f.products, pred)

	require.Len(t, got, 3)
	for _, p := range got {
		assert.Contains(t, f.products, p, "el resultado debe ser subconjunto de la fuente")
		assert.True(t, pred(p))
	}
	for _, p := range f.products {
		if !pred(p) {
			assert.NotContains(t, got, p, "los que no cumplen no deben aparecer")
		}
	}
	assert.Equal(t, []string{"Computer", "Hammer", "Saw"}, query.Select(got, name), "conserva el orden original")
}

func TestWhere_SinCoincidenciasDevuelveVacio(t *testing.T) {
	f := newFixture()
	got := query.Where(f.products, tierIs(9))
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSelect_ProyectaCampo(t *testing.T) {
	f := newFixture()
	names := query.Select(query.Where(f.products, func(p *entity.Product) bool { return p.Category.Name == "Tools" }), name)
	assert.Equal(t, []string{"Hammer", "Saw"}, names)
}

// ── Orden ─────────────────────────────────────────────────────────────────────

func TestOrderBy_PrecioLuegoNombre(t *testing.T) {
	tier := entity.NewCategory(7, "Tier", 1)
	items := []*entity.Product{
		entity.NewProduct(1, "Zeta", decimal.NewFromInt(10), tier),
		entity.NewProduct(2, "Alfa", decimal.NewFromInt(10), tier),
		entity.NewProduct(3, "Beta", decimal.NewFromInt(5), tier),
		entity.NewProduct(4, "Alfa", decimal.NewFromInt(20), tier),
	}

	got := query.OrderBy(items, query.AscDecimal(price), query.Asc(name))

	require.Len(t, got, len(items))
	for i := 1; i < len(got); i++ {
		a, b := got[i-1], got[i]
		ok := a.Price.LessThan(b.Price) || (a.Price.Equal(b.Price) && a.Name <= b.Name)
		assert.True(t, ok, "par fuera de orden: %s / %s", a, b)
	}
	assert.Equal(t, []int{3, 2, 1, 4}, query.Select(got, func(p *entity.Product) int { return p.ID }))
	assert.Equal(t, 1, items[0].ID, "OrderBy no debe modificar la entrada")
}

func TestOrderBy_EsEstable(t *testing.T) {
	type row struct {
		k, pos int
	}
	items := []row{{1, 0}, {0, 1}, {1, 2}, {0, 3}}
	got := query.OrderBy(items, query.Asc(func(r row) int { return r.k }))
	assert.Equal(t, []row{{0, 1}, {0, 3}, {1, 0}, {1, 2}}, got)
}

// ── Paginación ────────────────────────────────────────────────────────────────

func TestPage_IndicesDelRango(t *testing.T) {
	items := []int{0, 1, 2, 3, 4, 5, 6, 7}
	assert.Equal(t, []int{2, 3, 4, 5}, query.Page(items, 2, 4))

	short := []int{0, 1, 2}
	assert.Equal(t, []int{2}, query.Page(short, 2, 4), "si quedan menos de M se devuelve el resto")
}

func TestSkip_MasAllaDeLaLongitud(t *testing.T) {
	assert.Empty(t, query.Skip([]int{1, 2}, 5))
	assert.Empty(t, query.Page([]int{1, 2}, 2, 4))
	assert.Equal(t, []int{1, 2}, query.Skip([]int{1, 2}, -1), "conteo negativo equivale a cero")
}

func TestTake_CasosBorde(t *testing.T) {
	assert.Empty(t, query.Take([]int{1, 2}, 0))
	assert.Equal(t, []int{1, 2}, query.Take([]int{1, 2}, 10))
}

// ── Elemento ──────────────────────────────────────────────────────────────────

func TestFirstOrDefault(t *testing.T) {
	f := newFixture()

	first := query.FirstOrDefault(f.products)
	p, ok := first.Get()
	require.True(t, ok)
	assert.Same(t, f.products[0], p)

	empty := query.FirstOrDefault([]*entity.Product{})
	assert.False(t, empty.IsPresent())
	assert.Equal(t, query.EmptyMarker, empty.String())
}

func TestFirstOrDefaultWhere_SinCoincidencia(t *testing.T) {
	f := newFixture()
	limit := decimal.NewFromInt(3000)
	got := query.FirstOrDefaultWhere(f.products, func(p *entity.Product) bool { return p.Price.GreaterThan(limit) })
	assert.False(t, got.IsPresent())
}

func TestSingleOrDefault_TresResultados(t *testing.T) {
	f := newFixture()

	// Exactamente una coincidencia.
	one, err := query.SingleOrDefault(f.products, func(p *entity.Product) bool { return p.ID == 3 })
	require.NoError(t, err)
	p, ok := one.Get()
	require.True(t, ok)
	assert.Equal(t, "TV", p.Name)

	// Ninguna coincidencia.
	none, err := query.SingleOrDefault(f.products, func(p *entity.Product) bool { return p.ID == 99 })
	require.NoError(t, err)
	assert.False(t, none.IsPresent())

	// Varias coincidencias: error, nunca un elemento arbitrario.
	many, err := query.SingleOrDefault(f.products, tierIs(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMultipleMatches)
	assert.False(t, many.IsPresent())
}

func TestOptional_String(t *testing.T) {
	assert.Equal(t, "3", query.Some(3).String())
	assert.Equal(t, query.EmptyMarker, query.None[int]().String())
}

// ── Agregación ────────────────────────────────────────────────────────────────

func TestMaxMin_Precio(t *testing.T) {
	f := newFixture()

	maxPrice, err := query.MaxBy(f.products, price)
	require.NoError(t, err)
	assert.True(t, maxPrice.Equal(decimal.NewFromInt(1700)), "max = %s", maxPrice)

	minPrice, err := query.MinBy(f.products, price)
	require.NoError(t, err)
	assert.True(t, minPrice.Equal(decimal.NewFromInt(80)), "min = %s", minPrice)
}

func TestMaxMin_VacioEsError(t *testing.T) {
	_, err := query.MaxBy([]*entity.Product{}, price)
	assert.ErrorIs(t, err, domain.ErrEmptySequence)
	_, err = query.MinBy([]*entity.Product{}, price)
	assert.ErrorIs(t, err, domain.ErrEmptySequence)
}

func TestSumAverage_Categoria1(t *testing.T) {
	f := newFixture()
	cat1 := query.Where(f.products, func(p *entity.Product) bool { return p.Category.ID == 1 })

	sum := query.Sum(cat1, price)
	assert.True(t, sum.Equal(decimal.NewFromInt(170)), "sum = %s", sum)

	avg, err := query.Average(cat1, price)
	require.NoError(t, err)
	assert.True(t, avg.Equal(decimal.NewFromInt(85)), "avg = %s", avg)
}

func TestSum_VacioEsCero(t *testing.T) {
	assert.True(t, query.Sum([]*entity.Product{}, price).IsZero())
}

func TestAverage_VacioEsError(t *testing.T) {
	_, err := query.Average([]*entity.Product{}, price)
	assert.ErrorIs(t, err, domain.ErrEmptySequence)
}

func TestAverage_ConDefaultIfEmpty(t *testing.T) {
	f := newFixture()
	prices := query.Select(query.Where(f.products, func(p *entity.Product) bool { return p.Category.ID == 5 }), price)
	require.Empty(t, prices)

	avg, err := query.Average(query.DefaultIfEmpty(prices, decimal.Zero), query.Identity)
	require.NoError(t, err)
	assert.True(t, avg.IsZero(), "avg = %s", avg)
}

func TestDefaultIfEmpty_NoVacioSinCambios(t *testing.T) {
	assert.Equal(t, []int{1, 2}, query.DefaultIfEmpty([]int{1, 2}, 0))
	assert.Equal(t, []int{0}, query.DefaultIfEmpty([]int{}, 0))
}

func TestAggregate_EquivaleASum(t *testing.T) {
	f := newFixture()
	prices := query.Select(f.products, price)

	folded := query.Aggregate(prices, decimal.Zero, func(acc, d decimal.Decimal) decimal.Decimal { return acc.Add(d) })
	assert.True(t, folded.Equal(query.Sum(prices, query.Identity)))

	concat := query.Aggregate([]string{"a", "b", "c"}, ">", func(acc, s string) string { return acc + s })
	assert.Equal(t, ">abc", concat, "el pliegue es de izquierda a derecha")
}

// ── Agrupación ────────────────────────────────────────────────────────────────

func TestGroupBy_PorInstanciaDeCategoria(t *testing.T) {
	f := newFixture()

	groups := query.GroupBy(f.products, func(p *entity.Product) *entity.Category { return p.Category })

	require.Len(t, groups, 3, "un grupo por categoría distinta")
	assert.Same(t, f.computers, groups[0].Key, "orden de primera aparición")
	assert.Same(t, f.tools, groups[1].Key)
	assert.Same(t, f.electronics, groups[2].Key)

	total := 0
	for _, g := range groups {
		total += len(g.Items)
		for _, p := range g.Items {
			assert.Same(t, g.Key, p.Category, "cada producto pertenece al grupo de su categoría")
		}
	}
	assert.Equal(t, len(f.products), total)
	assert.Equal(t, []string{"Computer", "Notebook"}, query.Select(groups[0].Items, name))
	assert.Equal(t, []string{"Hammer", "Saw"}, query.Select(groups[1].Items, name))
}

func TestGroupBy_InstanciasIgualesEnValorSonGruposDistintos(t *testing.T) {
	a := entity.NewCategory(1, "Tools", 2)
	b := entity.NewCategory(1, "Tools", 2)
	items := []*entity.Product{
		entity.NewProduct(1, "Hammer", decimal.NewFromInt(90), a),
		entity.NewProduct(2, "Saw", decimal.NewFromInt(80), b),
	}
	groups := query.GroupBy(items, func(p *entity.Product) *entity.Category { return p.Category })
	assert.Len(t, groups, 2)
}

func TestGroupBy_Vacio(t *testing.T) {
	groups := query.GroupBy([]int{}, func(i int) int { return i })
	assert.Empty(t, groups)
}
