// Package report shapes aggregation results into report bundles and exports them.
package report

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/gestao-financeira/backend/internal/domain/aggregation"
	"github.com/gestao-financeira/backend/internal/domain/entity"
	"github.com/gestao-financeira/backend/internal/domain/valueobject"
)

var titles = map[entity.ReportType]string{
	entity.ReportTypeSales:    "Relatório de Vendas",
	entity.ReportTypeExpenses: "Relatório de Despesas",
	entity.ReportTypeOverview: "Relatório Geral",
}

// Source is the data a bundle is built from. Records are already converted to
// the report's calendar location.
type Source struct {
	Sales    []aggregation.Record
	Expenses []aggregation.Record
	Goal     *entity.Goal
	// GoalSales are the current month's sales, loaded apart from the
	// date-filtered Sales so the goal line ignores the filter.
	GoalSales []aggregation.Record
	Filter    aggregation.Filter
	Now       time.Time
	Lookback  int
}

// Build shapes a bundle of the given type. Header fields (company name, logo)
// are left for the caller.
func Build(reportType entity.ReportType, src Source) *entity.ReportBundle {
	bundle := &entity.ReportBundle{
		Type:        reportType,
		Title:       titles[reportType],
		GeneratedAt: src.Now,
		Filters:     filterLines(src.Filter, reportType),
	}

	switch reportType {
	case entity.ReportTypeSales:
		buildSales(bundle, src)
	case entity.ReportTypeExpenses:
		buildExpenses(bundle, src)
	case entity.ReportTypeOverview:
		buildOverview(bundle, src)
	}
	return bundle
}

func buildSales(bundle *entity.ReportBundle, src Source) {
	sales := aggregation.Apply(src.Sales, src.Filter)
	stats := aggregation.MinMaxAverage(sales, nil)
	today := aggregation.Total(aggregation.DayOnly(sales, src.Now))

	bundle.Summary = []entity.ReportLine{
		{Label: "Total de vendas", Value: entity.CurrencyCell(stats.Total)},
		{Label: "Quantidade de vendas", Value: entity.IntegerCell(int64(stats.Count))},
		{Label: "Unidades vendidas", Value: entity.IntegerCell(int64(aggregation.TotalUnits(sales)))},
		{Label: "Média mensal", Value: entity.CurrencyCell(monthlyAverage(sales, stats.Total))},
		{Label: "Vendas de hoje", Value: entity.CurrencyCell(today)},
		{Label: "Maior venda", Value: entity.CurrencyCell(stats.Max)},
		{Label: "Menor venda", Value: entity.CurrencyCell(stats.Min)},
		{Label: "Ticket médio", Value: entity.CurrencyCell(stats.Average)},
		goalLine(src),
	}

	list := entity.ReportTable{
		Name:  "Vendas",
		Title: "Vendas",
		Columns: []entity.ReportColumn{
			{Header: "Data", Kind: entity.CellKindDate, Width: 14},
			{Header: "Entregador", Kind: entity.CellKindText, Width: 28},
			{Header: "Pagamento", Kind: entity.CellKindText, Width: 20},
			{Header: "Status", Kind: entity.CellKindText, Width: 14},
			{Header: "Valor", Kind: entity.CellKindCurrency, Width: 16},
		},
	}
	items := entity.ReportTable{
		Name:  "Itens",
		Title: "Itens vendidos",
		Columns: []entity.ReportColumn{
			{Header: "Data", Kind: entity.CellKindDate, Width: 14},
			{Header: "Entregador", Kind: entity.CellKindText, Width: 24},
			{Header: "Produto", Kind: entity.CellKindText, Width: 28},
			{Header: "Quantidade", Kind: entity.CellKindInteger, Width: 12},
			{Header: "Preço unitário", Kind: entity.CellKindCurrency, Width: 16},
			{Header: "Subtotal", Kind: entity.CellKindCurrency, Width: 16},
		},
	}
	for _, r := range sales {
		list.AddRow(
			entity.DateCell(r.Date),
			entity.TextCell(r.Payee),
			entity.TextCell(entity.PaymentMethod(r.PaymentMethod).Label()),
			entity.TextCell(entity.SaleStatus(r.Status).Label()),
			entity.CurrencyCell(r.Value()),
		)
		for _, item := range r.Items {
			items.AddRow(
				entity.DateCell(r.Date),
				entity.TextCell(r.Payee),
				entity.TextCell(item.ProductName),
				entity.IntegerCell(int64(item.Quantity)),
				entity.CurrencyCell(item.UnitPrice),
				entity.CurrencyCell(item.Subtotal()),
			)
		}
	}

	byPayee := entity.ReportTable{
		Name:  "Por entregador",
		Title: "Vendas por entregador",
		Columns: []entity.ReportColumn{
			{Header: "Entregador", Kind: entity.CellKindText, Width: 28},
			{Header: "Vendas", Kind: entity.CellKindInteger, Width: 10},
			{Header: "Total", Kind: entity.CellKindCurrency, Width: 16},
		},
	}
	for _, g := range aggregation.SumBy(sales, aggregation.ByPayee).SortedByTotal() {
		byPayee.AddRow(entity.TextCell(g.Key), entity.IntegerCell(int64(g.Count)), entity.CurrencyCell(g.Total))
	}

	bundle.Tables = []entity.ReportTable{list, items, byPayee, monthTable("Vendas", sales)}
}

func buildExpenses(bundle *entity.ReportBundle, src Source) {
	expenses := aggregation.Apply(src.Expenses, src.Filter)
	stats := aggregation.MinMaxAverage(expenses, nil)

	bundle.Summary = []entity.ReportLine{
		{Label: "Total de despesas", Value: entity.CurrencyCell(stats.Total)},
		{Label: "Quantidade de despesas", Value: entity.IntegerCell(int64(stats.Count))},
		{Label: "Média por despesa", Value: entity.CurrencyCell(stats.Average)},
		{Label: "Maior despesa", Value: entity.CurrencyCell(stats.Max)},
		{Label: "Menor despesa", Value: entity.CurrencyCell(stats.Min)},
	}

	list := entity.ReportTable{
		Name:  "Despesas",
		Title: "Despesas",
		Columns: []entity.ReportColumn{
			{Header: "Data", Kind: entity.CellKindDate, Width: 14},
			{Header: "Categoria", Kind: entity.CellKindText, Width: 20},
			{Header: "Descrição", Kind: entity.CellKindText, Width: 32},
			{Header: "Pagamento", Kind: entity.CellKindText, Width: 20},
			{Header: "Valor", Kind: entity.CellKindCurrency, Width: 16},
		},
	}
	for _, r := range expenses {
		list.AddRow(
			entity.DateCell(r.Date),
			entity.TextCell(r.Category),
			entity.TextCell(r.Description),
			entity.TextCell(entity.PaymentMethod(r.PaymentMethod).Label()),
			entity.CurrencyCell(r.Value()),
		)
	}

	bundle.Tables = []entity.ReportTable{list, categoryTable("Por categoria", expenses), monthTable("Despesas", expenses)}
}

func buildOverview(bundle *entity.ReportBundle, src Source) {
	dates := aggregation.Filter{DateFrom: src.Filter.DateFrom, DateTo: src.Filter.DateTo}
	sales := aggregation.Apply(src.Sales, dates)
	expenses := aggregation.Apply(src.Expenses, dates)

	salesTotal := aggregation.Total(sales)
	expensesTotal := aggregation.Total(expenses)

	bundle.Summary = []entity.ReportLine{
		{Label: "Total de vendas", Value: entity.CurrencyCell(salesTotal)},
		{Label: "Total de despesas", Value: entity.CurrencyCell(expensesTotal)},
		{Label: "Saldo", Value: entity.CurrencyCell(salesTotal.Sub(expensesTotal))},
		goalLine(src),
	}

	series := entity.ReportTable{
		Name:  "Série mensal",
		Title: "Vendas e despesas por mês",
		Columns: []entity.ReportColumn{
			{Header: "Mês", Kind: entity.CellKindMonth, Width: 12},
			{Header: "Vendas", Kind: entity.CellKindCurrency, Width: 16},
			{Header: "Despesas", Kind: entity.CellKindCurrency, Width: 16},
			{Header: "Saldo", Kind: entity.CellKindCurrency, Width: 16},
		},
	}
	end := src.Now
	if src.Filter.DateTo != nil && src.Filter.DateTo.Before(end) {
		end = *src.Filter.DateTo
	}
	salesSeries := aggregation.MonthSeries(sales, src.Lookback, end)
	expenseSeries := aggregation.MonthSeries(expenses, src.Lookback, end)
	for i, s := range salesSeries {
		e := expenseSeries[i].Total
		series.AddRow(
			entity.MonthCell(s.Month, s.Year),
			entity.CurrencyCell(s.Total),
			entity.CurrencyCell(e),
			entity.CurrencyCell(s.Total.Sub(e)),
		)
	}

	bundle.Tables = []entity.ReportTable{series, categoryTable("Despesas por categoria", expenses)}
}

func goalLine(src Source) entity.ReportLine {
	progress := 0.0
	if src.Goal != nil {
		month := aggregation.MonthOnly(src.GoalSales, valueobject.MonthOf(src.Now))
		progress = aggregation.GoalProgress(aggregation.Total(month), src.Goal.SalesTarget)
	}
	return entity.ReportLine{Label: "Meta do mês", Value: entity.PercentCell(progress)}
}

// monthlyAverage divides total by the number of distinct months with records.
func monthlyAverage(records []aggregation.Record, total decimal.Decimal) decimal.Decimal {
	months := aggregation.DistinctMonths(records)
	if months == 0 {
		return decimal.Zero
	}
	return total.Div(decimal.NewFromInt(int64(months)))
}

func categoryTable(name string, expenses []aggregation.Record) entity.ReportTable {
	table := entity.ReportTable{
		Name:  name,
		Title: "Despesas por categoria",
		Columns: []entity.ReportColumn{
			{Header: "Categoria", Kind: entity.CellKindText, Width: 24},
			{Header: "Total", Kind: entity.CellKindCurrency, Width: 16},
			{Header: "Percentual", Kind: entity.CellKindPercent, Width: 12},
		},
	}
	groups := aggregation.SumBy(expenses, aggregation.ByCategory).SortedByTotal()
	total := groups.Total()
	for _, g := range groups {
		table.AddRow(entity.TextCell(g.Key), entity.CurrencyCell(g.Total), entity.PercentCell(aggregation.Percentage(g.Total, total)))
	}
	return table
}

// monthTable lists the months that have records, oldest first.
func monthTable(countHeader string, records []aggregation.Record) entity.ReportTable {
	table := entity.ReportTable{
		Name:  "Por mês",
		Title: countHeader + " por mês",
		Columns: []entity.ReportColumn{
			{Header: "Mês", Kind: entity.CellKindMonth, Width: 12},
			{Header: countHeader, Kind: entity.CellKindInteger, Width: 10},
			{Header: "Total", Kind: entity.CellKindCurrency, Width: 16},
		},
	}

	dated := make([]aggregation.Record, 0, len(records))
	for _, r := range records {
		if r.HasDate() {
			dated = append(dated, r)
		}
	}
	sort.SliceStable(dated, func(i, j int) bool { return dated[i].Date.Before(dated[j].Date) })

	for _, g := range aggregation.SumBy(dated, aggregation.ByMonth) {
		month, year := splitMonthKey(g.Key)
		table.AddRow(entity.MonthCell(month, year), entity.IntegerCell(int64(g.Count)), entity.CurrencyCell(g.Total))
	}
	return table
}

func splitMonthKey(key string) (int, int) {
	t, err := time.Parse("01/2006", key)
	if err != nil {
		return 0, 0
	}
	return int(t.Month()), t.Year()
}

func filterLines(f aggregation.Filter, reportType entity.ReportType) []entity.ReportLine {
	lines := make([]entity.ReportLine, 0)
	if f.DateFrom != nil {
		lines = append(lines, entity.ReportLine{Label: "Data inicial", Value: entity.DateCell(*f.DateFrom)})
	}
	if f.DateTo != nil {
		lines = append(lines, entity.ReportLine{Label: "Data final", Value: entity.DateCell(*f.DateTo)})
	}
	if reportType != entity.ReportTypeOverview {
		if v := strings.TrimSpace(f.Category); v != "" {
			lines = append(lines, entity.ReportLine{Label: "Categoria", Value: entity.TextCell(v)})
		}
		if v := strings.TrimSpace(f.PaymentMethod); v != "" {
			lines = append(lines, entity.ReportLine{Label: "Forma de pagamento", Value: entity.TextCell(entity.PaymentMethod(v).Label())})
		}
		if v := strings.TrimSpace(f.Status); v != "" {
			lines = append(lines, entity.ReportLine{Label: "Status", Value: entity.TextCell(entity.SaleStatus(v).Label())})
		}
		if f.ValueMin != nil {
			lines = append(lines, entity.ReportLine{Label: "Valor mínimo", Value: entity.CurrencyCell(*f.ValueMin)})
		}
		if f.ValueMax != nil {
			lines = append(lines, entity.ReportLine{Label: "Valor máximo", Value: entity.CurrencyCell(*f.ValueMax)})
		}
		if v := strings.TrimSpace(f.Payee); v != "" {
			lines = append(lines, entity.ReportLine{Label: "Entregador", Value: entity.TextCell(v)})
		}
	}
	if len(lines) == 0 {
		lines = append(lines, entity.ReportLine{Label: "Filtros", Value: entity.TextCell("Nenhum")})
	}
	return lines
}
