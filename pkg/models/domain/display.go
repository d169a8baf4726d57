package domain

import "fmt"

// Unit selects how currency amounts are rendered.
type Unit string

const (
	UnitFull     Unit = "full"
	UnitMillions Unit = "millions"
	UnitBillions Unit = "billions"
)

// ParseUnit validates a unit value coming from the presentation layer.
// An unknown value is a configuration error, reported at the point of
// selection rather than silently defaulted.
func ParseUnit(s string) (Unit, error) {
	switch Unit(s) {
	case UnitFull, UnitMillions, UnitBillions:
		return Unit(s), nil
	default:
		return "", fmt.Errorf("unknown display unit %q", s)
	}
}

// ViewKind identifies one of the dashboard views.
type ViewKind string

const (
	ViewExecutiveSummary ViewKind = "executive-summary"
	ViewRevenue          ViewKind = "revenue"
	ViewExpenditure      ViewKind = "expenditure"
	ViewBalanceSheet     ViewKind = "balance-sheet"
	ViewAuditFindings    ViewKind = "audit-findings"
	ViewDebt             ViewKind = "debt"
	ViewTransfers        ViewKind = "soe-transfers"
	ViewPerformance      ViewKind = "performance"
)

// Views lists every dashboard view in presentation order.
func Views() []ViewKind {
	return []ViewKind{
		ViewExecutiveSummary,
		ViewRevenue,
		ViewExpenditure,
		ViewBalanceSheet,
		ViewAuditFindings,
		ViewDebt,
		ViewTransfers,
		ViewPerformance,
	}
}

func ParseViewKind(s string) (ViewKind, error) {
	for _, v := range Views() {
		if ViewKind(s) == v {
			return v, nil
		}
	}
	return "", fmt.Errorf("unknown view %q", s)
}

// DisplayPreferences is the per-request widget state: which view to render,
// the currency unit, and whether comparison-period figures are shown. It is
// rebuilt on every interaction and never persisted.
type DisplayPreferences struct {
	Unit           Unit
	ShowComparison bool
	View           ViewKind
}

func DefaultDisplayPreferences() DisplayPreferences {
	return DisplayPreferences{
		Unit:           UnitMillions,
		ShowComparison: true,
		View:           ViewExecutiveSummary,
	}
}

type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// Metric is a single headline card. Delta and Trend are empty when the
// preferences suppress comparison figures.
type Metric struct {
	Label string
	Value string
	Delta string
	Trend Trend
}

// Table holds pre-formatted rows. Column count always matches every row.
type Table struct {
	Title   string
	Columns []string
	Rows    [][]string
}

type ChartKind string

const (
	ChartBar        ChartKind = "bar"
	ChartPie        ChartKind = "pie"
	ChartGroupedBar ChartKind = "grouped_bar"
)

// ChartSeries is one named numeric series, scaled to the selected unit.
type ChartSeries struct {
	Name   string
	Values []float64
}

type Chart struct {
	Title  string
	Kind   ChartKind
	Labels []string
	Series []ChartSeries
}

// FindingCard is an audit finding prepared for display, with its derived
// severity and formatted magnitude.
type FindingCard struct {
	Title       string
	Description string
	Impact      string
	Amount      string
	Category    FindingCategory
	Severity    Severity
}

// DisplayModel is everything the presentation layer needs to render one
// view. Assembly is the only producer; the presentation layer never reaches
// past it into the raw dataset.
type DisplayModel struct {
	View     ViewKind
	Title    string
	Notice   string
	Metrics  []Metric
	Tables   []Table
	Charts   []Chart
	Findings []FindingCard
	Issues   []ComplianceIssue
}
