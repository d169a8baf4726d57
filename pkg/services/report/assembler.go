// Package report assembles display models for the dashboard views. Each
// view selects its record groups from the fiscal store, runs them through
// the formatting and variance core, and emits a structure the presentation
// layer can render without further computation.
package report

import (
	"context"
	"fmt"

	"github.com/fis-tools/fiscal-atlas/pkg/models/domain"
	"github.com/fis-tools/fiscal-atlas/pkg/services/display"
	"github.com/fis-tools/fiscal-atlas/pkg/store/fiscal"
	"github.com/shopspring/decimal"
)

type Assembler struct {
	store fiscal.Store
}

func NewAssembler(store fiscal.Store) *Assembler {
	return &Assembler{store: store}
}

// Assemble produces the display model for one view under the given
// preferences. The store is never mutated; every call recomputes from the
// immutable dataset, so concurrent sessions need no coordination.
func (a *Assembler) Assemble(
	ctx context.Context,
	view domain.ViewKind,
	prefs domain.DisplayPreferences,
) (domain.DisplayModel, error) {
	switch view {
	case domain.ViewExecutiveSummary:
		return a.executiveSummary(ctx, prefs)
	case domain.ViewRevenue:
		return a.revenue(ctx, prefs)
	case domain.ViewExpenditure:
		return a.expenditure(ctx, prefs)
	case domain.ViewBalanceSheet:
		return a.balanceSheet(ctx, prefs)
	case domain.ViewAuditFindings:
		return a.auditFindings(ctx, prefs)
	case domain.ViewDebt:
		return a.debt(ctx, prefs)
	case domain.ViewTransfers:
		return a.transfers(ctx, prefs)
	case domain.ViewPerformance:
		return a.performance(ctx, prefs)
	default:
		return domain.DisplayModel{}, fmt.Errorf("unknown view %q", view)
	}
}

func nd(d decimal.Decimal) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// scale converts an amount into the numeric value charts plot under the
// selected unit.
func scale(d decimal.Decimal, unit domain.Unit) float64 {
	switch unit {
	case domain.UnitMillions:
		return d.Div(million).InexactFloat64()
	case domain.UnitBillions:
		return d.Div(billion).InexactFloat64()
	default:
		return d.InexactFloat64()
	}
}

var (
	million = decimal.New(1, 6)
	billion = decimal.New(1, 9)
)

// metricOf builds a headline card for a figure with a prior-year
// comparison. The delta and trend are left empty when comparison display is
// off.
func metricOf(label string, pair yearPair, prefs domain.DisplayPreferences) domain.Metric {
	m := domain.Metric{
		Label: label,
		Value: display.Format(nd(pair.Current), prefs.Unit),
	}
	if prefs.ShowComparison {
		v := display.ComputeVariance(pair.Current, pair.priorOpt())
		m.Delta = fmt.Sprintf("%s (%s)",
			display.FormatSigned(v.Absolute, prefs.Unit),
			display.FormatPercent(v.Percent))
		m.Trend = display.TrendOf(v)
	}
	return m
}

// plainMetric builds a card without any comparison figure.
func plainMetric(label string, value decimal.Decimal, prefs domain.DisplayPreferences) domain.Metric {
	return domain.Metric{
		Label: label,
		Value: display.Format(nd(value), prefs.Unit),
	}
}

// budgetTable renders line items against their revised budget: category,
// budget, actual, variance. With comparison off only the actual column
// survives.
func budgetTable(title, labelColumn string, items []domain.FinancialLineItem, prefs domain.DisplayPreferences) domain.Table {
	t := domain.Table{Title: title}
	if !prefs.ShowComparison {
		t.Columns = []string{labelColumn, "Actual 2023"}
		for _, it := range items {
			t.Rows = append(t.Rows, []string{
				it.Label,
				display.Format(nd(it.Current), prefs.Unit),
			})
		}
		return t
	}

	t.Columns = []string{labelColumn, "Revised Budget", "Actual 2023", "Variance", "Variance %"}
	for _, it := range items {
		v := display.ComputeVariance(it.Current, it.Budget)
		t.Rows = append(t.Rows, []string{
			it.Label,
			display.Format(it.Budget, prefs.Unit),
			display.Format(nd(it.Current), prefs.Unit),
			display.FormatSigned(v.Absolute, prefs.Unit),
			display.FormatPercent(v.Percent),
		})
	}
	return t
}

// changeTable renders line items against the prior year: category, current,
// prior, change. With comparison off only the current column survives.
func changeTable(title, labelColumn, currentColumn, priorColumn string, items []domain.FinancialLineItem, prefs domain.DisplayPreferences) domain.Table {
	t := domain.Table{Title: title}
	if !prefs.ShowComparison {
		t.Columns = []string{labelColumn, currentColumn}
		for _, it := range items {
			t.Rows = append(t.Rows, []string{
				it.Label,
				display.Format(nd(it.Current), prefs.Unit),
			})
		}
		return t
	}

	t.Columns = []string{labelColumn, currentColumn, priorColumn, "Change", "Change %"}
	for _, it := range items {
		v := display.ComputeVariance(it.Current, it.Prior)
		t.Rows = append(t.Rows, []string{
			it.Label,
			display.Format(nd(it.Current), prefs.Unit),
			display.Format(it.Prior, prefs.Unit),
			display.FormatSigned(v.Absolute, prefs.Unit),
			display.FormatPercent(v.Percent),
		})
	}
	return t
}

// itemChart plots one group of line items, with an optional prior-year
// series when comparison display is on.
func itemChart(title string, kind domain.ChartKind, items []domain.FinancialLineItem, prefs domain.DisplayPreferences) domain.Chart {
	c := domain.Chart{Title: title, Kind: kind}
	current := make([]float64, 0, len(items))
	prior := make([]float64, 0, len(items))
	priorComplete := true

	for _, it := range items {
		c.Labels = append(c.Labels, it.Label)
		current = append(current, scale(it.Current, prefs.Unit))
		if it.Prior.Valid {
			prior = append(prior, scale(it.Prior.Decimal, prefs.Unit))
		} else {
			priorComplete = false
		}
	}

	c.Series = append(c.Series, domain.ChartSeries{Name: "2023", Values: current})
	if prefs.ShowComparison && priorComplete && kind != domain.ChartPie {
		c.Series = append(c.Series, domain.ChartSeries{Name: "2022", Values: prior})
	}
	return c
}
