package report

import (
	"context"
	"fmt"
	"sort"

	"github.com/fis-tools/fiscal-atlas/pkg/models/domain"
	"github.com/fis-tools/fiscal-atlas/pkg/services/audit"
	"github.com/fis-tools/fiscal-atlas/pkg/services/display"
	"github.com/shopspring/decimal"
)

const adverseOpinionNotice = "Adverse audit opinion issued: the financial statements do not give a true " +
	"and fair view of the financial position of the Government of Barbados as at March 31, 2023, " +
	"due to material misstatements and non-compliance with IPSAS."

func (a *Assembler) executiveSummary(ctx context.Context, prefs domain.DisplayPreferences) (domain.DisplayModel, error) {
	m, err := computeKeyMetrics(ctx, a.store)
	if err != nil {
		return domain.DisplayModel{}, err
	}
	findings, err := a.store.Findings(ctx)
	if err != nil {
		return domain.DisplayModel{}, err
	}

	model := domain.DisplayModel{
		View:   domain.ViewExecutiveSummary,
		Title:  "Executive Summary - Adverse Audit Opinion",
		Notice: adverseOpinionNotice,
		Metrics: []domain.Metric{
			metricOf("Total Revenue", m.TotalRevenue, prefs),
			metricOf("Total Expenditure", m.TotalExpenditure, prefs),
			metricOf(balanceLabel(m.FundBalance.Current), m.FundBalance, prefs),
			metricOf("Total Public Debt", m.TotalPublicDebt, prefs),
		},
		Charts:   []domain.Chart{summaryChart(m, prefs)},
		Findings: findingCards(findings, prefs),
	}
	return model, nil
}

func balanceLabel(balance decimal.Decimal) string {
	if balance.IsNegative() {
		return "Consolidated Fund Deficit"
	}
	return "Consolidated Fund Surplus"
}

func summaryChart(m keyMetrics, prefs domain.DisplayPreferences) domain.Chart {
	c := domain.Chart{
		Title:  "Revenue vs Expenditure",
		Kind:   domain.ChartGroupedBar,
		Labels: []string{"Revenue", "Expenditure"},
		Series: []domain.ChartSeries{{
			Name: "2023",
			Values: []float64{
				scale(m.TotalRevenue.Current, prefs.Unit),
				scale(m.TotalExpenditure.Current, prefs.Unit),
			},
		}},
	}
	if prefs.ShowComparison {
		c.Series = append(c.Series, domain.ChartSeries{
			Name: "2022",
			Values: []float64{
				scale(m.TotalRevenue.Prior, prefs.Unit),
				scale(m.TotalExpenditure.Prior, prefs.Unit),
			},
		})
	}
	return c
}

func (a *Assembler) revenue(ctx context.Context, prefs domain.DisplayPreferences) (domain.DisplayModel, error) {
	m, err := computeKeyMetrics(ctx, a.store)
	if err != nil {
		return domain.DisplayModel{}, err
	}
	revenue, err := a.store.LineItems(ctx, domain.GroupRevenue)
	if err != nil {
		return domain.DisplayModel{}, err
	}
	taxDetail, err := a.store.LineItems(ctx, domain.GroupTaxDetail)
	if err != nil {
		return domain.DisplayModel{}, err
	}

	receivablesShare := m.TaxReceivables.Current.
		Div(m.TotalAssets.Current).
		Mul(decimal.NewFromInt(100)).
		RoundBank(1)

	model := domain.DisplayModel{
		View:  domain.ViewRevenue,
		Title: "Revenue Analysis & Tax Performance",
		Notice: fmt.Sprintf(
			"Tax receivables of %s (%s%% of total assets) could not be confirmed because of the "+
				"absence of sufficient supporting documentation.",
			display.Format(nd(m.TaxReceivables.Current), prefs.Unit),
			receivablesShare,
		),
		Charts: []domain.Chart{
			itemChart("Revenue Composition by Source (2023)", domain.ChartPie, revenue, prefs),
			itemChart("Top 5 Tax Revenue Sources (2023)", domain.ChartBar, topN(taxDetail, 5), prefs),
		},
		Tables: []domain.Table{
			budgetTable("Revenue Performance Details", "Revenue Category", revenue, prefs),
			changeTable("Tax Revenue Performance", "Tax Type", "Actual 2023", "Actual 2022", taxDetail, prefs),
		},
	}
	return model, nil
}

// topN returns the n largest items by current-year amount, largest first.
func topN(items []domain.FinancialLineItem, n int) []domain.FinancialLineItem {
	sorted := make([]domain.FinancialLineItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Current.GreaterThan(sorted[j].Current)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

func (a *Assembler) expenditure(ctx context.Context, prefs domain.DisplayPreferences) (domain.DisplayModel, error) {
	items, err := a.store.LineItems(ctx, domain.GroupExpenditure)
	if err != nil {
		return domain.DisplayModel{}, err
	}

	byLabel := func(labels ...string) decimal.Decimal {
		var total decimal.Decimal
		for _, it := range items {
			for _, l := range labels {
				if it.Label == l {
					total = total.Add(it.Current)
				}
			}
		}
		return total
	}

	model := domain.DisplayModel{
		View:  domain.ViewExpenditure,
		Title: "Government Expenditure Analysis",
		Metrics: []domain.Metric{
			plainMetric("Personnel Costs",
				byLabel("Payroll and Employee Benefits", "Retiring Benefits and Allowances"), prefs),
			plainMetric("Grants & Transfers",
				byLabel("Grants and Other Current Transfers", "Capital Transfers"), prefs),
			plainMetric("Operating Expenses",
				byLabel("Goods and Services", "Depreciation", "Bad Debt Expense"), prefs),
			plainMetric("Debt Service", byLabel("Debt Service"), prefs),
		},
		Charts: []domain.Chart{
			itemChart("Expenditure Composition by Category (2023)", domain.ChartPie, items, prefs),
		},
		Tables: []domain.Table{
			budgetTable("Expenditure Performance vs Budget", "Expenditure Category", items, prefs),
		},
	}
	return model, nil
}

func (a *Assembler) balanceSheet(ctx context.Context, prefs domain.DisplayPreferences) (domain.DisplayModel, error) {
	m, err := computeKeyMetrics(ctx, a.store)
	if err != nil {
		return domain.DisplayModel{}, err
	}
	assets, err := a.store.LineItems(ctx, domain.GroupAssets)
	if err != nil {
		return domain.DisplayModel{}, err
	}
	liabilities, err := a.store.LineItems(ctx, domain.GroupLiabilities)
	if err != nil {
		return domain.DisplayModel{}, err
	}

	currentAssets := itemPair(assets, "Current Assets")
	nonCurrentAssets := itemPair(assets, "Non-Current Assets")

	model := domain.DisplayModel{
		View:  domain.ViewBalanceSheet,
		Title: "Statement of Financial Position Analysis",
		Metrics: []domain.Metric{
			metricOf("Total Assets", m.TotalAssets, prefs),
			metricOf("Total Liabilities", m.TotalLiabilities, prefs),
			metricOf("Net Position", m.NetPosition, prefs),
		},
		Charts: []domain.Chart{{
			Title:  "Asset Distribution",
			Kind:   domain.ChartPie,
			Labels: []string{"Current Assets", "Non-Current Assets"},
			Series: []domain.ChartSeries{{
				Name: "2023",
				Values: []float64{
					scale(currentAssets.Current, prefs.Unit),
					scale(nonCurrentAssets.Current, prefs.Unit),
				},
			}},
		}},
		Tables: []domain.Table{
			changeTable("Assets", "Asset Item", "Mar 2023", "Mar 2022", assets, prefs),
			changeTable("Liabilities", "Liability Item", "Mar 2023", "Mar 2022", liabilities, prefs),
		},
	}
	return model, nil
}

func (a *Assembler) auditFindings(ctx context.Context, prefs domain.DisplayPreferences) (domain.DisplayModel, error) {
	findings, err := a.store.Findings(ctx)
	if err != nil {
		return domain.DisplayModel{}, err
	}
	issues, err := a.store.ComplianceIssues(ctx)
	if err != nil {
		return domain.DisplayModel{}, err
	}

	model := domain.DisplayModel{
		View:   domain.ViewAuditFindings,
		Title:  "Audit Findings & Material Misstatements",
		Notice: adverseOpinionNotice,
		Metrics: []domain.Metric{{
			Label: "Audit Issues",
			Value: fmt.Sprintf("%d", len(findings)),
		}},
		Findings: findingCards(findings, prefs),
		Issues:   issues,
	}
	return model, nil
}

func findingCards(findings []domain.AuditFinding, prefs domain.DisplayPreferences) []domain.FindingCard {
	cards := make([]domain.FindingCard, 0, len(findings))
	for _, f := range findings {
		amount := display.Placeholder
		if f.Magnitude.Valid {
			amount = display.Format(f.Magnitude, prefs.Unit)
		}
		cards = append(cards, domain.FindingCard{
			Title:       f.Title,
			Description: f.Description,
			Impact:      f.Impact,
			Amount:      amount,
			Category:    f.Category,
			Severity:    audit.Classify(f),
		})
	}
	return cards
}

// domesticInstruments identifies the locally issued slice of the public
// debt; everything else counts as foreign.
var domesticInstruments = map[string]bool{
	"Local Loans Act":          true,
	"Treasury Bills":           true,
	"Savings Bond Act":         true,
	"Ways & Means (Overdraft)": true,
}

func (a *Assembler) debt(ctx context.Context, prefs domain.DisplayPreferences) (domain.DisplayModel, error) {
	m, err := computeKeyMetrics(ctx, a.store)
	if err != nil {
		return domain.DisplayModel{}, err
	}
	debt, err := a.store.LineItems(ctx, domain.GroupDebt)
	if err != nil {
		return domain.DisplayModel{}, err
	}
	debtService, err := a.store.LineItems(ctx, domain.GroupDebtService)
	if err != nil {
		return domain.DisplayModel{}, err
	}

	var domestic, foreign decimal.Decimal
	for _, it := range debt {
		if domesticInstruments[it.Label] {
			domestic = domestic.Add(it.Current)
		} else {
			foreign = foreign.Add(it.Current)
		}
	}

	serviceRatio := m.DebtService.Current.
		Div(m.TotalRevenue.Current).
		Mul(decimal.NewFromInt(100)).
		RoundBank(1)

	model := domain.DisplayModel{
		View:  domain.ViewDebt,
		Title: "Public Debt Analysis",
		Metrics: []domain.Metric{
			metricOf("Total Public Debt", m.TotalPublicDebt, prefs),
			metricOf("Net Debt Position", m.NetDebt, prefs),
			{
				Label: "Debt Service to Revenue",
				Value: serviceRatio.String() + "%",
			},
		},
		Charts: []domain.Chart{
			itemChart("Public Debt by Type (2023)", domain.ChartBar, debt, prefs),
			{
				Title:  "Domestic vs Foreign Debt",
				Kind:   domain.ChartPie,
				Labels: []string{"Domestic Debt", "Foreign Debt"},
				Series: []domain.ChartSeries{{
					Name: "2023",
					Values: []float64{
						scale(domestic, prefs.Unit),
						scale(foreign, prefs.Unit),
					},
				}},
			},
		},
		Tables: []domain.Table{
			changeTable("Public Debt Structure", "Debt Type", "2023", "2022", debt, prefs),
			changeTable("Debt Service Analysis", "Category", "2023", "2022", debtService, prefs),
		},
	}
	return model, nil
}

func (a *Assembler) transfers(ctx context.Context, prefs domain.DisplayPreferences) (domain.DisplayModel, error) {
	transfers, err := a.store.Transfers(ctx)
	if err != nil {
		return domain.DisplayModel{}, err
	}

	var totalCurrent, totalCapital decimal.Decimal
	for _, t := range transfers {
		totalCurrent = totalCurrent.Add(t.Current)
		totalCapital = totalCapital.Add(t.Capital)
	}
	total := totalCurrent.Add(totalCapital)

	ranked := make([]domain.EntityTransfer, len(transfers))
	copy(ranked, transfers)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total().GreaterThan(ranked[j].Total())
	})

	rankedChart := domain.Chart{
		Title: "Transfers by State-Owned Entity",
		Kind:  domain.ChartBar,
	}
	values := make([]float64, 0, len(ranked))
	for _, t := range ranked {
		rankedChart.Labels = append(rankedChart.Labels, t.Entity)
		values = append(values, scale(t.Total(), prefs.Unit))
	}
	rankedChart.Series = []domain.ChartSeries{{Name: "2023", Values: values}}

	table := domain.Table{
		Title:   "SOE Transfer Details",
		Columns: []string{"State-Owned Entity", "Current Transfers", "Capital Transfers", "Total Transfers"},
	}
	for _, t := range transfers {
		table.Rows = append(table.Rows, []string{
			t.Entity,
			display.Format(nd(t.Current), prefs.Unit),
			display.Format(nd(t.Capital), prefs.Unit),
			display.Format(nd(t.Total()), prefs.Unit),
		})
	}

	model := domain.DisplayModel{
		View:  domain.ViewTransfers,
		Title: "State-Owned Enterprise Transfers",
		Notice: fmt.Sprintf(
			"IPSAS violation: state-owned entities were not consolidated into the financial "+
				"statements. %s in transfers is not properly accounted for.",
			display.Format(nd(total), prefs.Unit),
		),
		Metrics: []domain.Metric{
			plainMetric("Total Transfers to SOEs", total, prefs),
			plainMetric("Current Transfers", totalCurrent, prefs),
			plainMetric("Capital Transfers", totalCapital, prefs),
		},
		Charts: []domain.Chart{
			rankedChart,
			{
				Title:  "Current vs Capital Transfers",
				Kind:   domain.ChartPie,
				Labels: []string{"Current Transfers", "Capital Transfers"},
				Series: []domain.ChartSeries{{
					Name: "2023",
					Values: []float64{
						scale(totalCurrent, prefs.Unit),
						scale(totalCapital, prefs.Unit),
					},
				}},
			},
		},
		Tables: []domain.Table{table},
	}
	return model, nil
}

func (a *Assembler) performance(ctx context.Context, prefs domain.DisplayPreferences) (domain.DisplayModel, error) {
	m, err := computeKeyMetrics(ctx, a.store)
	if err != nil {
		return domain.DisplayModel{}, err
	}

	metrics := []domain.Metric{
		metricOf("Tax Collection", m.TaxCollection, prefs),
		metricOf("Debt Service", m.DebtService, prefs),
		metricOf("Capital Transfers", m.CapitalTransfers, prefs),
	}
	if prefs.ShowComparison {
		// Revenue growth is itself a comparison figure, so the card only
		// exists when comparison display is on.
		growth := display.ComputeVariance(m.TotalRevenue.Current, m.TotalRevenue.priorOpt())
		metrics = append([]domain.Metric{{
			Label: "Revenue Growth",
			Value: display.FormatSigned(growth.Absolute, prefs.Unit),
			Delta: display.FormatPercent(growth.Percent),
			Trend: display.TrendOf(growth),
		}}, metrics...)
	}

	kpis := []struct {
		label string
		pair  yearPair
	}{
		{"Total Revenue", m.TotalRevenue},
		{"Tax Revenue", m.TaxCollection},
		{"Total Expenditure", m.TotalExpenditure},
		{"Debt Service", m.DebtService},
		{"Net Balance", m.FundBalance},
	}

	table := domain.Table{Title: "Key Performance Indicators"}
	chart := domain.Chart{
		Title: "Key Performance Indicators (2023)",
		Kind:  domain.ChartGroupedBar,
	}
	if prefs.ShowComparison {
		chart.Title = "Key Performance Indicators (2022 vs 2023)"
	}
	current := make([]float64, 0, len(kpis))
	prior := make([]float64, 0, len(kpis))

	if prefs.ShowComparison {
		table.Columns = []string{"Metric", "2023", "2022", "Change", "Change %"}
	} else {
		table.Columns = []string{"Metric", "2023"}
	}

	for _, kpi := range kpis {
		chart.Labels = append(chart.Labels, kpi.label)
		current = append(current, scale(kpi.pair.Current, prefs.Unit))
		prior = append(prior, scale(kpi.pair.Prior, prefs.Unit))

		if !prefs.ShowComparison {
			table.Rows = append(table.Rows, []string{
				kpi.label,
				display.Format(nd(kpi.pair.Current), prefs.Unit),
			})
			continue
		}
		v := display.ComputeVariance(kpi.pair.Current, kpi.pair.priorOpt())
		table.Rows = append(table.Rows, []string{
			kpi.label,
			display.Format(nd(kpi.pair.Current), prefs.Unit),
			display.Format(kpi.pair.priorOpt(), prefs.Unit),
			display.FormatSigned(v.Absolute, prefs.Unit),
			display.FormatPercent(v.Percent),
		})
	}

	chart.Series = []domain.ChartSeries{{Name: "2023", Values: current}}
	if prefs.ShowComparison {
		chart.Series = append(chart.Series, domain.ChartSeries{Name: "2022", Values: prior})
	}

	model := domain.DisplayModel{
		View:    domain.ViewPerformance,
		Title:   "Performance Highlights",
		Metrics: metrics,
		Tables:  []domain.Table{table},
		Charts:  []domain.Chart{chart},
	}
	return model, nil
}
