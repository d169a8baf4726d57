package report

import (
	"context"
	"errors"
	"testing"

	"github.com/fis-tools/fiscal-atlas/pkg/models/domain"
	"github.com/fis-tools/fiscal-atlas/pkg/store/static"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) LineItems(ctx context.Context, group domain.Group) ([]domain.FinancialLineItem, error) {
	args := m.Called(ctx, group)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialLineItem), args.Error(1)
}

func (m *mockStore) Findings(ctx context.Context) ([]domain.AuditFinding, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.AuditFinding), args.Error(1)
}

func (m *mockStore) ComplianceIssues(ctx context.Context) ([]domain.ComplianceIssue, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ComplianceIssue), args.Error(1)
}

func (m *mockStore) Transfers(ctx context.Context) ([]domain.EntityTransfer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EntityTransfer), args.Error(1)
}

func prefsWith(unit domain.Unit, comparison bool) domain.DisplayPreferences {
	return domain.DisplayPreferences{Unit: unit, ShowComparison: comparison}
}

func TestAssemble_AllViews(t *testing.T) {
	ctx := context.Background()
	assembler := NewAssembler(static.NewStore())
	prefs := prefsWith(domain.UnitMillions, true)

	for _, view := range domain.Views() {
		t.Run(string(view), func(t *testing.T) {
			model, err := assembler.Assemble(ctx, view, prefs)

			require.NoError(t, err)
			assert.Equal(t, view, model.View)
			assert.NotEmpty(t, model.Title)
			assert.True(t,
				len(model.Metrics) > 0 || len(model.Tables) > 0 || len(model.Findings) > 0,
				"view must carry some content")

			for _, table := range model.Tables {
				for _, row := range table.Rows {
					assert.Len(t, row, len(table.Columns), "table %q", table.Title)
				}
			}
			for _, chart := range model.Charts {
				for _, series := range chart.Series {
					assert.Len(t, series.Values, len(chart.Labels), "chart %q", chart.Title)
				}
			}
		})
	}
}

func TestAssemble_UnknownView(t *testing.T) {
	assembler := NewAssembler(static.NewStore())

	_, err := assembler.Assemble(context.Background(), domain.ViewKind("ledger"), prefsWith(domain.UnitMillions, true))
	assert.Error(t, err)
}

func TestAssemble_ExecutiveSummary(t *testing.T) {
	assembler := NewAssembler(static.NewStore())

	model, err := assembler.Assemble(context.Background(), domain.ViewExecutiveSummary, prefsWith(domain.UnitMillions, true))
	require.NoError(t, err)

	require.Len(t, model.Metrics, 4)
	assert.Equal(t, "Total Revenue", model.Metrics[0].Label)
	assert.Equal(t, "$6,696.0M", model.Metrics[0].Value)
	assert.Equal(t, domain.TrendUp, model.Metrics[0].Trend)

	// Revenue exceeded expenditure in FY2023, so the balance card reads as
	// a surplus.
	assert.Equal(t, "Consolidated Fund Surplus", model.Metrics[2].Label)

	assert.NotEmpty(t, model.Notice)
	require.Len(t, model.Charts, 1)
	require.Len(t, model.Charts[0].Series, 2)
	assert.Equal(t, "2023", model.Charts[0].Series[0].Name)
	assert.Equal(t, "2022", model.Charts[0].Series[1].Name)

	assert.Len(t, model.Findings, 7)
}

func TestAssemble_RevenueBudgetVariance(t *testing.T) {
	assembler := NewAssembler(static.NewStore())

	model, err := assembler.Assemble(context.Background(), domain.ViewRevenue, prefsWith(domain.UnitMillions, true))
	require.NoError(t, err)

	require.NotEmpty(t, model.Tables)
	perf := model.Tables[0]
	assert.Equal(t, []string{"Revenue Category", "Revised Budget", "Actual 2023", "Variance", "Variance %"}, perf.Columns)

	require.NotEmpty(t, perf.Rows)
	taxation := perf.Rows[0]
	assert.Equal(t, "Taxation", taxation[0])
	assert.Equal(t, "$2,977.4M", taxation[1])
	assert.Equal(t, "$3,209.9M", taxation[2])
	assert.Equal(t, "+$232.6M", taxation[3])
	assert.Equal(t, "+7.8%", taxation[4])
}

func TestAssemble_RevenueTopTaxSources(t *testing.T) {
	assembler := NewAssembler(static.NewStore())

	model, err := assembler.Assemble(context.Background(), domain.ViewRevenue, prefsWith(domain.UnitMillions, true))
	require.NoError(t, err)

	require.Len(t, model.Charts, 2)
	top := model.Charts[1]
	require.Len(t, top.Labels, 5)
	assert.Equal(t, "VAT (Net)", top.Labels[0])
}

func TestAssemble_FindingSeverities(t *testing.T) {
	assembler := NewAssembler(static.NewStore())

	model, err := assembler.Assemble(context.Background(), domain.ViewAuditFindings, prefsWith(domain.UnitBillions, true))
	require.NoError(t, err)

	bySeverity := map[string]domain.Severity{}
	for _, f := range model.Findings {
		bySeverity[f.Title] = f.Severity
	}

	assert.Equal(t, domain.SeverityCritical, bySeverity["Tax Receivables Unverified"])
	assert.Equal(t, domain.SeverityHigh, bySeverity["Other Capital Assets Discrepancy"])
	assert.Equal(t, domain.SeverityMedium, bySeverity["Bad Debt Expenses Unverified"])
	assert.Equal(t, domain.SeverityHigh, bySeverity["Pension Liabilities Omitted"])
	assert.Equal(t, domain.SeverityHigh, bySeverity["Non-Consolidation of SOEs"])

	assert.Len(t, model.Issues, 4)
}

func TestAssemble_DebtServiceRatio(t *testing.T) {
	assembler := NewAssembler(static.NewStore())

	model, err := assembler.Assemble(context.Background(), domain.ViewDebt, prefsWith(domain.UnitBillions, true))
	require.NoError(t, err)

	require.Len(t, model.Metrics, 3)
	assert.Equal(t, "Debt Service to Revenue", model.Metrics[2].Label)
	assert.Equal(t, "8.5%", model.Metrics[2].Value)
}

func TestAssemble_TransfersRanking(t *testing.T) {
	assembler := NewAssembler(static.NewStore())

	model, err := assembler.Assemble(context.Background(), domain.ViewTransfers, prefsWith(domain.UnitMillions, true))
	require.NoError(t, err)

	require.NotEmpty(t, model.Charts)
	ranked := model.Charts[0]
	require.Len(t, ranked.Labels, 10)
	assert.Equal(t, "Queen Elizabeth Hospital", ranked.Labels[0])

	require.Len(t, model.Tables, 1)
	assert.Len(t, model.Tables[0].Rows, 10)
}

// comparison column headings that must never appear when comparison display
// is off.
var comparisonColumns = map[string]bool{
	"Revised Budget": true,
	"Variance":       true,
	"Variance %":     true,
	"Change":         true,
	"Change %":       true,
	"Actual 2022":    true,
	"Mar 2022":       true,
	"2022":           true,
}

func TestAssemble_ComparisonOffOmitsComparisonFields(t *testing.T) {
	ctx := context.Background()
	assembler := NewAssembler(static.NewStore())
	prefs := prefsWith(domain.UnitMillions, false)

	for _, view := range domain.Views() {
		t.Run(string(view), func(t *testing.T) {
			model, err := assembler.Assemble(ctx, view, prefs)
			require.NoError(t, err)

			for _, metric := range model.Metrics {
				assert.Empty(t, metric.Delta, "metric %q", metric.Label)
				assert.NotEqual(t, "Revenue Growth", metric.Label)
			}
			for _, table := range model.Tables {
				for _, column := range table.Columns {
					assert.False(t, comparisonColumns[column],
						"table %q leaks comparison column %q", table.Title, column)
				}
				for _, row := range table.Rows {
					assert.Len(t, row, len(table.Columns))
				}
			}
			for _, chart := range model.Charts {
				for _, series := range chart.Series {
					assert.NotEqual(t, "2022", series.Name, "chart %q leaks prior-year series", chart.Title)
				}
			}
		})
	}
}

func TestAssemble_StoreErrorPropagates(t *testing.T) {
	ctx := context.Background()
	store := new(mockStore)
	store.On("LineItems", ctx, mock.AnythingOfType("domain.Group")).
		Return(nil, errors.New("backing source unavailable"))

	assembler := NewAssembler(store)

	_, err := assembler.Assemble(ctx, domain.ViewRevenue, prefsWith(domain.UnitMillions, true))
	assert.Error(t, err)
}
