package report

import (
	"context"

	"github.com/fis-tools/fiscal-atlas/pkg/models/domain"
	"github.com/fis-tools/fiscal-atlas/pkg/store/fiscal"
	"github.com/shopspring/decimal"
)

// yearPair carries a figure for both fiscal years.
type yearPair struct {
	Current decimal.Decimal
	Prior   decimal.Decimal
}

func (p yearPair) priorOpt() decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: p.Prior, Valid: true}
}

// keyMetrics are the headline figures derived from the statements. They are
// recomputed from the store per request rather than stored, so they can
// never drift from the underlying line items.
type keyMetrics struct {
	TotalRevenue     yearPair
	TotalExpenditure yearPair
	FundBalance      yearPair // revenue less expenditure
	TotalAssets      yearPair
	TotalLiabilities yearPair
	NetPosition      yearPair
	NetDebt          yearPair // liabilities less financial assets
	TotalPublicDebt  yearPair
	TaxReceivables   yearPair
	DebtService      yearPair
	CapitalTransfers yearPair
	TaxCollection    yearPair
}

func computeKeyMetrics(ctx context.Context, store fiscal.Store) (keyMetrics, error) {
	var m keyMetrics

	revenue, err := store.LineItems(ctx, domain.GroupRevenue)
	if err != nil {
		return m, err
	}
	expenditure, err := store.LineItems(ctx, domain.GroupExpenditure)
	if err != nil {
		return m, err
	}
	assets, err := store.LineItems(ctx, domain.GroupAssets)
	if err != nil {
		return m, err
	}
	liabilities, err := store.LineItems(ctx, domain.GroupLiabilities)
	if err != nil {
		return m, err
	}
	debt, err := store.LineItems(ctx, domain.GroupDebt)
	if err != nil {
		return m, err
	}

	m.TotalRevenue = sumItems(revenue)
	m.TotalExpenditure = sumItems(expenditure)
	m.FundBalance = yearPair{
		Current: m.TotalRevenue.Current.Sub(m.TotalExpenditure.Current),
		Prior:   m.TotalRevenue.Prior.Sub(m.TotalExpenditure.Prior),
	}

	// The position statement nests subtotals under its two top-level
	// headings; totals come from the headings, not from re-adding details.
	currentAssets := itemPair(assets, "Current Assets")
	nonCurrentAssets := itemPair(assets, "Non-Current Assets")
	financialAssets := itemPair(assets, "Financial Assets")
	m.TotalAssets = addPairs(currentAssets, nonCurrentAssets)

	currentLiabilities := itemPair(liabilities, "Current Liabilities")
	longTermLiabilities := itemPair(liabilities, "Long-term Liabilities")
	m.TotalLiabilities = addPairs(currentLiabilities, longTermLiabilities)

	m.NetPosition = yearPair{
		Current: m.TotalAssets.Current.Sub(m.TotalLiabilities.Current),
		Prior:   m.TotalAssets.Prior.Sub(m.TotalLiabilities.Prior),
	}
	m.NetDebt = yearPair{
		Current: m.TotalLiabilities.Current.Sub(currentAssets.Current.Add(financialAssets.Current)),
		Prior:   m.TotalLiabilities.Prior.Sub(currentAssets.Prior.Add(financialAssets.Prior)),
	}

	m.TotalPublicDebt = sumItems(debt)
	m.TaxReceivables = itemPair(assets, "Tax Receivables (Net)")
	m.DebtService = itemPair(expenditure, "Debt Service")
	m.CapitalTransfers = itemPair(expenditure, "Capital Transfers")
	m.TaxCollection = itemPair(revenue, "Taxation")

	return m, nil
}

func sumItems(items []domain.FinancialLineItem) yearPair {
	var p yearPair
	for _, it := range items {
		p.Current = p.Current.Add(it.Current)
		if it.Prior.Valid {
			p.Prior = p.Prior.Add(it.Prior.Decimal)
		}
	}
	return p
}

// itemPair returns the first item with the given label. Labels repeat in the
// position statement, so first match wins.
func itemPair(items []domain.FinancialLineItem, label string) yearPair {
	for _, it := range items {
		if it.Label == label {
			p := yearPair{Current: it.Current}
			if it.Prior.Valid {
				p.Prior = it.Prior.Decimal
			}
			return p
		}
	}
	return yearPair{}
}

func addPairs(a, b yearPair) yearPair {
	return yearPair{
		Current: a.Current.Add(b.Current),
		Prior:   a.Prior.Add(b.Prior),
	}
}
