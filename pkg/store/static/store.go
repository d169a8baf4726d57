// Package static holds the figures transcribed from the Auditor General's
// report on the Government of Barbados financial statements for the year
// ended March 31, 2023. The dataset is compiled into the binary; this store
// is the single implementation of the fiscal.Store boundary.
package static

import (
	"context"
	"fmt"

	"github.com/fis-tools/fiscal-atlas/pkg/models/domain"
	"github.com/fis-tools/fiscal-atlas/pkg/store/fiscal"
	"github.com/shopspring/decimal"
)

type store struct {
	items     map[domain.Group][]domain.FinancialLineItem
	findings  []domain.AuditFinding
	issues    []domain.ComplianceIssue
	transfers []domain.EntityTransfer
}

// NewStore builds the in-memory dataset. Construction happens once at
// startup; every accessor returns copies so the backing slices stay
// immutable.
func NewStore() fiscal.Store {
	return &store{
		items: map[domain.Group][]domain.FinancialLineItem{
			domain.GroupRevenue:     revenueItems(),
			domain.GroupExpenditure: expenditureItems(),
			domain.GroupAssets:      assetItems(),
			domain.GroupLiabilities: liabilityItems(),
			domain.GroupDebt:        debtItems(),
			domain.GroupTaxDetail:   taxDetailItems(),
			domain.GroupDebtService: debtServiceItems(),
		},
		findings:  adverseOpinionFindings(),
		issues:    ipsasIssues(),
		transfers: soeTransfers(),
	}
}

func (s *store) LineItems(_ context.Context, group domain.Group) ([]domain.FinancialLineItem, error) {
	items, ok := s.items[group]
	if !ok {
		return nil, fmt.Errorf("unknown statement group %q", group)
	}
	out := make([]domain.FinancialLineItem, len(items))
	copy(out, items)
	return out, nil
}

func (s *store) Findings(_ context.Context) ([]domain.AuditFinding, error) {
	out := make([]domain.AuditFinding, len(s.findings))
	copy(out, s.findings)
	return out, nil
}

func (s *store) ComplianceIssues(_ context.Context) ([]domain.ComplianceIssue, error) {
	out := make([]domain.ComplianceIssue, len(s.issues))
	copy(out, s.issues)
	return out, nil
}

func (s *store) Transfers(_ context.Context) ([]domain.EntityTransfer, error) {
	out := make([]domain.EntityTransfer, len(s.transfers))
	copy(out, s.transfers)
	return out, nil
}

func amt(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func opt(v int64) decimal.NullDecimal {
	return decimal.NullDecimal{Decimal: decimal.NewFromInt(v), Valid: true}
}

func none() decimal.NullDecimal {
	return decimal.NullDecimal{}
}

func line(group domain.Group, label string, current int64, prior, budget decimal.NullDecimal) domain.FinancialLineItem {
	return domain.FinancialLineItem{
		Group:   group,
		Label:   label,
		Current: amt(current),
		Prior:   prior,
		Budget:  budget,
	}
}

// Statement of Financial Performance, revenue by source. Current is actual
// FY2023, prior is actual FY2022, budget is the revised 2023 estimate.
func revenueItems() []domain.FinancialLineItem {
	g := domain.GroupRevenue
	return []domain.FinancialLineItem{
		line(g, "Taxation", 3209934907, opt(2587338338), opt(2977381493)),
		line(g, "Goods and Services", 1628078161, opt(1257284226), opt(1463856504)),
		line(g, "Income and Profits", 1068849288, opt(861692875), opt(1024520055)),
		line(g, "Property Taxes", 240517833, opt(223959932), opt(227384934)),
		line(g, "International Trade", 250253724, opt(231008360), opt(241200000)),
		line(g, "Other Taxes", 22235902, opt(13392945), opt(20420000)),
		line(g, "Levies, Fees and Fines", 83376897, opt(-39531402), opt(69614799)),
		line(g, "Special Receipts", 1905632, opt(-90224420), opt(2312561)),
		line(g, "Other Revenue", 170882782, opt(153071264), opt(164208584)),
		line(g, "Grants", 20000000, opt(0), opt(25700000)),
	}
}

func expenditureItems() []domain.FinancialLineItem {
	g := domain.GroupExpenditure
	return []domain.FinancialLineItem{
		line(g, "Payroll and Employee Benefits", 863924381, opt(828005895), opt(915064501)),
		line(g, "Goods and Services", 545212668, opt(653615712), opt(655380977)),
		line(g, "Depreciation", 49626566, opt(43277406), opt(54000000)),
		line(g, "Bad Debt Expense", 68281611, opt(9880606), opt(989555)),
		line(g, "Retiring Benefits and Allowances", 333644842, opt(340245554), opt(387655291)),
		line(g, "Grants and Other Current Transfers", 910661649, opt(831432691), opt(675353637)),
		line(g, "Other Statutory Expenditure", 4554557, opt(7489232), opt(1970000)),
		line(g, "Capital Transfers", 241950953, opt(268894435), opt(281518344)),
		line(g, "Debt Service", 568277615, opt(391453035), opt(691711905)),
	}
}

// Statement of Financial Position, asset side. No budget figures are
// published for position items.
func assetItems() []domain.FinancialLineItem {
	g := domain.GroupAssets
	return []domain.FinancialLineItem{
		line(g, "Current Assets", 3735288225, opt(3476483879), none()),
		line(g, "Financial Assets", 3734618402, opt(3475932368), none()),
		line(g, "Cash on Hand", 152830846, opt(101071094), none()),
		line(g, "Bank", 759489160, opt(620329896), none()),
		line(g, "Tax Receivables (Net)", 2428696065, opt(2384625679), none()),
		line(g, "Other Receivables (Net)", 254774883, opt(231248217), none()),
		line(g, "Restricted cash", 138827448, opt(138657482), none()),
		line(g, "Non-Current Assets", 4337385833, opt(4077323452), none()),
		line(g, "Financial Assets", 609280459, opt(439248332), none()),
		line(g, "Sinking Fund Assets", 60998391, opt(30094107), none()),
		line(g, "Investments", 529021234, opt(381209361), none()),
		line(g, "Non Financial Assets", 3728105374, opt(3638075120), none()),
		line(g, "Land", 1445313783, opt(1443906209), none()),
		line(g, "Other capital assets (Net)", 2282791591, opt(2194168911), none()),
	}
}

func liabilityItems() []domain.FinancialLineItem {
	g := domain.GroupLiabilities
	return []domain.FinancialLineItem{
		line(g, "Current Liabilities", 2131488223, opt(1877339098), none()),
		line(g, "Overdraft Facility", 167110481, opt(214985000), none()),
		line(g, "Accounts Payable", 82010933, opt(33894156), none()),
		line(g, "Refunds Payable", 530063724, opt(522864905), none()),
		line(g, "Pension Liability", 5573965, opt(5382182), none()),
		line(g, "Deposits", 170086214, opt(163215273), none()),
		line(g, "Treasury Bills", 495103750, opt(495103750), none()),
		line(g, "Current Portion of Long term debt", 661885235, opt(408361016), none()),
		line(g, "Long-term Liabilities", 12799271087, opt(12306018215), none()),
		line(g, "Government Securities", 8572467834, opt(8781379378), none()),
		line(g, "Other Local Debt", 101315000, opt(101315000), none()),
		line(g, "Loans from International Financial Institutions", 3194580072, opt(2795720352), none()),
		line(g, "Loans from Other Governments", 376309795, opt(312635489), none()),
		line(g, "Other Foreign Debt", 416416319, opt(178010652), none()),
	}
}

// Public debt by issuing instrument.
func debtItems() []domain.FinancialLineItem {
	g := domain.GroupDebt
	return []domain.FinancialLineItem{
		line(g, "Local Loans Act", 7745270000, opt(7871410000), none()),
		line(g, "External Loans Act", 1061170000, opt(1061170000), none()),
		line(g, "Caribbean Development Bank", 483540000, opt(469380000), none()),
		line(g, "Inter American Development Bank", 1814760000, opt(1499660000), none()),
		line(g, "Special Loans Act", 890940000, opt(810080000), none()),
		line(g, "Treasury Bills", 495100000, opt(495100000), none()),
		line(g, "Savings Bond Act", 32230000, opt(47290000), none()),
		line(g, "International Monetary Fund", 548410000, opt(464770000), none()),
		line(g, "Latin American Development Bank", 357430000, opt(340600000), none()),
		line(g, "Ways & Means (Overdraft)", 167150000, opt(214990000), none()),
	}
}

func taxDetailItems() []domain.FinancialLineItem {
	g := domain.GroupTaxDetail
	return []domain.FinancialLineItem{
		line(g, "Income and Profits - Individuals", 545610497, opt(429779367), none()),
		line(g, "Income and Profits - Corporation", 485674857, opt(394168620), none()),
		line(g, "Withholding Tax", 37563935, opt(37744944), none()),
		line(g, "VAT (Net)", 1156630063, opt(874397904), none()),
		line(g, "Excise Duty", 251622393, opt(204941594), none()),
		line(g, "Highway Revenue", 16612103, opt(15628435), none()),
		line(g, "Other Goods & Services", 203213603, opt(162416302), none()),
		line(g, "Land Tax (Net)", 211157762, opt(203072475), none()),
		line(g, "Property Transfer Tax", 29360071, opt(20887457), none()),
		line(g, "Import Duties (Net)", 250253724, opt(231002875), none()),
		line(g, "Stamp Duty", 22235902, opt(13392945), none()),
	}
}

func debtServiceItems() []domain.FinancialLineItem {
	g := domain.GroupDebtService
	return []domain.FinancialLineItem{
		line(g, "Interest Expense - Domestic", 372283237, opt(258748956), none()),
		line(g, "Interest Expense - Foreign", 182429845, opt(125213222), none()),
		line(g, "Total Interest", 554713083, opt(383962718), none()),
		line(g, "Expenses of Loans", 13564532, opt(7490317), none()),
		line(g, "Total Debt Service", 568277615, opt(391453035), none()),
	}
}

// Basis for the adverse opinion, as extracted from the Auditor General's
// report. Severity is derived downstream, never recorded here.
func adverseOpinionFindings() []domain.AuditFinding {
	return []domain.AuditFinding{
		{
			Title:       "Other Capital Assets Discrepancy",
			Description: "Difference of $719 million between amounts reported in the financial statements and the corresponding figures in the subsidiary records.",
			Impact:      "Overstated Assets",
			Magnitude:   opt(719000000),
			Category:    domain.CategoryMisstatement,
		},
		{
			Title:       "Cash Overstatement",
			Description: "Cash listed in the financial statements was overstated by $115 million.",
			Impact:      "Overstated Current Assets",
			Magnitude:   opt(115000000),
			Category:    domain.CategoryMisstatement,
		},
		{
			Title:       "Financial Investments Overstatement",
			Description: "Financial investments were overstated by $147 million.",
			Impact:      "Overstated Investments",
			Magnitude:   opt(147000000),
			Category:    domain.CategoryMisstatement,
		},
		{
			Title:       "Pension Liabilities Omitted",
			Description: "The liability for pensions and employee benefits was not included in the Statement of Financial Position.",
			Impact:      "Understated Liabilities",
			Magnitude:   none(),
			Category:    domain.CategoryOmission,
		},
		{
			Title:       "Tax Receivables Unverified",
			Description: "Tax receivables of $2.43 billion could not be confirmed because of the absence of sufficient supporting documentation.",
			Impact:      "Overstated Receivables",
			Magnitude:   opt(2430000000),
			Category:    domain.CategoryMisstatement,
		},
		{
			Title:       "Bad Debt Expenses Unverified",
			Description: "Bad debt expenses of $68.28 million could not be confirmed because of the absence of sufficient supporting documentation.",
			Impact:      "Potential Overstated Expenses",
			Magnitude:   opt(68280000),
			Category:    domain.CategoryComplianceFailure,
		},
		{
			Title:       "Non-Consolidation of SOEs",
			Description: "The accounts of the State-owned Entities were not consolidated into the financial statements as required by IPSAS.",
			Impact:      "Incomplete Financial Statements",
			Magnitude:   none(),
			Category:    domain.CategoryConsolidationViolation,
		},
	}
}

func ipsasIssues() []domain.ComplianceIssue {
	return []domain.ComplianceIssue{
		{
			Requirement: "Consolidation of State-Owned Entities",
			Status:      "Not Compliant",
			Compliant:   false,
			Impact:      "Financial statements incomplete and misleading",
			Remediation: "Require full consolidation of all SOEs",
		},
		{
			Requirement: "Recognition of Pension Liabilities",
			Status:      "Not Compliant",
			Compliant:   false,
			Impact:      "Liabilities understated by unquantified amount",
			Remediation: "Actuarial valuation and proper accounting",
		},
		{
			Requirement: "Asset Valuation and Verification",
			Status:      "Partially Compliant",
			Compliant:   false,
			Impact:      "Assets potentially overstated by $981M+",
			Remediation: "Complete asset register reconciliation",
		},
		{
			Requirement: "Revenue Recognition (Tax Receivables)",
			Status:      "Not Compliant",
			Compliant:   false,
			Impact:      "$2.43B receivables unverified",
			Remediation: "Documentation and verification procedures",
		},
	}
}

func cents(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func soeTransfers() []domain.EntityTransfer {
	return []domain.EntityTransfer{
		{Entity: "Queen Elizabeth Hospital", Current: cents("133664857.68"), Capital: cents("8800000.00")},
		{Entity: "Barbados Defence Force", Current: cents("69932639.00"), Capital: cents("1547900.00")},
		{Entity: "Transport Board", Current: cents("46023613.00"), Capital: cents("750000.00")},
		{Entity: "National Housing Corporation", Current: cents("16851610.11"), Capital: cents("29450000.00")},
		{Entity: "Barbados Agricultural Management", Current: cents("38984952.00"), Capital: cents("5000000.00")},
		{Entity: "Sanitation Service Authority", Current: cents("4452630.00"), Capital: cents("6000000.00")},
		{Entity: "Barbados Tourism Investment", Current: cents("3516575.00"), Capital: cents("91200000.00")},
		{Entity: "National Sports Council", Current: cents("16443141.43"), Capital: cents("19919939.00")},
		{Entity: "Barbados Investment and Development Corp", Current: cents("9852282.00"), Capital: cents("8387000.00")},
		{Entity: "Urban Development Commission", Current: cents("5370098.22"), Capital: cents("10716031.00")},
	}
}
