package domain

import "github.com/shopspring/decimal"

// Group identifies a named collection of financial line items as they appear
// in the audited statements.
type Group string

const (
	GroupRevenue     Group = "revenue"
	GroupExpenditure Group = "expenditure"
	GroupAssets      Group = "assets"
	GroupLiabilities Group = "liabilities"
	GroupDebt        Group = "debt"
	GroupTaxDetail   Group = "tax-detail"
	GroupDebtService Group = "debt-service"
)

// FinancialLineItem is one row of the audited statements. Current is always
// set; Prior and Budget are absent when the report carries no comparison
// figure for the row.
type FinancialLineItem struct {
	Group   Group
	Label   string
	Current decimal.Decimal
	Prior   decimal.NullDecimal
	Budget  decimal.NullDecimal
}

type FindingCategory int

const (
	CategoryMisstatement FindingCategory = iota
	CategoryComplianceFailure
	CategoryOmission
	CategoryConsolidationViolation
)

func (c FindingCategory) String() string {
	switch c {
	case CategoryMisstatement:
		return "misstatement"
	case CategoryComplianceFailure:
		return "compliance_failure"
	case CategoryOmission:
		return "omission"
	case CategoryConsolidationViolation:
		return "consolidation_violation"
	default:
		return "unknown"
	}
}

type Severity int

const (
	SeverityLow Severity = iota
	SeverityMedium
	SeverityHigh
	SeverityCritical
)

func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// AuditFinding is one item from the basis for the adverse opinion.
// Magnitude is absent for findings the Auditor General could not quantify.
// Severity is never stored; it is derived from magnitude and category.
type AuditFinding struct {
	Title       string
	Description string
	Impact      string
	Magnitude   decimal.NullDecimal
	Category    FindingCategory
}

// ComplianceIssue is one row of the IPSAS compliance assessment.
type ComplianceIssue struct {
	Requirement string
	Status      string
	Compliant   bool
	Impact      string
	Remediation string
}

// EntityTransfer records current and capital transfers to one state-owned
// enterprise for the financial year.
type EntityTransfer struct {
	Entity  string
	Current decimal.Decimal
	Capital decimal.Decimal
}

// Total is the combined current plus capital transfer for the entity.
func (t EntityTransfer) Total() decimal.Decimal {
	return t.Current.Add(t.Capital)
}

// Variance is the delta between an actual figure and a comparison figure
// (budget or prior year). Both fields are absent when no comparison exists;
// Percent alone is absent when the comparison is zero and the delta is not.
type Variance struct {
	Absolute decimal.NullDecimal
	Percent  decimal.NullDecimal
}
