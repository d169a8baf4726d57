// Package audit derives severity tiers for the findings underpinning the
// adverse audit opinion.
package audit

import (
	"github.com/fis-tools/fiscal-atlas/pkg/models/domain"
	"github.com/shopspring/decimal"
)

// Magnitude thresholds, in absolute currency units.
var (
	criticalThreshold = decimal.New(1, 9) // $1B
	highThreshold     = decimal.New(1, 8) // $100M
	mediumThreshold   = decimal.New(1, 7) // $10M
)

// Classify maps a finding to its severity tier. Quantified findings are
// tiered purely by the absolute magnitude of the misstatement; unquantified
// ones fall back to a default for their category. Same finding in, same
// severity out.
func Classify(f domain.AuditFinding) domain.Severity {
	if f.Magnitude.Valid {
		return classifyMagnitude(f.Magnitude.Decimal)
	}
	return categoryDefault(f.Category)
}

func classifyMagnitude(m decimal.Decimal) domain.Severity {
	abs := m.Abs()
	switch {
	case abs.GreaterThanOrEqual(criticalThreshold):
		return domain.SeverityCritical
	case abs.GreaterThanOrEqual(highThreshold):
		return domain.SeverityHigh
	case abs.GreaterThanOrEqual(mediumThreshold):
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}

func categoryDefault(c domain.FindingCategory) domain.Severity {
	switch c {
	case domain.CategoryConsolidationViolation, domain.CategoryOmission:
		return domain.SeverityHigh
	default:
		return domain.SeverityMedium
	}
}
