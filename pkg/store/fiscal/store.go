// Package fiscal defines the read side of the audited financial statements
// dataset. The dashboard only ever reads through this interface, so the
// compiled-in source can later be swapped for a file or API backed loader
// without touching the assembly layer.
package fiscal

import (
	"context"

	"github.com/fis-tools/fiscal-atlas/pkg/models/domain"
)

type Store interface {
	// LineItems returns the line items of one statement group in the order
	// they appear in the report. The order is stable across calls; tables
	// and chart layouts depend on it.
	LineItems(ctx context.Context, group domain.Group) ([]domain.FinancialLineItem, error)

	// Findings returns the items forming the basis for the adverse opinion,
	// in report order.
	Findings(ctx context.Context) ([]domain.AuditFinding, error)

	// ComplianceIssues returns the IPSAS compliance assessment rows.
	ComplianceIssues(ctx context.Context) ([]domain.ComplianceIssue, error)

	// Transfers returns transfers to state-owned enterprises, in report order.
	Transfers(ctx context.Context) ([]domain.EntityTransfer, error)
}
