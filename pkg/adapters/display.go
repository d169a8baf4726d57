package adapters

import (
	"github.com/fis-tools/fiscal-atlas/pkg/models/api"
	"github.com/fis-tools/fiscal-atlas/pkg/models/domain"
)

func MapSeverityDomainToApi(s domain.Severity) api.Severity {
	switch s {
	case domain.SeverityCritical:
		return api.SeverityCritical
	case domain.SeverityHigh:
		return api.SeverityHigh
	case domain.SeverityMedium:
		return api.SeverityMedium
	default:
		return api.SeverityLow
	}
}

func MapMetricDomainToApi(m domain.Metric) api.Metric {
	return api.Metric{
		Label: m.Label,
		Value: m.Value,
		Delta: m.Delta,
		Trend: string(m.Trend),
	}
}

func MapTableDomainToApi(t domain.Table) api.Table {
	rows := make([][]string, 0, len(t.Rows))
	for _, r := range t.Rows {
		row := make([]string, len(r))
		copy(row, r)
		rows = append(rows, row)
	}
	return api.Table{
		Title:   t.Title,
		Columns: append([]string(nil), t.Columns...),
		Rows:    rows,
	}
}

func MapChartDomainToApi(c domain.Chart) api.Chart {
	series := make([]api.ChartSeries, 0, len(c.Series))
	for _, s := range c.Series {
		series = append(series, api.ChartSeries{
			Name:   s.Name,
			Values: append([]float64(nil), s.Values...),
		})
	}
	return api.Chart{
		Title:  c.Title,
		Kind:   string(c.Kind),
		Labels: append([]string(nil), c.Labels...),
		Series: series,
	}
}

func MapFindingCardDomainToApi(f domain.FindingCard) api.FindingCard {
	return api.FindingCard{
		Title:       f.Title,
		Description: f.Description,
		Impact:      f.Impact,
		Amount:      f.Amount,
		Category:    f.Category.String(),
		Severity:    MapSeverityDomainToApi(f.Severity),
	}
}

func MapComplianceIssueDomainToApi(i domain.ComplianceIssue) api.ComplianceIssue {
	return api.ComplianceIssue{
		Requirement: i.Requirement,
		Status:      i.Status,
		Compliant:   i.Compliant,
		Impact:      i.Impact,
		Remediation: i.Remediation,
	}
}

func MapDisplayModelDomainToApi(m domain.DisplayModel) api.DisplayModel {
	res := api.DisplayModel{
		View:    string(m.View),
		Title:   m.Title,
		Notice:  m.Notice,
		Metrics: make([]api.Metric, 0, len(m.Metrics)),
		Tables:  make([]api.Table, 0, len(m.Tables)),
		Charts:  make([]api.Chart, 0, len(m.Charts)),
	}
	for _, metric := range m.Metrics {
		res.Metrics = append(res.Metrics, MapMetricDomainToApi(metric))
	}
	for _, table := range m.Tables {
		res.Tables = append(res.Tables, MapTableDomainToApi(table))
	}
	for _, chart := range m.Charts {
		res.Charts = append(res.Charts, MapChartDomainToApi(chart))
	}
	for _, finding := range m.Findings {
		res.Findings = append(res.Findings, MapFindingCardDomainToApi(finding))
	}
	for _, issue := range m.Issues {
		res.Issues = append(res.Issues, MapComplianceIssueDomainToApi(issue))
	}
	return res
}

// ViewTitle is the human title shown in the view selector.
func ViewTitle(v domain.ViewKind) string {
	switch v {
	case domain.ViewExecutiveSummary:
		return "Executive Summary"
	case domain.ViewRevenue:
		return "Revenue Analysis"
	case domain.ViewExpenditure:
		return "Expenditure Analysis"
	case domain.ViewBalanceSheet:
		return "Balance Sheet"
	case domain.ViewAuditFindings:
		return "Audit Findings"
	case domain.ViewDebt:
		return "Debt Analysis"
	case domain.ViewTransfers:
		return "SOE Transfers"
	case domain.ViewPerformance:
		return "Performance Highlights"
	default:
		return string(v)
	}
}

func MapViewCatalogDomainToApi(views []domain.ViewKind) []api.ViewInfo {
	res := make([]api.ViewInfo, 0, len(views))
	for _, v := range views {
		res = append(res, api.ViewInfo{Key: string(v), Title: ViewTitle(v)})
	}
	return res
}
