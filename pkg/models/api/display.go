package api

type Severity string

const (
	SeverityLow      Severity = "low"
	SeverityMedium   Severity = "medium"
	SeverityHigh     Severity = "high"
	SeverityCritical Severity = "critical"
)

// ViewInfo is one entry of the view catalog.
type ViewInfo struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Delta string `json:"delta,omitempty"`
	Trend string `json:"trend,omitempty"`
}

type Table struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

type ChartSeries struct {
	Name   string    `json:"name"`
	Values []float64 `json:"values"`
}

type Chart struct {
	Title  string        `json:"title"`
	Kind   string        `json:"kind"`
	Labels []string      `json:"labels"`
	Series []ChartSeries `json:"series"`
}

type FindingCard struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Impact      string   `json:"impact"`
	Amount      string   `json:"amount"`
	Category    string   `json:"category"`
	Severity    Severity `json:"severity"`
}

type ComplianceIssue struct {
	Requirement string `json:"requirement"`
	Status      string `json:"status"`
	Compliant   bool   `json:"compliant"`
	Impact      string `json:"impact"`
	Remediation string `json:"remediation"`
}

// DisplayModel is the JSON shape of one assembled view.
type DisplayModel struct {
	View     string            `json:"view"`
	Title    string            `json:"title"`
	Notice   string            `json:"notice,omitempty"`
	Metrics  []Metric          `json:"metrics"`
	Tables   []Table           `json:"tables"`
	Charts   []Chart           `json:"charts"`
	Findings []FindingCard     `json:"findings,omitempty"`
	Issues   []ComplianceIssue `json:"issues,omitempty"`
}
