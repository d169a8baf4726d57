package export

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/fis-tools/fiscal-atlas/pkg/models/domain"
)

type TableConfig struct {
	CellWidth int
}

func DefaultTableConfig() TableConfig {
	return TableConfig{CellWidth: 22}
}

// Reporter renders assembled display models as plain text tables.
type Reporter struct {
	writer io.Writer
	config TableConfig
}

func NewReporter(writer io.Writer) *Reporter {
	if writer == nil {
		writer = os.Stdout
	}
	return &Reporter{
		writer: writer,
		config: DefaultTableConfig(),
	}
}

func (r *Reporter) Handle(model domain.DisplayModel) error {
	funcMap := template.FuncMap{
		"row": func(cells []string) string {
			out := make([]string, 0, len(cells))
			for _, cell := range cells {
				out = append(out, fmt.Sprintf("%-*s", r.config.CellWidth, truncate(cell, r.config.CellWidth)))
			}
			return "| " + strings.Join(out, " | ") + " |"
		},
		"separator": func(n int) string {
			cell := strings.Repeat("-", r.config.CellWidth+2)
			return "+" + strings.Repeat(cell+"+", n)
		},
	}

	tmpl := `
=== {{.Title}} ===
{{if .Notice}}
NOTE: {{.Notice}}
{{end}}
{{range .Metrics}}{{.Label}}: {{.Value}}{{if .Delta}} ({{.Delta}}){{end}}
{{end}}
{{range .Findings}}[{{.Severity}}] {{.Title}} - {{.Amount}}
    {{.Description}}
{{end}}
{{range .Issues}}{{.Requirement}}: {{.Status}}
{{end}}
{{range .Tables}}
{{.Title}}
{{separator (len .Columns)}}
{{row .Columns}}
{{separator (len .Columns)}}
{{range .Rows}}{{row .}}
{{end}}{{separator (len .Columns)}}
{{end}}
`

	t, err := template.New("view").Funcs(funcMap).Parse(tmpl)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	return t.Execute(r.writer, model)
}

func truncate(s string, width int) string {
	if len(s) <= width {
		return s
	}
	if width <= 3 {
		return s[:width]
	}
	return s[:width-3] + "..."
}
