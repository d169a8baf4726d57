package commands

import (
	"fmt"

	"github.com/fis-tools/fiscal-atlas/pkg/adapters"
	"github.com/fis-tools/fiscal-atlas/pkg/handlers/dashboard"
	"github.com/fis-tools/fiscal-atlas/pkg/models/domain"
	"github.com/fis-tools/fiscal-atlas/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

type ViewCmd struct {
	unit         string
	noComparison bool
	assembler    dashboard.Assembler
	reporter     *export.Reporter
}

func NewViewCmd(assembler dashboard.Assembler, reporter *export.Reporter) *cobra.Command {
	vc := &ViewCmd{assembler: assembler, reporter: reporter}
	cmd := &cobra.Command{
		Use:   "view <name>",
		Short: "Render a dashboard view as text",
		Args:  cobra.ExactArgs(1),
		RunE:  vc.run,
	}

	cmd.Flags().StringVar(&vc.unit, "unit", string(domain.UnitMillions),
		"Currency unit: full, millions or billions")
	cmd.Flags().BoolVar(&vc.noComparison, "no-comparison", false,
		"Hide prior-year and budget comparison figures")

	return cmd
}

func (vc *ViewCmd) run(cmd *cobra.Command, args []string) error {
	view, err := domain.ParseViewKind(args[0])
	if err != nil {
		return err
	}
	unit, err := domain.ParseUnit(vc.unit)
	if err != nil {
		return err
	}

	prefs := domain.DisplayPreferences{
		Unit:           unit,
		ShowComparison: !vc.noComparison,
		View:           view,
	}

	model, err := vc.assembler.Assemble(cmd.Context(), view, prefs)
	if err != nil {
		return fmt.Errorf("failed to assemble view: %w", err)
	}

	return vc.reporter.Handle(model)
}

func NewViewsCmd(out func(format string, a ...any)) *cobra.Command {
	return &cobra.Command{
		Use:   "views",
		Short: "List the available dashboard views",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, info := range adapters.MapViewCatalogDomainToApi(domain.Views()) {
				out("%-20s %s\n", info.Key, info.Title)
			}
			return nil
		},
	}
}
