package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/huepick/internal/color"
	"github.com/alexisbeaulieu97/huepick/internal/palette"
)

type swatchesOptions struct {
	family string
}

func newSwatchesCmd(app *appContext) *cobra.Command {
	opts := &swatchesOptions{}

	cmd := &cobra.Command{
		Use:   "swatches",
		Short: "List the palette swatches",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSwatches(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.family, "family", "", "Only list one family (e.g. blue)")

	return cmd
}

func runSwatches(cmd *cobra.Command, app *appContext, opts *swatchesOptions) error {
	p := app.cfg.Palette()

	swatches := p.All()
	if opts.family != "" {
		var err error
		swatches, err = p.Family(opts.family)
		if err != nil {
			return newCommandError("list swatches", "selecting family", err, "Run 'huepick swatches' to see every family.")
		}
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "NAME\tHEX\tHSL\t")

	paint := supportsColor(cmd.OutOrStdout())
	for _, sw := range swatches {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\n", sw.Name, sw.Value.Hex, sw.Value.Render(color.FormatHSL), chip(sw, paint))
	}

	return writer.Flush()
}

func chip(sw palette.Swatch, paint bool) string {
	if !paint {
		return ""
	}
	return lipgloss.NewStyle().Background(lipgloss.Color(sw.Value.Hex)).Render("    ")
}

func supportsColor(writer io.Writer) bool {
	if file, ok := writer.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}
