package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huepick/internal/color"
)

func newConvertCmd(app *appContext) *cobra.Command {
	target := color.FormatHex

	cmd := &cobra.Command{
		Use:   "convert <color>",
		Short: "Reformat a color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseColorArg("convert color", args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("to") {
				target = app.cfg.Picker.Format
			}
			app.log.Debug("converting color", "input", args[0], "format", target.String())
			fmt.Fprintln(cmd.OutOrStdout(), v.Render(target))
			return nil
		},
	}

	cmd.Flags().Var(formatFlag{target: &target}, "to", formatUsage("Output format, defaults to picker.format from the config"))

	return cmd
}
