package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huepick/internal/color"
)

type adjustOptions struct {
	lighten    int
	darken     int
	saturate   int
	desaturate int
	spin       int
	alpha      float64
	to         color.Format
}

func newAdjustCmd(app *appContext) *cobra.Command {
	opts := &adjustOptions{to: color.FormatHex}

	cmd := &cobra.Command{
		Use:   "adjust <color>",
		Short: "Lighten, darken, saturate, spin or fade a color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdjust(cmd, app, opts, args[0])
		},
	}

	cmd.Flags().IntVar(&opts.lighten, "lighten", 0, "Raise lightness by N percentage points")
	cmd.Flags().IntVar(&opts.darken, "darken", 0, "Lower lightness by N percentage points")
	cmd.Flags().IntVar(&opts.saturate, "saturate", 0, "Raise saturation by N percentage points")
	cmd.Flags().IntVar(&opts.desaturate, "desaturate", 0, "Lower saturation by N percentage points")
	cmd.Flags().IntVar(&opts.spin, "spin", 0, "Rotate hue by N degrees")
	cmd.Flags().Float64Var(&opts.alpha, "alpha", 1, "Set opacity in [0,1]")
	cmd.Flags().Var(formatFlag{target: &opts.to}, "to", formatUsage("Output format"))

	return cmd
}

func runAdjust(cmd *cobra.Command, app *appContext, opts *adjustOptions, arg string) error {
	v, err := parseColorArg("adjust color", arg)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if !flags.Changed("to") {
		opts.to = app.cfg.Picker.Format
	}
	if flags.Changed("alpha") && (opts.alpha < 0 || opts.alpha > 1) {
		return newCommandError("adjust color", "reading --alpha", fmt.Errorf("alpha %v is outside [0,1]", opts.alpha), "Pass an opacity between 0 and 1.")
	}

	// Fixed order so combined flags are reproducible.
	v = color.Spin(v, opts.spin)
	v = color.Saturate(v, opts.saturate)
	v = color.Desaturate(v, opts.desaturate)
	v = color.Lighten(v, opts.lighten)
	v = color.Darken(v, opts.darken)
	if flags.Changed("alpha") {
		v = color.WithAlpha(v, opts.alpha)
	}

	app.log.Debug("color adjusted", "input", arg, "hex", v.Hex)
	fmt.Fprintln(cmd.OutOrStdout(), v.Render(opts.to))
	return nil
}
