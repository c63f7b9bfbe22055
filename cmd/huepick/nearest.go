package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

type nearestOptions struct {
	jsonOutput bool
}

type nearestJSONPayload struct {
	Input    string  `json:"input"`
	Swatch   string  `json:"swatch"`
	Hex      string  `json:"hex"`
	Distance float64 `json:"distance"`
}

func newNearestCmd(app *appContext) *cobra.Command {
	opts := &nearestOptions{}

	cmd := &cobra.Command{
		Use:   "nearest <color>",
		Short: "Find the palette swatch closest to a color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseColorArg("find nearest swatch", args[0])
			if err != nil {
				return err
			}

			sw, distance, ok := app.cfg.Palette().Nearest(v)
			if !ok {
				return newCommandError("find nearest swatch", "searching palette", errors.New("palette is empty"), "Add swatches to the configuration or remove picker.families.")
			}

			if opts.jsonOutput {
				encoder := json.NewEncoder(cmd.OutOrStdout())
				encoder.SetIndent("", "  ")
				return encoder.Encode(nearestJSONPayload{Input: args[0], Swatch: sw.Name, Hex: sw.Value.Hex, Distance: distance})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\tΔE %.2f\n", sw.Name, sw.Value.Hex, distance)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
