package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huepick/internal/color"
)

type parseOptions struct {
	jsonOutput bool
}

func newParseCmd(app *appContext) *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse <color>",
		Short: "Show every representation of a color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, app, opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type parseJSONPayload struct {
	Input   string            `json:"input"`
	Value   color.Value       `json:"value"`
	Formats map[string]string `json:"formats"`
	Light   bool              `json:"light"`
}

func runParse(cmd *cobra.Command, app *appContext, opts *parseOptions, arg string) error {
	v, err := parseColorArg("parse color", arg)
	if err != nil {
		return err
	}
	app.log.Debug("color parsed", "input", arg, "hex", v.Hex)

	if opts.jsonOutput {
		payload := parseJSONPayload{
			Input:   arg,
			Value:   v,
			Formats: make(map[string]string, len(color.Formats())),
			Light:   color.IsLight(v),
		}
		for _, f := range color.Formats() {
			payload.Formats[f.String()] = v.Render(f)
		}
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(payload)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "FORMAT\tVALUE")
	for _, f := range color.Formats() {
		fmt.Fprintf(writer, "%s\t%s\n", f, v.Render(f))
	}
	return writer.Flush()
}
