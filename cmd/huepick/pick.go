package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/huepick/internal/color"
	"github.com/alexisbeaulieu97/huepick/internal/picker"
	"github.com/alexisbeaulieu97/huepick/internal/tui"
	"github.com/alexisbeaulieu97/huepick/internal/tui/widgets"
)

var errPickCancelled = errors.New("picker cancelled")

// interactiveTerminal reports whether the picker UI can be shown. The UI draws
// on stderr so the chosen value can be captured from stdout.
var interactiveTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stderr.Fd()))
}

type pickOptions struct {
	format   color.Format
	disabled bool
	rgb      bool
}

func newPickCmd(app *appContext) *cobra.Command {
	opts := &pickOptions{}

	cmd := &cobra.Command{
		Use:   "pick [color]",
		Short: "Pick a color interactively and print it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPick(cmd, app, opts, args)
		},
	}

	cmd.Flags().Var(formatFlag{target: &opts.format}, "format", formatUsage("Output format, defaults to picker.format from the config"))
	cmd.Flags().BoolVar(&opts.disabled, "disabled", false, "Show the picker read-only")
	cmd.Flags().BoolVar(&opts.rgb, "rgb", false, "Use red/green/blue sliders instead of hue/saturation/lightness")

	return cmd
}

func runPick(cmd *cobra.Command, app *appContext, opts *pickOptions, args []string) error {
	initial := app.cfg.Picker.Value
	if len(args) == 1 {
		if _, err := parseColorArg("pick color", args[0]); err != nil {
			return err
		}
		initial = args[0]
	}

	format := app.cfg.Picker.Format
	if cmd.Flags().Changed("format") {
		format = opts.format
	}

	store := picker.NewStore(initial)
	store.SetDisabled(opts.disabled || app.cfg.Picker.Disabled)
	store.Subscribe(func(value string) {
		app.log.Debug("color updated", "value", value)
	})

	ctx, err := store.Bind(format, app.log)
	if err != nil {
		return newCommandError("start picker", "binding picker context", err, "Pass a valid --format.")
	}
	// Normalize the initial string into the selected format.
	ctx.OnChange(ctx.Color())

	if !interactiveTerminal() {
		app.log.Debug("no terminal attached, printing initial color")
		fmt.Fprintln(cmd.OutOrStdout(), store.Value())
		return nil
	}

	channels := widgets.HSLChannels()
	if opts.rgb {
		channels = widgets.RGBChannels()
	}
	model := tui.NewModel(ctx, tui.Options{Palette: app.cfg.Palette(), Channels: channels})

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithOutput(os.Stderr))
	final, err := program.Run()
	if err != nil {
		return newCommandError("run picker", "terminal UI", err, "Run huepick from an interactive terminal.")
	}

	if m, ok := final.(tui.Model); ok && m.Cancelled() {
		return errPickCancelled
	}

	app.log.Info("color picked", "value", store.Value(), "writes", store.Writes())
	fmt.Fprintln(cmd.OutOrStdout(), store.Value())
	return nil
}
