// Package picker distributes one color value to the independent control
// widgets of a picker instance.
//
// The owner of a picker keeps the source of truth as a formatted string. A
// Context derives the canonical color.Value from that string on read, caching
// the parse until the string changes, and routes every mutation back to the
// owner as a freshly formatted string. Widgets never write shared state
// directly, so several of them can drive the same color without diverging.
package picker

import (
	"errors"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/huepick/internal/color"
	"github.com/alexisbeaulieu97/huepick/internal/logger"
)

var (
	// ErrNoValue is returned by New when Options.Value is nil.
	ErrNoValue = errors.New("picker: value accessor is required")
	// ErrNoOnChange is returned by New when Options.OnChange is nil.
	ErrNoOnChange = errors.New("picker: change callback is required")
)

// Controller is the contract control widgets depend on. Widgets read the
// current color, format and disabled flag to render, and propose mutations
// through OnChange and OnFormatChange. A widget must hand OnChange a complete
// color.Value and must not call either mutator while Disabled reports true.
type Controller interface {
	Color() color.Value
	Format() color.Format
	Disabled() bool
	OnChange(next color.Value)
	OnFormatChange(next color.Format)
}

// Options wires a Context to its owner.
type Options struct {
	// Value returns the owner's current color string. Required.
	Value func() string
	// Format is the initially selected output format.
	Format color.Format
	// Disabled reports whether widgets must ignore interaction. Nil means enabled.
	Disabled func() bool
	// OnChange receives every proposed color as a formatted string. Required.
	OnChange func(string)
	// OnFormatChange is told about format switches before the re-emitted color.
	OnFormatChange func(color.Format)
	// Logger receives debug traces; nil discards them.
	Logger *logger.Logger
}

// Context is the per-instance state bundle shared by the widgets of one
// picker. It holds no color state of its own beyond the cached parse of the
// owner's string and the selected format.
type Context struct {
	value          func() string
	disabled       func() bool
	onChange       func(string)
	onFormatChange func(color.Format)
	log            *logger.Logger

	mu          sync.Mutex
	format      color.Format
	cached      bool
	cacheKey    string
	cacheValue  color.Value
	derivations int
}

var _ Controller = (*Context)(nil)

// New validates opts and builds a Context.
func New(opts Options) (*Context, error) {
	if opts.Value == nil {
		return nil, ErrNoValue
	}
	if opts.OnChange == nil {
		return nil, ErrNoOnChange
	}
	if !opts.Format.Valid() {
		return nil, fmt.Errorf("picker: invalid initial format %d", int(opts.Format))
	}

	return &Context{
		value:          opts.Value,
		disabled:       opts.Disabled,
		onChange:       opts.OnChange,
		onFormatChange: opts.OnFormatChange,
		log:            opts.Logger,
		format:         opts.Format,
	}, nil
}

// Color returns the canonical value of the owner's current string. The string
// is re-read on every call and parsed again only when it differs from the
// previous read. Strings that do not parse yield color.Default.
func (c *Context) Color() color.Value {
	raw := c.value()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.cached && raw == c.cacheKey {
		return c.cacheValue
	}

	v, ok := color.Parse(raw)
	if !ok {
		c.log.Debug("unparseable color, using default", "value", raw)
		v = color.Default()
	}

	c.cached = true
	c.cacheKey = raw
	c.cacheValue = v
	c.derivations++
	return v
}

// Format returns the currently selected output format.
func (c *Context) Format() color.Format {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.format
}

// Disabled reports the owner's disabled flag. The Context does not enforce it.
func (c *Context) Disabled() bool {
	if c.disabled == nil {
		return false
	}
	return c.disabled()
}

// OnChange formats next with the selected format and hands the string to the
// owner. The new color becomes visible through Color only once the owner's
// string reflects it.
func (c *Context) OnChange(next color.Value) {
	format := c.Format()
	out := next.Render(format)
	c.log.Debug("color change proposed", "value", out, "format", format.String())
	c.onChange(out)
}

// OnFormatChange selects a new output format and re-emits the current color
// in it, so the owner's string follows the chosen format. Formats outside the
// known set select hex.
func (c *Context) OnFormatChange(next color.Format) {
	if !next.Valid() {
		c.log.Debug("unknown format, selecting hex", "format", int(next))
		next = color.FormatHex
	}

	c.mu.Lock()
	c.format = next
	c.mu.Unlock()

	if c.onFormatChange != nil {
		c.onFormatChange(next)
	}

	out := c.Color().Render(next)
	c.log.Debug("format change", "value", out, "format", next.String())
	c.onChange(out)
}
