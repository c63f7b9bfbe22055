package config

import (
	"github.com/alexisbeaulieu97/huepick/internal/color"
	"github.com/alexisbeaulieu97/huepick/internal/palette"
)

// DefaultValue seeds the picker when the configuration leaves it empty.
const DefaultValue = "#ffffff"

// Config represents the full huepick configuration document.
type Config struct {
	Version  string         `yaml:"version" validate:"required,semver"`
	Picker   PickerSettings `yaml:"picker,omitempty"`
	Swatches []Swatch       `yaml:"swatches,omitempty" validate:"omitempty,dive"`
	Log      LogSettings    `yaml:"log,omitempty"`
}

// PickerSettings holds the initial state handed to a picker instance.
type PickerSettings struct {
	Value    string       `yaml:"value,omitempty" validate:"required,picker_color"`
	Format   color.Format `yaml:"format,omitempty" validate:"color_format"`
	Disabled bool         `yaml:"disabled,omitempty"`
	// Families limits the built-in swatch families shown; empty shows all.
	Families []string `yaml:"families,omitempty" validate:"omitempty,dive,palette_family"`
}

// Swatch is a user supplied palette entry.
type Swatch struct {
	Name  string `yaml:"name" validate:"required,swatch_name"`
	Value string `yaml:"value" validate:"required,picker_color"`
}

// LogSettings controls the application logger.
type LogSettings struct {
	Level string `yaml:"level,omitempty" validate:"omitempty,oneof=trace debug info warn error"`
	Human bool   `yaml:"human,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Version: "1.0",
		Picker: PickerSettings{
			Value:  DefaultValue,
			Format: color.FormatHex,
		},
		Log: LogSettings{Level: "info", Human: true},
	}
}

func (c *Config) applyDefaults() {
	if c.Picker.Value == "" {
		c.Picker.Value = DefaultValue
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// Palette assembles the swatches available to the picker: the selected
// built-in families followed by the configured swatches. Configured swatches
// must already be validated.
func (c *Config) Palette() *palette.Palette {
	builtin := palette.Default()
	p := palette.New()

	if len(c.Picker.Families) == 0 {
		p.Add(builtin.All()...)
	} else {
		for _, family := range c.Picker.Families {
			swatches, err := builtin.Family(family)
			if err != nil {
				continue
			}
			p.Add(swatches...)
		}
	}

	for _, s := range c.Swatches {
		v, ok := color.Parse(s.Value)
		if !ok {
			continue
		}
		p.Add(palette.Swatch{Name: s.Name, Value: v})
	}
	return p
}
