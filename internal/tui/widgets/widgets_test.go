package widgets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/huepick/internal/color"
	"github.com/alexisbeaulieu97/huepick/internal/logger"
	"github.com/alexisbeaulieu97/huepick/internal/palette"
	"github.com/alexisbeaulieu97/huepick/internal/picker"
)

func bind(t *testing.T, initial string, format color.Format) (*picker.Store, *picker.Context) {
	t.Helper()
	store := picker.NewStore(initial)
	ctx, err := store.Bind(format, logger.Nop())
	require.NoError(t, err)
	return store, ctx
}

func TestChannelApply(t *testing.T) {
	t.Parallel()

	red := color.MustParse("hsl(0, 100%, 50%)")

	cases := []struct {
		name    string
		channel Channel
		target  float64
		wantHex string
	}{
		{"hue to green", ChannelHue, 120, "#00ff00"},
		{"hue wraps", ChannelHue, 480, "#00ff00"},
		{"saturation to gray", ChannelSaturation, 0, "#808080"},
		{"lightness to white", ChannelLightness, 100, "#ffffff"},
		{"lightness clamps", ChannelLightness, 150, "#ffffff"},
		{"red off", ChannelRed, 0, "#000000"},
		{"green on", ChannelGreen, 255, "#ffff00"},
		{"blue on", ChannelBlue, 255, "#ff00ff"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := tc.channel.Apply(red, tc.target)
			assert.Equal(t, tc.wantHex, got.Hex)
			assert.Equal(t, 1.0, got.Alpha())
		})
	}

	t.Run("alpha keeps channels", func(t *testing.T) {
		t.Parallel()
		got := ChannelAlpha.Apply(red, 0.25)
		assert.Equal(t, "#ff0000", got.Hex)
		assert.Equal(t, 0.25, got.Alpha())
		assert.Equal(t, 0.25, got.HSL.A)
	})
}

func TestChannelMetadata(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "hue", ChannelHue.String())
	assert.Equal(t, "Channel(99)", Channel(99).String())
	assert.Equal(t, 360.0, ChannelHue.Max())
	assert.Equal(t, 255.0, ChannelBlue.Max())
	assert.Equal(t, 0.05, ChannelAlpha.Step())

	v := color.MustParse("hsla(210, 50%, 40%, 0.5)")
	assert.Equal(t, "210°", ChannelHue.Label(v))
	assert.Equal(t, "40%", ChannelLightness.Label(v))
	assert.Equal(t, "0.50", ChannelAlpha.Label(v))
	assert.Equal(t, "51", ChannelRed.Label(v))
}

func TestSliderNudge(t *testing.T) {
	t.Parallel()

	t.Run("proposes a complete value", func(t *testing.T) {
		t.Parallel()
		store, ctx := bind(t, "hsl(0, 100%, 50%)", color.FormatHSL)

		s := NewSlider(ctx, ChannelLightness)
		require.True(t, s.Nudge(25))
		assert.Equal(t, "hsl(0, 100%, 75%)", store.Value())
		assert.Equal(t, 75.0, s.Value())
	})

	t.Run("hue wraps below zero", func(t *testing.T) {
		t.Parallel()
		store, ctx := bind(t, "hsl(0, 100%, 50%)", color.FormatHSL)

		require.True(t, NewSlider(ctx, ChannelHue).Nudge(-1))
		assert.Equal(t, "hsl(359, 100%, 50%)", store.Value())
	})

	t.Run("no proposal at the bound", func(t *testing.T) {
		t.Parallel()
		store, ctx := bind(t, "hsl(0, 100%, 50%)", color.FormatHSL)

		assert.False(t, NewSlider(ctx, ChannelSaturation).Nudge(1))
		assert.False(t, NewSlider(ctx, ChannelAlpha).Nudge(3))
		assert.Equal(t, 0, store.Writes())
	})

	t.Run("alpha steps", func(t *testing.T) {
		t.Parallel()
		store, ctx := bind(t, "rgba(10, 20, 30, 0.5)", color.FormatRGBA)

		require.True(t, NewSlider(ctx, ChannelAlpha).Nudge(-2))
		assert.Equal(t, "rgba(10, 20, 30, 0.4)", store.Value())
	})

	t.Run("alpha is inert under opaque formats", func(t *testing.T) {
		t.Parallel()

		for _, tc := range []struct {
			initial string
			format  color.Format
		}{
			{"#336699", color.FormatHex},
			{"rgb(51, 102, 153)", color.FormatRGB},
			{"hsl(210, 50%, 40%)", color.FormatHSL},
		} {
			store, ctx := bind(t, tc.initial, tc.format)
			slider := NewSlider(ctx, ChannelAlpha)

			assert.False(t, slider.Nudge(-10), tc.format.String())
			assert.False(t, slider.Nudge(1), tc.format.String())
			assert.Equal(t, tc.initial, store.Value())
			assert.Equal(t, 0, store.Writes())
		}
	})

	t.Run("hue steps past rounding under hex", func(t *testing.T) {
		t.Parallel()
		store, ctx := bind(t, "hsl(0, 10%, 50%)", color.FormatHex)
		ctx.OnChange(ctx.Color())
		require.Equal(t, "#8c7373", store.Value())

		require.True(t, NewSlider(ctx, ChannelHue).Nudge(1))
		assert.Equal(t, "#8c7473", store.Value())
		assert.Equal(t, 2, store.Writes())
	})

	t.Run("lightness under hex stops at the bound", func(t *testing.T) {
		t.Parallel()
		store, ctx := bind(t, "#ffffff", color.FormatHex)

		assert.False(t, NewSlider(ctx, ChannelLightness).Nudge(1))
		assert.Equal(t, 0, store.Writes())
	})

	t.Run("disabled picker ignores input", func(t *testing.T) {
		t.Parallel()
		store, ctx := bind(t, "#336699", color.FormatHex)
		store.SetDisabled(true)

		assert.False(t, NewSlider(ctx, ChannelRed).Nudge(10))
		assert.Equal(t, "#336699", store.Value())
		assert.Equal(t, 0, store.Writes())
	})
}

func TestSliderView(t *testing.T) {
	t.Parallel()

	_, ctx := bind(t, "hsl(210, 50%, 40%)", color.FormatHSL)
	s := NewSlider(ctx, ChannelHue)
	s.SetWidth(10)

	view := s.View(true)
	assert.Contains(t, view, "hue")
	assert.Contains(t, view, "210°")
	assert.Contains(t, view, "›")
	assert.NotContains(t, s.View(false), "›")
}

func TestSwatches(t *testing.T) {
	t.Parallel()

	p := palette.New(
		palette.Swatch{Name: "red", Value: color.MustParse("#ff0000")},
		palette.Swatch{Name: "green", Value: color.MustParse("#00ff00")},
		palette.Swatch{Name: "blue", Value: color.MustParse("#0000ff")},
	)

	t.Run("cursor stays in bounds", func(t *testing.T) {
		t.Parallel()
		_, ctx := bind(t, "#ffffff", color.FormatHex)
		s := NewSwatches(ctx, p, 2)

		s.Move(-1, 0)
		assert.Equal(t, 0, s.Cursor())
		s.Move(0, 1)
		assert.Equal(t, 2, s.Cursor())
		s.Move(1, 0)
		assert.Equal(t, 2, s.Cursor())

		sw, ok := s.Current()
		require.True(t, ok)
		assert.Equal(t, "blue", sw.Name)
	})

	t.Run("select keeps opacity", func(t *testing.T) {
		t.Parallel()
		store, ctx := bind(t, "rgba(10, 20, 30, 0.5)", color.FormatRGBA)
		s := NewSwatches(ctx, p, 3)

		require.True(t, s.Select())
		assert.Equal(t, "rgba(255, 0, 0, 0.5)", store.Value())
	})

	t.Run("disabled picker ignores select", func(t *testing.T) {
		t.Parallel()
		store, ctx := bind(t, "#ffffff", color.FormatHex)
		store.SetDisabled(true)

		assert.False(t, NewSwatches(ctx, p, 3).Select())
		assert.Equal(t, 0, store.Writes())
	})

	t.Run("empty palette", func(t *testing.T) {
		t.Parallel()
		_, ctx := bind(t, "#ffffff", color.FormatHex)
		s := NewSwatches(ctx, nil, 0)

		assert.False(t, s.Select())
		assert.Contains(t, s.View(false), "no swatches")
	})

	t.Run("view names the highlighted swatch", func(t *testing.T) {
		t.Parallel()
		_, ctx := bind(t, "#ffffff", color.FormatHex)
		s := NewSwatches(ctx, p, 3)
		s.Move(1, 0)

		view := s.View(true)
		assert.Contains(t, view, "green")
		assert.Contains(t, view, "#00ff00")
	})
}

func TestInputSubmit(t *testing.T) {
	t.Parallel()

	t.Run("valid text is proposed in the current format", func(t *testing.T) {
		t.Parallel()
		store, ctx := bind(t, "#ffffff", color.FormatRGB)
		in := NewInput(ctx)

		in.SetValue("  #336699 ")
		require.True(t, in.Submit())
		assert.NoError(t, in.Err())
		assert.Equal(t, "rgb(51, 102, 153)", store.Value())
		assert.Equal(t, "rgb(51, 102, 153)", in.Text())
	})

	t.Run("invalid text leaves the value alone", func(t *testing.T) {
		t.Parallel()
		store, ctx := bind(t, "#ffffff", color.FormatHex)
		in := NewInput(ctx)

		in.SetValue("chartreuse")
		assert.False(t, in.Submit())
		require.Error(t, in.Err())
		assert.Contains(t, in.Err().Error(), "chartreuse")
		assert.Equal(t, "#ffffff", store.Value())
		assert.Equal(t, 0, store.Writes())
		assert.Contains(t, in.View(true), "chartreuse")
	})

	t.Run("focus loads the current value", func(t *testing.T) {
		t.Parallel()
		_, ctx := bind(t, "hsl(210, 50%, 40%)", color.FormatHSL)
		in := NewInput(ctx)

		in.Focus()
		assert.True(t, in.Focused())
		assert.Equal(t, "hsl(210, 50%, 40%)", in.Text())
		in.Blur()
		assert.False(t, in.Focused())
	})

	t.Run("disabled picker ignores submit", func(t *testing.T) {
		t.Parallel()
		store, ctx := bind(t, "#ffffff", color.FormatHex)
		store.SetDisabled(true)
		in := NewInput(ctx)

		in.SetValue("#000000")
		assert.False(t, in.Submit())
		assert.Equal(t, 0, store.Writes())
	})
}

func TestFormatToggle(t *testing.T) {
	t.Parallel()

	t.Run("cycles forward and re-emits", func(t *testing.T) {
		t.Parallel()
		store, ctx := bind(t, "#fff", color.FormatHex)
		toggle := NewFormatToggle(ctx)

		require.True(t, toggle.Cycle(1))
		assert.Equal(t, color.FormatRGB, ctx.Format())
		assert.Equal(t, color.FormatRGB, store.Format())
		assert.Equal(t, "rgb(255, 255, 255)", store.Value())
	})

	t.Run("cycles backward with wrap", func(t *testing.T) {
		t.Parallel()
		store, ctx := bind(t, "#336699", color.FormatHex)

		require.True(t, NewFormatToggle(ctx).Cycle(-1))
		assert.Equal(t, color.FormatHSLA, ctx.Format())
		assert.Equal(t, "hsla(210, 50%, 40%, 1)", store.Value())
	})

	t.Run("same format is a no-op", func(t *testing.T) {
		t.Parallel()
		store, ctx := bind(t, "#336699", color.FormatHex)

		assert.False(t, NewFormatToggle(ctx).Set(color.FormatHex))
		assert.Equal(t, 0, store.Writes())
	})

	t.Run("view lists formats", func(t *testing.T) {
		t.Parallel()
		_, ctx := bind(t, "#336699", color.FormatHex)
		view := NewFormatToggle(ctx).View(false)
		for _, f := range color.Formats() {
			assert.Contains(t, view, f.String())
		}
	})
}

func TestPreview(t *testing.T) {
	t.Parallel()

	p := palette.New(
		palette.Swatch{Name: "navy", Value: color.MustParse("#334466")},
		palette.Swatch{Name: "lime", Value: color.MustParse("#00ff00")},
	)
	_, ctx := bind(t, "#336699", color.FormatHex)

	preview := NewPreview(ctx, p)
	sw, ok := preview.Nearest()
	require.True(t, ok)
	assert.Equal(t, "navy", sw.Name)

	view := preview.View()
	assert.Contains(t, view, "#336699")
	assert.Contains(t, view, "navy")

	bare := NewPreview(ctx, nil)
	_, ok = bare.Nearest()
	assert.False(t, ok)
	assert.NotContains(t, bare.View(), "≈")
}
