// Package color holds the canonical color value used by the picker together
// with the pure conversions between its representations.
//
// A Value always carries three synchronized views of one color: integer RGB
// channels, integer HSL degrees/percents, and a lowercase #rrggbb string.
// Values are built as a unit (FromRGB, FromHSL, FromHex, Parse); callers never
// patch a single representation in place.
package color
