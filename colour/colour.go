// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package colour provides motif colour parsing and assignment.
package colour

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/palette/brewer"
)

var (
	ErrInvalidColorFormat = errors.New("colour: invalid colour format")
	ErrPaletteTooShort    = errors.New("colour: palette too short")
)

// RGB is an opaque colour with channels in [0, 1].
type RGB struct {
	R, G, B float64
}

// RGBA implements the color.Color interface.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return scale(c.R), scale(c.G), scale(c.B), 0xffff
}

func scale(v float64) uint32 {
	return uint32(math.Round(math.Max(0, math.Min(1, v)) * 0xffff))
}

// Parse parses s as either a hex colour, "#RRGGBB" or "RRGGBB", or a
// comma separated triple of 0-255 integers, optionally parenthesised.
func Parse(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if strings.ContainsRune(s, ',') {
		return ParseTriple(s)
	}
	return ParseHex(s)
}

// ParseHex parses a six digit hex colour with an optional leading '#'.
func ParseHex(s string) (RGB, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	return RGB{
		R: float64(v>>16&0xff) / 255,
		G: float64(v>>8&0xff) / 255,
		B: float64(v&0xff) / 255,
	}, nil
}

// ParseTriple parses an "(r,g,b)" colour with integer channels in [0, 255].
// The parentheses are optional.
func ParseTriple(s string) (RGB, error) {
	t := strings.TrimSpace(s)
	if strings.HasPrefix(t, "(") != strings.HasSuffix(t, ")") {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	t = strings.TrimSuffix(strings.TrimPrefix(t, "("), ")")
	f := strings.Split(t, ",")
	if len(f) != 3 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
	}
	var ch [3]float64
	for i, v := range f {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 0 || n > 255 {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, s)
		}
		ch[i] = float64(n) / 255
	}
	return RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// Palette is an ordered set of motif colours.
type Palette []RGB

var _ palette.Palette = Palette(nil)

// Colors implements the palette.Palette interface.
func (p Palette) Colors() []color.Color {
	c := make([]color.Color, len(p))
	for i, v := range p {
		c[i] = v
	}
	return c
}

// ParsePalette parses each of the non-blank entries of s with Parse.
// The returned Palette is non-nil even if s holds no entries.
func ParsePalette(s []string) (Palette, error) {
	p := Palette{}
	for i, v := range s {
		if strings.TrimSpace(v) == "" {
			continue
		}
		c, err := Parse(v)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		p = append(p, c)
	}
	return p, nil
}

var defaultPalette = [...]RGB{
	{0.933, 0.376, 0.333},
	{0.376, 0.827, 0.580},
	{1.0, 0.851, 0.490},
	{1.0, 0.608, 0.522},
	{0.659, 0.855, 0.863},
	{0.271, 0.482, 0.596},
	{0.114, 0.208, 0.341},
	{0.667, 0.965, 0.514},
	{1.0, 0.624, 0.110},
}

// Default returns a copy of the built-in nine colour palette.
func Default() Palette { return append(Palette(nil), defaultPalette[:]...) }

// FromColor returns c as an RGB. Colours that are not already RGB are
// converted from their alpha-premultiplied 16 bit channels.
func FromColor(c color.Color) RGB {
	if v, ok := c.(RGB); ok {
		return v
	}
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGB{}
	}
	return RGB{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
	}
}

// Resolve returns the colour for the motif at index i. If supplied is nil,
// the built-in palette is used and indexes wrap, so the tenth motif reuses
// the first colour. Otherwise the Colors of supplied must hold a colour for
// i. Any gonum palette, such as a ColorBrewer set, may be supplied.
func Resolve(i int, supplied palette.Palette) (RGB, error) {
	if i < 0 {
		return RGB{}, fmt.Errorf("colour: negative motif index %d", i)
	}
	if supplied == nil {
		cols := Default().Colors()
		return FromColor(cols[i%len(cols)]), nil
	}
	cols := supplied.Colors()
	if i >= len(cols) {
		return RGB{}, fmt.Errorf("%w: no colour for motif %d of %d supplied", ErrPaletteTooShort, i+1, len(cols))
	}
	return FromColor(cols[i]), nil
}

// Brewer returns the named ColorBrewer palette, of any type, holding at
// least n colours. ColorBrewer palettes hold at least three colours.
func Brewer(name string, n int) (palette.Palette, error) {
	if n < 3 {
		n = 3
	}
	p, err := brewer.GetPalette(brewer.TypeAny, name, n)
	if err != nil {
		return nil, fmt.Errorf("colour: %w", err)
	}
	return p, nil
}
