// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render draws layout instructions onto gonum/plot vector graphics
// canvases.
package render

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/font/liberation"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgeps"
	_ "gonum.org/v1/plot/vg/vgimg"
	_ "gonum.org/v1/plot/vg/vgpdf"
	_ "gonum.org/v1/plot/vg/vgsvg"

	"github.com/biogo/motifs/layout"
)

// FontSize is the size of label and legend text.
const FontSize = 25

var ErrUnsupportedFormat = errors.New("render: unsupported format")

var (
	fonts = font.NewCache(liberation.Collection())
	sans  = font.Font{Typeface: "Liberation", Variant: "Sans"}
)

// Format returns the output format implied by the extension of path,
// defaulting to svg.
func Format(path string) string {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	if ext == "" {
		return "svg"
	}
	return ext
}

// Canvas replays layout instructions onto a gonum/plot canvas.
type Canvas struct {
	vg.CanvasWriterTo

	face   font.Face
	height vg.Length
	path   vg.Path
	pen    vg.Point
}

// New returns a Canvas of the given size in points for the named format,
// one of svg, png, jpg, jpeg, tif, tiff, pdf or eps.
func New(format string, width, height float64) (*Canvas, error) {
	w, h := vg.Points(width), vg.Points(height)
	c, err := draw.NewFormattedCanvas(w, h, format)
	if err != nil {
		return nil, fmt.Errorf("%w %q", ErrUnsupportedFormat, format)
	}
	return &Canvas{
		CanvasWriterTo: c,
		face:           fonts.Lookup(sans, FontSize),
		height:         h,
	}, nil
}

// point converts top left origin coordinates to the canvas's bottom left origin.
func (c *Canvas) point(x, y float64) vg.Point {
	return vg.Point{X: vg.Points(x), Y: c.height - vg.Points(y)}
}

// Draw performs the instructions in order.
func (c *Canvas) Draw(ins ...layout.Instruction) {
	for _, i := range ins {
		switch i := i.(type) {
		case layout.MoveTo:
			c.pen = c.point(i.X, i.Y)
			c.path.Move(c.pen)
		case layout.LineTo:
			c.pen = c.point(i.X, i.Y)
			c.path.Line(c.pen)
		case layout.Stroke:
			c.Stroke(c.path)
			c.path = nil
		case layout.SetColor:
			c.SetColor(i.Color)
		case layout.SetLineWidth:
			c.SetLineWidth(vg.Points(i.Width))
		case layout.ShowText:
			c.FillString(c.face, c.pen, i.Text)
			c.pen.X += c.face.Width(i.Text)
			c.path = nil
		default:
			panic(fmt.Sprintf("render: unknown instruction %T", i))
		}
	}
}

// Render draws d onto a new canvas in the given format and writes it to w.
func Render(w io.Writer, format string, d *layout.Drawing) error {
	c, err := New(format, d.Width, d.Height)
	if err != nil {
		return err
	}
	c.Draw(d.Instructions...)
	_, err = c.WriteTo(w)
	return err
}
