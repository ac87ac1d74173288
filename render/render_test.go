// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"gopkg.in/check.v1"
	"gonum.org/v1/plot/vg"

	"github.com/biogo/motifs/colour"
	"github.com/biogo/motifs/layout"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

func (s *S) TestFormat(c *check.C) {
	for i, t := range []struct {
		path string
		want string
	}{
		{"motifs.svg", "svg"},
		{"out/Motifs.PNG", "png"},
		{"figure.pdf", "pdf"},
		{"motifs", "svg"},
	} {
		c.Check(Format(t.path), check.Equals, t.want, check.Commentf("Test %d", i))
	}
}

func (s *S) TestUnsupported(c *check.C) {
	_, err := New("bmp", 10, 10)
	c.Check(errors.Is(err, ErrUnsupportedFormat), check.Equals, true)
}

func drawing() *layout.Drawing {
	return &layout.Drawing{
		Width:  112,
		Height: 300,
		Instructions: []layout.Instruction{
			layout.MoveTo{X: 50, Y: 50},
			layout.SetColor{Color: colour.RGB{R: 1}},
			layout.ShowText{Text: "ACGT"},
			layout.SetColor{Color: layout.Backbone},
			layout.MoveTo{X: 50, Y: 150},
			layout.ShowText{Text: "seq<1>"},
			layout.SetLineWidth{Width: layout.NarrowWidth},
			layout.MoveTo{X: 50, Y: 200},
			layout.LineTo{X: 62, Y: 200},
			layout.Stroke{},
		},
	}
}

func (s *S) TestSVG(c *check.C) {
	var buf bytes.Buffer
	err := Render(&buf, "svg", drawing())
	c.Assert(err, check.IsNil)
	svg := buf.String()
	c.Check(strings.Contains(svg, `width="112pt" height="300pt"`), check.Equals, true, check.Commentf("%s", svg))
	c.Check(strings.Contains(svg, ">ACGT</text>"), check.Equals, true)
	c.Check(strings.Contains(svg, ">seq&lt;1&gt;</text>"), check.Equals, true)
	c.Check(strings.Contains(svg, "fill:#FF0000"), check.Equals, true)
	c.Check(strings.Count(svg, "<path"), check.Equals, 1)
}

func (s *S) TestPNG(c *check.C) {
	var buf bytes.Buffer
	err := Render(&buf, "png", drawing())
	c.Assert(err, check.IsNil)
	c.Check(bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")), check.Equals, true)
}

func (s *S) TestFlip(c *check.C) {
	cv, err := New("svg", 100, 300)
	c.Assert(err, check.IsNil)
	c.Check(cv.point(10, 50), check.Equals, vgPoint(10, 250))
}

func vgPoint(x, y float64) vg.Point { return vg.Point{X: vg.Points(x), Y: vg.Points(y)} }
