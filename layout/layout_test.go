// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"bytes"
	"testing"

	"gopkg.in/check.v1"

	"github.com/biogo/motifs/catalog"
	"github.com/biogo/motifs/colour"
)

func Test(t *testing.T) { check.TestingT(t) }

type S struct{}

var _ = check.Suite(&S{})

var (
	red  = colour.RGB{R: 1}
	blue = colour.RGB{B: 1}
)

func record(c *check.C, id, bases string) *catalog.Record {
	r, err := catalog.NewRecord(id, "", []byte(bases))
	c.Assert(err, check.IsNil)
	return r
}

func (s *S) TestSingleTrack(c *check.C) {
	recs := catalog.Catalog{record(c, "seq1", "acgtACGTacgt")}
	motifs := []Motif{{Label: "ACGT", Len: 4, Color: red}}
	d := Layout(recs, motifs, [][][]int{{{4}}})

	c.Check(d.Width, check.Equals, 112.0)
	c.Check(d.Height, check.Equals, 300.0)
	c.Check(d.Instructions, check.DeepEquals, []Instruction{
		MoveTo{50, 50},
		SetColor{red},
		ShowText{"ACGT"},

		SetColor{Backbone},
		MoveTo{50, 150},
		ShowText{"seq1"},
		SetLineWidth{NarrowWidth},
		MoveTo{50, 200},
		LineTo{54, 200},
		Stroke{},
		SetLineWidth{WideWidth},
		MoveTo{54, 200},
		LineTo{58, 200},
		Stroke{},
		SetLineWidth{NarrowWidth},
		MoveTo{58, 200},
		LineTo{62, 200},
		Stroke{},

		SetLineWidth{MarkWidth},
		SetColor{red},
		MoveTo{54, 200},
		LineTo{58, 200},
		Stroke{},
	})
}

func (s *S) TestTracksAndLegend(c *check.C) {
	recs := catalog.Catalog{
		record(c, "short", "ACGT"),
		record(c, "long", "aaaaaaaaaaGGGGGGGGGG"),
	}
	motifs := []Motif{
		{Label: "GG", Len: 2, Color: red},
		{Label: "AAA", Len: 3, Color: blue},
	}
	hits := [][][]int{
		{nil, nil},
		{{10, 12, 14, 16, 18}, {0, 3}},
	}
	d := Layout(recs, motifs, hits)
	c.Check(d.Width, check.Equals, 120.0)
	c.Check(d.Height, check.Equals, 450.0)

	var (
		legend []MoveTo
		labels []MoveTo
		marks  []MoveTo
		colors []colour.RGB
		cur    colour.RGB
		pen    MoveTo
	)
	for _, ins := range d.Instructions {
		switch ins := ins.(type) {
		case ShowText:
			// Legend text is preceded by its colour, not its position.
			if pen.Y == Margin {
				legend = append(legend, pen)
			} else {
				labels = append(labels, pen)
			}
		case SetColor:
			cur = ins.Color
			colors = append(colors, ins.Color)
		case MoveTo:
			pen = ins
			if ins.Y != Margin && cur != Backbone {
				marks = append(marks, ins)
			}
		}
	}
	c.Check(legend, check.DeepEquals, []MoveTo{{50, 50}, {150, 50}})
	c.Check(labels, check.DeepEquals, []MoveTo{{50, 150}, {50, 300}})
	c.Check(colors, check.DeepEquals, []colour.RGB{red, blue, Backbone, Backbone, red, blue})
	c.Check(marks, check.DeepEquals, []MoveTo{
		{60, 350}, {62, 350}, {64, 350}, {66, 350}, {68, 350},
		{50, 350}, {53, 350},
	})
}

func (s *S) TestLegendOrder(c *check.C) {
	motifs := []Motif{
		{Label: "GG", Len: 2, Color: red},
		{Label: "AAA", Len: 3, Color: blue},
	}
	d := Layout(catalog.Catalog{record(c, "s", "ACGT")}, motifs, nil)
	c.Check(d.Instructions[:6], check.DeepEquals, []Instruction{
		MoveTo{50, 50}, SetColor{red}, ShowText{"GG"},
		MoveTo{150, 50}, SetColor{blue}, ShowText{"AAA"},
	})
}

func (s *S) TestMarkOrder(c *check.C) {
	recs := catalog.Catalog{record(c, "s", "ccccc")}
	motifs := []Motif{
		{Label: "CC", Len: 2, Color: red},
		{Label: "CCC", Len: 3, Color: blue},
	}
	d := Layout(recs, motifs, [][][]int{{{0, 2}, {1}}})
	want := []Instruction{
		SetLineWidth{MarkWidth},
		SetColor{red},
		MoveTo{50, 200},
		LineTo{52, 200},
		Stroke{},
		MoveTo{52, 200},
		LineTo{54, 200},
		Stroke{},
		SetLineWidth{MarkWidth},
		SetColor{blue},
		MoveTo{51, 200},
		LineTo{54, 200},
		Stroke{},
	}
	c.Assert(len(d.Instructions) > len(want), check.Equals, true)
	c.Check(d.Instructions[len(d.Instructions)-len(want):], check.DeepEquals, want)
}

func (s *S) TestEmpty(c *check.C) {
	motifs := []Motif{{Label: "A", Len: 1, Color: red}}
	d := Layout(nil, motifs, nil)
	c.Check(d.Height, check.Equals, float64(RowHeight))
	c.Check(d.Width, check.Equals, float64(2*Margin))
	c.Check(d.Instructions, check.HasLen, 3)

	recs := catalog.Catalog{record(c, "a", "acgtACGT"), record(c, "b", "TTTT")}
	d = Layout(recs, nil, nil)
	c.Check(d.Height, check.Equals, 3.0*RowHeight)
	for _, ins := range d.Instructions {
		if w, ok := ins.(SetLineWidth); ok {
			c.Check(w.Width == NarrowWidth || w.Width == WideWidth, check.Equals, true)
		}
		if col, ok := ins.(SetColor); ok {
			c.Check(col.Color, check.Equals, Backbone)
		}
	}
}

func (s *S) TestDeterministic(c *check.C) {
	recs := catalog.Catalog{
		record(c, "a", "ttgcaTGCATGccc"),
		record(c, "b", "acgtACGTacgtACGT"),
	}
	motifs := []Motif{{Label: "TGCATG", Len: 6, Color: red}, {Label: "ACG", Len: 3, Color: blue}}
	hits := [][][]int{{{1, 5}, nil}, {nil, {0, 4, 8, 12}}}

	var a, b bytes.Buffer
	_, err := Layout(recs, motifs, hits).WriteTo(&a)
	c.Assert(err, check.IsNil)
	_, err = Layout(recs, motifs, hits).WriteTo(&b)
	c.Assert(err, check.IsNil)
	c.Check(a.String(), check.Equals, b.String())
	c.Check(a.Len() > 0, check.Equals, true)
}
