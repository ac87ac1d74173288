// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package layout computes the drawing instructions for a motif diagram.
//
// A diagram has a legend row followed by one track per sequence. Each track
// holds the sequence label, a backbone drawn narrow over the flanks and wide
// over the exon, and a mark for every motif occurrence.
package layout

import (
	"io"

	"github.com/biogo/motifs/catalog"
	"github.com/biogo/motifs/colour"
)

// Diagram geometry in canvas units.
const (
	Margin      = 50
	RowHeight   = 150
	LegendPitch = 100

	NarrowWidth = 10
	WideWidth   = 30
	MarkWidth   = 30
)

// Backbone is the colour of track labels and backbones.
var Backbone = colour.RGB{R: 0.5, G: 0.5, B: 0.5}

// Motif is the drawing description of a motif.
type Motif struct {
	Label string
	Len   int
	Color colour.RGB
}

// Drawing is a sized, ordered list of instructions.
type Drawing struct {
	Width, Height float64
	Instructions  []Instruction
}

// WriteTo writes one instruction per line to w.
func (d *Drawing) WriteTo(w io.Writer) (int64, error) {
	var n int64
	for _, ins := range d.Instructions {
		c, err := io.WriteString(w, ins.String()+"\n")
		n += int64(c)
		if err != nil {
			return n, err
		}
	}
	return n, nil
}

// Layout returns the drawing for the records and motifs. hits[i][j] holds
// the ascending start offsets of motif j in record i; a missing entry means
// no occurrences. Marks are drawn in motif order so later motifs sit on top.
func Layout(recs catalog.Catalog, motifs []Motif, hits [][][]int) *Drawing {
	d := &Drawing{
		Width:  float64(recs.MaxLen() + 2*Margin),
		Height: float64((len(recs) + 1) * RowHeight),
	}
	add := func(ins ...Instruction) { d.Instructions = append(d.Instructions, ins...) }

	for i, m := range motifs {
		add(
			MoveTo{X: float64(LegendPitch*(i+1) - Margin), Y: Margin},
			SetColor{Color: m.Color},
			ShowText{Text: m.Label},
		)
	}

	for i, r := range recs {
		top := float64((i + 1) * RowHeight)
		y := top + Margin
		add(
			SetColor{Color: Backbone},
			MoveTo{X: Margin, Y: top},
			ShowText{Text: r.Label()},
		)
		for _, s := range r.Segments() {
			w := float64(NarrowWidth)
			if s.Region == catalog.Exon {
				w = WideWidth
			}
			add(
				SetLineWidth{Width: w},
				MoveTo{X: float64(Margin + s.Start), Y: y},
				LineTo{X: float64(Margin + s.End), Y: y},
				Stroke{},
			)
		}

		if i >= len(hits) {
			continue
		}
		for j, m := range motifs {
			if j >= len(hits[i]) || len(hits[i][j]) == 0 {
				continue
			}
			add(SetLineWidth{Width: MarkWidth}, SetColor{Color: m.Color})
			for _, off := range hits[i][j] {
				add(
					MoveTo{X: float64(Margin + off), Y: y},
					LineTo{X: float64(Margin + off + m.Len), Y: y},
					Stroke{},
				)
			}
		}
	}
	return d
}
