// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package diagram builds motif diagrams from sequence records and motifs.
package diagram

import (
	"fmt"
	"runtime"
	"sync"

	"gonum.org/v1/plot/palette"

	"github.com/biogo/motifs/catalog"
	"github.com/biogo/motifs/colour"
	"github.com/biogo/motifs/layout"
	"github.com/biogo/motifs/motif"
)

// Diagram holds the validated inputs, the motif occurrences and the drawing.
type Diagram struct {
	Records  catalog.Catalog
	Patterns []*motif.Pattern
	Colors   []colour.RGB

	// Hits[i][j] holds the ascending start offsets of
	// Patterns[j] in Records[i].
	Hits [][][]int

	Drawing *layout.Drawing
}

// Build compiles the motifs, assigns their colours from supplied, or from
// the default palette if supplied is nil, finds every occurrence of each
// motif in each record and lays out the drawing. All motifs and colours are
// validated before any matching or drawing is done.
func Build(recs catalog.Catalog, motifs []string, supplied palette.Palette, overlap bool) (*Diagram, error) {
	d := &Diagram{
		Records:  recs,
		Patterns: make([]*motif.Pattern, len(motifs)),
		Colors:   make([]colour.RGB, len(motifs)),
	}
	for i, m := range motifs {
		p, err := motif.Compile(m, overlap)
		if err != nil {
			return nil, fmt.Errorf("motif %d: %w", i+1, err)
		}
		d.Patterns[i] = p
	}
	for i := range motifs {
		c, err := colour.Resolve(i, supplied)
		if err != nil {
			return nil, err
		}
		d.Colors[i] = c
	}

	d.Hits = findAll(recs, d.Patterns)

	lm := make([]layout.Motif, len(d.Patterns))
	for i, p := range d.Patterns {
		lm[i] = layout.Motif{Label: p.Motif(), Len: p.Len(), Color: d.Colors[i]}
	}
	d.Drawing = layout.Layout(recs, lm, d.Hits)
	return d, nil
}

// findAll searches every record for every pattern using at most GOMAXPROCS
// concurrent searches. Results are stored by index, so their order does not
// depend on scheduling.
func findAll(recs catalog.Catalog, pats []*motif.Pattern) [][][]int {
	hits := make([][][]int, len(recs))
	for i := range hits {
		hits[i] = make([][]int, len(pats))
	}

	var wg sync.WaitGroup
	limit := make(chan struct{}, runtime.GOMAXPROCS(0))
	for i, r := range recs {
		for j, p := range pats {
			wg.Add(1)
			limit <- struct{}{}
			go func(i, j int, r *catalog.Record, p *motif.Pattern) {
				defer func() {
					<-limit
					wg.Done()
				}()
				hits[i][j] = p.FindAll(r.Bases())
			}(i, j, r, p)
		}
	}
	wg.Wait()
	return hits
}

// Empty returns a non-nil error wrapping catalog.ErrEmptyInput if the
// diagram has no records or no motifs. An empty diagram is still drawable.
func (d *Diagram) Empty() error {
	switch {
	case len(d.Records) == 0:
		return fmt.Errorf("%w: legend only", catalog.ErrEmptyInput)
	case len(d.Patterns) == 0:
		return fmt.Errorf("%w: no motifs, backbones only", catalog.ErrEmptyInput)
	}
	return nil
}

// Count returns the total number of motif occurrences in record i.
func (d *Diagram) Count(i int) int {
	var n int
	for _, h := range d.Hits[i] {
		n += len(h)
	}
	return n
}
