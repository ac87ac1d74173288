// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package diagram

import (
	"io"

	"github.com/biogo/biogo/io/featio/gff"
	"github.com/biogo/biogo/seq"
)

// Source is the GFF source field for exported motif occurrences.
const Source = "vismotif"

// WriteGFF writes every motif occurrence in d to w as a GFF feature.
// Features are written by record, then motif, then offset.
func (d *Diagram) WriteGFF(w io.Writer) error {
	gw := gff.NewWriter(w, 60, true)
	ft := &gff.Feature{
		Source:         Source,
		Feature:        "motif",
		FeatStrand:     seq.Plus,
		FeatFrame:      gff.NoFrame,
		FeatAttributes: gff.Attributes{{Tag: "Motif"}},
	}
	for i, r := range d.Records {
		for j, p := range d.Patterns {
			for _, off := range d.Hits[i][j] {
				ft.SeqName = r.ID
				ft.FeatStart = off
				ft.FeatEnd = off + p.Len()
				ft.FeatAttributes[0].Value = p.Motif()
				if _, err := gw.Write(ft); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
