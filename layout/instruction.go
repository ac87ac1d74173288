// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package layout

import (
	"fmt"

	"github.com/biogo/motifs/colour"
)

// Instruction is a single drawing operation. Coordinates are absolute canvas
// units with the origin at the top left.
type Instruction interface {
	fmt.Stringer
	instruction()
}

// MoveTo sets the current point, starting a new sub-path.
type MoveTo struct{ X, Y float64 }

// LineTo adds a line from the current point to (X, Y).
type LineTo struct{ X, Y float64 }

// Stroke strokes the current path and clears it.
type Stroke struct{}

// SetColor sets the colour for subsequent strokes and text.
type SetColor struct{ Color colour.RGB }

// SetLineWidth sets the width of subsequent strokes.
type SetLineWidth struct{ Width float64 }

// ShowText draws Text with its baseline origin at the current point.
type ShowText struct{ Text string }

func (MoveTo) instruction()       {}
func (LineTo) instruction()       {}
func (Stroke) instruction()       {}
func (SetColor) instruction()     {}
func (SetLineWidth) instruction() {}
func (ShowText) instruction()     {}

func (i MoveTo) String() string { return fmt.Sprintf("move %g %g", i.X, i.Y) }
func (i LineTo) String() string { return fmt.Sprintf("line %g %g", i.X, i.Y) }
func (Stroke) String() string   { return "stroke" }
func (i SetColor) String() string {
	return fmt.Sprintf("color %g %g %g", i.Color.R, i.Color.G, i.Color.B)
}
func (i SetLineWidth) String() string { return fmt.Sprintf("width %g", i.Width) }
func (i ShowText) String() string     { return fmt.Sprintf("text %q", i.Text) }
