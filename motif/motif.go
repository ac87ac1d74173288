// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package motif compiles nucleotide motifs written with IUPAC ambiguity
// codes and finds their occurrences in sequences.
package motif

import (
	"bytes"
	"errors"
	"fmt"
)

var (
	ErrInvalidMotifCharacter = errors.New("motif: invalid motif character")
	ErrEmptyMotif            = errors.New("motif: empty motif")
)

// Pattern is a compiled motif. The zero Pattern is not valid.
type Pattern struct {
	motif   string
	sets    []uint8
	overlap bool
}

// Compile returns a Pattern for the motif m. Letters of m are case
// insensitive and must be ambiguity codes listed by Codes. If overlap is
// true, FindAll reports occurrences that share positions with a previous
// occurrence, otherwise scanning resumes at the end of each occurrence.
func Compile(m string, overlap bool) (*Pattern, error) {
	if len(m) == 0 {
		return nil, ErrEmptyMotif
	}
	sets := make([]uint8, len(m))
	for i := 0; i < len(m); i++ {
		s := ambiguity[m[i]]
		if s == 0 {
			return nil, fmt.Errorf("%w %q at position %d of %q", ErrInvalidMotifCharacter, m[i], i, m)
		}
		sets[i] = s
	}
	return &Pattern{motif: m, sets: sets, overlap: overlap}, nil
}

// Motif returns the motif text the Pattern was compiled from.
func (p *Pattern) Motif() string { return p.motif }

// Len returns the length of an occurrence of p.
func (p *Pattern) Len() int { return len(p.sets) }

// Overlapping returns whether p reports overlapping occurrences.
func (p *Pattern) Overlapping() bool { return p.overlap }

// String returns the character class form of p, with the classes wrapped in
// a lookahead group when p reports overlapping occurrences.
func (p *Pattern) String() string {
	var buf bytes.Buffer
	buf.WriteByte('(')
	if p.overlap {
		buf.WriteString("?=")
	}
	for _, s := range p.sets {
		buf.WriteByte('[')
		for _, l := range "ACGTU" {
			if s&literal[l] != 0 {
				buf.WriteRune(l)
				buf.WriteRune(l | 0x20)
			}
		}
		buf.WriteByte(']')
	}
	buf.WriteByte(')')
	return buf.String()
}
