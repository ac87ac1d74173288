// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package catalog holds nucleotide sequence records whose letter case marks
// the flanking and exon regions of a transcript.
//
// A record is read as a leading lower case run, the 5' flank, followed by an
// upper case run, the exon. Everything after the exon is the 3' flank. Only a
// single exon is recognised.
package catalog

import (
	"errors"
	"fmt"

	"github.com/biogo/store/step"
)

var (
	ErrEmptySequence = errors.New("catalog: empty sequence")
	ErrEmptyInput    = errors.New("catalog: no sequences")
)

// Region is the structural class of a sequence position.
type Region int

const (
	FivePrime Region = iota
	Exon
	ThreePrime
)

// Equal returns whether r equals e. Equal assumes the underlying type of e is a Region.
func (r Region) Equal(e step.Equaler) bool { return r == e.(Region) }

func (r Region) String() string {
	switch r {
	case FivePrime:
		return "5'flank"
	case Exon:
		return "exon"
	case ThreePrime:
		return "3'flank"
	}
	return fmt.Sprintf("Region(%d)", int(r))
}

// Segment is a half-open interval [Start, End) of a record in a single region.
type Segment struct {
	Start, End int
	Region     Region
}

// Len returns the length of the segment.
func (s Segment) Len() int { return s.End - s.Start }

// Record is an immutable sequence record.
type Record struct {
	ID    string
	Desc  string
	bases []byte

	flank, exon int
}

// NewRecord returns a record holding a copy of bases.
func NewRecord(id, desc string, bases []byte) (*Record, error) {
	if len(bases) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrEmptySequence, id)
	}
	r := &Record{
		ID:    id,
		Desc:  desc,
		bases: append([]byte(nil), bases...),
	}
	for r.flank < len(r.bases) && isLower(r.bases[r.flank]) {
		r.flank++
	}
	for i := r.flank; i < len(r.bases) && isUpper(r.bases[i]); i++ {
		r.exon++
	}
	return r, nil
}

func isLower(b byte) bool { return 'a' <= b && b <= 'z' }
func isUpper(b byte) bool { return 'A' <= b && b <= 'Z' }

// Label returns the text used to identify the record, its ID followed by
// its description if present.
func (r *Record) Label() string {
	if r.Desc == "" {
		return r.ID
	}
	return r.ID + " " + r.Desc
}

// Bases returns the record's letters. The returned slice must not be modified.
func (r *Record) Bases() []byte { return r.bases }

// Len returns the number of letters in the record.
func (r *Record) Len() int { return len(r.bases) }

// FivePrime returns the 5' flank segment.
func (r *Record) FivePrime() Segment { return Segment{Start: 0, End: r.flank, Region: FivePrime} }

// Exon returns the exon segment.
func (r *Record) Exon() Segment {
	return Segment{Start: r.flank, End: r.flank + r.exon, Region: Exon}
}

// ThreePrime returns the 3' flank segment.
func (r *Record) ThreePrime() Segment {
	return Segment{Start: r.flank + r.exon, End: len(r.bases), Region: ThreePrime}
}

// Segments returns the non-empty region segments of the record in order.
func (r *Record) Segments() []Segment {
	v, err := step.New(0, len(r.bases), FivePrime)
	if err != nil {
		panic(err)
	}
	for _, s := range []Segment{r.Exon(), r.ThreePrime()} {
		if s.Len() > 0 {
			v.SetRange(s.Start, s.End, s.Region)
		}
	}
	var segs []Segment
	v.Do(func(start, end int, e step.Equaler) {
		segs = append(segs, Segment{Start: start, End: end, Region: e.(Region)})
	})
	return segs
}

// Catalog is an ordered collection of records.
type Catalog []*Record

// MaxLen returns the length of the longest record in c.
func (c Catalog) MaxLen() int {
	var max int
	for _, r := range c {
		if r.Len() > max {
			max = r.Len()
		}
	}
	return max
}
