// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package catalog

import (
	"fmt"
	"io"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq"
	"github.com/biogo/biogo/seq/linear"
)

// Read returns the records of the FASTA stream r in order. Letter case is
// preserved and multi-line records are concatenated. An empty stream
// returns an empty Catalog. Records with a header but no sequence are
// left out of the Catalog and their IDs are returned in skipped.
func Read(r io.Reader) (c Catalog, skipped []string, err error) {
	sc := seqio.NewScanner(fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNAredundant)))
	for sc.Next() {
		s := sc.Seq()
		if s.Len() == 0 {
			skipped = append(skipped, s.Name())
			continue
		}
		rec, err := FromSeq(s)
		if err != nil {
			return nil, skipped, err
		}
		c = append(c, rec)
	}
	if err := sc.Error(); err != nil {
		return nil, skipped, fmt.Errorf("catalog: failed during read: %w", err)
	}
	return c, skipped, nil
}

// FromSeq returns a record holding the letters of s.
func FromSeq(s seq.Sequence) (*Record, error) {
	b := make([]byte, 0, s.Len())
	for i := s.Start(); i < s.End(); i++ {
		b = append(b, byte(s.At(i).L))
	}
	return NewRecord(s.Name(), s.Description(), b)
}
