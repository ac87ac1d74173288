// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package motif

// MatchAt returns whether p matches s starting at position i.
func (p *Pattern) MatchAt(s []byte, i int) bool {
	if i < 0 || i+len(p.sets) > len(s) {
		return false
	}
	for j, set := range p.sets {
		if literal[s[i+j]]&set == 0 {
			return false
		}
	}
	return true
}

// FindAll returns the start positions of all occurrences of p in s in
// ascending order. The window advances by one position after a failed trial
// and after a hit when p is overlapping; otherwise it advances past the hit.
// FindAll returns nil if there are no occurrences.
func (p *Pattern) FindAll(s []byte) []int {
	var hits []int
	n := len(p.sets)
	for i := 0; i+n <= len(s); {
		if !p.MatchAt(s, i) {
			i++
			continue
		}
		hits = append(hits, i)
		if p.overlap {
			i++
		} else {
			i += n
		}
	}
	return hits
}
