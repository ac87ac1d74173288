// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package motif

// Base bits. U shares the T bit.
const (
	baseA uint8 = 1 << iota
	baseC
	baseG
	baseT
)

var (
	// ambiguity maps a motif letter, in either case, to the set of bases it
	// represents. Zero marks a letter outside the table.
	ambiguity [256]uint8

	// literal maps a sequence letter to its base bit. Anything other than
	// a, c, g, t or u in either case is zero and never matches.
	literal [256]uint8
)

func init() {
	for _, e := range []struct {
		code byte
		set  uint8
	}{
		{'T', baseT},
		{'A', baseA},
		{'C', baseC},
		{'U', baseT},
		{'G', baseG},
		{'Y', baseC | baseT},
		{'R', baseA | baseG},
		{'W', baseA | baseT},
		{'S', baseG | baseC},
		{'K', baseT | baseG},
		{'M', baseC | baseA},
		{'N', baseA | baseC | baseG | baseT},
	} {
		ambiguity[e.code] = e.set
		ambiguity[e.code|0x20] = e.set
	}
	for _, e := range []struct {
		l   byte
		bit uint8
	}{
		{'A', baseA}, {'C', baseC}, {'G', baseG}, {'T', baseT}, {'U', baseT},
	} {
		literal[e.l] = e.bit
		literal[e.l|0x20] = e.bit
	}
}

// Codes returns the upper case ambiguity codes accepted by Compile.
func Codes() string { return "TACUGYRWSKMN" }

// Expand returns the upper case literal bases that the ambiguity code l may
// represent, in ACGTU order, and whether l is a known code. Any set holding
// T also holds U.
func Expand(l byte) (string, bool) {
	set := ambiguity[l]
	if set == 0 {
		return "", false
	}
	var b []byte
	for _, e := range []struct {
		l   byte
		bit uint8
	}{
		{'A', baseA}, {'C', baseC}, {'G', baseG}, {'T', baseT}, {'U', baseT},
	} {
		if set&e.bit != 0 {
			b = append(b, e.l)
		}
	}
	return string(b), true
}
