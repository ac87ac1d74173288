// Copyright ©2026 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// vismotif draws the locations of nucleotide motifs on the exon and flank
// structure of a set of FASTA sequences. Lower case letters mark flanks and
// upper case letters mark the exon.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"gonum.org/v1/plot/palette"

	"github.com/biogo/motifs/catalog"
	"github.com/biogo/motifs/colour"
	"github.com/biogo/motifs/diagram"
	"github.com/biogo/motifs/layout"
	"github.com/biogo/motifs/render"
)

var (
	inf     = flag.String("fasta", "", "input FASTA file name. Defaults to stdin.")
	motf    = flag.String("motif", "", "motif file name, one motif per line (required).")
	outf    = flag.String("out", "motifs.svg", "output file name. The format is taken from the extension.")
	colf    = flag.String("colors", "", "colour file name, one hex or (r,g,b) colour per motif.")
	brew    = flag.String("palette", "", "ColorBrewer palette name used instead of the default colours, e.g. Set1.")
	gfff    = flag.String("gff", "", "write motif occurrences as GFF to this file.")
	overlap = flag.Bool("overlap", true, "report overlapping motif occurrences.")
	help    = flag.Bool("help", false, "help prints this message.")
)

func main() {
	flag.Parse()
	if *help {
		flag.Usage()
		os.Exit(0)
	}
	if *motf == "" {
		flag.Usage()
		os.Exit(1)
	}

	var in io.Reader
	if *inf == "" || *inf == "-" {
		in = os.Stdin
	} else {
		f, err := os.Open(*inf)
		if err != nil {
			log.Fatalf("failed to open %q: %v", *inf, err)
		}
		defer f.Close()
		in = f
	}
	recs, skipped, err := catalog.Read(in)
	if err != nil {
		log.Fatalf("failed to read sequences: %v", err)
	}
	for _, id := range skipped {
		log.Printf("warning: skipped empty record %q", id)
	}

	motifs, err := readLines(*motf)
	if err != nil {
		log.Fatalf("failed to read motifs: %v", err)
	}
	var supplied palette.Palette
	switch {
	case *colf != "" && *brew != "":
		log.Fatal("only one of -colors and -palette may be given")
	case *colf != "":
		lines, err := readLines(*colf)
		if err != nil {
			log.Fatalf("failed to read colours: %v", err)
		}
		p, err := colour.ParsePalette(lines)
		if err != nil {
			log.Fatalf("failed to parse colours in %q: %v", *colf, err)
		}
		supplied = p
	case *brew != "":
		supplied, err = colour.Brewer(*brew, len(motifs))
		if err != nil {
			log.Fatalf("failed to get palette %q: %v", *brew, err)
		}
	}

	d, err := diagram.Build(recs, motifs, supplied, *overlap)
	if err != nil {
		log.Fatal(err)
	}
	if err := d.Empty(); err != nil {
		log.Printf("warning: %v", err)
	}
	for i, r := range d.Records {
		log.Printf("%s: %d bases, %d motif occurrences", r.ID, r.Len(), d.Count(i))
	}

	err = writeImage(*outf, d.Drawing)
	if err != nil {
		log.Fatalf("failed to write %q: %v", *outf, err)
	}

	if *gfff != "" {
		err = writeGFF(*gfff, d)
		if err != nil {
			log.Fatalf("failed to write %q: %v", *gfff, err)
		}
	}
}

// readLines returns the trimmed non-blank lines of the named file.
func readLines(name string) ([]string, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		l := strings.TrimSpace(sc.Text())
		if l == "" {
			continue
		}
		lines = append(lines, l)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return lines, nil
}

// writeImage renders d in the format named by the extension of name. The
// file is only created once the drawing has been rendered.
func writeImage(name string, d *layout.Drawing) error {
	cv, err := render.New(render.Format(name), d.Width, d.Height)
	if err != nil {
		return err
	}
	cv.Draw(d.Instructions...)

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	buf := bufio.NewWriter(f)
	_, err = cv.WriteTo(buf)
	if err == nil {
		err = buf.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func writeGFF(name string, d *diagram.Diagram) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	buf := bufio.NewWriter(f)
	err = d.WriteGFF(buf)
	if err == nil {
		err = buf.Flush()
	}
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
