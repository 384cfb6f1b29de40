// 18 Oct 2026

// Package report keeps statistics on a trimming run. For each read
// found to have the linker, Tally looks at the alignment and counts,
// for every linker position, what happened there. A position of the
// linker that often has mismatches or gaps says something about the
// library prep or the linker given on the command line.
package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/bayesalign/pkg/bayes"
)

// Columns of the tally.
const (
	colMatch = iota
	colMismatch
	colWild
	colGapRef
	colGapQry
	nCol
)

var colNames = [nCol]string{"match", "mismatch", "wildcard", "gap_ref", "gap_query"}

// Tally is not safe for concurrent use. In the trimming pipeline it is
// only called from the ordered, sequential stage.
type Tally struct {
	linker []byte
	counts *matrix.FMatrix2d // [linker position][column]
	nAln   int
}

// NewTally makes a tally with one row per linker base.
func NewTally(linker []byte) *Tally {
	return &Tally{
		linker: linker,
		counts: matrix.NewFMatrix2d(len(linker), nCol),
	}
}

// Add walks along the cigar. An insertion in the read is put on the
// linker position before it, or the first position if there is none.
func (t *Tally) Add(cigar bayes.Cigar) error {
	mat := t.counts.Mat
	i := 0
	for _, mv := range cigar {
		var col int
		switch mv {
		case bayes.Origin, bayes.BoundaryQuery:
			continue
		case bayes.BoundaryReference:
			i++
			continue
		case bayes.MatchDiag:
			col = colMatch
		case bayes.MismatchDiag:
			col = colMismatch
		case bayes.WildcardDiag:
			col = colWild
		case bayes.GapInReference:
			col = colGapRef
		case bayes.GapInQuery:
			col = colGapQry
		default:
			return fmt.Errorf("tally: unknown move %d", byte(mv))
		}
		pos := i
		if mv == bayes.GapInQuery && pos > 0 {
			pos--
		}
		if pos >= len(mat) {
			return fmt.Errorf("tally: cigar %v longer than linker of %d", cigar, len(mat))
		}
		mat[pos][col]++
		if r, _ := mv.Consumes(); r {
			i++
		}
	}
	t.nAln++
	return nil
}

// N is the number of alignments added.
func (t *Tally) N() int { return t.nAln }

// Count returns the tally for one linker position and a column name,
// as in the csv header. It returns -1 for a name it does not know.
func (t *Tally) Count(pos int, name string) float32 {
	for i, s := range colNames {
		if s == name {
			return t.counts.Mat[pos][i]
		}
	}
	return -1
}

// WriteCSV writes one line per linker position. Counts are also given
// as a fraction of alignments, since not every alignment reaches the
// end of the linker.
func (t *Tally) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	hdr := []string{"pos", "base"}
	hdr = append(hdr, colNames[:]...)
	hdr = append(hdr, "frac_match")
	if err := cw.Write(hdr); err != nil {
		return err
	}
	const prec = 4
	for pos, row := range t.counts.Mat {
		rec := []string{strconv.Itoa(pos + 1), string(t.linker[pos])}
		var tot float32
		for _, c := range row {
			rec = append(rec, strconv.FormatFloat(float64(c), 'f', -1, 32))
			tot += c
		}
		frac := 0.
		if tot > 0 {
			frac = float64(row[colMatch] / tot)
		}
		rec = append(rec, strconv.FormatFloat(frac, 'f', prec, 64))
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
