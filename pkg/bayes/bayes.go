// 13 Oct 2026

// Package bayes aligns a short linker (adapter) sequence against a read
// and decides if the best alignment really is the linker.
//
// The score of a path is the log of the ratio of two likelihoods. One
// assumes the read contains the linker and the only differences come
// from sequencer miscalls (read from the qualities) and PCR errors. The
// other assumes the read bases are random. Along with the score, we carry
// both likelihoods, so at the end we can do a proper posterior test with
// a prior.
//
// The alignment is semi-global. Overhangs of either sequence at the
// start cost nothing, since row 0 and column 0 are all zero, and the
// alignment ends at the best cell in the last row or last column.
//
// There is no affine gap penalty. Every gap step costs the log of the
// PCR error rate.
package bayes

import (
	"errors"
	"fmt"
	"math"

	"github.com/andrew-torda/bayesalign/pkg/errmodel"
)

// Chance of a random base matching or not matching a given base.
const (
	pChanceMatch    = 1. / 4.
	pChanceMismatch = 3. / 4.
)

const dfltMaxCells = 1 << 24 // about 400 MB for the four matrices

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrCorruptedTraceback = errors.New("corrupted traceback")
)

// Config has everything that used to be a global in the old code.
// The zero value is not useful. Start from DefaultConfig.
type Config struct {
	Model      errmodel.Model
	Prior      float64  // a priori probability a read has the linker
	QualOffset int      // 33 for any modern fastq
	MaxCells   int      // refuse to allocate more than this many cells per matrix
	Observer   Observer // nil, unless one wants to watch the matrix being filled
}

// DefaultConfig returns a prior of 0.5, PHRED+33 qualities and the
// default enzyme error model.
func DefaultConfig() *Config {
	return &Config{
		Model:      errmodel.DefaultModel(),
		Prior:      0.5,
		QualOffset: errmodel.PhredOffset,
		MaxCells:   dfltMaxCells,
	}
}

// Result is what comes back from an alignment.
// EndRow and EndCol are the cell where the alignment ends, so they are
// also the number of reference and query bases used by the cigar.
type Result struct {
	EndRow, EndCol int
	Score          float64 // log likelihood ratio at the end cell
	SL, SLP        float64 // likelihood given linker and given not linker
	PLinker        float64 // posterior probability of linker
	PNotLinker     float64
	Cigar          Cigar
	IsLinker       bool
}

// Aligner has the values derived from a Config. It is not changed by
// Align, so one aligner can be shared by many goroutines.
type Aligner struct {
	pcr, lnPCR float64
	prior      float64
	maxCells   int
	tbl        *errmodel.Table
	obs        Observer
}

// NewAligner checks a configuration and gets the tables ready.
func NewAligner(cfg *Config) (*Aligner, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Model.Check(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if !(cfg.Prior > 0 && cfg.Prior < 1) {
		return nil, fmt.Errorf("%w: prior %g not in (0,1)", ErrInvalidInput, cfg.Prior)
	}
	a := &Aligner{
		pcr:      cfg.Model.PCRErrorRate(),
		prior:    cfg.Prior,
		maxCells: cfg.MaxCells,
		tbl:      errmodel.NewTable(cfg.QualOffset),
		obs:      cfg.Observer,
	}
	if a.maxCells <= 0 {
		a.maxCells = dfltMaxCells
	}
	a.lnPCR = math.Log(a.pcr)
	return a, nil
}

// Align is a convenience wrapper for one off alignments.
func Align(ref, qry, qual []byte, cfg *Config) (*Result, error) {
	a, err := NewAligner(cfg)
	if err != nil {
		return nil, err
	}
	return a.Align(ref, qry, qual)
}

// symOK lists the symbols we accept. We do not change case. Lower case
// is an error and it is up to the caller to decide what to do.
var symOK = [256]bool{'A': true, 'C': true, 'G': true, 'T': true, 'N': true}

// check looks at the input before we allocate anything. On the way
// it decodes the qualities, so it returns the miss call probability
// for each read base.
func (a *Aligner) check(ref, qry, qual []byte) ([]float64, error) {
	const badsym = "%w: bad symbol %q at position %d in %s"
	switch {
	case len(ref) == 0:
		return nil, fmt.Errorf("%w: empty reference", ErrInvalidInput)
	case len(qry) == 0:
		return nil, fmt.Errorf("%w: empty query", ErrInvalidInput)
	case len(qry) != len(qual):
		return nil, fmt.Errorf("%w: query length %d, quality length %d",
			ErrInvalidInput, len(qry), len(qual))
	}
	if n := (len(ref) + 1) * (len(qry) + 1); n > a.maxCells {
		return nil, fmt.Errorf("%w: %d x %d needs %d cells, limit %d",
			ErrInvalidInput, len(ref), len(qry), n, a.maxCells)
	}
	for i, c := range ref {
		if !symOK[c] {
			return nil, fmt.Errorf(badsym, ErrInvalidInput, c, i, "reference")
		}
	}
	for i, c := range qry {
		if !symOK[c] {
			return nil, fmt.Errorf(badsym, ErrInvalidInput, c, i, "query")
		}
	}
	miss := make([]float64, len(qual))
	for i, c := range qual {
		p, err := a.tbl.Miss(c)
		if err != nil {
			return nil, fmt.Errorf("%w: quality position %d: %w", ErrInvalidInput, i, err)
		}
		miss[i] = p
	}
	return miss, nil
}

// pick returns 0, 1 or 2 for the diagonal, gap in reference and gap in
// query. Only a strictly bigger value displaces an earlier one, so ties
// go to the diagonal, then to the gap in the reference.
func pick(dg, gi, gj float64) int {
	best, n := dg, 0
	if gi > best {
		best, n = gi, 1
	}
	if gj > best {
		n = 2
	}
	return n
}

// fill does the dynamic programming. Indexing is such that we walk
// along each row, left to right. i is the position in the reference,
// j in the query.
func (a *Aligner) fill(ref, qry []byte, miss []float64) *Matrices {
	nrow, ncol := len(ref)+1, len(qry)+1
	m := newMatrices(nrow, ncol)
	scr, sl, slp, dir := m.Score.Mat, m.SL.Mat, m.SLP.Mat, m.Dir.Mat
	for i := 0; i < nrow; i++ {
		for j := 0; j < ncol; j++ {
			if i == 0 || j == 0 {
				scr[i][j], sl[i][j], slp[i][j] = 0, 1, 1
				switch {
				case i == 0 && j == 0:
					dir[i][j] = byte(Origin)
				case i == 0:
					dir[i][j] = byte(BoundaryQuery)
				default:
					dir[i][j] = byte(BoundaryReference)
				}
				continue
			}
			mv := Classify(ref[i-1], qry[j-1])
			stepL, stepNL := 1., 1. // wildcards tell us nothing
			switch mv {
			case MatchDiag:
				stepL = errmodel.LikelihoodMatch(miss[j-1], a.pcr)
				stepNL = pChanceMatch
			case MismatchDiag:
				stepL = errmodel.LikelihoodMismatch(miss[j-1], a.pcr)
				stepNL = pChanceMismatch
			}
			dg := scr[i-1][j-1]
			if mv != WildcardDiag {
				dg += math.Log(stepL / stepNL)
			}
			gi := scr[i-1][j] + a.lnPCR
			gj := scr[i][j-1] + a.lnPCR

			switch pick(dg, gi, gj) {
			case 0:
				scr[i][j], dir[i][j] = dg, byte(mv)
				sl[i][j] = sl[i-1][j-1] * stepL
				slp[i][j] = slp[i-1][j-1] * stepNL
			case 1:
				scr[i][j], dir[i][j] = gi, byte(GapInReference)
				sl[i][j] = sl[i-1][j] * a.pcr
				slp[i][j] = slp[i-1][j]
			case 2:
				scr[i][j], dir[i][j] = gj, byte(GapInQuery)
				sl[i][j] = sl[i][j-1] * a.pcr
				slp[i][j] = slp[i][j-1]
			}
			if a.obs != nil {
				a.obs.Cell(i, j, Move(dir[i][j]), scr[i][j])
			}
		}
	}
	if a.obs != nil {
		a.obs.Filled(m)
	}
	return m
}

// Align fills the matrices, finds the end of the best alignment, does
// the traceback and the posterior test.
// ref is the linker, qry the read and qual the read's quality string,
// still encoded.
func (a *Aligner) Align(ref, qry, qual []byte) (*Result, error) {
	miss, err := a.check(ref, qry, qual)
	if err != nil {
		return nil, err
	}
	m := a.fill(ref, qry, miss)
	iEnd, jEnd := endCell(m.Score.Mat)
	cigar, err := traceback(m.Dir.Mat, iEnd, jEnd)
	if err != nil {
		return nil, err
	}
	r := &Result{
		EndRow: iEnd,
		EndCol: jEnd,
		Score:  m.Score.Mat[iEnd][jEnd],
		SL:     m.SL.Mat[iEnd][jEnd],
		SLP:    m.SLP.Mat[iEnd][jEnd],
		Cigar:  cigar,
	}
	r.PLinker, r.PNotLinker = posterior(r.SL, r.SLP, r.Score, a.prior)
	r.IsLinker = r.PLinker >= r.PNotLinker
	return r, nil
}
