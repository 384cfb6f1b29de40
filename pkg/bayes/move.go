// 13 Oct 2026

package bayes

import (
	"fmt"
	"strconv"
	"strings"
)

// Move says how a cell in the DP matrix was reached.
// The zero value is Origin, which is only ever found at (0,0).
type Move byte

const (
	Origin            Move = iota // top left corner, where every traceback stops
	MatchDiag                     // diagonal, read base equals linker base
	MismatchDiag                  // diagonal, bases differ
	WildcardDiag                  // diagonal, read has an N
	GapInReference                // from (i-1,j), consumes a linker base only
	GapInQuery                    // from (i,j-1), consumes a read base only
	BoundaryReference             // column 0, overhang of the linker
	BoundaryQuery                 // row 0, overhang of the read
	nMove
)

// The one letter codes extend those of the old integer aligner, m, x, n, i, j.
var moveSym = [nMove]byte{
	Origin:            'o',
	MatchDiag:         'm',
	MismatchDiag:      'x',
	WildcardDiag:      'n',
	GapInReference:    'i',
	GapInQuery:        'j',
	BoundaryReference: 'I',
	BoundaryQuery:     'J',
}

// String gives the one letter code for a move, or "?" for rubbish.
func (m Move) String() string {
	if m >= nMove {
		return "?"
	}
	return string(moveSym[m])
}

// valid is false for bytes that are not moves. If one of those turns
// up in a direction matrix, something is badly broken.
func (m Move) valid() bool { return m < nMove }

// Diag is true for the three diagonal moves.
func (m Move) Diag() bool {
	return m == MatchDiag || m == MismatchDiag || m == WildcardDiag
}

// Consumes tells us whether a move uses up a base of the reference
// (linker) and of the query (read).
func (m Move) Consumes() (ref, qry bool) {
	switch m {
	case MatchDiag, MismatchDiag, WildcardDiag:
		return true, true
	case GapInReference, BoundaryReference:
		return true, false
	case GapInQuery, BoundaryQuery:
		return false, true
	}
	return false, false
}

// Classify decides what kind of diagonal move a pair of bases gives.
// An N in the read is a wildcard, whatever the linker has.
func Classify(ref, qry byte) Move {
	switch {
	case qry == 'N':
		return WildcardDiag
	case qry == ref:
		return MatchDiag
	}
	return MismatchDiag
}

// Cigar is the list of moves from the origin to the end of an
// alignment. The first element is always Origin.
type Cigar []Move

// String writes the cigar as one letter per move.
func (c Cigar) String() string {
	b := make([]byte, len(c))
	for i, m := range c {
		b[i] = m.String()[0]
	}
	return string(b)
}

// Lens returns the number of reference and query bases used by a cigar.
func (c Cigar) Lens() (nref, nqry int) {
	for _, m := range c {
		r, q := m.Consumes()
		if r {
			nref++
		}
		if q {
			nqry++
		}
	}
	return
}

// Starts returns the number of reference and query bases eaten by the
// boundary moves at the start. These are the 0-based positions where
// the aligned part begins.
func (c Cigar) Starts() (refStart, qryStart int) {
	for _, m := range c {
		switch m {
		case Origin:
		case BoundaryReference:
			refStart++
		case BoundaryQuery:
			qryStart++
		default:
			return
		}
	}
	return
}

// Compact gives a run length version like "12J7m1i3m". Origin is left out.
func (c Cigar) Compact() string {
	var b strings.Builder
	for i := 0; i < len(c); {
		if c[i] == Origin {
			i++
			continue
		}
		n := 1
		for i+n < len(c) && c[i+n] == c[i] {
			n++
		}
		b.WriteString(strconv.Itoa(n))
		b.WriteString(c[i].String())
		i += n
	}
	return b.String()
}

// ParseCigar reads the one letter per move form written by String.
func ParseCigar(s string) (Cigar, error) {
	c := make(Cigar, len(s))
	for i := 0; i < len(s); i++ {
		found := false
		for m, sym := range moveSym {
			if sym == s[i] {
				c[i], found = Move(m), true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("bad cigar symbol %q at position %d", s[i], i)
		}
	}
	return c, nil
}
