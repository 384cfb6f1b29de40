// 15 Oct 2026

package bayes

import (
	"fmt"
	"strings"

	"github.com/andrew-torda/bayesalign/pkg/seq/common"
)

// Rendered is the aligned part of an alignment as three strings of the
// same length, ready for printing one above the other.
// It is only for looking at. Nothing else depends on it.
type Rendered struct {
	Query    string // read, with gaps
	Marker   string // | for match, : for wildcard, blank otherwise
	Ref      string // linker, with gaps
	RefStart int    // 0-based position of first aligned linker base
	QryStart int    // and read base
}

// String puts the three lines together, read on top.
func (r Rendered) String() string {
	return r.Query + "\n" + r.Marker + "\n" + r.Ref
}

// Render walks along a cigar and builds the three lines.
// Boundary moves are overhangs. They are skipped, but we note how far
// they take us.
func Render(ref, qry []byte, cigar Cigar) (Rendered, error) {
	var r Rendered
	var sq, sm, sr strings.Builder
	const gap = common.GapChar
	i, j := 0, 0
	for n, mv := range cigar {
		cr, cq := mv.Consumes()
		if (cr && i >= len(ref)) || (cq && j >= len(qry)) {
			return r, fmt.Errorf("cigar runs off the end of the sequences at move %d (%v)", n, mv)
		}
		switch mv {
		case Origin:
		case BoundaryReference:
			r.RefStart++
		case BoundaryQuery:
			r.QryStart++
		case MatchDiag:
			sq.WriteByte(qry[j])
			sm.WriteByte('|')
			sr.WriteByte(ref[i])
		case MismatchDiag:
			sq.WriteByte(qry[j])
			sm.WriteByte(' ')
			sr.WriteByte(ref[i])
		case WildcardDiag:
			sq.WriteByte(qry[j])
			sm.WriteByte(':')
			sr.WriteByte(ref[i])
		case GapInReference:
			sq.WriteByte(gap)
			sm.WriteByte(' ')
			sr.WriteByte(ref[i])
		case GapInQuery:
			sq.WriteByte(qry[j])
			sm.WriteByte(' ')
			sr.WriteByte(gap)
		default:
			return r, fmt.Errorf("unknown move %d at position %d", byte(mv), n)
		}
		if cr {
			i++
		}
		if cq {
			j++
		}
	}
	r.Query, r.Marker, r.Ref = sq.String(), sm.String(), sr.String()
	return r, nil
}
