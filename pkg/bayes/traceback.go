// 14 Oct 2026

package bayes

import "fmt"

// TracebackError says where a traceback went wrong. It should never be
// seen. If it is, the direction matrix does not match the scores.
type TracebackError struct {
	Row, Col int  // cell where we gave up
	Step     int  // number of moves already read
	Move     Move // what was in the cell
}

func (e *TracebackError) Error() string {
	return fmt.Sprintf("%v at (%d,%d) after %d steps, move %v (%d)",
		ErrCorruptedTraceback, e.Row, e.Col, e.Step, e.Move, byte(e.Move))
}

// Unwrap lets errors.Is find ErrCorruptedTraceback.
func (e *TracebackError) Unwrap() error { return ErrCorruptedTraceback }

// endCell finds where the alignment ends. The corner is the first
// candidate. Then we look down the last column and along the last row,
// and only take a cell if its score is strictly higher. Row 0 and
// column 0 are left out. An alignment ending there has no aligned
// bases at all.
func endCell(scr [][]float64) (iEnd, jEnd int) {
	nr := len(scr)
	nc := len(scr[0])
	iEnd, jEnd = nr-1, nc-1
	best := scr[iEnd][jEnd]
	for i, col := 1, nc-1; i < nr; i++ { // Look in last column
		if scr[i][col] > best { //          for highest score
			best = scr[i][col]
			iEnd, jEnd = i, col
		}
	}
	for j, row := 1, nr-1; j < nc; j++ { // Look in last row
		if scr[row][j] > best { //          for highest score
			best = scr[row][j]
			iEnd, jEnd = row, j
		}
	}
	return iEnd, jEnd
}

// traceback walks back from (iEnd, jEnd) to the origin, collecting
// moves, then reverses them. A path from (i,j) cannot have more than
// i+j+1 moves, so if we go further, we have a loop or rubbish.
func traceback(dir [][]byte, iEnd, jEnd int) (Cigar, error) {
	maxStep := iEnd + jEnd + 1
	rev := make(Cigar, 0, maxStep)
	i, j := iEnd, jEnd
	for step := 0; ; step++ {
		if step >= maxStep || i < 0 || j < 0 {
			tbe := &TracebackError{Row: i, Col: j, Step: step}
			if i >= 0 && j >= 0 {
				tbe.Move = Move(dir[i][j])
			}
			return nil, tbe
		}
		mv := Move(dir[i][j])
		if !mv.valid() {
			return nil, &TracebackError{Row: i, Col: j, Step: step, Move: mv}
		}
		rev = append(rev, mv)
		switch mv {
		case Origin:
			for l, r := 0, len(rev)-1; l < r; l, r = l+1, r-1 {
				rev[l], rev[r] = rev[r], rev[l]
			}
			return rev, nil
		case MatchDiag, MismatchDiag, WildcardDiag:
			i--
			j--
		case GapInReference, BoundaryReference:
			i--
		case GapInQuery, BoundaryQuery:
			j--
		}
	}
}
