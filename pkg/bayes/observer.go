// 15 Oct 2026

package bayes

import (
	"log"
	"strings"

	"github.com/andrew-torda/bayesalign/pkg/dpmat"
)

// Matrices are the four co-indexed matrices of one alignment. They have
// len(ref)+1 rows and len(qry)+1 columns. They only live for one call
// to Align, unless an Observer hangs on to them.
type Matrices struct {
	Score *dpmat.DMatrix2d // log likelihood ratio
	SL    *dpmat.DMatrix2d // likelihood if linker
	SLP   *dpmat.DMatrix2d // likelihood if not linker
	Dir   *dpmat.BMatrix2d // Move used to get to each cell
}

func newMatrices(nrow, ncol int) *Matrices {
	return &Matrices{
		Score: dpmat.NewDMatrix2d(nrow, ncol),
		SL:    dpmat.NewDMatrix2d(nrow, ncol),
		SLP:   dpmat.NewDMatrix2d(nrow, ncol),
		Dir:   dpmat.NewBMatrix2d(nrow, ncol),
	}
}

// Move returns the move recorded at cell (i,j).
func (m *Matrices) Move(i, j int) Move { return Move(m.Dir.Mat[i][j]) }

// String dumps all four matrices. Only for debugging.
func (m *Matrices) String() string {
	var b strings.Builder
	b.WriteString("score:\n")
	b.WriteString(m.Score.Sprintf("%8.2f"))
	b.WriteString("P(S|L):\n")
	b.WriteString(m.SL.String())
	b.WriteString("P(S|L'):\n")
	b.WriteString(m.SLP.String())
	b.WriteString("dir:\n")
	b.WriteString(m.Dir.Sprint(func(c byte) string { return Move(c).String() }))
	return b.String()
}

// Observer is told about each interior cell as it is filled and gets
// the full set of matrices at the end. Observers are for debugging.
// They must not change the matrices.
type Observer interface {
	Cell(i, j int, mv Move, scr float64)
	Filled(m *Matrices)
}

// LogObserver writes to a logger, log.Default() if Log is nil. Without
// Cells, it only dumps the matrices at the end.
type LogObserver struct {
	Log   *log.Logger
	Cells bool
}

func (o *LogObserver) logger() *log.Logger {
	if o.Log == nil {
		return log.Default()
	}
	return o.Log
}

func (o *LogObserver) Cell(i, j int, mv Move, scr float64) {
	if o.Cells {
		o.logger().Printf("cell (%d,%d) move %v score %.4f", i, j, mv, scr)
	}
}

func (o *LogObserver) Filled(m *Matrices) {
	nr, nc := m.Score.Size()
	o.logger().Printf("filled %d x %d\n%v", nr, nc, m)
}
