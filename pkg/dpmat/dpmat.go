// 7 Feb 2018, float64 version Oct 2026

// Package dpmat has the two dimensional arrays used for filling
// dynamic programming matrices.
// Each matrix has one backing slice and Mat is a set of row slices
// pointing into it, so Mat[i][j] works as one would expect, but there is
// only one allocation for the data.
// In the silly case of zero rows or columns, we do not throw any errors or
// panic. Zero columns gives n_row rows of length zero. Zero rows gives no
// space and Size returns 0, 0.
package dpmat

import (
	"fmt"
	"strings"
)

// DMatrix2d is a two dimensional array of float64's
type DMatrix2d struct {
	Mat      [][]float64
	fullData []float64
}

// NewDMatrix2d gives us a two dimensional matrix of n_r x n_c.
func NewDMatrix2d(n_r, n_c int) *DMatrix2d {
	r := new(DMatrix2d)
	r.fullData = make([]float64, n_r*n_c)
	tmp := r.fullData
	r.Mat = make([][]float64, n_r)
	for i := range r.Mat {
		r.Mat[i] = tmp[:n_c]
		tmp = tmp[n_c:]
	}
	return r
}

// Size returns the number of rows and number of columns
func (mat *DMatrix2d) Size() (nrow, ncol int) {
	if nrow = len(mat.Mat); nrow == 0 {
		return 0, 0
	}
	ncol = len(mat.Mat[0])
	return
}

// Fill sets every element to x
func (mat *DMatrix2d) Fill(x float64) {
	for i := range mat.fullData {
		mat.fullData[i] = x
	}
}

// Sprintf returns the matrix printed out in a form that might be
// useful for debugging. format is something like "%9.3g".
func (mat *DMatrix2d) Sprintf(format string) string {
	var b strings.Builder
	for _, row := range mat.Mat {
		for _, x := range row {
			fmt.Fprintf(&b, format, x)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String uses a default format.
func (mat *DMatrix2d) String() string { return mat.Sprintf("%10.3g") }

// ------------------------------------------------------------

// BMatrix2d is a two dimensional array of bytes
type BMatrix2d struct {
	Mat      [][]byte
	fullData []byte
}

// NewBMatrix2d gives us a two dimensional matrix of n_r x n_c.
func NewBMatrix2d(n_r, n_c int) *BMatrix2d {
	r := new(BMatrix2d)
	r.fullData = make([]byte, n_r*n_c)
	tmp := r.fullData
	r.Mat = make([][]byte, n_r)
	for i := range r.Mat {
		r.Mat[i] = tmp[:n_c]
		tmp = tmp[n_c:]
	}
	return r
}

// Size returns the number of rows and number of columns
func (mat *BMatrix2d) Size() (nrow, ncol int) {
	if nrow = len(mat.Mat); nrow == 0 {
		return 0, 0
	}
	ncol = len(mat.Mat[0])
	return
}

// Sprint returns the matrix with each entry printed by sym.
// If sym is nil, we print numbers.
func (mat *BMatrix2d) Sprint(sym func(byte) string) string {
	var b strings.Builder
	for _, row := range mat.Mat {
		for _, c := range row {
			if sym == nil {
				fmt.Fprintf(&b, "%4d", c)
			} else {
				fmt.Fprintf(&b, "%4s", sym(c))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
