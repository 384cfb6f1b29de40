// brokenio is a wrapper around an io.ReadCloser. It lets us make reads
// go wrong, so we can check that read errors in the middle of a fastq
// file are passed back and not mistaken for the end of the file.
// Typical use: You get a file pointer, a reader from a compressed
// source or an http source. You write
// reader = brokenio.NewReader(reader, seed) to wrap the old reader.
// Everything then functions as before, but with artificial errors.
// When we introduce a failure on the first read, we return io.EOF
// without data. This is what one often sees on a zero length file.

package brokenio

import (
	"errors"
	"io"
	"math/rand"
)

// ErrBroken is what we return when we break a read.
var ErrBroken = errors.New("brokenio: artificial read error")

// BrknRdrClsr is modelled on the various Readers in the standard
// library, but with variables controlling errors.
// Probabilities are the fraction of calls where something goes wrong,
// so a value of 0.05 means failure in 5% of the cases.
type BrknRdrClsr struct {
	rdrOrig      io.ReadCloser // Wrapped reader
	rnd          *rand.Rand
	probZeroFile float32 // Probability of returning a zero length file
	probFail     float32 // Probability of any read failing
	failAt       int     // Fail when we get to this byte. -1 for never.
	nCalled      int
	nByte        int
}

// NewReader returns a new Reader, a wrapper around the old one. The
// seed makes failures repeatable.
func NewReader(rIn io.ReadCloser, seed int64) *BrknRdrClsr {
	return &BrknRdrClsr{
		rdrOrig: rIn,
		rnd:     rand.New(rand.NewSource(seed)),
		failAt:  -1,
	}
}

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. It must be a value from 0 to 1. We do not check if the
// argument is valid.
func (r *BrknRdrClsr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail set the probability of a read failing.
// It must be between zero and 1.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// SetFailAt makes the reader deliver n bytes and then fail.
func (r *BrknRdrClsr) SetFailAt(n int) { r.failAt = n }

// NByte is the number of bytes handed back so far.
func (r *BrknRdrClsr) NByte() int { return r.nByte }

// Read wraps the original reader and sums up the amount of data that
// has gone through.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	r.nCalled++
	if r.nCalled == 1 && r.probZeroFile > 0 && r.rnd.Float32() < r.probZeroFile {
		return 0, io.EOF
	}
	if r.probFail > 0 && r.rnd.Float32() < r.probFail {
		return 0, ErrBroken
	}
	broken := false
	if r.failAt >= 0 {
		left := r.failAt - r.nByte
		if left <= 0 {
			return 0, ErrBroken
		}
		if left < len(p) {
			p = p[:left]
			broken = true
		}
	}
	n, err = r.rdrOrig.Read(p)
	r.nByte += n
	if broken && n == len(p) {
		err = ErrBroken
	}
	return n, err
}

// Close wraps the original Close method.
func (r *BrknRdrClsr) Close() error {
	return r.rdrOrig.Close()
}
