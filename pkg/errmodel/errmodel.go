// 12 Oct 2026

// Package errmodel turns sequencer qualities and enzyme error rates
// into the per-base likelihoods used by the aligner.
//
// There are two sources of error. The sequencer may miscall a base and
// tells us how likely that is with a PHRED quality. Reverse transcription
// and each cycle of PCR may also have put the wrong base into the
// molecule in the first place. The second is folded into a single
// per-base rate, PCRErrorRate.
package errmodel

import (
	"errors"
	"fmt"
	"math"
)

// Default rates. RT is the reverse transcriptase error per base,
// Pol the polymerase error per base per cycle.
const (
	DefaultRTRate  = 0.00001490711984999862
	DefaultPolRate = 0.00001038461538461538
	DefaultCycles  = 30
	PhredOffset    = 33 // Illumina 1.8 and later, Sanger
)

// ErrNegativeQual is returned when a decoded quality is below zero.
// This usually means the wrong offset was used for decoding.
var ErrNegativeQual = errors.New("negative quality")

// Model has the enzyme rates and the number of amplification cycles.
type Model struct {
	RTRate  float64 // reverse transcription, per base
	PolRate float64 // polymerase, per base per cycle
	Cycles  int     // PCR cycles
}

// DefaultModel returns the rates for 30 cycles of PCR.
func DefaultModel() Model {
	return Model{RTRate: DefaultRTRate, PolRate: DefaultPolRate, Cycles: DefaultCycles}
}

// PCRErrorRate is the combined chance that a base in the molecule is
// not what was in the original template.
func (m Model) PCRErrorRate() float64 {
	return m.RTRate + m.PolRate*float64(m.Cycles)
}

// Check makes sure the rate is a probability we can take a logarithm of.
func (m Model) Check() error {
	if m.Cycles < 0 {
		return fmt.Errorf("negative number of cycles %d", m.Cycles)
	}
	if r := m.PCRErrorRate(); !(r > 0 && r < 1) {
		return fmt.Errorf("pcr error rate %g not in (0,1)", r)
	}
	return nil
}

// Decode takes a raw quality character and the encoding offset and
// returns the PHRED value. It is not checked.
func Decode(code byte, offset int) int { return int(code) - offset }

// MissCall returns the probability that the sequencer called the wrong
// base, given the decoded quality q.
func MissCall(q int) (float64, error) {
	if q < 0 {
		return 0, fmt.Errorf("%w: %d", ErrNegativeQual, q)
	}
	return math.Pow(10, -float64(q)/10), nil
}

// CorrectCall is 1 - MissCall.
func CorrectCall(miss float64) float64 { return 1 - miss }

// LikelihoodMatch is the probability of seeing the same base in read and
// linker if the underlying bases really were the same.
func LikelihoodMatch(miss, pcr float64) float64 {
	corr := CorrectCall(miss)
	return pcr*miss + corr*(1-pcr)
}

// LikelihoodMismatch is the probability of seeing a particular mismatch,
// averaged over the three bases it could have been.
func LikelihoodMismatch(miss, pcr float64) float64 {
	corr := CorrectCall(miss)
	return (1./3.)*miss*(1-pcr) + (1./3.)*corr*pcr + (2./9.)*miss*pcr
}

// Table has the miss call probability for every possible byte in a
// quality string, so the inner loop of an alignment does not call Pow.
// Entries for bytes below the offset are negative, to mark them as bad.
type Table [256]float64

// NewTable fills out the lookup table for a given offset.
func NewTable(offset int) *Table {
	var t Table
	for c := range t {
		q := c - offset
		if q < 0 {
			t[c] = -1
			continue
		}
		t[c] = math.Pow(10, -float64(q)/10)
	}
	return &t
}

// Miss returns the miss call probability for an encoded quality byte.
func (t *Table) Miss(code byte) (float64, error) {
	if p := t[code]; p >= 0 {
		return p, nil
	}
	return 0, fmt.Errorf("%w: code %q", ErrNegativeQual, code)
}
