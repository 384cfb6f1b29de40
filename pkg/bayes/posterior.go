// 14 Oct 2026

package bayes

import "math"

// Posterior combines the two likelihoods at the end of an alignment with
// the prior probability that a read carries the linker.
// sl is P(observed | linker), slp is P(observed | not linker).
// The two results add up to one, unless both likelihoods are zero,
// in which case both are NaN.
func Posterior(sl, slp, prior float64) (pL, pNL float64) {
	a := prior * sl
	b := (1 - prior) * slp
	d := a + b
	return a / d, b / d
}

// posterior is Posterior, but if the likelihoods have underflowed it
// uses the score. Along any path, score = ln(sl / slp), so
// pL = 1 / (1 + (1-p)/p * exp(-score)).
func posterior(sl, slp, score, prior float64) (pL, pNL float64) {
	if d := prior*sl + (1-prior)*slp; d > 0 && !math.IsInf(d, 0) {
		return Posterior(sl, slp, prior)
	}
	odds := (1 - prior) / prior * math.Exp(-score)
	if math.IsInf(odds, 1) {
		return 0, 1
	}
	pL = 1 / (1 + odds)
	return pL, 1 - pL
}
