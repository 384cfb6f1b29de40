package bayes

var (
	Pick      = pick
	Traceback = traceback
	EndCell   = endCell
)

// Fill gives tests the matrices, which Align throws away.
func (a *Aligner) Fill(ref, qry, qual []byte) (*Matrices, error) {
	miss, err := a.check(ref, qry, qual)
	if err != nil {
		return nil, err
	}
	return a.fill(ref, qry, miss), nil
}
