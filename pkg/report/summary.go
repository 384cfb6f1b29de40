// 18 Oct 2026

package report

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/willf/bitset"

	"github.com/andrew-torda/bayesalign/pkg/bayes"
)

// Summary counts reads over a whole run. Reads are numbered from zero
// in the order they come from the input.
type Summary struct {
	RunID    string
	NRead    int
	NLinker  int
	NDropped int // too short after trimming
	NBad     int // could not be aligned, written as they came
	NBases   int // bases written out
	linkered *bitset.BitSet
	Tally    *Tally
}

// NewSummary gets a fresh run id, so logs and stats files from one run
// can be matched up.
func NewSummary(linker []byte) *Summary {
	return &Summary{
		RunID:    uuid.New().String(),
		linkered: bitset.New(1024),
		Tally:    NewTally(linker),
	}
}

// Add records what happened to read n. dropped means the read was not
// written. nOut is the number of bases written. res is nil if the read
// could not be aligned.
func (s *Summary) Add(n int, res *bayes.Result, dropped bool, nOut int) error {
	s.NRead++
	s.NBases += nOut
	if dropped {
		s.NDropped++
	}
	if res == nil {
		s.NBad++
		return nil
	}
	if !res.IsLinker {
		return nil
	}
	s.NLinker++
	s.linkered.Set(uint(n))
	return s.Tally.Add(res.Cigar)
}

// HasLinker says whether read n was called as having the linker.
func (s *Summary) HasLinker(n int) bool { return s.linkered.Test(uint(n)) }

// String is the one line summary for the log.
func (s *Summary) String() string {
	pct := 0.
	if s.NRead > 0 {
		pct = 100 * float64(s.linkered.Count()) / float64(s.NRead)
	}
	return fmt.Sprintf("run %s: %s reads, %s with linker (%.1f%%), %s dropped, %s not aligned, %s bases written",
		s.RunID, humanize.Comma(int64(s.NRead)), humanize.Comma(int64(s.NLinker)), pct,
		humanize.Comma(int64(s.NDropped)), humanize.Comma(int64(s.NBad)), humanize.Comma(int64(s.NBases)))
}
