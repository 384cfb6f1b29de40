package errmodel_test

import (
	"errors"
	"math"
	"testing"

	. "github.com/andrew-torda/bayesalign/pkg/errmodel"
)

const eps = 1e-12

func near(a, b float64) bool { return math.Abs(a-b) < eps }

func TestMissCall(t *testing.T) {
	var tests = []struct {
		q    int
		want float64
	}{
		{0, 1},
		{10, 0.1},
		{20, 0.01},
		{30, 0.001},
		{40, 0.0001},
	}
	for _, x := range tests {
		got, err := MissCall(x.q)
		if err != nil {
			t.Fatal(err)
		}
		if !near(got, x.want) {
			t.Fatalf("MissCall(%d) wanted %g got %g", x.q, x.want, got)
		}
	}
	if _, err := MissCall(-1); !errors.Is(err, ErrNegativeQual) {
		t.Fatal("negative quality should give ErrNegativeQual, got", err)
	}
}

func TestDecode(t *testing.T) {
	if q := Decode('I', PhredOffset); q != 40 {
		t.Fatal("decoding I wanted 40 got", q)
	}
	if q := Decode('!', PhredOffset); q != 0 {
		t.Fatal("decoding ! wanted 0 got", q)
	}
}

func TestPCRRate(t *testing.T) {
	m := DefaultModel()
	want := DefaultRTRate + 30*DefaultPolRate
	if !near(m.PCRErrorRate(), want) {
		t.Fatalf("pcr rate wanted %g got %g", want, m.PCRErrorRate())
	}
	if err := m.Check(); err != nil {
		t.Fatal(err)
	}
	bad := Model{RTRate: 0, PolRate: 0, Cycles: 0}
	if bad.Check() == nil {
		t.Fatal("zero error rate should not pass Check")
	}
	if (Model{RTRate: 0.1, PolRate: 0.1, Cycles: -1}).Check() == nil {
		t.Fatal("negative cycles should not pass Check")
	}
}

// TestLikelihoods checks the formulae against hand calculation and
// the limits where nothing goes wrong.
func TestLikelihoods(t *testing.T) {
	if got := LikelihoodMatch(0, 0); got != 1 {
		t.Fatal("perfect match wanted 1 got", got)
	}
	if got := LikelihoodMismatch(0, 0); got != 0 {
		t.Fatal("perfect mismatch wanted 0 got", got)
	}
	miss, pcr := 0.01, 0.001
	if !near(CorrectCall(miss), 0.99) {
		t.Fatal("correct call", CorrectCall(miss))
	}
	wantM := pcr*miss + (1-miss)*(1-pcr)
	wantX := miss*(1-pcr)/3 + (1-miss)*pcr/3 + 2*miss*pcr/9
	if !near(LikelihoodMatch(miss, pcr), wantM) {
		t.Fatal("match likelihood", LikelihoodMatch(miss, pcr), "wanted", wantM)
	}
	if !near(LikelihoodMismatch(miss, pcr), wantX) {
		t.Fatal("mismatch likelihood", LikelihoodMismatch(miss, pcr), "wanted", wantX)
	}
	if LikelihoodMatch(miss, pcr) <= LikelihoodMismatch(miss, pcr) {
		t.Fatal("a match should be more likely than a mismatch at good quality")
	}
}

func TestTable(t *testing.T) {
	tbl := NewTable(PhredOffset)
	for c := byte('!'); c <= 'J'; c++ {
		p, err := tbl.Miss(c)
		if err != nil {
			t.Fatal(err)
		}
		want, _ := MissCall(Decode(c, PhredOffset))
		if !near(p, want) {
			t.Fatalf("table for %c wanted %g got %g", c, want, p)
		}
	}
	if _, err := tbl.Miss(' '); !errors.Is(err, ErrNegativeQual) {
		t.Fatal("space is below the offset and should fail")
	}
}
