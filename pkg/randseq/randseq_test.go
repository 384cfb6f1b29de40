// 31 July 2020

package randseq_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/andrew-torda/bayesalign/pkg/fastq"
	"github.com/andrew-torda/bayesalign/pkg/randseq"
)

const linker = "GTGTCAGTCACTTCCAGCGG"

func TestSimple(t *testing.T) {
	var sb strings.Builder
	args := randseq.RandReadArgs{
		Wrtr:    &sb,
		Nseq:    500,
		Len:     60,
		Linker:  []byte(linker),
		PLinker: 0.5,
		MinIns:  8,
	}
	if err := randseq.RandReadMain(&args); err != nil {
		t.Fatal(err)
	}
	recs, err := fastq.NewReader(strings.NewReader(sb.String())).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != args.Nseq {
		t.Fatal("wanted", args.Nseq, "reads, got", len(recs))
	}
	nlink := 0
	for _, r := range recs {
		cut, ok := randseq.Cut(r)
		if !ok {
			t.Fatal("no cut in", string(r.ID))
		}
		if cut == args.Len {
			continue
		}
		nlink++
		if cut > args.Len-args.MinIns {
			t.Fatal("linker piece too short, cut at", cut)
		}
		tail := r.Seq[cut:]
		if n := len(tail); n > len(linker) {
			tail = tail[:len(linker)]
		}
		if !bytes.HasPrefix([]byte(linker), tail) {
			t.Fatalf("read %s has %s at %d, not linker", r.ID, tail, cut)
		}
	}
	if nlink < 200 || nlink > 300 {
		t.Fatal("about half the reads should have linker, got", nlink)
	}
}

func TestSeed(t *testing.T) {
	var s1, s2 strings.Builder
	for _, sb := range []*strings.Builder{&s1, &s2} {
		args := randseq.RandReadArgs{Wrtr: sb, Nseq: 20, Len: 30, Iseed: 99,
			Linker: []byte(linker), PLinker: 0.3, PMut: 0.1}
		if err := randseq.RandReadMain(&args); err != nil {
			t.Fatal(err)
		}
	}
	if s1.String() != s2.String() {
		t.Fatal("same seed should give the same reads")
	}
}

func TestBadArgs(t *testing.T) {
	var sb strings.Builder
	for _, args := range []randseq.RandReadArgs{
		{Nseq: 1, Len: 10},
		{Wrtr: &sb, Nseq: 1},
		{Wrtr: &sb, Nseq: 1, Len: 10, PLinker: 0.5},
	} {
		if err := randseq.RandReadMain(&args); err == nil {
			t.Fatalf("%+v should fail", args)
		}
	}
}
