// 31 July 2020
// 17 Oct 2026 random reads in fastq format, some with linker

// Package randseq makes random reads for testing. A fraction of them
// have a copy of the linker, maybe with point mutations, starting
// somewhere in the read and running off the 3' end.
package randseq

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"sync"

	"github.com/andrew-torda/bayesalign/pkg/fastq"
)

var letters = []byte{'A', 'C', 'G', 'T'}

// Qualities are mostly good, but with a tail of bad ones.
var quals = []byte("IIIIIIIIIHHHHGGFFEEDCB@?<:5+#")

// RandReadArgs is the set of arguments passed to the main function
type RandReadArgs struct {
	Iseed   int64     // random number seed
	Wrtr    io.Writer // where we write to
	Nseq    int       // number of reads
	Len     int       // Length of reads
	Linker  []byte    // linker to be put in some reads
	PLinker float64   // fraction of reads with a linker
	PMut    float64   // chance of mutating each base of the linker
	MinIns  int       // shortest piece of linker to put in
}

// cutKey is written into each read's ID as cut=n. n is where the linker
// starts, or the read length if there is no linker.
const cutKey = "cut="

// getseq returns a byte slice with a random sequence in it
func getseq(seqlen int, rnd *rand.Rand) []byte {
	ret := make([]byte, seqlen)
	for i := range ret {
		ret[i] = letters[rnd.Intn(len(letters))]
	}
	return ret
}

// mutate changes a base to one of the other three.
func mutate(c byte, rnd *rand.Rand) byte {
	for {
		if d := letters[rnd.Intn(len(letters))]; d != c {
			return d
		}
	}
}

// addLinker overwrites the end of s with the start of the linker and
// returns the position where the linker starts.
func addLinker(s []byte, args *RandReadArgs, rnd *rand.Rand) int {
	minIns := args.MinIns
	if minIns < 1 {
		minIns = 1
	}
	if minIns > len(s) {
		minIns = len(s)
	}
	start := rnd.Intn(len(s)-minIns+1)
	for i, j := start, 0; i < len(s) && j < len(args.Linker); i, j = i+1, j+1 {
		c := args.Linker[j]
		if rnd.Float64() < args.PMut {
			c = mutate(c, rnd)
		}
		s[i] = c
	}
	return start
}

// writeseq gets reads down a channel and writes them. n is the number
// of the read, so the output has ID lines "@r1 cut=...", "@r2 cut=...".
func writeseq(rChan <-chan fastq.Record, args *RandReadArgs, errp *error, wg *sync.WaitGroup) {
	defer wg.Done()
	w := fastq.NewWriter(args.Wrtr)
	for r := range rChan {
		if *errp == nil {
			*errp = w.Write(r)
		}
	}
	if err := w.Flush(); *errp == nil {
		*errp = err
	}
}

func (args *RandReadArgs) check() error {
	switch {
	case args.Wrtr == nil:
		return errors.New("randseq: no writer")
	case args.Len < 1:
		return fmt.Errorf("randseq: read length %d", args.Len)
	case args.PLinker > 0 && len(args.Linker) == 0:
		return errors.New("randseq: asked for linkers, but no linker given")
	}
	return nil
}

// RandReadMain writes random reads to an io.Writer.
func RandReadMain(args *RandReadArgs) error {
	if err := args.check(); err != nil {
		return err
	}
	var wg sync.WaitGroup
	var werr error
	rnd := rand.New(rand.NewSource(args.Iseed))
	rChan := make(chan fastq.Record)
	wg.Add(1)
	go writeseq(rChan, args, &werr, &wg)
	for i := 0; i < args.Nseq; i++ {
		s := getseq(args.Len, rnd)
		cut := len(s)
		if rnd.Float64() < args.PLinker {
			cut = addLinker(s, args, rnd)
		}
		q := make([]byte, len(s))
		for j := range q {
			q[j] = quals[rnd.Intn(len(quals))]
		}
		id := fmt.Sprintf("r%d %s%d", i+1, cutKey, cut)
		rChan <- fastq.Record{ID: []byte(id), Seq: s, Misc: []byte{}, Qual: q}
	}
	close(rChan)
	wg.Wait()
	return werr
}

// Cut reads back the position written into a read's ID. ok is false
// if the ID does not have one.
func Cut(r fastq.Record) (cut int, ok bool) {
	var n int
	var name string
	if _, err := fmt.Sscanf(string(r.ID), "%s "+cutKey+"%d", &name, &n); err != nil {
		return 0, false
	}
	return n, true
}
