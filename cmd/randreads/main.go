// 31 July 2020

package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/andrew-torda/bayesalign/pkg/randseq"
	. "github.com/andrew-torda/bayesalign/pkg/seq/common"
)

func main() {
	f := flag.NewFlagSet("randreads", flag.ExitOnError)
	const iseed int64 = 1637
	var args randseq.RandReadArgs
	var linker string

	f.StringVar(&linker, "l", "GTGTCAGTCACTTCCAGCGGTCGTATGCCGTCTTCTGCTTG", "linker")
	f.Float64Var(&args.PLinker, "f", 0.5, "fraction of reads with linker")
	f.Float64Var(&args.PMut, "u", 0, "chance of mutating a linker base")
	f.IntVar(&args.MinIns, "m", 5, "shortest piece of linker")
	f.Int64Var(&args.Iseed, "r", iseed, "random number seed")
	if err := f.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(f.Output(), err)
		os.Exit(ExitUsageError)
	}
	if f.NArg() != 3 {
		fmt.Fprintln(f.Output(), "Wrong number of args\nrandreads [..] file nseq length")
		f.Usage()
		os.Exit(ExitUsageError)
	}
	args.Linker = []byte(linker)

	fname := f.Args()[0]
	if fname == "-" || fname == "" {
		args.Wrtr = os.Stdout
	} else {
		WarnExists(fname)
		if ft, err := os.Create(fname); err != nil {
			fmt.Fprintln(os.Stderr, "File for output:", err)
			os.Exit(ExitFailure)
		} else {
			defer ft.Close()
			args.Wrtr = ft
		}
	}

	const emsg = "Failed converting %s to positive integer\n"
	if nseq, err := strconv.ParseUint(f.Args()[1], 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Args()[1])
		os.Exit(ExitFailure)
	} else {
		args.Nseq = int(nseq)
	}
	if nlen, err := strconv.ParseUint(f.Args()[2], 10, 32); err != nil {
		fmt.Fprintf(os.Stderr, emsg, f.Args()[2])
		os.Exit(ExitFailure)
	} else {
		args.Len = int(nlen)
	}
	if err := randseq.RandReadMain(&args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
}
