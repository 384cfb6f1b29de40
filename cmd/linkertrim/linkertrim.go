// 18 Oct 2026

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"strings"

	. "github.com/andrew-torda/bayesalign/pkg/seq/common"
	"github.com/andrew-torda/bayesalign/pkg/trim"
)

// usage
func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] -l linker in.fq [out.fq]")
	flag.PrintDefaults()
	return ExitUsageError
}

func main() {
	opts := trim.DefaultOptions()
	var linker string
	flag.StringVar(&linker, "l", "", "linker sequence")
	flag.Float64Var(&opts.Cfg.Prior, "p", opts.Cfg.Prior, "prior probability of linker")
	flag.IntVar(&opts.Cfg.Model.Cycles, "c", opts.Cfg.Model.Cycles, "PCR cycles")
	flag.IntVar(&opts.MinLen, "m", opts.MinLen, "minimum read length after trimming")
	flag.IntVar(&opts.Workers, "w", 0, "workers, 0 for one per CPU")
	flag.BoolVar(&opts.Fasta, "a", false, "write fasta")
	flag.StringVar(&opts.StatsFile, "s", "", "per position statistics csv file")
	flag.StringVar(&opts.PngDir, "g", "", "directory for alignment pictures")
	flag.BoolVar(&opts.Verbose, "v", false, "verbose")
	flag.Parse()

	if linker == "" || flag.NArg() < 1 || flag.NArg() > 2 {
		os.Exit(usage())
	}
	opts.Linker = []byte(strings.ToUpper(linker))
	infile := flag.Arg(0)
	outfile := flag.Arg(1) // "" is stdout
	log.SetFlags(0)
	log.SetPrefix(path.Base(os.Args[0]) + ": ")

	if err := trim.Mymain(opts, infile, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	} else {
		os.Exit(ExitSuccess)
	}
}
