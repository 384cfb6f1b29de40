// 18 Oct 2026

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path"
	"strings"

	"github.com/andrew-torda/bayesalign/pkg/alnpng"
	"github.com/andrew-torda/bayesalign/pkg/bayes"
	. "github.com/andrew-torda/bayesalign/pkg/seq/common"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	Dump    bool
	PngFile string
}

func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] linker read quality")
	flag.PrintDefaults()
	return ExitUsageError
}

// mymain does the work, so it can write somewhere other than stdout.
func mymain(w io.Writer, cfg *bayes.Config, flags *CmdFlag, ref, qry, qual string) error {
	if qual == "-" {
		qual = strings.Repeat("I", len(qry))
	}
	if flags.Dump {
		cfg.Observer = &bayes.LogObserver{Log: log.New(w, "", 0)}
	}
	res, err := bayes.Align([]byte(ref), []byte(qry), []byte(qual), cfg)
	if err != nil {
		return err
	}
	r, err := bayes.Render([]byte(ref), []byte(qry), res.Cigar)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "end (%d,%d) score %.4f\n", res.EndRow, res.EndCol, res.Score)
	fmt.Fprintf(w, "P(S|L) %.4g P(S|L') %.4g\n", res.SL, res.SLP)
	fmt.Fprintf(w, "P(L|S) %.6f P(L'|S) %.6f linker %v\n", res.PLinker, res.PNotLinker, res.IsLinker)
	fmt.Fprintf(w, "cigar %v (%s)\n", res.Cigar, res.Cigar.Compact())
	fmt.Fprintf(w, "read from %d, linker from %d\n%v\n", r.QryStart, r.RefStart, r)

	if flags.PngFile == "" {
		return nil
	}
	fp, err := os.Create(flags.PngFile)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("P(linker) %.4f", res.PLinker)
	return errors.Join(alnpng.Draw(fp, r, title), fp.Close())
}

func main() {
	var flags CmdFlag
	cfg := bayes.DefaultConfig()
	flag.Float64Var(&cfg.Prior, "p", cfg.Prior, "prior probability of linker")
	flag.IntVar(&cfg.Model.Cycles, "c", cfg.Model.Cycles, "PCR cycles")
	flag.BoolVar(&flags.Dump, "d", false, "dump matrices")
	flag.StringVar(&flags.PngFile, "g", "", "png file for the alignment")
	flag.Parse()
	if flag.NArg() != 3 {
		os.Exit(usage())
	}
	if err := mymain(os.Stdout, cfg, &flags, flag.Arg(0), flag.Arg(1), flag.Arg(2)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	}
	os.Exit(ExitSuccess)
}
