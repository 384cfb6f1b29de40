// 18 Oct 2026

package trim

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/andrew-torda/bayesalign/pkg/fastq"
	"github.com/andrew-torda/bayesalign/pkg/seq/common"
)

// nopCloser is for standard output, which we do not close.
type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

func create(fname string) (io.WriteCloser, error) {
	if fname == "" || fname == "-" {
		return nopCloser{os.Stdout}, nil
	}
	common.WarnExists(fname)
	return os.Create(fname)
}

// Mymain reads infile, writes trimmed reads to outfile and, if asked,
// the statistics and pictures. "" or "-" are standard input and output.
func Mymain(opts *Options, infile, outfile string) (err error) {
	if opts.Verbose && infile != "" && infile != "-" {
		if n, err := fastq.Count(infile); err == nil {
			log.Printf("%s: about %s reads", infile, humanize.Comma(int64(n)))
		}
	}
	rdr, rc, err := fastq.Open(infile)
	if err != nil {
		return err
	}
	defer rc.Close()

	fout, err := create(outfile)
	if err != nil {
		return fmt.Errorf("output file: %w", err)
	}
	defer func() { err = errors.Join(err, fout.Close()) }()

	var w recWriter = fastq.NewWriter(fout)
	if opts.Fasta {
		w = fastq.NewFastaWriter(fout)
	}
	ws := &WriteSink{W: w, MinLen: opts.MinLen}
	sink := Tee{ws}
	if opts.PngDir != "" {
		if err := os.MkdirAll(opts.PngDir, 0o755); err != nil {
			return err
		}
		sink = append(sink, &PngSink{Dir: opts.PngDir, Linker: opts.Linker, N: opts.NPng})
	}

	sum, err := Run(rdr, sink, opts)
	if err != nil {
		return fmt.Errorf("%s: %w", infile, err)
	}
	if err := ws.Flush(); err != nil {
		return fmt.Errorf("writing %s: %w", outfile, err)
	}
	if opts.StatsFile != "" {
		if err := writeStats(opts.StatsFile, sum.Tally.WriteCSV); err != nil {
			return err
		}
	}
	if opts.Verbose {
		log.Println(sum)
	}
	return nil
}

func writeStats(fname string, wrt func(io.Writer) error) error {
	fp, err := create(fname)
	if err != nil {
		return fmt.Errorf("stats file: %w", err)
	}
	return errors.Join(wrt(fp), fp.Close())
}
