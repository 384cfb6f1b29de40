// 18 Oct 2026

// Package trim finds the linker (adapter) at the 3' end of reads and
// cuts it off. Each read is aligned against the linker. If the
// alignment says the read has the linker, everything from the first
// aligned read base onwards goes.
//
// Reads are pulled from the input in batches and aligned in parallel,
// but written out in the order they came in.
package trim

import (
	"errors"
	"fmt"
	"log"

	"github.com/exascience/pargo/pipeline"

	"github.com/andrew-torda/bayesalign/pkg/bayes"
	"github.com/andrew-torda/bayesalign/pkg/fastq"
	"github.com/andrew-torda/bayesalign/pkg/report"
)

const (
	minBatch = 256
	maxBatch = 8192
)

// Options has everything from the command line.
type Options struct {
	Linker    []byte
	Cfg       bayes.Config
	MinLen    int    // drop reads shorter than this after trimming
	Workers   int    // 0 means one per CPU
	Fasta     bool   // write fasta, not fastq
	Verbose   bool
	StatsFile string // per linker position csv, "" for none
	PngDir    string // pictures of the first NPng linker alignments, "" for none
	NPng      int
}

// DefaultOptions has the default aligner configuration. The linker
// still has to be set.
func DefaultOptions() *Options {
	return &Options{Cfg: *bayes.DefaultConfig(), MinLen: 1, NPng: 10}
}

// Sink gets every read, in input order, with its alignment. res is nil
// if the read could not be aligned.
type Sink interface {
	Put(id string, rec fastq.Record, res *bayes.Result) error
}

// Trim cuts a read where the linker starts. If the alignment does not
// say linker, the read comes back unchanged. The aligned part also has
// to start at the beginning of the linker or run off the 3' end of the
// read. An alignment that only puts the tail of the linker on the start
// of the read is not a 3' linker and nothing is cut. The result shares
// memory with rec.
func Trim(rec fastq.Record, res *bayes.Result) (fastq.Record, bool) {
	if res == nil || !res.IsLinker {
		return rec, false
	}
	rs, qs := res.Cigar.Starts()
	if rs != 0 && res.EndCol != rec.Len() {
		return rec, false
	}
	return rec.Slice(0, qs), true
}

// cut trims a read and says whether it is still long enough to keep.
func cut(rec fastq.Record, res *bayes.Result, minLen int) (fastq.Record, bool) {
	out, _ := Trim(rec, res)
	return out, out.Len() >= minLen
}

// item carries one read through the pipeline.
type item struct {
	rec fastq.Record
	res *bayes.Result
	err error
}

// alignBatch is the parallel part. The aligner is shared. Each call to
// Align has its own matrices.
func alignBatch(al *bayes.Aligner, linker []byte, recs []fastq.Record) []item {
	items := make([]item, len(recs))
	for i, rec := range recs {
		items[i].rec = rec
		items[i].res, items[i].err = al.Align(linker, rec.Seq, rec.Qual)
	}
	return items
}

// Run pulls reads from rdr, aligns and trims them and hands them to
// sink. Reads that do not align, because of funny symbols for example,
// are passed on untrimmed with a nil result. Any other error stops the
// run.
func Run(rdr *fastq.Reader, sink Sink, opts *Options) (*report.Summary, error) {
	if len(opts.Linker) == 0 {
		return nil, errors.New("trim: no linker")
	}
	al, err := bayes.NewAligner(&opts.Cfg)
	if err != nil {
		return nil, err
	}
	sum := report.NewSummary(opts.Linker)
	n := 0 // read number, only touched in the ordered stage

	var p pipeline.Pipeline
	p.Source(rdr)
	p.SetVariableBatchSize(minBatch, maxBatch)
	p.Add(
		pipeline.LimitedPar(opts.Workers, pipeline.Receive(func(_ int, data interface{}) interface{} {
			return alignBatch(al, opts.Linker, data.([]fastq.Record))
		})),
		pipeline.Ord(pipeline.Receive(func(_ int, data interface{}) interface{} {
			for _, it := range data.([]item) {
				if err := putOne(sink, sum, n, it, opts); err != nil {
					p.SetErr(err)
					return data
				}
				n++
			}
			return data
		})),
	)
	p.Run()
	if err := p.Err(); err != nil {
		return sum, err
	}
	return sum, rdr.Err()
}

// putOne deals with the result of one alignment.
func putOne(sink Sink, sum *report.Summary, n int, it item, opts *Options) error {
	name := it.rec.Name()
	if it.err != nil {
		if !errors.Is(it.err, bayes.ErrInvalidInput) {
			return fmt.Errorf("read %d %s: %w", n+1, name, it.err)
		}
		if opts.Verbose {
			log.Printf("read %d %s not aligned: %v", n+1, name, it.err)
		}
		it.res = nil
	}
	out, keep := cut(it.rec, it.res, opts.MinLen)
	nOut := 0
	if keep {
		nOut = out.Len()
	}
	if err := sum.Add(n, it.res, !keep, nOut); err != nil {
		return fmt.Errorf("read %d %s: %w", n+1, name, err)
	}
	return sink.Put(name, it.rec, it.res)
}
