// 18 Oct 2026

package trim

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/andrew-torda/bayesalign/pkg/alnpng"
	"github.com/andrew-torda/bayesalign/pkg/bayes"
	"github.com/andrew-torda/bayesalign/pkg/fastq"
)

// recWriter is satisfied by fastq.Writer and fastq.FastaWriter.
type recWriter interface {
	Write(fastq.Record) error
	Flush() error
}

// WriteSink writes trimmed reads, leaving out the ones which are too
// short.
type WriteSink struct {
	W      recWriter
	MinLen int
}

func (s *WriteSink) Put(_ string, rec fastq.Record, res *bayes.Result) error {
	if out, keep := cut(rec, res, s.MinLen); keep {
		return s.W.Write(out)
	}
	return nil
}

func (s *WriteSink) Flush() error { return s.W.Flush() }

// PngSink draws pictures of the first N alignments which were called
// as linker.
type PngSink struct {
	Dir    string
	Linker []byte
	N      int
	nDone  int
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func (s *PngSink) Put(id string, rec fastq.Record, res *bayes.Result) error {
	if s.nDone >= s.N || res == nil || !res.IsLinker {
		return nil
	}
	s.nDone++
	r, err := bayes.Render(s.Linker, rec.Seq, res.Cigar)
	if err != nil {
		return fmt.Errorf("rendering %s: %w", id, err)
	}
	fname := filepath.Join(s.Dir, fmt.Sprintf("%03d_%s.png", s.nDone, unsafeChars.ReplaceAllString(id, "_")))
	fp, err := os.Create(fname)
	if err != nil {
		return err
	}
	title := fmt.Sprintf("%s P(linker) %.4f cut %d", id, res.PLinker, r.QryStart)
	return errors.Join(alnpng.Draw(fp, r, title), fp.Close())
}

// Tee hands each read to every sink in turn.
type Tee []Sink

func (t Tee) Put(id string, rec fastq.Record, res *bayes.Result) error {
	for _, s := range t {
		if err := s.Put(id, rec, res); err != nil {
			return err
		}
	}
	return nil
}
