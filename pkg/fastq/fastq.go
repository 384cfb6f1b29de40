// 17 Oct 2026

// Package fastq reads and writes reads in fastq format. Each record is
// four lines,
//
//	@id
//	sequence
//	+misc
//	quality
//
// with no wrapping. Input may be gzipped. We do not change case or
// look at the symbols. That is up to whoever uses the reads.
package fastq

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/andrew-torda/bayesalign/pkg/zwrap"
)

const (
	idChar   = '@'
	miscChar = '+'
)

// ErrFormat is wrapped by any complaint about the contents of a file.
var ErrFormat = errors.New("fastq format")

// Record is one read. ID and Misc do not have the leading @ and +.
type Record struct {
	ID   []byte
	Seq  []byte
	Misc []byte
	Qual []byte
}

// Len is the number of bases.
func (r Record) Len() int { return len(r.Seq) }

// Name is the first word of the ID, which is what most tools call the
// read name.
func (r Record) Name() string {
	if f := bytes.Fields(r.ID); len(f) > 0 {
		return string(f[0])
	}
	return ""
}

// Slice returns bases [i,j). Quality goes with them. The result shares
// memory with r.
func (r Record) Slice(i, j int) Record {
	return Record{ID: r.ID, Seq: r.Seq[i:j], Misc: r.Misc, Qual: r.Qual[i:j]}
}

// Reader gets one record at a time from an io.Reader. Each record is
// freshly allocated, so it can be handed to another goroutine.
type Reader struct {
	brdr *bufio.Reader
	nrec int      // records read so far
	data []Record // last batch, for the pipeline
	err  error
}

// NewReader does not do any decompression. Use Open for that.
func NewReader(rdr io.Reader) *Reader {
	return &Reader{brdr: bufio.NewReaderSize(rdr, 64*1024)}
}

// Open opens a file and wraps it if it is gzipped. "" or "-" means
// standard input. The caller should close the ReadCloser when finished.
func Open(fname string) (*Reader, io.ReadCloser, error) {
	var fp io.ReadCloser
	if fname == "" || fname == "-" {
		fp = io.NopCloser(os.Stdin)
	} else {
		var err error
		if fp, err = os.Open(fname); err != nil {
			return nil, nil, err
		}
	}
	rc, err := zwrap.WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return nil, nil, fmt.Errorf("opening %s: %w", fname, err)
	}
	return NewReader(rc), rc, nil
}

// NRead is the number of records read so far.
func (r *Reader) NRead() int { return r.nrec }

// line gets the next line without the newline and without a
// trailing carriage return. At the end of input, it returns io.EOF
// only if nothing at all was read.
func (r *Reader) line() ([]byte, error) {
	b, err := r.brdr.ReadBytes('\n')
	if err != nil && (err != io.EOF || len(b) == 0) {
		return nil, err
	}
	b = bytes.TrimSuffix(b, []byte{'\n'})
	b = bytes.TrimSuffix(b, []byte{'\r'})
	return b, nil
}

func (r *Reader) fmtErr(format string, a ...interface{}) error {
	return fmt.Errorf("%w: record %d: %s", ErrFormat, r.nrec+1, fmt.Sprintf(format, a...))
}

// Read returns the next record or io.EOF when the input is finished.
// Blank lines between records are skipped.
func (r *Reader) Read() (Record, error) {
	var rec Record
	var b []byte
	var err error
	for {
		if b, err = r.line(); err != nil {
			return rec, err // io.EOF here is a clean end
		}
		if len(b) != 0 {
			break
		}
	}
	if b[0] != idChar {
		return rec, r.fmtErr("wanted %c at start of line, got %q", idChar, trunc(b))
	}
	rec.ID = b[1:]
	lines := []*[]byte{&rec.Seq, &rec.Misc, &rec.Qual}
	for n, p := range lines {
		if *p, err = r.line(); err != nil {
			if err == io.EOF {
				return rec, r.fmtErr("truncated after %d lines, ID %q", n+1, trunc(rec.ID))
			}
			return rec, err
		}
	}
	if len(rec.Misc) == 0 || rec.Misc[0] != miscChar {
		return rec, r.fmtErr("wanted %c line, got %q", miscChar, trunc(rec.Misc))
	}
	rec.Misc = rec.Misc[1:]
	if len(rec.Seq) != len(rec.Qual) {
		return rec, r.fmtErr("%d bases but %d qualities, ID %q", len(rec.Seq), len(rec.Qual), trunc(rec.ID))
	}
	r.nrec++
	return rec, nil
}

// ReadAll is for small files and tests.
func (r *Reader) ReadAll() ([]Record, error) {
	var recs []Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			return recs, nil
		}
		if err != nil {
			return recs, err
		}
		recs = append(recs, rec)
	}
}

// trunc keeps error messages short.
func trunc(b []byte) []byte {
	const n = 40
	if len(b) > n {
		return b[:n]
	}
	return b
}
