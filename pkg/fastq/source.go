// 17 Oct 2026

package fastq

import (
	"context"
	"io"
)

// The Reader is a pargo pipeline.Source, so batches of reads are only
// pulled from the file as the pipeline wants them.

// Err implements the method of the pipeline.Source interface.
func (r *Reader) Err() error { return r.err }

// Prepare implements the method of the pipeline.Source interface.
// We do not know how many reads there are.
func (*Reader) Prepare(_ context.Context) (size int) { return -1 }

// Fetch implements the method of the pipeline.Source interface.
// A format error stops the pipeline and is returned by Err.
func (r *Reader) Fetch(size int) (fetched int) {
	recs := make([]Record, 0, size)
	for fetched = 0; fetched < size; fetched++ {
		rec, err := r.Read()
		if err != nil {
			if err != io.EOF {
				r.err = err
			}
			break
		}
		recs = append(recs, rec)
	}
	r.data = recs
	return fetched
}

// Data implements the method of the pipeline.Source interface.
// It is a []Record.
func (r *Reader) Data() interface{} { return r.data }
