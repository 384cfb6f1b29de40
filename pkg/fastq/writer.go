// 17 Oct 2026

package fastq

import (
	"bufio"
	"io"
)

// Writer writes fastq. Call Flush at the end.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer { return &Writer{w: bufio.NewWriter(w)} }

// Write puts the @ and + back on the front of the ID and misc lines.
func (w *Writer) Write(r Record) error {
	bw := w.w
	bw.WriteByte(idChar)
	bw.Write(r.ID)
	bw.WriteByte('\n')
	bw.Write(r.Seq)
	bw.WriteByte('\n')
	bw.WriteByte(miscChar)
	bw.Write(r.Misc)
	bw.WriteByte('\n')
	bw.Write(r.Qual)
	_, err := bw.WriteString("\n") // bufio remembers any earlier error
	return err
}

func (w *Writer) Flush() error { return w.w.Flush() }

// FastaWriter throws away qualities and writes sequences in lines of
// CPerLine. Zero or less means no wrapping.
type FastaWriter struct {
	w        *bufio.Writer
	CPerLine int
}

func NewFastaWriter(w io.Writer) *FastaWriter {
	return &FastaWriter{w: bufio.NewWriter(w), CPerLine: 60}
}

func (w *FastaWriter) Write(r Record) error {
	bw := w.w
	bw.WriteByte('>')
	bw.Write(r.ID)
	bw.WriteByte('\n')
	s := r.Seq
	for ; w.CPerLine > 0 && len(s) > w.CPerLine; s = s[w.CPerLine:] {
		bw.Write(s[:w.CPerLine])
		bw.WriteByte('\n')
	}
	bw.Write(s)
	_, err := bw.WriteString("\n")
	return err
}

func (w *FastaWriter) Flush() error { return w.w.Flush() }
