// Package zwrap takes a reader and, if it is gzipped, wraps it so
// reads come from the decompressor and Close closes the decompressor,
// followed by the underlying file.
// Reads are often fastq files from a sequencer, which nearly always
// come compressed, but sometimes they come down a pipe, so we cannot
// rely on seeking back to the start.

package zwrap

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
)

// First two bytes of any gzip stream.
var gzMagic = []byte{0x1f, 0x8b}

// ErrNotGzip comes back from Wrap if the stream does not start with
// the gzip magic number.
var ErrNotGzip = errors.New("not gzip compressed")

// FpGzip is what we return. If zrdr is nil, reads go straight to the
// buffered source.
type FpGzip struct {
	fp   io.Closer
	brdr *bufio.Reader
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying readCloser.
// It should work if the source is a file or an http stream.
func (fc *FpGzip) Close() error {
	if fc.zrdr == nil {
		return fc.fp.Close()
	}
	return errors.Join(fc.zrdr.Close(), fc.fp.Close())
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (fc *FpGzip) Read(p []byte) (int, error) {
	if fc.zrdr != nil {
		return fc.zrdr.Read(p)
	}
	return fc.brdr.Read(p)
}

// Gzipped says whether we are decompressing.
func (fc *FpGzip) Gzipped() bool { return fc.zrdr != nil }

// peek looks at the first bytes without using them up.
func peek(brdr *bufio.Reader) bool {
	b, _ := brdr.Peek(len(gzMagic))
	return bytes.Equal(b, gzMagic)
}

// Wrap insists the source is gzipped. Although we use the name fp, it
// should be happy if it is fed an http stream.
func Wrap(fp io.ReadCloser) (*FpGzip, error) {
	fpz := &FpGzip{fp: fp, brdr: bufio.NewReader(fp)}
	if !peek(fpz.brdr) {
		return nil, ErrNotGzip
	}
	var err error
	if fpz.zrdr, err = gzip.NewReader(fpz.brdr); err != nil {
		return nil, fmt.Errorf("zwrap: %w", err)
	}
	return fpz, nil
}

// WrapMaybe decides if the underlying stream is compressed and wraps
// it if necessary. Since we only peek, the source does not have to
// be able to seek, so a pipe or standard input is fine.
func WrapMaybe(fp io.ReadCloser) (*FpGzip, error) {
	fpz := &FpGzip{fp: fp, brdr: bufio.NewReader(fp)}
	if !peek(fpz.brdr) {
		return fpz, nil // Leave the zrdr nil
	}
	var err error
	if fpz.zrdr, err = gzip.NewReader(fpz.brdr); err != nil {
		return nil, fmt.Errorf("zwrap: %w", err)
	}
	return fpz, nil
}
