// Test Zwrap
package zwrap_test

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/andrew-torda/bayesalign/pkg/zwrap"
)

const fqText = "@r1\nACGTN\n+\nIIII#\n"

// both of these hold the same short fastq record, but the first is
// compressed. Write them to a file and check that the file opener does
// the right thing.
type gztest struct {
	data    []byte
	gzipped bool
}

func gzipped(t *testing.T, s string) []byte {
	var b bytes.Buffer
	zw := gzip.NewWriter(&b)
	if _, err := zw.Write([]byte(s)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return b.Bytes()
}

func gztests(t *testing.T) []gztest {
	return []gztest{
		{gzipped(t, fqText), true},
		{[]byte(fqText), false},
	}
}

// writeToTmp writes a byte slice to a temporary file and returns
// a file pointer, opened for reading.
func writeToTmp(t *testing.T, data []byte) *os.File {
	fname := filepath.Join(t.TempDir(), "del_me_testing")
	if err := os.WriteFile(fname, data, 0o644); err != nil {
		t.Fatal(err)
	}
	fp, err := os.Open(fname)
	if err != nil {
		t.Fatal(err)
	}
	return fp
}

func TestWrap(t *testing.T) {
	for _, x := range gztests(t) {
		fp := writeToTmp(t, x.data)
		rdr, err := zwrap.Wrap(fp)
		if err != nil {
			if x.gzipped {
				t.Error("Fail on correctly gzipped file", err)
			}
			if !errors.Is(err, zwrap.ErrNotGzip) {
				t.Error("wrong error on plain file", err)
			}
			fp.Close()
			continue // It is not gzipped, so move on to next
		}
		if !x.gzipped { // But we should get one
			t.Error("Fail on not compressed file")
		}
		b, err := io.ReadAll(rdr)
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != fqText {
			t.Errorf("wrong string: %s", b)
		}
		if err := rdr.Close(); err != nil {
			t.Errorf("Error closing: %s", err)
		}
	}
}

// Calling WrapMaybe should not fail since it guesses if the file
// is compressed or not.
func TestWrapMaybe(t *testing.T) {
	for _, x := range gztests(t) {
		rdr, err := zwrap.WrapMaybe(writeToTmp(t, x.data))
		if err != nil {
			t.Fatalf("Fail on file where compressed was %v", x.gzipped)
		}
		if rdr.Gzipped() != x.gzipped {
			t.Error("Gzipped() wrong for compressed", x.gzipped)
		}
		b, err := io.ReadAll(rdr)
		if err != nil {
			t.Fatal(err)
		}
		if string(b) != fqText {
			t.Errorf("wrong string: %s", b)
		}
		if err := rdr.Close(); err != nil {
			t.Errorf("Error closing: %s", err)
		}
	}
}

// A pipe cannot seek, so this checks we only peek.
func TestWrapMaybePipe(t *testing.T) {
	for _, x := range gztests(t) {
		rdr, err := zwrap.WrapMaybe(io.NopCloser(bytes.NewReader(x.data)))
		if err != nil {
			t.Fatal(err)
		}
		b, _ := io.ReadAll(rdr)
		if string(b) != fqText {
			t.Errorf("pipe, compressed %v, wrong string: %s", x.gzipped, b)
		}
	}
}

func TestShort(t *testing.T) {
	rdr, err := zwrap.WrapMaybe(io.NopCloser(bytes.NewReader([]byte{0x1f})))
	if err != nil {
		t.Fatal("one byte file should just be passed through", err)
	}
	if rdr.Gzipped() {
		t.Fatal("one byte cannot be gzip")
	}
	if _, err := zwrap.WrapMaybe(io.NopCloser(bytes.NewReader([]byte{0x1f, 0x8b, 0}))); err == nil {
		t.Fatal("broken gzip header should give an error")
	}
}
