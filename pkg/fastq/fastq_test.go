package fastq_test

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/andrew-torda/bayesalign/pkg/brokenio"
	. "github.com/andrew-torda/bayesalign/pkg/fastq"
	"github.com/andrew-torda/bayesalign/pkg/seq/common"
)

const twoRecs = `@r1 first read
ACGTNACGT
+
IIIII#III
@r2
GTGTCAG
+r2
@@@FFFF
`

var wantTwo = []Record{
	{ID: []byte("r1 first read"), Seq: []byte("ACGTNACGT"), Misc: []byte{}, Qual: []byte("IIIII#III")},
	{ID: []byte("r2"), Seq: []byte("GTGTCAG"), Misc: []byte("r2"), Qual: []byte("@@@FFFF")},
}

func TestRead(t *testing.T) {
	for _, s := range []string{
		twoRecs,
		strings.TrimSuffix(twoRecs, "\n"),                // no final newline
		strings.ReplaceAll(twoRecs, "\n", "\r\n"),        // windows
		strings.Replace(twoRecs, "\n@r2", "\n\n\n@r2", 1), // blank lines
	} {
		recs, err := NewReader(strings.NewReader(s)).ReadAll()
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(wantTwo, recs); diff != "" {
			t.Fatalf("reading %q (-want +got):\n%s", s, diff)
		}
	}
}

func TestEmpty(t *testing.T) {
	rdr := NewReader(strings.NewReader(""))
	if _, err := rdr.Read(); err != io.EOF {
		t.Fatal("empty input should give EOF, got", err)
	}
}

func TestBroken(t *testing.T) {
	var tests = []struct {
		name, s string
	}{
		{"no @", "r1\nACGT\n+\nIIII\n"},
		{"no +", "@r1\nACGT\n-\nIIII\n"},
		{"short qual", "@r1\nACGT\n+\nIII\n"},
		{"truncated", "@r1\nACGT\n+\n"},
		{"truncated second", twoRecs + "@r3\nAC\n"},
	}
	for _, x := range tests {
		_, err := NewReader(strings.NewReader(x.s)).ReadAll()
		if !errors.Is(err, ErrFormat) {
			t.Errorf("%s: wanted ErrFormat, got %v", x.name, err)
		}
	}
}

func TestRecord(t *testing.T) {
	r := wantTwo[0]
	if r.Name() != "r1" {
		t.Fatal("name wanted r1, got", r.Name())
	}
	s := r.Slice(2, 5)
	if string(s.Seq) != "GTN" || string(s.Qual) != "III" || s.Len() != 3 {
		t.Fatal("slice got", string(s.Seq), string(s.Qual))
	}
}

// TestFetch uses the reader the way the pipeline does.
func TestFetch(t *testing.T) {
	var b strings.Builder
	for i := 0; i < 5; i++ {
		b.WriteString(twoRecs)
	}
	rdr := NewReader(strings.NewReader(b.String()))
	if n := rdr.Prepare(context.Background()); n != -1 {
		t.Fatal("Prepare should not know the size, got", n)
	}
	var sizes []int
	total := 0
	for {
		n := rdr.Fetch(3)
		if n == 0 {
			break
		}
		recs := rdr.Data().([]Record)
		if len(recs) != n {
			t.Fatal("Fetch said", n, "but Data has", len(recs))
		}
		sizes = append(sizes, n)
		total += n
	}
	if diff := cmp.Diff([]int{3, 3, 3, 1}, sizes); diff != "" {
		t.Fatal("batch sizes", diff)
	}
	if total != 10 || rdr.NRead() != 10 || rdr.Err() != nil {
		t.Fatal("read", total, "records, error", rdr.Err())
	}

	rdr = NewReader(strings.NewReader(twoRecs + "@bad\nAC\n+\nI\n"))
	rdr.Fetch(10)
	if !errors.Is(rdr.Err(), ErrFormat) {
		t.Fatal("Fetch should leave the format error in Err, got", rdr.Err())
	}
}

func TestWrite(t *testing.T) {
	var b bytes.Buffer
	w := NewWriter(&b)
	for _, r := range wantTwo {
		if err := w.Write(r); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatal(err)
	}
	if b.String() != twoRecs {
		t.Fatalf("wrote\n%s\nwanted\n%s", b.String(), twoRecs)
	}
}

func TestFastaWrite(t *testing.T) {
	var b bytes.Buffer
	w := NewFastaWriter(&b)
	w.CPerLine = 4
	w.Write(wantTwo[0])
	w.Flush()
	if want := ">r1 first read\nACGT\nNACG\nT\n"; b.String() != want {
		t.Fatalf("got\n%s\nwanted\n%s", b.String(), want)
	}
	for _, n := range []int{0, -1} {
		b.Reset()
		w.CPerLine = n
		w.Write(wantTwo[0])
		w.Flush()
		if want := ">r1 first read\nACGTNACGT\n"; b.String() != want {
			t.Fatalf("CPerLine %d got\n%s", n, b.String())
		}
	}
}

func TestOpenGzip(t *testing.T) {
	var b bytes.Buffer
	zw := gzip.NewWriter(&b)
	zw.Write([]byte(twoRecs))
	zw.Close()
	for _, s := range []string{b.String(), twoRecs} {
		fname, err := common.WrtTemp(s)
		if err != nil {
			t.Fatal(err)
		}
		defer os.Remove(fname)
		rdr, rc, err := Open(fname)
		if err != nil {
			t.Fatal(err)
		}
		recs, err := rdr.ReadAll()
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(wantTwo, recs); diff != "" {
			t.Fatal(diff)
		}
	}
	if _, _, err := Open("/this/does/not/exist.fq"); err == nil {
		t.Fatal("missing file should fail")
	}
}

func TestCount(t *testing.T) {
	var tests = []struct {
		s    string
		want int
	}{
		{twoRecs, 2},
		{strings.TrimSuffix(twoRecs, "\n"), 2},
		{"", 0},
	}
	for _, x := range tests {
		fname, err := common.WrtTemp(x.s)
		if err != nil {
			t.Fatal(err)
		}
		n, err := Count(fname)
		os.Remove(fname)
		if err != nil {
			t.Fatal(err)
		}
		if n != x.want {
			t.Fatal("Count wanted", x.want, "got", n)
		}
	}
}

// TestReadError checks that an error part way through a file is not
// taken as the end of the file.
func TestReadError(t *testing.T) {
	for _, at := range []int{5, len(twoRecs) / 2, len(twoRecs) - 1} {
		brk := brokenio.NewReader(io.NopCloser(strings.NewReader(twoRecs)), 1)
		brk.SetFailAt(at)
		rdr := NewReader(brk)
		_, err := rdr.ReadAll()
		if !errors.Is(err, brokenio.ErrBroken) {
			t.Fatal("failing at byte", at, "wanted ErrBroken, got", err)
		}
		rdr = NewReader(brk)
		if rdr.Fetch(10); !errors.Is(rdr.Err(), brokenio.ErrBroken) {
			t.Fatal("Fetch lost the read error")
		}
	}
}
