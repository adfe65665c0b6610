package common

import (
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestReverseComplement(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"A", "T"},
		{"ATGC", "GCAT"},
		{"ATGAAATAA", "TTATTTCAT"},
		{"atgc", "gcat"},         // case preserved
		{"ANTna", "tnANT"},       // N and n map to themselves
		{"AT-GC", "GC-AT"},       // unknown symbols pass through
	}
	for _, c := range cases {
		if got := ReverseComplement(c.in); got != c.want {
			t.Errorf("ReverseComplement(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestReverseComplementInvolution(t *testing.T) {
	seqs := []string{"ATGC", "atgcN", "AAAATTTTGGGGCCCC", "NnAtGc"}
	for _, s := range seqs {
		if got := ReverseComplement(ReverseComplement(s)); got != s {
			t.Errorf("double reverse complement of %q = %q", s, got)
		}
	}
}

func TestGCContent(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 0},
		{"GGCC", 100},
		{"AATT", 0},
		{"ATGC", 50},
		{"atgc", 50},
	}
	for _, c := range cases {
		if got := GCContent(c.in); got != c.want {
			t.Errorf("GCContent(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestWrapFasta(t *testing.T) {
	got := WrapFasta("ATGCATGCAT", 4)
	want := "ATGC\nATGC\nAT\n"
	if got != want {
		t.Errorf("WrapFasta = %q, want %q", got, want)
	}
}

func TestOpenFileOrGzip(t *testing.T) {
	dir := t.TempDir()

	plain := filepath.Join(dir, "plain.fa")
	if err := os.WriteFile(plain, []byte(">s\nACGT\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	gzPath := filepath.Join(dir, "comp.fa") // no .gz suffix on purpose
	f, err := os.Create(gzPath)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	gw := gzip.NewWriter(f)
	if _, err := gw.Write([]byte(">s\nACGT\n")); err != nil {
		t.Fatalf("write gz: %v", err)
	}
	if err := gw.Close(); err != nil {
		t.Fatalf("close gz: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	for _, path := range []string{plain, gzPath} {
		r, err := OpenFileOrGzip(path)
		if err != nil {
			t.Fatalf("open %s: %v", path, err)
		}
		data, err := io.ReadAll(r)
		if err != nil {
			t.Fatalf("read %s: %v", path, err)
		}
		if err := r.Close(); err != nil {
			t.Fatalf("close %s: %v", path, err)
		}
		if string(data) != ">s\nACGT\n" {
			t.Errorf("%s: content = %q", path, data)
		}
	}
}
