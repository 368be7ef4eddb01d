package fastq

import (
	"strings"
	"testing"
)

func TestTagPreservesInvariant(t *testing.T) {
	tg := NewTagger("ATCG")
	in := Record{Header: "@r1 lane1", Seq: "GGGG", Plus: "+", Qual: "FFFF"}
	out := tg.Tag(in)

	if out.Seq != "ATCGGGGG" {
		t.Fatalf("seq: %q", out.Seq)
	}
	if out.Qual != "IIIIFFFF" {
		t.Fatalf("qual: %q", out.Qual)
	}
	if len(out.Seq) != len(out.Qual) {
		t.Fatalf("length invariant broken: %d vs %d", len(out.Seq), len(out.Qual))
	}
	if len(out.Seq) != len(in.Seq)+len(tg.Barcode) {
		t.Fatalf("tagged length %d, want %d", len(out.Seq), len(in.Seq)+len(tg.Barcode))
	}
	if out.Header != in.Header || out.Plus != in.Plus {
		t.Fatalf("header/plus must be verbatim: %+v", out)
	}
}

func TestTagAllPreservesOrder(t *testing.T) {
	tg := NewTagger("AA")
	recs := []Record{
		{Header: "@r1", Seq: "C", Plus: "+", Qual: "F"},
		{Header: "@r2", Seq: "G", Plus: "+", Qual: "F"},
		{Header: "@r3", Seq: "T", Plus: "+", Qual: "F"},
	}
	tg.TagAll(recs)
	for i, r := range recs {
		if want := "@r" + string(rune('1'+i)); r.Header != want {
			t.Fatalf("record %d out of order: %s", i, r.Header)
		}
		if !strings.HasPrefix(r.Seq, "AA") {
			t.Fatalf("record %d untagged: %q", i, r.Seq)
		}
	}
}
