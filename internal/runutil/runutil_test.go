package runutil

import "testing"

func TestEffectiveThreads(t *testing.T) {
	if got := EffectiveThreads(4); got != 4 {
		t.Fatalf("explicit 4 → %d", got)
	}
	if got := EffectiveThreads(32); got != 32 {
		t.Fatalf("explicit values are not capped: got %d", got)
	}
	if got := EffectiveThreads(0); got < 1 || got > MaxAutoThreads {
		t.Fatalf("auto threads out of range: %d", got)
	}
}

func TestNormalizeOutput(t *testing.T) {
	if got := NormalizeOutput("pooled"); got != "pooled.fastq.gz" {
		t.Fatalf("got %q", got)
	}
	if got := NormalizeOutput("pooled.fastq.gz"); got != "pooled.fastq.gz" {
		t.Fatalf("idempotent: got %q", got)
	}
}

func TestMappingPath(t *testing.T) {
	if got := MappingPath("out/pooled.fastq.gz"); got != "out/pooled_barcode_mapping.txt" {
		t.Fatalf("got %q", got)
	}
}
