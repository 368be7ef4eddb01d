package barcode

import (
	"strings"
	"testing"
)

func TestGenerateOrder(t *testing.T) {
	got, err := Generate(6, 2)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	want := []string{"AA", "AT", "AC", "AG", "TA", "TT"}
	if len(got) != len(want) {
		t.Fatalf("want %d barcodes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("barcode %d: want %s, got %s", i, want[i], got[i])
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a, err := Generate(100, 8)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := Generate(100, 8)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("not deterministic at %d: %s vs %s", i, a[i], b[i])
		}
	}
}

func TestGenerateDistinct(t *testing.T) {
	got, err := Generate(256, 4)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	seen := make(map[string]struct{}, len(got))
	for _, bc := range got {
		if len(bc) != 4 {
			t.Fatalf("barcode %q has length %d, want 4", bc, len(bc))
		}
		if strings.Trim(bc, Alphabet) != "" {
			t.Fatalf("barcode %q has symbols outside %s", bc, Alphabet)
		}
		if _, dup := seen[bc]; dup {
			t.Fatalf("duplicate barcode %s", bc)
		}
		seen[bc] = struct{}{}
	}
}

func TestGenerateSpaceExhausted(t *testing.T) {
	if _, err := Generate(17, 2); err == nil {
		t.Fatal("expected error for 17 > 4^2")
	}
	got, err := Generate(16, 2)
	if err != nil || len(got) != 16 {
		t.Fatalf("16 barcodes of length 2 should fit: %v", err)
	}
}

func TestGenerateArgErrors(t *testing.T) {
	if _, err := Generate(-1, 4); err == nil {
		t.Fatal("expected error for negative count")
	}
	if _, err := Generate(4, 0); err == nil {
		t.Fatal("expected error for zero length")
	}
	got, err := Generate(0, 4)
	if err != nil || len(got) != 0 {
		t.Fatalf("count 0 should yield empty list: %v", err)
	}
}

func TestGenerateLongBarcodes(t *testing.T) {
	// 4^40 overflows a naive int accumulator; the check must not.
	got, err := Generate(3, 40)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got[0] != strings.Repeat("A", 40) {
		t.Fatalf("first long barcode: %q", got[0])
	}
	if got[1] != strings.Repeat("A", 39)+"T" {
		t.Fatalf("second long barcode: %q", got[1])
	}
}
