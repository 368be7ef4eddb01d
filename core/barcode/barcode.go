// core/barcode/barcode.go
package barcode

import "fmt"

// Alphabet is the nucleotide symbol ordering used for enumeration.
// The order is fixed so identical (count, length) arguments always yield
// identical barcode lists, which keeps mapping files reproducible.
const Alphabet = "ATCG"

// Generate returns the first count strings of length over Alphabet, in
// lexicographic order of the Alphabet symbol ordering (A < T < C < G).
// It fails when count exceeds the 4^length distinct barcodes available.
func Generate(count, length int) ([]string, error) {
	if count < 0 {
		return nil, fmt.Errorf("barcode count must be ≥ 0, got %d", count)
	}
	if length < 1 {
		return nil, fmt.Errorf("barcode length must be ≥ 1, got %d", length)
	}
	if !fits(count, length) {
		return nil, fmt.Errorf("cannot assign %d distinct barcodes of length %d: only 4^%d available", count, length, length)
	}
	if count == 0 {
		return nil, nil
	}

	// Bounded odometer over Alphabet indices; only the first count
	// entries of the product space are ever materialized.
	digits := make([]int, length)
	buf := make([]byte, length)
	out := make([]string, 0, count)
	for len(out) < count {
		for i, d := range digits {
			buf[i] = Alphabet[d]
		}
		out = append(out, string(buf))
		for i := length - 1; i >= 0; i-- {
			digits[i]++
			if digits[i] < len(Alphabet) {
				break
			}
			digits[i] = 0
		}
	}
	return out, nil
}

// fits reports whether count ≤ 4^length without overflowing on long
// barcode lengths.
func fits(count, length int) bool {
	space := 1
	for i := 0; i < length; i++ {
		if space >= count {
			return true
		}
		space *= 4
	}
	return count <= space
}
