// core/fastq/record.go
package fastq

import "strings"

// Record is one FASTQ read: four text lines with len(Seq) == len(Qual).
type Record struct {
	Header string // "@" identifier line
	Seq    string // nucleotide sequence
	Plus   string // "+" separator line
	Qual   string // per-base quality, same length as Seq
}

// PadQual is the quality symbol written for barcode positions (Phred 40).
const PadQual = 'I'

// Tagger prepends one fixed barcode to record sequences and a matching
// maximal-quality pad to their quality strings.
type Tagger struct {
	Barcode string
	pad     string
}

func NewTagger(barcode string) Tagger {
	return Tagger{Barcode: barcode, pad: strings.Repeat(string(PadQual), len(barcode))}
}

// Tag returns r with the barcode prepended. Header and Plus are kept
// verbatim; the sequence/quality length invariant is preserved.
func (t Tagger) Tag(r Record) Record {
	r.Seq = t.Barcode + r.Seq
	r.Qual = t.pad + r.Qual
	return r
}

// TagAll tags a batch in place, preserving record order.
func (t Tagger) TagAll(rs []Record) {
	for i := range rs {
		rs[i] = t.Tag(rs[i])
	}
}
