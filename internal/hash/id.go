package hash

import "github.com/cespare/xxhash/v2"

// labelSeparator joins the labels of a column tuple before hashing.
// It cannot occur in whitespace-delimited MAGICC labels.
const labelSeparator = "\x1f"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// ColumnID computes the xxHash64 of a column label tuple.
//
// Labels are hashed in order, so ("CO2", "SET") and ("SET", "CO2") produce different ids.
func ColumnID(labels ...string) uint64 {
	d := xxhash.New()
	for i, label := range labels {
		if i > 0 {
			_, _ = d.WriteString(labelSeparator)
		}
		_, _ = d.WriteString(label)
	}

	return d.Sum64()
}

// Digest accumulates an xxHash64 over a sequence of labels and values.
type Digest struct {
	d *xxhash.Digest
}

// NewDigest returns an empty Digest.
func NewDigest() *Digest {
	return &Digest{d: xxhash.New()}
}

// WriteString adds s followed by a separator to the digest.
func (d *Digest) WriteString(s string) {
	_, _ = d.d.WriteString(s)
	_, _ = d.d.WriteString(labelSeparator)
}

// WriteUint64 adds v to the digest in little-endian order.
func (d *Digest) WriteUint64(v uint64) {
	var b [8]byte
	for i := range b {
		b[i] = byte(v >> (8 * i))
	}
	_, _ = d.d.Write(b[:])
}

// Sum64 returns the current hash.
func (d *Digest) Sum64() uint64 {
	return d.d.Sum64()
}
