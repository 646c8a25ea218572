package checksum

import (
	"crypto/sha256"
	"encoding/hex"
)

// Calculator is an interface for computing artifact checksums.
type Calculator interface {
	// Calculate computes a checksum of the raw, unmodified content.
	Calculate(content []byte) string
}

// SHA256 implements checksum calculation using SHA-256.
//
// SHA256 is a zero-size type and is safe for concurrent use by multiple goroutines.
type SHA256 struct{}

// New creates a new SHA-256 based calculator.
func New() SHA256 {
	return SHA256{}
}

// Calculate computes SHA-256 of raw content.
func (c SHA256) Calculate(content []byte) string {
	hash := sha256.Sum256(content)
	return hex.EncodeToString(hash[:])
}

// Fingerprint combines ordered checksums into a single SHA-256.
// Each checksum is terminated by a newline so that ["ab", "c"] and
// ["a", "bc"] produce different fingerprints. Order matters.
func Fingerprint(checksums []string) string {
	h := sha256.New()
	for _, sum := range checksums {
		h.Write([]byte(sum))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

var _ Calculator = SHA256{}
