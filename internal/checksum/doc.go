// Package checksum provides content hashing for SQL artifacts.
//
// Every artifact gets a SHA-256 checksum of its raw, unsubstituted content.
// A deployment plan is identified by its fingerprint: a SHA-256 over the
// artifact checksums in execution order. Two runs with the same fingerprint
// executed the same files in the same order, which makes the fingerprint a
// convenient audit value for CI logs.
//
// # Example Usage
//
//	calculator := checksum.New()
//	sum := calculator.Calculate(fileContent)
//	fingerprint := checksum.Fingerprint([]string{sum})
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
