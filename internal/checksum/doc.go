// Package checksum provides document hashing with normalization support.
//
// Two checksums are computed per document:
//
//   - Raw checksum: Hash of the exact file content (detects all changes)
//   - Normalized checksum: Hash after removing XML comments and insignificant
//     whitespace (formatting-independent content identity)
//
// The run report records both for every input and every written artifact,
// so two runs over the same corpus can be compared without diffing files.
//
// # Example Usage
//
//	calculator := checksum.New()
//	rawChecksum := calculator.CalculateRaw(fileContent)
//	normalizedChecksum := calculator.CalculateNormalized(fileContent)
//
// # Thread Safety
//
// SHA256 is safe for concurrent use by multiple goroutines.
package checksum
