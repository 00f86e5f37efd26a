// Package hash provides checksum helpers for snapshot integrity checks.
package hash

import "github.com/cespare/xxhash/v2"

// Checksum computes the xxHash64 of the given bytes.
func Checksum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Verify reports whether the xxHash64 of data matches the expected sum.
func Verify(data []byte, expected uint64) bool {
	return xxhash.Sum64(data) == expected
}
