// Package errs defines the sentinel errors reported by flexbuf.
//
// All errors are synchronous: they are returned to the caller at the
// point of violation and never retried or suppressed internally.
// Callers should test for them with errors.Is, since call sites wrap
// these sentinels with additional context using fmt.Errorf and %w.
package errs

import "errors"

// Buffer access errors.
var (
	// ErrIndexOutOfBounds indicates an absolute index or sub-range
	// outside [0, limit) or outside the bounds of a caller-supplied
	// slice.
	ErrIndexOutOfBounds = errors.New("index out of bounds")

	// ErrBufferUnderflow indicates a read requested more elements than
	// the buffer has remaining.
	ErrBufferUnderflow = errors.New("buffer underflow")

	// ErrBufferOverflow indicates a write requested more room than the
	// buffer has remaining.
	ErrBufferOverflow = errors.New("buffer overflow")

	// ErrReadOnlyBuffer indicates a mutating operation was invoked on a
	// read-only buffer. The buffer state is unchanged.
	ErrReadOnlyBuffer = errors.New("buffer is read-only")

	// ErrInvalidMark indicates Reset was called with no mark set.
	ErrInvalidMark = errors.New("mark is not set")

	// ErrInvalidArgument indicates a position or limit value that would
	// violate the ordering invariant mark <= position <= limit <= capacity.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSameBuffer indicates a bulk copy where source and destination
	// are the same buffer instance.
	ErrSameBuffer = errors.New("source and destination are the same buffer")
)

// Snapshot errors.
var (
	// ErrInvalidHeaderSize indicates snapshot data too short to contain
	// a complete header.
	ErrInvalidHeaderSize = errors.New("invalid snapshot header size")

	// ErrInvalidMagic indicates snapshot data that does not start with
	// the snapshot magic byte.
	ErrInvalidMagic = errors.New("invalid snapshot magic")

	// ErrInvalidVersion indicates a snapshot produced by an
	// incompatible format version.
	ErrInvalidVersion = errors.New("unsupported snapshot version")

	// ErrChecksumMismatch indicates the snapshot payload checksum does
	// not match the checksum recorded in the header.
	ErrChecksumMismatch = errors.New("snapshot checksum mismatch")

	// ErrInvalidCompressionType indicates an unknown compression type.
	ErrInvalidCompressionType = errors.New("invalid compression type")

	// ErrPayloadSizeMismatch indicates a decompressed payload whose
	// size differs from the size recorded in the header.
	ErrPayloadSizeMismatch = errors.New("snapshot payload size mismatch")
)
