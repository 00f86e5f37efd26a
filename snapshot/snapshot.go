// Package snapshot serializes buffer contents into self-describing
// frames and restores them later.
//
// A frame is a fixed 16-byte header followed by the buffer's remaining
// bytes, optionally compressed. The header records the compression
// algorithm, the source buffer's byte order, the uncompressed payload
// length and an xxHash64 checksum, so a frame can be validated and
// restored without out-of-band metadata.
//
// Encoding never consumes the source buffer: its position, limit and
// mark are untouched.
//
//	data, err := snapshot.Encode(buf, snapshot.WithCompression(format.CompressionZstd))
//	...
//	restored, err := snapshot.Decode(data)
package snapshot

import (
	"fmt"

	"github.com/arloliu/flexbuf/buffer"
	"github.com/arloliu/flexbuf/compress"
	"github.com/arloliu/flexbuf/endian"
	"github.com/arloliu/flexbuf/errs"
	"github.com/arloliu/flexbuf/format"
	"github.com/arloliu/flexbuf/internal/hash"
	"github.com/arloliu/flexbuf/internal/options"
	"github.com/arloliu/flexbuf/internal/pool"
)

type encodeConfig struct {
	compression format.CompressionType
}

// Option configures snapshot encoding.
type Option = options.Option[*encodeConfig]

// WithCompression selects the compression algorithm applied to the
// snapshot payload. The default is format.CompressionNone.
func WithCompression(compression format.CompressionType) Option {
	return options.New(func(cfg *encodeConfig) error {
		if !compression.Valid() {
			return fmt.Errorf("%w: %d", errs.ErrInvalidCompressionType, compression)
		}
		cfg.compression = compression

		return nil
	})
}

// Encode serializes the remaining bytes of buf into a snapshot frame.
//
// The source buffer is not consumed: encoding reads through a duplicate
// cursor, so buf's position, limit and mark are unchanged. The checksum
// always covers the uncompressed payload.
//
// Returns the frame bytes, owned by the caller.
func Encode(buf *buffer.ByteBuffer, opts ...Option) ([]byte, error) {
	cfg := &encodeConfig{compression: format.CompressionNone}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	// Read the remaining bytes through an independent cursor.
	dup := buf.Duplicate()
	payload := make([]byte, dup.Remaining())
	if err := dup.GetSlice(payload, 0, len(payload)); err != nil {
		return nil, err
	}

	checksum := hash.Checksum(payload)

	codec, err := compress.CreateCodec(cfg.compression, "snapshot payload")
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress snapshot payload: %w", err)
	}

	header := NewHeader(len(payload), cfg.compression, endian.IsLittleEndian(buf.Order()), checksum)

	bb := pool.GetSnapshotBuffer()
	defer pool.PutSnapshotBuffer(bb)

	bb.MustWrite(header.Bytes())
	bb.MustWrite(compressed)

	// Copy out: the pooled buffer is reused after Put.
	frame := make([]byte, bb.Len())
	copy(frame, bb.Bytes())

	return frame, nil
}

// Decode validates a snapshot frame and restores its payload into a
// fresh writable ByteBuffer.
//
// The returned buffer owns its storage (never aliases data), has
// position 0 and limit equal to the payload length, and uses the byte
// order recorded in the header.
func Decode(data []byte) (*buffer.ByteBuffer, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	codec, err := compress.CreateCodec(header.Compression, "snapshot payload")
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(data[HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress snapshot payload: %w", err)
	}

	if len(payload) != int(header.PayloadLen) {
		return nil, fmt.Errorf("%w: expected %d bytes, got %d", errs.ErrPayloadSizeMismatch, header.PayloadLen, len(payload))
	}

	if !hash.Verify(payload, header.Checksum) {
		return nil, fmt.Errorf("%w: expected 0x%016x, got 0x%016x",
			errs.ErrChecksumMismatch, header.Checksum, hash.Checksum(payload))
	}

	// The no-op codec returns a slice aliasing data; copy so the restored
	// buffer owns its storage.
	restored := make([]byte, len(payload))
	copy(restored, payload)

	return buffer.WrapBytes(restored, 0, len(restored), header.Engine())
}
