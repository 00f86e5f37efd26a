package snapshot

import (
	"fmt"

	"github.com/arloliu/flexbuf/endian"
	"github.com/arloliu/flexbuf/errs"
	"github.com/arloliu/flexbuf/format"
)

const (
	// HeaderSize is the fixed size of the snapshot frame header in bytes.
	HeaderSize = 16

	// MagicByte identifies a flexbuf snapshot frame.
	MagicByte = 0xFB

	// Version is the current snapshot format version.
	Version = 0x1

	// flagLittleEndian records the byte order the source buffer used for
	// multi-byte scalar access, so Decode can restore it.
	flagLittleEndian = 0x01
)

// Header is the fixed-size section at the start of every snapshot frame.
//
// Layout (header fields are always little-endian, independent of the
// payload's recorded byte order):
//
//	byte  0      magic (0xFB)
//	byte  1      format version
//	byte  2      flags (bit 0: payload buffer order is little-endian)
//	byte  3      compression type
//	bytes 4-7    uncompressed payload length
//	bytes 8-15   xxHash64 checksum of the uncompressed payload
type Header struct {
	Version     byte
	Flags       byte
	Compression format.CompressionType
	PayloadLen  uint32
	Checksum    uint64
}

// NewHeader creates a header for a payload of the given length with the
// given compression and buffer byte order.
func NewHeader(payloadLen int, compression format.CompressionType, littleEndian bool, checksum uint64) Header {
	var flags byte
	if littleEndian {
		flags |= flagLittleEndian
	}

	return Header{
		Version:     Version,
		Flags:       flags,
		Compression: compression,
		PayloadLen:  uint32(payloadLen),
		Checksum:    checksum,
	}
}

// LittleEndian reports whether the snapshot's source buffer used
// little-endian scalar access.
func (h Header) LittleEndian() bool {
	return h.Flags&flagLittleEndian != 0
}

// Engine returns the endian engine recorded for the source buffer.
func (h Header) Engine() endian.EndianEngine {
	if h.LittleEndian() {
		return endian.GetLittleEndianEngine()
	}

	return endian.GetBigEndianEngine()
}

// Bytes serializes the header into a fresh HeaderSize-byte slice.
func (h Header) Bytes() []byte {
	b := make([]byte, HeaderSize)
	engine := endian.GetLittleEndianEngine()

	b[0] = MagicByte
	b[1] = h.Version
	b[2] = h.Flags
	b[3] = byte(h.Compression)
	engine.PutUint32(b[4:8], h.PayloadLen)
	engine.PutUint64(b[8:16], h.Checksum)

	return b
}

// ParseHeader parses and validates a snapshot header from the start of data.
func ParseHeader(data []byte) (Header, error) {
	var h Header

	if len(data) < HeaderSize {
		return h, fmt.Errorf("%w: need %d bytes, have %d", errs.ErrInvalidHeaderSize, HeaderSize, len(data))
	}

	if data[0] != MagicByte {
		return h, fmt.Errorf("%w: 0x%02x", errs.ErrInvalidMagic, data[0])
	}

	if data[1] != Version {
		return h, fmt.Errorf("%w: %d", errs.ErrInvalidVersion, data[1])
	}

	engine := endian.GetLittleEndianEngine()
	h.Version = data[1]
	h.Flags = data[2]
	h.Compression = format.CompressionType(data[3])
	h.PayloadLen = engine.Uint32(data[4:8])
	h.Checksum = engine.Uint64(data[8:16])

	if !h.Compression.Valid() {
		return h, fmt.Errorf("%w: %d", errs.ErrInvalidCompressionType, data[3])
	}

	return h, nil
}
