package compress

// ZstdCompressor compresses snapshot payloads with Zstandard.
//
// Prefer it when ratio matters more than speed: archived buffer
// snapshots, long-term retention, or transmission over constrained
// links. Two implementations exist behind build tags: a cgo binding
// (valyala/gozstd) when cgo is available, and a pure-Go fallback
// (klauspost/compress/zstd) otherwise. Both produce standard zstd
// frames and decode each other's output.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
