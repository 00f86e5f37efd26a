// Package compress provides the pluggable payload codecs used by
// flexbuf snapshots.
//
// A snapshot frame stores its payload either raw or compressed with one
// of the supported algorithms; the algorithm is recorded in the frame
// header as a format.CompressionType and resolved back to a Codec with
// CreateCodec when the frame is decoded.
//
// Algorithm guidance for buffer payloads:
//   - None: payloads that are small or already compressed
//   - S2: highest throughput, moderate ratio
//   - LZ4: fast with slightly better ratio than S2 on binary data
//   - Zstd: best ratio, for payloads that are archived or sent over
//     constrained links
//
// All codecs are stateless values and safe for concurrent use; internal
// encoder/decoder instances are pooled.
package compress
