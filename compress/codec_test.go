package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/flexbuf/errs"
	"github.com/arloliu/flexbuf/format"
)

// testPayload builds a payload with enough repetition to be compressible.
func testPayload(size int) []byte {
	data := make([]byte, size)
	for i := range data {
		data[i] = byte(i % 29)
	}

	return data
}

func TestCreateCodec(t *testing.T) {
	tests := []struct {
		name    string
		ctype   format.CompressionType
		wantErr bool
	}{
		{"none", format.CompressionNone, false},
		{"zstd", format.CompressionZstd, false},
		{"s2", format.CompressionS2, false},
		{"lz4", format.CompressionLZ4, false},
		{"invalid", format.CompressionType(0xFF), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			codec, err := CreateCodec(tt.ctype, "test")
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrInvalidCompressionType)
				assert.Nil(t, codec)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, codec)
		})
	}
}

func TestCodec_RoundTrip(t *testing.T) {
	payload := testPayload(4096)

	types := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, ctype := range types {
		t.Run(ctype.String(), func(t *testing.T) {
			codec, err := CreateCodec(ctype, "round-trip")
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Equal(t, payload, restored)
		})
	}
}

func TestCodec_CompressesRepetitiveData(t *testing.T) {
	payload := bytes.Repeat([]byte("flexbuf"), 1024)

	for _, ctype := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		t.Run(ctype.String(), func(t *testing.T) {
			codec, err := CreateCodec(ctype, "ratio")
			require.NoError(t, err)

			compressed, err := codec.Compress(payload)
			require.NoError(t, err)
			assert.Less(t, len(compressed), len(payload), "repetitive data should shrink")
		})
	}
}

func TestCodec_EmptyInput(t *testing.T) {
	for _, ctype := range []format.CompressionType{format.CompressionNone, format.CompressionS2, format.CompressionLZ4} {
		t.Run(ctype.String(), func(t *testing.T) {
			codec, err := CreateCodec(ctype, "empty")
			require.NoError(t, err)

			compressed, err := codec.Compress(nil)
			require.NoError(t, err)

			restored, err := codec.Decompress(compressed)
			require.NoError(t, err)
			assert.Empty(t, restored)
		})
	}
}

func TestNoOp_SharesInput(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := []byte{1, 2, 3}

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	assert.True(t, &payload[0] == &compressed[0], "no-op must not copy")
}

func TestDecompress_CorruptedInput(t *testing.T) {
	garbage := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01}

	for _, ctype := range []format.CompressionType{format.CompressionZstd, format.CompressionS2} {
		t.Run(ctype.String(), func(t *testing.T) {
			codec, err := CreateCodec(ctype, "corrupt")
			require.NoError(t, err)

			_, err = codec.Decompress(garbage)
			assert.Error(t, err)
		})
	}
}

func BenchmarkCompress(b *testing.B) {
	payload := testPayload(16 * 1024)

	for _, ctype := range []format.CompressionType{format.CompressionZstd, format.CompressionS2, format.CompressionLZ4} {
		codec, err := CreateCodec(ctype, "bench")
		if err != nil {
			b.Fatal(err)
		}

		b.Run(ctype.String(), func(b *testing.B) {
			b.SetBytes(int64(len(payload)))
			for i := 0; i < b.N; i++ {
				if _, err := codec.Compress(payload); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
