package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksum(t *testing.T) {
	data := []byte("flexbuf snapshot payload")

	sum := Checksum(data)
	assert.NotZero(t, sum)
	assert.Equal(t, sum, Checksum(data), "checksum must be deterministic")
	assert.NotEqual(t, sum, Checksum(data[1:]), "different input should produce a different sum")
}

func TestVerify(t *testing.T) {
	data := []byte{0x01, 0x02, 0x03}

	assert.True(t, Verify(data, Checksum(data)))
	assert.False(t, Verify(data, Checksum(data)+1))
}

func TestChecksum_Empty(t *testing.T) {
	assert.Equal(t, Checksum(nil), Checksum([]byte{}))
}
