package blake3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChecksummer_Sum(t *testing.T) {
	c := New()

	sum := c.Sum([]byte("segment body"))

	// 256-bit digest, hex encoded.
	assert.Len(t, sum, 64)
	assert.Equal(t, sum, c.Sum([]byte("segment body")))
	assert.NotEqual(t, sum, c.Sum([]byte("segment body.")))
}

func TestChecksummer_Sum_Empty(t *testing.T) {
	c := New()

	sum := c.Sum(nil)

	assert.Len(t, sum, 64)
	assert.Equal(t, sum, c.Sum([]byte{}))
}
