// Package blake3 provides the default content checksummer.
package blake3

import (
	"encoding/hex"

	"github.com/zeebo/blake3"

	"github.com/semwerk/semspec/internal/core/ports/driven"
)

// Ensure Checksummer implements the interface.
var _ driven.Checksummer = (*Checksummer)(nil)

// Checksummer computes BLAKE3 content checksums.
type Checksummer struct{}

// New creates a BLAKE3 checksummer.
func New() *Checksummer {
	return &Checksummer{}
}

// Sum returns the hex-encoded BLAKE3 digest of data.
func (c *Checksummer) Sum(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}
