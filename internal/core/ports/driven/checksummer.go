package driven

// Checksummer produces deterministic content checksums. The core consumes
// it as an injected function; the hash primitive itself lives behind an
// adapter.
type Checksummer interface {
	// Sum returns the hex-encoded checksum of data.
	Sum(data []byte) string
}

// ChecksumFunc adapts a plain function to the Checksummer interface.
type ChecksumFunc func(data []byte) string

// Sum implements Checksummer.
func (f ChecksumFunc) Sum(data []byte) string {
	return f(data)
}
