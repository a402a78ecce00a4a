package service

import "strings"

// EncryptedSuffix is the reserved filename suffix marking encrypted output.
// Ciphertext paths are exactly the plaintext path with this one suffix
// appended; the convention is the sole signal used for classification and
// must round-trip bit-for-bit.
const EncryptedSuffix = ".enc"

// FileState is the derived state of a path. It is never stored; it is
// recomputed from the name whenever needed.
type FileState int

const (
	// Plaintext means the path does not carry the reserved suffix.
	Plaintext FileState = iota

	// Ciphertext means the path carries the reserved suffix.
	Ciphertext
)

// Classify reports whether path names ciphertext or plaintext. It is a pure
// function of the path string; no filesystem access happens here.
func Classify(path string) FileState {
	if strings.HasSuffix(path, EncryptedSuffix) {
		return Ciphertext
	}
	return Plaintext
}

// EncryptedPath returns the ciphertext path for a plaintext path.
func EncryptedPath(path string) string {
	return path + EncryptedSuffix
}

// PlainPath returns the plaintext path for a ciphertext path. A path
// without the reserved suffix is returned unchanged.
func PlainPath(path string) string {
	return strings.TrimSuffix(path, EncryptedSuffix)
}
