package models

// Mode selects the direction of a cipher transform.
type Mode int

const (
	// Encrypt turns plaintext into ciphertext.
	Encrypt Mode = iota + 1

	// Decrypt turns ciphertext back into plaintext.
	Decrypt
)

// Inverse returns the opposite transform direction.
// Used when replaying a history entry in reverse.
func (m Mode) Inverse() Mode {
	if m == Encrypt {
		return Decrypt
	}
	return Encrypt
}

// String returns a human-readable name for the mode.
func (m Mode) String() string {
	switch m {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return "unknown"
	}
}

// Credentials is the passphrase and iteration count staged for a batch.
// The pair is collected once up front and re-collected verbatim by the
// confirmation gate before any destructive operation runs.
type Credentials struct {
	Passphrase string
	Iterations int
}

// Equal reports whether both fields match other exactly.
func (c Credentials) Equal(other Credentials) bool {
	return c.Passphrase == other.Passphrase && c.Iterations == other.Iterations
}

// CryptoJob describes one pending transform of a single file.
// A job is constructed fresh per file and consumed within a single
// processing step; it is never persisted.
type CryptoJob struct {
	// Path is the file the transform reads from.
	Path string

	// Mode is the transform direction, derived from the file's state.
	Mode Mode

	// Algorithm is a registered cipher algorithm identifier.
	Algorithm string

	// Iterations is the key-derivation iteration count. Must be positive.
	Iterations int

	// Passphrase is the user secret the key is derived from.
	Passphrase string
}
