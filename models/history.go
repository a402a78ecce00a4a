package models

// Action identifies what a completed history record did to its file.
// The value determines how the record is displayed and how a reversal
// of the record must be performed.
type Action string

const (
	// ActionEncrypted records that a plaintext file was turned into
	// ciphertext. Reversing it decrypts the file.
	ActionEncrypted Action = "encrypted"

	// ActionDecrypted records that a ciphertext file was turned back
	// into plaintext. Reversing it encrypts the file.
	ActionDecrypted Action = "decrypted"

	// ActionProcessedFolder records that every file under a folder was
	// toggled in one batch. Reversing it re-processes the folder, which
	// toggles each file back.
	ActionProcessedFolder Action = "processed folder"
)

// HistoryEntry is one completed file action in the ledger.
// Entries are immutable once appended; the ledger only ever grows or is
// cleared as a whole.
type HistoryEntry struct {
	// ID uniquely identifies the entry. Assigned at creation, never reused.
	ID string `json:"id"`

	// FileName is the base name the file had when the action ran.
	// For ActionEncrypted it is the plaintext name (without the reserved
	// suffix); for ActionProcessedFolder it is the folder name.
	FileName string `json:"file_name"`

	// Action is what was done to the file.
	Action Action `json:"action"`

	// Algorithm is the cipher algorithm identifier that was used.
	Algorithm string `json:"algorithm"`
}
