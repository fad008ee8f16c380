package ir

// Version constants for records and the kybur binary.
const (
	// RecordVersion is the version suffix of the identity domains.
	RecordVersion = "1"

	// Version is the kybur release version.
	Version = "0.1.0"
)
