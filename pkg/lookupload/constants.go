package lookupload

import "time"

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess          = 0  // Upload completed successfully
	ExitGeneralError     = 1  // Unknown or unclassified error
	ExitUsageError       = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic            = 3  // Internal panic (unexpected crash)
	ExitConfigError      = 10 // Invalid configuration or unknown category
	ExitInitError        = 11 // Credential file missing or invalid
	ExitConnectionError  = 12 // Database unreachable
	ExitWriteFailed      = 13 // A document write failed
	ExitPermissionDenied = 14 // Credential lacks permission for the write
)

const (
	// DefaultCollection is the collection that holds one document per category.
	DefaultCollection = "lookup_tables"

	// ValuesField is the single field stored in every lookup document.
	ValuesField = "values"

	// DefaultCredentialsFile is the service-account key looked up in the
	// working directory when nothing else is configured.
	DefaultCredentialsFile = "serviceAccountKey.json"

	// DefaultEmulatorProject is used against the Firestore emulator when no
	// project is configured.
	DefaultEmulatorProject = "demo-lookupload"

	// DefaultTimeout bounds the whole run.
	DefaultTimeout = 2 * time.Minute

	// DefaultConcurrency keeps writes sequential.
	DefaultConcurrency = 1

	// MaxConcurrency caps parallel writes.
	MaxConcurrency = 16

	// CompletionMessage is printed on a successful upload.
	CompletionMessage = "Tüm lookup verileri Firestore'a yüklendi."
)

// Environment variables honored by the CLI.
const (
	EnvCredentials    = "GOOGLE_APPLICATION_CREDENTIALS"
	EnvProject        = "GOOGLE_CLOUD_PROJECT"
	EnvEmulatorHost   = "FIRESTORE_EMULATOR_HOST"
	EnvNonInteractive = "LOOKUPLOAD_NON_INTERACTIVE"
)
