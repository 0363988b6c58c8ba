package pathkit

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess      = 0  // Command completed successfully
	ExitGeneralError = 1  // Unknown or unclassified error
	ExitUsageError   = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic        = 3  // Internal panic (unexpected crash)
	ExitConfigError  = 10 // Invalid configuration or mapping file
	ExitIOError      = 11 // Filesystem fault (permission denied, device error)
	ExitInvalidPath  = 12 // Path cannot be used for the requested operation
)

const (
	// ConfigFileName is the project configuration file looked up in the
	// working directory.
	ConfigFileName = "pathkit.yaml"

	// EnvConfigPath overrides the location of the configuration file.
	EnvConfigPath = "PATHKIT_CONFIG"

	// EnvNonInteractive disables styled terminal output when set to "1".
	EnvNonInteractive = "PATHKIT_NON_INTERACTIVE"
)
