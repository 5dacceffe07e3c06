package updater

// Code summarizes the outcome of [UpdateIPs].
type Code int

const (
	// CodeOK means every configured family was detected and is up to date.
	CodeOK Code = iota

	// CodeFetchFailed means at least one family could not be detected.
	// The other families were still processed.
	CodeFetchFailed

	// CodeAuthFailed means the login was rejected or could not be sent.
	// The run stopped before any record was changed by it.
	CodeAuthFailed

	// CodeUpdateFailed means a record update failed. The run stopped there.
	CodeUpdateFailed
)

// Halted checks whether the run stopped early. The cache must not be written after a halted run.
func (c Code) Halted() bool {
	return c == CodeAuthFailed || c == CodeUpdateFailed
}

// ExitStatus gives the exit status of the process.
func (c Code) ExitStatus() int {
	switch c {
	case CodeOK:
		return 0
	case CodeFetchFailed:
		return 2 //nolint:gomnd
	case CodeAuthFailed:
		return 3 //nolint:gomnd
	case CodeUpdateFailed:
		return 4 //nolint:gomnd
	default:
		return 1
	}
}

// Describe gives a short summary for logs and monitors.
func (c Code) Describe() string {
	switch c {
	case CodeOK:
		return "Records are up to date"
	case CodeFetchFailed:
		return "Failed to detect some IP addresses"
	case CodeAuthFailed:
		return "Failed to log in to INWX"
	case CodeUpdateFailed:
		return "Failed to update some records"
	default:
		return "Unknown outcome"
	}
}
