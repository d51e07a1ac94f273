// Package doctor provides host health checking and fixing for sbx.
package doctor

// CheckStatus represents the status of a host check.
type CheckStatus int

const (
	// StatusOK indicates the check passed.
	StatusOK CheckStatus = iota
	// StatusMissing indicates the tool or package is not installed.
	StatusMissing
	// StatusError indicates an error occurred during the check.
	StatusError
	// StatusWarning indicates the check passed with caveats.
	StatusWarning
)

// String returns the string representation of the status.
func (s CheckStatus) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMissing:
		return "missing"
	case StatusError:
		return "error"
	case StatusWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// Check represents a single host check result.
type Check struct {
	ID          string      // Unique identifier, e.g., "apt-get", "nodejs"
	Name        string      // Display name
	Description string      // What this check verifies
	Status      CheckStatus // Current status
	Message     string      // Status message (version info, error, etc.)
	FixCommand  *FixCommand // How to fix if missing (nil if not fixable)
}

// FixCommand describes how to fix a failed check.
type FixCommand struct {
	Description string // Human-readable description of what the fix does
	Command     string // Shell command to run
	Sudo        bool   // Whether the command requires privilege escalation
}

// CheckGroup represents a group of related host checks.
type CheckGroup struct {
	ID          string  // Unique identifier, e.g., "system", "packages"
	Name        string  // Display name
	Description string  // What this group covers
	Checks      []Check // Individual checks in this group
}

// GroupID constants for check groups.
const (
	GroupSystem   = "system"
	GroupPackages = "packages"
)

// CheckID constants for individual checks.
const (
	IDAptGet     = "apt-get"
	IDAptSources = "apt-sources"
	IDSudo       = "sudo"
	IDNodeJS     = "nodejs"
	IDNpm        = "npm"
	IDCurl       = "curl"
	IDWget       = "wget"
)
