// Package privilege resolves whether commands need a privilege-escalation
// prefix based on the effective identity of the current process.
package privilege

import (
	"os"

	"github.com/jaspreet-dot-casa/sandbox-init/pkg/sysexec"
)

// EscalationCommand is the privilege-escalation utility expected on PATH for
// non-root invocations.
const EscalationCommand = "sudo"

// RootUID is the conventional superuser UID.
const RootUID = 0

// Prefix returns the command prefix required to run privileged operations as
// the given effective UID. Root needs no prefix; everyone else goes through
// sudo. The result is computed once at startup and reused for every
// privileged invocation.
func Prefix(uid int) []string {
	if uid == RootUID {
		return nil
	}
	return []string{EscalationCommand}
}

// CurrentUID returns the effective UID of the current process.
func CurrentUID() int {
	return os.Geteuid()
}

// SudoCached reports whether sudo credentials are already cached, i.e. sudo
// can run without prompting for a password.
func SudoCached(exec sysexec.CommandExecutor) bool {
	_, err := exec.Run(EscalationCommand, "-n", "true")
	return err == nil
}
