package doctor

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaspreet-dot-casa/sandbox-init/pkg/privilege"
	"github.com/jaspreet-dot-casa/sandbox-init/pkg/sysexec"
)

// Fixer runs fix commands for failed checks.
type Fixer struct {
	executor sysexec.CommandExecutor
	uid      int
}

// NewFixer creates a new Fixer.
func NewFixer() *Fixer {
	return &Fixer{
		executor: &sysexec.RealExecutor{},
		uid:      privilege.CurrentUID(),
	}
}

// NewFixerWithExecutor creates a new Fixer with a custom executor and
// effective UID (for testing).
func NewFixerWithExecutor(exec sysexec.CommandExecutor, uid int) *Fixer {
	return &Fixer{
		executor: exec,
		uid:      uid,
	}
}

// RunFix executes a fix command, escalating when the fix requires it and
// the current user is not root. Output streams to the terminal so the
// underlying tool's diagnostics are visible.
func (f *Fixer) RunFix(ctx context.Context, fix *FixCommand) error {
	if fix == nil {
		return fmt.Errorf("no fix command available")
	}

	command := fix.Command
	if fix.Sudo {
		if prefix := privilege.Prefix(f.uid); len(prefix) > 0 {
			command = strings.Join(prefix, " ") + " " + command
		}
	}

	if err := f.executor.Stream(ctx, nil, "sh", "-c", command); err != nil {
		return fmt.Errorf("fix failed: %w", err)
	}

	return nil
}

// Fixable returns the checks in the given groups that failed and have a fix.
func Fixable(groups []CheckGroup) []Check {
	var result []Check
	for _, group := range groups {
		for _, check := range group.Checks {
			if check.Status == StatusMissing && check.FixCommand != nil {
				result = append(result, check)
			}
		}
	}
	return result
}
