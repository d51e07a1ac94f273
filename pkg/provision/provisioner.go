// Package provision runs the sandbox bootstrap sequence: resolve the
// privilege-escalation prefix once, refresh the package index, then install
// the manifest's packages. Every step is fail-fast; the first failing
// command aborts the run and its exit status is preserved for the caller.
package provision

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jaspreet-dot-casa/sandbox-init/pkg/apt"
	"github.com/jaspreet-dot-casa/sandbox-init/pkg/manifest"
	"github.com/jaspreet-dot-casa/sandbox-init/pkg/privilege"
	"github.com/jaspreet-dot-casa/sandbox-init/pkg/sysexec"
)

// Provisioner installs the manifest's packages on the host.
type Provisioner struct {
	executor sysexec.CommandExecutor
	manifest *manifest.Manifest
	uid      func() int
	progress ProgressCallback
}

// StepResult records one executed package-manager command.
type StepResult struct {
	Stage   Stage    // Which stage the command belongs to
	Argv    []string // Full command line, prefix included
	Elapsed time.Duration
}

// Report summarizes a provisioning run.
type Report struct {
	RunID    uuid.UUID    // Unique identifier for this run
	Prefix   []string     // Resolved privilege-escalation prefix (nil when root)
	Packages []string     // Packages passed to the install step
	Steps    []StepResult // Commands executed, in order
	Started  time.Time
	Finished time.Time
}

// New creates a Provisioner for the default manifest using the real system.
func New() *Provisioner {
	return &Provisioner{
		executor: &sysexec.RealExecutor{},
		manifest: manifest.Default(),
		uid:      privilege.CurrentUID,
		progress: NoOpProgress,
	}
}

// NewWithExecutor creates a Provisioner with a custom executor and UID
// source (for testing).
func NewWithExecutor(exec sysexec.CommandExecutor, m *manifest.Manifest, uid func() int) *Provisioner {
	return &Provisioner{
		executor: exec,
		manifest: m,
		uid:      uid,
		progress: NoOpProgress,
	}
}

// SetProgress sets the progress callback for subsequent runs.
func (p *Provisioner) SetProgress(cb ProgressCallback) {
	if cb == nil {
		cb = NoOpProgress
	}
	p.progress = cb
}

// Run executes the provisioning sequence. On failure it returns immediately
// without attempting later steps; the returned error wraps the failing
// command's error so the exit status can be recovered with sysexec.ExitCode.
func (p *Provisioner) Run(ctx context.Context) (*Report, error) {
	report := &Report{
		RunID:    uuid.New(),
		Packages: p.manifest.Names(),
		Started:  time.Now(),
	}

	// Resolved once, reused for both package-manager invocations.
	prefix := privilege.Prefix(p.uid())
	report.Prefix = prefix
	p.progress(newEvent(StageResolving, escalationMessage(prefix), ""))

	steps := []struct {
		stage Stage
		inv   apt.Invocation
	}{
		{StageRefreshing, apt.UpdateCmd(prefix)},
		{StageInstalling, apt.InstallCmd(prefix, report.Packages)},
	}

	for _, step := range steps {
		argv := step.inv.Argv()
		display := strings.Join(argv, " ")
		p.progress(newEvent(step.stage, step.stage.DisplayName(), display))

		start := time.Now()
		err := p.executor.Stream(ctx, step.inv.Env, step.inv.Name, step.inv.Args...)
		elapsed := time.Since(start)

		if err != nil {
			p.progress(newErrorEvent(fmt.Sprintf("%s failed", display)))
			report.Finished = time.Now()
			return report, fmt.Errorf("%s failed (run %s): %w", display, report.RunID, err)
		}

		report.Steps = append(report.Steps, StepResult{
			Stage:   step.stage,
			Argv:    argv,
			Elapsed: elapsed,
		})
	}

	report.Finished = time.Now()
	p.progress(newEvent(StageComplete, "Sandbox provisioned", ""))
	return report, nil
}

func escalationMessage(prefix []string) string {
	if len(prefix) == 0 {
		return "Running as root, no escalation needed"
	}
	return fmt.Sprintf("Escalating via %s", strings.Join(prefix, " "))
}
