// Package main provides the sbx CLI tool for provisioning sandbox environments.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/sandbox-init/pkg/sysexec"
)

// version is set via -ldflags during build
var version = "dev"

func main() {
	rootCmd := newRootCmd()

	// Cobra handles error printing
	rootCmd.SilenceUsage = true

	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitStatus(err))
	}
}

// exitStatus maps an error to the process exit code. When the error carries
// the exit status of a failed external command, that status is propagated
// unchanged; everything else exits 1.
func exitStatus(err error) int {
	if code, ok := sysexec.ExitCode(err); ok && code > 0 {
		return code
	}
	return 1
}

// newRootCmd creates the root command for sbx
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "sbx",
		Short: "Sandbox Provisioning CLI Tool",
		Long: `sbx bootstraps a sandbox environment by refreshing the apt package
index and installing the baseline tooling (nodejs, npm, curl, wget).

It supports:
  - One-shot provisioning with automatic privilege escalation (up)
  - Host health checks with optional fixes (doctor)
  - Listing the packages the provisioner installs (packages)`,
		Version: version,
	}

	rootCmd.AddCommand(
		newUpCmd(),
		newDoctorCmd(),
		newPackagesCmd(),
	)

	return rootCmd
}
