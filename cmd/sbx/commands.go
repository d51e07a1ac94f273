package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/sandbox-init/pkg/manifest"
	"github.com/jaspreet-dot-casa/sandbox-init/pkg/provision"
)

// timeRounding keeps elapsed times readable in the summary line.
const timeRounding = 100 * time.Millisecond

// newUpCmd creates the up subcommand (main command)
func newUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Provision the sandbox",
		Long: `Refresh the apt package index and install the baseline packages
(nodejs, npm, curl, wget).

Commands run through sudo unless sbx is already running as root. The first
failing package-manager command aborts the run and its exit status becomes
the exit status of sbx.`,
		Args: cobra.NoArgs,
		RunE: runUp,
	}
}

// newPackagesCmd creates the packages subcommand
func newPackagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "packages",
		Short: "List the packages the provisioner installs",
		Long:  `List all packages that 'sbx up' installs, grouped by category.`,
		RunE:  runPackages,
	}
}

// runUp executes the provisioning sequence.
func runUp(cmd *cobra.Command, _ []string) error {
	p := provision.New()
	p.SetProgress(func(e provision.ProgressEvent) {
		// The failing command's own output is the error report
		if e.IsError {
			return
		}
		if e.Command != "" {
			fmt.Printf("==> %s\n", e.Command)
			return
		}
		fmt.Println(e.Message)
	})

	report, err := p.Run(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("\nInstalled %d packages in %s (run %s)\n",
		len(report.Packages), report.Finished.Sub(report.Started).Round(timeRounding), report.RunID)
	return nil
}

// runPackages lists the default manifest.
func runPackages(_ *cobra.Command, _ []string) error {
	m := manifest.Default()

	fmt.Printf("Manifest %q provisions %d packages:\n\n", m.Name, len(m.Packages))

	for _, category := range m.Categories() {
		fmt.Printf("%s:\n", category)
		for _, pkg := range m.ByCategory(category) {
			desc := pkg.Description
			if desc == "" {
				desc = "(no description)"
			}
			fmt.Printf("  - %s: %s\n", pkg.Name, desc)
		}
		fmt.Println()
	}

	return nil
}
