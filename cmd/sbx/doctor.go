package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jaspreet-dot-casa/sandbox-init/pkg/doctor"
	"github.com/jaspreet-dot-casa/sandbox-init/pkg/tui"
)

// newDoctorCmd creates the doctor subcommand
func newDoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the host for provisioning prerequisites",
		Long: `Check that the package manager and privilege escalation are available
and report which sandbox packages are already installed.

With --fix, missing packages are installed after confirmation.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDoctor(cmd, fix)
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Install missing packages after confirmation")

	return cmd
}

// runDoctor runs all host checks and optionally fixes what it can.
func runDoctor(cmd *cobra.Command, fix bool) error {
	checker := doctor.NewChecker()
	groups := checker.CheckAllAsync()

	for _, group := range groups {
		fmt.Println(tui.TitleStyle.Render(group.Name))
		for _, check := range group.Checks {
			fmt.Printf("  %s %s: %s\n", statusBadge(check.Status), check.Name, check.Message)
		}
		fmt.Println()
	}

	summary := checker.GetSummary(groups)
	fmt.Printf("%d checks: %d ok, %d missing, %d warnings, %d errors\n",
		summary.Total, summary.OK, summary.Missing, summary.Warnings, summary.Errors)

	if !checker.HasIssues(groups) {
		fmt.Println(tui.SuccessStyle.Render("Host is ready."))
		return nil
	}

	if !fix {
		return fmt.Errorf("%d check(s) failed, run 'sbx doctor --fix' or 'sbx up'", summary.Missing+summary.Errors)
	}

	return runFixes(cmd, groups)
}

// runFixes confirms and runs the fix for each fixable failed check.
func runFixes(cmd *cobra.Command, groups []doctor.CheckGroup) error {
	fixable := doctor.Fixable(groups)
	if len(fixable) == 0 {
		return fmt.Errorf("no automatic fixes available for the failed checks")
	}

	fixer := doctor.NewFixer()
	for _, check := range fixable {
		confirmed, err := tui.Confirm(
			fmt.Sprintf("Install %s?", check.Name),
			fmt.Sprintf("%s: %s", check.FixCommand.Description, check.FixCommand.Command),
		)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Printf("Skipping %s\n", check.Name)
			continue
		}

		fmt.Printf("Fixing %s...\n", check.Name)
		if err := fixer.RunFix(cmd.Context(), check.FixCommand); err != nil {
			return fmt.Errorf("could not fix %s: %w", check.Name, err)
		}
	}

	return nil
}

// statusBadge renders a colored status marker for a check result.
func statusBadge(status doctor.CheckStatus) string {
	switch status {
	case doctor.StatusOK:
		return tui.SuccessStyle.Render("[ok]")
	case doctor.StatusMissing:
		return tui.ErrorStyle.Render("[missing]")
	case doctor.StatusWarning:
		return tui.WarningStyle.Render("[warn]")
	default:
		return tui.ErrorStyle.Render("[error]")
	}
}
