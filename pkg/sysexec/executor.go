// Package sysexec provides the command execution seam shared by the
// provisioner and doctor packages, allowing tests to substitute fakes.
package sysexec

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
)

// CommandExecutor is an interface for executing commands, allowing for testing.
type CommandExecutor interface {
	// LookPath finds the path to an executable.
	LookPath(file string) (string, error)

	// Run executes a command and returns its captured output.
	Run(name string, args ...string) (string, error)

	// Stream executes a command with the child attached to the parent's
	// stdout and stderr, with extra environment variables appended.
	Stream(ctx context.Context, env []string, name string, args ...string) error

	// FileExists checks if a file exists.
	FileExists(path string) bool
}

// RealExecutor is the default command executor that uses the real system.
type RealExecutor struct{}

// LookPath finds the path to an executable.
func (e *RealExecutor) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// Run executes a command and returns its output.
func (e *RealExecutor) Run(name string, args ...string) (string, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	err := cmd.Run()
	if err != nil {
		// Some tools write version info to stderr
		if stderr.Len() > 0 {
			return stderr.String(), err
		}
		return stdout.String(), err
	}
	output := stdout.String()
	if output == "" {
		output = stderr.String()
	}
	return output, nil
}

// Stream executes a command attached to the parent's stdout and stderr so the
// child's own diagnostics are the only output the user sees.
func (e *RealExecutor) Stream(ctx context.Context, env []string, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Stdin = os.Stdin
	if len(env) > 0 {
		cmd.Env = append(os.Environ(), env...)
	}
	return cmd.Run()
}

// FileExists checks if a file exists.
func (e *RealExecutor) FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ExitCode extracts the exit code of a failed command from err. It returns
// -1 and false when err does not carry one (e.g. the command never started).
func ExitCode(err error) (int, bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), true
	}
	return -1, false
}
