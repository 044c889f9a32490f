// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

// Package platform provides shared command execution functionality.
package platform

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// CommandRunner implements the CommandRunner port for real system commands.
type CommandRunner struct {
	verbose bool
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(verbose bool) *CommandRunner {
	return &CommandRunner{
		verbose: verbose,
	}
}

// ExecuteWithOutput runs a command and returns its standard output.
func (r *CommandRunner) ExecuteWithOutput(ctx context.Context, name string, args ...string) (string, error) {
	if r.verbose {
		fmt.Printf("Executing (with output): %s %s\n", name, strings.Join(args, " "))
	}

	cmd := exec.CommandContext(ctx, name, args...)

	output, err := cmd.Output()
	if err != nil {
		return "", fmt.Errorf("command failed: %w", err)
	}

	return string(output), nil
}

// CommandExists checks if a command is available on the system.
func (r *CommandRunner) CommandExists(name string) bool {
	_, err := exec.LookPath(name)

	return err == nil
}

// MockCommandRunner implements the CommandRunner port for testing.
type MockCommandRunner struct {
	outputs  map[string]string // command -> canned output
	failures map[string]error  // command -> forced error
	missing  map[string]bool   // command name -> reported missing
	verbose  bool
}

// NewMockCommandRunner creates a new mock command runner for testing.
func NewMockCommandRunner(verbose bool) *MockCommandRunner {
	return &MockCommandRunner{
		outputs:  make(map[string]string),
		failures: make(map[string]error),
		missing:  make(map[string]bool),
		verbose:  verbose,
	}
}

// SetMockOutput sets the expected output for a command.
func (r *MockCommandRunner) SetMockOutput(command, output string) {
	r.outputs[command] = output
}

// SetMockFailure makes a command fail with the given error.
func (r *MockCommandRunner) SetMockFailure(command string, err error) {
	r.failures[command] = err
}

// SetMockMissing marks a command name as unresolvable on the search path.
func (r *MockCommandRunner) SetMockMissing(name string) {
	r.missing[name] = true
}

// ExecuteWithOutput runs a mock command and returns preset output.
func (r *MockCommandRunner) ExecuteWithOutput(_ context.Context, name string, args ...string) (string, error) {
	fullCommand := name + " " + strings.Join(args, " ")
	if r.verbose {
		fmt.Printf("MOCK: Executing %s\n", fullCommand)
	}

	if err, exists := r.failures[fullCommand]; exists {
		return "", err
	}

	return r.outputs[fullCommand], nil
}

// CommandExists reports true unless the name was marked missing.
func (r *MockCommandRunner) CommandExists(name string) bool {
	return !r.missing[name]
}
