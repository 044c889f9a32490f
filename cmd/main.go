// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

// Package main provides the CLI entry point for Pakdrop.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gofrs/flock"
	"github.com/janderssonse/pakdrop/internal/cli"
	"github.com/janderssonse/pakdrop/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	// One instance at a time: two installers racing for the package
	// manager lock only produce confusing pkexec prompts.
	lock := flock.New(config.LockPath())

	locked, err := lock.TryLock()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to acquire process lock: %v\n", err)

		return cli.ExitSystemError
	}

	if !locked {
		fmt.Fprintf(os.Stderr, "Another pakdrop instance is already running\n")

		return cli.ExitGeneralError
	}

	defer func() {
		if unlockErr := lock.Unlock(); unlockErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to release process lock: %v\n", unlockErr)
		}
	}()

	app := cli.App()

	if err := app.Run(context.Background(), os.Args); err != nil {
		exitErr := &cli.ExitError{}
		if errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "%s\n", exitErr.Message)

			return exitErr.Code
		}

		fmt.Fprintf(os.Stderr, "Unexpected error: %v\n", err)

		return cli.ExitGeneralError
	}

	return cli.ExitSuccess
}
