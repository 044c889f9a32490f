// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

// Package installer runs the privileged install command for a package file
// on a background goroutine, streaming its merged output back to the
// caller. States: Idle -> Running -> {Succeeded, Failed, Cancelled} ->
// Idle; terminal states are reported through the completion callback and
// the worker is immediately reusable.
package installer

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/janderssonse/pakdrop/internal/domain"
	"github.com/janderssonse/pakdrop/internal/i18n"
)

const (
	// defaultTerminateWait bounds how long a cancelled process may take to
	// exit gracefully before it is killed.
	defaultTerminateWait = 5 * time.Second

	// tailLines is how many trailing output lines are kept for error reporting.
	tailLines = 5

	scanBufferInitial = 64 * 1024
	scanBufferMax     = 1024 * 1024
)

// ErrBusy is returned when an installation is already running.
var ErrBusy = errors.New("an installation is already in progress")

// ProgressFunc receives one trimmed output line per call. It is invoked
// from the worker goroutine; callers who own an event loop must trampoline
// it there themselves.
type ProgressFunc func(line string)

// CompleteFunc receives the final verdict and a message: a success note,
// the last few output lines on failure, or the spawn error text.
type CompleteFunc func(success bool, message string)

// Resolver resolves the FamilyTool for a package family.
type Resolver interface {
	For(family domain.Family) (domain.FamilyTool, error)
}

// Worker owns at most one running installation. The zero-value-like state
// after New is Idle; a second Start while Running fails fast with ErrBusy
// rather than queueing.
type Worker struct {
	tools         Resolver
	runner        domain.CommandRunner
	translate     *i18n.Translator
	terminateWait time.Duration

	mu        sync.Mutex
	running   bool
	cancelled bool
	cmd       *exec.Cmd
	done      chan struct{}
}

// Option configures the worker.
type Option func(*Worker)

// WithTerminateWait overrides the grace period between SIGTERM and SIGKILL.
func WithTerminateWait(wait time.Duration) Option {
	return func(w *Worker) {
		w.terminateWait = wait
	}
}

// NewWorker creates an idle installer worker.
func NewWorker(tools Resolver, runner domain.CommandRunner, translate *i18n.Translator, opts ...Option) *Worker {
	worker := &Worker{
		tools:         tools,
		runner:        runner,
		translate:     translate,
		terminateWait: defaultTerminateWait,
	}

	for _, opt := range opts {
		opt(worker)
	}

	return worker
}

// Running reports whether an installation is in flight.
func (w *Worker) Running() bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	return w.running
}

// Start launches the privileged install command for the file on a
// background goroutine. It returns ErrBusy while a job is running and
// domain.ErrUnsupportedType for an unknown family; otherwise the verdict
// arrives through onComplete.
func (w *Worker) Start(ctx context.Context, path string, family domain.Family, onProgress ProgressFunc, onComplete CompleteFunc) error {
	tool, err := w.tools.For(family)
	if err != nil {
		return err
	}

	w.mu.Lock()
	if w.running {
		w.mu.Unlock()

		return ErrBusy
	}

	w.running = true
	w.cancelled = false
	w.done = make(chan struct{})
	w.mu.Unlock()

	go w.run(ctx, tool.InstallCommand(path), onProgress, onComplete)

	return nil
}

// Cancel requests termination of the running job: SIGTERM first, SIGKILL
// after a bounded wait. It returns true only when a job was actually
// running and a termination attempt was made. The running flag and the
// process handle are always cleared by the worker goroutine on exit.
func (w *Worker) Cancel() bool {
	w.mu.Lock()

	if !w.running {
		w.mu.Unlock()

		return false
	}

	w.cancelled = true

	if w.cmd == nil || w.cmd.Process == nil {
		// Spawn still in flight; the worker goroutine checks the flag
		// right after starting the process.
		w.mu.Unlock()

		return true
	}

	process := w.cmd.Process
	done := w.done
	w.mu.Unlock()

	_ = process.Signal(syscall.SIGTERM)

	select {
	case <-done:
	case <-time.After(w.terminateWait):
		_ = process.Kill()
		<-done
	}

	return true
}

// CheckDependencies verifies every executable the family's installation
// needs is resolvable on the search path, reporting all missing names
// together.
func (w *Worker) CheckDependencies(family domain.Family) (bool, string) {
	tool, err := w.tools.For(family)
	if err != nil {
		return false, err.Error()
	}

	var missing []string

	for _, name := range tool.RequiredTools() {
		if !w.runner.CommandExists(name) {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return false, w.translate.GetWith("dependencies_missing",
			i18n.Params{"tools": strings.Join(missing, ", ")})
	}

	return true, w.translate.Get("all_dependencies_available")
}

func (w *Worker) run(ctx context.Context, argv []string, onProgress ProgressFunc, onComplete CompleteFunc) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) // #nosec G204 - argv comes from the family tool table

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		w.finish(onComplete, false, fmt.Sprintf("failed to prepare install command: %v", err))

		return
	}

	// Merge stderr into the stdout stream so progress and errors arrive
	// in one ordered sequence.
	cmd.Stderr = cmd.Stdout

	if err := cmd.Start(); err != nil {
		w.finish(onComplete, false, fmt.Sprintf("failed to start install command: %v", err))

		return
	}

	w.mu.Lock()
	w.cmd = cmd
	cancelledEarly := w.cancelled
	w.mu.Unlock()

	if cancelledEarly {
		_ = cmd.Process.Signal(syscall.SIGTERM)
	}

	var tail []string

	scanner := bufio.NewScanner(stdout)
	scanner.Buffer(make([]byte, 0, scanBufferInitial), scanBufferMax)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		tail = append(tail, line)
		if len(tail) > tailLines {
			tail = tail[1:]
		}

		if onProgress != nil {
			onProgress(line)
		}
	}

	err = cmd.Wait()

	w.mu.Lock()
	cancelled := w.cancelled
	w.mu.Unlock()

	switch {
	case cancelled:
		w.finish(onComplete, false, w.translate.Get("installation_cancelled"))
	case err != nil:
		message := strings.Join(tail, "\n")
		if message == "" {
			message = err.Error()
		}

		w.finish(onComplete, false, message)
	default:
		w.finish(onComplete, true, w.translate.Get("package_installed_successfully"))
	}
}

// finish returns the worker to Idle, releases the process handle and
// delivers the verdict. Ownership of the output tail transfers to the
// completion callback's caller here.
func (w *Worker) finish(onComplete CompleteFunc, success bool, message string) {
	w.mu.Lock()
	w.running = false
	w.cmd = nil
	done := w.done
	w.done = nil
	w.mu.Unlock()

	if done != nil {
		close(done)
	}

	if onComplete != nil {
		onComplete(success, message)
	}
}
