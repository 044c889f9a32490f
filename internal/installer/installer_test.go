// SPDX-FileCopyrightText: 2025 The Pakdrop Authors
// SPDX-License-Identifier: EUPL-1.2

package installer_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/janderssonse/pakdrop/internal/adapters/platform"
	"github.com/janderssonse/pakdrop/internal/domain"
	"github.com/janderssonse/pakdrop/internal/i18n"
	"github.com/janderssonse/pakdrop/internal/installer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTool satisfies domain.FamilyTool with a scripted install command, so
// the worker can be exercised against real subprocesses without pkexec.
type fakeTool struct {
	script string
}

func (f *fakeTool) Family() domain.Family { return domain.FamilyDebian }

func (f *fakeTool) ExtractInfo(_ context.Context, _ string) (*domain.Metadata, error) {
	return domain.NewMetadata(domain.FamilyDebian), nil
}

func (f *fakeTool) IsInstalled(_ context.Context, _ string) (bool, string) { return false, "" }

func (f *fakeTool) InstalledVersion(_ context.Context, _ string) string { return "" }

func (f *fakeTool) FindIcon(_ string) string { return "" }

func (f *fakeTool) InstallCommand(_ string) []string {
	return []string{"/bin/sh", "-c", f.script}
}

func (f *fakeTool) RequiredTools() []string { return []string{"sh", "pkexec"} }

type fakeResolver struct {
	tool domain.FamilyTool
}

func (r *fakeResolver) For(family domain.Family) (domain.FamilyTool, error) {
	if r.tool == nil || family == domain.FamilyUnknown {
		return nil, domain.ErrUnsupportedType
	}

	return r.tool, nil
}

type completion struct {
	success bool
	message string
}

// collector gathers callbacks from the worker goroutine.
type collector struct {
	mu    sync.Mutex
	lines []string
	done  chan completion
}

func newCollector() *collector {
	return &collector{done: make(chan completion, 1)}
}

func (c *collector) onProgress(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.lines = append(c.lines, line)
}

func (c *collector) onComplete(success bool, message string) {
	c.done <- completion{success: success, message: message}
}

func (c *collector) progressLines() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]string(nil), c.lines...)
}

func (c *collector) wait(t *testing.T) completion {
	t.Helper()

	select {
	case result := <-c.done:
		return result
	case <-time.After(15 * time.Second):
		t.Fatal("timed out waiting for completion")

		return completion{}
	}
}

func newWorker(script string) *installer.Worker {
	return installer.NewWorker(&fakeResolver{tool: &fakeTool{script: script}},
		platform.NewMockCommandRunner(false), i18n.New("en"))
}

func TestStartStreamsOutputAndSucceeds(t *testing.T) {
	t.Parallel()

	worker := newWorker("echo unpacking; echo configuring")
	col := newCollector()

	require.NoError(t, worker.Start(context.Background(), "/tmp/a.deb",
		domain.FamilyDebian, col.onProgress, col.onComplete))

	result := col.wait(t)
	assert.True(t, result.success)
	assert.Equal(t, "Package installed successfully", result.message)
	assert.Equal(t, []string{"unpacking", "configuring"}, col.progressLines())
	assert.False(t, worker.Running())
}

func TestStartRejectsUnknownFamily(t *testing.T) {
	t.Parallel()

	worker := newWorker("true")

	err := worker.Start(context.Background(), "/tmp/a.xyz", domain.FamilyUnknown, nil, nil)
	require.ErrorIs(t, err, domain.ErrUnsupportedType)
	assert.False(t, worker.Running())
}

func TestSecondStartIsBusy(t *testing.T) {
	t.Parallel()

	worker := newWorker("sleep 2")
	col := newCollector()

	require.NoError(t, worker.Start(context.Background(), "/tmp/a.deb",
		domain.FamilyDebian, nil, col.onComplete))

	// The running job must not be disturbed by the rejected start.
	err := worker.Start(context.Background(), "/tmp/b.deb", domain.FamilyDebian, nil, nil)
	require.ErrorIs(t, err, installer.ErrBusy)

	result := col.wait(t)
	assert.True(t, result.success)
}

func TestFailureReportsOutputTail(t *testing.T) {
	t.Parallel()

	worker := newWorker("echo one; echo two; echo three; echo four; echo five; echo six; exit 3")
	col := newCollector()

	require.NoError(t, worker.Start(context.Background(), "/tmp/a.deb",
		domain.FamilyDebian, col.onProgress, col.onComplete))

	result := col.wait(t)
	assert.False(t, result.success)
	// Only the last five lines are reported.
	assert.Equal(t, "two\nthree\nfour\nfive\nsix", result.message)
	assert.False(t, worker.Running())
}

func TestFailureWithoutOutputReportsError(t *testing.T) {
	t.Parallel()

	worker := newWorker("exit 7")
	col := newCollector()

	require.NoError(t, worker.Start(context.Background(), "/tmp/a.deb",
		domain.FamilyDebian, nil, col.onComplete))

	result := col.wait(t)
	assert.False(t, result.success)
	assert.Contains(t, result.message, "exit status 7")
}

func TestSpawnFailure(t *testing.T) {
	t.Parallel()

	worker := installer.NewWorker(
		&fakeResolver{tool: &brokenTool{}}, platform.NewMockCommandRunner(false), i18n.New("en"))
	col := newCollector()

	require.NoError(t, worker.Start(context.Background(), "/tmp/a.deb",
		domain.FamilyDebian, nil, col.onComplete))

	result := col.wait(t)
	assert.False(t, result.success)
	assert.Contains(t, result.message, "failed to start install command")
	assert.False(t, worker.Running())
}

type brokenTool struct {
	fakeTool
}

func (b *brokenTool) InstallCommand(_ string) []string {
	return []string{"/nonexistent/definitely-not-a-binary"}
}

func TestCancelRunningJob(t *testing.T) {
	t.Parallel()

	worker := newWorker("echo started; sleep 30")
	col := newCollector()

	require.NoError(t, worker.Start(context.Background(), "/tmp/a.deb",
		domain.FamilyDebian, col.onProgress, col.onComplete))

	// Wait for the first progress line so the process is surely up.
	require.Eventually(t, func() bool {
		return len(col.progressLines()) > 0
	}, 10*time.Second, 10*time.Millisecond)

	assert.True(t, worker.Cancel())

	result := col.wait(t)
	assert.False(t, result.success)
	assert.Contains(t, result.message, "cancelled")
	assert.False(t, worker.Running())

	// A second cancel has nothing to act on.
	assert.False(t, worker.Cancel())
}

func TestCancelKillsProcessIgnoringTerm(t *testing.T) {
	t.Parallel()

	// The script ignores SIGTERM, so cancellation has to fall through to
	// the forced kill after the grace period.
	worker := installer.NewWorker(
		&fakeResolver{tool: &fakeTool{script: "trap '' TERM; echo started; exec sleep 30"}},
		platform.NewMockCommandRunner(false), i18n.New("en"),
		installer.WithTerminateWait(100*time.Millisecond))
	col := newCollector()

	require.NoError(t, worker.Start(context.Background(), "/tmp/a.deb",
		domain.FamilyDebian, col.onProgress, col.onComplete))

	require.Eventually(t, func() bool {
		return len(col.progressLines()) > 0
	}, 10*time.Second, 10*time.Millisecond)

	assert.True(t, worker.Cancel())

	result := col.wait(t)
	assert.False(t, result.success)
	assert.Contains(t, result.message, "cancelled")
	assert.False(t, worker.Running())
}

func TestCancelWhenIdle(t *testing.T) {
	t.Parallel()

	worker := newWorker("true")

	assert.False(t, worker.Cancel())
}

func TestCheckDependencies(t *testing.T) {
	t.Parallel()

	runner := platform.NewMockCommandRunner(false)
	worker := installer.NewWorker(&fakeResolver{tool: &fakeTool{}}, runner, i18n.New("en"))

	ok, message := worker.CheckDependencies(domain.FamilyDebian)
	assert.True(t, ok)
	assert.NotEmpty(t, message)

	// All missing names are reported together, not just the first.
	runner.SetMockMissing("sh")
	runner.SetMockMissing("pkexec")

	ok, message = worker.CheckDependencies(domain.FamilyDebian)
	assert.False(t, ok)
	assert.Contains(t, message, "sh")
	assert.Contains(t, message, "pkexec")
}

func TestCheckDependenciesUnknownFamily(t *testing.T) {
	t.Parallel()

	worker := newWorker("true")

	ok, message := worker.CheckDependencies(domain.FamilyUnknown)
	assert.False(t, ok)
	assert.NotEmpty(t, message)
}
