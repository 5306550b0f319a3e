package envsetup

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/qetools/configcake/internal/config"
)

func newTestRunner(t *testing.T, cfg config.Config) (*Runner, *bytes.Buffer) {
	t.Helper()

	runner := New(cfg, zaptest.NewLogger(t))
	out := &bytes.Buffer{}
	runner.stdout = out
	runner.stderr = out
	return runner, out
}

func TestRunExecutesCommandsInOrder(t *testing.T) {
	cfg := config.Config{
		Commands: []config.Command{
			{Name: "first", Args: []string{"sh", "-c", "echo one"}},
			{Name: "second", Args: []string{"sh", "-c", "echo two"}},
		},
	}
	runner, out := newTestRunner(t, cfg)

	if err := runner.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if got := out.String(); got != "one\ntwo\n" {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunStopsAtFirstFailure(t *testing.T) {
	cfg := config.Config{
		Commands: []config.Command{
			{Name: "doomed", Args: []string{"sh", "-c", "exit 3"}},
			{Name: "never runs", Args: []string{"sh", "-c", "echo after"}},
		},
	}
	runner, out := newTestRunner(t, cfg)

	err := runner.Run(context.Background())
	if err == nil {
		t.Fatalf("expected error from failing command")
	}
	if !strings.Contains(err.Error(), "doomed") {
		t.Fatalf("expected failing command name in error, got %v", err)
	}
	if strings.Contains(out.String(), "after") {
		t.Fatalf("command after the failure should not have run")
	}
}

func TestRunUnknownBinaryFails(t *testing.T) {
	cfg := config.Config{
		Commands: []config.Command{
			{Name: "missing", Args: []string{"definitely-not-a-real-binary"}},
		},
	}
	runner, _ := newTestRunner(t, cfg)

	if err := runner.Run(context.Background()); err == nil {
		t.Fatalf("expected error for unknown binary")
	}
}

func TestRunHonoursCancelledContext(t *testing.T) {
	cfg := config.Config{
		Commands: []config.Command{
			{Name: "never runs", Args: []string{"sh", "-c", "echo after"}},
		},
	}
	runner, out := newTestRunner(t, cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := runner.Run(ctx); err == nil {
		t.Fatalf("expected error from cancelled context")
	}
	if out.Len() != 0 {
		t.Fatalf("no command should have produced output, got %q", out.String())
	}
}

func TestRunAppliesCommandTimeout(t *testing.T) {
	cfg := config.Config{
		Commands: []config.Command{
			{Name: "slow", Args: []string{"sleep", "5"}},
		},
		CommandTimeout: 50 * time.Millisecond,
	}
	runner, _ := newTestRunner(t, cfg)

	start := time.Now()
	if err := runner.Run(context.Background()); err == nil {
		t.Fatalf("expected timeout error")
	}
	if elapsed := time.Since(start); elapsed > 3*time.Second {
		t.Fatalf("timeout did not apply, run took %s", elapsed)
	}
}

func TestVerboseLogsEachCommand(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)

	cfg := config.Config{
		Commands: []config.Command{
			{Name: "greet", Args: []string{"sh", "-c", "echo hi"}},
		},
		Verbose: true,
	}
	runner := New(cfg, zap.New(core))
	runner.stdout = &bytes.Buffer{}
	runner.stderr = &bytes.Buffer{}

	if err := runner.Run(context.Background()); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	entries := logs.FilterMessage("running command").All()
	if len(entries) != 1 {
		t.Fatalf("expected one log entry per command, got %d", len(entries))
	}
	if got := entries[0].ContextMap()["command"]; got != "sh -c echo hi" {
		t.Fatalf("unexpected logged command %q", got)
	}
}
