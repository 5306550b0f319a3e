package envsetup

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/qetools/configcake/internal/config"
)

// Runner executes the configured setup commands sequentially.
type Runner struct {
	cfg    config.Config
	logger *zap.Logger
	stdout io.Writer
	stderr io.Writer
}

// New initializes a Runner from the provided configuration.
func New(cfg config.Config, logger *zap.Logger) *Runner {
	return &Runner{
		cfg:    cfg,
		logger: logger,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Run executes every configured command in declared order, stopping at the
// first failure. Command output goes to the runner's stdout/stderr.
func (r *Runner) Run(ctx context.Context) error {
	for _, command := range r.cfg.Commands {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("environment setup interrupted: %w", err)
		}
		if err := r.runOne(ctx, command); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) runOne(ctx context.Context, command config.Command) error {
	runCtx := ctx
	if r.cfg.CommandTimeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, r.cfg.CommandTimeout)
		defer cancel()
	}

	if r.cfg.Verbose {
		r.logger.Info("running command",
			zap.String("name", command.Name),
			zap.String("command", strings.Join(command.Args, " ")),
		)
	}

	cmd := exec.CommandContext(runCtx, command.Args[0], command.Args[1:]...)
	cmd.Stdout = r.stdout
	cmd.Stderr = r.stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("command %q failed: %w", command.Name, err)
	}
	return nil
}
