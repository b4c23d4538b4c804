package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"

	"github.com/m-mizutani/fontinst/pkg/cli/config"
	"github.com/m-mizutani/fontinst/pkg/domain/types"
)

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return run(ctx, args, os.Stdout)
}

func run(ctx context.Context, args []string, w io.Writer) error {
	var (
		loggerCfg  = config.Logger{Writer: w}
		installCfg config.Install
		sentryCfg  config.Sentry
		logger     *slog.Logger
		flush      = func() {}
	)

	var flags []cli.Flag
	flags = append(flags, loggerCfg.Flags()...)
	flags = append(flags, installCfg.Flags()...)
	flags = append(flags, sentryCfg.Flags()...)

	app := &cli.Command{
		Name:    "fontinst",
		Usage:   "Install fonts bundled in zip archives next to the program",
		Version: types.Version,
		Writer:  w,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}
			logger = logger.With("run_id", uuid.NewString())

			sentryFlush, err := sentryCfg.Configure()
			if err != nil {
				return nil, err
			}
			flush = sentryFlush
			logger.Debug("Configured error reporting", "sentry", sentryCfg, "enabled", sentryCfg.Enabled())

			slog.SetDefault(logger)
			ctx = ctxlog.With(ctx, logger)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			flush()
			return nil
		},
		Action: cmdInstallAction(&installCfg),
		Commands: []*cli.Command{
			cmdInstall(&installCfg),
			cmdList(&installCfg),
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
