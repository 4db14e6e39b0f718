package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/m-mizutani/dsfetch/pkg/cli/config"
	"github.com/m-mizutani/dsfetch/pkg/infra"
	"github.com/m-mizutani/dsfetch/pkg/infra/kaggle"
	"github.com/m-mizutani/dsfetch/pkg/usecase"
	"github.com/m-mizutani/dsfetch/pkg/utils/errutil"
	"github.com/m-mizutani/dsfetch/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

type CLI struct {
	writer        io.Writer
	clientOptions []infra.Option
}

type Option func(*CLI)

// WithWriter sets the writer for user facing messages. Default is os.Stdout.
func WithWriter(w io.Writer) Option {
	return func(x *CLI) {
		x.writer = w
	}
}

// WithClientOptions appends options applied after the clients built from flags
func WithClientOptions(options ...infra.Option) Option {
	return func(x *CLI) {
		x.clientOptions = append(x.clientOptions, options...)
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		writer: os.Stdout,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string

		fetchCfg  config.Fetch
		sentryCfg config.Sentry

		runCtx = context.Background()
	)

	defer func() {
		if err := logging.Close(); err != nil {
			errutil.HandleError(context.Background(), "failed to close log output", err)
		}
	}()

	app := &cli.Command{
		Name:   "dsfetch",
		Usage:  "Download a Kaggle dataset archive and extract it",
		Writer: x.writer,
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("DSFETCH_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       logging.DefaultLevel,
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("DSFETCH_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       logging.DefaultFormat,
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("DSFETCH_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       logging.DefaultOutput,
			},
		}, fetchCfg.Flags(), sentryCfg.Flags()),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := logging.Configure(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}

			fetchID, ctx := logging.CtxFetchID(ctx)
			ctx = logging.With(ctx, logging.Default().With(slog.String("fetch_id", string(fetchID))))
			runCtx = ctx

			if err := sentryCfg.Configure(ctx); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := fetchCfg.Load(c.IsSet); err != nil {
				return err
			}
			return x.runFetch(ctx, &fetchCfg)
		},
	}

	if err := app.Run(runCtx, argv); err != nil {
		errutil.HandleError(runCtx, "fatal error", err)
		return err
	}

	return nil
}

func (x *CLI) runFetch(ctx context.Context, cfg *config.Fetch) error {
	logging.From(ctx).Info("Starting fetch", slog.Any("config", cfg))

	fmt.Fprintln(x.writer, "Dataset Downloader")
	fmt.Fprintln(x.writer, strings.Repeat("=", 50))

	clientOpts := append([]infra.Option{
		infra.WithKaggle(kaggle.New(cfg.KagglePath)),
	}, x.clientOptions...)
	uc := usecase.New(infra.New(clientOpts...))

	result, err := uc.FetchDataset(ctx, cfg.Input())
	if err != nil {
		return err
	}

	fmt.Fprintf(x.writer, "Dataset downloaded and extracted to: %s\n", result.OutputDir)
	return nil
}
