package kaggle

import (
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/m-mizutani/dsfetch/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// Client runs the Kaggle CLI. Implementations must block until the command exits.
type Client interface {
	Run(ctx context.Context, args []string) error
}

type client struct {
	path   string
	stdout io.Writer
	stderr io.Writer
}

type Option func(*client)

// WithStdout sets the writer receiving the command's standard output. Default is os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(x *client) {
		x.stdout = w
	}
}

// WithStderr sets the writer receiving the command's standard error. Default is os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(x *client) {
		x.stderr = w
	}
}

func New(path string, options ...Option) Client {
	x := &client{
		path:   path,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *client) Run(ctx context.Context, args []string) error {
	logging.From(ctx).Debug("run kaggle command", "path", x.path, "args", args)

	// #nosec G204
	cmd := exec.CommandContext(ctx, x.path, args...)
	cmd.Stdout = x.stdout
	cmd.Stderr = x.stderr

	if err := cmd.Run(); err != nil {
		return goerr.Wrap(err, "failed to run kaggle command",
			goerr.V("path", x.path),
			goerr.V("args", args),
		)
	}

	return nil
}
