package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/MichalMitros/ecom-reconciler/internal/platform"
	"github.com/MichalMitros/ecom-reconciler/internal/profile"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
)

// Exit codes.
const (
	exitOK          = 0
	exitFatal       = 1
	exitUnsupported = 2
)

const transportHint = "check network and VPN connection"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := zerolog.New(stderr).With().Timestamp().Logger()

	registry, err := profile.NewRegistry()
	if err != nil {
		logger.Error().
			Err(err).
			Msg("can't compose marketplace profiles")
		return exitFatal
	}

	cmd := newRootCommand(&logger, registry)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err = cmd.ExecuteContext(ctx)
	code := exitCode(err)

	switch code {
	case exitOK:
	case exitUnsupported:
		logger.Warn().
			Err(err).
			Msg("record kind is not supported")
	default:
		event := logger.Error().Err(err)
		if errors.Is(err, platform.ErrTransport) {
			event = event.Str("hint", transportHint)
		}
		event.Msg("reconciliation failed")
	}

	return code
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, platform.ErrUnsupported):
		return exitUnsupported
	default:
		return exitFatal
	}
}

// usageError marks invalid command line input.
type usageError struct {
	err error
}

func (e usageError) Error() string {
	return fmt.Sprintf("invalid arguments: %v", e.err)
}

func (e usageError) Unwrap() error {
	return e.err
}
