package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	perr "github.com/ajitrahul/chetna-sub000/internal/platform/errors"
	"github.com/ajitrahul/chetna-sub000/internal/platform/logger"
)

func main() {
	logger.Init(logger.FromEnv())
	l := logger.Get()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()
	ctx = logger.WithReading(ctx, "", "cli")

	if err := Execute(ctx, os.Args[1:], os.Stdout); err != nil {
		w := perr.WireFrom(err)
		l.Error().Err(err).Str("code", w.Kind).Str("field", w.Field).Msg("chetna failed")
		cancel()
		os.Exit(exitCode(err))
	}
}

// exitCode maps input problems to 2 and everything else to 1
func exitCode(err error) int {
	switch perr.CodeOf(err) {
	case perr.ErrorCodeInvalidInput, perr.ErrorCodeInvalidLongitude,
		perr.ErrorCodeUnsupportedHarmonic, perr.ErrorCodeMalformedChart:
		return 2
	}
	return 1
}
