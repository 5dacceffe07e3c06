// Package signal implements the handling of signals.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

// Signals contains the signals to catch.
//
//nolint:gochecknoglobals
var Signals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

// NotifyContext gives a copy of the context that will be canceled by the first signal in [Signals].
// The caught signal is reported. Calling the returned function stops catching signals.
func NotifyContext(ctx context.Context, ppfmt pp.PP) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(ctx)

	chanSignal := make(chan os.Signal, 1)
	signal.Notify(chanSignal, Signals...)

	go func() {
		select {
		case sig := <-chanSignal:
			ppfmt.Noticef(pp.EmojiSignal, "Caught signal: %v; aborting . . .", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(chanSignal)
		cancel()
	}
}
