// Package monitor implements dead man's switches for the updater.
package monitor

import (
	"context"

	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

//go:generate mockgen -destination=../mocks/mock_monitor.go -package=mocks . Monitor

// maxReadLength is the maximum number of bytes read from a response body.
const maxReadLength int64 = 102400

// Monitor is a dead man's switch, meaning that the absence of pings means failures.
type Monitor interface {
	// DescribeService gives the name of the service.
	DescribeService() string

	// Start pings the monitor at the beginning of a run.
	Start(ctx context.Context, ppfmt pp.PP, message string) bool

	// Success pings the monitor after a successful run.
	Success(ctx context.Context, ppfmt pp.PP, message string) bool

	// Failure pings the monitor after a failed run.
	Failure(ctx context.Context, ppfmt pp.PP, message string) bool

	// ExitStatus reports the exit code of a run that could not start.
	ExitStatus(ctx context.Context, ppfmt pp.PP, code int, message string) bool
}
