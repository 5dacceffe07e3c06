package monitor

import (
	"context"

	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

// Composite pings every monitor it holds.
type Composite []Monitor

var _ Monitor = Composite{}

// NewComposite creates a composite monitor, skipping nil monitors and flattening nested composites.
func NewComposite(mons ...Monitor) Composite {
	ms := make(Composite, 0, len(mons))
	for _, m := range mons {
		switch m := m.(type) {
		case nil:
		case Composite:
			ms = append(ms, m...)
		default:
			ms = append(ms, m)
		}
	}
	return ms
}

// DescribeService lists the names of all services.
func (ms Composite) DescribeService() string {
	names := make([]string, 0, len(ms))
	for _, m := range ms {
		names = append(names, m.DescribeService())
	}
	return pp.EnglishJoin(names)
}

func (ms Composite) all(ping func(Monitor) bool) bool {
	ok := true
	for _, m := range ms {
		if !ping(m) {
			ok = false
		}
	}
	return ok
}

// Start calls [Monitor.Start] for each monitor.
func (ms Composite) Start(ctx context.Context, ppfmt pp.PP, message string) bool {
	return ms.all(func(m Monitor) bool { return m.Start(ctx, ppfmt, message) })
}

// Success calls [Monitor.Success] for each monitor.
func (ms Composite) Success(ctx context.Context, ppfmt pp.PP, message string) bool {
	return ms.all(func(m Monitor) bool { return m.Success(ctx, ppfmt, message) })
}

// Failure calls [Monitor.Failure] for each monitor.
func (ms Composite) Failure(ctx context.Context, ppfmt pp.PP, message string) bool {
	return ms.all(func(m Monitor) bool { return m.Failure(ctx, ppfmt, message) })
}

// ExitStatus calls [Monitor.ExitStatus] for each monitor.
func (ms Composite) ExitStatus(ctx context.Context, ppfmt pp.PP, code int, message string) bool {
	return ms.all(func(m Monitor) bool { return m.ExitStatus(ctx, ppfmt, code, message) })
}
