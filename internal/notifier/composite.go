package notifier

import (
	"context"

	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

// Composite sends messages through every notifier it holds.
type Composite []Notifier

var _ Notifier = Composite{}

// NewComposite creates a composite notifier, skipping nil notifiers and flattening nested composites.
func NewComposite(ns ...Notifier) Composite {
	cs := make(Composite, 0, len(ns))
	for _, n := range ns {
		switch n := n.(type) {
		case nil:
		case Composite:
			cs = append(cs, n...)
		default:
			cs = append(cs, n)
		}
	}
	return cs
}

// Describe lists the names of all services.
func (ns Composite) Describe() string {
	return pp.EnglishJoinMap(Notifier.Describe, ns)
}

// Send calls [Notifier.Send] for each notifier. Empty messages are not sent.
func (ns Composite) Send(ctx context.Context, ppfmt pp.PP, msg string) bool {
	if msg == "" {
		return true
	}

	ok := true
	for _, n := range ns {
		if !n.Send(ctx, ppfmt, msg) {
			ok = false
		}
	}
	return ok
}
