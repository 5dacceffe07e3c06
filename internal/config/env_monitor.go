package config

import (
	"github.com/inwx-ddns/inwx-ddns/internal/monitor"
	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

// ReadAndAppendHealthchecksURL reads the base URL of a Healthchecks endpoint.
func ReadAndAppendHealthchecksURL(ppfmt pp.PP, key string, field *monitor.Composite) bool {
	val := Getenv(key)

	if val == "" {
		return true
	}

	h, ok := monitor.NewHealthChecks(ppfmt, val)
	if !ok {
		return false
	}

	*field = monitor.NewComposite(*field, h)
	return true
}

// ReadAndAppendUptimeKumaURL reads the URL of a Push Monitor of an Uptime Kuma server.
func ReadAndAppendUptimeKumaURL(ppfmt pp.PP, key string, field *monitor.Composite) bool {
	val := Getenv(key)

	if val == "" {
		return true
	}

	h, ok := monitor.NewUptimeKuma(ppfmt, val)
	if !ok {
		return false
	}

	*field = monitor.NewComposite(*field, h)
	return true
}
