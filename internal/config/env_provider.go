package config

import (
	"github.com/inwx-ddns/inwx-ddns/internal/ipnet"
	"github.com/inwx-ddns/inwx-ddns/internal/pp"
	"github.com/inwx-ddns/inwx-ddns/internal/provider"
)

// ReadProvider reads an environment variable as the URL of an address lookup service.
func ReadProvider(ppfmt pp.PP, key string, ipNet ipnet.Type, field *provider.Provider) bool {
	val := Getenv(key)
	if val == "" {
		ppfmt.Infof(pp.EmojiBullet, "Use default %s=%s", key, provider.Name(*field))
		return true
	}

	p, ok := provider.NewCustom(ppfmt, ipNet, val)
	if !ok {
		return false
	}

	*field = p
	return true
}

// ReadProviderMap reads the environment variables IP4_ENDPOINT and IP6_ENDPOINT.
func ReadProviderMap(ppfmt pp.PP, field *map[ipnet.Type]provider.Provider) bool {
	ip4Provider := (*field)[ipnet.IP4]
	ip6Provider := (*field)[ipnet.IP6]

	if !ReadProvider(ppfmt, "IP4_ENDPOINT", ipnet.IP4, &ip4Provider) ||
		!ReadProvider(ppfmt, "IP6_ENDPOINT", ipnet.IP6, &ip6Provider) {
		return false
	}

	*field = map[ipnet.Type]provider.Provider{
		ipnet.IP4: ip4Provider,
		ipnet.IP6: ip6Provider,
	}
	return true
}
