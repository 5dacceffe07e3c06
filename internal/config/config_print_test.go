package config_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/inwx-ddns/inwx-ddns/internal/api"
	"github.com/inwx-ddns/inwx-ddns/internal/config"
	"github.com/inwx-ddns/inwx-ddns/internal/ipnet"
	"github.com/inwx-ddns/inwx-ddns/internal/mocks"
	"github.com/inwx-ddns/inwx-ddns/internal/monitor"
	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

func TestPrintDefault(t *testing.T) {
	t.Parallel()

	c := config.Default()
	c.Auth.Username = "alice"
	c.Auth.Password = "hunter2"
	c.Records[ipnet.IP4] = []api.RecordID{111, 222}
	c.Records[ipnet.IP6] = []api.RecordID{333}
	c.IP6Suffix = "0:0:0:1"
	c.Monitor = monitor.NewComposite(&monitor.HealthChecks{}) //nolint:exhaustruct

	section := func(title string) string { return "   🔧 " + title + "\n" }
	item := func(title, value string) string { return fmt.Sprintf("      🔸 %-24s %s\n", title, value) }

	var buf strings.Builder
	c.Print(pp.New(&buf))

	require.Equal(t, strings.Join([]string{
		"📖 Current settings:\n",
		section("INWX account:"),
		item("Username:", "alice"),
		item("Password:", "(redacted)"),
		item("API endpoint:", api.LiveURL+" (live)"),
		section("Records and lookup services:"),
		item("IPv4 (A) records:", "111, 222"),
		item("IPv4 lookup service:", "ipify"),
		item("IPv6 (AAAA) records:", "333"),
		item("IPv6 lookup service:", "ipify"),
		item("IPv6 suffix:", "0:0:0:1"),
		section("Cache:"),
		item("Cache file:", "cache.yaml"),
		section("Timeouts:"),
		item("IP detection:", "5s"),
		item("Record updating:", "10s"),
		section("Monitors:"),
		item("Healthchecks.io:", "(URL redacted)"),
	}, ""), buf.String())
	require.NotContains(t, buf.String(), "hunter2")
}

func TestPrintSkipsDisabledFamily(t *testing.T) {
	t.Parallel()

	c := config.Default()
	c.Auth.URL = api.OTEURL
	c.Records[ipnet.IP4] = []api.RecordID{111}
	c.Provider[ipnet.IP6] = nil

	var buf strings.Builder
	c.Print(pp.New(&buf).SetEmoji(false))

	require.Contains(t, buf.String(), api.OTEURL+" (OTE)")
	require.Contains(t, buf.String(), "IPv4 (A) records:")
	require.NotContains(t, buf.String(), "IPv6")
	require.NotContains(t, buf.String(), "Monitors:")
}

func TestPrintHidden(t *testing.T) {
	t.Parallel()

	mockCtrl := gomock.NewController(t)
	mockPP := mocks.NewMockPP(mockCtrl)
	mockPP.EXPECT().IsShowing(pp.Info).Return(false)

	config.Default().Print(mockPP)
}
