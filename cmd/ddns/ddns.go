// Package main is the entry point of the INWX DDNS updater.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/inwx-ddns/inwx-ddns/internal/api"
	"github.com/inwx-ddns/inwx-ddns/internal/cache"
	"github.com/inwx-ddns/inwx-ddns/internal/config"
	"github.com/inwx-ddns/inwx-ddns/internal/droproot"
	"github.com/inwx-ddns/inwx-ddns/internal/ipnet"
	"github.com/inwx-ddns/inwx-ddns/internal/pp"
	"github.com/inwx-ddns/inwx-ddns/internal/signal"
	"github.com/inwx-ddns/inwx-ddns/internal/updater"
)

// Version is the version of the updater that will be shown in the output.
// This is to be overwritten by the linker argument -X main.Version=version.
var Version string //nolint:gochecknoglobals

func formatName() string {
	if Version == "" {
		return "INWX DDNS"
	}
	return fmt.Sprintf("INWX DDNS (%s)", Version)
}

func initConfig(ppfmt pp.PP) (*config.Config, api.Handle, bool) {
	c := config.Default()

	// Read the config
	if !c.ReadEnv(ppfmt) || !c.Normalize(ppfmt) {
		return c, nil, false
	}

	// Print the config
	c.Print(ppfmt)

	// Get the handle; it logs in only when a record has to change
	h, ok := c.Auth.New(ppfmt, c.UpdateTimeout)
	if !ok {
		return c, nil, false
	}

	return c, h, true
}

// describeChanges lists the record contents that differ between two cache records.
func describeChanges(before, after cache.Record) []string {
	var changes []string
	for _, ipNet := range ipnet.All {
		if content := after.Get(ipNet); content != before.Get(ipNet) {
			changes = append(changes, fmt.Sprintf("Set %s records to %s.", ipNet.RecordType(), content))
		}
	}
	return changes
}

// run performs one update: load the cache, update the records, and save the cache
// unless the run was halted by a login or update failure.
func run(ctx context.Context, ppfmt pp.PP, c *config.Config, h api.Handle, now func() time.Time,
) (updater.Code, []string) {
	cached := cache.Load(ppfmt, c.CacheFile)

	current, code := updater.UpdateIPs(ctx, ppfmt, c, h, cached)
	if code.Halted() {
		ppfmt.Noticef(pp.EmojiCache, "The cached addresses are left untouched")
		return code, describeChanges(cached, current)
	}

	current.Updated = now().UTC()
	cache.Save(ppfmt, c.CacheFile, current)

	return code, describeChanges(cached, current)
}

func main() {
	os.Exit(realMain())
}

func realMain() int {
	ppfmt, ok := config.SetupPP(pp.New(os.Stdout))
	if !ok {
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	}
	if !ppfmt.IsShowing(pp.Info) {
		ppfmt.Noticef(pp.EmojiMute, "Quiet mode enabled")
	}

	// Show the name and the version of the updater
	ppfmt.Noticef(pp.EmojiStar, formatName())

	// Drop the superuser privilege
	if !droproot.DropPrivileges(ppfmt) {
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	}
	config.CheckRoot(ppfmt)

	// Get the contexts; monitors are pinged even after a signal
	ctx := context.Background()
	ctxWithSignals, stop := signal.NotifyContext(ctx, ppfmt)
	defer stop()

	// Read the config and get the handle
	c, h, configOK := initConfig(ppfmt)
	// Ping the monitors regardless of whether initConfig succeeded
	c.Monitor.Start(ctx, ppfmt, formatName())
	// Bail out now if initConfig failed
	if !configOK {
		c.Monitor.ExitStatus(ctx, ppfmt, 1, "Configuration errors")
		ppfmt.Noticef(pp.EmojiBye, "Bye!")
		return 1
	}

	code, changes := run(ctxWithSignals, ppfmt, c, h, time.Now)
	msg := strings.Join(append(changes, code.Describe()), "\n")
	if len(changes) > 0 || code != updater.CodeOK {
		c.Notifier.Send(ctx, ppfmt, msg)
	}
	if code == updater.CodeOK {
		c.Monitor.Success(ctx, ppfmt, msg)
		ppfmt.Noticef(pp.EmojiGood, "%s", code.Describe())
	} else {
		c.Monitor.Failure(ctx, ppfmt, msg)
		ppfmt.Errorf(pp.EmojiError, "%s", code.Describe())
	}

	ppfmt.Noticef(pp.EmojiBye, "Bye!")
	return code.ExitStatus()
}
