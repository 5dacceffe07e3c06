package config

import (
	"syscall"

	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

// CheckRoot warns when the process still runs as root.
func CheckRoot(ppfmt pp.PP) {
	if syscall.Geteuid() == 0 {
		ppfmt.Warningf(pp.EmojiUserWarning, "The updater is still running as root, which is usually a bad idea")
	}
}
