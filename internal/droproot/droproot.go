// Package droproot drops root privileges.
package droproot

import (
	"syscall"

	"github.com/inwx-ddns/inwx-ddns/internal/config"
	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

// defaultID is used when both the effective and the real IDs are 0.
const defaultID = 1000

// readPUID reads PUID. By default, it is the effective user ID, or the real
// user ID if the effective one is 0.
func readPUID(ppfmt pp.PP) (int, bool) {
	uid := syscall.Geteuid()
	if uid == 0 {
		uid = syscall.Getuid()
		if uid == 0 {
			uid = defaultID
		}
	}

	if !config.ReadLinuxID(ppfmt, "PUID", &uid) {
		return 0, false
	}

	return uid, true
}

// readPGID reads PGID. The default is computed as for [readPUID].
func readPGID(ppfmt pp.PP) (int, bool) {
	gid := syscall.Getegid()
	if gid == 0 {
		gid = syscall.Getgid()
		if gid == 0 {
			gid = defaultID
		}
	}

	if !config.ReadLinuxID(ppfmt, "PGID", &gid) {
		return 0, false
	}

	return gid, true
}

// DropPrivileges drops all privileges as much as possible.
// It returns false only when PUID or PGID is invalid; failures to drop
// privileges are reported as warnings.
func DropPrivileges(ppfmt pp.PP) bool {
	if ppfmt.IsShowing(pp.Info) {
		ppfmt.Infof(pp.EmojiPrivileges, "Dropping privileges . . .")
		ppfmt = ppfmt.Indent()
	}

	uid, ok := readPUID(ppfmt)
	if !ok {
		return false
	}

	gid, ok := readPGID(ppfmt)
	if !ok {
		return false
	}

	// The group ID goes first because changing the user ID may take away the power to change it.
	setGroups(ppfmt, gid)
	setUser(ppfmt, uid)
	dropCapabilities(ppfmt)

	return true
}
