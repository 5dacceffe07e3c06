//go:build !linux || nocapdrop

package droproot

import (
	"syscall"

	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

func setGroups(ppfmt pp.PP, gid int) bool {
	_ = syscall.Setgroups([]int{})
	_ = syscall.Setgid(gid)

	return checkGroupIDs(ppfmt, gid)
}

func setUser(ppfmt pp.PP, uid int) bool {
	_ = syscall.Setuid(uid)

	return checkUserID(ppfmt, uid)
}

func dropCapabilities(ppfmt pp.PP) bool {
	ppfmt.Infof(pp.EmojiDisabled, "Support of Linux capabilities was disabled")
	return true
}
