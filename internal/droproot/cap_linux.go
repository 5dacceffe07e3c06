//go:build linux && !nocapdrop

package droproot

import (
	"syscall"

	"kernel.org/pub/linux/libs/security/libcap/cap"

	"github.com/inwx-ddns/inwx-ddns/internal/pp"
)

// tryRaiseCap attempts to raise the capability val.
//
// The newly gained capability (if any) will be dropped by dropCapabilities later.
// In some setups, the process may raise SETUID or SETGID only to give them up.
func tryRaiseCap(val cap.Value) {
	c, err := cap.GetPID(0)
	if err != nil {
		return
	}

	if err := c.SetFlag(cap.Effective, true, val); err != nil {
		return
	}

	_ = c.SetProc()
}

// setGroups tries to set the group IDs.
//
// We do not call cap.SetGroups because it fails when the capability SETGID
// cannot be obtained, even if Setresgid would have worked.
func setGroups(ppfmt pp.PP, gid int) bool {
	tryRaiseCap(cap.SETGID)

	_ = syscall.Setgroups([]int{})
	_ = syscall.Setresgid(gid, gid, gid)

	return checkGroupIDs(ppfmt, gid)
}

// setUser sets the user ID to something non-zero.
//
// We do not call cap.SetUID because it fails when the capability SETUID
// cannot be obtained, even if Setresuid would have worked.
func setUser(ppfmt pp.PP, uid int) bool {
	tryRaiseCap(cap.SETUID)

	_ = syscall.Setresuid(uid, uid, uid)

	return checkUserID(ppfmt, uid)
}

// dropCapabilities drops all capabilities as the last step.
func dropCapabilities(ppfmt pp.PP) bool {
	_ = cap.NewSet().SetProc()

	return checkCapabilities(ppfmt)
}

func checkCapabilities(ppfmt pp.PP) bool {
	now := cap.GetProc()
	diff, err := now.Cf(cap.NewSet())
	switch {
	case err != nil:
		ppfmt.Errorf(pp.EmojiImpossible, "Failed to check Linux capabilities: %v", err)
		return false
	case diff != 0:
		ppfmt.Warningf(pp.EmojiWarning, "Failed to drop all Linux capabilities; current ones: %v", now)
		return false
	default:
		return true
	}
}
