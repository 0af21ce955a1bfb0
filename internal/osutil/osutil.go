// Package osutil holds operating system constants
package osutil

// Windows is the value of runtime.GOOS on Windows.
const Windows = "windows"

const (
	DirPermission  = 0o755
	FilePermission = 0o644
	// DBPermission restricts the local store to the current user.
	DBPermission = 0o600
)
