// Package fsutil holds the filesystem conventions of archdb: permission
// modes and the default locations of the pacman databases and of the
// archdb configuration.
package fsutil

// File and directory permission constants.
const (
	// FileModeDefault is -rw-r--r--.
	FileModeDefault = 0o644
	// FileModeSecure is -rw-r-----.
	FileModeSecure = 0o640

	// DirModeDefault is drwxr-xr-x.
	DirModeDefault = 0o755
	// DirModePrivate is drwx------.
	DirModePrivate = 0o700
)
