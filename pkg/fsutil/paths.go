package fsutil

import (
	"os"
	"path/filepath"
	"strings"
)

const (
	// AppName is the name of the application used in paths.
	AppName = "archdb"

	// DefaultPacmanDBPath is the root of the pacman databases.
	DefaultPacmanDBPath = "/var/lib/pacman"

	// SyncDBExt is the extension pacman gives sync databases.
	SyncDBExt = ".db"
)

// DefaultSyncDir returns the directory holding the sync databases.
func DefaultSyncDir() string {
	return filepath.Join(DefaultPacmanDBPath, "sync")
}

// DefaultLocalDBPath returns the directory of the local database.
func DefaultLocalDBPath() string {
	return filepath.Join(DefaultPacmanDBPath, "local")
}

// GetConfigDir returns the platform-specific configuration directory.
// On Linux: ~/.config/archdb/
func GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, AppName), nil
}

// archiveSuffixes are stripped, longest first, to derive a repository name
// from a database file name.
var archiveSuffixes = []string{
	".db.tar.gz", ".db.tar.xz", ".db.tar",
	".tar.gz", ".tar.xz", ".tgz", ".txz",
	SyncDBExt, ".tar", ".gz", ".xz",
}

// RepositoryName derives a repository name from the base name of path, for
// example "core" from "/var/lib/pacman/sync/core.db".
func RepositoryName(path string) string {
	base := filepath.Base(filepath.Clean(path))
	for _, suffix := range archiveSuffixes {
		if name, ok := strings.CutSuffix(base, suffix); ok && name != "" {
			return name
		}
	}
	return base
}

// SyncDBPath returns the path of the sync database of repository inside
// syncDir.
func SyncDBPath(syncDir, repository string) string {
	return filepath.Join(syncDir, repository+SyncDBExt)
}
