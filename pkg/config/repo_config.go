package config

import (
	"github.com/cperrin88/archdb/pkg/fsutil"
	"gopkg.in/yaml.v3"
)

// UnmarshalYAML decodes a repository entry. Entries without an explicit
// enabled key are enabled.
func (rc *RepositoryConfig) UnmarshalYAML(value *yaml.Node) error {
	type plain RepositoryConfig
	raw := plain{Enabled: true}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	*rc = RepositoryConfig(raw)
	return nil
}

// ResolvePath returns the database file of the repository. Without an
// explicit path it is <syncDir>/<name>.db.
func (rc *RepositoryConfig) ResolvePath(syncDir string) string {
	if rc.Path != "" {
		return rc.Path
	}
	return fsutil.SyncDBPath(syncDir, rc.Name)
}
