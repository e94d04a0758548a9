package desc

import "strings"

// Dependency is one entry of a DEPENDS, PROVIDES, CONFLICTS or OPTDEPENDS
// section, for example "glibc>=2.39", "libreadline.so=8-64" or
// "bash-completion: for tab completion".
type Dependency struct {
	Name        string
	Operator    string
	Version     string
	Description string
}

// ParseDependency splits a dependency string into its components.
// The name ends at the first comparison operator; a ": " separates an
// optional description.
func ParseDependency(s string) Dependency {
	var dep Dependency
	if i := strings.Index(s, ": "); i >= 0 {
		dep.Description = strings.TrimSpace(s[i+2:])
		s = s[:i]
	}

	i := strings.IndexAny(s, "<>=")
	if i < 0 {
		dep.Name = s
		return dep
	}
	dep.Name = s[:i]

	j := i
	for j < len(s) && strings.IndexByte("<>=", s[j]) >= 0 {
		j++
	}
	dep.Operator = s[i:j]
	dep.Version = s[j:]
	return dep
}

func (d Dependency) String() string {
	var b strings.Builder
	b.WriteString(d.Name)
	b.WriteString(d.Operator)
	b.WriteString(d.Version)
	if d.Description != "" {
		b.WriteString(": ")
		b.WriteString(d.Description)
	}
	return b.String()
}

// ProvidesName reports whether any of deps is named target.
func ProvidesName(deps []Dependency, target string) bool {
	for _, d := range deps {
		if d.Name == target {
			return true
		}
	}
	return false
}
