package desc

import "strings"

// Section names found in sync and local databases.
const (
	FieldFilename    = "FILENAME"
	FieldName        = "NAME"
	FieldBase        = "BASE"
	FieldVersion     = "VERSION"
	FieldDescription = "DESC"
	FieldGroups      = "GROUPS"
	FieldCSize       = "CSIZE"
	FieldISize       = "ISIZE"
	FieldSHA256Sum   = "SHA256SUM"
	FieldURL         = "URL"
	FieldLicense     = "LICENSE"
	FieldArch        = "ARCH"
	FieldBuildDate   = "BUILDDATE"
	FieldPackager    = "PACKAGER"
	FieldReplaces    = "REPLACES"
	FieldConflicts   = "CONFLICTS"
	FieldProvides    = "PROVIDES"
	FieldDepends     = "DEPENDS"
	FieldOptDepends  = "OPTDEPENDS"
	FieldMakeDepends = "MAKEDEPENDS"
	FieldCheckDeps   = "CHECKDEPENDS"
)

// headerField returns the section name when line is a %FIELD% header.
func headerField(line string) (string, bool) {
	if len(line) < 3 || line[0] != '%' || line[len(line)-1] != '%' {
		return "", false
	}
	name := line[1 : len(line)-1]
	if strings.ContainsAny(name, "% \t") {
		return "", false
	}
	return name, true
}

// trimLine drops a trailing carriage return left over from CRLF input.
func trimLine(line string) string {
	return strings.TrimSuffix(line, "\r")
}

func first(values []string) (string, bool) {
	if len(values) == 0 || values[0] == "" {
		return "", false
	}
	return values[0], true
}

func dependencies(values []string) []Dependency {
	if len(values) == 0 {
		return nil
	}
	deps := make([]Dependency, 0, len(values))
	for _, v := range values {
		deps = append(deps, ParseDependency(v))
	}
	return deps
}
