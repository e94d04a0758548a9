package cli

// Default values for CLI flags and output.
const (
	// MaxDescriptionLength is the maximum length of a package description in tables.
	MaxDescriptionLength = 50
	// TabWidth is the padding between table columns.
	TabWidth = 2
	// setCommandArgs is the number of arguments of config set.
	setCommandArgs = 2
)
