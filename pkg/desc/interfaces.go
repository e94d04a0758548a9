// Package desc reads pacman desc records.
//
// A record is a sequence of sections. Each section starts with a %FIELD%
// header line followed by one value per line and ends with a blank line.
// Queriers answer field lookups on a single record; the databases in this
// module only ever talk to records through the Querier interface.
package desc

//go:generate mockgen -destination=./mocks/querier.go -package=mocks . Querier

// Querier answers questions about one desc record.
type Querier interface {
	// Name returns the package name, if the record has one.
	Name() (string, bool)
	// Version returns the raw version string, if the record has one.
	Version() (string, bool)
	Base() (string, bool)
	Description() (string, bool)
	URL() (string, bool)
	// Provides lists the virtual dependencies this package satisfies.
	Provides() []Dependency
	Depends() []Dependency
	// Field returns all values of an arbitrary section, or nil when the
	// section is absent.
	Field(field string) []string
}

// ParseFunc turns the raw text of a record into a querier.
type ParseFunc[Q Querier] func(text string) (Q, error)
