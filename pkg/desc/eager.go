package desc

import "strings"

// EagerQuerier parses every section up front. It is immutable after
// parsing and safe for concurrent reads.
type EagerQuerier struct {
	fields map[string][]string
}

// ParseEager parses a record eagerly. Values share memory with text.
func ParseEager(text string) (*EagerQuerier, error) {
	q := &EagerQuerier{fields: make(map[string][]string)}

	current := ""
	for i, line := range strings.Split(text, "\n") {
		line = trimLine(line)
		if line == "" {
			current = ""
			continue
		}
		if name, ok := headerField(line); ok {
			if _, dup := q.fields[name]; dup {
				return nil, &SyntaxError{Line: i + 1, Reason: "duplicate section %" + name + "%"}
			}
			q.fields[name] = nil
			current = name
			continue
		}
		if current == "" {
			return nil, &SyntaxError{Line: i + 1, Reason: "value outside of a section"}
		}
		q.fields[current] = append(q.fields[current], line)
	}

	return q, nil
}

// Name returns the NAME section.
func (q *EagerQuerier) Name() (string, bool) { return first(q.fields[FieldName]) }

// Version returns the VERSION section.
func (q *EagerQuerier) Version() (string, bool) { return first(q.fields[FieldVersion]) }

func (q *EagerQuerier) Base() (string, bool) { return first(q.fields[FieldBase]) }

func (q *EagerQuerier) Description() (string, bool) { return first(q.fields[FieldDescription]) }

func (q *EagerQuerier) URL() (string, bool) { return first(q.fields[FieldURL]) }

func (q *EagerQuerier) Provides() []Dependency { return dependencies(q.fields[FieldProvides]) }

func (q *EagerQuerier) Depends() []Dependency { return dependencies(q.fields[FieldDepends]) }

func (q *EagerQuerier) Field(field string) []string { return q.fields[field] }

// Sections returns the names of all sections present in the record.
func (q *EagerQuerier) Sections() []string {
	names := make([]string, 0, len(q.fields))
	for name := range q.fields {
		names = append(names, name)
	}
	return names
}
