package desc

import "strings"

// MemoQuerier looks sections up lazily and caches what it finds.
// Lookups mutate the cache, so a MemoQuerier must not be shared between
// goroutines without external synchronization.
type MemoQuerier struct {
	text  string
	cache map[string][]string
}

// NewMemo wraps text without parsing it.
func NewMemo(text string) *MemoQuerier {
	return &MemoQuerier{text: text}
}

// ParseMemo has the shape of a ParseFunc. It never fails.
func ParseMemo(text string) (*MemoQuerier, error) {
	return NewMemo(text), nil
}

func (q *MemoQuerier) lookup(field string) []string {
	if values, ok := q.cache[field]; ok {
		return values
	}
	if q.cache == nil {
		q.cache = make(map[string][]string)
	}

	values := scanSection(q.text, field)
	q.cache[field] = values
	return values
}

// scanSection returns the values of the first section named field.
func scanSection(text, field string) []string {
	header := "%" + field + "%"
	var values []string
	inSection := false

	for len(text) > 0 {
		line := text
		if i := strings.IndexByte(text, '\n'); i >= 0 {
			line, text = text[:i], text[i+1:]
		} else {
			text = ""
		}
		line = trimLine(line)

		if !inSection {
			inSection = line == header
			continue
		}
		if line == "" {
			break
		}
		if _, ok := headerField(line); ok {
			break
		}
		values = append(values, line)
	}

	return values
}

// Name returns the NAME section.
func (q *MemoQuerier) Name() (string, bool) { return first(q.lookup(FieldName)) }

// Version returns the VERSION section.
func (q *MemoQuerier) Version() (string, bool) { return first(q.lookup(FieldVersion)) }

func (q *MemoQuerier) Base() (string, bool) { return first(q.lookup(FieldBase)) }

func (q *MemoQuerier) Description() (string, bool) { return first(q.lookup(FieldDescription)) }

func (q *MemoQuerier) URL() (string, bool) { return first(q.lookup(FieldURL)) }

func (q *MemoQuerier) Provides() []Dependency { return dependencies(q.lookup(FieldProvides)) }

func (q *MemoQuerier) Depends() []Dependency { return dependencies(q.lookup(FieldDepends)) }

func (q *MemoQuerier) Field(field string) []string { return q.lookup(field) }

// Text returns the raw record.
func (q *MemoQuerier) Text() string {
	return q.text
}
