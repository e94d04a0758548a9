// Package filter evaluates user supplied Tengo expressions against package
// records. An expression such as
//
//	repository == "extra" && import("text").has_prefix(name, "rust")
//
// is compiled once and then run for every record.
package filter

import (
	"context"
	"fmt"
	"sync"

	"github.com/cperrin88/archdb/pkg/desc"
	"github.com/cperrin88/archdb/pkg/errutils"
	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

const resultVar = "matched"

// Record is the view of a package exposed to expressions. Every field is
// available as a script variable of the same name in lower case.
type Record struct {
	Name        string
	Base        string
	Version     string
	Description string
	URL         string
	Repository  string
	Provides    []string
	Depends     []string
}

// FromQuerier builds a Record from q. Missing fields become empty values.
func FromQuerier(q desc.Querier, repository string) Record {
	r := Record{Repository: repository}
	r.Name, _ = q.Name()
	r.Base, _ = q.Base()
	r.Version, _ = q.Version()
	r.Description, _ = q.Description()
	r.URL, _ = q.URL()
	for _, d := range q.Provides() {
		r.Provides = append(r.Provides, d.Name)
	}
	for _, d := range q.Depends() {
		r.Depends = append(r.Depends, d.Name)
	}
	return r
}

func (r Record) vars() map[string]interface{} {
	return map[string]interface{}{
		"name":        r.Name,
		"base":        r.Base,
		"version":     r.Version,
		"description": r.Description,
		"url":         r.URL,
		"repository":  r.Repository,
		"provides":    toArray(r.Provides),
		"depends":     toArray(r.Depends),
	}
}

func toArray(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

// Filter is a compiled expression. It is safe for concurrent use.
type Filter struct {
	expr     string
	compiled *tengo.Compiled
	mutex    sync.Mutex
}

// Compile parses expr. The Tengo modules text, fmt and enum can be
// imported from the expression.
func Compile(expr string) (*Filter, error) {
	script := tengo.NewScript([]byte(resultVar + " := (" + expr + ")"))
	script.SetImports(stdlib.GetModuleMap("text", "fmt", "enum"))

	for name, value := range (Record{}).vars() {
		if err := script.Add(name, value); err != nil {
			return nil, fmt.Errorf("failed to add %s to filter: %w", name, err)
		}
	}

	compiled, err := script.Compile()
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", errutils.ErrInvalidFilter, expr, err)
	}
	return &Filter{expr: expr, compiled: compiled}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.expr
}

// Match runs the expression for r and reports whether the result is truthy.
func (f *Filter) Match(ctx context.Context, r Record) (bool, error) {
	f.mutex.Lock()
	defer f.mutex.Unlock()

	for name, value := range r.vars() {
		if err := f.compiled.Set(name, value); err != nil {
			return false, fmt.Errorf("failed to set %s: %w", name, err)
		}
	}

	if err := f.compiled.RunContext(ctx); err != nil {
		return false, fmt.Errorf("%w: %s: %w", errutils.ErrFilterEval, r.Name, err)
	}
	return f.compiled.Get(resultVar).Bool(), nil
}

// MatchQuerier is Match for a querier stored in repository.
func (f *Filter) MatchQuerier(ctx context.Context, q desc.Querier, repository string) (bool, error) {
	return f.Match(ctx, FromQuerier(q, repository))
}
