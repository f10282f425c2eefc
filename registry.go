package typederr

import (
	"os"
	"strings"
)

// Definition declares one error category and the schema of its context.
type Definition struct {
	Name   string
	Schema Schema
}

// Define is shorthand for a Definition literal.
func Define(name string, schema Schema) Definition {
	return Definition{Name: name, Schema: schema}
}

// Predicate reports whether err is an instance of a fixed category.
type Predicate func(err error) bool

// registry is the closed category set and resolved options shared by every
// instance of one Factory. It is read-only after New returns.
type registry struct {
	order   []string
	schemas map[string]Schema
	opts    RenderOptions
	wd      string // working directory for relative locations
	preds   map[string]Predicate

	tagPaint Colorizer
	locPaint Colorizer
}

func (r *registry) declared(name string) bool {
	_, ok := r.schemas[name]
	return ok
}

// detect returns the first category whose tag appears in template.
func (r *registry) detect(template string) (string, bool) {
	if !strings.Contains(template, r.opts.TypeTagPrefix) {
		return "", false
	}
	for _, name := range r.order {
		if strings.Contains(template, r.opts.TypeTagPrefix+name) {
			return name, true
		}
	}
	return "", false
}

// Factory builds typed error instances for one registry.
type Factory struct {
	reg *registry
}

// New builds a Factory from ordered definitions. The catch-all category
// CategoryUnknown is appended unless defs already declare it, in which case
// the caller's schema is kept.
//
// Declaration order matters: it is the order Categories reports and the
// order templates are scanned in for an already-present category tag.
func New(defs []Definition, opts ...Option) (*Factory, error) {
	ro := DefaultRenderOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&ro)
		}
	}
	if err := ro.validate(); err != nil {
		return nil, err
	}

	r := &registry{
		order:   make([]string, 0, len(defs)+1),
		schemas: make(map[string]Schema, len(defs)+1),
		opts:    ro,
	}
	r.tagPaint, r.locPaint = colorizers(ro.Color)
	for _, d := range defs {
		if d.Name == "" {
			return nil, &ConfigurationError{Field: "definitions", Reason: "category name must not be empty"}
		}
		if r.declared(d.Name) {
			return nil, &ConfigurationError{Field: d.Name, Reason: "category declared twice"}
		}
		for key, kind := range d.Schema {
			if key == "" {
				return nil, &ConfigurationError{Field: d.Name, Reason: "schema key must not be empty"}
			}
			if !kind.Valid() {
				return nil, &ConfigurationError{Field: d.Name + "." + key, Reason: "schema kind must be string, number or boolean"}
			}
		}
		r.order = append(r.order, d.Name)
		r.schemas[d.Name] = d.Schema.clone()
	}
	if !r.declared(CategoryUnknown) {
		r.order = append(r.order, CategoryUnknown)
		r.schemas[CategoryUnknown] = Schema{}
	}

	if ro.LocationAsRelativePath {
		if wd, err := os.Getwd(); err == nil {
			r.wd = wd
		}
	}

	f := &Factory{reg: r}
	r.preds = make(map[string]Predicate, len(r.order))
	for _, name := range r.order {
		r.preds[name] = func(err error) bool { return f.Is(err, name) }
	}
	return f, nil
}

// MustNew is like New but panics on a configuration error. It is meant for
// package-level factory variables.
func MustNew(defs []Definition, opts ...Option) *Factory {
	f, err := New(defs, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Categories returns the declared categories in declaration order, the
// implicit catch-all included.
func (f *Factory) Categories() []string {
	out := make([]string, len(f.reg.order))
	copy(out, f.reg.order)
	return out
}

// Schema returns a copy of a category's schema.
func (f *Factory) Schema(category string) (Schema, bool) {
	s, ok := f.reg.schemas[category]
	if !ok {
		return nil, false
	}
	return s.clone(), true
}

// Options returns the resolved rendering options.
func (f *Factory) Options() RenderOptions { return f.reg.opts }

// Predicate returns the precomputed predicate for category. It reports
// false for categories the registry does not declare.
func (f *Factory) Predicate(category string) Predicate {
	if p, ok := f.reg.preds[category]; ok {
		return p
	}
	return func(error) bool { return false }
}
