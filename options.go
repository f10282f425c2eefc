// options.go — rendering options for a registry.
//
// Options are resolved once, in New, from named defaults plus functional
// options. There is no setter afterwards: every instance built by a Factory
// sees the same RenderOptions for the Factory's lifetime.
//
// Untyped configuration (a decoded JSON/YAML document, flags collected into a
// map) goes through OptionsFromMap or OptionsFromYAML. Unknown keys and values
// of the wrong type are configuration errors, not silently ignored.
package typederr

import (
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// RenderOptions controls how instance messages are composed.
type RenderOptions struct {
	// Name is reported as "name" in JSON output.
	Name string
	// LocationInMessage appends " (file:line)" of the call site.
	LocationInMessage bool
	// LocationAsRelativePath renders that file relative to the working
	// directory captured when the registry was built.
	LocationAsRelativePath bool
	// TypeInMessage appends " " + TypeTagPrefix + category once tagged.
	TypeInMessage bool
	// TypeTagPrefix marks category tags in messages; also used when scanning
	// templates for an already-present tag.
	TypeTagPrefix string
	// WrappedErrorInMessage appends the wrapped cause's message.
	WrappedErrorInMessage bool
	// Color styles the tag and location fragments for terminals.
	Color bool
}

// DefaultRenderOptions returns the documented defaults.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{
		Name:                  "TypedError",
		TypeTagPrefix:         "--",
		WrappedErrorInMessage: true,
	}
}

func (o RenderOptions) validate() error {
	if o.Name == "" {
		return &ConfigurationError{Field: "name", Reason: "must not be empty"}
	}
	if o.TypeTagPrefix == "" {
		return &ConfigurationError{Field: "typeTagPrefix", Reason: "must not be empty"}
	}
	return nil
}

// Option adjusts RenderOptions during New.
type Option func(*RenderOptions)

// WithName sets the name reported in JSON output.
func WithName(name string) Option {
	return func(o *RenderOptions) { o.Name = name }
}

// WithLocationInMessage toggles the call-site fragment.
func WithLocationInMessage(on bool) Option {
	return func(o *RenderOptions) { o.LocationInMessage = on }
}

// WithRelativeLocation toggles working-directory-relative file paths.
func WithRelativeLocation(on bool) Option {
	return func(o *RenderOptions) { o.LocationAsRelativePath = on }
}

// WithTypeInMessage toggles the category tag fragment.
func WithTypeInMessage(on bool) Option {
	return func(o *RenderOptions) { o.TypeInMessage = on }
}

// WithTypeTagPrefix sets the category tag prefix ("--" by default).
func WithTypeTagPrefix(prefix string) Option {
	return func(o *RenderOptions) { o.TypeTagPrefix = prefix }
}

// WithWrappedErrorInMessage toggles the wrapped cause fragment.
func WithWrappedErrorInMessage(on bool) Option {
	return func(o *RenderOptions) { o.WrappedErrorInMessage = on }
}

// WithColor toggles terminal styling of tag and location fragments.
func WithColor(on bool) Option {
	return func(o *RenderOptions) { o.Color = on }
}

// WithRenderOptions replaces every option at once.
func WithRenderOptions(ro RenderOptions) Option {
	return func(o *RenderOptions) { *o = ro }
}

// partialOptions mirrors RenderOptions with pointers so absent keys keep
// their defaults.
type partialOptions struct {
	Name                   *string `mapstructure:"name"`
	LocationInMessage      *bool   `mapstructure:"locationInMessage"`
	LocationAsRelativePath *bool   `mapstructure:"locationAsRelativePath"`
	TypeInMessage          *bool   `mapstructure:"typeInMessage"`
	TypeTagPrefix          *string `mapstructure:"typeTagPrefix"`
	WrappedErrorInMessage  *bool   `mapstructure:"wrappedErrorInMessage"`
	Color                  *bool   `mapstructure:"color"`
}

// OptionsFromMap decodes a partial options document into Options. Keys use
// the lowerCamel names of the RenderOptions fields.
func OptionsFromMap(m map[string]any) ([]Option, error) {
	var p partialOptions
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		ErrorUnused: true,
		Result:      &p,
	})
	if err != nil {
		return nil, &ConfigurationError{Field: "options", Reason: "decoder setup failed", Err: err}
	}
	if err := dec.Decode(m); err != nil {
		return nil, &ConfigurationError{Field: "options", Reason: "cannot decode", Err: err}
	}
	return p.options(), nil
}

// OptionsFromYAML decodes a YAML mapping into Options.
func OptionsFromYAML(b []byte) ([]Option, error) {
	var m map[string]any
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, &ConfigurationError{Field: "options", Reason: "invalid yaml", Err: err}
	}
	return OptionsFromMap(m)
}

func (p partialOptions) options() []Option {
	var opts []Option
	if p.Name != nil {
		opts = append(opts, WithName(*p.Name))
	}
	if p.LocationInMessage != nil {
		opts = append(opts, WithLocationInMessage(*p.LocationInMessage))
	}
	if p.LocationAsRelativePath != nil {
		opts = append(opts, WithRelativeLocation(*p.LocationAsRelativePath))
	}
	if p.TypeInMessage != nil {
		opts = append(opts, WithTypeInMessage(*p.TypeInMessage))
	}
	if p.TypeTagPrefix != nil {
		opts = append(opts, WithTypeTagPrefix(*p.TypeTagPrefix))
	}
	if p.WrappedErrorInMessage != nil {
		opts = append(opts, WithWrappedErrorInMessage(*p.WrappedErrorInMessage))
	}
	if p.Color != nil {
		opts = append(opts, WithColor(*p.Color))
	}
	return opts
}
