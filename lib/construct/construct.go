package construct

import (
	"errors"
	"fmt"
)

var ErrArgumentMismatch = errors.New("argument mismatch")

// Args holds the positional and named arguments of a constructor call.
type Args struct {
	Positional []any
	Named      map[string]any
}

// Positional returns [Args] made only of positional values.
func Positional(values ...any) Args {
	return Args{Positional: values}
}

// Named returns [Args] made only of named values.
func Named(values map[string]any) Args {
	return Args{Named: values}
}

// With returns a copy of the args with an additional named value.
func (a Args) With(name string, value any) Args {
	out := a.clone()
	if out.Named == nil {
		out.Named = make(map[string]any)
	}
	out.Named[name] = value
	return out
}

// Merge appends later's positional values to a's and overlays later's named values on top of a's.
func (a Args) Merge(later Args) Args {
	out := a.clone()
	out.Positional = append(out.Positional, later.Positional...)
	if len(later.Named) > 0 && out.Named == nil {
		out.Named = make(map[string]any, len(later.Named))
	}
	for name, value := range later.Named {
		out.Named[name] = value
	}
	return out
}

func (a Args) clone() Args {
	var out Args
	if len(a.Positional) > 0 {
		out.Positional = make([]any, len(a.Positional))
		copy(out.Positional, a.Positional)
	}
	if len(a.Named) > 0 {
		out.Named = make(map[string]any, len(a.Named))
		for name, value := range a.Named {
			out.Named[name] = value
		}
	}
	return out
}

// Constructor builds a T out of a set of arguments.
type Constructor[T any] func(args Args) (T, error)

// Signature is the ordered list of formal parameters a constructor accepts.
type Signature struct {
	Names    []string
	Defaults map[string]any
}

func NewSignature(names ...string) Signature {
	return Signature{Names: names}
}

// WithDefault returns a copy of the signature where name is optional.
func (s Signature) WithDefault(name string, value any) Signature {
	defaults := make(map[string]any, len(s.Defaults)+1)
	for k, v := range s.Defaults {
		defaults[k] = v
	}
	defaults[name] = value
	return Signature{Names: s.Names, Defaults: defaults}
}

func (s Signature) has(name string) bool {
	for _, n := range s.Names {
		if n == name {
			return true
		}
	}
	return false
}

// Bind assigns args to the signature's parameters, positional values first and in order.
func (s Signature) Bind(args Args) (map[string]any, error) {
	if len(args.Positional) > len(s.Names) {
		return nil, fmt.Errorf("%w: takes %d positional arguments but %d were given", ErrArgumentMismatch, len(s.Names), len(args.Positional))
	}

	bound := make(map[string]any, len(s.Names))
	for i, value := range args.Positional {
		bound[s.Names[i]] = value
	}

	for name, value := range args.Named {
		if !s.has(name) {
			return nil, fmt.Errorf("%w: unexpected argument %q", ErrArgumentMismatch, name)
		}
		if _, ok := bound[name]; ok {
			return nil, fmt.Errorf("%w: got multiple values for argument %q", ErrArgumentMismatch, name)
		}
		bound[name] = value
	}

	for _, name := range s.Names {
		if _, ok := bound[name]; ok {
			continue
		}
		value, ok := s.Defaults[name]
		if !ok {
			return nil, fmt.Errorf("%w: missing required argument %q", ErrArgumentMismatch, name)
		}
		bound[name] = value
	}

	return bound, nil
}

// Value returns the bound argument called name as a V.
func Value[V any](bound map[string]any, name string) (V, error) {
	raw, ok := bound[name]
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: argument %q is not bound", ErrArgumentMismatch, name)
	}

	value, ok := raw.(V)
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: argument %q has type %T, expected %T", ErrArgumentMismatch, name, raw, zero)
	}
	return value, nil
}
