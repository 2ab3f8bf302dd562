package construct

// Partial is a constructor with some of its arguments fixed ahead of time.
type Partial[T any] struct {
	ctor  Constructor[T]
	fixed Args
}

// PartialClass fixes args for ctor. Nothing is validated until [Partial.Build] runs.
func PartialClass[T any](ctor Constructor[T], fixed Args) Partial[T] {
	return Partial[T]{ctor: ctor, fixed: fixed.clone()}
}

// Build calls the wrapped constructor with the fixed args merged with args.
// Named values in args replace fixed values with the same name.
func (p Partial[T]) Build(args Args) (T, error) {
	return p.ctor(p.fixed.Merge(args))
}

func (p Partial[T]) Constructor() Constructor[T] {
	return p.Build
}

func (p Partial[T]) Fixed() Args {
	return p.fixed.clone()
}
