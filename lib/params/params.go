package params

import (
	"reflect"

	"github.com/artie-labs/datautils/lib/construct"
)

// Params maps a constructor's parameter names to the values it was called with.
type Params map[string]any

type Recorder interface {
	SetInitParams(params Params)
}

// InitParams can be embedded in a struct to make a pointer to it a [Recorder].
type InitParams struct {
	initParams Params
}

func (i *InitParams) SetInitParams(params Params) {
	i.initParams = params
}

func (i *InitParams) Params() Params {
	return i.initParams
}

// Record pairs the signature's names with the positional values in order, then applies the named values on top.
// Positional values beyond the signature's names are not recorded.
func Record(sig construct.Signature, args construct.Args) Params {
	result := make(Params, len(sig.Names))
	for i, value := range args.Positional {
		if i >= len(sig.Names) {
			break
		}
		result[sig.Names[i]] = value
	}

	for name, value := range args.Named {
		result[name] = value
	}
	return result
}

// SaveParams wraps ctor so that every instance it builds carries the arguments it was built with.
// A nil instance returned without an error is passed through unrecorded.
func SaveParams[T Recorder](sig construct.Signature, ctor construct.Constructor[T]) construct.Constructor[T] {
	return func(args construct.Args) (T, error) {
		recorded := Record(sig, args)
		instance, err := ctor(args)
		if err != nil {
			return instance, err
		}

		if isNil(instance) {
			return instance, nil
		}

		instance.SetInitParams(recorded)
		return instance, nil
	}
}

func isNil(value any) bool {
	if value == nil {
		return true
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Interface, reflect.Func, reflect.Slice, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}
