package params

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/artie-labs/datautils/lib/construct"
)

type dataset struct {
	InitParams
	a, b, c int
}

var datasetSignature = construct.NewSignature("a", "b", "c").WithDefault("c", 0)

func newDataset(args construct.Args) (*dataset, error) {
	bound, err := datasetSignature.Bind(args)
	if err != nil {
		return nil, err
	}

	values := make([]int, len(datasetSignature.Names))
	for i, name := range datasetSignature.Names {
		if values[i], err = construct.Value[int](bound, name); err != nil {
			return nil, err
		}
	}
	return &dataset{a: values[0], b: values[1], c: values[2]}, nil
}

func TestRecord(t *testing.T) {
	sig := construct.NewSignature("a", "b", "c")
	{
		// Positional then named
		assert.Equal(t, Params{"a": 1, "b": 2, "c": 3}, Record(sig, construct.Positional(1, 2).With("c", 3)))
	}
	{
		// Nothing supplied
		assert.Empty(t, Record(sig, construct.Args{}))
	}
	{
		// Defaults that weren't supplied aren't recorded
		assert.Equal(t, Params{"a": 1}, Record(sig, construct.Positional(1)))
	}
	{
		// Named values win over positional ones with the same name
		assert.Equal(t, Params{"a": 10, "b": 2}, Record(sig, construct.Positional(1, 2).With("a", 10)))
	}
	{
		// Extra positional values are dropped
		assert.Equal(t, Params{"a": 1, "b": 2, "c": 3}, Record(sig, construct.Positional(1, 2, 3, 4)))
	}
}

func TestSaveParams(t *testing.T) {
	newRecorded := SaveParams(datasetSignature, newDataset)
	{
		instance, err := newRecorded(construct.Positional(1, 2).With("c", 3))
		assert.NoError(t, err)
		assert.Equal(t, Params{"a": 1, "b": 2, "c": 3}, instance.Params())
		assert.Equal(t, 3, instance.c)
	}
	{
		// Each construction gets its own record
		first, err := newRecorded(construct.Positional(1, 2))
		assert.NoError(t, err)
		second, err := newRecorded(construct.Positional(4, 5, 6))
		assert.NoError(t, err)
		assert.Equal(t, Params{"a": 1, "b": 2}, first.Params())
		assert.Equal(t, Params{"a": 4, "b": 5, "c": 6}, second.Params())
	}
	{
		// Constructor errors pass through unchanged
		_, err := newRecorded(construct.Positional(1))
		assert.ErrorIs(t, err, construct.ErrArgumentMismatch)
		assert.ErrorContains(t, err, `missing required argument "b"`)
	}
	{
		// Caller mutations after the call don't reach the record
		args := construct.Positional(1, 2).With("c", 3)
		instance, err := newRecorded(args)
		assert.NoError(t, err)
		args.Named["c"] = 100
		assert.Equal(t, Params{"a": 1, "b": 2, "c": 3}, instance.Params())
	}
}

func TestSaveParams_Partial(t *testing.T) {
	partial := construct.PartialClass(SaveParams(datasetSignature, newDataset), construct.Positional(7))
	instance, err := partial.Build(construct.Positional(8).With("c", 9))
	assert.NoError(t, err)
	assert.Equal(t, Params{"a": 7, "b": 8, "c": 9}, instance.Params())
}

func TestSaveParams_PassesArgsThrough(t *testing.T) {
	var received construct.Args
	ctor := SaveParams(construct.NewSignature("x"), func(args construct.Args) (*dataset, error) {
		received = args
		if len(args.Positional) == 0 {
			return nil, fmt.Errorf("no args")
		}
		return &dataset{}, nil
	})

	_, err := ctor(construct.Positional("value").With("y", 1))
	assert.NoError(t, err)
	assert.Equal(t, construct.Positional("value").With("y", 1), received)

	_, err = ctor(construct.Args{})
	assert.ErrorContains(t, err, "no args")
}

func TestSaveParams_NilInstance(t *testing.T) {
	ctor := SaveParams(datasetSignature, func(construct.Args) (*dataset, error) {
		return nil, nil
	})

	instance, err := ctor(construct.Positional(1, 2))
	assert.NoError(t, err)
	assert.Nil(t, instance)
}
