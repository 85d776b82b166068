// Package container adapts go.uber.org/dig into the
// markup.ComponentInstantiator interface, letting class components
// declare their dependencies as ordinary constructor parameters
// instead of reaching into a global registry.
package container

import (
	"fmt"
	"reflect"

	"go.uber.org/dig"

	"github.com/vango-dev/viewstream/pkg/vtree"
)

// Instantiator builds a fresh dig.Container for every Instantiate
// call, seeded with the providers given to NewInstantiator. A fresh
// container per call avoids dig's "already provided" errors when the
// same class component constructor is instantiated more than once
// across a render (or across renders sharing one Instantiator).
type Instantiator struct {
	providers []any
}

// NewInstantiator returns an instantiator that makes each of
// providers (ordinary dig constructor functions) available to every
// class component it resolves.
func NewInstantiator(providers ...any) *Instantiator {
	return &Instantiator{providers: providers}
}

// Instantiate satisfies markup.ComponentInstantiator: it builds a
// container, provides constructor alongside the standing providers,
// and invokes a capture function built by reflection to pull out the
// resulting vtree.Component.
func (in *Instantiator) Instantiate(constructor any) (vtree.Component, error) {
	ctype := reflect.TypeOf(constructor)
	if ctype == nil || ctype.Kind() != reflect.Func || ctype.NumOut() == 0 {
		return nil, fmt.Errorf("container: constructor must be a function returning a component")
	}

	c := dig.New()
	for _, p := range in.providers {
		if err := c.Provide(p); err != nil {
			return nil, fmt.Errorf("container: provide dependency: %w", err)
		}
	}
	if err := c.Provide(constructor); err != nil {
		return nil, fmt.Errorf("container: provide constructor: %w", err)
	}

	outType := ctype.Out(0)
	var result vtree.Component
	capture := reflect.MakeFunc(reflect.FuncOf([]reflect.Type{outType}, nil, false),
		func(args []reflect.Value) []reflect.Value {
			if comp, ok := args[0].Interface().(vtree.Component); ok {
				result = comp
			}
			return nil
		})

	if err := c.Invoke(capture.Interface()); err != nil {
		return nil, fmt.Errorf("container: invoke constructor: %w", err)
	}
	if result == nil {
		return nil, fmt.Errorf("container: constructor %s did not produce a vtree.Component", ctype)
	}
	return result, nil
}
