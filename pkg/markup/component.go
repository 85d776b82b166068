package markup

import (
	"fmt"
	"reflect"

	"github.com/vango-dev/viewstream/pkg/renderctx"
	"github.com/vango-dev/viewstream/pkg/vtree"
)

// ComponentInstantiator resolves a class-component constructor into a
// live vtree.Component instance, injecting its dependencies. The
// container package supplies the dig-backed implementation; tests can
// supply a trivial one that just calls reflect.New.
type ComponentInstantiator interface {
	Instantiate(constructor any) (vtree.Component, error)
}

// ClassComponentRef marks a constructor value as a class component.
// Class wraps a constructor in one and returns a deferred node; that
// node is what goes wherever a child node is expected, and it resolves
// the constructor through the active ComponentInstantiator each time
// it is invoked. A bare ClassComponentRef passed as a child is not
// resolved.
type ClassComponentRef struct {
	Constructor any
	Name        string
}

// Class wraps constructor as a class-component reference with an
// explicit display name for error component-stacks.
func Class(name string, constructor any) vtree.Node {
	ref := ClassComponentRef{Constructor: constructor, Name: name}
	return vtree.DeferredNamed(name, func(ctx *renderctx.Context) (vtree.Node, error) {
		inst := instantiatorFrom(ctx)
		if inst == nil {
			// newConfig always installs a default instantiator; this only
			// fires for a context built outside of Render/RenderStream.
			inst = defaultInstantiator{}
		}
		comp, err := inst.Instantiate(ref.Constructor)
		if err != nil {
			return vtree.Nil, fmt.Errorf("class component %q: %w", ref.Name, err)
		}
		return comp.Render(ctx)
	})
}

// FuncComponentRef marks a plain function component, kept only for
// symmetry with ClassComponentRef; functional components are already
// ordinary vtree.DeferredFunc values and need no special handling.
type FuncComponentRef struct {
	Fn   vtree.DeferredFunc
	Name string
}

// Func wraps fn with an explicit display name.
func Func(name string, fn vtree.DeferredFunc) vtree.Node {
	return vtree.DeferredNamed(name, fn)
}

var instantiatorKey = renderctx.NewKey[ComponentInstantiator](
	renderctx.WithDisplayName[ComponentInstantiator]("component-instantiator"),
)

// InstallComponentInstantiator stores inst on root so every forked
// descendant context can resolve class components through it.
func InstallComponentInstantiator(root *renderctx.Context, inst ComponentInstantiator) {
	renderctx.Set(root, instantiatorKey, inst)
}

func instantiatorFrom(ctx *renderctx.Context) ComponentInstantiator {
	inst, _ := renderctx.Lookup(ctx, instantiatorKey)
	return inst
}

// defaultInstantiator is the no-dependency ComponentInstantiator
// installed when a render doesn't configure one via
// WithComponentInstantiator. It calls a zero-argument constructor
// directly, the same way a function component is already called with
// no container involved; a constructor that declares dependencies has
// nowhere to get them from and fails.
type defaultInstantiator struct{}

func (defaultInstantiator) Instantiate(constructor any) (vtree.Component, error) {
	rv := reflect.ValueOf(constructor)
	if !rv.IsValid() || rv.Kind() != reflect.Func {
		return nil, fmt.Errorf("component: constructor must be a function")
	}
	rt := rv.Type()
	if rt.NumIn() != 0 {
		return nil, fmt.Errorf("component: no ComponentInstantiator registered to supply this constructor's %d dependency parameter(s); configure one with WithComponentInstantiator", rt.NumIn())
	}
	if rt.NumOut() == 0 {
		return nil, fmt.Errorf("component: constructor must return a vtree.Component")
	}
	out := rv.Call(nil)
	comp, ok := out[0].Interface().(vtree.Component)
	if !ok {
		return nil, fmt.Errorf("component: constructor %s did not produce a vtree.Component", rt)
	}
	return comp, nil
}
