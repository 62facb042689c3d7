package page

import (
	"context"
	"fmt"
	"os"
	"reflect"

	"pagebind/domain/entities"
	"pagebind/domain/interfaces"
)

// Instance is one page definition bound to a live driver for the duration
// of a test scenario. Instances are not safe for concurrent use; the
// caller serializes access, one driver at a time.
type Instance struct {
	def    *Definition
	driver interfaces.Driver
}

// Construct binds the definition to a driver and runs the construction
// lifecycle in fixed order: navigate (only when visit is set), await the
// expected element, verify the expected title. Stages that were never
// declared are skipped; the first failing stage aborts construction and no
// instance is returned.
func (d *Definition) Construct(ctx context.Context, drv interfaces.Driver, visit bool) (*Instance, error) {
	inst := &Instance{def: d, driver: drv}

	if visit {
		if !d.hasNavigation {
			return nil, &UndefinedHookError{Page: d.name, Hook: "navigation"}
		}
		if err := drv.Navigate(ctx, os.ExpandEnv(d.navigation)); err != nil {
			return nil, fmt.Errorf("page %q: navigation failed: %w", d.name, err)
		}
	}

	if exp := d.expectedElement; exp != nil {
		control, err := inst.Element(ctx, exp.accessor)
		if err != nil {
			return nil, fmt.Errorf("page %q: expected element %q: %w", d.name, exp.accessor, err)
		}
		if err := drv.WaitUntilPresent(ctx, control, exp.timeout); err != nil {
			return nil, &PresenceTimeoutError{Page: d.name, Accessor: exp.accessor, Timeout: exp.timeout, Err: err}
		}
	}

	if want := d.expectedTitle; want != nil {
		actual, err := drv.Title(ctx)
		if err != nil {
			return nil, fmt.Errorf("page %q: reading title: %w", d.name, err)
		}
		if !want.Matches(actual) {
			return nil, &TitleMismatchError{Page: d.name, Expected: want.String(), Actual: actual}
		}
	}

	return inst, nil
}

// Driver returns the bound driver handle.
func (i *Instance) Driver() interfaces.Driver { return i.driver }

// Definition returns the page definition this instance was built from.
func (i *Instance) Definition() *Definition { return i.def }

// Element invokes the named accessor, resolving its control against the
// driver. Resolution happens on every call.
func (i *Instance) Element(ctx context.Context, name string) (interfaces.Control, error) {
	fn, ok := i.def.elements[name]
	if !ok {
		return nil, fmt.Errorf("page %q: no element accessor %q", i.def.name, name)
	}
	return fn(ctx, i.driver)
}

// Do invokes the named action binding with the caller's arguments.
func (i *Instance) Do(ctx context.Context, name string, args ...any) (any, error) {
	fn, ok := i.def.actions[name]
	if !ok {
		return nil, fmt.Errorf("page %q: no action %q", i.def.name, name)
	}
	return fn(ctx, i, args...)
}

// Call dispatches one named call: action bindings first, then element
// accessors, then the fallback that forwards the call to the bound driver
// unmodified. Whatever the driver returns or fails with passes through.
func (i *Instance) Call(ctx context.Context, name string, args ...any) (any, error) {
	if _, ok := i.def.actions[name]; ok {
		return i.Do(ctx, name, args...)
	}
	if _, ok := i.def.elements[name]; ok {
		return i.Element(ctx, name)
	}
	return i.forward(ctx, name, args...)
}

// Fill applies a set of field values in one pass through the fit adapter.
// Map keys are accessor names; a nil value leaves that field unchanged.
func (i *Instance) Fill(ctx context.Context, values map[string]*entities.TextMatch) error {
	for name, value := range values {
		if value == nil {
			continue
		}
		control, err := i.Element(ctx, name)
		if err != nil {
			return err
		}
		if err := Fit(ctx, i.driver, control, value); err != nil {
			return fmt.Errorf("page %q: filling %q: %w", i.def.name, name, err)
		}
	}
	return nil
}

var (
	ctxType = reflect.TypeOf((*context.Context)(nil)).Elem()
	errType = reflect.TypeOf((*error)(nil)).Elem()
)

// forward - forwards an unmatched call to the concrete driver by method
// name, passing the caller's positional arguments through unchanged. The
// driver's context parameter, when present, is supplied from ctx.
func (i *Instance) forward(ctx context.Context, name string, args ...any) (any, error) {
	method := reflect.ValueOf(i.driver).MethodByName(name)
	if !method.IsValid() {
		return nil, fmt.Errorf("page %q: driver has no method %q", i.def.name, name)
	}

	mt := method.Type()
	in := make([]reflect.Value, 0, len(args)+1)
	if mt.NumIn() > 0 && mt.In(0) == ctxType {
		in = append(in, reflect.ValueOf(ctx))
	}
	for _, arg := range args {
		if arg == nil {
			pos := len(in)
			var pt reflect.Type
			switch {
			case mt.IsVariadic() && pos >= mt.NumIn()-1:
				pt = mt.In(mt.NumIn() - 1).Elem()
			case pos < mt.NumIn():
				pt = mt.In(pos)
			default:
				return nil, fmt.Errorf("page %q: too many arguments for driver method %q", i.def.name, name)
			}
			in = append(in, reflect.Zero(pt))
			continue
		}
		in = append(in, reflect.ValueOf(arg))
	}
	if !mt.IsVariadic() && len(in) != mt.NumIn() {
		return nil, fmt.Errorf("page %q: driver method %q takes %d arguments, got %d", i.def.name, name, mt.NumIn(), len(in))
	}

	out := method.Call(in)

	var callErr error
	var results []any
	for _, v := range out {
		if v.Type().Implements(errType) {
			if !v.IsNil() {
				callErr = v.Interface().(error)
			}
			continue
		}
		results = append(results, v.Interface())
	}

	switch len(results) {
	case 0:
		return nil, callErr
	case 1:
		return results[0], callErr
	default:
		return results, callErr
	}
}
