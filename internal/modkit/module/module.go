// Package module holds the module contract and the typed port lookup.
// It sits apart from modkit so a module can export its ports type without an import cycle.
package module

import (
	"fmt"
	"reflect"

	phttp "layoffs/internal/platform/net/http"
)

// Module is an api feature: a name, a route prefix, its routes and optional ports
type Module interface {
	Name() string
	Prefix() string
	MountRoutes(r phttp.Router)
	Ports() any
}

// PortsOf pulls T out of a module's Ports() bundle: either the bundle itself
// or the first exported struct field implementing T
func PortsOf[T any](m Module) (t T, ok bool) {
	if m == nil {
		return t, false
	}
	p := m.Ports()
	if p == nil {
		return t, false
	}
	if v, ok := p.(T); ok {
		return v, true
	}
	rv := reflect.Indirect(reflect.ValueOf(p))
	if rv.Kind() != reflect.Struct {
		return t, false
	}
	for i := range rv.NumField() {
		if f := rv.Field(i); f.CanInterface() {
			if v, ok := f.Interface().(T); ok {
				return v, true
			}
		}
	}
	return t, false
}

// MustPortsOf is PortsOf for bootstrap code where a missing port is a wiring bug
func MustPortsOf[T any](m Module) T {
	if v, ok := PortsOf[T](m); ok {
		return v
	}
	var zero T
	panic(fmt.Sprintf("module: %T port not found on module %s", &zero, m.Name()))
}
