package typedmap

import (
	"reflect"

	"github.com/invopop/jsonschema"
)

// Identifier is anything that resolves to an Identity. Every Key implements
// it, whatever its value type, so untyped operations such as Has and Delete
// accept keys of any type.
type Identifier interface {
	Identity() Identity
}

// Key is a handle for one entry of a TypedMap whose value has type T.
//
// T is a phantom type: it has no runtime representation and only constrains
// the typed accessors at compile time. Two keys with the same identity but
// different T are indistinguishable at runtime.
//
// Keys are usually declared once at package scope and shared, the way field
// names are declared ahead of use:
//
//	var DatabaseKey = typedmap.For[*sql.DB]("DATABASE")
type Key[T any] struct {
	id Identity
	// Zero-sized; keeps Key[A] and Key[B] from being convertible.
	_ [0]*T
}

// NewKey creates a key with a brand-new identity. Two keys created by NewKey
// never share an identity, even when created from the same label.
func NewKey[T any](label string) Key[T] {
	return Key[T]{id: newIdentity(label)}
}

// For creates a key whose identity is the canonical identity of label in the
// default registry. Keys created by For with the same label are
// interchangeable.
func For[T any](label string) Key[T] {
	return ForIn[T](DefaultRegistry(), label)
}

// ForIn is like For but resolves label in the given registry.
func ForIn[T any](r *Registry, label string) Key[T] {
	return Key[T]{id: r.Resolve(label)}
}

// FromIdentity wraps an existing identity in a key of type T without any
// resolution.
//
// This reinterprets the identity under a new value type and is unchecked:
// nothing verifies that T matches the type other keys with the same identity
// declare. Reading a value stored under a different type through such a key
// reports it as absent (see Get and Require).
func FromIdentity[T any](id Identity) Key[T] {
	return Key[T]{id: id}
}

// Identity returns the identity the key stands for.
func (k Key[T]) Identity() Identity {
	return k.id
}

// Label returns the label the key's identity was minted from.
func (k Key[T]) Label() string {
	return k.id.label
}

func (k Key[T]) String() string {
	return "Key[" + reflect.TypeOf((*T)(nil)).Elem().String() + "](" + k.id.label + ")"
}

// Schema returns a JSON Schema describing the key's value type. It documents
// what the key expects; it is never used to validate stored values.
//
// Types JSON Schema cannot describe, such as funcs and channels, yield an
// empty schema.
func (k Key[T]) Schema() (schema *jsonschema.Schema) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	switch t.Kind() {
	case reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return &jsonschema.Schema{}
	}

	// Unsupported types nested inside structs make the reflector panic
	defer func() {
		if recover() != nil {
			schema = &jsonschema.Schema{}
		}
	}()

	reflector := jsonschema.Reflector{
		DoNotReference:            true, // Inline nested types instead of using $ref
		AllowAdditionalProperties: false,
		Anonymous:                 true,
	}
	return reflector.ReflectFromType(t)
}
