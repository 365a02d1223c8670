package typedmap

import (
	"fmt"
	"reflect"

	"github.com/davidroman0O/typedmap/store"
)

// TypedMap is a map where every key types its value.
//
// Values of unrelated types live side by side, yet every Get and Set through
// a Key[T] is checked against T at compile time. A TypedMap is not safe for
// concurrent use.
//
// The zero value is an empty map ready to use, though New is the usual way to
// create one.
type TypedMap struct {
	data *store.Store[Identity]
}

// New creates an empty map.
func New() *TypedMap {
	return &TypedMap{data: store.NewStore[Identity]()}
}

// From creates a map holding a shallow copy of src's entries. The new map has
// its own structure; values are shared with src. A nil src yields an empty map.
func From(src *TypedMap) *TypedMap {
	if src == nil {
		return New()
	}
	return &TypedMap{data: src.data.Clone()}
}

// Clone is the method form of From.
func (m *TypedMap) Clone() *TypedMap {
	return From(m)
}

func (m *TypedMap) store() *store.Store[Identity] {
	if m.data == nil {
		m.data = store.NewStore[Identity]()
	}
	return m.data
}

// Has reports whether key has an entry.
func (m *TypedMap) Has(key Identifier) bool {
	return m.store().Has(key.Identity())
}

// Delete removes key's entry and reports whether there was one.
func (m *TypedMap) Delete(key Identifier) bool {
	return m.store().Delete(key.Identity())
}

// Clear removes all entries.
func (m *TypedMap) Clear() {
	m.store().Clear()
}

// Len returns the number of entries.
func (m *TypedMap) Len() int {
	return m.store().Len()
}

// lookup reads key's entry. present reports whether the identity has an
// entry at all; matched whether that entry holds a T.
func lookup[T any](m *TypedMap, key Key[T]) (result T, present bool, matched bool) {
	v, ok := m.store().Get(key.id)
	if !ok {
		return result, false, false
	}
	if v == nil {
		// Only a nilable T can have been stored as a nil interface
		return result, true, canBeNil(reflect.TypeOf((*T)(nil)).Elem().Kind())
	}
	result, ok = v.(T)
	return result, true, ok
}

func canBeNil(kind reflect.Kind) bool {
	switch kind {
	case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return true
	default:
		return false
	}
}

// Get returns the value stored under key. The boolean is false when there is
// no entry for key.
//
// The boolean is also false when the identity has an entry that is not a T,
// which can only happen after reinterpreting an identity with FromIdentity.
// In that case Has still reports true; use Require to tell a missing entry
// (ErrNotFound) from one stored under another type (ErrTypeMismatch).
func Get[T any](m *TypedMap, key Key[T]) (T, bool) {
	result, _, matched := lookup(m, key)
	return result, matched
}

// GetOrDefault returns the value stored under key, or defaultValue when Get
// would report false.
func GetOrDefault[T any](m *TypedMap, key Key[T], defaultValue T) T {
	if v, ok := Get(m, key); ok {
		return v
	}
	return defaultValue
}

// Require is like Get but reports a missing entry as ErrNotFound and a value
// of the wrong type as ErrTypeMismatch.
func Require[T any](m *TypedMap, key Key[T]) (T, error) {
	result, present, matched := lookup(m, key)
	if !present {
		return result, fmt.Errorf("%w: %s", ErrNotFound, key)
	}
	if !matched {
		v, _ := m.store().Get(key.id)
		return result, fmt.Errorf("%w: %s holds %T", ErrTypeMismatch, key, v)
	}
	return result, nil
}

// Set stores value under key, replacing any previous entry, and returns m so
// calls can be chained:
//
//	m := typedmap.Set(typedmap.New(), PortKey, 8080)
//	typedmap.Set(m, HostKey, "localhost")
func Set[T any](m *TypedMap, key Key[T], value T) *TypedMap {
	m.store().Put(key.id, value)
	return m
}

// Entry is a key/value pair whose types already agree, built by With.
type Entry interface {
	apply(m *TypedMap)
}

type entry[T any] struct {
	key   Key[T]
	value T
}

func (e entry[T]) apply(m *TypedMap) {
	Set(m, e.key, e.value)
}

// With pairs key with value for Apply.
func With[T any](key Key[T], value T) Entry {
	return entry[T]{key: key, value: value}
}

// Apply sets every entry in order and returns m, so a map can be filled in
// one expression:
//
//	m := typedmap.New().Apply(
//		typedmap.With(PortKey, 8080),
//		typedmap.With(HostKey, "localhost"),
//	)
func (m *TypedMap) Apply(entries ...Entry) *TypedMap {
	for _, e := range entries {
		e.apply(m)
	}
	return m
}
