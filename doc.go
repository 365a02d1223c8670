// Package typedmap provides a heterogeneous map whose entries are typed by
// their keys.
//
// A Key[T] pairs an opaque Identity with a compile-time-only value type T.
// A TypedMap stores values of any type, but every read and write through a
// Key[T] is checked against T by the compiler:
//
//	var (
//		PortKey = typedmap.For[int]("PORT")
//		HostKey = typedmap.For[string]("HOST")
//	)
//
//	m := typedmap.New().Apply(typedmap.With(PortKey, 8080))
//	typedmap.Set(m, HostKey, "localhost")
//	port, ok := typedmap.Get(m, PortKey) // port is an int
//
// Core components include:
//   - Identity: the comparable value a key stands for and the storage key
//   - Registry: interns labels so equal labels yield equal identities
//   - Key: a typed handle, either unique (NewKey) or interned (For, ForIn)
//   - TypedMap: the container, with Get, Set, Has, Delete, Clear and copies
//
// Key creation modes:
//
//   - NewKey always mints a fresh identity, even for a label already used.
//   - For resolves the label in the process-wide registry, so For[T]("X")
//     called twice yields keys with the same identity. ForIn does the same
//     against an explicit Registry.
//   - FromIdentity re-wraps an existing identity under another value type.
//     It is unchecked and the only way to defeat the compile-time guarantee.
//
// The value type is never checked at runtime when storing, and identity alone
// decides which entry a key addresses: two interned keys with the same label
// and different declared types address the same entry.
//
// Copying:
//
// From (or Clone) produces a shallow copy: a new map structure holding the
// same value references. Adding or deleting entries on either map does not
// affect the other, but mutating a shared value is visible through both.
//
// A TypedMap is not safe for concurrent use. A Registry is.
package typedmap
