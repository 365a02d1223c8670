// Package store provides the type-erased storage layer behind typedmap.
//
// A Store maps comparable keys to values of any type. It performs no type
// checking of its own: the typed accessors in the parent package are the only
// thing that keeps reads and writes consistent with a key's declared type.
//
// Core features include:
//   - Insert, overwrite, lookup and removal of single entries
//   - Bulk clearing
//   - Shallow cloning into an independent map structure
//
// Store Cloning:
//
// Clone() copies the key/value mapping into a new map. Values are not deep
// copied: a pointer, slice or map stored in the original is the same object in
// the clone, so mutating its contents is visible through both stores, while
// adding or removing keys on one store never affects the other.
//
// A Store is not safe for concurrent use. Callers that share one across
// goroutines must synchronize access themselves.
package store
