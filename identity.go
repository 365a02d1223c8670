package typedmap

import (
	"fmt"

	"github.com/google/uuid"
)

// Identity is the opaque runtime value a Key stands for. It is the actual
// storage key inside a TypedMap: two keys are the same entry if and only if
// their identities are equal.
//
// Identities are comparable with ==. The label is kept for debugging only and
// plays no part in uniqueness beyond being copied along with the identity.
type Identity struct {
	id    uuid.UUID
	label string
}

func newIdentity(label string) Identity {
	return Identity{id: uuid.New(), label: label}
}

// Label returns the human-readable label the identity was minted from.
func (i Identity) Label() string {
	return i.label
}

// UUID returns the random identifier backing the identity.
func (i Identity) UUID() uuid.UUID {
	return i.id
}

// IsZero reports whether i is the zero Identity, which is never minted.
func (i Identity) IsZero() bool {
	return i.id == uuid.Nil
}

func (i Identity) String() string {
	if i.IsZero() {
		return "Identity(<zero>)"
	}
	return fmt.Sprintf("Identity(%s#%s)", i.label, i.id)
}
