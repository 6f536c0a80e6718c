package entity

import (
	"bytes"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"
)

// ID is a 16-byte ULID-backed record identity: comparable, creation-ordered
// and lexicographically sortable in its string form.
type ID [16]byte

func NewID() ID {
	return ID(ulid.Make())
}

func ParseID(idStr string) (ID, error) {
	id, err := ulid.ParseStrict(idStr)
	if err != nil {
		return ID{}, err
	}
	return ID(id), nil
}

func IDFromBytes(idBytes []byte) (ID, error) {
	if len(idBytes) != 16 {
		return ID{}, fmt.Errorf("id must be 16 bytes, got %d", len(idBytes))
	}
	return ID(idBytes), nil
}

func (id ID) Bytes() []byte {
	return id[:]
}

func (id ID) String() string {
	return ulid.ULID(id).String()
}

func (id ID) IsZero() bool {
	return id == ID{}
}

// Compare orders IDs by creation (ULID timestamp prefix first).
func (id ID) Compare(other ID) int {
	return bytes.Compare(id[:], other[:])
}

// Base is an embeddable record base carrying identity and creation time.
// Equality is identity-only; two records with the same ID are the same
// record whatever their payloads.
type Base struct {
	ID        ID
	CreatedAt time.Time
}

func NewBase() Base {
	return Base{
		ID:        NewID(),
		CreatedAt: time.Now().UTC(),
	}
}

func (b Base) Identity() ID {
	return b.ID
}

func (b Base) Equal(other Base) bool {
	return b.ID == other.ID
}

type Identifiable interface {
	Identity() ID
}

func Same(a, b Identifiable) bool {
	return a.Identity() == b.Identity()
}

// WithID adapts an identity into a predicate usable with the lists and rule
// packages.
func WithID[E Identifiable](id ID) func(E) bool {
	return func(e E) bool {
		return e.Identity() == id
	}
}
