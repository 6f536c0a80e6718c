package entity

import (
	"testing"
	"time"
)

func TestID_RoundTrip(t *testing.T) {
	t.Parallel()

	id := NewID()
	if id.IsZero() {
		t.Fatal("minted id must not be zero")
	}

	parsed, err := ParseID(id.String())
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if parsed != id {
		t.Fatal("expected round-trip equality")
	}

	fromBytes, err := IDFromBytes(id.Bytes())
	if err != nil {
		t.Fatalf("from bytes failed: %v", err)
	}
	if fromBytes != id {
		t.Fatal("expected byte round-trip equality")
	}

	if _, err := IDFromBytes([]byte{1, 2, 3}); err == nil {
		t.Fatal("expected error on short byte slice")
	}
	if _, err := ParseID("not-an-id"); err == nil {
		t.Fatal("expected error on malformed string")
	}
}

func TestID_CreationOrder(t *testing.T) {
	t.Parallel()

	first := NewID()
	time.Sleep(2 * time.Millisecond)
	second := NewID()

	if first.Compare(second) >= 0 {
		t.Fatal("expected later id to sort after earlier id")
	}
}

func TestBase_IdentityEquality(t *testing.T) {
	t.Parallel()

	a := NewBase()
	b := NewBase()

	if !a.Equal(a) {
		t.Fatal("expected a record to equal itself")
	}
	if a.Equal(b) {
		t.Fatal("expected distinct records to differ")
	}

	// equality is identity-only, independent of other fields
	aged := a
	aged.CreatedAt = a.CreatedAt.Add(time.Hour)
	if !a.Equal(aged) {
		t.Fatal("expected equality by id alone")
	}
}

type account struct {
	Base
	Balance int
}

func TestSameAndWithID(t *testing.T) {
	t.Parallel()

	a := account{Base: NewBase(), Balance: 10}
	b := account{Base: NewBase(), Balance: 10}

	if Same(a, b) {
		t.Fatal("expected different identities")
	}
	if !Same(a, account{Base: a.Base, Balance: 99}) {
		t.Fatal("expected same identity regardless of payload")
	}

	match := WithID[account](a.ID)
	if !match(a) || match(b) {
		t.Fatal("expected predicate to match only a")
	}
}
