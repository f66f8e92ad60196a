package service

import (
	"testing"

	"movie-booking-cli/model"
)

func TestLedger_FindCaseInsensitive(t *testing.T) {
	ledger, err := NewLedger(&memStore{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	booking := &model.Booking{BookingID: "AB12CD34"}
	ledger.add(booking)

	for _, id := range []string{"AB12CD34", "ab12cd34", " Ab12Cd34 "} {
		got, ok := ledger.Find(id)
		if !ok || got != booking {
			t.Fatalf("expected to find booking by %q", id)
		}
	}
	if _, ok := ledger.Find("ZZ99ZZ99"); ok {
		t.Fatal("expected unknown id to be absent")
	}
}

func TestLedger_RemoveKeepsOrder(t *testing.T) {
	ledger, err := NewLedger(&memStore{})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	a := &model.Booking{BookingID: "A"}
	b := &model.Booking{BookingID: "B"}
	c := &model.Booking{BookingID: "C"}
	ledger.add(a)
	ledger.add(b)
	ledger.add(c)

	ledger.remove(b)
	got := ledger.Bookings()
	if len(got) != 2 || got[0] != a || got[1] != c {
		t.Fatalf("expected [A C], got %v", got)
	}

	// Removing something absent is a no-op.
	ledger.remove(b)
	if len(ledger.Bookings()) != 2 {
		t.Fatal("expected removal of absent booking to be a no-op")
	}
}
