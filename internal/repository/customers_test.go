package repository

import (
	"errors"
	"testing"

	"github.com/shoab414/Hotel-Management/internal/models"
)

func TestQuickReservePicksFirstFreeRoom(t *testing.T) {
	r := newTestRepo(t)
	r101 := createRoom(t, r, "101", 2500)
	createRoom(t, r, "102", 2500)

	// 101 is taken by an existing booking.
	existing := createCustomer(t, r, "Anita")
	if _, err := r.Reserve(existing.ID, &r101.ID, "2024-02-01"); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	res, err := r.QuickReserve("Bhavesh", "9800012345", "2024-02-01")
	if err != nil {
		t.Fatalf("quick reserve: %v", err)
	}
	if res.RoomID == nil {
		t.Fatal("walk-in got no room despite 102 being free")
	}
	room := getRoom(t, r, *res.RoomID)
	if room.Number != "102" {
		t.Errorf("assigned room = %q, want 102", room.Number)
	}
	if res.Customer.Name != "Bhavesh" {
		t.Errorf("customer = %q, want Bhavesh", res.Customer.Name)
	}
}

func TestQuickReserveWaitlistsWhenFull(t *testing.T) {
	r := newTestRepo(t)
	room := createRoom(t, r, "101", 2500)
	existing := createCustomer(t, r, "Anita")
	if _, err := r.Reserve(existing.ID, &room.ID, "2024-02-01"); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	res, err := r.QuickReserve("Bhavesh", "", "2024-02-01")
	if err != nil {
		t.Fatalf("quick reserve: %v", err)
	}
	if res.RoomID != nil {
		t.Errorf("RoomID = %v, want nil (waitlisted)", res.RoomID)
	}
	if res.Status != models.ReservationReserved {
		t.Errorf("status = %q, want Reserved", res.Status)
	}
}

func TestQuickReserveValidation(t *testing.T) {
	r := newTestRepo(t)
	if _, err := r.QuickReserve("", "", "2024-02-01"); !errors.Is(err, ErrValidation) {
		t.Errorf("empty name: got %v, want ErrValidation", err)
	}
	if _, err := r.QuickReserve("Bhavesh", "", "02/01/2024"); !errors.Is(err, ErrValidation) {
		t.Errorf("bad date: got %v, want ErrValidation", err)
	}
	// Empty check-in defaults to today.
	res, err := r.QuickReserve("Bhavesh", "", "")
	if err != nil {
		t.Fatalf("quick reserve: %v", err)
	}
	if res.CheckIn == "" {
		t.Error("check-in not defaulted")
	}
}

func TestListGuests(t *testing.T) {
	r := newTestRepo(t)
	room := createRoom(t, r, "201", 4000)
	staying := createCustomer(t, r, "Anita")
	createCustomer(t, r, "Bhavesh") // no reservation

	res, err := r.Reserve(staying.ID, &room.ID, "2024-02-01")
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if err := r.CheckIn(res.ID); err != nil {
		t.Fatalf("check in: %v", err)
	}

	guests, err := r.ListGuests()
	if err != nil {
		t.Fatalf("list guests: %v", err)
	}
	if len(guests) != 2 {
		t.Fatalf("guests = %d, want 2", len(guests))
	}
	byName := map[string]Guest{}
	for _, g := range guests {
		byName[g.Name] = g
	}
	anita := byName["Anita"]
	if anita.Status != models.ReservationCheckedIn || anita.RoomNumber != "201" {
		t.Errorf("Anita = %+v, want CheckedIn in 201", anita)
	}
	if byName["Bhavesh"].ReservationID != nil {
		t.Errorf("Bhavesh has a reservation = %+v", byName["Bhavesh"])
	}
}

func TestCustomerCRUD(t *testing.T) {
	r := newTestRepo(t)
	if err := r.CreateCustomer(&models.Customer{}); !errors.Is(err, ErrValidation) {
		t.Errorf("empty name: got %v, want ErrValidation", err)
	}

	c := createCustomer(t, r, "Anita")
	c.Phone = "9111100000"
	if err := r.UpdateCustomer(c); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, err := r.GetCustomer(c.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Phone != "9111100000" {
		t.Errorf("phone = %q", got.Phone)
	}

	matches, err := r.ListCustomers("Ani")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(matches) != 1 {
		t.Errorf("search matches = %d, want 1", len(matches))
	}

	if err := r.DeleteCustomer(c.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := r.GetCustomer(c.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("get deleted: got %v, want ErrNotFound", err)
	}
}
