package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/shoab414/Hotel-Management/internal/models"
)

func TestReserveValidation(t *testing.T) {
	r := newTestRepo(t)
	customer := createCustomer(t, r, "Anita")
	room := createRoom(t, r, "101", 2500)

	if _, err := r.Reserve(customer.ID, &room.ID, "01/02/2024"); !errors.Is(err, ErrValidation) {
		t.Errorf("bad date: got %v, want ErrValidation", err)
	}
	if _, err := r.Reserve(999, &room.ID, "2024-02-01"); !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown customer: got %v, want ErrNotFound", err)
	}
}

func TestReserveRejectsDoubleBooking(t *testing.T) {
	r := newTestRepo(t)
	c1 := createCustomer(t, r, "Anita")
	c2 := createCustomer(t, r, "Bhavesh")
	room := createRoom(t, r, "101", 2500)

	if _, err := r.Reserve(c1.ID, &room.ID, "2024-02-01"); err != nil {
		t.Fatalf("first reservation: %v", err)
	}
	if _, err := r.Reserve(c2.ID, &room.ID, "2024-02-02"); !errors.Is(err, ErrRoomUnavailable) {
		t.Errorf("second reservation: got %v, want ErrRoomUnavailable", err)
	}
}

func TestReserveWaitlistWithoutRoom(t *testing.T) {
	r := newTestRepo(t)
	customer := createCustomer(t, r, "Anita")

	res, err := r.Reserve(customer.ID, nil, "2024-02-01")
	if err != nil {
		t.Fatalf("waitlist reservation: %v", err)
	}
	if res.RoomID != nil {
		t.Errorf("RoomID = %v, want nil", res.RoomID)
	}
	if res.Status != models.ReservationReserved {
		t.Errorf("Status = %q, want Reserved", res.Status)
	}

	// No room means check-in and checkout skip room side effects entirely.
	if err := r.CheckIn(res.ID); err != nil {
		t.Fatalf("check in: %v", err)
	}
	if err := r.CheckOut(res.ID, time.Now()); err != nil {
		t.Fatalf("check out: %v", err)
	}
}

func TestCheckInMarksRoomOccupied(t *testing.T) {
	r := newTestRepo(t)
	customer := createCustomer(t, r, "Anita")
	room := createRoom(t, r, "101", 2500)
	res, err := r.Reserve(customer.ID, &room.ID, "2024-02-01")
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}

	if err := r.CheckIn(res.ID); err != nil {
		t.Fatalf("check in: %v", err)
	}
	if got := getRoom(t, r, room.ID).Status; got != models.StatusOccupied {
		t.Errorf("room status = %q, want Occupied", got)
	}

	// Already checked in; a second check-in must be rejected.
	if err := r.CheckIn(res.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("double check-in: got %v, want ErrInvalidTransition", err)
	}
}

func TestCheckOutHandsRoomToHousekeeping(t *testing.T) {
	r := newTestRepo(t)
	customer := createCustomer(t, r, "Anita")
	room := createRoom(t, r, "101", 2500)
	res, err := r.Reserve(customer.ID, &room.ID, "2024-02-01")
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}

	if err := r.CheckOut(res.ID, time.Now()); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("checkout before check-in: got %v, want ErrInvalidTransition", err)
	}

	if err := r.CheckIn(res.ID); err != nil {
		t.Fatalf("check in: %v", err)
	}
	when := time.Date(2024, 2, 3, 11, 0, 0, 0, time.UTC)
	if err := r.CheckOut(res.ID, when); err != nil {
		t.Fatalf("check out: %v", err)
	}

	if got := getRoom(t, r, room.ID).Status; got != models.StatusCleaning {
		t.Errorf("room status = %q, want Cleaning", got)
	}
	var stored models.Reservation
	if err := r.db.First(&stored, res.ID).Error; err != nil {
		t.Fatalf("load reservation: %v", err)
	}
	if stored.Status != models.ReservationCheckedOut {
		t.Errorf("reservation status = %q, want CheckedOut", stored.Status)
	}
	if stored.CheckOut == nil || *stored.CheckOut != "2024-02-03" {
		t.Errorf("check_out = %v, want 2024-02-03", stored.CheckOut)
	}
}

func TestCancelOnlyFromReserved(t *testing.T) {
	r := newTestRepo(t)
	customer := createCustomer(t, r, "Anita")
	room := createRoom(t, r, "101", 2500)
	res, err := r.Reserve(customer.ID, &room.ID, "2024-02-01")
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}

	if err := r.CheckIn(res.ID); err != nil {
		t.Fatalf("check in: %v", err)
	}
	if err := r.CancelReservation(res.ID); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("cancel after check-in: got %v, want ErrInvalidTransition", err)
	}

	res2, err := r.Reserve(customer.ID, nil, "2024-03-01")
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if err := r.CancelReservation(res2.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
}

func TestCheckoutReservationSettlesEverything(t *testing.T) {
	r := newTestRepo(t)
	customer := createCustomer(t, r, "Anita")
	room := createRoom(t, r, "201", 4000)
	paneer := createMenuItem(t, r, "Paneer Butter Masala", 220)
	biryani := createMenuItem(t, r, "Chicken Biryani", 320)

	res, err := r.Reserve(customer.ID, &room.ID, "2024-01-01")
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if err := r.CheckIn(res.ID); err != nil {
		t.Fatalf("check in: %v", err)
	}
	if _, err := r.OpenOrder(nil, &customer.ID, []OrderLine{
		{ItemID: paneer.ID, Qty: 2},
		{ItemID: biryani.ID, Qty: 1},
	}); err != nil {
		t.Fatalf("open order: %v", err)
	}

	when := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)
	summary, err := r.CheckoutReservation(res.ID, models.MethodCard, when)
	if err != nil {
		t.Fatalf("checkout reservation: %v", err)
	}

	stmt := summary.Statement
	if stmt.Nights != 2 {
		t.Errorf("nights = %d, want 2", stmt.Nights)
	}
	if stmt.RoomTotal != 8000 {
		t.Errorf("room total = %v, want 8000", stmt.RoomTotal)
	}
	if stmt.OrdersTotal != 760 {
		t.Errorf("orders total = %v, want 760", stmt.OrdersTotal)
	}
	if stmt.GrandTotal != 10336.80 {
		t.Errorf("grand total = %v, want 10336.80", stmt.GrandTotal)
	}
	if len(summary.SettledOrders) != 1 {
		t.Errorf("settled orders = %v, want one", summary.SettledOrders)
	}

	// One payment for the order, one for the room charge.
	if n := countPayments(t, r); n != 2 {
		t.Errorf("payment rows = %d, want 2", n)
	}
	var roomCharge models.Payment
	if err := r.db.Where("reservation_id = ?", res.ID).First(&roomCharge).Error; err != nil {
		t.Fatalf("room charge payment: %v", err)
	}
	if roomCharge.Amount != 8000 {
		t.Errorf("room charge = %v, want 8000", roomCharge.Amount)
	}

	if got := getRoom(t, r, room.ID).Status; got != models.StatusAvailable {
		t.Errorf("room status = %q, want Available", got)
	}

	// Stay is closed; settling again is invalid.
	if _, err := r.CheckoutReservation(res.ID, models.MethodCard, when); !errors.Is(err, ErrInvalidTransition) {
		t.Errorf("second checkout: got %v, want ErrInvalidTransition", err)
	}
}

func TestCheckoutReservationRejectsUnknownMethod(t *testing.T) {
	r := newTestRepo(t)
	if _, err := r.CheckoutReservation(1, "Barter", time.Now()); !errors.Is(err, ErrValidation) {
		t.Errorf("got %v, want ErrValidation", err)
	}
}

func TestSetRoomStatus(t *testing.T) {
	r := newTestRepo(t)
	room := createRoom(t, r, "101", 2500)

	if err := r.SetRoomStatus(room.ID, "Haunted"); !errors.Is(err, ErrValidation) {
		t.Errorf("bad status: got %v, want ErrValidation", err)
	}
	if err := r.SetRoomStatus(room.ID, models.StatusCleaning); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if err := r.SetRoomStatus(room.ID, models.StatusAvailable); err != nil {
		t.Fatalf("set status: %v", err)
	}
	if err := r.SetRoomStatus(999, models.StatusAvailable); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing room: got %v, want ErrNotFound", err)
	}
}

func TestLatestActiveReservation(t *testing.T) {
	r := newTestRepo(t)
	customer := createCustomer(t, r, "Anita")

	if _, err := r.LatestActiveReservation(customer.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("no reservations: got %v, want ErrNotFound", err)
	}

	first, err := r.Reserve(customer.ID, nil, "2024-01-01")
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if err := r.CancelReservation(first.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	second, err := r.Reserve(customer.ID, nil, "2024-02-01")
	if err != nil {
		t.Fatalf("reserve: %v", err)
	}

	got, err := r.LatestActiveReservation(customer.ID)
	if err != nil {
		t.Fatalf("latest active: %v", err)
	}
	if got.ID != second.ID {
		t.Errorf("latest active = %d, want %d", got.ID, second.ID)
	}
}
