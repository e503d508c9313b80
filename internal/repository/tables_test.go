package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/shoab414/Hotel-Management/internal/models"
)

func TestCheckoutTableSettlesAllOrders(t *testing.T) {
	r := newTestRepo(t)
	table := createTable(t, r, 3)
	paneer := createMenuItem(t, r, "Paneer Butter Masala", 220)
	naan := createMenuItem(t, r, "Butter Naan", 45)

	if _, err := r.OpenOrder(&table.ID, nil, []OrderLine{{ItemID: paneer.ID, Qty: 1}}); err != nil {
		t.Fatalf("open first: %v", err)
	}
	if _, err := r.OpenOrder(&table.ID, nil, []OrderLine{{ItemID: naan.ID, Qty: 4}}); err != nil {
		t.Fatalf("open second: %v", err)
	}

	bill, err := r.CheckoutTable(table.ID, models.MethodCash, time.Now())
	if err != nil {
		t.Fatalf("checkout table: %v", err)
	}
	if bill.TableNumber != 3 {
		t.Errorf("table number = %d, want 3", bill.TableNumber)
	}
	if len(bill.Lines) != 2 {
		t.Errorf("lines = %d, want 2", len(bill.Lines))
	}
	if bill.Subtotal != 400 {
		t.Errorf("subtotal = %v, want 400", bill.Subtotal)
	}
	if bill.GST != 72 {
		t.Errorf("gst = %v, want 72", bill.GST)
	}
	if bill.GrandTotal != 472 {
		t.Errorf("grand total = %v, want 472", bill.GrandTotal)
	}
	if len(bill.SettledOrders) != 2 {
		t.Errorf("settled orders = %v, want two", bill.SettledOrders)
	}

	// One payment per order.
	if n := countPayments(t, r); n != 2 {
		t.Errorf("payment rows = %d, want 2", n)
	}
	if got := getTable(t, r, table.ID).Status; got != models.StatusAvailable {
		t.Errorf("table status = %q, want Available", got)
	}

	if _, err := r.CheckoutTable(table.ID, models.MethodCash, time.Now()); !errors.Is(err, ErrNotFound) {
		t.Errorf("empty table checkout: got %v, want ErrNotFound", err)
	}
}

func TestCheckoutTableRejectsUnknownMethod(t *testing.T) {
	r := newTestRepo(t)
	table := createTable(t, r, 1)
	if _, err := r.CheckoutTable(table.ID, "IOU", time.Now()); !errors.Is(err, ErrValidation) {
		t.Errorf("got %v, want ErrValidation", err)
	}
}

func TestTableOrdersExcludesClosed(t *testing.T) {
	r := newTestRepo(t)
	table := createTable(t, r, 1)
	item := createMenuItem(t, r, "Fresh Lime Soda", 60)

	open, err := r.OpenOrder(&table.ID, nil, []OrderLine{{ItemID: item.ID, Qty: 1}})
	if err != nil {
		t.Fatalf("open first: %v", err)
	}
	cancelled, err := r.OpenOrder(&table.ID, nil, []OrderLine{{ItemID: item.ID, Qty: 2}})
	if err != nil {
		t.Fatalf("open second: %v", err)
	}
	if err := r.CancelOrder(cancelled.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	orders, err := r.TableOrders(table.ID)
	if err != nil {
		t.Fatalf("table orders: %v", err)
	}
	if len(orders) != 1 || orders[0].ID != open.ID {
		t.Errorf("orders = %v, want only the open one", orders)
	}
}

func TestCreateTableValidation(t *testing.T) {
	r := newTestRepo(t)
	if _, err := r.CreateTable(0); !errors.Is(err, ErrValidation) {
		t.Errorf("zero number: got %v, want ErrValidation", err)
	}
	if err := r.SetTableStatus(999, models.StatusCleaning); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing table: got %v, want ErrNotFound", err)
	}
}
