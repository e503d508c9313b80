package repository

import (
	"math"
	"testing"
	"time"

	"github.com/shoab414/Hotel-Management/internal/models"
)

// Revenue sums are unrounded float aggregates; compare within a paisa.
func approx(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}

func settleNewOrder(t *testing.T, r *Repository, table *models.DiningTable, item *models.MenuItem, qty int, method string, when time.Time) {
	t.Helper()
	order, err := r.OpenOrder(&table.ID, nil, []OrderLine{{ItemID: item.ID, Qty: qty}})
	if err != nil {
		t.Fatalf("open order: %v", err)
	}
	if _, err := r.SettleOrder(order.ID, method, when); err != nil {
		t.Fatalf("settle order: %v", err)
	}
}

func TestDashboard(t *testing.T) {
	r := newTestRepo(t)
	table := createTable(t, r, 1)
	item := createMenuItem(t, r, "Chicken Biryani", 320)
	createRoom(t, r, "101", 2500)
	occupied := createRoom(t, r, "102", 2500)
	if err := r.SetRoomStatus(occupied.ID, models.StatusOccupied); err != nil {
		t.Fatalf("set status: %v", err)
	}
	createInventoryItem(t, r, "Paneer", 2, 340) // below default threshold 5

	now := time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)
	settleNewOrder(t, r, table, item, 1, models.MethodCash, now)                    // today
	settleNewOrder(t, r, table, item, 1, models.MethodCard, now.AddDate(0, 0, -3)) // this week
	settleNewOrder(t, r, table, item, 1, models.MethodUPI, now.AddDate(0, 0, -20)) // this month only

	// One order left open on the table.
	if _, err := r.OpenOrder(&table.ID, nil, []OrderLine{{ItemID: item.ID, Qty: 1}}); err != nil {
		t.Fatalf("open order: %v", err)
	}

	stats, err := r.Dashboard(now)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	perOrder := 320 + 57.60 // amount + gst
	if !approx(stats.RevenueToday, perOrder) {
		t.Errorf("revenue today = %v, want %v", stats.RevenueToday, perOrder)
	}
	if !approx(stats.RevenueWeek, 2*perOrder) {
		t.Errorf("revenue week = %v, want %v", stats.RevenueWeek, 2*perOrder)
	}
	if !approx(stats.RevenueMonth, 3*perOrder) {
		t.Errorf("revenue month = %v, want %v", stats.RevenueMonth, 3*perOrder)
	}
	if stats.ActiveOrders != 1 {
		t.Errorf("active orders = %d, want 1", stats.ActiveOrders)
	}
	if stats.RoomsTotal != 2 || stats.RoomsOccupied != 1 {
		t.Errorf("rooms = %d/%d, want 1/2", stats.RoomsOccupied, stats.RoomsTotal)
	}
	if stats.LowStockItems != 1 {
		t.Errorf("low stock = %d, want 1", stats.LowStockItems)
	}
}

func TestRevenueSeries(t *testing.T) {
	r := newTestRepo(t)
	table := createTable(t, r, 1)
	item := createMenuItem(t, r, "Masala Dosa", 120)

	now := time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC)
	settleNewOrder(t, r, table, item, 1, models.MethodCash, now)
	settleNewOrder(t, r, table, item, 2, models.MethodCash, now.AddDate(0, 0, -1))

	points, err := r.RevenueSeries(now, 7)
	if err != nil {
		t.Fatalf("revenue series: %v", err)
	}
	if len(points) != 7 {
		t.Fatalf("points = %d, want 7", len(points))
	}
	if points[6].Date != "2024-03-15" {
		t.Errorf("last point date = %q, want 2024-03-15", points[6].Date)
	}
	if points[6].Value != 141.60 { // 120 + 18% gst
		t.Errorf("today = %v, want 141.60", points[6].Value)
	}
	if points[5].Value != 283.20 {
		t.Errorf("yesterday = %v, want 283.20", points[5].Value)
	}
	if points[0].Value != 0 {
		t.Errorf("oldest day = %v, want 0", points[0].Value)
	}
}

func TestRevenueByCategoryAndMethodSplit(t *testing.T) {
	r := newTestRepo(t)
	table := createTable(t, r, 1)
	biryani := createMenuItem(t, r, "Chicken Biryani", 320)
	chai := models.MenuItem{Name: "Masala Chai", Category: "Beverages", Price: 30, Active: true}
	if err := r.CreateMenuItem(&chai); err != nil {
		t.Fatalf("create: %v", err)
	}

	now := time.Now()
	settleNewOrder(t, r, table, biryani, 1, models.MethodCard, now)
	settleNewOrder(t, r, table, &chai, 2, models.MethodCash, now)

	byCategory, err := r.RevenueByCategory()
	if err != nil {
		t.Fatalf("revenue by category: %v", err)
	}
	if len(byCategory) != 2 {
		t.Fatalf("categories = %d, want 2", len(byCategory))
	}
	if byCategory[0].Category != "Main Course" || byCategory[0].Amount != 320 {
		t.Errorf("top category = %+v", byCategory[0])
	}
	if byCategory[1].Category != "Beverages" || byCategory[1].Amount != 60 {
		t.Errorf("second category = %+v", byCategory[1])
	}

	split, err := r.PaymentMethodSplit()
	if err != nil {
		t.Fatalf("method split: %v", err)
	}
	if len(split) != 2 {
		t.Fatalf("methods = %d, want 2", len(split))
	}
	if split[0].Method != models.MethodCard || split[0].Count != 1 {
		t.Errorf("top method = %+v", split[0])
	}
}

func TestListPaymentsRange(t *testing.T) {
	r := newTestRepo(t)
	table := createTable(t, r, 1)
	item := createMenuItem(t, r, "Masala Dosa", 120)

	march := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	april := time.Date(2024, 4, 10, 12, 0, 0, 0, time.UTC)
	settleNewOrder(t, r, table, item, 1, models.MethodCash, march)
	settleNewOrder(t, r, table, item, 1, models.MethodCash, april)

	all, err := r.ListPayments(time.Time{}, time.Time{})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all = %d, want 2", len(all))
	}

	marchOnly, err := r.ListPayments(
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("list march: %v", err)
	}
	if len(marchOnly) != 1 {
		t.Errorf("march = %d, want 1", len(marchOnly))
	}
}
