package repository

import (
	"time"

	"github.com/shoab414/Hotel-Management/internal/billing"
	"github.com/shoab414/Hotel-Management/internal/models"
)

// DashboardStats is the aggregate snapshot the dashboard screen polls.
type DashboardStats struct {
	RevenueToday  float64 `json:"revenue_today"`
	RevenueWeek   float64 `json:"revenue_week"`
	RevenueMonth  float64 `json:"revenue_month"`
	ActiveOrders  int64   `json:"active_orders"`
	RoomsTotal    int64   `json:"rooms_total"`
	RoomsOccupied int64   `json:"rooms_occupied"`
	LowStockItems int64   `json:"low_stock_items"`
}

func (r *Repository) Dashboard(now time.Time) (*DashboardStats, error) {
	stats := &DashboardStats{}
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	startOfWeek := startOfDay.AddDate(0, 0, -7)
	startOfMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	revenueSince := func(since time.Time) (float64, error) {
		var total float64
		err := r.db.Model(&models.Payment{}).
			Where("paid_at >= ?", since).
			Select("COALESCE(SUM(amount+gst),0)").Scan(&total).Error
		return total, err
	}

	var err error
	if stats.RevenueToday, err = revenueSince(startOfDay); err != nil {
		return nil, err
	}
	if stats.RevenueWeek, err = revenueSince(startOfWeek); err != nil {
		return nil, err
	}
	if stats.RevenueMonth, err = revenueSince(startOfMonth); err != nil {
		return nil, err
	}

	if err := r.db.Model(&models.Order{}).
		Where("status IN ?", []string{models.OrderOpen, models.OrderInKitchen, models.OrderServed}).
		Count(&stats.ActiveOrders).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Room{}).Count(&stats.RoomsTotal).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Room{}).Where("status = ?", models.StatusOccupied).
		Count(&stats.RoomsOccupied).Error; err != nil {
		return nil, err
	}
	if err := r.db.Model(&models.Inventory{}).Where("qty <= threshold").
		Count(&stats.LowStockItems).Error; err != nil {
		return nil, err
	}
	return stats, nil
}

// DailyPoint is one day of a revenue or order-count series.
type DailyPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
}

// RevenueSeries returns payment revenue per day for the last `days` days,
// oldest first.
func (r *Repository) RevenueSeries(now time.Time, days int) ([]DailyPoint, error) {
	points := make([]DailyPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -i)
		next := day.AddDate(0, 0, 1)
		var total float64
		if err := r.db.Model(&models.Payment{}).
			Where("paid_at >= ? AND paid_at < ?", day, next).
			Select("COALESCE(SUM(amount+gst),0)").Scan(&total).Error; err != nil {
			return nil, err
		}
		points = append(points, DailyPoint{Date: day.Format(billing.DateLayout), Value: billing.Round2(total)})
	}
	return points, nil
}

// OrdersPerDay counts orders created per day for the last `days` days.
func (r *Repository) OrdersPerDay(now time.Time, days int) ([]DailyPoint, error) {
	points := make([]DailyPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, -i)
		next := day.AddDate(0, 0, 1)
		var count int64
		if err := r.db.Model(&models.Order{}).
			Where("created_at >= ? AND created_at < ?", day, next).
			Count(&count).Error; err != nil {
			return nil, err
		}
		points = append(points, DailyPoint{Date: day.Format(billing.DateLayout), Value: float64(count)})
	}
	return points, nil
}

// CategoryRevenue is order revenue attributed to a menu category.
type CategoryRevenue struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

func (r *Repository) RevenueByCategory() ([]CategoryRevenue, error) {
	var rows []CategoryRevenue
	err := r.db.Table("order_details od").
		Select("mi.category AS category, COALESCE(SUM(od.qty*od.price),0) AS amount").
		Joins("JOIN menu_items mi ON od.item_id = mi.id").
		Group("mi.category").
		Order("amount desc").
		Scan(&rows).Error
	return rows, err
}

// MethodSplit is revenue grouped by payment method.
type MethodSplit struct {
	Method string  `json:"method"`
	Amount float64 `json:"amount"`
	Count  int64   `json:"count"`
}

func (r *Repository) PaymentMethodSplit() ([]MethodSplit, error) {
	var rows []MethodSplit
	err := r.db.Model(&models.Payment{}).
		Select("method, COALESCE(SUM(amount+gst),0) AS amount, COUNT(*) AS count").
		Group("method").
		Order("amount desc").
		Scan(&rows).Error
	return rows, err
}

// ListPayments returns settlement rows, newest first, for reporting.
func (r *Repository) ListPayments(from, to time.Time) ([]models.Payment, error) {
	q := r.db.Order("paid_at desc")
	if !from.IsZero() {
		q = q.Where("paid_at >= ?", from)
	}
	if !to.IsZero() {
		q = q.Where("paid_at < ?", to)
	}
	var payments []models.Payment
	err := q.Find(&payments).Error
	return payments, err
}
