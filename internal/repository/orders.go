package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shoab414/Hotel-Management/internal/billing"
	"github.com/shoab414/Hotel-Management/internal/models"
)

// OrderLine is one requested item on a new order.
type OrderLine struct {
	ItemID uint `json:"item_id"`
	Qty    int  `json:"qty"`
}

// OpenOrder creates an Open order with snapshot-priced lines. A table
// order marks an Available table Occupied; an already Occupied table just
// accumulates another order.
func (r *Repository) OpenOrder(tableID, customerID *uint, lines []OrderLine) (*models.Order, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	for _, l := range lines {
		if l.Qty <= 0 {
			return nil, fmt.Errorf("%w: quantity must be positive", ErrValidation)
		}
	}
	var order *models.Order
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if tableID != nil {
			var table models.DiningTable
			if err := tx.First(&table, *tableID).Error; err != nil {
				return notFoundOr(err)
			}
			if table.Status == models.StatusAvailable {
				if err := tx.Model(&table).Update("status", models.StatusOccupied).Error; err != nil {
					return err
				}
			}
		}
		if customerID != nil {
			var customer models.Customer
			if err := tx.First(&customer, *customerID).Error; err != nil {
				return notFoundOr(err)
			}
		}

		o := models.Order{
			TableID:    tableID,
			CustomerID: customerID,
			Status:     models.OrderOpen,
			CreatedAt:  time.Now(),
		}
		if err := tx.Create(&o).Error; err != nil {
			return err
		}
		for _, l := range lines {
			var item models.MenuItem
			if err := tx.First(&item, l.ItemID).Error; err != nil {
				return notFoundOr(err)
			}
			if !item.Active {
				return fmt.Errorf("%w: menu item %q is inactive", ErrValidation, item.Name)
			}
			detail := models.OrderDetail{
				OrderID:       o.ID,
				ItemID:        item.ID,
				Qty:           l.Qty,
				Price:         item.Price, // snapshot, never re-derived
				KitchenStatus: models.KitchenPending,
			}
			if err := tx.Create(&detail).Error; err != nil {
				return err
			}
		}
		order = &o
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.GetOrder(order.ID)
}

func (r *Repository) GetOrder(id uint) (*models.Order, error) {
	var order models.Order
	err := r.db.Preload("Details").Preload("Details.Item").Preload("Table").Preload("Customer").
		First(&order, id).Error
	if err != nil {
		return nil, notFoundOr(err)
	}
	return &order, nil
}

// OrderSummary is one row of the billing screen: order id, line count,
// amount and status.
type OrderSummary struct {
	OrderID   uint      `json:"order_id"`
	Items     int       `json:"items"`
	Amount    float64   `json:"amount"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *Repository) ListOrderSummaries(limit int) ([]OrderSummary, error) {
	if limit <= 0 {
		limit = 20
	}
	var rows []OrderSummary
	err := r.db.Table("orders").
		Select("orders.id AS order_id, COUNT(order_details.id) AS items, COALESCE(SUM(order_details.qty*order_details.price),0) AS amount, orders.status AS status, orders.created_at AS created_at").
		Joins("LEFT JOIN order_details ON orders.id = order_details.order_id").
		Group("orders.id").
		Order("orders.id DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

// SendToKitchen moves an Open order into the kitchen and its lines from
// Pending to Cooking.
func (r *Repository) SendToKitchen(orderID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return notFoundOr(err)
		}
		if order.Status != models.OrderOpen {
			return fmt.Errorf("%w: cannot send a %s order to kitchen", ErrInvalidTransition, order.Status)
		}
		if err := tx.Model(&order).Update("status", models.OrderInKitchen).Error; err != nil {
			return err
		}
		return tx.Model(&models.OrderDetail{}).Where("order_id = ?", orderID).
			Update("kitchen_status", models.KitchenCooking).Error
	})
}

// MarkServed completes the kitchen leg: InKitchen -> Served.
func (r *Repository) MarkServed(orderID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return notFoundOr(err)
		}
		if order.Status != models.OrderInKitchen {
			return fmt.Errorf("%w: cannot serve a %s order", ErrInvalidTransition, order.Status)
		}
		if err := tx.Model(&order).Update("status", models.OrderServed).Error; err != nil {
			return err
		}
		return tx.Model(&models.OrderDetail{}).Where("order_id = ?", orderID).
			Update("kitchen_status", models.KitchenServed).Error
	})
}

var kitchenOrder = map[string]int{
	models.KitchenPending: 0,
	models.KitchenCooking: 1,
	models.KitchenReady:   2,
	models.KitchenServed:  3,
}

// UpdateKitchenStatus advances a single line through
// Pending -> Cooking -> Ready -> Served; moving backwards is rejected.
func (r *Repository) UpdateKitchenStatus(detailID uint, status string) error {
	rank, ok := kitchenOrder[status]
	if !ok {
		return fmt.Errorf("%w: unknown kitchen status %q", ErrValidation, status)
	}
	var detail models.OrderDetail
	if err := r.db.First(&detail, detailID).Error; err != nil {
		return notFoundOr(err)
	}
	if rank < kitchenOrder[detail.KitchenStatus] {
		return fmt.Errorf("%w: kitchen status cannot move from %s back to %s",
			ErrInvalidTransition, detail.KitchenStatus, status)
	}
	return r.db.Model(&detail).Update("kitchen_status", status).Error
}

// SettleOrder marks an order Paid, writes exactly one Payment row for a
// non-zero amount, and frees the table when no other unpaid orders remain
// on it.
func (r *Repository) SettleOrder(orderID uint, method string, when time.Time) (*models.Payment, error) {
	if err := validMethod(method); err != nil {
		return nil, err
	}
	var payment *models.Payment
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return notFoundOr(err)
		}
		if order.Status == models.OrderPaid || order.Status == models.OrderCancelled {
			return fmt.Errorf("%w: order already %s", ErrInvalidTransition, order.Status)
		}
		amount, err := orderAmount(tx, orderID)
		if err != nil {
			return err
		}
		if amount > 0 {
			p := models.Payment{
				OrderID: &order.ID,
				Amount:  billing.Round2(amount),
				GST:     r.calc.GST(amount),
				Method:  method,
				PaidAt:  when,
			}
			if err := tx.Create(&p).Error; err != nil {
				return err
			}
			payment = &p
		}
		if err := tx.Model(&order).Update("status", models.OrderPaid).Error; err != nil {
			return err
		}
		return freeTableIfIdle(tx, order.TableID)
	})
	if err != nil {
		return nil, err
	}
	return payment, nil
}

// CancelOrder voids a not-yet-paid order and frees its table if idle.
func (r *Repository) CancelOrder(orderID uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var order models.Order
		if err := tx.First(&order, orderID).Error; err != nil {
			return notFoundOr(err)
		}
		if order.Status == models.OrderPaid || order.Status == models.OrderCancelled {
			return fmt.Errorf("%w: order already %s", ErrInvalidTransition, order.Status)
		}
		if err := tx.Model(&order).Update("status", models.OrderCancelled).Error; err != nil {
			return err
		}
		return freeTableIfIdle(tx, order.TableID)
	})
}

func orderAmount(tx *gorm.DB, orderID uint) (float64, error) {
	var amount float64
	err := tx.Model(&models.OrderDetail{}).Where("order_id = ?", orderID).
		Select("COALESCE(SUM(qty*price),0)").Scan(&amount).Error
	return amount, err
}

// freeTableIfIdle releases a table back to Available once it has no
// remaining unpaid orders.
func freeTableIfIdle(tx *gorm.DB, tableID *uint) error {
	if tableID == nil {
		return nil
	}
	var remaining int64
	if err := tx.Model(&models.Order{}).
		Where("table_id = ? AND status NOT IN ?", *tableID,
			[]string{models.OrderPaid, models.OrderCancelled}).
		Count(&remaining).Error; err != nil {
		return err
	}
	if remaining > 0 {
		return nil
	}
	return tx.Model(&models.DiningTable{}).Where("id = ?", *tableID).
		Update("status", models.StatusAvailable).Error
}
