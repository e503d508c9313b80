package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shoab414/Hotel-Management/internal/billing"
	"github.com/shoab414/Hotel-Management/internal/models"
)

func (r *Repository) ListTables() ([]models.DiningTable, error) {
	var tables []models.DiningTable
	err := r.db.Order("number").Find(&tables).Error
	return tables, err
}

func (r *Repository) CreateTable(number int) (*models.DiningTable, error) {
	if number <= 0 {
		return nil, fmt.Errorf("%w: table number must be positive", ErrValidation)
	}
	table := models.DiningTable{Number: number, Status: models.StatusAvailable}
	if err := r.db.Create(&table).Error; err != nil {
		return nil, err
	}
	return &table, nil
}

func (r *Repository) SetTableStatus(id uint, status string) error {
	switch status {
	case models.StatusAvailable, models.StatusOccupied, models.StatusCleaning:
	default:
		return fmt.Errorf("%w: unknown table status %q", ErrValidation, status)
	}
	res := r.db.Model(&models.DiningTable{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// TableOrders returns the table's orders that are still unpaid, lines
// included.
func (r *Repository) TableOrders(tableID uint) ([]models.Order, error) {
	var table models.DiningTable
	if err := r.db.First(&table, tableID).Error; err != nil {
		return nil, notFoundOr(err)
	}
	var orders []models.Order
	err := r.db.Preload("Details").Preload("Details.Item").
		Where("table_id = ? AND status NOT IN ?", tableID,
			[]string{models.OrderPaid, models.OrderCancelled}).
		Order("id").Find(&orders).Error
	return orders, err
}

// BillLine is one item row on a table bill.
type BillLine struct {
	Name   string  `json:"name"`
	Qty    int     `json:"qty"`
	Price  float64 `json:"price"`
	Amount float64 `json:"amount"`
}

// TableBill is the itemized settlement for a whole table.
type TableBill struct {
	TableNumber   int        `json:"table_number"`
	Lines         []BillLine `json:"lines"`
	Subtotal      float64    `json:"subtotal"`
	GST           float64    `json:"gst"`
	GrandTotal    float64    `json:"grand_total"`
	Method        string     `json:"method"`
	SettledOrders []uint     `json:"settled_orders"`
}

// CheckoutTable settles every unpaid order on the table: one Payment per
// non-zero order, all orders marked Paid, the table released. Returns the
// itemized bill.
func (r *Repository) CheckoutTable(tableID uint, method string, when time.Time) (*TableBill, error) {
	if err := validMethod(method); err != nil {
		return nil, err
	}
	var bill *TableBill
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var table models.DiningTable
		if err := tx.First(&table, tableID).Error; err != nil {
			return notFoundOr(err)
		}
		var orders []models.Order
		if err := tx.Preload("Details").Preload("Details.Item").
			Where("table_id = ? AND status NOT IN ?", tableID,
				[]string{models.OrderPaid, models.OrderCancelled}).
			Order("id").Find(&orders).Error; err != nil {
			return err
		}
		if len(orders) == 0 {
			return fmt.Errorf("%w: table has no unpaid orders", ErrNotFound)
		}

		b := TableBill{TableNumber: table.Number, Method: method}
		for _, order := range orders {
			var amount float64
			for _, d := range order.Details {
				lineAmount := float64(d.Qty) * d.Price
				amount += lineAmount
				b.Lines = append(b.Lines, BillLine{
					Name:   d.Item.Name,
					Qty:    d.Qty,
					Price:  d.Price,
					Amount: billing.Round2(lineAmount),
				})
			}
			if amount > 0 {
				orderID := order.ID
				payment := models.Payment{
					OrderID: &orderID,
					Amount:  billing.Round2(amount),
					GST:     r.calc.GST(amount),
					Method:  method,
					PaidAt:  when,
				}
				if err := tx.Create(&payment).Error; err != nil {
					return err
				}
			}
			if err := tx.Model(&models.Order{}).Where("id = ?", order.ID).
				Update("status", models.OrderPaid).Error; err != nil {
				return err
			}
			b.Subtotal += amount
			b.SettledOrders = append(b.SettledOrders, order.ID)
		}
		b.Subtotal = billing.Round2(b.Subtotal)
		b.GST = r.calc.GST(b.Subtotal)
		b.GrandTotal = billing.Round2(b.Subtotal + b.GST)

		if err := tx.Model(&table).Update("status", models.StatusAvailable).Error; err != nil {
			return err
		}
		bill = &b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return bill, nil
}
