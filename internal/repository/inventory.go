package repository

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/shoab414/Hotel-Management/internal/billing"
	"github.com/shoab414/Hotel-Management/internal/models"
)

func (r *Repository) ListInventory() ([]models.Inventory, error) {
	var items []models.Inventory
	err := r.db.Preload("Supplier").Order("name").Find(&items).Error
	return items, err
}

func (r *Repository) LowStockItems() ([]models.Inventory, error) {
	var items []models.Inventory
	err := r.db.Preload("Supplier").Where("qty <= threshold").Order("name").Find(&items).Error
	return items, err
}

// CreateInventoryItem inserts a stock item, maintaining the
// total_price = qty * price invariant.
func (r *Repository) CreateInventoryItem(item *models.Inventory) error {
	if item.Name == "" || item.Unit == "" {
		return fmt.Errorf("%w: name and unit are required", ErrValidation)
	}
	if item.Qty < 0 || item.Price < 0 {
		return fmt.Errorf("%w: quantity and price must be non-negative", ErrValidation)
	}
	item.TotalPrice = item.Qty * item.Price
	return r.db.Create(item).Error
}

// UpdateInventoryItem rewrites a stock item and recomputes total_price.
func (r *Repository) UpdateInventoryItem(item *models.Inventory) error {
	if item.Qty < 0 || item.Price < 0 {
		return fmt.Errorf("%w: quantity and price must be non-negative", ErrValidation)
	}
	res := r.db.Model(&models.Inventory{}).Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"name":        item.Name,
			"qty":         item.Qty,
			"unit":        item.Unit,
			"price":       item.Price,
			"total_price": item.Qty * item.Price,
			"threshold":   item.Threshold,
			"supplier_id": item.SupplierID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteInventoryItem(id uint) error {
	res := r.db.Delete(&models.Inventory{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// RecordConsumption appends a ledger row, decrements stock, and recomputes
// total_price in a single transaction. The consumed quantity must be
// positive and must not exceed the current stock.
func (r *Repository) RecordConsumption(inventoryID uint, qty float64, date, notes string) (*models.InventoryConsumption, error) {
	if qty <= 0 {
		return nil, fmt.Errorf("%w: consumed quantity must be positive", ErrValidation)
	}
	if _, err := time.Parse(billing.DateLayout, date); err != nil {
		return nil, fmt.Errorf("%w: consumption date must be a YYYY-MM-DD date", ErrValidation)
	}
	var record *models.InventoryConsumption
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var item models.Inventory
		if err := tx.First(&item, inventoryID).Error; err != nil {
			return notFoundOr(err)
		}
		if qty > item.Qty {
			return fmt.Errorf("%w: %.2f %s requested, %.2f %s in stock",
				ErrInsufficientStock, qty, item.Unit, item.Qty, item.Unit)
		}
		rec := models.InventoryConsumption{
			InventoryID:     inventoryID,
			QtyConsumed:     qty,
			ConsumptionDate: date,
			Price:           item.Price,
			TotalValue:      billing.Round2(qty * item.Price),
			Notes:           notes,
			CreatedAt:       time.Now(),
		}
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}
		newQty := item.Qty - qty
		if err := tx.Model(&item).Updates(map[string]interface{}{
			"qty":         newQty,
			"total_price": newQty * item.Price,
		}).Error; err != nil {
			return err
		}
		record = &rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	return record, nil
}

// DeleteConsumption removes a ledger row without restoring the consumed
// quantity. That asymmetry matches the system this replaces; see DESIGN.md
// before changing it.
func (r *Repository) DeleteConsumption(id uint) error {
	res := r.db.Delete(&models.InventoryConsumption{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) ListConsumption(from, to string) ([]models.InventoryConsumption, error) {
	q := r.db.Preload("Inventory").Order("consumption_date desc, id desc")
	if from != "" {
		q = q.Where("consumption_date >= ?", from)
	}
	if to != "" {
		q = q.Where("consumption_date <= ?", to)
	}
	var records []models.InventoryConsumption
	err := q.Find(&records).Error
	return records, err
}

// ConsumptionSummary aggregates the ledger per item over a date range.
type ConsumptionSummary struct {
	Name       string  `json:"name"`
	Unit       string  `json:"unit"`
	TotalQty   float64 `json:"total_qty"`
	TotalValue float64 `json:"total_value"`
}

func (r *Repository) SummarizeConsumption(from, to string) ([]ConsumptionSummary, error) {
	q := r.db.Table("inventory_consumption ic").
		Select("i.name AS name, i.unit AS unit, SUM(ic.qty_consumed) AS total_qty, SUM(ic.total_value) AS total_value").
		Joins("JOIN inventory i ON ic.inventory_id = i.id").
		Group("i.name, i.unit").
		Order("i.name")
	if from != "" {
		q = q.Where("ic.consumption_date >= ?", from)
	}
	if to != "" {
		q = q.Where("ic.consumption_date <= ?", to)
	}
	var rows []ConsumptionSummary
	err := q.Scan(&rows).Error
	return rows, err
}

func (r *Repository) ListSuppliers() ([]models.Supplier, error) {
	var suppliers []models.Supplier
	err := r.db.Order("name").Find(&suppliers).Error
	return suppliers, err
}

func (r *Repository) CreateSupplier(supplier *models.Supplier) error {
	if supplier.Name == "" {
		return fmt.Errorf("%w: supplier name is required", ErrValidation)
	}
	return r.db.Create(supplier).Error
}

func (r *Repository) UpdateSupplier(supplier *models.Supplier) error {
	res := r.db.Model(&models.Supplier{}).Where("id = ?", supplier.ID).
		Updates(map[string]interface{}{
			"name":  supplier.Name,
			"phone": supplier.Phone,
			"email": supplier.Email,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) DeleteSupplier(id uint) error {
	res := r.db.Delete(&models.Supplier{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
