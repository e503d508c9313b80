package repository

import (
	"fmt"

	"github.com/shoab414/Hotel-Management/internal/models"
)

func (r *Repository) ListMenuItems(category string, activeOnly bool) ([]models.MenuItem, error) {
	q := r.db.Order("category, name")
	if category != "" {
		q = q.Where("category = ?", category)
	}
	if activeOnly {
		q = q.Where("active = ?", true)
	}
	var items []models.MenuItem
	err := q.Find(&items).Error
	return items, err
}

func (r *Repository) MenuCategories() ([]string, error) {
	var categories []string
	err := r.db.Model(&models.MenuItem{}).Distinct("category").Order("category").
		Pluck("category", &categories).Error
	return categories, err
}

func (r *Repository) CreateMenuItem(item *models.MenuItem) error {
	if item.Name == "" || item.Category == "" {
		return fmt.Errorf("%w: name and category are required", ErrValidation)
	}
	if item.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrValidation)
	}
	return r.db.Create(item).Error
}

// UpdateMenuItem changes the live menu. Historical order lines keep their
// snapshot prices, so this never rewrites old totals.
func (r *Repository) UpdateMenuItem(item *models.MenuItem) error {
	if item.Price < 0 {
		return fmt.Errorf("%w: price must be non-negative", ErrValidation)
	}
	res := r.db.Model(&models.MenuItem{}).Where("id = ?", item.ID).
		Updates(map[string]interface{}{
			"name":     item.Name,
			"category": item.Category,
			"price":    item.Price,
			"active":   item.Active,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteMenuItem removes an item only when no order line references it.
// The legacy system cascaded the delete into OrderDetails, silently
// rewriting historical bills; referenced items must be deactivated
// instead.
func (r *Repository) DeleteMenuItem(id uint) error {
	var refs int64
	if err := r.db.Model(&models.OrderDetail{}).Where("item_id = ?", id).Count(&refs).Error; err != nil {
		return err
	}
	if refs > 0 {
		return ErrMenuItemInUse
	}
	res := r.db.Delete(&models.MenuItem{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *Repository) SetMenuItemActive(id uint, active bool) error {
	res := r.db.Model(&models.MenuItem{}).Where("id = ?", id).Update("active", active)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
