package models

import (
	"time"
)

type Supplier struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Name  string `gorm:"size:100;not null" json:"name"`
	Phone string `gorm:"size:15" json:"phone"`
	Email string `gorm:"size:100" json:"email"`
}

// Inventory carries a denormalized TotalPrice that must equal Qty*Price
// after every mutation; the repository recomputes it on each write.
type Inventory struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	Name       string    `gorm:"size:100;not null" json:"name"`
	Qty        float64   `gorm:"not null" json:"qty"`
	Unit       string    `gorm:"size:20;not null" json:"unit"`
	Threshold  float64   `gorm:"not null;default:5" json:"threshold"`
	SupplierID *uint     `json:"supplier_id"`
	Supplier   *Supplier `gorm:"foreignKey:SupplierID" json:"supplier,omitempty"`
	Price      float64   `gorm:"not null;default:0" json:"price"`
	TotalPrice float64   `gorm:"not null;default:0" json:"total_price"`
}

func (Inventory) TableName() string { return "inventory" }

// InventoryConsumption is an append-only ledger. Inserting a row decrements
// the matching Inventory.Qty; deleting one does not restore it.
type InventoryConsumption struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	InventoryID     uint      `gorm:"not null" json:"inventory_id"`
	Inventory       Inventory `gorm:"foreignKey:InventoryID" json:"inventory"`
	QtyConsumed     float64   `gorm:"not null" json:"qty_consumed"`
	ConsumptionDate string    `gorm:"size:10;not null" json:"consumption_date"`
	Price           float64   `gorm:"not null" json:"price"`
	TotalValue      float64   `gorm:"not null" json:"total_value"`
	Notes           string    `gorm:"type:text" json:"notes"`
	CreatedAt       time.Time `json:"created_at"`
}

func (InventoryConsumption) TableName() string { return "inventory_consumption" }
