package models

import (
	"time"
)

// Order statuses.
const (
	OrderOpen      = "Open"
	OrderInKitchen = "InKitchen"
	OrderServed    = "Served"
	OrderPaid      = "Paid"
	OrderCancelled = "Cancelled"
)

// Kitchen statuses for individual order lines.
const (
	KitchenPending = "Pending"
	KitchenCooking = "Cooking"
	KitchenReady   = "Ready"
	KitchenServed  = "Served"
)

// Payment methods.
const (
	MethodCash = "Cash"
	MethodCard = "Card"
	MethodUPI  = "UPI"
)

// DiningTable is a restaurant table. "Table" collides with too much SQL
// vocabulary to be a good Go type name.
type DiningTable struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Number int    `gorm:"unique;not null" json:"number"`
	Status string `gorm:"size:20;not null;default:Available" json:"status"`
}

func (DiningTable) TableName() string { return "tables" }

type MenuItem struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"size:100;not null" json:"name"`
	Category string  `gorm:"size:50;not null" json:"category"`
	Price    float64 `gorm:"not null" json:"price"`
	Active   bool    `gorm:"not null;default:true" json:"active"`
}

// Order is either a table order (TableID set) or a room-guest order
// (CustomerID set); both may be set, neither is required by the schema.
type Order struct {
	ID         uint          `gorm:"primaryKey" json:"id"`
	TableID    *uint         `json:"table_id"`
	Table      *DiningTable  `gorm:"foreignKey:TableID" json:"table,omitempty"`
	CustomerID *uint         `json:"customer_id"`
	Customer   *Customer     `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Status     string        `gorm:"size:20;not null" json:"status"`
	CreatedAt  time.Time     `json:"created_at"`
	Details    []OrderDetail `gorm:"foreignKey:OrderID" json:"details"`
}

// OrderDetail snapshots the menu price at insert time. Changing the menu
// later must never alter historical order totals.
type OrderDetail struct {
	ID            uint     `gorm:"primaryKey" json:"id"`
	OrderID       uint     `gorm:"not null" json:"order_id"`
	ItemID        uint     `gorm:"not null" json:"item_id"`
	Item          MenuItem `gorm:"foreignKey:ItemID" json:"item"`
	Qty           int      `gorm:"not null" json:"qty"`
	Price         float64  `gorm:"not null" json:"price"`
	KitchenStatus string   `gorm:"size:20;not null;default:Pending" json:"kitchen_status"`
}

// Payment records one settlement event, against either an order or a
// reservation (room charge).
type Payment struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	OrderID       *uint     `json:"order_id"`
	ReservationID *uint     `json:"reservation_id"`
	Amount        float64   `gorm:"not null" json:"amount"`
	GST           float64   `gorm:"not null" json:"gst"`
	Method        string    `gorm:"size:10;not null" json:"method"`
	PaidAt        time.Time `gorm:"not null" json:"paid_at"`
}
