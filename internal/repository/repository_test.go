package repository

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shoab414/Hotel-Management/internal/models"
	"github.com/shoab414/Hotel-Management/pkg/database"
)

// newTestRepo opens a private in-memory database per test. A single
// connection keeps sqlite's :memory: semantics sane under gorm's pool.
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db handle: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(db, 0.18)
}

func createCustomer(t *testing.T, r *Repository, name string) *models.Customer {
	t.Helper()
	c := models.Customer{Name: name, Phone: "9999900000"}
	if err := r.CreateCustomer(&c); err != nil {
		t.Fatalf("create customer: %v", err)
	}
	return &c
}

func createRoom(t *testing.T, r *Repository, number string, rate float64) *models.Room {
	t.Helper()
	room := models.Room{Number: number, Category: models.CategoryStandard, Rate: rate}
	if err := r.CreateRoom(&room); err != nil {
		t.Fatalf("create room: %v", err)
	}
	return &room
}

func createTable(t *testing.T, r *Repository, number int) *models.DiningTable {
	t.Helper()
	table, err := r.CreateTable(number)
	if err != nil {
		t.Fatalf("create table: %v", err)
	}
	return table
}

func createMenuItem(t *testing.T, r *Repository, name string, price float64) *models.MenuItem {
	t.Helper()
	item := models.MenuItem{Name: name, Category: "Main Course", Price: price, Active: true}
	if err := r.CreateMenuItem(&item); err != nil {
		t.Fatalf("create menu item: %v", err)
	}
	return &item
}

func getRoom(t *testing.T, r *Repository, id uint) *models.Room {
	t.Helper()
	var room models.Room
	if err := r.db.First(&room, id).Error; err != nil {
		t.Fatalf("load room %d: %v", id, err)
	}
	return &room
}

func getTable(t *testing.T, r *Repository, id uint) *models.DiningTable {
	t.Helper()
	var table models.DiningTable
	if err := r.db.First(&table, id).Error; err != nil {
		t.Fatalf("load table %d: %v", id, err)
	}
	return &table
}

func countPayments(t *testing.T, r *Repository) int64 {
	t.Helper()
	var n int64
	if err := r.db.Model(&models.Payment{}).Count(&n).Error; err != nil {
		t.Fatalf("count payments: %v", err)
	}
	return n
}
