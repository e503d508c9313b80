package database

import (
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/shoab414/Hotel-Management/config"
	"github.com/shoab414/Hotel-Management/internal/models"
	"github.com/shoab414/Hotel-Management/internal/utils"
)

// Seed populates default accounts and sample master data on first run.
// Every block is guarded so re-running against a populated database
// changes nothing.
func Seed(db *gorm.DB, defaults *config.DefaultsConfig) error {
	if err := seedUsers(db, defaults); err != nil {
		return err
	}
	seedRooms(db)
	seedTables(db)
	seedMenu(db)
	seedSuppliers(db)
	return nil
}

func seedUsers(db *gorm.DB, defaults *config.DefaultsConfig) error {
	var count int64
	db.Model(&models.User{}).Count(&count)
	if count > 0 {
		return nil
	}

	accounts := []struct {
		username string
		password string
		role     string
	}{
		{"admin", defaults.AdminPassword, models.RoleAdmin},
		{"manager", defaults.ManagerPassword, models.RoleManager},
		{"staff", defaults.StaffPassword, models.RoleStaff},
	}
	for _, a := range accounts {
		salt, err := utils.GenerateSalt()
		if err != nil {
			return err
		}
		hash, err := utils.HashPassword(a.password, salt)
		if err != nil {
			return err
		}
		user := models.User{
			Username:     a.username,
			PasswordHash: hash,
			Salt:         salt,
			Role:         a.role,
		}
		if err := db.Create(&user).Error; err != nil {
			return err
		}
	}
	zap.L().Info("default users seeded")
	return nil
}

func seedRooms(db *gorm.DB) {
	rooms := []models.Room{
		{Number: "101", Category: models.CategoryStandard, Status: models.StatusAvailable, Rate: 2500},
		{Number: "102", Category: models.CategoryStandard, Status: models.StatusAvailable, Rate: 2500},
		{Number: "103", Category: models.CategoryStandard, Status: models.StatusAvailable, Rate: 2500},
		{Number: "201", Category: models.CategoryDeluxe, Status: models.StatusAvailable, Rate: 4000},
		{Number: "202", Category: models.CategoryDeluxe, Status: models.StatusAvailable, Rate: 4000},
		{Number: "301", Category: models.CategorySuite, Status: models.StatusAvailable, Rate: 7500},
	}
	for _, r := range rooms {
		var existing models.Room
		if err := db.Where("number = ?", r.Number).First(&existing).Error; errors.Is(err, gorm.ErrRecordNotFound) {
			db.Create(&r)
		}
	}
}

func seedTables(db *gorm.DB) {
	for n := 1; n <= 8; n++ {
		var existing models.DiningTable
		if err := db.Where("number = ?", n).First(&existing).Error; errors.Is(err, gorm.ErrRecordNotFound) {
			db.Create(&models.DiningTable{Number: n, Status: models.StatusAvailable})
		}
	}
}

func seedMenu(db *gorm.DB) {
	var count int64
	db.Model(&models.MenuItem{}).Count(&count)
	if count > 0 {
		return
	}
	items := []models.MenuItem{
		{Name: "Masala Dosa", Category: "Breakfast", Price: 120, Active: true},
		{Name: "Idli Sambar", Category: "Breakfast", Price: 80, Active: true},
		{Name: "Paneer Butter Masala", Category: "Main Course", Price: 220, Active: true},
		{Name: "Dal Tadka", Category: "Main Course", Price: 160, Active: true},
		{Name: "Chicken Biryani", Category: "Main Course", Price: 320, Active: true},
		{Name: "Butter Naan", Category: "Breads", Price: 45, Active: true},
		{Name: "Gulab Jamun", Category: "Desserts", Price: 90, Active: true},
		{Name: "Masala Chai", Category: "Beverages", Price: 30, Active: true},
		{Name: "Fresh Lime Soda", Category: "Beverages", Price: 60, Active: true},
	}
	db.Create(&items)
}

func seedSuppliers(db *gorm.DB) {
	var count int64
	db.Model(&models.Supplier{}).Count(&count)
	if count > 0 {
		return
	}
	suppliers := []models.Supplier{
		{Name: "Fresh Farms Produce", Phone: "9800011001", Email: "orders@freshfarms.example"},
		{Name: "Metro Dairy", Phone: "9800011002", Email: "sales@metrodairy.example"},
		{Name: "Spice Traders Co", Phone: "9800011003", Email: "contact@spicetraders.example"},
	}
	db.Create(&suppliers)

	inventory := []models.Inventory{
		{Name: "Basmati Rice", Qty: 50, Unit: "kg", Threshold: 10, SupplierID: &suppliers[0].ID, Price: 95},
		{Name: "Paneer", Qty: 12, Unit: "kg", Threshold: 3, SupplierID: &suppliers[1].ID, Price: 340},
		{Name: "Cooking Oil", Qty: 30, Unit: "l", Threshold: 8, SupplierID: &suppliers[2].ID, Price: 140},
	}
	for i := range inventory {
		inventory[i].TotalPrice = inventory[i].Qty * inventory[i].Price
	}
	db.Create(&inventory)
}
