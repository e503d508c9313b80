package database

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/shoab414/Hotel-Management/config"
	"github.com/shoab414/Hotel-Management/internal/models"
)

// Connect opens the database described by cfg and returns the handle.
// sqlite (a single local file) is the default; mysql is selectable for
// installations that already run one.
func Connect(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	var db *gorm.DB
	var err error
	switch cfg.Driver {
	case "mysql":
		dsn := cfg.URL
		if dsn == "" {
			dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
				cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name)
		}
		db, err = gorm.Open(mysql.Open(dsn), gormCfg)
	default:
		db, err = gorm.Open(sqlite.Open(cfg.Path), gormCfg)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("get database instance: %w", err)
	}
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	zap.L().Info("database connection established", zap.String("driver", cfg.Driver))
	return db, nil
}

// Migrate creates or evolves the schema. AutoMigrate only adds what is
// missing, so re-running it against an existing database is a no-op.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Room{},
		&models.Reservation{},
		&models.DiningTable{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderDetail{},
		&models.Payment{},
		&models.Supplier{},
		&models.Inventory{},
		&models.InventoryConsumption{},
	)
}
