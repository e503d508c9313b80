package config

import (
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Billing  BillingConfig
	Defaults DefaultsConfig
}

type ServerConfig struct {
	Port               string
	Env                string
	JWTSecret          string
	JWTExpirationHours int
}

type DatabaseConfig struct {
	Driver   string // "sqlite" (default) or "mysql"
	Path     string // sqlite file path
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	URL      string
}

type BillingConfig struct {
	// GSTRate applies to every billing path. The legacy system used 18%
	// on invoices and 5% in the table checkout dialog; one rate is used
	// everywhere here.
	GSTRate    float64
	InvoiceDir string
}

type DefaultsConfig struct {
	AdminPassword   string
	ManagerPassword string
	StaffPassword   string
}

// Load reads .env (if present) plus the process environment into a Config.
func Load() *Config {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		zap.L().Info("no .env file, using environment variables only")
	}
	viper.AutomaticEnv()

	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")
	viper.SetDefault("JWT_SECRET", "change-me")
	viper.SetDefault("JWT_EXPIRATION_HOURS", 24)
	viper.SetDefault("DB_DRIVER", "sqlite")
	viper.SetDefault("DB_PATH", "hotel.db")
	viper.SetDefault("GST_RATE", 0.18)
	viper.SetDefault("INVOICE_DIR", ".")
	viper.SetDefault("ADMIN_PASSWORD", "admin123")
	viper.SetDefault("MANAGER_PASSWORD", "manager123")
	viper.SetDefault("STAFF_PASSWORD", "staff123")

	cfg := &Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			Env:                viper.GetString("SERVER_ENV"),
			JWTSecret:          viper.GetString("JWT_SECRET"),
			JWTExpirationHours: viper.GetInt("JWT_EXPIRATION_HOURS"),
		},
		Database: DatabaseConfig{
			Driver:   viper.GetString("DB_DRIVER"),
			Path:     viper.GetString("DB_PATH"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			URL:      viper.GetString("DATABASE_URL"),
		},
		Billing: BillingConfig{
			GSTRate:    viper.GetFloat64("GST_RATE"),
			InvoiceDir: viper.GetString("INVOICE_DIR"),
		},
		Defaults: DefaultsConfig{
			AdminPassword:   viper.GetString("ADMIN_PASSWORD"),
			ManagerPassword: viper.GetString("MANAGER_PASSWORD"),
			StaffPassword:   viper.GetString("STAFF_PASSWORD"),
		},
	}

	zap.L().Info("configuration loaded",
		zap.String("port", cfg.Server.Port),
		zap.String("env", cfg.Server.Env),
		zap.String("db_driver", cfg.Database.Driver),
		zap.Float64("gst_rate", cfg.Billing.GSTRate),
	)
	return cfg
}
