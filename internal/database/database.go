package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Skotchmaster/sunnyday_shop/internal/config"
	"github.com/Skotchmaster/sunnyday_shop/internal/models"
)

func configurePool(sqlDB *sql.DB) {
	const (
		maxOpenConns    = 20
		maxIdleConns    = 10
		connMaxLifetime = 30 * time.Minute
		connMaxIdleTime = 5 * time.Minute
	)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)
}

// Open connects to postgres when DATABASE_URL is set and falls back to a
// local sqlite file otherwise.
func Open(ctx context.Context, cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		NowFunc: func() time.Time { return time.Now().UTC() },
	}

	if cfg.DatabaseURL != "" {
		db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("postgres open: %w", err)
		}

		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("sql.DB: %w", err)
		}
		configurePool(sqlDB)

		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		if err := sqlDB.PingContext(pingCtx); err != nil {
			return nil, fmt.Errorf("ping: %w", err)
		}
		return db, nil
	}

	db, err := gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("sqlite open: %w", err)
	}
	return db, nil
}

func allModels() []any {
	return []any{
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Address{},
	}
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(allModels()...); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// Reset drops every table, migrates from scratch and loads the sample
// catalog. Development mode only.
func Reset(db *gorm.DB) error {
	if err := db.Migrator().DropTable(allModels()...); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}
	if err := Migrate(db); err != nil {
		return err
	}
	products := SampleProducts()
	if err := db.Create(&products).Error; err != nil {
		return fmt.Errorf("seed products: %w", err)
	}
	return nil
}

func SampleProducts() []models.Product {
	return []models.Product{
		{Name: "Sunny Day T-Shirt", Description: "Comfortable cotton t-shirt", Price: 25.99, Image: "/images/products/tshirt.jpg", Category: "clothing", Stock: 50},
		{Name: "Beach Hat", Description: "Stylish beach hat", Price: 19.99, Image: "/images/products/hat.jpg", Category: "accessories", Stock: 30},
		{Name: "Sunglasses", Description: "UV protection sunglasses", Price: 45.99, Image: "/images/products/sunglasses.jpg", Category: "accessories", Stock: 25},
		{Name: "Beach Towel", Description: "Soft beach towel", Price: 29.99, Image: "/images/products/towel.jpg", Category: "home", Stock: 40},
		{Name: "Flip Flops", Description: "Comfortable flip flops", Price: 34.99, Image: "/images/products/flipflops.jpg", Category: "footwear", Stock: 35},
	}
}
