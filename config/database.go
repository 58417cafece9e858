package config

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	StorefrontDB   *pgxpool.Pool
	StorefrontGorm *gorm.DB
)

// InitDB connects the catalog database. It is optional: without
// STOREFRONT_DB_URL the service serves the embedded seed catalog, so this
// returns false instead of failing.
func InitDB() bool {
	dbURL := os.Getenv("STOREFRONT_DB_URL")
	if dbURL == "" {
		log.Println("⚠️ STOREFRONT_DB_URL not set, serving the embedded catalog")
		return false
	}

	initPgx(dbURL)
	initGORM(dbURL)
	return true
}

// initPgx keeps a raw pool alongside GORM for connectivity probes.
func initPgx(dbURL string) {
	var err error
	StorefrontDB, err = pgxpool.New(context.Background(), dbURL)
	if err != nil {
		log.Fatalf("❌ Unable to connect to storefront database: %v", err)
	}

	if err = StorefrontDB.Ping(context.Background()); err != nil {
		log.Fatalf("❌ Storefront database ping failed: %v", err)
	}

	log.Println("✅ Storefront database connected (pgx)")
}

func initGORM(dbURL string) {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	var err error
	StorefrontGorm, err = gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to storefront database with GORM: %v", err)
	}
	if sqlDB, err := StorefrontGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("✅ Storefront database connected (GORM)")
}

func CloseDB() {
	if StorefrontDB != nil {
		StorefrontDB.Close()
		log.Println("✅ Storefront database connection closed (pgx)")
	}

	if StorefrontGorm != nil {
		sqlDB, _ := StorefrontGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("✅ Storefront database connection closed (GORM)")
		}
	}
}
