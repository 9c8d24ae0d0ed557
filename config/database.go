package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Nautica-Marine/nautica-store-backend/models"
	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// StoreGorm is the primary handle used by all stores.
	StoreGorm *gorm.DB

	// StorePool is a pgx pool kept beside GORM for raw analytics SQL.
	StorePool *pgxpool.Pool
)

func InitDB() {
	initGORM()
	initPgx()
	autoMigrate()
}

func initGORM() {
	gormLogger := logger.Default.LogMode(logger.Info)
	if os.Getenv("APP_ENV") == "production" {
		gormLogger = logger.Default.LogMode(logger.Silent)
	}

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = fmt.Sprintf(
			"host=%s user=%s password=%s dbname=nautica_store port=%s sslmode=disable TimeZone=UTC",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("DATABASE_URL not set, using local GORM default")
	}

	var err error
	StoreGorm, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:  gormLogger,
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		log.Fatalf("failed to connect to database with GORM: %v", err)
	}
	if sqlDB, err := StoreGorm.DB(); err == nil {
		sqlDB.SetMaxOpenConns(5)
		sqlDB.SetMaxIdleConns(2)
		sqlDB.SetConnMaxLifetime(5 * time.Minute)
		sqlDB.SetConnMaxIdleTime(2 * time.Minute)
	}
	log.Println("store database connected (GORM)")
}

func initPgx() {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		url = fmt.Sprintf(
			"postgres://%s:%s@%s:%s/nautica_store?sslmode=disable",
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_PORT", "5432"),
		)
		log.Println("DATABASE_URL not set, using local pgx default")
	}

	var err error
	StorePool, err = pgxpool.New(context.Background(), url)
	if err != nil {
		log.Fatalf("unable to connect to database: %v", err)
	}
	if err = StorePool.Ping(context.Background()); err != nil {
		log.Fatalf("database ping failed: %v", err)
	}
	log.Println("store database connected (pgx)")
}

func autoMigrate() {
	err := StoreGorm.AutoMigrate(
		&models.Product{},
		&models.Brand{},
		&models.Order{},
		&models.Query{},
		&models.ModelSpec{},
		&models.Setting{},
		&models.AdminUser{},
		&models.ActivityLog{},
		&models.PageView{},
	)
	if err != nil {
		log.Fatalf("auto-migration failed: %v", err)
	}
	log.Println("database tables migrated")
}

func CloseDB() {
	if StorePool != nil {
		StorePool.Close()
		log.Println("store database connection closed (pgx)")
	}
	if StoreGorm != nil {
		sqlDB, _ := StoreGorm.DB()
		if sqlDB != nil {
			sqlDB.Close()
			log.Println("store database connection closed (GORM)")
		}
	}
}

// WithTimeout returns a context with a 10s timeout covering one store round trip.
func WithTimeout() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

func WithCustomTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
