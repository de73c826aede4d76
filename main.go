package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/yogendra-08/vastraverse-api/checkout"
	orderControllers "github.com/yogendra-08/vastraverse-api/controllers/order"
	"github.com/yogendra-08/vastraverse-api/models"
	"github.com/yogendra-08/vastraverse-api/routes"
	"github.com/yogendra-08/vastraverse-api/store"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	log.Println("Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init DB
	db := initDatabase()

	// Auto-migrate all tables
	if err := db.AutoMigrate(
		&models.User{},
		&models.GuestUser{},
		&models.Product{},
		&models.Category{},
		&models.Admin{},
		&models.Order{},
		&models.OrderItem{},
		&models.Banner{},
	); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	// Redis backs both the product list cache and the cart/wishlist
	// snapshots. Without it, snapshots fall back to process memory.
	rdb := initRedis()
	var persister store.Persister
	if rdb != nil {
		persister = store.NewRedisPersister(rdb)
	} else {
		log.Println("REDIS_ADDR not set, cart and wishlist state is in-memory only")
		persister = store.NewMemoryPersister()
	}
	stores := store.NewManager(persister)

	// Gin setup
	r := gin.Default()

	// Allow large file uploads (1 GB)
	r.MaxMultipartMemory = 1 << 30

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-KEY"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve uploaded images
	uploadsDir := os.Getenv("UPLOAD_DIR")
	if uploadsDir == "" {
		uploadsDir = "./uploads"
	}
	r.Static("/uploads", uploadsDir)

	// Static product feed served alongside the DB-backed catalog
	productFeedPath := os.Getenv("PRODUCT_FEED")
	if productFeedPath == "" {
		productFeedPath = "./assets/products.json"
	}

	// Setup routes
	routes.SetupRoutes(r, db, rdb, stores, productFeedPath, statusStepFromEnv())
	defer orderControllers.StopAllPlaybacks()

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initDatabase sets up the GORM DB connection
func initDatabase() *gorm.DB {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
		if err != nil {
			log.Fatalf("DB connection failed: %v", err)
		}
		return db
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect DB: %v", err)
	}
	return db
}

// initRedis connects to Redis when REDIS_ADDR is set, otherwise returns nil.
func initRedis() *redis.Client {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		return nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Printf("Redis unreachable at %s: %v", addr, err)
		return nil
	}
	return rdb
}

// statusStepFromEnv reads the delay between order status transitions,
// e.g. ORDER_STATUS_STEP=10s.
func statusStepFromEnv() time.Duration {
	if v := os.Getenv("ORDER_STATUS_STEP"); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
		log.Printf("Invalid ORDER_STATUS_STEP %q, using default", v)
	}
	return checkout.DefaultStatusStep
}
