package main

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	productcontroller "github.com/rasadnik-mimoza/mimoza-api/controllers/product"
	"github.com/rasadnik-mimoza/mimoza-api/middleware"
	"github.com/rasadnik-mimoza/mimoza-api/models"
	"github.com/rasadnik-mimoza/mimoza-api/routes"
	"github.com/rasadnik-mimoza/mimoza-api/store"
)

func main() {
	log.Println("✅ Starting Mimoza API...")

	// Load environment variables
	_ = godotenv.Load()

	// Init store; a missing or unreachable database is not fatal, handlers
	// answer service-unavailable until one is configured.
	st := initStore()

	// Gin setup
	r := gin.Default()
	r.Use(middleware.RequestID())

	// CORS: the site frontend may be served from anywhere
	r.Use(cors.New(cors.Config{
		AllowOriginFunc:  func(origin string) bool { return true },
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Setup routes
	routes.SetupRoutes(r, st)

	// Nightly catalog snapshot at 2 AM, keep 4 days
	if backupDir := os.Getenv("BACKUP_DIR"); backupDir != "" && st != nil {
		go startDailyCatalogBackup(st, backupDir, 4*24*time.Hour, 2, 0)
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStore connects to the document store from DATABASE_URL/DATABASE_NAME.
// Returns nil when the store is unconfigured or unreachable.
func initStore() store.Store {
	uri := os.Getenv("DATABASE_URL")
	name := os.Getenv("DATABASE_NAME")
	if uri == "" || name == "" {
		log.Println("⚠️ DATABASE_URL / DATABASE_NAME not set, running without a database")
		return nil
	}

	st, err := store.Connect(context.Background(), uri, name)
	if err != nil {
		log.Printf("❌ DB connection failed: %v (running without a database)", err)
		return nil
	}
	log.Println("✅ Connected to database")
	return st
}

// startDailyCatalogBackup writes a CSV snapshot of the product catalog daily
// at a fixed hour and removes old snapshots.
func startDailyCatalogBackup(st store.Store, backupDir string, retention time.Duration, hour, min int) {
	for {
		now := time.Now()
		next := time.Date(now.Year(), now.Month(), now.Day(), hour, min, 0, 0, now.Location())
		if !next.After(now) {
			next = next.Add(24 * time.Hour)
		}
		log.Printf("⏳ Next catalog snapshot scheduled at: %s", next.Format("2006-01-02 15:04:05"))
		time.Sleep(next.Sub(now))

		if path, err := writeCatalogSnapshot(st, backupDir); err != nil {
			log.Printf("❌ Failed to snapshot catalog: %v", err)
		} else {
			log.Printf("✅ Catalog snapshot written to %s", path)
		}

		cleanupOldSnapshots(backupDir, retention)
	}
}

// writeCatalogSnapshot dumps the whole product collection to a timestamped
// CSV file in backupDir.
func writeCatalogSnapshot(st store.Store, backupDir string) (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	docs, err := st.Find(ctx, models.CollProducts, store.Query{})
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(backupDir, 0755); err != nil {
		return "", err
	}

	path := filepath.Join(backupDir, "products_"+time.Now().Format("2006-01-02_15-04-05")+".csv")
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := productcontroller.WriteCatalogCSV(f, docs); err != nil {
		return "", err
	}
	return path, f.Sync()
}

// cleanupOldSnapshots removes snapshot files older than retention duration.
func cleanupOldSnapshots(backupDir string, retention time.Duration) {
	entries, err := os.ReadDir(backupDir)
	if err != nil {
		log.Printf("❌ Failed to read snapshot directory: %v", err)
		return
	}

	cutoff := time.Now().Add(-retention)

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(backupDir, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		if info.ModTime().Before(cutoff) {
			if err := os.Remove(path); err != nil {
				log.Printf("❌ Failed to remove old snapshot %s: %v", path, err)
			} else {
				log.Printf("🗑️ Removed old snapshot: %s", path)
			}
		}
	}
}
