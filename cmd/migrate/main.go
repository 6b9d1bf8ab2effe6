package main

import (
	"log"
	"os"

	"tech-innovations-be/internal/model"
	"tech-innovations-be/pkg/database"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
)

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Creating innovations table...")

	if err := db.AutoMigrate(&model.Innovation{}); err != nil {
		log.Fatalf("Error: AutoMigrate failed: %v", err)
	}
	color.Green("Table \"innovations\" is up to date")

	// Supporting read indexes. The category index comes from the model tag;
	// the composite covers the featured section and the year/rating sorts.
	indexSQL := []string{
		`CREATE INDEX IF NOT EXISTS idx_innovations_featured_rating_year ON innovations (featured, rating DESC, year DESC);`,
	}
	for _, sql := range indexSQL {
		if err := db.Exec(sql).Error; err != nil {
			log.Printf("Warn: Failed to create index: %v", err)
		}
	}
	color.Green("Indexes are up to date")

	color.Green("Database setup completed")
}
