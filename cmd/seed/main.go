package main

import (
	"context"
	"encoding/json"
	"log"
	"os"

	"tech-innovations-be/internal/model"
	"tech-innovations-be/internal/repository/implementation"
	"tech-innovations-be/pkg/database"

	"github.com/fatih/color"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// seedInnovation mirrors the JSON records in data/innovations.json.
type seedInnovation struct {
	Id          int      `json:"id" validate:"required,gt=0"`
	Title       string   `json:"title" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Impact      string   `json:"impact" validate:"required"`
	Year        int      `json:"year" validate:"required,gte=1900"`
	Company     string   `json:"company" validate:"required"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=10"`
	Tags        []string `json:"tags" validate:"required,min=1"`
	Image       *string  `json:"image"`
	Featured    bool     `json:"featured"`
}

func main() {
	// Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	dataPath := os.Getenv("DATA_FILE_PATH")
	if dataPath == "" {
		dataPath = "data/innovations.json"
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("Starting database seeding...")

	raw, err := os.ReadFile(dataPath)
	if err != nil {
		log.Fatalf("Error: Failed to read %s: %v", dataPath, err)
	}

	var seeds []seedInnovation
	if err := json.Unmarshal(raw, &seeds); err != nil {
		log.Fatalf("Error: Failed to parse %s: %v", dataPath, err)
	}
	if len(seeds) == 0 {
		log.Fatal("Error: No innovations data found")
	}
	color.Cyan("Found %d innovations to seed", len(seeds))

	validate := validator.New()
	for _, s := range seeds {
		if err := validate.Struct(s); err != nil {
			log.Fatalf("Error: Invalid seed record id=%d: %v", s.Id, err)
		}
	}

	// Bulk upsert keyed by id, refreshing every attribute of existing rows.
	for _, s := range seeds {
		m := model.Innovation{
			Id:          s.Id,
			Title:       s.Title,
			Category:    s.Category,
			Description: s.Description,
			Impact:      s.Impact,
			Year:        s.Year,
			Company:     s.Company,
			Rating:      s.Rating,
			Tags:        datatypes.NewJSONSlice(s.Tags),
			Image:       s.Image,
			Featured:    s.Featured,
		}

		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"title", "category", "description", "impact", "year",
				"company", "rating", "tags", "image", "featured", "updated_at",
			}),
		}).Create(&m).Error
		if err != nil {
			log.Fatalf("Error: Failed to upsert '%s': %v", s.Title, err)
		}
		color.Green("Upserted: %s", s.Title)
	}

	// Verify the data
	repo := implementation.NewInnovationRepository(db)
	count, err := repo.Count(context.Background())
	if err != nil {
		log.Fatalf("Error: Failed to count records: %v", err)
	}
	color.Green("Seeding completed, total records in database: %d", count)
}
