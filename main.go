package main

import (
	"encoding/json"
	"log"
	"os"

	"investment-tracker/config"
	"investment-tracker/database"
	"investment-tracker/handlers"
	"investment-tracker/models"

	"github.com/joho/godotenv"
)

const seedBatchSize = 100

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.InitDB()
	config.InitRedis()

	sqlDB, err := config.DB.DB()
	if err != nil {
		log.Fatal("Failed to get database instance: ", err)
	}
	defer sqlDB.Close()

	if err := database.AutoMigrate(config.DB); err != nil {
		log.Fatal("Failed to migrate models:", err)
	}

	if path := os.Getenv("SEED_FILE"); path != "" {
		if err := seedInstruments(path); err != nil {
			log.Fatal("Failed to seed instruments:", err)
		}
	}

	router := handlers.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	router.Run(":" + port)
}

// seedInstruments loads an instrument universe from a JSON file and inserts
// the symbols not already present.
func seedInstruments(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var instruments []models.Instrument
	if err := json.Unmarshal(raw, &instruments); err != nil {
		return err
	}

	if err := database.SeedInstruments(config.DB, instruments, seedBatchSize); err != nil {
		return err
	}
	log.Printf("Seeded %d instruments from %s", len(instruments), path)
	return nil
}
