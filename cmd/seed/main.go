package main

import (
	"context"
	"fmt"

	"github.com/PyedPyper01/Afterlife-1/internal/config"
	"github.com/PyedPyper01/Afterlife-1/internal/repository/mongo"
	"github.com/PyedPyper01/Afterlife-1/internal/seed"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	fmt.Printf("Connecting to MongoDB at %s...\n", cfg.Mongo.URL)

	db, err := mongo.NewDB(context.Background(), cfg.Mongo)
	if err != nil {
		panic(fmt.Sprintf("Failed to connect to database: %v", err))
	}
	defer db.Close()

	if err := db.EnsureIndexes(context.Background()); err != nil {
		panic(fmt.Sprintf("Failed to ensure indexes: %v", err))
	}

	seeder := seed.New(
		mongo.NewGuidanceRepository(db),
		mongo.NewSupportRepository(db),
		mongo.NewSupplierRepository(db),
	)
	if err := seeder.Run(context.Background()); err != nil {
		panic(fmt.Sprintf("Seeding failed: %v", err))
	}

	fmt.Println("Seeding complete")
}
