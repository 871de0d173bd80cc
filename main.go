package main

import (
	"context"
	"log"

	"cleanser/adapters/excel"
	"cleanser/internal/config"
	"cleanser/internal/dataset"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store := excel.NewStore(appConfig.Processing.SheetName).WithLogger(appConfig.Logger())
	processor := dataset.NewProcessorWithConfig(store, appConfig)

	result, err := processor.Process(context.Background(), appConfig.Paths.ExcelFile)
	if err != nil {
		log.Fatalf("Failed to process %s: %v", appConfig.Paths.ExcelFile, err)
	}

	log.Printf("Normalized data saved to: %s", result.FullOutput)
	log.Printf("Filtered data saved to: %s", result.ReducedOutput)
}
