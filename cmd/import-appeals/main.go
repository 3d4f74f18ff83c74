package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"tribunal_app_go/config"
	"tribunal_app_go/db"
	"tribunal_app_go/models"
	"tribunal_app_go/services"
)

func main() {
	importedBy := flag.String("by", "cli", "name recorded on the import history row")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: import-appeals [-by name] <workbook.xlsx>\n")
		os.Exit(2)
	}
	path := flag.Arg(0)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	if err := db.Initialize(cfg.DBPath, cfg.Environment); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Run migrations
	if err := db.AutoMigrate(
		&models.Settlement{},
		&models.IssueType{},
		&models.AppealStatus{},
		&models.AppealStage{},
		&models.Appeal{},
		&models.FileNumberCounter{},
		&models.ImportHistory{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed lookup vocabularies so imported statuses validate
	if err := services.SeedLookups(db.DB); err != nil {
		log.Fatalf("Failed to seed lookup tables: %v", err)
	}

	file, err := os.Open(path)
	if err != nil {
		log.Fatalf("Failed to open workbook: %v", err)
	}
	defer file.Close()

	result, err := services.ImportAppealsWorkbook(db.DB, file, filepath.Base(path), *importedBy)
	if err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	fmt.Printf("Processed %d rows: %d imported, %d failed\n",
		result.TotalProcessed, result.SuccessCount, result.FailedCount)
	for _, e := range result.Errors {
		fmt.Printf("  %s\n", e)
	}
	if result.FailedCount > 0 {
		os.Exit(1)
	}
}
