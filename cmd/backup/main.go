package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/rajdesai17/finplay/internal/config"
	"github.com/rajdesai17/finplay/internal/database"
	"github.com/rajdesai17/finplay/internal/repository"
	"github.com/rajdesai17/finplay/internal/service"
)

func main() {
	// Define subcommands
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)

	// Export flags
	exportOutput := exportCmd.String("output", "", "Output file path (default: backup_YYYYMMDD_HHMMSS.json)")

	// Import flags
	importInput := importCmd.String("input", "", "Input file path (required)")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	if err := db.ApplySchema(); err != nil {
		log.Fatalf("Failed to apply schema: %v", err)
	}

	// Auto-dismiss is irrelevant for a one-shot CLI
	progressRepo := repository.NewProgressRepository(db)
	runRepo := repository.NewRunRepository(db)
	progressionService := service.NewProgressionService(progressRepo, 0)
	backupService := service.NewBackupService(progressionService, runRepo)

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		handleExport(backupService, *exportOutput)

	case "import":
		importCmd.Parse(os.Args[2:])
		if *importInput == "" {
			fmt.Println("Error: -input flag is required")
			importCmd.PrintDefaults()
			os.Exit(1)
		}
		handleImport(backupService, *importInput)

	default:
		printUsage()
		os.Exit(1)
	}
}

func handleExport(backupService *service.BackupService, outputPath string) {
	// Generate default filename if not provided
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = fmt.Sprintf("backup_%s.json", timestamp)
	}

	// Ensure directory exists
	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatalf("Failed to create output directory: %v", err)
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		log.Fatalf("Failed to create output file: %v", err)
	}
	defer f.Close()

	log.Printf("Exporting progress to: %s", outputPath)
	if err := backupService.ExportToWriter(f); err != nil {
		log.Fatalf("Export failed: %v", err)
	}

	log.Println("Export complete!")
}

func handleImport(backupService *service.BackupService, inputPath string) {
	f, err := os.Open(inputPath)
	if err != nil {
		log.Fatalf("Failed to open input file: %v", err)
	}
	defer f.Close()

	fmt.Print("WARNING: This replaces the saved progress and run history. Type 'yes' to confirm: ")
	var confirmation string
	fmt.Scanln(&confirmation)
	if confirmation != "yes" {
		log.Println("Import cancelled")
		return
	}

	log.Printf("Importing progress from: %s", inputPath)
	if err := backupService.ImportFromReader(f); err != nil {
		log.Fatalf("Import failed: %v", err)
	}

	log.Println("Import complete!")
}

func printUsage() {
	fmt.Println("FinPlay Progress Backup Tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  backup export [options]    Export progress and run history to JSON file")
	fmt.Println("  backup import [options]    Import progress and run history from JSON file")
	fmt.Println()
	fmt.Println("Export Options:")
	fmt.Println("  -output <file>    Output file path (default: backup_YYYYMMDD_HHMMSS.json)")
	fmt.Println()
	fmt.Println("Import Options:")
	fmt.Println("  -input <file>     Input file path (required)")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  DATABASE_TYPE    Database type: sqlite, postgres, or mysql (default: sqlite)")
	fmt.Println("  DB_PATH          SQLite database path (default: ./finplay.db)")
	fmt.Println("  DATABASE_URL     PostgreSQL or MySQL connection URL")
}
