package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"skatejournal/internal/config"
	"skatejournal/internal/database"
	"skatejournal/internal/logger"
	"skatejournal/internal/security"
	"skatejournal/internal/service"
)

func main() {
	// Define subcommands
	exportCmd := flag.NewFlagSet("export", flag.ExitOnError)
	importCmd := flag.NewFlagSet("import", flag.ExitOnError)
	tokenCmd := flag.NewFlagSet("token", flag.ExitOnError)

	// Export flags
	exportOwner := exportCmd.String("owner", "", "Owner id to export (required)")
	exportOutput := exportCmd.String("output", "", "Output file path (default: <owner>_YYYYMMDD_HHMMSS.json)")

	// Import flags
	importOwner := importCmd.String("owner", "", "Owner id to import into (required)")
	importInput := importCmd.String("input", "", "Input file path (required)")
	importClear := importCmd.Bool("clear", false, "Delete the owner's existing data before import (WARNING: destructive)")

	// Token flags
	tokenOwner := tokenCmd.String("owner", "", "Owner id for the token subject (required)")
	tokenTTL := tokenCmd.Duration("ttl", 24*time.Hour, "Token lifetime")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	// Load configuration
	cfg := config.Load()

	log, err := logger.New(cfg.LogMode)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	switch os.Args[1] {
	case "export":
		exportCmd.Parse(os.Args[2:])
		requireFlag(exportCmd, "owner", *exportOwner)
		db := openDatabase(cfg, log)
		defer db.Close()
		handleExport(service.NewBackupService(db, log), log, *exportOwner, *exportOutput)

	case "import":
		importCmd.Parse(os.Args[2:])
		requireFlag(importCmd, "owner", *importOwner)
		requireFlag(importCmd, "input", *importInput)
		db := openDatabase(cfg, log)
		defer db.Close()
		handleImport(service.NewBackupService(db, log), log, *importOwner, *importInput, *importClear)

	case "token":
		tokenCmd.Parse(os.Args[2:])
		requireFlag(tokenCmd, "owner", *tokenOwner)
		if cfg.JWTSecret == "" {
			log.Fatal("JWT_SECRET is not set")
		}
		token, err := security.NewTokenVerifier(cfg.JWTSecret, cfg.JWTIssuer).Issue(*tokenOwner, *tokenTTL)
		if err != nil {
			log.Fatal("failed to issue token", "error", err)
		}
		fmt.Println(token)

	default:
		printUsage()
		os.Exit(1)
	}
}

func requireFlag(fs *flag.FlagSet, name, value string) {
	if value == "" {
		fmt.Printf("Error: -%s flag is required\n", name)
		fs.PrintDefaults()
		os.Exit(1)
	}
}

func openDatabase(cfg *config.Config, log *logger.Logger) *database.DB {
	// Initialize database
	db, err := database.InitializeWithConfig(cfg)
	if err != nil {
		log.Fatal("failed to initialize database", "error", err)
	}

	// Run migrations to ensure schema is up to date
	if _, err := db.RunMigrations(); err != nil {
		log.Fatal("failed to run migrations", "error", err)
	}
	return db
}

func handleExport(backupService *service.BackupService, log *logger.Logger, ownerID, outputPath string) {
	// Generate default filename if not provided
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = fmt.Sprintf("%s_%s.json", ownerID, timestamp)
	}

	// Ensure directory exists
	dir := filepath.Dir(outputPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			log.Fatal("failed to create output directory", "error", err)
		}
	}

	f, err := os.Create(outputPath)
	if err != nil {
		log.Fatal("failed to create output file", "path", outputPath, "error", err)
	}
	defer f.Close()

	log.Info("exporting owner data", "owner_id", ownerID, "path", outputPath)
	if err := backupService.WriteExport(f, ownerID); err != nil {
		log.Fatal("export failed", "error", err)
	}

	// Get file size
	if fileInfo, err := f.Stat(); err == nil {
		log.Info("export complete", "size_kb", fmt.Sprintf("%.1f", float64(fileInfo.Size())/1024))
	}
}

func handleImport(backupService *service.BackupService, log *logger.Logger, ownerID, inputPath string, clearData bool) {
	f, err := os.Open(inputPath)
	if err != nil {
		log.Fatal("failed to open input file", "path", inputPath, "error", err)
	}
	defer f.Close()

	store, err := service.DecodeLocalStore(f)
	if err != nil {
		log.Fatal("failed to read input file", "path", inputPath, "error", err)
	}

	importFn := backupService.Import
	if clearData {
		fmt.Printf("WARNING: This will replace all data of owner %s. Type 'yes' to confirm: ", ownerID)
		var confirmation string
		fmt.Scanln(&confirmation)
		if confirmation != "yes" {
			log.Info("import cancelled")
			return
		}
		importFn = backupService.Replace
	}

	log.Info("importing owner data", "owner_id", ownerID, "path", inputPath, "replace", clearData)
	result, err := importFn(ownerID, store)
	if err != nil {
		log.Fatal("import failed", "error", err)
	}

	log.Info("import complete",
		"journal_entries", result.JournalEntries,
		"training_sessions", result.TrainingSessions,
		"jump_attempts", result.JumpAttempts,
		"weekly_goals", result.WeeklyGoals,
		"goals", result.Goals,
		"duplicates", result.Duplicates,
		"skipped", result.Skipped,
	)
}

func printUsage() {
	fmt.Println("Skate Journal backup tool")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  backup export -owner <id> [-output <file>]            Export one owner's data as local-store JSON")
	fmt.Println("  backup import -owner <id> -input <file> [-clear]     Import a local-store JSON document")
	fmt.Println("  backup token  -owner <id> [-ttl 24h]                 Print a bearer token signed with JWT_SECRET")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  DB_TYPE, DB_PATH, DATABASE_URL select the database, as for the server.")
}
