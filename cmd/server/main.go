package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	_ "modernc.org/sqlite"

	web "shiftreg/internal/adapters/http"
	"shiftreg/internal/adapters/http/perf"
	"shiftreg/internal/adapters/storage"
	credentialStore "shiftreg/internal/adapters/storage/credential"
	employeeStore "shiftreg/internal/adapters/storage/employee"
	"shiftreg/internal/adapters/storage/livestore"
	rolesStore "shiftreg/internal/adapters/storage/roles"
	rosterStore "shiftreg/internal/adapters/storage/roster"
	statusStore "shiftreg/internal/adapters/storage/status"
	"shiftreg/internal/application/orchestrators"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// .env is optional; real environments set variables directly
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	// Initialize database with WAL mode and busy timeout
	dbPath := envOrDefault("SHIFTREG_DB", "shiftreg.db")
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(ON)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)

	// Health check
	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	// Run database migrations
	if err := storage.MigrateDB(db, dbPath); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	log.Println("Database initialized successfully!")

	// Performance instrumentation: wrap DB with timing, create collector
	collector := perf.NewCollector(perf.DefaultRingSize)
	timedDB := storage.NewTimedDB(db, collector)

	// The live document store rides the timed DB so document queries are
	// instrumented like everything else
	docs := livestore.NewSQLiteStore(timedDB)
	creds := credentialStore.NewLiveStore(docs)
	stores := &web.Stores{
		DocStore:        docs,
		EmployeeStore:   employeeStore.NewLiveStore(docs),
		RosterStore:     rosterStore.NewLiveStore(docs),
		RolesStore:      rolesStore.NewLiveStore(docs),
		StatusStore:     statusStore.NewLiveStore(docs),
		CredentialStore: creds,
	}

	// Seed the admin credential if none exists
	adminPassword := envOrDefault("SHIFTREG_ADMIN_PASSWORD", "123456")
	seedDeps := orchestrators.SeedCredentialDeps{CredentialStore: creds}
	if err := orchestrators.ExecuteSeedCredential(context.Background(), adminPassword, seedDeps); err != nil {
		log.Fatalf("failed to seed admin credential: %v", err)
	}

	// Create HTTP handler with middleware (pass collector for timing)
	mux := web.NewMux("static", stores, collector)

	// Start server
	addr := envOrDefault("SHIFTREG_ADDR", ":8080")
	log.Printf("Shiftreg %s starting on %s (env=%s, schema=%d)", version, addr, envOrDefault("SHIFTREG_ENV", "development"), storage.LatestSchemaVersion())

	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
