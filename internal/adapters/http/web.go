package web

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"net/http"
	"os"
	"time"

	"shiftreg/internal/adapters/http/middleware"
	"shiftreg/internal/adapters/http/perf"
	credentialStore "shiftreg/internal/adapters/storage/credential"
	employeeStore "shiftreg/internal/adapters/storage/employee"
	"shiftreg/internal/adapters/storage/livestore"
	rolesStore "shiftreg/internal/adapters/storage/roles"
	rosterStore "shiftreg/internal/adapters/storage/roster"
	statusStore "shiftreg/internal/adapters/storage/status"
)

// Stores holds all storage dependencies.
type Stores struct {
	DocStore        livestore.Store
	EmployeeStore   employeeStore.Store
	RosterStore     rosterStore.Store
	RolesStore      rolesStore.Store
	StatusStore     statusStore.Store
	CredentialStore credentialStore.Store
}

// loadCSRFKey reads the CSRF secret from SHIFTREG_CSRF_KEY (hex-encoded, 32 bytes).
// In production, the key MUST be set. In development, a random key is generated per startup.
func loadCSRFKey() []byte {
	if keyHex := os.Getenv("SHIFTREG_CSRF_KEY"); keyHex != "" {
		key, err := hex.DecodeString(keyHex)
		if err != nil || len(key) != 32 {
			log.Fatal("SHIFTREG_CSRF_KEY must be 64 hex characters (32 bytes)")
		}
		return key
	}
	if os.Getenv("SHIFTREG_ENV") == "production" {
		log.Fatal("SHIFTREG_CSRF_KEY is required in production")
	}
	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		log.Fatalf("failed to generate CSRF key: %v", err)
	}
	log.Println("WARNING: using random CSRF key (sessions won't survive restart). Set SHIFTREG_CSRF_KEY for production.")
	return key
}

// Global stores instance (set by NewMux)
var stores *Stores

// Global unlock session store instance
var unlocks *middleware.UnlockStore

// RateLimitPerSecond controls the per-IP rate limit. Tests can increase this.
var RateLimitPerSecond = 10

// Global perf collector (set by NewMux)
var perfCollector *perf.Collector

// nowFunc anchors the rolling week window. Tests can pin it.
var nowFunc = time.Now

// NewMux wires HTTP handlers for the app.
func NewMux(staticDir string, s *Stores, collector *perf.Collector) http.Handler {
	stores = s
	perfCollector = collector
	unlocks = middleware.NewUnlockStore()
	middleware.SecureCookies = os.Getenv("SHIFTREG_ENV") == "production"

	mux := http.NewServeMux()
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	registerRoutes(mux)

	// CSRF key: 32-byte hex-encoded secret from env var
	csrfKey := loadCSRFKey()

	// Rate limiter: configurable requests per second per IP
	limiter := middleware.NewRateLimiter(RateLimitPerSecond, time.Second)

	// Apply middleware: Timing -> RateLimit -> Unlock -> CSRF -> SecurityHeaders -> Mux
	return middleware.Chain(mux,
		middleware.SecurityHeaders,
		middleware.CSRF(csrfKey),
		middleware.Unlock(unlocks),
		middleware.RateLimit(limiter),
		middleware.Timing(collector),
	)
}
