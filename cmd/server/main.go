package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"

	"wecare/internal/auth"
	"wecare/internal/casemgmt"
	"wecare/internal/config"
	"wecare/internal/directory"
	"wecare/internal/imaging"
	"wecare/internal/language"
	"wecare/internal/ollama"
	"wecare/internal/platform/telegram"
	"wecare/internal/report"
	"wecare/internal/triage"
	"wecare/internal/user"
)

func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration error: %v", err)
	}

	// 2. Infrastructure
	var db *sql.DB
	for i := 0; i < 10; i++ {
		db, err = sql.Open("postgres", cfg.DatabaseURL)
		if err == nil {
			err = db.Ping()
		}
		if err == nil {
			break
		}
		fmt.Printf("Waiting for DB... (%d/10)\n", i+1)
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Fatalf("Could not connect to DB: %v", err)
	}
	log.Println("Connected to Database.")

	m, err := migrate.New("file://migrations", cfg.DatabaseURL)
	if err != nil {
		log.Printf("Migration init failed: %v", err)
	} else {
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			log.Fatalf("Migration up failed: %v", err)
		}
		log.Println("Migrations applied.")
	}

	// 3. Clients
	aiClient := ollama.NewClient(ollama.Config{Host: cfg.OllamaHost, Model: cfg.OllamaModel})
	normalizer := imaging.NewNormalizer(cfg.ImageProcessing)

	var tgClient *telegram.Client
	if cfg.TelegramToken != "" {
		tgClient = telegram.NewClient(cfg.TelegramToken)
	} else {
		log.Println("Warning: TELEGRAM_BOT_TOKEN is not set. Critical-case alerts are disabled.")
	}

	// 4. Services
	userRepo := user.NewRepository(db)
	userSvc := user.NewService(userRepo, cfg.JWTSecret, cfg.TokenTTL)

	directoryRepo := directory.NewRepository(db)

	fallbackLang := language.Bengali
	if cfg.FallbackLanguage == string(language.English) {
		fallbackLang = language.English
	}

	triageRepo := triage.NewRepository(db)
	var notifier triage.AlertNotifier
	if tgClient != nil {
		notifier = report.NewService(tgClient, cfg.TelegramChatID)
	}
	triageSvc := triage.NewService(triageRepo, aiClient, normalizer, userSvc,
		directoryRepo, notifier, cfg.UploadDir, fallbackLang)

	caseSvc := casemgmt.NewService(triageRepo)

	userHandler := user.NewHandler(userSvc)
	triageHandler := triage.NewHandler(triageSvc)
	directoryHandler := directory.NewHandler(directoryRepo)
	caseHandler := casemgmt.NewHandler(caseSvc)

	// 5. Router
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS for frontend
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", "*")
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Accept, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")
			if r.Method == "OPTIONS" {
				return
			}
			next.ServeHTTP(w, r)
		})
	})

	r.Route("/api", func(r chi.Router) {
		user.RegisterRoutes(r, userHandler, userSvc)
		directory.RegisterRoutes(r, directoryHandler)

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticator(userSvc))
			triage.RegisterRoutes(r, triageHandler)
		})

		r.Group(func(r chi.Router) {
			r.Use(auth.Authenticator(userSvc))
			r.Use(auth.RequireAdmin)
			casemgmt.RegisterRoutes(r, caseHandler)
		})
	})

	fmt.Printf("Server starting on port %s...\n", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal(err)
	}
}
