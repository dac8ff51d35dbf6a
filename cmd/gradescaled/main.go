package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	api "github.com/mind-engage/gradescale/internal/api/http"
	auth "github.com/mind-engage/gradescale/internal/auth/middleware"
	"github.com/mind-engage/gradescale/internal/config"
	"github.com/mind-engage/gradescale/internal/db"
	"github.com/mind-engage/gradescale/internal/grading"
	"github.com/mind-engage/gradescale/internal/journal"
	"github.com/mind-engage/gradescale/internal/session"
	"github.com/mind-engage/gradescale/internal/storage"
)

func main() {
	cfg, err := config.Load()
	if err == nil {
		err = cfg.ValidateServer()
	}
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// --- Journal ---
	var j journal.Journal = journal.Nop{}
	if db.Driver(cfg.DBDriver) != db.DriverNone {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		dbh, err := db.Open(ctx, db.Driver(cfg.DBDriver), cfg.DBDSN)
		cancel()
		if err != nil {
			log.Fatalf("db open failed: %v", err)
		}
		defer func(dbh *sql.DB) { _ = dbh.Close() }(dbh)
		j = journal.NewEventRepo(dbh)
	}

	bs, err := storage.NewFSStore(cfg.ExportPath)
	if err != nil {
		log.Fatalf("blob store: %v", err)
	}

	sess, err := session.New(session.Options{
		Definition: grading.Standard(cfg.DefaultScale),
		MaxPoints:  cfg.MaxPoints,
		Store:      bs,
		Journal:    j,
	})
	if err != nil {
		log.Fatalf("session: %v", err)
	}

	authSvc := auth.NewAuthService(cfg.AuthSecret)

	// --- Router ---
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, middleware.Logger, middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.EnableLocalAuth {
		r.Post("/auth/login", auth.LoginHandler(authSvc, auth.Credentials{
			Username: cfg.AdminUser,
			PassHash: cfg.AdminPassHash,
			Role:     auth.RoleTeacher,
		}))
		if cfg.AdminPassHash == "" {
			log.Printf("admin_pass_hash not set: password login disabled")
		}
	}
	r.Post("/auth/guest", auth.GuestHandler(authSvc, cfg.EnableGuestView))

	// Protected API (JWT → role in context → RBAC)
	r.Group(func(pr chi.Router) {
		pr.Use(auth.JWTMiddleware(authSvc))
		api.Mount(pr, sess, bs)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200) })

	log.Printf("listening on %s (session=%s, scale=%s, max=%v, db=%s, exports=%s)",
		cfg.HTTPAddr, sess.ID(), cfg.DefaultScale, cfg.MaxPoints, cfg.DBDriver, bs.Base())
	log.Fatal(http.ListenAndServe(cfg.HTTPAddr, r))
}
