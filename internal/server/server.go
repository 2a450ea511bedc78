package server

import (
	"log"
	"net/http"
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	mwecho "github.com/labstack/echo/v4/middleware"

	"vihaavastra.com/sareecrm/internal/backup"
	"vihaavastra.com/sareecrm/internal/config"
	"vihaavastra.com/sareecrm/internal/customer"
	"vihaavastra.com/sareecrm/internal/dashboard"
	"vihaavastra.com/sareecrm/internal/followup"
	"vihaavastra.com/sareecrm/internal/http/api"
	"vihaavastra.com/sareecrm/internal/order"
	"vihaavastra.com/sareecrm/internal/payments"
	"vihaavastra.com/sareecrm/internal/seeddata"
	"vihaavastra.com/sareecrm/internal/sqlite"
)

type Server struct {
	Echo *echo.Echo
	HTTP *http.Server
	DB   *sqlx.DB
}

func Build(cfg *config.Config) (*Server, error) {
	//
	// Database
	//
	if _, err := os.Stat(cfg.DBPath); os.IsNotExist(err) {
		log.Printf("Creating database '%s' (from %s setting)", cfg.DBPath, cfg.DBPathSource)
	} else {
		log.Printf("Opening database '%s' (from %s setting)", cfg.DBPath, cfg.DBPathSource)
	}
	db, err := sqlx.Connect("sqlite3", cfg.DBPath)
	if err != nil {
		return nil, err
	}

	// WAL mode is only required once after creating the database, but
	// doesn't hurt to set it each time
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		return nil, err
	}

	if err := sqlite.RunMigrations(db.DB); err != nil {
		return nil, err
	}

	// Starter rows go in only when the customer table is empty
	if !cfg.SkipSeed {
		loaded, err := seeddata.LoadIfEmpty(db.DB)
		if err != nil {
			return nil, err
		}
		if loaded {
			log.Print("Sample data loaded into empty database")
		}
	}

	//
	// Domain services
	//
	customerSvc := customer.NewService(db)
	orderSvc := order.NewService(db)
	followupSvc := followup.NewService(db)
	paymentsSvc := payments.NewService(db)
	dashboardSvc := dashboard.NewService(db)
	backupSvc := backup.NewService(db, cfg.DBPath)

	//
	// Handlers
	//
	apiSvc := api.NewService(
		customerSvc,
		orderSvc,
		followupSvc,
		paymentsSvc,
		dashboardSvc,
		backupSvc,
	)
	apiHandler := api.NewHandler(apiSvc)

	//
	// Echo
	//
	e := echo.New()
	e.HideBanner = true

	// Health endpoints
	e.GET("/livez", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})

	e.GET("/readyz", func(c echo.Context) error {
		if err := db.Ping(); err != nil {
			return c.String(http.StatusServiceUnavailable, "DB not ready")
		}
		return c.String(http.StatusOK, "Ready")
	})

	// Middleware
	e.Use(mwecho.Logger())
	e.Use(mwecho.Recover())

	// JSON API
	apiGroup := e.Group("/api")
	api.RegisterRoutes(apiGroup, apiHandler)

	//
	// HTTP server
	//
	srv := &http.Server{
		Addr:         cfg.Addr,
		Handler:      e,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	log.Printf("%s CRM listening on %s", cfg.BusinessName, cfg.Addr)

	return &Server{
		Echo: e,
		HTTP: srv,
		DB:   db,
	}, nil
}
