package httpserver

import (
	"database/sql"
	"errors"

	"github.com/gin-gonic/gin"

	"eindr-intent-engine/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Intent domain
	db              *sql.DB
	timezone        string
	rateLimitPerMin int
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Intent domain
	DB              *sql.DB
	Timezone        string
	RateLimitPerMin int
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               cfg.Logger,
		gin:             gin.Default(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		db:              cfg.DB,
		timezone:        cfg.Timezone,
		rateLimitPerMin: cfg.RateLimitPerMin,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.db == nil {
		return errors.New("database is required")
	}
	return nil
}
