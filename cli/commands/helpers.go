package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/satishbabariya/rowset-go/cli/internal/config"
	"github.com/satishbabariya/rowset-go/runtime/session"
)

// openSession builds a session from the resolved configuration.
func openSession(cfg *config.Config) (*session.Session, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("no database URL configured; set DATABASE_URL or pass --database-url")
	}
	s, err := session.New(cfg.Provider, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// queryContext returns a context bounded by the configured timeout.
func queryContext(cfg *config.Config) (context.Context, context.CancelFunc) {
	timeout := time.Duration(cfg.QueryTimeoutSeconds) * time.Second
	if timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), timeout)
}
