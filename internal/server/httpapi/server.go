// Package httpapi exposes the auth operations over HTTP/JSON. Every
// response uses the {ok, code, message, data?} envelope; the only
// transport-level rejections are 400 for undecodable bodies, 401 for
// missing or invalid bearer tokens, and 500 for internal faults.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/minjongk/teamauth/internal/logging"
	"github.com/minjongk/teamauth/internal/server/services"
)

// AuthService is the slice of the service layer this transport consumes.
type AuthService interface {
	SignUp(ctx context.Context, username, password, displayName string) services.Outcome
	LogIn(ctx context.Context, username, password string) (services.Outcome, error)
	LogOut(ctx context.Context) services.Outcome
	Me(ctx context.Context, token string) (services.Outcome, error)
}

type Server struct {
	address    string
	auth       AuthService
	logger     logging.Logger
	corsOrigin string
}

func NewServer(address string, auth AuthService, logger logging.Logger, corsOrigin string) *Server {
	return &Server{
		address:    address,
		auth:       auth,
		logger:     logger.With("module", "http_server"),
		corsOrigin: corsOrigin,
	}
}

// Handler builds the route table with the middleware chain applied.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /signup", s.handleSignup)
	mux.HandleFunc("POST /login", s.handleLogin)
	mux.HandleFunc("POST /logout", s.handleLogout)
	mux.HandleFunc("GET /me", s.handleMe)

	return s.withRequestLog(s.withCORS(mux))
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}
