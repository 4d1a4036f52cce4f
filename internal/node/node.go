package node

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/SystemBuilders/ringlist/internal/lockservice"
	"github.com/SystemBuilders/ringlist/internal/routing"
	"github.com/gorilla/mux"
	"github.com/rs/zerolog"
)

// Error provides constant error strings to the driver functions.
type Error string

func (e Error) Error() string { return string(e) }

// Constant errors.
const (
	ErrPortOutOfRange = Error("port number exceeds limit of 65535")
)

// NewServer returns the http server for the lockservice on the
// configured address.
func NewServer(ls *lockservice.SimpleLockService, cfg lockservice.Config) (*http.Server, error) {
	if err := checkValidPort(cfg.Port()); err != nil {
		return nil, err
	}

	router := routing.SetupRouting(ls, mux.NewRouter())
	return &http.Server{
		Handler: router,
		Addr:    cfg.IP() + ":" + cfg.Port(),
	}, nil
}

// Start begins the node's operation as a http server.
// It blocks until the server is shut down.
func Start(ls *lockservice.SimpleLockService, cfg lockservice.Config, log zerolog.Logger) error {
	server, err := NewServer(ls, cfg)
	if err != nil {
		return err
	}

	go gracefulShutdown(server, log)

	log.Info().Str("addr", server.Addr).Msg("starting server")
	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		return err
	}
	return nil
}

// gracefulShutdown shuts down the server on getting a ^C signal
func gracefulShutdown(server *http.Server, log zerolog.Logger) {
	interruptChan := make(chan os.Signal, 1)
	signal.Notify(interruptChan, os.Interrupt, syscall.SIGTERM)

	// Block until we receive our signal.
	<-interruptChan

	// Create a deadline to wait for currently serving items.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}

	log.Info().Msg("shutting down")
}

func checkValidPort(port string) error {
	portInt, err := strconv.Atoi(port)
	if err != nil {
		return fmt.Errorf("invalid port %q: %w", port, err)
	}
	if portInt < 0 || portInt > 65535 {
		return ErrPortOutOfRange
	}
	return nil
}
