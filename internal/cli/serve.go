package cli

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/adyen/ecommerce-e2e/internal/config"
	"github.com/adyen/ecommerce-e2e/internal/storeapi"
)

// ServerDependencies holds everything the fake storefront server routes to
type ServerDependencies struct {
	ServerConfig         config.ServerConfig
	Logger               *zap.Logger
	ProductsListHandler  http.Handler
	BrandsListHandler    http.Handler
	SearchProductHandler http.Handler
	VerifyLoginHandler   http.Handler
	CreateAccountHandler http.Handler
	DeleteAccountHandler http.Handler
	UpdateAccountHandler http.Handler
	UserDetailHandler    http.Handler
}

func (d ServerDependencies) logger() *zap.Logger {
	if d.Logger == nil {
		return zap.NewNop()
	}
	return d.Logger
}

// RunServe starts the fake storefront API and blocks until SIGINT or SIGTERM
func RunServe(deps ServerDependencies) error {
	listener, server, err := StartServer(deps)
	if err != nil {
		return err
	}
	defer listener.Close()

	return WaitForShutdown(server, nil, deps.logger())
}

// NewMux routes every storefront API path to its handler
func NewMux(deps ServerDependencies) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle(storeapi.PathProductsList, deps.ProductsListHandler)
	mux.Handle(storeapi.PathBrandsList, deps.BrandsListHandler)
	mux.Handle(storeapi.PathSearchProduct, deps.SearchProductHandler)
	mux.Handle(storeapi.PathVerifyLogin, deps.VerifyLoginHandler)
	mux.Handle(storeapi.PathCreateAccount, deps.CreateAccountHandler)
	mux.Handle(storeapi.PathDeleteAccount, deps.DeleteAccountHandler)
	mux.Handle(storeapi.PathUpdateAccount, deps.UpdateAccountHandler)
	mux.Handle(storeapi.PathUserDetailByEmail, deps.UserDetailHandler)
	return mux
}

// StartServer creates and starts the HTTP server, returning the listener and server
func StartServer(deps ServerDependencies) (net.Listener, *http.Server, error) {
	logger := deps.logger()

	addr := fmt.Sprintf(":%s", deps.ServerConfig.Port)
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create listener: %w", err)
	}

	server := &http.Server{
		Handler:           NewMux(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("fake storefront listening", zap.String("addr", listener.Addr().String()))
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", zap.Error(err))
		}
	}()

	return listener, server, nil
}

// WaitForShutdown waits for a shutdown signal and gracefully shuts down the server.
// If shutdown is nil, a channel is created and registered with signal.Notify.
func WaitForShutdown(server *http.Server, shutdown chan os.Signal, logger *zap.Logger) error {
	return WaitForShutdownWithTimeout(server, shutdown, 30*time.Second, logger)
}

// WaitForShutdownWithTimeout allows specifying a custom shutdown timeout (primarily for testing)
func WaitForShutdownWithTimeout(server *http.Server, shutdown chan os.Signal, shutdownTimeout time.Duration, logger *zap.Logger) error {
	if logger == nil {
		logger = zap.NewNop()
	}
	if shutdown == nil {
		shutdown = make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
		defer signal.Stop(shutdown)
	}

	sig := <-shutdown
	logger.Info("shutting down server", zap.Stringer("signal", sig))

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		// http.Server.Close does not surface listener close errors, so this
		// only fails if the server was never usable.
		if err := server.Close(); err != nil {
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	logger.Info("server stopped")
	return nil
}
