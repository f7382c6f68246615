package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/remiblancher/padsign/internal/api/router"
	"github.com/remiblancher/padsign/internal/engine"
)

// Server represents the HTTP server(s).
type Server struct {
	cfg     *Config
	version string
	engine  engine.Engine
	servers []*http.Server
}

// New creates a new Server around an engine handle. A nil engine serves
// inspection, validation and forwarding only.
func New(cfg *Config, version string, eng engine.Engine) *Server {
	return &Server{
		cfg:     cfg,
		version: version,
		engine:  eng,
	}
}

// Start starts the HTTP server(s) and blocks until shutdown.
func (s *Server) Start() error {
	if s.cfg.UseSeparatePorts() {
		return s.startSeparateServers()
	}
	return s.startSingleServer()
}

// startSingleServer starts all services on a single port.
func (s *Server) startSingleServer() error {
	handler := router.New(&router.Config{
		Services: s.cfg.Services,
		Version:  s.version,
		Engine:   s.engine,
	})

	srv := &http.Server{
		Addr:         s.cfg.Address(),
		Handler:      handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}
	s.servers = []*http.Server{srv}

	s.printStartupInfo()

	return s.runServers()
}

// startSeparateServers runs the API and the fetch forwarder on their own
// ports.
func (s *Server) startSeparateServers() error {
	if s.cfg.HasService("api") {
		srv := &http.Server{
			Addr: s.cfg.Address(),
			Handler: router.New(&router.Config{
				Services: []string{"api"},
				Version:  s.version,
				Engine:   s.engine,
			}),
			ReadTimeout:  s.cfg.ReadTimeout,
			WriteTimeout: s.cfg.WriteTimeout,
			IdleTimeout:  s.cfg.IdleTimeout,
		}
		s.servers = append(s.servers, srv)
	}

	if s.cfg.HasService("proxy") {
		srv := &http.Server{
			Addr: s.cfg.ProxyAddress(),
			Handler: router.New(&router.Config{
				Services: []string{"proxy"},
				Version:  s.version,
			}),
			ReadTimeout:  s.cfg.ReadTimeout,
			WriteTimeout: s.cfg.WriteTimeout,
			IdleTimeout:  s.cfg.IdleTimeout,
		}
		s.servers = append(s.servers, srv)
	}

	s.printStartupInfo()

	return s.runServers()
}

// runServers starts all servers and handles graceful shutdown.
func (s *Server) runServers() error {
	errChan := make(chan error, len(s.servers))

	for _, srv := range s.servers {
		go func(srv *http.Server) {
			if s.cfg.TLSCert != "" && s.cfg.TLSKey != "" {
				errChan <- srv.ListenAndServeTLS(s.cfg.TLSCert, s.cfg.TLSKey)
			} else {
				errChan <- srv.ListenAndServe()
			}
		}(srv)
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down...", sig)
		return s.shutdownAll()
	}

	return nil
}

// shutdownAll gracefully shuts down all servers.
func (s *Server) shutdownAll() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	var wg sync.WaitGroup
	errChan := make(chan error, len(s.servers))

	for _, srv := range s.servers {
		wg.Add(1)
		go func(srv *http.Server) {
			defer wg.Done()
			if err := srv.Shutdown(ctx); err != nil {
				errChan <- err
			}
		}(srv)
	}

	wg.Wait()
	close(errChan)

	for err := range errChan {
		if err != nil {
			return fmt.Errorf("shutdown error: %w", err)
		}
	}

	log.Println("All servers stopped gracefully")
	return nil
}

// printStartupInfo prints server startup information.
func (s *Server) printStartupInfo() {
	fmt.Println()
	fmt.Println("PadSign Server")
	fmt.Println("==============")
	fmt.Printf("  Version:  %s\n", s.version)
	if s.cfg.TLSCert != "" {
		fmt.Println("  TLS:      enabled")
	}
	fmt.Println()
	fmt.Println("Services:")
	if s.cfg.HasService("api") {
		fmt.Printf("  - api:    http://%s/api/v1/*\n", s.cfg.Address())
	}
	if s.cfg.HasService("proxy") {
		fmt.Printf("  - proxy:  http://%s/fetch\n", s.cfg.ProxyAddress())
	}
	fmt.Println()
	fmt.Println("Use Ctrl+C to stop")
	fmt.Println()
}
