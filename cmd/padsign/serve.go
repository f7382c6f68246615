package main

import (
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/remiblancher/padsign/internal/api/server"
)

// Serve command flags
var (
	servePort      int
	serveProxyPort int
	serveHost      string
	serveServices  []string
	serveTLSCert   string
	serveTLSKey    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API and fetch forwarder",
	Long: `Start the REST API and fetch forwarder.

This command starts:
  - the REST API (/api/v1/inspect, /api/v1/validate, /api/v1/sign)
  - the fetch forwarder (/fetch) that proxied engine requests target

Environment variables:
  PADSIGN_PORT        Default port for all services
  PADSIGN_PROXY_PORT  Port for the fetch forwarder
  PADSIGN_HOST        Host to bind to
  PADSIGN_TLS_CERT    TLS certificate file
  PADSIGN_TLS_KEY     TLS private key file

Examples:
  # Start everything on one port
  padsign serve --port 8070

  # Forwarder on its own port
  padsign serve --port 8070 --proxy-port 8071

  # API only
  padsign serve --services api

  # With TLS
  padsign serve --port 8443 --tls-cert server.crt --tls-key server.key`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port for all services (default: 8070)")
	serveCmd.Flags().IntVar(&serveProxyPort, "proxy-port", 0, "Port for the fetch forwarder")
	serveCmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (default: all interfaces)")
	serveCmd.Flags().StringSliceVar(&serveServices, "services", nil, "Services to enable: api, proxy, all (default: all)")
	serveCmd.Flags().StringVar(&serveTLSCert, "tls-cert", "", "TLS certificate file")
	serveCmd.Flags().StringVar(&serveTLSKey, "tls-key", "", "TLS private key file")
}

func runServe(cmd *cobra.Command, args []string) error {
	applyServeEnvVars()

	cfg := server.DefaultConfig()
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveProxyPort != 0 {
		cfg.ProxyPort = serveProxyPort
	}
	if serveHost != "" {
		cfg.Host = serveHost
	}
	if len(serveServices) > 0 {
		cfg.Services = serveServices
	}
	cfg.TLSCert = serveTLSCert
	cfg.TLSKey = serveTLSKey

	// No engine is bound in the standalone CLI: signing requests respond
	// with ENGINE_UNAVAILABLE while inspection, validation and forwarding
	// remain fully functional.
	srv := server.New(cfg, version, nil)
	return srv.Start()
}

// applyServeEnvVars fills unset flags from PADSIGN_* environment variables.
func applyServeEnvVars() {
	if servePort == 0 {
		if v, err := strconv.Atoi(os.Getenv("PADSIGN_PORT")); err == nil {
			servePort = v
		}
	}
	if serveProxyPort == 0 {
		if v, err := strconv.Atoi(os.Getenv("PADSIGN_PROXY_PORT")); err == nil {
			serveProxyPort = v
		}
	}
	if serveHost == "" {
		serveHost = os.Getenv("PADSIGN_HOST")
	}
	if serveTLSCert == "" {
		serveTLSCert = os.Getenv("PADSIGN_TLS_CERT")
	}
	if serveTLSKey == "" {
		serveTLSKey = os.Getenv("PADSIGN_TLS_KEY")
	}
}
