// Package server provides HTTP server configuration and lifecycle management.
package server

import (
	"fmt"
	"time"
)

// Config holds the server configuration.
type Config struct {
	// Port is the default HTTP port for all services.
	Port int

	// ProxyPort runs the fetch forwarder on its own port if non-zero.
	ProxyPort int

	// Host is the address to bind to (default: "").
	Host string

	// Services specifies which services to enable.
	// Valid values: "api", "proxy", "all"
	Services []string

	// TLS configuration (optional)
	TLSCert string
	TLSKey  string

	// Timeouts
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:            8070,
		Host:            "",
		Services:        []string{"all"},
		ReadTimeout:     30 * time.Second,
		WriteTimeout:    60 * time.Second,
		IdleTimeout:     120 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// HasService checks if a service is enabled.
func (c *Config) HasService(name string) bool {
	for _, s := range c.Services {
		if s == "all" || s == name {
			return true
		}
	}
	return false
}

// Address returns the full listen address for the default port.
func (c *Config) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// ProxyAddress returns the listen address for the fetch forwarder.
func (c *Config) ProxyAddress() string {
	port := c.ProxyPort
	if port == 0 {
		port = c.Port
	}
	return fmt.Sprintf("%s:%d", c.Host, port)
}

// UseSeparatePorts returns true if the forwarder runs on its own port.
func (c *Config) UseSeparatePorts() bool {
	return c.ProxyPort != 0 && c.ProxyPort != c.Port
}
