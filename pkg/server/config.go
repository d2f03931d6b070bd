// Copyright (c) 2025, The Brewkit Authors.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"log/slog"
	"maps"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"golang.org/x/time/rate"

	"github.com/mchmarny/brewkit/pkg/defaults"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Handlers registered behind the API middleware chain. Keys are either
	// "METHOD /path" or a bare "/path" that accepts any method.
	Handlers map[string]http.HandlerFunc

	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Origins allowed to call the API from a browser
	CORSAllowedOrigins []string

	// Request limits
	MaxRequestBodyBytes int64

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// envConfig is the part of Config that can be overridden from the
// environment.
type envConfig struct {
	Address                string   `envconfig:"ADDRESS"`
	Port                   int      `envconfig:"PORT" validate:"gte=1,lte=65535"`
	ShutdownTimeoutSeconds int      `envconfig:"SHUTDOWN_TIMEOUT_SECONDS" validate:"gt=0"`
	RateLimit              float64  `envconfig:"RATE_LIMIT" validate:"gt=0"`
	RateLimitBurst         int      `envconfig:"RATE_LIMIT_BURST" validate:"gt=0"`
	CORSAllowedOrigins     []string `envconfig:"CORS_ALLOWED_ORIGINS" validate:"min=1,dive,required"`
}

// Option is a functional option for configuring the server.
type Option func(*Config)

// WithName sets the server name reported by the root endpoint.
func WithName(name string) Option {
	return func(c *Config) { c.Name = name }
}

// WithVersion sets the server version reported by the root endpoint.
func WithVersion(version string) Option {
	return func(c *Config) { c.Version = version }
}

// WithHandler adds API handlers. Later registrations of the same key win.
func WithHandler(handlers map[string]http.HandlerFunc) Option {
	return func(c *Config) {
		if c.Handlers == nil {
			c.Handlers = make(map[string]http.HandlerFunc, len(handlers))
		}
		maps.Copy(c.Handlers, handlers)
	}
}

// WithAddress sets the listen address.
func WithAddress(address string) Option {
	return func(c *Config) { c.Address = address }
}

// WithPort sets the listen port.
func WithPort(port int) Option {
	return func(c *Config) { c.Port = port }
}

// WithRateLimit sets the request rate and burst.
func WithRateLimit(limit rate.Limit, burst int) Option {
	return func(c *Config) {
		c.RateLimit = limit
		c.RateLimitBurst = burst
	}
}

// WithCORSAllowedOrigins sets the origins allowed by CORS.
func WithCORSAllowedOrigins(origins ...string) Option {
	return func(c *Config) { c.CORSAllowedOrigins = origins }
}

// WithShutdownTimeout sets how long in-flight requests get to finish.
func WithShutdownTimeout(d time.Duration) Option {
	return func(c *Config) { c.ShutdownTimeout = d }
}

// NewConfig returns a new Config with defaults and environment overrides.
// Use this when you want to customize config programmatically.
func NewConfig() *Config {
	return parseConfig()
}

// parseConfig returns defaults overridden by PORT, ADDRESS,
// SHUTDOWN_TIMEOUT_SECONDS, RATE_LIMIT, RATE_LIMIT_BURST and
// CORS_ALLOWED_ORIGINS. Invalid environment values are logged and
// ignored.
func parseConfig() *Config {
	cfg := &Config{
		Name:                "server",
		Version:             "undefined",
		Address:             "",
		Port:                8080,
		RateLimit:           100, // 100 req/s
		RateLimitBurst:      200, // burst of 200
		CORSAllowedOrigins:  []string{"*"},
		MaxRequestBodyBytes: defaults.MaxRequestBodyBytes,
		ReadTimeout:         defaults.ServerReadTimeout,
		ReadHeaderTimeout:   defaults.ServerReadHeaderTimeout,
		WriteTimeout:        defaults.ServerWriteTimeout,
		IdleTimeout:         defaults.ServerIdleTimeout,
		ShutdownTimeout:     defaults.ServerShutdownTimeout,
	}

	env := envConfig{
		Address:                cfg.Address,
		Port:                   cfg.Port,
		ShutdownTimeoutSeconds: int(cfg.ShutdownTimeout / time.Second),
		RateLimit:              float64(cfg.RateLimit),
		RateLimitBurst:         cfg.RateLimitBurst,
		CORSAllowedOrigins:     cfg.CORSAllowedOrigins,
	}

	if err := envconfig.Process("", &env); err != nil {
		slog.Warn("ignoring invalid server environment", "error", err)
		return cfg
	}
	if err := validator.New().Struct(env); err != nil {
		slog.Warn("ignoring invalid server environment", "error", err)
		return cfg
	}

	cfg.Address = env.Address
	cfg.Port = env.Port
	cfg.ShutdownTimeout = time.Duration(env.ShutdownTimeoutSeconds) * time.Second
	cfg.RateLimit = rate.Limit(env.RateLimit)
	cfg.RateLimitBurst = env.RateLimitBurst
	cfg.CORSAllowedOrigins = env.CORSAllowedOrigins

	return cfg
}

// WithConfig replaces the whole configuration with a copy of cfg.
func WithConfig(cfg *Config) Option {
	return func(c *Config) {
		if cfg != nil {
			*c = *cfg
		}
	}
}
