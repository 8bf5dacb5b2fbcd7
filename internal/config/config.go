// SkillCompass - Personalized Learning Path Recommender
// Copyright 2026 SkillCompass Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/skillcompass/skillcompass

// Package config provides layered configuration for SkillCompass.
//
// Configuration is loaded from three sources with clear precedence:
//
//	Environment variables > YAML config file > built-in defaults
//
// See LoadWithKoanf for the loading pipeline.
package config

import (
	"fmt"
	"time"
)

// Config is the root configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
	Catalog   CatalogConfig   `koanf:"catalog"`
	Recommend RecommendConfig `koanf:"recommend"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the listen address. Default: 0.0.0.0
	Host string `koanf:"host"`

	// Port is the listen port. Default: 8080
	Port int `koanf:"port"`

	// Timeout is the read/write timeout applied to the HTTP server.
	Timeout time.Duration `koanf:"timeout"`

	// ShutdownTimeout bounds graceful shutdown on SIGINT/SIGTERM.
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	// CORSOrigins lists allowed CORS origins. Default: ["*"]
	CORSOrigins []string `koanf:"cors_origins"`

	// RateLimitReqs is the number of requests allowed per window per IP.
	RateLimitReqs int `koanf:"rate_limit_reqs"`

	// RateLimitWindow is the rate limiting window duration.
	RateLimitWindow time.Duration `koanf:"rate_limit_window"`

	// RateLimitDisabled disables rate limiting entirely (development only).
	RateLimitDisabled bool `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json or console.
	Format string `koanf:"format"`

	// Caller includes caller file:line in log output.
	Caller bool `koanf:"caller"`
}

// CatalogConfig controls where the course catalog comes from.
type CatalogConfig struct {
	// Path is an optional YAML file overriding the embedded catalog.
	// Empty means use the built-in catalog.
	Path string `koanf:"path"`
}

// RecommendConfig holds recommendation engine settings.
// Scoring weights and thresholds are data, not code, so deployments can
// tune match behavior without a rebuild.
type RecommendConfig struct {
	// MinScore is the minimum match score for a course to be recommended.
	MinScore int `koanf:"min_score"`

	// TopN is the default number of recommendations returned.
	TopN int `koanf:"top_n"`

	// SkillWeight is the maximum contribution of skill overlap.
	SkillWeight float64 `koanf:"skill_weight"`

	// DomainBonus is the flat bonus for target-domain alignment.
	DomainBonus int `koanf:"domain_bonus"`
}

// Validate checks the configuration for invalid values.
// It is called by LoadWithKoanf after all layers are merged.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("server.timeout must be positive, got %s", c.Server.Timeout)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	if !c.Security.RateLimitDisabled {
		if c.Security.RateLimitReqs < 1 {
			return fmt.Errorf("security.rate_limit_reqs must be at least 1, got %d", c.Security.RateLimitReqs)
		}
		if c.Security.RateLimitWindow <= 0 {
			return fmt.Errorf("security.rate_limit_window must be positive, got %s", c.Security.RateLimitWindow)
		}
	}
	if c.Recommend.MinScore < 0 || c.Recommend.MinScore > 100 {
		return fmt.Errorf("recommend.min_score must be between 0 and 100, got %d", c.Recommend.MinScore)
	}
	if c.Recommend.TopN < 1 {
		return fmt.Errorf("recommend.top_n must be at least 1, got %d", c.Recommend.TopN)
	}
	if c.Recommend.SkillWeight <= 0 || c.Recommend.SkillWeight > 100 {
		return fmt.Errorf("recommend.skill_weight must be in (0, 100], got %g", c.Recommend.SkillWeight)
	}
	if c.Recommend.DomainBonus < 0 {
		return fmt.Errorf("recommend.domain_bonus must not be negative, got %d", c.Recommend.DomainBonus)
	}
	return nil
}

// Addr returns the host:port listen address for the HTTP server.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
