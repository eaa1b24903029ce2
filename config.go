package main

import (
	"fmt"
	"strconv"
)

const DEV_ENV = "dev"
const PRO_ENV = "pro"

const defaultPort = 3000

type Config struct {
	Environment string
	Port        int
	// Address overrides Port when set, e.g. "127.0.0.1:8080".
	Address   string
	PublicDir string
	// WhitelistHost switches the server to AutoTLS on :443 for that host.
	WhitelistHost string
	CertCache     string
}

func loadConfig(getenv func(string) string) (Config, error) {
	cfg := Config{
		Environment:   getenv("ENV"),
		Port:          defaultPort,
		Address:       getenv("ADDRESS_LISTEN"),
		PublicDir:     getenv("PUBLIC_DIR"),
		WhitelistHost: getenv("WHITELIST_HOST"),
		CertCache:     getenv("AUTOCERT_CACHE"),
	}
	if cfg.Environment == "" {
		cfg.Environment = PRO_ENV
	}
	if cfg.Environment != DEV_ENV && cfg.Environment != PRO_ENV {
		return Config{}, fmt.Errorf("unknown ENV %q", cfg.Environment)
	}
	if cfg.PublicDir == "" {
		cfg.PublicDir = "public"
	}
	if cfg.CertCache == "" {
		cfg.CertCache = "/var/www/.cache"
	}

	if raw := getenv("PORT"); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil || port < 1 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q", raw)
		}
		cfg.Port = port
	}
	if cfg.Address == "" {
		cfg.Address = fmt.Sprintf(":%d", cfg.Port)
	}

	return cfg, nil
}
