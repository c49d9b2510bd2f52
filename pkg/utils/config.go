package utils

import (
	"os"
	"strconv"
	"time"
)

type ServerConfig struct {
	HTTPAddr      string
	ScrapeTimeout time.Duration
}

func LoadServerConfig() ServerConfig {
	addr := os.Getenv("GROWHUB_HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	timeout := 15 * time.Second
	if raw := os.Getenv("GROWHUB_SCRAPE_TIMEOUT_SECONDS"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			timeout = time.Duration(n) * time.Second
		}
	}

	return ServerConfig{
		HTTPAddr:      addr,
		ScrapeTimeout: timeout,
	}
}
