package service

import (
	"net/http"
	"time"
)

// NewPooledClient builds an HTTP client whose transport caps both the total
// and per-host connection counts at poolSize. The push service talks to a
// single vendor host, so the two limits carry the same value.
func NewPooledClient(poolSize int, timeout time.Duration) *http.Client {
	transport := &http.Transport{
		MaxIdleConns:        poolSize,
		MaxIdleConnsPerHost: poolSize,
		MaxConnsPerHost:     poolSize,
		IdleConnTimeout:     30 * time.Second,
	}

	return &http.Client{
		Transport: transport,
		Timeout:   timeout,
	}
}
