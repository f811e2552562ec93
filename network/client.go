// Package network provides a pre-configured HTTP client for catalog communication.
package network

import (
	"net/http"
	"time"
)

// Client is the shared HTTP client used when no explicit client is configured.
var Client = New(time.Minute)

// New returns an http.Client with a tuned transport and the given overall timeout.
// A zero timeout disables the deadline; the request then runs until the server answers.
func New(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: newTransport(),
	}
}

// newTransport initializes a tuned http.Transport. A single lookup only ever talks to one host.
func newTransport() *http.Transport {
	t := http.DefaultTransport.(*http.Transport).Clone()
	t.MaxIdleConns = 10
	t.MaxIdleConnsPerHost = 2
	t.IdleConnTimeout = 30 * time.Second
	t.ResponseHeaderTimeout = 30 * time.Second
	t.ExpectContinueTimeout = 5 * time.Second
	return t
}
