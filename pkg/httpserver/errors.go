package httpserver

import "errors"

var (
	ErrStart          = errors.New("httpserver: listen or serve failed")
	ErrShutdown       = errors.New("httpserver: graceful shutdown failed")
	ErrAlreadyRunning = errors.New("httpserver: Run called on a running server")
)
