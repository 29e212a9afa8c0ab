// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const metricsShutdownTimeout = 5 * time.Second

// metricsServer exposes the client counters while a scan runs.
type metricsServer struct {
	httpServer *http.Server
	listener   net.Listener
	done       chan struct{}
	serveErr   error
}

func newMetricsRouter() http.Handler {
	router := chi.NewRouter()
	router.Handle("/metrics", promhttp.Handler())
	router.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "ok")
	})
	return router
}

// startMetricsServer listens on addr and serves in the background until Close.
func startMetricsServer(addr string) (*metricsServer, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("failed to listen for metrics on %s: %w", addr, err)
	}

	m := &metricsServer{
		httpServer: &http.Server{
			Handler:           newMetricsRouter(),
			ReadHeaderTimeout: 10 * time.Second,
		},
		listener: listener,
		done:     make(chan struct{}),
	}

	go func() {
		defer close(m.done)
		m.serveErr = m.httpServer.Serve(listener)
	}()

	return m, nil
}

// Addr returns the bound address, useful when addr used port 0.
func (m *metricsServer) Addr() string { return m.listener.Addr().String() }

// Close shuts the server down and waits for the serve loop to exit.
func (m *metricsServer) Close() error {
	ctx, cancel := context.WithTimeout(context.Background(), metricsShutdownTimeout)
	defer cancel()

	m.httpServer.SetKeepAlivesEnabled(false)
	err := m.httpServer.Shutdown(ctx)
	<-m.done

	if err == nil && !errors.Is(m.serveErr, http.ErrServerClosed) {
		err = m.serveErr
	}
	return err
}
