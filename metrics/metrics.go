package metrics

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes the prometheus registry over HTTP.
type Server struct {
	server *http.Server
	logger *zap.Logger
}

func NewMetricsServer(addr string, gatherer prom.Gatherer, logger *zap.Logger) *Server {
	logger = logger.Named("metrics")

	mux := http.NewServeMux()
	mux.Handle("/health", healthHandler(logger))
	mux.Handle("/metrics", Handler(gatherer))
	return &Server{
		server: &http.Server{
			Addr:              addr,
			ReadHeaderTimeout: 5 * time.Second,
			Handler:           mux,
		},
		logger: logger,
	}
}

func healthHandler(logger *zap.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, err := w.Write([]byte("OK"))
		if err != nil {
			logger.Error("health handler error", zap.Error(err))
		}
	})
}

// Handler serves the metrics of gatherer, the default registry if nil.
func Handler(gatherer prom.Gatherer) http.Handler {
	if gatherer == nil {
		gatherer = prom.DefaultGatherer
	}
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}

// Listen serves until Stop is called.
func (p *Server) Listen() {
	err := p.server.ListenAndServe()
	if err == http.ErrServerClosed {
		err = nil
	}
	p.logger.Info("metrics server stopped", zap.Error(err))
}

func (p *Server) Stop(ctx context.Context) error {
	return p.server.Shutdown(ctx)
}
