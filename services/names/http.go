package names

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// NewHTTPHandler serves handler over HTTP. Requests above the rate of
// limiter are refused with 429; a nil limiter lets every request through.
func NewHTTPHandler(handler http.Handler, limiter *rate.Limiter, logger *zap.Logger) http.Handler {
	if limiter == nil {
		return handler
	}
	logger = logger.Named("http")
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !limiter.Allow() {
			logger.Debug("request throttled", zap.String("remote", r.RemoteAddr))
			http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
			return
		}
		handler.ServeHTTP(w, r)
	})
}
