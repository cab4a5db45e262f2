package api

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/terracore-io/reserve-ledger/internal/observability/metrics"
	"github.com/terracore-io/reserve-ledger/internal/observability/tracing"
	"github.com/terracore-io/reserve-ledger/internal/types"
)

func tracingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := tracing.InjectTraceID(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

func requestMetricsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		startTime := time.Now()

		next.ServeHTTP(rec, r)

		metrics.RecordApiRequestDuration(time.Since(startTime), r.Method, r.URL.Path, rec.status)
	})
}

// adminAuthMiddleware guards administrator routes with the configured
// bearer token
func (s *Server) adminAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, found := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !found || subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.Api.AdminToken)) != 1 {
			writeError(w, r, types.NewErrorWithMsg(
				http.StatusUnauthorized,
				types.Unauthorized,
				"administrator token required",
			))
			return
		}
		next.ServeHTTP(w, r)
	})
}
