// Package httptransport assembles the HTTP surface: the middleware chain,
// the domain handler mounts, and the operational endpoints.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	auditHandler "esgledger/internal/audit/handler"
	disclosureHandler "esgledger/internal/disclosure/handler"
	integrityHandler "esgledger/internal/integrity/handler"
	"esgledger/internal/platform/middleware"
	"esgledger/pkg/platform/httputil"
)

// HealthChecker reports the liveness of one backing dependency.
type HealthChecker interface {
	Health(ctx context.Context) error
}

// Deps carries everything the router mounts. Health checkers may be nil
// when the corresponding backend is not configured.
type Deps struct {
	Disclosure *disclosureHandler.Handler
	Audit      *auditHandler.Handler
	Integrity  *integrityHandler.Handler

	JWTValidator middleware.JWTValidator
	Logger       *slog.Logger

	HealthChecks map[string]HealthChecker
}

// NewRouter wires the middleware chain and mounts all endpoints. Every
// domain route requires a bearer token; /healthz and /metrics stay open.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestTime)
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.Logger(deps.Logger))

	r.Get("/healthz", handleHealth(deps.HealthChecks))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth(deps.JWTValidator, deps.Logger))

		deps.Disclosure.Register(r)
		deps.Audit.Register(r)
		deps.Integrity.Register(r)
	})

	return r
}

type healthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func handleHealth(checks map[string]HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		out := healthResponse{Status: "ok"}
		if len(checks) > 0 {
			out.Checks = make(map[string]string, len(checks))
		}
		status := http.StatusOK
		for name, check := range checks {
			if err := check.Health(ctx); err != nil {
				out.Checks[name] = err.Error()
				out.Status = "degraded"
				status = http.StatusServiceUnavailable
				continue
			}
			out.Checks[name] = "ok"
		}
		httputil.WriteJSON(w, status, out)
	}
}
