package intake

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodyBytes bounds a JSON descriptor accepted over plain HTTP.
const maxBodyBytes = 1 << 20

// RouterOption configures NewRouter.
type RouterOption func(*routerOptions)

type routerOptions struct {
	gatherer prometheus.Gatherer
}

// WithGatherer exposes g on GET /metrics.
func WithGatherer(g prometheus.Gatherer) RouterOption {
	return func(o *routerOptions) { o.gatherer = g }
}

// Verdict is the plain JSON answer of POST /v1/requests.
type Verdict struct {
	Accepted bool `json:"accepted"`
}

// NewRouter mounts every HTTP transport for svc:
//
//	POST /speechgate.v1.IntakeService/Submit  connect
//	POST /v1/requests                         plain JSON descriptor
//	GET  /healthz
//	GET  /metrics                             when a gatherer is supplied
func NewRouter(svc *Service, opts ...RouterOption) http.Handler {
	var o routerOptions
	for _, opt := range opts {
		opt(&o)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	path, handler := NewHandler(svc)
	r.Handle(path, handler)

	r.Post("/v1/requests", func(w http.ResponseWriter, req *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, req.Body, maxBodyBytes))
		if err != nil {
			writeJSON(w, http.StatusRequestEntityTooLarge, Verdict{})
			return
		}
		writeJSON(w, http.StatusOK, Verdict{Accepted: svc.SubmitJSON(req.Context(), "intake.http", body)})
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	if o.gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(o.gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
