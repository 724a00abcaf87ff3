package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/ampship/pkg/domain/interfaces"
	"github.com/m-mizutani/ampship/pkg/domain/model"
	"github.com/m-mizutani/ampship/pkg/domain/types"
	"github.com/m-mizutani/ampship/pkg/utils/errutil"
	"github.com/m-mizutani/ampship/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	mux *chi.Mux
}

func safeWrite(w http.ResponseWriter, code int, body []byte) {
	w.WriteHeader(code)

	// nosemgrep: go.lang.security.audit.xss.no-direct-write-to-responsewriter.no-direct-write-to-responsewriter
	// Why: The response data is encoded by json.Marshal
	if _, err := w.Write(body); err != nil {
		logging.Default().Error("fail to write response", slog.Any("error", err))
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logging.Default().Error("fail to marshal response", slog.Any("error", err))
		w.Header().Set("Content-Type", "application/json")
		safeWrite(w, http.StatusInternalServerError, []byte(`{"error":{"kind":"Internal","message":"failed to encode response"}}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	safeWrite(w, code, body)
}

type successResponse struct {
	Result any `json:"result"`
}

type errorResponse struct {
	Error *model.Failure `json:"error"`
}

// statusCodeOf maps an error kind to the HTTP status of a tool response.
func statusCodeOf(kind string) int {
	switch kind {
	case "InvalidInput", "InvalidOption":
		return http.StatusBadRequest
	case "AppNotFound":
		return http.StatusNotFound
	case "Internal":
		return http.StatusInternalServerError
	default:
		return http.StatusUnprocessableEntity
	}
}

func writeFailure(w http.ResponseWriter, r *http.Request, tool string, err error) {
	failure := model.NewFailure(err)
	code := statusCodeOf(failure.Kind)
	if code == http.StatusInternalServerError {
		errutil.HandleError(r.Context(), "tool invocation failed", err)
	} else {
		logging.From(r.Context()).Warn("tool invocation rejected",
			slog.String("tool", tool),
			slog.String("kind", failure.Kind),
			slog.Any("error", err),
		)
	}
	writeJSON(w, code, errorResponse{Error: failure})
}

type config struct {
	registry *prometheus.Registry
}

type Option func(*config)

// WithRegistry sets the registry that holds the server metrics and is
// exposed at /metrics.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(cfg *config) {
		cfg.registry = registry
	}
}

func New(uc interfaces.UseCase, options ...Option) *Server {
	cfg := &config{}
	for _, opt := range options {
		opt(cfg)
	}
	if cfg.registry == nil {
		cfg.registry = prometheus.NewRegistry()
	}

	m := newMetrics(cfg.registry)
	tools := newToolSet(uc, m)

	r := chi.NewRouter()
	r.Use(preProcess)
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		safeWrite(w, http.StatusOK, []byte("ok"))
	})
	r.Handle("/metrics", promhttp.HandlerFor(cfg.registry, promhttp.HandlerOpts{Registry: cfg.registry}))
	r.Route("/tools", func(r chi.Router) {
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			writeJSON(w, http.StatusOK, successResponse{Result: tools.names()})
		})
		r.Post("/{name}", func(w http.ResponseWriter, r *http.Request) {
			name := chi.URLParam(r, "name")
			handler, ok := tools.lookup(name)
			if !ok {
				m.invoked(name, "UnknownTool")
				writeJSON(w, http.StatusNotFound, errorResponse{Error: &model.Failure{
					Kind:    "UnknownTool",
					Message: "tool is not available",
					Details: map[string]any{"tool": name, "available": tools.names()},
				}})
				return
			}

			result, err := handler(r)
			if err != nil {
				m.invoked(name, types.ErrorKindOf(err))
				writeFailure(w, r, name, err)
				return
			}

			m.invoked(name, "ok")
			writeJSON(w, http.StatusOK, successResponse{Result: result})
		})
	})

	return &Server{
		mux: r,
	}
}

func (x *Server) Mux() *chi.Mux {
	return x.mux
}

func decodeJSON(r *http.Request, v any) error {
	if r.Body == nil {
		return nil
	}
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return goerr.Wrap(types.ErrInvalidInput, "failed to decode tool arguments", goerr.V("error", err.Error()))
	}
	return nil
}
