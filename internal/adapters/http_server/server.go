package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

type Server struct{ mux *chi.Mux }

type options struct {
	trustProxy bool
}

type Option func(*options)

// WithTrustedProxy takes client addresses from X-Forwarded-For/X-Real-IP.
// Without it those headers are ignored and RemoteAddr is used as is.
func WithTrustedProxy() Option {
	return func(o *options) { o.trustProxy = true }
}

func New(opts ...Option) *Server {
	var o options
	for _, fn := range opts {
		fn(&o)
	}
	m := chi.NewRouter()

	// All middlewares go here (before any routes are added)
	if o.trustProxy {
		m.Use(chimw.RealIP)
	}
	m.Use(chimw.RequestID)
	m.Use(chimw.Recoverer)
	m.Use(Timeout(15 * time.Second))
	m.Use(Metrics)
	m.Use(Logger(log.Logger))

	m.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusNotFound, "Route not found")
	})
	m.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	return &Server{mux: m}
}

func (s *Server) Mux() http.Handler { return s.mux }

// Mount attaches any extra handler (e.g., /metrics) to the router.
func (s *Server) Mount(path string, h http.Handler) {
	s.mux.Handle(path, h)
}
