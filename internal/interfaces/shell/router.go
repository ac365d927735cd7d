package shell

import (
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// NewRouter arma el router del shell: /api/* va a la API si apiURL no está vacío, el resto a los archivos.
func NewRouter(assets http.Handler, apiURL string, log zerolog.Logger) (http.Handler, error) {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(log))

	if apiURL != "" {
		target, err := url.Parse(apiURL)
		if err != nil || target.Scheme == "" || target.Host == "" {
			return nil, fmt.Errorf("DESKTOP_API_URL inválida: %q", apiURL)
		}
		proxy := httputil.NewSingleHostReverseProxy(target)
		proxy.ErrorHandler = func(w http.ResponseWriter, req *http.Request, err error) {
			log.Error().Err(err).Str("path", req.URL.Path).Msg("API no disponible")
			writeText(w, http.StatusBadGateway, "API no disponible")
		}
		r.Handle("/api/*", proxy)
		r.Handle("/health", proxy)
	}

	r.Method(http.MethodGet, "/*", assets)
	r.Method(http.MethodHead, "/*", assets)
	return r, nil
}

// requestLogger registra cada petición con zerolog.
func requestLogger(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Int("bytes", ww.BytesWritten()).
				Dur("elapsed", time.Since(start)).
				Msg("petición")
		})
	}
}
