package shell

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/pkg/browser"
)

// Server servidor HTTP del shell de escritorio.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
}

// NewServer construye el servidor para handler en addr.
func NewServer(handler http.Handler, addr string) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// Listen abre el puerto. Tras un Listen exitoso el navegador ya puede conectarse.
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return err
	}
	s.listener = ln
	return nil
}

// Addr dirección efectiva de escucha.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.httpServer.Addr
}

// Serve atiende peticiones hasta Stop. Devuelve nil al cerrarse normalmente.
func (s *Server) Serve() error {
	if s.listener == nil {
		if err := s.Listen(); err != nil {
			return err
		}
	}
	if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop cierra el servidor esperando las peticiones en curso.
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// OpenBrowser abre url en el navegador del sistema.
func OpenBrowser(url string) error {
	return browser.OpenURL(url)
}
