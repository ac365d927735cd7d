package shell_test

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-pesca/internal/interfaces/shell"
)

func TestRouter_RedirigeAPI(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "api:%s?%s", r.URL.Path, r.URL.RawQuery)
	}))
	defer api.Close()

	h, err := shell.NewRouter(newAssets(t), api.URL, zerolog.Nop())
	require.NoError(t, err)

	resp, body := serve(t, h, http.MethodGet, "/api/products?q=ca")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "api:/api/products?q=ca", body)

	resp, body = serve(t, h, http.MethodGet, "/")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<html>Ancla y Sedal</html>", body)
}

func TestRouter_APINoDisponible(t *testing.T) {
	api := httptest.NewServer(http.NotFoundHandler())
	url := api.URL
	api.Close()

	h, err := shell.NewRouter(newAssets(t), url, zerolog.Nop())
	require.NoError(t, err)
	resp, _ := serve(t, h, http.MethodGet, "/api/products")
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
}

func TestRouter_SinAPI(t *testing.T) {
	h, err := shell.NewRouter(newAssets(t), "", zerolog.Nop())
	require.NoError(t, err)
	resp, body := serve(t, h, http.MethodGet, "/api/products")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "File not found", body)
}

func TestRouter_URLInvalida(t *testing.T) {
	_, err := shell.NewRouter(newAssets(t), "localhost", zerolog.Nop())
	assert.Error(t, err)
}

func TestServer_ListenServeStop(t *testing.T) {
	h, err := shell.NewRouter(newAssets(t), "", zerolog.Nop())
	require.NoError(t, err)

	srv := shell.NewServer(h, "127.0.0.1:0")
	require.NoError(t, srv.Listen())
	done := make(chan error, 1)
	go func() { done <- srv.Serve() }()

	resp, err := http.Get("http://" + srv.Addr() + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, "<html>Ancla y Sedal</html>", string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))
	assert.NoError(t, <-done)
}
