// Package shell sirve la interfaz compilada (dist/) en localhost para la versión de escritorio.
package shell

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

// contentTypes tabla fija de tipos por extensión.
var contentTypes = map[string]string{
	".html": "text/html",
	".js":   "text/javascript",
	".css":  "text/css",
	".json": "application/json",
	".png":  "image/png",
	".jpg":  "image/jpg",
	".gif":  "image/gif",
	".svg":  "image/svg+xml",
	".wav":  "audio/wav",
	".mp4":  "video/mp4",
	".woff": "application/font-woff",
	".ttf":  "application/font-ttf",
	".eot":  "application/vnd.ms-fontobject",
	".otf":  "application/font-otf",
	".wasm": "application/wasm",
}

const defaultContentType = "application/octet-stream"

// ContentType devuelve el tipo de contenido para el nombre de archivo.
func ContentType(name string) string {
	if ct, ok := contentTypes[strings.ToLower(filepath.Ext(name))]; ok {
		return ct
	}
	return defaultContentType
}

// AssetServer sirve archivos de un directorio. "/" sirve index.html.
// Rutas que resuelven fuera del directorio responden 403.
type AssetServer struct {
	root string
	log  zerolog.Logger
}

// NewAssetServer construye el servidor sobre dir.
func NewAssetServer(dir string, log zerolog.Logger) (*AssetServer, error) {
	root, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	return &AssetServer{root: root, log: log}, nil
}

// Root directorio servido (absoluto).
func (s *AssetServer) Root() string { return s.root }

func (s *AssetServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	urlPath := r.URL.Path
	if urlPath == "/" || urlPath == "" {
		urlPath = "/index.html"
	}

	target := filepath.Join(s.root, filepath.FromSlash(urlPath))
	if rel, err := filepath.Rel(s.root, target); err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		s.log.Warn().Str("path", r.URL.Path).Msg("acceso fuera del directorio de la interfaz")
		writeText(w, http.StatusForbidden, "Forbidden")
		return
	}

	data, err := os.ReadFile(target)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			writeText(w, http.StatusNotFound, "File not found")
			return
		}
		reason := err.Error()
		var pe *fs.PathError
		if errors.As(err, &pe) {
			reason = pe.Err.Error()
		}
		s.log.Error().Err(err).Str("path", r.URL.Path).Msg("error leyendo archivo")
		writeText(w, http.StatusInternalServerError, "Server Error: "+reason)
		return
	}

	w.Header().Set("Content-Type", ContentType(target))
	w.WriteHeader(http.StatusOK)
	if r.Method != http.MethodHead {
		_, _ = w.Write(data)
	}
}

func writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}
