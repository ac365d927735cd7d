package dto

import (
	"time"

	"github.com/jhoicas/stock-pesca/internal/application/inventory"
)

// ImportResponse resultado de una importación.
type ImportResponse struct {
	Replaced bool   `json:"replaced"`
	Count    int    `json:"count"`
	Message  string `json:"message"`
}

// FromImportResult construye la respuesta con el mensaje para el usuario.
func FromImportResult(r inventory.ImportResult) ImportResponse {
	msg := "Datos importados con éxito"
	if !r.Replaced {
		msg = "El archivo no contiene una lista de productos; no se realizaron cambios"
	}
	return ImportResponse{Replaced: r.Replaced, Count: r.Count, Message: msg}
}

// BackupResponse copia de seguridad subida.
type BackupResponse struct {
	ObjectKey string    `json:"object_key"`
	Location  string    `json:"location"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}

// FromBackupResult construye la respuesta.
func FromBackupResult(r inventory.BackupResult) BackupResponse {
	return BackupResponse{ObjectKey: r.ObjectKey, Location: r.Location, Count: r.Count, CreatedAt: r.CreatedAt}
}
