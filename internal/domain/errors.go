package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound        = errors.New("recurso no encontrado")
	ErrInvalidInput    = errors.New("entrada inválida")
	ErrNotConfirmed    = errors.New("operación no confirmada")
	ErrMalformedImport = errors.New("error al importar archivo")
	ErrFormClosed      = errors.New("el formulario no está abierto")
	ErrNotConfigured   = errors.New("servicio no configurado")
)
