package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

// HealthResponse respuesta de /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// NumberText valor numérico tal como lo escribe el usuario. Acepta "12.5", 12.5 o null.
type NumberText string

// UnmarshalJSON acepta cadenas y números JSON.
func (n *NumberText) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*n = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*n = NumberText(s)
	default:
		var num json.Number
		if err := json.Unmarshal(data, &num); err != nil {
			return fmt.Errorf("valor numérico inválido: %s", data)
		}
		*n = NumberText(num.String())
	}
	return nil
}

// String devuelve el texto.
func (n NumberText) String() string { return string(n) }
