// Comando convert_csv: convierte una lista de precios de proveedor (CSV) en un
// archivo JSON importable desde la aplicación.
//
// Uso:
//
//	go run ./cmd/convert_csv proveedor.csv [salida.json] [-latin1]
//
// Columnas esperadas: nombre;categoría;costo;margen;stock;mínimo
// Separador ';' o ','. Con -latin1 el archivo se lee como ISO-8859-1 (exportaciones de Excel en Windows).
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/jhoicas/stock-pesca/internal/application/inventory"
	"github.com/jhoicas/stock-pesca/pkg/logger"
)

func main() {
	log := logger.New(logger.Config{Env: "development", Level: "info", Out: os.Stderr})

	var args []string
	latin1 := false
	for _, a := range os.Args[1:] {
		if a == "-latin1" || a == "--latin1" {
			latin1 = true
			continue
		}
		args = append(args, a)
	}
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintln(os.Stderr, "uso: convert_csv <proveedor.csv> [salida.json] [-latin1]")
		os.Exit(2)
	}

	in := args[0]
	out := inventory.ExportFileName(time.Now())
	if len(args) == 2 {
		out = args[1]
	}

	f, err := os.Open(in)
	if err != nil {
		log.Fatal().Err(err).Str("file", in).Msg("abrir CSV")
	}
	defer f.Close()

	products, err := inventory.ParseSupplierCSV(f, latin1)
	if err != nil {
		log.Fatal().Err(err).Str("file", in).Msg("leer CSV")
	}

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("serializar productos")
	}
	if err := os.WriteFile(out, data, 0o644); err != nil {
		log.Fatal().Err(err).Str("file", out).Msg("escribir JSON")
	}

	log.Info().
		Int("productos", len(products)).
		Bool("latin1", latin1).
		Str("salida", out).
		Msg("conversión completada")
}
