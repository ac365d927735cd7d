package pdf_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/stock-pesca/internal/domain/entity"
	"github.com/jhoicas/stock-pesca/internal/infrastructure/pdf"
)

func TestLowStockReport_GeneraPDF(t *testing.T) {
	rows := []entity.Product{
		{ID: 1, Name: "Caña Shimano", Category: entity.CategoryRods, Cost: decimal.NewFromInt(100), Stock: 1, MinStock: 5},
		{ID: 2, Name: "Anzuelos 2/0", Category: entity.CategoryHooksWeights, Cost: decimal.RequireFromString("0.35"), Stock: 10, MinStock: 10},
	}
	data, err := pdf.NewLowStockReport().GenerateLowStockReport(context.Background(), "Ancla y Sedal", rows)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")), "debe ser un documento PDF")
}

func TestLowStockReport_SinArticulos(t *testing.T) {
	data, err := pdf.NewLowStockReport().GenerateLowStockReport(context.Background(), "Ancla y Sedal", nil)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
}
