package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    float64
		wantErr bool
	}{
		{name: "integer", value: "50", want: 50},
		{name: "decimal", value: "10.5", want: 10.5},
		{name: "whitespace", value: " 42 ", want: 42},
		{name: "empty is zero", value: "", want: 0},
		{name: "garbage rejected", value: "abc", wantErr: true},
		{name: "partial number rejected", value: "10x", wantErr: true},
		{name: "nan rejected", value: "NaN", wantErr: true},
		{name: "inf rejected", value: "Inf", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount("deliveryCost", tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBuildLinesRecomputesTotals(t *testing.T) {
	lines, err := BuildLines([]OrderLineInput{
		{SKU: "A1", Quantity: "2", Price: "50"},
		{SKU: "B2", Quantity: "3", Price: "19.99"},
	})
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, 100.0, lines[0].Total)
	assert.Equal(t, 59.97, lines[1].Total)
}

func TestBuildLinesRejectsBadNumbers(t *testing.T) {
	_, err := BuildLines([]OrderLineInput{{SKU: "A1", Quantity: "two", Price: "50"}})
	assert.Error(t, err)

	_, err = BuildLines([]OrderLineInput{{SKU: "A1", Quantity: "2", Price: "fifty"}})
	assert.Error(t, err)
}

func TestGrandTotal(t *testing.T) {
	lines := []OrderedProduct{
		{SKU: "A1", Quantity: 2, Price: 50, Total: 100},
		{SKU: "B2", Quantity: 1, Price: 30, Total: 30},
	}

	assert.Equal(t, 130.0, GrandTotal(lines, 0, 0, 0))
	assert.Equal(t, 140.0, GrandTotal(lines, 10, 0, 0))
	assert.Equal(t, 110.0, GrandTotal(lines, 10, 20, 10))
}

func TestNewOrder(t *testing.T) {
	now := time.Date(2024, 10, 5, 12, 0, 0, 0, time.UTC)
	order, err := NewOrder(OrderInput{
		InvoiceID:    "INV-1",
		PageName:     "Trendy Fashion",
		CustomerName: "Rahim",
		Products:     []OrderLineInput{{SKU: "A1", Quantity: "2", Price: "50"}},
		DeliveryCost: "10",
		Advance:      "0",
		Discount:     "0",
	}, now)
	require.NoError(t, err)

	assert.Equal(t, StatusPending, order.Status)
	assert.Equal(t, 110.0, order.GrandTotal)
	assert.Equal(t, now, order.CreatedAt)
	require.Len(t, order.Products, 1)
	assert.Equal(t, 100.0, order.Products[0].Total)
}

func TestNewOrderValidation(t *testing.T) {
	_, err := NewOrder(OrderInput{
		Products: []OrderLineInput{{SKU: "A1", Quantity: "1", Price: "10"}},
	}, time.Now())
	assert.ErrorIs(t, err, ErrMissingInvoiceID)

	_, err = NewOrder(OrderInput{InvoiceID: "INV-2"}, time.Now())
	assert.ErrorIs(t, err, ErrMissingProducts)

	_, err = NewOrder(OrderInput{
		InvoiceID:    "INV-3",
		Products:     []OrderLineInput{{SKU: "A1", Quantity: "1", Price: "10"}},
		DeliveryCost: "free",
	}, time.Now())
	assert.Error(t, err)
}
