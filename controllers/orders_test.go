package controllers

import (
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseUpdateInput() models.OrderUpdateInput {
	return models.OrderUpdateInput{
		OrderInput: models.OrderInput{
			CustomerName: "Rahim",
			PhoneNumber:  "01700000000",
			Address:      "House 1, Road 2",
			Products:     []models.OrderLineInput{{SKU: "A1", Quantity: "2", Price: "50"}},
			DeliveryCost: "10",
			Advance:      "0",
			Discount:     "0",
		},
		Status: models.StatusPending,
	}
}

func TestBuildOrderUpdateRecomputesMoney(t *testing.T) {
	now := time.Now()
	update, err := buildOrderUpdate(baseUpdateInput(), now)
	require.NoError(t, err)

	assert.Equal(t, 110.0, update["grandTotal"])
	assert.Equal(t, now, update["updatedAt"])

	lines, ok := update["products"].([]models.OrderedProduct)
	require.True(t, ok)
	require.Len(t, lines, 1)
	assert.Equal(t, 100.0, lines[0].Total)
}

func TestBuildOrderUpdateConditionalFields(t *testing.T) {
	t.Run("district and area only for courier statuses", func(t *testing.T) {
		input := baseUpdateInput()
		input.Status = models.StatusRedx
		input.RedxDistrict = "Dhaka"
		input.RedxArea = "Dhanmondi"

		update, err := buildOrderUpdate(input, time.Now())
		require.NoError(t, err)
		assert.Equal(t, "Dhaka", update["district"])
		assert.Equal(t, "Dhanmondi", update["area"])
		assert.NotContains(t, update, "comment")

		input.Status = models.StatusPathaow
		update, err = buildOrderUpdate(input, time.Now())
		require.NoError(t, err)
		assert.Equal(t, "Dhaka", update["district"])

		input.Status = models.StatusPending
		update, err = buildOrderUpdate(input, time.Now())
		require.NoError(t, err)
		assert.NotContains(t, update, "district")
		assert.NotContains(t, update, "area")
	})

	t.Run("comment only for hold", func(t *testing.T) {
		input := baseUpdateInput()
		input.Status = models.StatusHold
		input.Comment = "Customer asked to call back Sunday"

		update, err := buildOrderUpdate(input, time.Now())
		require.NoError(t, err)
		assert.Equal(t, "Customer asked to call back Sunday", update["comment"])

		input.Status = models.StatusCancel
		update, err = buildOrderUpdate(input, time.Now())
		require.NoError(t, err)
		assert.NotContains(t, update, "comment")
	})
}

func TestBuildOrderUpdateRejectsBadMoney(t *testing.T) {
	input := baseUpdateInput()
	input.DeliveryCost = "ten"

	_, err := buildOrderUpdate(input, time.Now())
	assert.Error(t, err)
}

func TestBuildLogisticUpdate(t *testing.T) {
	now := time.Now()
	returned := []models.ReturnedProduct{{SKU: "A1", Quantity: 1}}

	tests := []struct {
		status       string
		wantReturned bool
	}{
		{status: models.LogisticPartial, wantReturned: true},
		{status: models.LogisticReturned, wantReturned: false},
		{status: models.LogisticDamage, wantReturned: false},
		{status: models.LogisticRedx, wantReturned: false},
		{status: models.LogisticSteadfast, wantReturned: false},
		{status: models.LogisticPathaow, wantReturned: false},
	}
	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			fields := buildLogisticUpdate(tt.status, returned, now)

			assert.Equal(t, tt.status, fields["logistictStatus"])
			assert.Equal(t, now, fields["updatedAt"])
			if tt.wantReturned {
				assert.Equal(t, returned, fields["returnedProduct"])
			} else {
				assert.NotContains(t, fields, "returnedProduct")
			}
		})
	}
}

func TestParseOrderIDs(t *testing.T) {
	ids, err := parseOrderIDs([]string{"507f1f77bcf86cd799439011", "507f191e810c19729de860ea"})
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	_, err = parseOrderIDs([]string{"507f1f77bcf86cd799439011", "not-an-id"})
	assert.Error(t, err)
}
