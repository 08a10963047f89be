package courier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateParcel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/parcel", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("API-ACCESS-TOKEN"))

		var req ParcelRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "INV-1", req.MerchantInvoiceID)
		assert.Equal(t, 110.0, req.CashCollectionAmount)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(map[string]string{"tracking_id": "TRK-9"})
	}))
	defer server.Close()

	client := NewRedxClient(server.URL, "test-token")
	parcel, err := client.CreateParcel(context.Background(), ParcelRequest{
		CustomerName:         "Rahim",
		CustomerPhone:        "01700000000",
		DeliveryArea:         "Dhanmondi",
		MerchantInvoiceID:    "INV-1",
		CashCollectionAmount: 110,
	})
	require.NoError(t, err)
	assert.Equal(t, "TRK-9", parcel.TrackingID)
}

func TestCreateParcelUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":"invalid delivery area"}`))
	}))
	defer server.Close()

	client := NewRedxClient(server.URL, "test-token")
	_, err := client.CreateParcel(context.Background(), ParcelRequest{MerchantInvoiceID: "INV-2"})
	require.Error(t, err)

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
	assert.Equal(t, http.StatusUnprocessableEntity, upstream.StatusCode)
	assert.Contains(t, string(upstream.Body), "invalid delivery area")
}

func TestCreateParcelMissingTrackingID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"message":"accepted"}`))
	}))
	defer server.Close()

	client := NewRedxClient(server.URL, "test-token")
	_, err := client.CreateParcel(context.Background(), ParcelRequest{MerchantInvoiceID: "INV-3"})

	var upstream *UpstreamError
	require.ErrorAs(t, err, &upstream)
}

func TestGetStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/parcel/track/TRK-9", r.URL.Path)
		w.Write([]byte(`{"status":"delivered"}`))
	}))
	defer server.Close()

	client := NewRedxClient(server.URL, "test-token")
	raw, err := client.GetStatus(context.Background(), "TRK-9")
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"delivered"}`, string(raw))
}

func TestListAreas(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/areas", r.URL.Path)
		assert.Equal(t, "Dhaka", r.URL.Query().Get("district_name"))
		w.Write([]byte(`{"areas":[{"id":1,"name":"Dhanmondi"}]}`))
	}))
	defer server.Close()

	client := NewRedxClient(server.URL, "test-token")
	raw, err := client.ListAreas(context.Background(), "Dhaka")
	require.NoError(t, err)
	assert.Contains(t, string(raw), "Dhanmondi")
}
