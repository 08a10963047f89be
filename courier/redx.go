package courier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client is the narrow capability surface the order workflow needs from a
// courier. The HTTP integration can be swapped or stubbed without touching
// the order controllers.
type Client interface {
	CreateParcel(ctx context.Context, req ParcelRequest) (*ParcelResponse, error)
	GetStatus(ctx context.Context, trackingID string) (json.RawMessage, error)
	ListAreas(ctx context.Context, districtName string) (json.RawMessage, error)
}

type ParcelRequest struct {
	CustomerName         string  `json:"customer_name"`
	CustomerPhone        string  `json:"customer_phone"`
	CustomerAddress      string  `json:"customer_address"`
	DeliveryArea         string  `json:"delivery_area"`
	DeliveryAreaID       int     `json:"delivery_area_id,omitempty"`
	MerchantInvoiceID    string  `json:"merchant_invoice_id"`
	CashCollectionAmount float64 `json:"cash_collection_amount"`
	ParcelWeight         int     `json:"parcel_weight,omitempty"`
	Value                float64 `json:"value,omitempty"`
}

type ParcelResponse struct {
	TrackingID string `json:"tracking_id"`
}

// UpstreamError carries a courier non-2xx response so callers can pass the
// payload through to the client untouched.
type UpstreamError struct {
	StatusCode int
	Body       []byte
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("courier returned %d: %s", e.StatusCode, e.Body)
}

// RedxClient talks to the Redx open API using a static bearer token.
type RedxClient struct {
	BaseURL    string
	Token      string
	HTTPClient *http.Client
}

func NewRedxClient(baseURL, token string) *RedxClient {
	return &RedxClient{
		BaseURL:    baseURL,
		Token:      token,
		HTTPClient: &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *RedxClient) do(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, reqBody)
	if err != nil {
		return nil, err
	}
	req.Header.Set("API-ACCESS-TOKEN", "Bearer "+c.Token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("courier request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading courier response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &UpstreamError{StatusCode: resp.StatusCode, Body: respBody}
	}
	return respBody, nil
}

func (c *RedxClient) CreateParcel(ctx context.Context, req ParcelRequest) (*ParcelResponse, error) {
	raw, err := c.do(ctx, http.MethodPost, "/parcel", req)
	if err != nil {
		return nil, err
	}
	var parcel ParcelResponse
	if err := json.Unmarshal(raw, &parcel); err != nil {
		return nil, &UpstreamError{StatusCode: http.StatusOK, Body: raw}
	}
	if parcel.TrackingID == "" {
		return nil, &UpstreamError{StatusCode: http.StatusOK, Body: raw}
	}
	return &parcel, nil
}

func (c *RedxClient) GetStatus(ctx context.Context, trackingID string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/parcel/track/"+url.PathEscape(trackingID), nil)
}

func (c *RedxClient) ListAreas(ctx context.Context, districtName string) (json.RawMessage, error) {
	return c.do(ctx, http.MethodGet, "/areas?district_name="+url.QueryEscape(districtName), nil)
}
