package controllers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"backend/courier"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondErrorShape(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	respondNotFound(c, "Order not found")

	assert.Equal(t, http.StatusNotFound, recorder.Code)
	assert.JSONEq(t, `{"code":"not_found","message":"Order not found"}`, recorder.Body.String())
}

func TestRespondUpstreamPassthrough(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	respondUpstream(c, &courier.UpstreamError{
		StatusCode: http.StatusUnprocessableEntity,
		Body:       []byte(`{"message":"invalid delivery area"}`),
	})

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "upstream_error")
	assert.Contains(t, recorder.Body.String(), "invalid delivery area")
}

func TestRespondUpstreamTransportError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)

	respondUpstream(c, errors.New("dial tcp: connection refused"))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "upstream_error")
}
