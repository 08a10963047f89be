package controllers

import (
	"errors"
	"net/http"

	"backend/courier"

	"github.com/gin-gonic/gin"
)

// Error codes for the normalized {code, message} error body.
const (
	CodeValidation = "validation_error"
	CodeNotFound   = "not_found"
	CodeUpstream   = "upstream_error"
	CodeInternal   = "internal_error"
)

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, gin.H{"code": code, "message": message})
}

func respondValidation(c *gin.Context, message string) {
	respondError(c, http.StatusBadRequest, CodeValidation, message)
}

func respondNotFound(c *gin.Context, message string) {
	respondError(c, http.StatusNotFound, CodeNotFound, message)
}

func respondInternal(c *gin.Context, message string) {
	respondError(c, http.StatusInternalServerError, CodeInternal, message)
}

// respondUpstream surfaces a courier failure to the caller. Non-2xx courier
// responses keep their status code and payload; transport errors become 500.
func respondUpstream(c *gin.Context, err error) {
	var upstream *courier.UpstreamError
	if errors.As(err, &upstream) {
		status := upstream.StatusCode
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		respondError(c, status, CodeUpstream, string(upstream.Body))
		return
	}
	respondError(c, http.StatusInternalServerError, CodeUpstream, err.Error())
}
