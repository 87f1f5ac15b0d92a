package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"catalog/models"
	"catalog/stream"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindEntity decodes and validates the JSON body. On failure the request is
// aborted with 400 and false is returned. Constraint violations are answered
// with the plain "Validation errors: field: message, ..." text; a body that
// cannot be decoded gets the usual JSON message.
func bindEntity(c *gin.Context, entity any) bool {
	err := c.ShouldBindJSON(entity)
	if err == nil {
		return true
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.String(http.StatusBadRequest, models.NewValidationErrors(validationErrors).Error())
		c.Abort()
		return false
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("invalid request body: %v", err)})
	return false
}

func abortNotFound(c *gin.Context, kind, id string) {
	c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("%s with id '%v' not found", kind, id)})
}

// streamEvents writes items as server-sent events, one per interval. It
// returns when the snapshot is exhausted or the client goes away.
func streamEvents[T any](c *gin.Context, event string, items []T, interval time.Duration) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.WriteHeaderNow()
	c.Writer.Flush()

	for item := range stream.Paced(c.Request.Context(), items, interval) {
		c.SSEvent(event, item)
		c.Writer.Flush()
	}
}
