package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"catalog/cache"
	"catalog/models"
	"github.com/gin-gonic/gin"
)

// Activity lists the latest requests recorded for a user, newest first.
func Activity(cacher cache.RequestCacher) gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.Param("username")

		userRequests, err := cacher.Read(username)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
				"message": err.Error(),
			})
			return
		}

		userRequestsRaw := make([]models.UserRequest, 0, len(userRequests))
		for _, request := range userRequests {
			var userRequest models.UserRequest
			if err := json.Unmarshal([]byte(request), &userRequest); err != nil {
				continue
			}
			userRequestsRaw = append(userRequestsRaw, userRequest)
		}

		c.JSON(http.StatusOK, userRequestsRaw)
	}
}

// CacheUserRequest records method and path for requests that carry a
// username query parameter.
func CacheUserRequest(cacher cache.RequestCacher, logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := c.GetQuery("username")
		if !ok || username == "" {
			c.Next()
			return
		}

		userRequest := models.UserRequest{
			Method: c.Request.Method,
			Route:  c.Request.URL.Path,
		}

		request, err := json.Marshal(userRequest)
		if err == nil {
			err = cacher.Write(username, request)
		}
		// Not failing a request if there's a problem caching it
		if err != nil {
			logger.WarnContext(c.Request.Context(), "caching user request failed", "username", username, "error", err)
		}

		c.Next()
	}
}
