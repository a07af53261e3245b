package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	applog "menuapp/internal/log"
)

type healthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}

// Health is a simple readiness handler suitable for infrastructure probes.
func Health(c *gin.Context) {
	applog.Debug(c.Request.Context(), "health check requested", "method", c.Request.Method)
	c.JSON(http.StatusOK, healthResponse{
		Status: "ok",
		Time:   time.Now().UTC(),
	})
}

// HealthChecker answers the API liveness probe.
func HealthChecker(c *gin.Context) {
	c.JSON(http.StatusOK, messageResponse{Message: "The API is LIVE!!"})
}
