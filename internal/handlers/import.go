package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	applog "menuapp/internal/log"
)

// Import runs one synchronization with the spreadsheet and reports its outcome.
func Import(c *gin.Context) {
	if synchronize == nil {
		respondDetail(c, http.StatusServiceUnavailable, "import is not configured")
		return
	}

	result, err := synchronize.Sync(c.Request.Context())
	if err != nil {
		applog.Error(c.Request.Context(), "manual import failed", "error", err)
		respondDetail(c, http.StatusBadGateway, "import failed")
		return
	}
	c.JSON(http.StatusOK, result)
}
