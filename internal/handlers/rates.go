package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const statusOK = "ok"

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Get exchange rates
// @Description  Live rates when a provider key is configured; static fallback otherwise.
// @Tags         rates
// @Produce      json
// @Param        base  query     string  false  "Base currency code"  default(USD)
// @Success      200   {object}  models.RateSnapshot
// @Router       /exchange-rates [get]
func (h *Handler) getRates(c *gin.Context) {
	snap := h.services.Rates.Resolve(c.Request.Context(), c.DefaultQuery("base", "USD"))
	c.JSON(http.StatusOK, snap)
}
