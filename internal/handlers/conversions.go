package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/puchie21/curren/internal/service"
)

const (
	errCreateConversion = "failed to create conversion"
	errListConversions  = "failed to list conversions"
	errUserIDRequired   = "userId must be a positive integer"
)

// Explicit allowlist of conversion fields; unknown body fields are ignored.
type conversionRequest struct {
	UserID   int     `json:"userId" binding:"required"`
	FromCode string  `json:"from_code" binding:"required"`
	ToCode   string  `json:"to_code" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Result   float64 `json:"result"`
}

// @Summary      Create a conversion record
// @Description  Result is computed from the current snapshot when omitted.
// @Tags         conversions
// @Accept       json
// @Produce      json
// @Param        body  body      conversionRequest  true  "Conversion payload"
// @Success      201   {object}  models.Conversion
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /conversions [post]
func (h *Handler) createConversion(c *gin.Context) {
	var req conversionRequest
	if ok := h.bindJSONOrBadRequest(c, &req); !ok {
		return
	}

	created, err := h.services.Conversions.Create(c.Request.Context(), service.ConversionInput{
		UserID:   req.UserID,
		FromCode: req.FromCode,
		ToCode:   req.ToCode,
		Amount:   req.Amount,
		Result:   req.Result,
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errCreateConversion, "conversion_create_failed", err, "userId", req.UserID)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// @Summary      List conversion records
// @Tags         conversions
// @Produce      json
// @Param        userId    query     int  true   "Owner user ID"
// @Param        page      query     int  false  "Page number"  default(1)
// @Param        pageSize  query     int  false  "Page size"    default(10)
// @Success      200  {object}  models.ConversionPage
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /conversions [get]
func (h *Handler) listConversions(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("userId"))
	if err != nil || userID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errUserIDRequired})
		return
	}
	page := intQuery(c, "page", 1)
	pageSize := intQuery(c, "pageSize", 10)

	result, err := h.services.Conversions.List(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListConversions, "conversion_list_failed", err, "userId", userID)
		return
	}

	c.JSON(http.StatusOK, result)
}

// intQuery coerces a query parameter to int, falling back to def when
// absent or unparseable (type coercion only, no validation).
func intQuery(c *gin.Context, name string, def int) int {
	s := c.Query(name)
	if s == "" {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return v
}
