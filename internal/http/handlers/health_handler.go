package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthResponse is returned by GET /health.
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Cafes  int64  `json:"cafes" example:"21"`
}

// Health godoc
// @ID          health
// @Summary     Liveness and store reachability
// @Description Reports ok together with the number of stored cafés, or 503 when the database cannot be queried.
// @Tags        Ops
// @Produce     json
// @Success     200  {object}  handlers.HealthResponse
// @Failure     503  {object}  handlers.ErrorResponse  "Database unavailable"
// @Router      /health [get]
func (h *Handlers) Health(c *gin.Context) {
	n, err := h.svc.Count(c.Request.Context())
	if err != nil {
		fail(c, http.StatusServiceUnavailable, MsgUnavailable, err)
		return
	}
	ok(c, http.StatusOK, HealthResponse{Status: "ok", Cafes: n})
}
