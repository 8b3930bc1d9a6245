package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/NaomiR14/Transport-Pro-V3-sub000/internal/service"
)

type StatsHandler struct{ svc service.StatsService }

func NewStatsHandler(svc service.StatsService) *StatsHandler {
	return &StatsHandler{svc: svc}
}

// Obtener serves the fleet dashboard aggregate.
func (h *StatsHandler) Obtener(c *gin.Context) {
	resp, err := h.svc.Obtener(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
