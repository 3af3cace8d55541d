package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "ccw_query/internal/domain/estimate"
)

type EstimateLookup interface {
	GetEstimate(ctx context.Context, estimateID string) (*domain.Estimate, error)
}

type EstimateHandler struct {
	svc EstimateLookup
}

func NewEstimateHandler(svc EstimateLookup) *EstimateHandler {
	return &EstimateHandler{svc: svc}
}

func (h *EstimateHandler) GetEstimate(c *gin.Context) {
	e, err := h.svc.GetEstimate(c.Request.Context(), c.Param("estimateID"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, e)
}
