package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	app "ccw_query/internal/application/order"
	domain "ccw_query/internal/domain/order"
)

type OrderLookup interface {
	GetOrderStatus(ctx context.Context, salesOrder string, opts app.LookupOptions) (*domain.Order, error)
}

type OrderHandler struct {
	svc OrderLookup
}

func NewOrderHandler(svc OrderLookup) *OrderHandler {
	return &OrderHandler{svc: svc}
}

// lookupOptions reads ?sublevels= (default false) and ?serials= (default true).
func lookupOptions(c *gin.Context) (app.LookupOptions, error) {
	sublevels, err := strconv.ParseBool(c.DefaultQuery("sublevels", "false"))
	if err != nil {
		return app.LookupOptions{}, err
	}
	serials, err := strconv.ParseBool(c.DefaultQuery("serials", "true"))
	if err != nil {
		return app.LookupOptions{}, err
	}
	return app.LookupOptions{TopLevelOnly: !sublevels, AddSerials: serials}, nil
}

func (h *OrderHandler) lookup(c *gin.Context) (*domain.Order, bool) {
	opts, err := lookupOptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sublevels and serials must be booleans"})
		return nil, false
	}

	o, err := h.svc.GetOrderStatus(c.Request.Context(), c.Param("salesOrder"), opts)
	if err != nil {
		writeError(c, err)
		return nil, false
	}
	return o, true
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	if o, ok := h.lookup(c); ok {
		c.JSON(http.StatusOK, o)
	}
}

// GetOrderLines returns the flattened export records.
func (h *OrderHandler) GetOrderLines(c *gin.Context) {
	if o, ok := h.lookup(c); ok {
		c.JSON(http.StatusOK, gin.H{
			"columns": domain.ExportColumns,
			"lines":   o.ExportRecords(),
		})
	}
}
