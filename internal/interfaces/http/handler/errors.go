package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"ccw_query/internal/domain/estimate"
	"ccw_query/internal/domain/order"
)

// writeError maps lookup failures: an explicit "not found"-style answer from
// the API is 404, anything else is an upstream failure.
func writeError(c *gin.Context, err error) {
	_ = c.Error(err)

	var queryErr *order.QueryError
	var estErr *estimate.EstimateError
	switch {
	case errors.As(err, &queryErr):
		c.JSON(http.StatusNotFound, gin.H{"error": queryErr.Description})
	case errors.As(err, &estErr):
		c.JSON(http.StatusNotFound, gin.H{"error": estErr.Description})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	}
}
