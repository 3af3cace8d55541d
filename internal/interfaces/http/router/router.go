package router

import (
	"github.com/gin-gonic/gin"

	"ccw_query/internal/interfaces/http/handler"
)

func RegisterRoutes(
	r *gin.Engine,
	orderHandler *handler.OrderHandler,
	estimateHandler *handler.EstimateHandler,
	helloHandler *handler.HelloHandler,
) {
	api := r.Group("/api")
	{
		api.GET("/hello", helloHandler.Hello)
		api.GET("/orders/:salesOrder", orderHandler.GetOrder)
		api.GET("/orders/:salesOrder/lines", orderHandler.GetOrderLines)
		api.GET("/estimates/:estimateID", estimateHandler.GetEstimate)
	}
}
