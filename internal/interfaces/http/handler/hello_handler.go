package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Greeter interface {
	Hello(ctx context.Context) (bool, error)
}

type HelloHandler struct {
	api Greeter
}

func NewHelloHandler(api Greeter) *HelloHandler {
	return &HelloHandler{api: api}
}

// Hello reports whether the upstream API accepts our token.
func (h *HelloHandler) Hello(c *gin.Context) {
	ok, err := h.api.Hello(c.Request.Context())
	if err != nil || !ok {
		if err != nil {
			_ = c.Error(err)
		}
		c.JSON(http.StatusBadGateway, gin.H{"hello": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"hello": true})
}
