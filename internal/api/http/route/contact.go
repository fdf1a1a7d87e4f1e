package route

import (
	"github.com/gin-gonic/gin"
)

type ContactHandler interface {
	Submit(c *gin.Context)
	AdminList(c *gin.Context)
}

func RegisterContactRoutes(g *gin.RouterGroup, h ContactHandler) {
	g.POST("", h.Submit)
	g.GET("/admin", h.AdminList)
}
