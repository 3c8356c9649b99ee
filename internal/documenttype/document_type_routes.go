package documenttype

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the catalog under a group that already carries the
// authentication middleware chain.
func RegisterRoutes(documents *gin.RouterGroup, handler *Handler) {
	documents.GET("/tipos", handler.List)
	documents.POST("/tipos", handler.Register)
}
