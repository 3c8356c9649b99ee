package associate

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts /asociados under an authenticated group. onCreate
// runs before Create only, e.g. the idempotency guard.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, onCreate ...gin.HandlerFunc) {
	associates := r.Group("/asociados")
	{
		associates.GET("", handler.Search)
		associates.GET("/estadisticas/resumen", handler.Statistics)
		associates.GET("/:id", handler.GetByID)
		associates.POST("", append(onCreate, handler.Create)...)
		associates.PUT("/:id", handler.Update)
		associates.POST("/:id/fotografia", handler.UploadPhoto)
	}
}
