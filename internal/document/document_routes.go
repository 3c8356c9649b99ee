package document

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts document endpoints next to the catalog routes on the
// same authenticated group. onUpload runs before the upload handler.
func RegisterRoutes(documents *gin.RouterGroup, handler *Handler, onUpload ...gin.HandlerFunc) {
	documents.GET("/asociado/:asociadoId", handler.ListForAssociate)
	documents.POST("/subir", append(onUpload, handler.Upload)...)
	documents.GET("/pendientes", handler.ListPending)
	documents.GET("/estadisticas", handler.Statistics)
	documents.PUT("/:id/verificar", handler.Verify)
	documents.GET("/:id/descargar", handler.Download)
	documents.DELETE("/:id", handler.Delete)
}
