package response

import (
	"go-coope/internal/shared/pagination"

	"github.com/gin-gonic/gin"
)

type ApiEnvelope struct {
	Ok    bool             `json:"ok"`
	Data  any              `json:"data,omitempty"`
	Meta  *pagination.Meta `json:"meta,omitempty"`
	Error any              `json:"error,omitempty"`
}

func Success(c *gin.Context, status int, data any, meta *pagination.Meta) {
	c.JSON(status, ApiEnvelope{
		Ok:   true,
		Data: data,
		Meta: meta,
	})
}

func Error(c *gin.Context, status int, errorCode string, message string, details any) {
	c.JSON(status, ApiEnvelope{
		Ok: false,
		Error: map[string]any{
			"code":    errorCode,
			"message": message,
			"details": details,
		},
	})
}
