package associate

import (
	"net/http"
	"path/filepath"
	"strings"

	associateerrors "go-coope/internal/associate/errors"
	"go-coope/internal/shared/apperror"
	"go-coope/internal/shared/blobstore"
	"go-coope/internal/shared/contextutil"
	"go-coope/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	photoFormField = "fotografia"
	photoURLPrefix = "/uploads/"
	maxPhotoBytes  = 5 * 1024 * 1024
)

var photoExtensions = map[string]bool{".jpg": true, ".jpeg": true, ".png": true}

type Handler struct {
	service Service
	photos  blobstore.Store
	logger  *zap.Logger
}

func NewHandler(service Service, photos blobstore.Store, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("associate.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("associate.handler")
	}
	return &Handler{service: service, photos: photos, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("associate request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) actor(c *gin.Context) (contextutil.Actor, bool) {
	actor, ok := contextutil.GetActor(c.Request.Context())
	if !ok {
		h.writeServiceError(c, apperror.ErrUnauthorized)
	}
	return actor, ok
}

func (h *Handler) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.logger.Warn("http search associates bind failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	result, err := h.service.Search(c.Request.Context(), req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result.Items, &result.Meta)
}

func (h *Handler) GetByID(c *gin.Context) {
	id := c.Param("id")
	h.logger.Debug("http get associate", zap.String("associate_id", id))

	resp, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req CreateAssociateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http create associate validation failed", zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req UpdateAssociateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http update associate validation failed", zap.String("associate_id", id), zap.Error(err))
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Update(c.Request.Context(), actor, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// UploadPhoto stores the image first and then records its reference; the
// stored object is removed again when the associate update fails.
func (h *Handler) UploadPhoto(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	id := c.Param("id")

	fh, err := c.FormFile(photoFormField)
	if err != nil {
		h.writeServiceError(c, associateerrors.ErrPhotoRequired)
		return
	}
	if !photoExtensions[strings.ToLower(filepath.Ext(fh.Filename))] {
		h.writeServiceError(c, associateerrors.ErrInvalidPhotoFormat)
		return
	}
	if fh.Size > maxPhotoBytes {
		h.writeServiceError(c, apperror.Validation("La fotografía excede el tamaño máximo de 5MB", nil))
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	defer f.Close()

	obj, err := h.photos.Save(ctx, fh.Filename, f)
	if err != nil {
		h.logger.Error("store associate photo failed", zap.String("associate_id", id), zap.Error(err))
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.AttachPhoto(ctx, actor, id, photoURLPrefix+obj.Key)
	if err != nil {
		if delErr := h.photos.Delete(ctx, obj.Key); delErr != nil {
			h.logger.Warn("remove orphan photo failed", zap.String("key", obj.Key), zap.Error(delErr))
		}
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Statistics(c *gin.Context) {
	stats, err := h.service.Statistics(c.Request.Context())
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats, nil)
}
