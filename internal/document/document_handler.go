package document

import (
	"fmt"
	"net/http"
	"strings"

	documenterrors "go-coope/internal/document/errors"
	"go-coope/internal/shared/apperror"
	"go-coope/internal/shared/blobstore"
	"go-coope/internal/shared/contextutil"
	"go-coope/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	fileFormField         = "documento"
	associateFormField    = "asociado_id"
	documentTypeFormField = "tipo_documento_id"
)

type Handler struct {
	service Service
	files   blobstore.Store
	logger  *zap.Logger
}

func NewHandler(service Service, files blobstore.Store, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("document.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.handler")
	}
	return &Handler{service: service, files: files, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("document request failed",
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

func (h *Handler) ListForAssociate(c *gin.Context) {
	resp, err := h.service.ListForAssociate(c.Request.Context(), c.Param("asociadoId"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

// Upload writes the file to the blob store and hands its reference to the
// service, which removes it again if the upload is refused.
func (h *Handler) Upload(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	fh, err := c.FormFile(fileFormField)
	if err != nil {
		h.writeServiceError(c, documenterrors.ErrFileRequired)
		return
	}
	associateID := strings.TrimSpace(c.PostForm(associateFormField))
	typeID := strings.TrimSpace(c.PostForm(documentTypeFormField))
	if associateID == "" || typeID == "" {
		h.writeServiceError(c, documenterrors.ErrMissingUploadFields)
		return
	}

	f, err := fh.Open()
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	defer f.Close()

	obj, err := h.files.Save(ctx, fh.Filename, f)
	if err != nil {
		h.logger.Error("store document failed", zap.String("associate_id", associateID), zap.Error(err))
		h.writeServiceError(c, err)
		return
	}

	resp, err := h.service.Upload(ctx, actor, UploadInput{
		AssociateID:    associateID,
		DocumentTypeID: typeID,
		File:           obj,
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) Verify(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req VerifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("http verify document validation failed", zap.String("document_id", id), zap.Error(err))
		h.writeServiceError(c, documenterrors.ErrInvalidDecision)
		return
	}

	resp, err := h.service.Verify(c.Request.Context(), actor, id, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Download(c *gin.Context) {
	file, err := h.service.Download(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}
	defer file.Body.Close()

	c.DataFromReader(http.StatusOK, file.Size, file.MimeType, file.Body, map[string]string{
		"Content-Disposition": fmt.Sprintf(`attachment; filename="%s"`, file.Name),
	})
}

func (h *Handler) Delete(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "Documento eliminado exitosamente"}, nil)
}

func (h *Handler) ListPending(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req PendingRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.writeServiceError(c, apperror.MapValidationError(err))
		return
	}

	result, err := h.service.ListPending(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, result.Items, &result.Meta)
}

func (h *Handler) Statistics(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	stats, err := h.service.Statistics(c.Request.Context(), actor)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, stats, nil)
}
