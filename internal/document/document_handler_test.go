package document_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-coope/internal/document"
	documenterrors "go-coope/internal/document/errors"
	"go-coope/internal/shared/apperror"
	"go-coope/internal/shared/blobstore"
	blobMock "go-coope/internal/shared/blobstore/mock"
	"go-coope/internal/shared/contextutil"
	"go-coope/internal/shared/pagination"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool             `json:"ok"`
	Data  json.RawMessage  `json:"data"`
	Meta  *pagination.Meta `json:"meta"`
	Error *apiError        `json:"error"`
}

type fakeDocumentService struct {
	ListForAssociateFn func(ctx context.Context, associateID string) (document.AssociateDocumentsResponse, error)
	UploadFn           func(ctx context.Context, actor contextutil.Actor, in document.UploadInput) (document.DocumentResponse, error)
	VerifyFn           func(ctx context.Context, actor contextutil.Actor, id string, req document.VerifyRequest) (document.DocumentResponse, error)
	DeleteFn           func(ctx context.Context, actor contextutil.Actor, id string) error
	ListPendingFn      func(ctx context.Context, actor contextutil.Actor, req document.PendingRequest) (document.PendingResult, error)
	StatisticsFn       func(ctx context.Context, actor contextutil.Actor) (document.Statistics, error)
	DownloadFn         func(ctx context.Context, id string) (document.DownloadFile, error)
}

func (f *fakeDocumentService) ListForAssociate(ctx context.Context, associateID string) (document.AssociateDocumentsResponse, error) {
	return f.ListForAssociateFn(ctx, associateID)
}
func (f *fakeDocumentService) Upload(ctx context.Context, actor contextutil.Actor, in document.UploadInput) (document.DocumentResponse, error) {
	return f.UploadFn(ctx, actor, in)
}
func (f *fakeDocumentService) Verify(ctx context.Context, actor contextutil.Actor, id string, req document.VerifyRequest) (document.DocumentResponse, error) {
	return f.VerifyFn(ctx, actor, id, req)
}
func (f *fakeDocumentService) Delete(ctx context.Context, actor contextutil.Actor, id string) error {
	return f.DeleteFn(ctx, actor, id)
}
func (f *fakeDocumentService) ListPending(ctx context.Context, actor contextutil.Actor, req document.PendingRequest) (document.PendingResult, error) {
	return f.ListPendingFn(ctx, actor, req)
}
func (f *fakeDocumentService) Statistics(ctx context.Context, actor contextutil.Actor) (document.Statistics, error) {
	return f.StatisticsFn(ctx, actor)
}
func (f *fakeDocumentService) Download(ctx context.Context, id string) (document.DownloadFile, error) {
	return f.DownloadFn(ctx, id)
}

func withActor(a contextutil.Actor) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(contextutil.WithActor(c.Request.Context(), a))
		c.Next()
	}
}

func setupRouter(h *document.Handler, mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	documents := r.Group("/api/v1/documentos", mw...)
	document.RegisterRoutes(documents, h)
	return r
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func multipartUpload(t *testing.T, fields map[string]string, fileName string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	if fileName != "" {
		part, err := mw.CreateFormFile("documento", fileName)
		require.NoError(t, err)
		_, err = part.Write([]byte("%PDF-1.4"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestHandler_Upload(t *testing.T) {
	associateID := uuid.NewString()
	typeID := uuid.NewString()

	t.Run("stores the file and records it", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		files := blobMock.NewMockStore(ctrl)
		files.EXPECT().Save(gomock.Any(), "cedula.pdf", gomock.Any()).DoAndReturn(
			func(_ context.Context, name string, r io.Reader) (blobstore.Object, error) {
				data, err := io.ReadAll(r)
				require.NoError(t, err)
				return blobstore.Object{Key: "k.pdf", OriginalName: name, Size: int64(len(data)), MimeType: "application/pdf"}, nil
			})
		svc := &fakeDocumentService{
			UploadFn: func(ctx context.Context, a contextutil.Actor, in document.UploadInput) (document.DocumentResponse, error) {
				assert.Equal(t, member, a)
				assert.Equal(t, associateID, in.AssociateID)
				assert.Equal(t, typeID, in.DocumentTypeID)
				assert.Equal(t, "k.pdf", in.File.Key)
				assert.Equal(t, int64(8), in.File.Size)
				return document.DocumentResponse{ID: uuid.NewString(), VerificationStatus: "pendiente"}, nil
			},
		}
		r := setupRouter(document.NewHandler(svc, files), withActor(member))

		body, contentType := multipartUpload(t, map[string]string{"asociado_id": associateID, "tipo_documento_id": typeID}, "cedula.pdf")
		req := httptest.NewRequest(http.MethodPost, "/api/v1/documentos/subir", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, string(decode(t, w).Data), "pendiente")
	})

	t.Run("missing file", func(t *testing.T) {
		r := setupRouter(document.NewHandler(&fakeDocumentService{}, nil), withActor(member))

		body, contentType := multipartUpload(t, map[string]string{"asociado_id": associateID, "tipo_documento_id": typeID}, "")
		req := httptest.NewRequest(http.MethodPost, "/api/v1/documentos/subir", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, documenterrors.ErrFileRequired.Message, decode(t, w).Error.Message)
	})

	t.Run("missing form fields never reach the store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		files := blobMock.NewMockStore(ctrl)
		r := setupRouter(document.NewHandler(&fakeDocumentService{}, files), withActor(member))

		body, contentType := multipartUpload(t, map[string]string{"asociado_id": associateID}, "cedula.pdf")
		req := httptest.NewRequest(http.MethodPost, "/api/v1/documentos/subir", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, documenterrors.ErrMissingUploadFields.Message, decode(t, w).Error.Message)
	})

	t.Run("missing actor", func(t *testing.T) {
		r := setupRouter(document.NewHandler(&fakeDocumentService{}, nil))

		body, contentType := multipartUpload(t, nil, "cedula.pdf")
		req := httptest.NewRequest(http.MethodPost, "/api/v1/documentos/subir", body)
		req.Header.Set("Content-Type", contentType)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHandler_Verify(t *testing.T) {
	id := uuid.NewString()

	t.Run("passes the decision through", func(t *testing.T) {
		svc := &fakeDocumentService{
			VerifyFn: func(ctx context.Context, a contextutil.Actor, gotID string, req document.VerifyRequest) (document.DocumentResponse, error) {
				assert.Equal(t, id, gotID)
				assert.Equal(t, "verificado", req.Status)
				require.NotNil(t, req.Notes)
				return document.DocumentResponse{ID: id, VerificationStatus: "verificado"}, nil
			},
		}
		r := setupRouter(document.NewHandler(svc, nil), withActor(admin))

		body := `{"estado_verificacion":"verificado","observaciones_verificacion":"legible"}`
		req := httptest.NewRequest(http.MethodPut, "/api/v1/documentos/"+id+"/verificar", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing decision", func(t *testing.T) {
		r := setupRouter(document.NewHandler(&fakeDocumentService{}, nil), withActor(admin))

		req := httptest.NewRequest(http.MethodPut, "/api/v1/documentos/"+id+"/verificar", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, documenterrors.ErrInvalidDecision.Message, decode(t, w).Error.Message)
	})
}

func TestHandler_Download(t *testing.T) {
	svc := &fakeDocumentService{
		DownloadFn: func(ctx context.Context, id string) (document.DownloadFile, error) {
			return document.DownloadFile{
				Name:     "Ana_Ruiz-RUT.pdf",
				MimeType: "application/pdf",
				Size:     4,
				Body:     io.NopCloser(strings.NewReader("%PDF")),
			}, nil
		},
	}
	r := setupRouter(document.NewHandler(svc, nil), withActor(member))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documentos/"+uuid.NewString()+"/descargar", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="Ana_Ruiz-RUT.pdf"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "%PDF", w.Body.String())
}

func TestHandler_Delete(t *testing.T) {
	svc := &fakeDocumentService{
		DeleteFn: func(ctx context.Context, a contextutil.Actor, id string) error {
			return documenterrors.ErrDeleteForbidden
		},
	}
	r := setupRouter(document.NewHandler(svc, nil), withActor(member))

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/documentos/"+uuid.NewString(), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, apperror.CodeForbidden, decode(t, w).Error.Code)
}

func TestHandler_StaticRoutesResolveBeforeID(t *testing.T) {
	svc := &fakeDocumentService{
		ListPendingFn: func(ctx context.Context, a contextutil.Actor, req document.PendingRequest) (document.PendingResult, error) {
			assert.Equal(t, 2, req.Page)
			assert.Equal(t, 5, req.PageSize)
			return document.PendingResult{Items: []document.PendingResponse{}, Meta: pagination.New(7, 2, 5)}, nil
		},
		StatisticsFn: func(ctx context.Context, a contextutil.Actor) (document.Statistics, error) {
			return document.Statistics{Completeness: []document.GroupCount{{Key: "completa", Count: 1}}}, nil
		},
		ListForAssociateFn: func(ctx context.Context, associateID string) (document.AssociateDocumentsResponse, error) {
			return document.AssociateDocumentsResponse{}, documenterrors.ErrAssociateNotFound
		},
	}
	r := setupRouter(document.NewHandler(svc, nil), withActor(admin))

	t.Run("pending", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/documentos/pendientes?page=2&limit=5", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decode(t, w)
		require.NotNil(t, env.Meta)
		assert.Equal(t, 2, env.Meta.TotalPages)
	})

	t.Run("statistics", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/documentos/estadisticas", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, string(decode(t, w).Data), "documentacion")
	})

	t.Run("associate documents", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/documentos/asociado/"+uuid.NewString(), nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
