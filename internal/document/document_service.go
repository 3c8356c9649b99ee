package document

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	documenterrors "go-coope/internal/document/errors"
	"go-coope/internal/documenttype"
	"go-coope/internal/shared/apperror"
	"go-coope/internal/shared/blobstore"
	"go-coope/internal/shared/contextutil"
	"go-coope/internal/shared/metrics"
	"go-coope/internal/shared/pagination"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

const (
	statsWindowMonths  = 6
	defaultContentType = "application/octet-stream"
)

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9.-]`)

// AssociateLookup is the part of the associate store uploads depend on.
type AssociateLookup interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}

// Catalog is the part of the document type store uploads and compliance
// checks depend on.
type Catalog interface {
	FindByID(ctx context.Context, id uuid.UUID) (*documenttype.DocumentType, error)
	FindRequiredActive(ctx context.Context) ([]documenttype.DocumentType, error)
}

type Service interface {
	ListForAssociate(ctx context.Context, associateID string) (AssociateDocumentsResponse, error)
	Upload(ctx context.Context, actor contextutil.Actor, in UploadInput) (DocumentResponse, error)
	Verify(ctx context.Context, actor contextutil.Actor, id string, req VerifyRequest) (DocumentResponse, error)
	Delete(ctx context.Context, actor contextutil.Actor, id string) error
	ListPending(ctx context.Context, actor contextutil.Actor, req PendingRequest) (PendingResult, error)
	Statistics(ctx context.Context, actor contextutil.Actor) (Statistics, error)
	Download(ctx context.Context, id string) (DownloadFile, error)
}

type service struct {
	repo       Repository
	associates AssociateLookup
	catalog    Catalog
	store      blobstore.Store
	now        func() time.Time
	logger     *zap.Logger
}

func NewService(
	repo Repository,
	associates AssociateLookup,
	catalog Catalog,
	store blobstore.Store,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("document.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("document.service")
	}
	return &service{
		repo:       repo,
		associates: associates,
		catalog:    catalog,
		store:      store,
		now:        func() time.Time { return time.Now().UTC() },
		logger:     l,
	}
}

func (s *service) ListForAssociate(ctx context.Context, associateID string) (AssociateDocumentsResponse, error) {
	id, err := uuid.Parse(associateID)
	if err != nil {
		return AssociateDocumentsResponse{}, documenterrors.ErrInvalidAssociateID
	}

	exists, err := s.associates.Exists(ctx, id)
	if err != nil {
		s.logger.Error("check associate failed", zap.String("associate_id", associateID), zap.Error(err))
		return AssociateDocumentsResponse{}, err
	}
	if !exists {
		return AssociateDocumentsResponse{}, documenterrors.ErrAssociateNotFound
	}

	var (
		views    []View
		required []documenttype.DocumentType
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		views, err = s.repo.FindByAssociate(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		required, err = s.catalog.FindRequiredActive(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		s.logger.Error("list associate documents failed", zap.String("associate_id", associateID), zap.Error(err))
		return AssociateDocumentsResponse{}, mapRepositoryError(err)
	}

	docs := make([]Document, len(views))
	resp := AssociateDocumentsResponse{
		Documents: make([]DocumentResponse, len(views)),
	}
	for i, v := range views {
		docs[i] = v.Document
		resp.Documents[i] = mapViewToResponse(v)
	}

	missing := MissingRequiredTypes(required, docs)
	resp.Missing = documenttype.MapToListResponse(missing)
	resp.Complete = len(missing) == 0
	return resp, nil
}

// Upload records metadata for a file the caller already stored. The stored
// object is removed whenever the upload is refused.
func (s *service) Upload(ctx context.Context, actor contextutil.Actor, in UploadInput) (DocumentResponse, error) {
	resp, err := s.upload(ctx, actor, in)
	if err != nil {
		s.discard(ctx, in.File.Key)
		return DocumentResponse{}, err
	}
	return resp, nil
}

func (s *service) upload(ctx context.Context, actor contextutil.Actor, in UploadInput) (DocumentResponse, error) {
	s.logger.Debug("upload document requested",
		zap.String("request_id", contextutil.GetRequestID(ctx)),
		zap.String("associate_id", in.AssociateID),
		zap.String("document_type_id", in.DocumentTypeID),
		zap.Int64("size", in.File.Size),
	)

	if strings.TrimSpace(in.AssociateID) == "" || strings.TrimSpace(in.DocumentTypeID) == "" {
		return DocumentResponse{}, documenterrors.ErrMissingUploadFields
	}
	associateID, err := uuid.Parse(in.AssociateID)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrInvalidAssociateID
	}
	typeID, err := uuid.Parse(in.DocumentTypeID)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrDocumentTypeNotFound
	}

	exists, err := s.associates.Exists(ctx, associateID)
	if err != nil {
		s.logger.Error("check associate failed", zap.String("associate_id", in.AssociateID), zap.Error(err))
		return DocumentResponse{}, err
	}
	if !exists {
		metrics.DocumentsRejectedOnUpload.WithLabelValues("associate").Inc()
		return DocumentResponse{}, documenterrors.ErrAssociateNotFound
	}

	docType, err := s.catalog.FindByID(ctx, typeID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("load document type failed", zap.String("document_type_id", in.DocumentTypeID), zap.Error(err))
		return DocumentResponse{}, err
	}
	if docType == nil || !docType.IsActive {
		metrics.DocumentsRejectedOnUpload.WithLabelValues("type").Inc()
		return DocumentResponse{}, documenterrors.ErrDocumentTypeNotFound
	}

	if !docType.AllowedFormats.Contains(filepath.Ext(in.File.OriginalName)) {
		metrics.DocumentsRejectedOnUpload.WithLabelValues("format").Inc()
		s.logger.Warn("upload rejected by format",
			zap.String("document_type", docType.Code),
			zap.String("file", in.File.OriginalName),
		)
		return DocumentResponse{}, apperror.Validation(
			"Formato de archivo no permitido. Formatos válidos: "+docType.AllowedFormats.String(),
			map[string]any{"formatos_permitidos": []string(docType.AllowedFormats)},
		)
	}

	if in.File.Size > docType.MaxSizeBytes() {
		metrics.DocumentsRejectedOnUpload.WithLabelValues("size").Inc()
		s.logger.Warn("upload rejected by size",
			zap.String("document_type", docType.Code),
			zap.Int64("size", in.File.Size),
		)
		return DocumentResponse{}, apperror.Validation(
			fmt.Sprintf("Archivo demasiado grande. Tamaño máximo: %dMB", docType.MaxSizeMB),
			map[string]any{"tamano_maximo_mb": docType.MaxSizeMB},
		)
	}

	now := s.now()
	doc := &Document{
		ID:                 uuid.New(),
		AssociateID:        associateID,
		DocumentTypeID:     typeID,
		OriginalName:       in.File.OriginalName,
		StoredName:         filepath.Base(in.File.Key),
		StorageKey:         in.File.Key,
		SizeBytes:          in.File.Size,
		VerificationStatus: StatusPending,
		UploadedBy:         actor.ID,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if in.File.MimeType != "" {
		mimeType := in.File.MimeType
		doc.MimeType = &mimeType
	}

	if err := s.repo.Create(ctx, doc); err != nil {
		s.logger.Error("create document failed", zap.String("associate_id", in.AssociateID), zap.Error(err))
		return DocumentResponse{}, mapRepositoryError(err)
	}

	metrics.DocumentsUploaded.Inc()
	s.logger.Info("document uploaded",
		zap.String("document_id", doc.ID.String()),
		zap.String("associate_id", in.AssociateID),
		zap.String("document_type", docType.Code),
	)

	resp := mapToResponse(*doc)
	resp.TypeCode = docType.Code
	resp.TypeName = docType.Name
	resp.IsRequired = docType.IsRequired
	return resp, nil
}

// Verify records a decision. A document that was already decided may be
// decided again; the latest decision wins.
func (s *service) Verify(ctx context.Context, actor contextutil.Actor, id string, req VerifyRequest) (DocumentResponse, error) {
	decision := VerificationStatus(strings.ToLower(strings.TrimSpace(req.Status)))
	if !decision.IsDecision() {
		return DocumentResponse{}, documenterrors.ErrInvalidDecision
	}

	docID, err := uuid.Parse(id)
	if err != nil {
		return DocumentResponse{}, documenterrors.ErrInvalidDocumentID
	}

	var notes *string
	if req.Notes != nil {
		if v := strings.TrimSpace(*req.Notes); v != "" {
			notes = &v
		}
	}

	err = s.repo.UpdateVerification(ctx, docID, Verification{
		Status:     decision,
		Notes:      notes,
		VerifiedBy: actor.ID,
		VerifiedAt: s.now(),
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			s.logger.Warn("verify document not found", zap.String("document_id", id))
		} else {
			s.logger.Error("verify document failed", zap.String("document_id", id), zap.Error(err))
		}
		return DocumentResponse{}, mapRepositoryError(err)
	}

	doc, err := s.repo.FindByID(ctx, docID)
	if err != nil {
		return DocumentResponse{}, mapRepositoryError(err)
	}

	metrics.DocumentsVerified.WithLabelValues(string(decision)).Inc()
	s.logger.Info("document verified",
		zap.String("document_id", id),
		zap.String("decision", string(decision)),
		zap.String("verified_by", actor.ID.String()),
	)

	return mapToResponse(*doc), nil
}

// Delete removes the stored file first and the record after it. A failure
// to remove the file is logged and does not keep the record.
func (s *service) Delete(ctx context.Context, actor contextutil.Actor, id string) error {
	docID, err := uuid.Parse(id)
	if err != nil {
		return documenterrors.ErrInvalidDocumentID
	}

	doc, err := s.repo.FindByID(ctx, docID)
	if err != nil {
		return mapRepositoryError(err)
	}

	if !actor.CanManage(doc.UploadedBy) {
		s.logger.Warn("delete document forbidden",
			zap.String("document_id", id),
			zap.String("actor_id", actor.ID.String()),
		)
		return documenterrors.ErrDeleteForbidden
	}

	s.discard(ctx, doc.StorageKey)

	if err := s.repo.Delete(ctx, docID); err != nil {
		s.logger.Error("delete document failed", zap.String("document_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("document deleted", zap.String("document_id", id), zap.String("actor_id", actor.ID.String()))
	return nil
}

func (s *service) ListPending(ctx context.Context, actor contextutil.Actor, req PendingRequest) (PendingResult, error) {
	if !actor.IsAdmin {
		return PendingResult{}, apperror.ErrForbidden
	}

	page, size := pagination.Normalize(req.Page, req.PageSize)
	rows, total, err := s.repo.ListPending(ctx, size, pagination.Offset(page, size))
	if err != nil {
		s.logger.Error("list pending documents failed", zap.Error(err))
		return PendingResult{}, mapRepositoryError(err)
	}

	items := make([]PendingResponse, 0, len(rows))
	for _, row := range rows {
		items = append(items, mapPendingToResponse(row))
	}

	return PendingResult{
		Items: items,
		Meta:  pagination.New(total, page, size),
	}, nil
}

// Statistics runs its queries concurrently; the figures are not read from
// a single snapshot.
func (s *service) Statistics(ctx context.Context, actor contextutil.Actor) (Statistics, error) {
	if !actor.IsAdmin {
		return Statistics{}, apperror.ErrForbidden
	}

	since := s.now().AddDate(0, -statsWindowMonths, 0)

	var stats Statistics
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.ByStatus, err = s.repo.CountByStatus(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.ByType, err = s.repo.CountByType(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.UploadedByMonth, err = s.repo.CountUploadedByMonth(gctx, since)
		return err
	})
	g.Go(func() error {
		var err error
		stats.Completeness, err = s.repo.CountCompleteness(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.Error("document statistics failed", zap.Error(err))
		return Statistics{}, err
	}
	return stats, nil
}

func (s *service) Download(ctx context.Context, id string) (DownloadFile, error) {
	docID, err := uuid.Parse(id)
	if err != nil {
		return DownloadFile{}, documenterrors.ErrInvalidDocumentID
	}

	doc, err := s.repo.FindForDownload(ctx, docID)
	if err != nil {
		return DownloadFile{}, mapRepositoryError(err)
	}

	body, err := s.store.Open(ctx, doc.StorageKey)
	if err != nil {
		if errors.Is(err, blobstore.ErrObjectNotFound) {
			s.logger.Warn("document file missing", zap.String("document_id", id), zap.String("key", doc.StorageKey))
			return DownloadFile{}, documenterrors.ErrFileNotFound
		}
		s.logger.Error("open document file failed", zap.String("document_id", id), zap.Error(err))
		return DownloadFile{}, err
	}

	contentType := defaultContentType
	if doc.MimeType != nil && *doc.MimeType != "" {
		contentType = *doc.MimeType
	}

	return DownloadFile{
		Name:     DownloadName(doc.AssociateName, doc.TypeName, doc.OriginalName),
		MimeType: contentType,
		Size:     doc.SizeBytes,
		Body:     body,
	}, nil
}

// DownloadName builds "<associate>-<type><ext>" with every character
// outside [a-zA-Z0-9.-] replaced by an underscore.
func DownloadName(associateName, typeName, originalName string) string {
	name := associateName + "-" + typeName + strings.ToLower(filepath.Ext(originalName))
	return unsafeFileChars.ReplaceAllString(name, "_")
}

func (s *service) discard(ctx context.Context, key string) {
	if key == "" || s.store == nil {
		return
	}
	if err := s.store.Delete(ctx, key); err != nil && !errors.Is(err, blobstore.ErrObjectNotFound) {
		s.logger.Warn("remove stored file failed", zap.String("key", key), zap.Error(err))
	}
}
