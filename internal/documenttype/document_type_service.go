package documenttype

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	documenttypeerrors "go-coope/internal/documenttype/errors"
	"go-coope/internal/shared/apperror"
	"go-coope/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	ActiveTypesCacheKey = "document_types:active"
	activeTypesCacheTTL = time.Hour
)

var formatToken = regexp.MustCompile(`^[a-z0-9]{1,10}$`)

type Service interface {
	ListTypes(ctx context.Context) ([]DocumentTypeResponse, error)
	Register(ctx context.Context, actor contextutil.Actor, req RegisterDocumentTypeRequest) (DocumentTypeResponse, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("documenttype.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("documenttype.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// ListTypes returns active types, required ones first, then by name.
// Results are cached since the catalog changes rarely.
func (s *service) ListTypes(ctx context.Context) ([]DocumentTypeResponse, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, ActiveTypesCacheKey).Bytes(); err == nil {
			var resp []DocumentTypeResponse
			if json.Unmarshal(cached, &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(ActiveTypesCacheKey, func() (any, error) {
		types, err := s.repo.FindActive(ctx)
		if err != nil {
			s.logger.Error("list document types failed", zap.Error(err))
			return nil, mapRepositoryError(err)
		}

		resp := MapToListResponse(types)

		if s.rdb != nil {
			if data, err := json.Marshal(resp); err == nil {
				if err := s.rdb.Set(ctx, ActiveTypesCacheKey, data, activeTypesCacheTTL).Err(); err != nil {
					s.logger.Warn("cache document types failed", zap.Error(err))
				}
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]DocumentTypeResponse), nil
}

func (s *service) Register(
	ctx context.Context,
	actor contextutil.Actor,
	req RegisterDocumentTypeRequest,
) (DocumentTypeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("register document type requested",
		zap.String("request_id", rid),
		zap.String("code", req.Code),
	)

	if !actor.IsAdmin {
		s.logger.Warn("register document type forbidden", zap.String("actor_id", actor.ID.String()))
		return DocumentTypeResponse{}, apperror.ErrForbidden
	}

	req.Code = strings.TrimSpace(req.Code)
	req.Name = strings.TrimSpace(req.Name)

	var missing []string
	if req.Code == "" {
		missing = append(missing, "codigo")
	}
	if req.Name == "" {
		missing = append(missing, "nombre")
	}
	if len(missing) > 0 {
		return DocumentTypeResponse{}, apperror.Validation(
			"Código y nombre son requeridos",
			map[string]any{"fields": missing},
		)
	}

	formats := append(Formats(nil), DefaultFormats...)
	if len(req.AllowedFormats) > 0 {
		formats = NewFormats(req.AllowedFormats)
		if len(formats) == 0 {
			return DocumentTypeResponse{}, documenttypeerrors.ErrInvalidFormats
		}
		for _, f := range formats {
			if !formatToken.MatchString(f) {
				return DocumentTypeResponse{}, documenttypeerrors.ErrInvalidFormats.WithDetails(map[string]string{"formato": f})
			}
		}
	}

	maxSize := DefaultMaxSizeMB
	if req.MaxSizeMB != nil {
		if *req.MaxSizeMB <= 0 {
			return DocumentTypeResponse{}, apperror.InvalidField("tamano_maximo_mb")
		}
		maxSize = *req.MaxSizeMB
	}

	// Fast path only; the unique constraint decides under concurrency.
	exists, err := s.repo.ExistsByCode(ctx, req.Code)
	if err != nil {
		s.logger.Error("register document type lookup failed", zap.Error(err))
		return DocumentTypeResponse{}, mapRepositoryError(err)
	}
	if exists {
		s.logger.Warn("register document type duplicate code", zap.String("code", req.Code))
		return DocumentTypeResponse{}, documenttypeerrors.ErrDocumentTypeCodeExists
	}

	now := time.Now().UTC()
	actorID := actor.ID
	t := &DocumentType{
		ID:             uuid.New(),
		Code:           req.Code,
		Name:           req.Name,
		Description:    req.Description,
		IsRequired:     req.IsRequired,
		AllowedFormats: formats,
		MaxSizeMB:      maxSize,
		IsActive:       true,
		CreatedBy:      &actorID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, t); err != nil {
		s.logger.Error("register document type persist failed", zap.Error(err))
		return DocumentTypeResponse{}, mapRepositoryError(err)
	}

	s.invalidateCache(ctx)

	s.logger.Info("register document type success",
		zap.String("request_id", rid),
		zap.String("document_type_id", t.ID.String()),
		zap.String("code", t.Code),
	)

	return MapToResponse(*t), nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, ActiveTypesCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate document types cache",
			zap.Error(err),
			zap.String("key", ActiveTypesCacheKey),
		)
	}
}
