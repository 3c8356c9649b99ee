package documenttype_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"go-coope/internal/documenttype"
	documenttypeerrors "go-coope/internal/documenttype/errors"
	"go-coope/internal/shared/apperror"
	"go-coope/internal/shared/contextutil"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepository struct {
	findActiveFn         func(ctx context.Context) ([]documenttype.DocumentType, error)
	findRequiredActiveFn func(ctx context.Context) ([]documenttype.DocumentType, error)
	findByIDFn           func(ctx context.Context, id uuid.UUID) (*documenttype.DocumentType, error)
	existsByCodeFn       func(ctx context.Context, code string) (bool, error)
	createFn             func(ctx context.Context, t *documenttype.DocumentType) error
}

func (f *fakeRepository) FindActive(ctx context.Context) ([]documenttype.DocumentType, error) {
	if f.findActiveFn != nil {
		return f.findActiveFn(ctx)
	}
	return nil, nil
}

func (f *fakeRepository) FindRequiredActive(ctx context.Context) ([]documenttype.DocumentType, error) {
	if f.findRequiredActiveFn != nil {
		return f.findRequiredActiveFn(ctx)
	}
	return nil, nil
}

func (f *fakeRepository) FindByID(ctx context.Context, id uuid.UUID) (*documenttype.DocumentType, error) {
	if f.findByIDFn != nil {
		return f.findByIDFn(ctx, id)
	}
	return nil, nil
}

func (f *fakeRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	if f.existsByCodeFn != nil {
		return f.existsByCodeFn(ctx, code)
	}
	return false, nil
}

func (f *fakeRepository) Create(ctx context.Context, t *documenttype.DocumentType) error {
	if f.createFn != nil {
		return f.createFn(ctx, t)
	}
	return nil
}

var admin = contextutil.Actor{ID: uuid.New(), IsAdmin: true}

func TestService_ListTypes(t *testing.T) {
	ctx := context.Background()
	cedula := documenttype.DocumentType{
		ID:             uuid.New(),
		Code:           "CEDULA",
		Name:           "Cédula",
		IsRequired:     true,
		AllowedFormats: documenttype.Formats{"pdf"},
		MaxSizeMB:      5,
		IsActive:       true,
	}

	t.Run("cache hit skips repository", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		repo := &fakeRepository{
			findActiveFn: func(ctx context.Context) ([]documenttype.DocumentType, error) {
				t.Fatal("repository must not be called on cache hit")
				return nil, nil
			},
		}
		svc := documenttype.NewService(repo, rdb)

		cached, err := json.Marshal(documenttype.MapToListResponse([]documenttype.DocumentType{cedula}))
		require.NoError(t, err)
		mock.ExpectGet(documenttype.ActiveTypesCacheKey).SetVal(string(cached))

		got, err := svc.ListTypes(ctx)

		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "CEDULA", got[0].Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cache miss loads and stores", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		calls := 0
		repo := &fakeRepository{
			findActiveFn: func(ctx context.Context) ([]documenttype.DocumentType, error) {
				calls++
				return []documenttype.DocumentType{cedula}, nil
			},
		}
		svc := documenttype.NewService(repo, rdb)

		want := documenttype.MapToListResponse([]documenttype.DocumentType{cedula})
		payload, err := json.Marshal(want)
		require.NoError(t, err)

		mock.ExpectGet(documenttype.ActiveTypesCacheKey).RedisNil()
		mock.ExpectSet(documenttype.ActiveTypesCacheKey, payload, time.Hour).SetVal("OK")

		got, err := svc.ListTypes(ctx)

		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, 1, calls)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("works without redis", func(t *testing.T) {
		repo := &fakeRepository{
			findActiveFn: func(ctx context.Context) ([]documenttype.DocumentType, error) {
				return []documenttype.DocumentType{cedula}, nil
			},
		}
		svc := documenttype.NewService(repo, nil)

		got, err := svc.ListTypes(ctx)

		require.NoError(t, err)
		assert.Len(t, got, 1)
	})

	t.Run("repository error", func(t *testing.T) {
		repo := &fakeRepository{
			findActiveFn: func(ctx context.Context) ([]documenttype.DocumentType, error) {
				return nil, errors.New("db down")
			},
		}
		svc := documenttype.NewService(repo, nil)

		_, err := svc.ListTypes(ctx)

		assert.EqualError(t, err, "db down")
	})
}

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success applies defaults and invalidates cache", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()
		var created *documenttype.DocumentType
		repo := &fakeRepository{
			createFn: func(ctx context.Context, d *documenttype.DocumentType) error {
				created = d
				return nil
			},
		}
		svc := documenttype.NewService(repo, rdb)
		mock.ExpectDel(documenttype.ActiveTypesCacheKey).SetVal(1)

		resp, err := svc.Register(ctx, admin, documenttype.RegisterDocumentTypeRequest{
			Code: " RUT ",
			Name: "Registro único tributario",
		})

		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "RUT", created.Code)
		assert.Equal(t, documenttype.Formats{"pdf", "jpg", "jpeg", "png"}, created.AllowedFormats)
		assert.Equal(t, 10, created.MaxSizeMB)
		assert.True(t, created.IsActive)
		assert.Equal(t, admin.ID, *created.CreatedBy)
		assert.Equal(t, created.ID.String(), resp.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("normalizes custom formats", func(t *testing.T) {
		var created *documenttype.DocumentType
		size := 2
		repo := &fakeRepository{
			createFn: func(ctx context.Context, d *documenttype.DocumentType) error {
				created = d
				return nil
			},
		}
		svc := documenttype.NewService(repo, nil)

		_, err := svc.Register(ctx, admin, documenttype.RegisterDocumentTypeRequest{
			Code:           "FOTO",
			Name:           "Fotografía",
			AllowedFormats: []string{".JPG", "png", "jpg", " "},
			MaxSizeMB:      &size,
		})

		require.NoError(t, err)
		assert.Equal(t, documenttype.Formats{"jpg", "png"}, created.AllowedFormats)
		assert.Equal(t, int64(2*1024*1024), created.MaxSizeBytes())
	})

	t.Run("non admin is forbidden", func(t *testing.T) {
		svc := documenttype.NewService(&fakeRepository{}, nil)

		_, err := svc.Register(ctx, contextutil.Actor{ID: uuid.New()}, documenttype.RegisterDocumentTypeRequest{Code: "X", Name: "Y"})

		assert.ErrorIs(t, err, apperror.ErrForbidden)
	})

	t.Run("missing code and name", func(t *testing.T) {
		svc := documenttype.NewService(&fakeRepository{}, nil)

		_, err := svc.Register(ctx, admin, documenttype.RegisterDocumentTypeRequest{})

		var appErr *apperror.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
		assert.Equal(t, map[string]any{"fields": []string{"codigo", "nombre"}}, appErr.Details)
	})

	t.Run("invalid format token", func(t *testing.T) {
		svc := documenttype.NewService(&fakeRepository{}, nil)

		_, err := svc.Register(ctx, admin, documenttype.RegisterDocumentTypeRequest{
			Code:           "X",
			Name:           "Y",
			AllowedFormats: []string{"p/df"},
		})

		assert.ErrorIs(t, err, documenttypeerrors.ErrInvalidFormats)
	})

	t.Run("duplicate code from pre-check", func(t *testing.T) {
		repo := &fakeRepository{
			existsByCodeFn: func(ctx context.Context, code string) (bool, error) { return true, nil },
			createFn: func(ctx context.Context, d *documenttype.DocumentType) error {
				t.Fatal("create must not run")
				return nil
			},
		}
		svc := documenttype.NewService(repo, nil)

		_, err := svc.Register(ctx, admin, documenttype.RegisterDocumentTypeRequest{Code: "CEDULA", Name: "Cédula"})

		assert.ErrorIs(t, err, documenttypeerrors.ErrDocumentTypeCodeExists)
	})

	t.Run("duplicate code from constraint", func(t *testing.T) {
		repo := &fakeRepository{
			createFn: func(ctx context.Context, d *documenttype.DocumentType) error {
				return errors.New(`ERROR: duplicate key value violates unique constraint "uq_document_types_code" (SQLSTATE 23505)`)
			},
		}
		svc := documenttype.NewService(repo, nil)

		_, err := svc.Register(ctx, admin, documenttype.RegisterDocumentTypeRequest{Code: "CEDULA", Name: "Cédula"})

		assert.ErrorIs(t, err, documenttypeerrors.ErrDocumentTypeCodeExists)
	})
}
